package manifest

import (
	"os"
	"path/filepath"

	"github.com/vconcat/cli/logger"
)

// Locate checks that every clip exists. A relative clip that is missing from
// the working directory is looked up next to the manifest instead, and the
// returned list carries whichever path was found.
func Locate(manifestPath string, videos []string) ([]string, error) {
	base := filepath.Dir(manifestPath)
	located := make([]string, len(videos))

	for i, v := range videos {
		if exists(v) {
			located[i] = v
			continue
		}
		if !filepath.IsAbs(v) {
			candidate := filepath.Join(base, v)
			if exists(candidate) {
				logger.Debug("clip resolved next to manifest", "clip", v, "path", candidate)
				located[i] = candidate
				continue
			}
		}
		return nil, &Error{Kind: MissingClip, Path: v}
	}

	return located, nil
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
