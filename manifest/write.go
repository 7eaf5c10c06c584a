package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ClipExt is the extension collected by Scan.
const ClipExt = ".mp4"

// Scan lists the clips in dir, ordered by SortClips.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ClipExt) {
			continue
		}
		names = append(names, e.Name())
	}

	SortClips(names)
	return names, nil
}

// SortClips orders clip names by the integer before the first underscore,
// e.g. "2_intro.mp4" before "10_outro.mp4". Names without a numeric prefix
// go last, in name order.
func SortClips(names []string) {
	sort.Strings(names)
	sort.SliceStable(names, func(i, j int) bool {
		ki, oki := clipIndex(names[i])
		kj, okj := clipIndex(names[j])
		if oki != okj {
			return oki
		}
		return oki && ki < kj
	})
}

func clipIndex(name string) (int, bool) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	prefix, _, _ := strings.Cut(stem, "_")
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Write emits one directive line per clip, in order. Paths use forward
// slashes so the output parses the same on every platform.
func Write(w io.Writer, clips []string) error {
	for _, c := range clips {
		p := filepath.ToSlash(c)
		p = strings.TrimPrefix(p, "./")
		if _, err := fmt.Fprintf(w, "file './%s'\n", p); err != nil {
			return err
		}
	}
	return nil
}
