// Package manifest reads and writes clip lists.
//
// A manifest is newline-separated UTF-8 text. Each non-blank line is either a
// concat-demuxer style directive, file './clip.mp4', or a bare path taken
// verbatim. Blank lines are ignored.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/vconcat/cli/logger"
)

// LineKind tells how a manifest line was interpreted.
type LineKind int

const (
	Verbatim LineKind = iota
	Directive
)

func (k LineKind) String() string {
	if k == Directive {
		return "directive"
	}
	return "verbatim"
}

// Line is one classified manifest line.
type Line struct {
	Kind LineKind
	Path string
}

var directivePattern = regexp.MustCompile(`^file\s+'\./(.*)'$`)

// ParseLine classifies a single line. The directive form wins when it
// matches; anything else is kept verbatim after trimming.
func ParseLine(raw string) Line {
	line := strings.TrimSpace(raw)
	if m := directivePattern.FindStringSubmatch(line); m != nil {
		return Line{Kind: Directive, Path: m[1]}
	}
	return Line{Kind: Verbatim, Path: line}
}

// ParseString resolves manifest text into the ordered clip list.
// An empty result is reported as EmptyManifest.
func ParseString(text string) ([]string, error) {
	var videos []string
	for _, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line := ParseLine(raw)
		logger.Debug("manifest line", "raw", raw, "kind", line.Kind, "path", line.Path)
		// file './' captures nothing; it is dropped, not an error.
		if line.Path == "" {
			continue
		}
		videos = append(videos, line.Path)
	}

	if len(videos) == 0 {
		return nil, &Error{Kind: EmptyManifest}
	}
	return videos, nil
}

// Parse reads the manifest at path and returns its clips in file order.
func Parse(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: ReadFailure, Path: path, Err: err}
	}
	logger.Debug("read manifest", "path", path, "bytes", len(content))

	videos, err := ParseString(string(content))
	if err != nil {
		var mErr *Error
		if errors.As(err, &mErr) {
			mErr.Path = path
		}
		return nil, err
	}

	logger.Debug("parsed manifest", "path", path, "videos", videos)
	return videos, nil
}

// ErrorKind classifies manifest failures.
type ErrorKind int

const (
	ReadFailure ErrorKind = iota
	EmptyManifest
	MissingClip
)

func (k ErrorKind) String() string {
	switch k {
	case ReadFailure:
		return "read failure"
	case EmptyManifest:
		return "empty manifest"
	case MissingClip:
		return "missing clip"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned for every manifest problem. Path is the manifest for
// ReadFailure and EmptyManifest, and the clip for MissingClip.
type Error struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ReadFailure:
		return fmt.Sprintf("failed to read manifest %s: %v", e.Path, e.Err)
	case EmptyManifest:
		if e.Path == "" {
			return "no videos found in the list file"
		}
		return fmt.Sprintf("no videos found in the list file %s", e.Path)
	case MissingClip:
		return fmt.Sprintf("clip not found: %s", e.Path)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}
