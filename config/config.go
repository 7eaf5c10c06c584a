// Package config loads optional defaults from a .vconcat.jsonc or
// .vconcat.yaml file. Files are only ever read.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/vconcat/cli/logger"
)

// BaseName is the config file name without extension.
const BaseName = ".vconcat"

// Extensions are tried in this order within each directory.
var Extensions = []string{".jsonc", ".json", ".yaml", ".yml"}

type Transition struct {
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	Duration *int   `json:"duration,omitempty" yaml:"duration,omitempty"` // milliseconds
}

// File is the on-disk configuration. Zero values mean "not set".
type File struct {
	Transition Transition `json:"transition" yaml:"transition"`
	Engine     string     `json:"engine,omitempty" yaml:"engine,omitempty"`
	Runner     string     `json:"runner,omitempty" yaml:"runner,omitempty"`
	FFmpegPath string     `json:"ffmpegPath,omitempty" yaml:"ffmpegPath,omitempty"`
	Verbose    bool       `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Load reads the config at path, choosing the decoder by extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &f)
	default:
		err = decodeJSONC(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if f.Transition.Duration != nil && *f.Transition.Duration < 0 {
		return nil, fmt.Errorf("invalid config %s: transition.duration must be non-negative", path)
	}

	logger.Debug("loaded config", "path", path)
	return &f, nil
}

func decodeJSONC(data []byte, f *File) error {
	std, err := hujson.Standardize(data)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(std))
	dec.DisallowUnknownFields()
	return dec.Decode(f)
}

func decodeYAML(data []byte, f *File) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Find returns the first config file present in dirs, or "" if none.
func Find(dirs ...string) string {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, ext := range Extensions {
			path := filepath.Join(dir, BaseName+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return path
			}
		}
	}
	return ""
}

// Discover loads explicit if set, otherwise the first config found in the
// working directory and then the home directory. No file at all yields an
// empty config.
func Discover(explicit string) (*File, string, error) {
	if explicit != "" {
		f, err := Load(explicit)
		return f, explicit, err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Debug("no home directory for config lookup", "error", err)
		home = ""
	}

	path := Find(".", home)
	if path == "" {
		return &File{}, "", nil
	}
	f, err := Load(path)
	return f, path, err
}
