// Package engine runs the external tool that decodes the clips, renders the
// transitions and encodes the result. The tool is opaque to the caller: one
// Request in, success or *Error out.
package engine

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Transition describes the effect between each pair of adjacent clips.
type Transition struct {
	Name     string
	Duration int // milliseconds
}

// Request is a single concatenation job. Videos are played in order.
type Request struct {
	Output     string
	Videos     []string
	Transition Transition
}

// Engine performs one concatenation. Implementations never retry.
type Engine interface {
	Name() string
	Concat(ctx context.Context, req Request) error
	// Command returns the command line Concat would run, for dry runs.
	Command(ctx context.Context, req Request) ([]string, error)
}

const (
	FFmpegConcat = "ffmpeg-concat"
	Xfade        = "xfade"
)

// Names lists the available engines; the first is the default.
var Names = []string{FFmpegConcat, Xfade}

// Config carries the settings shared by all engines.
type Config struct {
	// Runner overrides how ffmpeg-concat is launched, e.g. "npx" or
	// "pnpm exec". Empty means detect.
	Runner string
	// FFmpegPath is a directory holding the ffmpeg and ffprobe binaries.
	FFmpegPath string
	// Stdout and Stderr receive the tool's own output; nil discards it.
	// Stderr is captured either way for error reports.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns the engine registered under name.
func New(name string, cfg Config) (Engine, error) {
	switch strings.ToLower(name) {
	case "", FFmpegConcat:
		return &ConcatEngine{cfg: cfg}, nil
	case Xfade:
		return &XfadeEngine{cfg: cfg}, nil
	}
	return nil, fmt.Errorf("unknown engine %q (available: %s)", name, strings.Join(Names, ", "))
}

// Error reports a failed engine invocation.
type Error struct {
	Engine string
	Err    error
	Stderr string // tail of the tool's stderr, if any
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s failed: %v", e.Engine, e.Err)
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
