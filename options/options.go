// Package options turns raw command-line values into a validated, immutable
// run configuration.
package options

import (
	"fmt"
	"strings"
)

const (
	DefaultTransitionName     = "crosswarp"
	DefaultTransitionDuration = 500 // milliseconds
)

// Transition names the effect placed between adjacent clips.
type Transition struct {
	Name     string
	Duration int // milliseconds
}

// Options is the resolved configuration for one concatenation run.
type Options struct {
	output     string
	manifest   string
	transition Transition
}

func (o Options) Output() string         { return o.output }
func (o Options) Manifest() string       { return o.manifest }
func (o Options) Transition() Transition { return o.transition }

// Input holds flag values as parsed, before validation.
type Input struct {
	Output             string
	Videos             string
	TransitionName     string
	TransitionDuration int
}

// DefaultInput returns an Input carrying the built-in transition defaults.
func DefaultInput() Input {
	return Input{
		TransitionName:     DefaultTransitionName,
		TransitionDuration: DefaultTransitionDuration,
	}
}

// ArgumentError reports missing or invalid command-line arguments.
type ArgumentError struct {
	Missing []string // flag names, without dashes
	Reason  string
}

func (e *ArgumentError) Error() string {
	if len(e.Missing) > 0 {
		flags := make([]string, len(e.Missing))
		for i, name := range e.Missing {
			flags[i] = "--" + name
		}
		return fmt.Sprintf("missing required arguments: %s", strings.Join(flags, ", "))
	}
	return e.Reason
}

// Invalid builds an ArgumentError for a malformed value.
func Invalid(format string, a ...any) *ArgumentError {
	return &ArgumentError{Reason: fmt.Sprintf(format, a...)}
}

// Resolve validates in and returns the Options for a run. Output and videos
// are checked together so one error names every missing flag.
func Resolve(in Input) (Options, error) {
	var missing []string
	if strings.TrimSpace(in.Output) == "" {
		missing = append(missing, "output")
	}
	if strings.TrimSpace(in.Videos) == "" {
		missing = append(missing, "videos")
	}
	if len(missing) > 0 {
		return Options{}, &ArgumentError{Missing: missing}
	}

	if in.TransitionDuration < 0 {
		return Options{}, Invalid("transition duration must be non-negative, got %d", in.TransitionDuration)
	}

	name := in.TransitionName
	if name == "" {
		name = DefaultTransitionName
	}

	return Options{
		output:   in.Output,
		manifest: in.Videos,
		transition: Transition{
			Name:     name,
			Duration: in.TransitionDuration,
		},
	}, nil
}
