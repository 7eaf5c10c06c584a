package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	in := DefaultInput()
	in.Output = "out.mp4"
	in.Videos = "list.txt"

	opts, err := Resolve(in)
	require.NoError(t, err)

	assert.Equal(t, "out.mp4", opts.Output())
	assert.Equal(t, "list.txt", opts.Manifest())
	assert.Equal(t, Transition{Name: "crosswarp", Duration: 500}, opts.Transition())
}

func TestResolveMissing(t *testing.T) {
	tests := []struct {
		name    string
		in      Input
		missing []string
		msg     string
	}{
		{"no videos", Input{Output: "out.mp4"}, []string{"videos"}, "missing required arguments: --videos"},
		{"no output", Input{Videos: "list.txt"}, []string{"output"}, "missing required arguments: --output"},
		{"neither", Input{}, []string{"output", "videos"}, "missing required arguments: --output, --videos"},
		{"blank output", Input{Output: "  ", Videos: "list.txt"}, []string{"output"}, "missing required arguments: --output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.in)
			require.Error(t, err)

			var argErr *ArgumentError
			require.True(t, errors.As(err, &argErr))
			assert.Equal(t, tt.missing, argErr.Missing)
			assert.Equal(t, tt.msg, err.Error())
		})
	}
}

func TestResolveNegativeDuration(t *testing.T) {
	_, err := Resolve(Input{Output: "o.mp4", Videos: "v.txt", TransitionDuration: -1})

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Empty(t, argErr.Missing)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestResolveKeepsExplicitTransition(t *testing.T) {
	opts, err := Resolve(Input{Output: "o.mp4", Videos: "v.txt", TransitionName: "fade", TransitionDuration: 0})
	require.NoError(t, err)
	assert.Equal(t, Transition{Name: "fade", Duration: 0}, opts.Transition())
}
