package engine

import (
	"strings"

	"github.com/vconcat/cli/logger"
)

// TransitionInfo pairs a gl-transition name with its closest ffmpeg xfade
// effect. Xfade is empty when ffmpeg has no counterpart.
type TransitionInfo struct {
	Name  string
	Xfade string
}

// Transitions is the catalogue of well-known gl-transitions. ffmpeg-concat
// accepts any gl-transition, so names outside this list are still passed on.
var Transitions = []TransitionInfo{
	{"fade", "fade"},
	{"fadegrayscale", "fadegrays"},
	{"fadecolor", "fadeblack"},
	{"circleOpen", "circleopen"},
	{"circleCrop", "circlecrop"},
	{"crossWarp", ""},
	{"directionalWarp", "smoothleft"},
	{"directionalWipe", "wipeleft"},
	{"wipeLeft", "wipeleft"},
	{"wipeRight", "wiperight"},
	{"wipeUp", "wipeup"},
	{"wipeDown", "wipedown"},
	{"crossZoom", "zoomin"},
	{"dreamy", "dissolve"},
	{"squaresWire", "pixelize"},
	{"pixelize", "pixelize"},
	{"radial", "radial"},
	{"cube", ""},
	{"swap", ""},
	{"colorphase", ""},
	{"angular", ""},
}

const fallbackXfade = "fade"

// LookupTransition finds a catalogue entry, ignoring case.
func LookupTransition(name string) (TransitionInfo, bool) {
	for _, t := range Transitions {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return TransitionInfo{}, false
}

// XfadeFor reports the xfade transition the xfade engine renders for a
// gl-transition name. ok is false when the engine falls back to a plain fade.
func XfadeFor(name string) (xfade string, ok bool) {
	if t, found := LookupTransition(name); found && t.Xfade != "" {
		return t.Xfade, true
	}
	return fallbackXfade, false
}

func xfadeName(name string) string {
	xfade, ok := XfadeFor(name)
	if ok {
		return xfade
	}
	logger.Warn("no xfade equivalent for transition, using fallback", "transition", name, "fallback", fallbackXfade)
	return fallbackXfade
}
