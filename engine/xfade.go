package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// XfadeEngine renders transitions with ffmpeg's own xfade and acrossfade
// filters. It needs ffprobe to learn each clip's duration, since xfade
// offsets are absolute.
type XfadeEngine struct {
	cfg Config
}

func (e *XfadeEngine) Name() string { return Xfade }

func (e *XfadeEngine) Command(ctx context.Context, req Request) ([]string, error) {
	if len(req.Videos) == 0 {
		return nil, fmt.Errorf("no videos to concatenate")
	}

	infos, err := probeAll(ctx, e.cfg, req.Videos)
	if err != nil {
		return nil, err
	}

	args, err := xfadeArgs(infos, req)
	if err != nil {
		return nil, err
	}
	return append([]string{binary(e.cfg, "ffmpeg")}, args...), nil
}

func (e *XfadeEngine) Concat(ctx context.Context, req Request) error {
	argv, err := e.Command(ctx, req)
	if err != nil {
		return &Error{Engine: Xfade, Err: err}
	}
	return run(ctx, Xfade, e.cfg, argv[0], argv[1:]...)
}

// xfadeArgs builds the ffmpeg argument list for the probed clips.
func xfadeArgs(infos []clipInfo, req Request) ([]string, error) {
	args := []string{"-y", "-hide_banner"}
	for _, c := range infos {
		args = append(args, "-i", c.Path)
	}

	if len(infos) == 1 {
		return append(args, "-c", "copy", req.Output), nil
	}

	withAudio := true
	for _, c := range infos {
		withAudio = withAudio && c.HasAudio
	}

	graph, err := filterGraph(infos, req.Transition, withAudio)
	if err != nil {
		return nil, err
	}

	args = append(args,
		"-filter_complex", graph,
		"-map", "[vout]",
	)
	if withAudio {
		args = append(args, "-map", "[aout]", "-c:a", "aac")
	}
	args = append(args,
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		req.Output,
	)
	return args, nil
}

// filterGraph chains one xfade per clip boundary. The k-th transition starts
// at the sum of the first k clip durations minus k transition durations.
// A zero duration degrades to a hard cut via the concat filter.
func filterGraph(infos []clipInfo, t Transition, withAudio bool) (string, error) {
	n := len(infos)
	d := float64(t.Duration) / 1000

	if t.Duration == 0 {
		var b strings.Builder
		for i := range infos {
			fmt.Fprintf(&b, "[%d:v]", i)
			if withAudio {
				fmt.Fprintf(&b, "[%d:a]", i)
			}
		}
		a := 0
		if withAudio {
			a = 1
		}
		fmt.Fprintf(&b, "concat=n=%d:v=1:a=%d[vout]", n, a)
		if withAudio {
			b.WriteString("[aout]")
		}
		return b.String(), nil
	}

	for _, c := range infos {
		if c.Duration <= d {
			return "", fmt.Errorf("clip %s (%ss) is not longer than the %ss transition",
				c.Path, seconds(c.Duration), seconds(d))
		}
	}

	name := xfadeName(t.Name)
	var parts []string

	for i := range infos {
		parts = append(parts, fmt.Sprintf("[%d:v]settb=AVTB,format=yuv420p[v%d]", i, i))
	}

	prev := "v0"
	elapsed := infos[0].Duration
	for k := 1; k < n; k++ {
		out := fmt.Sprintf("x%d", k)
		if k == n-1 {
			out = "vout"
		}
		offset := elapsed - float64(k)*d
		parts = append(parts, fmt.Sprintf("[%s][v%d]xfade=transition=%s:duration=%s:offset=%s[%s]",
			prev, k, name, seconds(d), seconds(offset), out))
		prev = out
		elapsed += infos[k].Duration
	}

	if withAudio {
		prev = "0:a"
		for k := 1; k < n; k++ {
			out := fmt.Sprintf("a%d", k)
			if k == n-1 {
				out = "aout"
			}
			parts = append(parts, fmt.Sprintf("[%s][%d:a]acrossfade=d=%s[%s]", prev, k, seconds(d), out))
			prev = out
		}
	}

	return strings.Join(parts, ";"), nil
}

func seconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}
