package engine

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vconcat/cli/logger"
)

const probeConcurrency = 4

// clipInfo is what the xfade graph needs to know about each input.
type clipInfo struct {
	Path     string
	Duration float64 // seconds
	HasAudio bool
}

// probeAll runs ffprobe on every clip, a few at a time. Results keep the
// input order.
func probeAll(ctx context.Context, cfg Config, videos []string) ([]clipInfo, error) {
	infos := make([]clipInfo, len(videos))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(probeConcurrency)

	for i, v := range videos {
		i, v := i, v
		g.Go(func() error {
			info, err := probe(ctx, cfg, v)
			if err != nil {
				return fmt.Errorf("failed to probe %s: %w", v, err)
			}
			infos[i] = info
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

func probe(ctx context.Context, cfg Config, path string) (clipInfo, error) {
	out, err := output(ctx, binary(cfg, "ffprobe"),
		"-v", "error",
		"-show_entries", "format=duration:stream=codec_type",
		"-of", "default=noprint_wrappers=1",
		path,
	)
	if err != nil {
		return clipInfo{}, err
	}

	info, err := parseProbe(out)
	if err != nil {
		return clipInfo{}, err
	}
	info.Path = path

	logger.Debug("probed clip", "path", path, "duration", info.Duration, "audio", info.HasAudio)
	return info, nil
}

// parseProbe reads ffprobe's key=value output.
func parseProbe(out []byte) (clipInfo, error) {
	var info clipInfo
	haveDuration := false

	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		switch key {
		case "duration":
			d, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return info, fmt.Errorf("invalid duration %q: %w", value, err)
			}
			info.Duration = d
			haveDuration = true
		case "codec_type":
			if value == "audio" {
				info.HasAudio = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return info, err
	}
	if !haveDuration {
		return info, fmt.Errorf("no duration reported")
	}
	return info, nil
}
