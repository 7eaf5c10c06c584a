// Package invoker hands a resolved run to the concatenation engine.
package invoker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vconcat/cli/engine"
	"github.com/vconcat/cli/logger"
	"github.com/vconcat/cli/options"
)

// ErrNoVideos is returned when there is nothing to concatenate.
var ErrNoVideos = errors.New("no videos to concatenate")

// BuildRequest packages opts and the ordered clip list for the engine.
func BuildRequest(opts options.Options, videos []string) engine.Request {
	t := opts.Transition()
	return engine.Request{
		Output: opts.Output(),
		Videos: append([]string(nil), videos...),
		Transition: engine.Transition{
			Name:     t.Name,
			Duration: t.Duration,
		},
	}
}

// Invoke calls eng exactly once. Any engine failure is returned as
// *engine.Error and is not retried.
func Invoke(ctx context.Context, eng engine.Engine, opts options.Options, videos []string) error {
	if len(videos) == 0 {
		return ErrNoVideos
	}

	req := BuildRequest(opts, videos)
	logger.Info("starting concatenation",
		"engine", eng.Name(),
		"output", req.Output,
		"videos", len(req.Videos),
		"transition", req.Transition.Name,
		"duration_ms", req.Transition.Duration,
	)

	start := time.Now()
	if err := eng.Concat(ctx, req); err != nil {
		var engErr *engine.Error
		if !errors.As(err, &engErr) {
			err = &engine.Error{Engine: eng.Name(), Err: err}
		}
		logger.Error("concatenation failed", "engine", eng.Name(), "error", err)
		return fmt.Errorf("concatenation failed: %w", err)
	}

	logger.Info("concatenation complete", "output", req.Output, "elapsed", time.Since(start))
	return nil
}
