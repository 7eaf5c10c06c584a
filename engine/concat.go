package engine

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
)

// ConcatEngine drives the ffmpeg-concat CLI, which renders gl-transitions
// between clips.
type ConcatEngine struct {
	cfg Config
}

func (e *ConcatEngine) Name() string { return FFmpegConcat }

func (e *ConcatEngine) Command(ctx context.Context, req Request) ([]string, error) {
	runner, args := detectRunner(e.cfg.Runner)
	if filepath.Base(runner) != concatPackage {
		args = append(args, concatPackage)
	}
	args = append(args,
		"-o", req.Output,
		"-t", req.Transition.Name,
		"-d", strconv.Itoa(req.Transition.Duration),
	)
	args = append(args, req.Videos...)
	return append([]string{runner}, args...), nil
}

func (e *ConcatEngine) Concat(ctx context.Context, req Request) error {
	argv, err := e.Command(ctx, req)
	if err != nil {
		return err
	}

	if _, err := exec.LookPath(argv[0]); err != nil {
		return &Error{Engine: FFmpegConcat, Err: fmt.Errorf("%s not found: %w", argv[0], err)}
	}

	return run(ctx, FFmpegConcat, e.cfg, argv[0], argv[1:]...)
}
