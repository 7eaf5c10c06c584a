package engine

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/vconcat/cli/logger"
)

const stderrTailLines = 20

// run executes name with args, streaming output to the configured writers
// and keeping stderr for the error report.
func run(ctx context.Context, engineName string, cfg Config, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	var stderr bytes.Buffer
	cmd.Stdout = writerOrDiscard(cfg.Stdout)
	cmd.Stderr = &stderr
	if cfg.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderr, cfg.Stderr)
	}

	logger.Debug("running engine", "engine", engineName, "cmd", name, "args", args)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		return &Error{Engine: engineName, Err: err, Stderr: tail(stderr.String(), stderrTailLines)}
	}
	return nil
}

// output runs a short-lived helper and returns its stdout.
func output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s failed: %w\n%s", filepath.Base(name), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// binary resolves an ffmpeg-suite tool, honouring Config.FFmpegPath.
func binary(cfg Config, name string) string {
	if cfg.FFmpegPath == "" {
		return name
	}
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(cfg.FFmpegPath, name)
}

func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
