package ui

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	SetOutput(&stdout, &stderr)
	t.Cleanup(func() {
		SetOutput(os.Stdout, os.Stderr)
		SetVerbose(false)
	})
	return &stdout, &stderr
}

func TestErrorsGoToStderr(t *testing.T) {
	stdout, stderr := capture(t)

	ErrorMsg("Failed to read manifest", errors.New("no such file"), "check the path")
	WarnMsg("careful")
	SuccessMsg("done")

	if !strings.Contains(stderr.String(), "Failed to read manifest") ||
		!strings.Contains(stderr.String(), "no such file") ||
		!strings.Contains(stderr.String(), "Hint: check the path") ||
		!strings.Contains(stderr.String(), "careful") {
		t.Errorf("unexpected stderr: %q", stderr.String())
	}
	if stdout.String() != "✓ done\n" {
		t.Errorf("unexpected stdout: %q", stdout.String())
	}
}

func TestVerbose(t *testing.T) {
	stdout, _ := capture(t)

	Verbose("quiet")
	if stdout.Len() != 0 {
		t.Errorf("verbose output without verbose mode: %q", stdout.String())
	}

	SetVerbose(true)
	Verbosef("clip %d", 1)
	if !strings.Contains(stdout.String(), "clip 1") {
		t.Errorf("missing verbose line: %q", stdout.String())
	}
}

func TestRunWithSpinnerWithoutTTY(t *testing.T) {
	stdout, _ := capture(t)

	want := errors.New("engine failed")
	err := RunWithSpinner("Concatenating...", func() error { return want })
	if err != want {
		t.Errorf("expected action error, got %v", err)
	}
	if !strings.Contains(stdout.String(), "Concatenating...") {
		t.Errorf("title not printed: %q", stdout.String())
	}
}

func TestStep(t *testing.T) {
	stdout, _ := capture(t)
	Step(1, 3, "Reading manifest")
	if stdout.String() != "[1/3] Reading manifest\n" {
		t.Errorf("unexpected step output: %q", stdout.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{234 * time.Millisecond, "234ms"},
		{1200 * time.Millisecond, "1.2s"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		b    int64
		want string
	}{
		{890, "890B"},
		{1229, "1.2KB"},
		{3565158, "3.4MB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.b); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.b, got, tt.want)
		}
	}
}
