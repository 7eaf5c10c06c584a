package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/vconcat/cli/engine"
	"github.com/vconcat/cli/invoker"
	"github.com/vconcat/cli/manifest"
	"github.com/vconcat/cli/options"
)

type recordingEngine struct {
	requests []engine.Request
}

func (r *recordingEngine) Name() string { return "recording" }

func (r *recordingEngine) Concat(ctx context.Context, req engine.Request) error {
	r.requests = append(r.requests, req)
	return nil
}

func (r *recordingEngine) Command(ctx context.Context, req engine.Request) ([]string, error) {
	return nil, nil
}

// TestIntegration_GeneratedManifestRoundTrip scans a clip directory, writes
// a manifest, parses it back and hands it to an engine.
func TestIntegration_GeneratedManifestRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"2_song.mp4", "0_intro.mp4", "1_song.mp4", "outro.mp4"} {
		if err := os.WriteFile(filepath.Join(tmpDir, name), []byte("clip"), 0644); err != nil {
			t.Fatalf("failed to write clip: %v", err)
		}
	}

	clips, err := manifest.Scan(tmpDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	listPath := filepath.Join(tmpDir, "mp4_files.txt")
	f, err := os.Create(listPath)
	if err != nil {
		t.Fatalf("failed to create manifest: %v", err)
	}
	if err := manifest.Write(f, clips); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	f.Close()

	opts, err := options.Resolve(options.Input{
		Output:             filepath.Join(tmpDir, "final_output.mp4"),
		Videos:             listPath,
		TransitionName:     "fade",
		TransitionDuration: 1000,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	videos, err := manifest.Parse(opts.Manifest())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	videos, err = manifest.Locate(opts.Manifest(), videos)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}

	eng := &recordingEngine{}
	if err := invoker.Invoke(context.Background(), eng, opts, videos); err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}

	if len(eng.requests) != 1 {
		t.Fatalf("expected 1 engine call, got %d", len(eng.requests))
	}
	req := eng.requests[0]

	want := []string{"0_intro.mp4", "1_song.mp4", "2_song.mp4", "outro.mp4"}
	if len(req.Videos) != len(want) {
		t.Fatalf("expected %d videos, got %d", len(want), len(req.Videos))
	}
	for i, name := range want {
		if req.Videos[i] != filepath.Join(tmpDir, name) {
			t.Errorf("video[%d]: expected %s, got %s", i, filepath.Join(tmpDir, name), req.Videos[i])
		}
	}
	if req.Transition != (engine.Transition{Name: "fade", Duration: 1000}) {
		t.Errorf("unexpected transition: %+v", req.Transition)
	}
}

// TestIntegration_EmptyManifestStopsBeforeEngine checks that a manifest with
// no usable lines never reaches the engine.
func TestIntegration_EmptyManifestStopsBeforeEngine(t *testing.T) {
	tmpDir := t.TempDir()
	listPath := filepath.Join(tmpDir, "list.txt")
	if err := os.WriteFile(listPath, []byte("\nfile './'\n   \n"), 0644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}

	_, err := manifest.Parse(listPath)
	if err == nil {
		t.Fatal("expected EmptyManifest error")
	}

	mErr, ok := err.(*manifest.Error)
	if !ok || mErr.Kind != manifest.EmptyManifest {
		t.Errorf("expected EmptyManifest, got %v", err)
	}
}
