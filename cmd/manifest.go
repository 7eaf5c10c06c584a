package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vconcat/cli/manifest"
	"github.com/vconcat/cli/ui"
)

func newManifestCmd(a *app) *cobra.Command {
	var output string

	manifestCmd := &cobra.Command{
		Use:   "manifest <dir>",
		Short: "Write a manifest for the clips in a directory",
		Long: `Write a manifest listing the .mp4 clips in a directory.

Clips are ordered by the number before the first underscore in their name
(0_intro.mp4, 1_song.mp4, ...). Clips without a number come last.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runManifest(cmd, args[0], output)
		},
	}

	manifestCmd.Flags().StringVarP(&output, "output", "o", "", "manifest file to write (default: stdout)")
	return manifestCmd
}

func runManifest(cmd *cobra.Command, dir, output string) error {
	clips, err := manifest.Scan(dir)
	if err != nil {
		return fail("Failed to scan clips", err)
	}
	if len(clips) == 0 {
		return fail("No clips found", fmt.Errorf("no %s files in %s", manifest.ClipExt, dir))
	}

	// Entries are written relative to wherever the manifest will live.
	base := "."
	if output != "" {
		base = filepath.Dir(output)
	}
	entries, err := relativeTo(base, dir, clips)
	if err != nil {
		return fail("Failed to build manifest", err)
	}

	if output == "" {
		return writeManifest(cmd.OutOrStdout(), entries)
	}

	file, err := os.Create(output)
	if err != nil {
		return fail("Failed to write manifest", err)
	}
	defer file.Close()

	if err := writeManifest(file, entries); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fail("Failed to write manifest", err)
	}

	ui.SuccessMsg(fmt.Sprintf("Wrote %d clips to %s", len(entries), ui.Primary.Render(output)))
	return nil
}

func writeManifest(w io.Writer, entries []string) error {
	if err := manifest.Write(w, entries); err != nil {
		return fail("Failed to write manifest", err)
	}
	return nil
}

func relativeTo(base, dir string, clips []string) ([]string, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return nil, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]string, len(clips))
	for i, c := range clips {
		rel, err := filepath.Rel(absBase, filepath.Join(absDir, c))
		if err != nil {
			return nil, err
		}
		entries[i] = rel
	}
	return entries, nil
}
