package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vconcat/cli/engine"
	"github.com/vconcat/cli/invoker"
	"github.com/vconcat/cli/manifest"
	"github.com/vconcat/cli/options"
	"github.com/vconcat/cli/ui"
)

type runFlags struct {
	output             string
	videos             string
	transitionName     string
	transitionDuration int
	engine             string
	ffmpegPath         string
	dryRun             bool
	noCheck            bool
}

func newRunCmd(a *app) *cobra.Command {
	f := &runFlags{}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Concatenate the clips listed in a manifest",
		Long: `Concatenate the clips listed in a manifest into one video.

Each manifest line is either a directive, file './clip.mp4', or a bare path.
Blank lines are ignored.

Relative clip paths are checked before the engine starts. A path missing
from the working directory is rewritten relative to the manifest's directory
when the clip exists there. Use --no-check to pass paths to the engine
exactly as written.`,
		Example: "  vconcat run -o ./output.mp4 -v ./video_list.txt -t crosswarp -d 500",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConcat(cmd, a, f)
		},
	}

	defaults := options.DefaultInput()
	runCmd.Flags().StringVarP(&f.output, "output", "o", "", "output video path (required)")
	runCmd.Flags().StringVarP(&f.videos, "videos", "v", "", "video list file path (required)")
	runCmd.Flags().StringVarP(&f.transitionName, "transition-name", "t", defaults.TransitionName, "transition effect name")
	runCmd.Flags().IntVarP(&f.transitionDuration, "transition-duration", "d", defaults.TransitionDuration, "transition duration (ms)")
	runCmd.Flags().StringVar(&f.engine, "engine", "", "concatenation engine: "+strings.Join(engine.Names, ", ")+" (default "+engine.Names[0]+")")
	runCmd.Flags().StringVar(&f.ffmpegPath, "ffmpeg-path", "", "directory containing the ffmpeg and ffprobe binaries")
	runCmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "show the clip list and engine command without running it")
	runCmd.Flags().BoolVar(&f.noCheck, "no-check", false, "pass clip paths through without checking they exist")

	return runCmd
}

// resolveInput merges flags with config defaults. Flags set on the command
// line always win.
func resolveInput(cmd *cobra.Command, a *app, f *runFlags) options.Input {
	in := options.Input{
		Output:             f.output,
		Videos:             f.videos,
		TransitionName:     f.transitionName,
		TransitionDuration: f.transitionDuration,
	}
	if a.cfg == nil {
		return in
	}
	if !cmd.Flags().Changed("transition-name") && a.cfg.Transition.Name != "" {
		in.TransitionName = a.cfg.Transition.Name
	}
	if !cmd.Flags().Changed("transition-duration") && a.cfg.Transition.Duration != nil {
		in.TransitionDuration = *a.cfg.Transition.Duration
	}
	return in
}

func runConcat(cmd *cobra.Command, a *app, f *runFlags) error {
	start := time.Now()
	ctx := cmd.Context()

	opts, err := options.Resolve(resolveInput(cmd, a, f))
	if err != nil {
		return fail("Invalid arguments", err, "Run 'vconcat run --help' for usage")
	}

	eng, err := engine.New(a.engineName(f.engine), a.engineConfig(f.ffmpegPath))
	if err != nil {
		return fail("Invalid arguments", options.Invalid("%v", err))
	}

	// Step 1: Parse manifest
	ui.Step(1, 3, "Reading manifest")
	videos, err := manifest.Parse(opts.Manifest())
	if err != nil {
		return fail("Failed to read manifest", err)
	}
	ui.Detail(fmt.Sprintf("Found %d clips in %s", len(videos), ui.Primary.Render(opts.Manifest())))
	for i, v := range videos {
		ui.Verbosef("%d. %s", i+1, v)
	}

	if !f.noCheck {
		videos, err = manifest.Locate(opts.Manifest(), videos)
		if err != nil {
			return fail("Missing clip", err, "Paths are tried relative to the working directory, then the manifest", "Use --no-check to pass paths through unchanged")
		}
	}

	// Step 2: Engine
	ui.Step(2, 3, "Resolving engine")
	t := opts.Transition()
	rendered := t.Name
	if eng.Name() == engine.Xfade {
		xfade, ok := engine.XfadeFor(t.Name)
		if !ok {
			ui.WarnMsg(fmt.Sprintf("Transition %q has no xfade equivalent; using %q", t.Name, xfade))
		}
		rendered = fmt.Sprintf("%s as xfade %s", t.Name, xfade)
	} else if _, known := engine.LookupTransition(t.Name); !known {
		ui.WarnMsg(fmt.Sprintf("Transition %q is not in the catalogue; passing it through", t.Name))
	}
	ui.Detail(fmt.Sprintf("%s, transition %s (%dms)", ui.Primary.Render(eng.Name()), rendered, t.Duration))

	if f.dryRun {
		return printDryRun(cmd, eng, opts, videos)
	}

	// Step 3: Concatenate
	ui.Step(3, 3, "Concatenating")
	err = ui.RunWithSpinner(fmt.Sprintf("Concatenating %d clips...", len(videos)), func() error {
		return invoker.Invoke(ctx, eng, opts, videos)
	})
	if err != nil {
		return fail("Concatenation failed", err, concatHint(eng.Name()))
	}

	printSummary(opts.Output(), time.Since(start))
	return nil
}

func concatHint(name string) string {
	if name == engine.Xfade {
		return "Make sure ffmpeg and ffprobe are installed or set --ffmpeg-path"
	}
	return "Make sure ffmpeg-concat is installed (npm i -g ffmpeg-concat) or set \"runner\" in the config"
}

func printDryRun(cmd *cobra.Command, eng engine.Engine, opts options.Options, videos []string) error {
	ui.Println()
	ui.Println(ui.Bold.Render("Dry run mode - the engine will not be started"))
	ui.Println()
	for i, v := range videos {
		ui.Printf("  %s %d. %s\n", ui.Dim.Render("•"), i+1, v)
	}
	ui.Println()

	argv, err := eng.Command(cmd.Context(), invoker.BuildRequest(opts, videos))
	if err != nil {
		return fail("Failed to build engine command", err)
	}
	ui.Printf("  %s %s\n", ui.Dim.Render("Command:"), strings.Join(argv, " "))
	return nil
}

func printSummary(output string, duration time.Duration) {
	ui.Println()
	ui.SuccessMsg(fmt.Sprintf("Video concatenation completed successfully (%s)", ui.FormatDuration(duration)))

	if info, err := os.Stat(output); err == nil {
		ui.Printf("  Output: %s %s\n", ui.Primary.Render(output), ui.Dim.Render(ui.FormatBytes(info.Size())))
	} else {
		ui.Printf("  Output: %s\n", ui.Primary.Render(output))
	}
}
