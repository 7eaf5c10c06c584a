package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vconcat/cli/config"
	"github.com/vconcat/cli/engine"
	"github.com/vconcat/cli/logger"
	"github.com/vconcat/cli/ui"
)

// app holds state shared by every subcommand: global flags and the loaded
// config file.
type app struct {
	configPath string
	verbose    bool

	cfg     *config.File
	cfgPath string
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, path, err := config.Discover(a.configPath)
	if err != nil {
		return fail("Failed to load config", err)
	}
	a.cfg = cfg
	a.cfgPath = path

	verbose := a.verbose || cfg.Verbose
	ui.SetVerbose(verbose)
	if verbose {
		logger.SetLogger(logger.NewWithWriter(ui.ErrOut(), true))
	} else {
		logger.SetLogger(logger.NewWithWriter(io.Discard, false))
	}

	if path != "" {
		ui.Verbosef("using config %s", path)
	}
	return nil
}

// engineName picks the engine: flag, then config, then the default.
func (a *app) engineName(flag string) string {
	if flag != "" {
		return flag
	}
	if a.cfg != nil && a.cfg.Engine != "" {
		return a.cfg.Engine
	}
	return engine.Names[0]
}

// engineConfig builds engine settings. In verbose mode the tool's own output
// is streamed; otherwise it stays quiet behind the spinner.
func (a *app) engineConfig(ffmpegPath string) engine.Config {
	cfg := engine.Config{}
	if a.cfg != nil {
		cfg.Runner = a.cfg.Runner
		cfg.FFmpegPath = a.cfg.FFmpegPath
	}
	if ffmpegPath != "" {
		cfg.FFmpegPath = ffmpegPath
	}
	if ui.IsVerbose() {
		cfg.Stdout = ui.Out()
		cfg.Stderr = ui.ErrOut()
	}
	return cfg
}
