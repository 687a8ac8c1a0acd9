// Command triangle opens a window and draws the triangle smoke scene.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"diamond-gl/core"
	"diamond-gl/dgl"
	"diamond-gl/internal/triangle"
	"diamond-gl/opengl"
	"diamond-gl/window"
)

type options struct {
	config  string
	width   int
	height  int
	title   string
	frames  int
	verbose bool
	debug   bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "triangle",
		Short:        "Render a rotating triangle through diamond-gl",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := windowConfig(cmd, opts)
			if err != nil {
				return err
			}
			log, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer log.Sync()
			return run(cfg, opts, log)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "window config file (TOML)")
	flags.IntVar(&opts.width, "width", 0, "window width, overrides the config file")
	flags.IntVar(&opts.height, "height", 0, "window height, overrides the config file")
	flags.StringVar(&opts.title, "title", "", "window title, overrides the config file")
	flags.IntVar(&opts.frames, "frames", 0, "exit after this many frames (0 runs until closed)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "development logging")
	flags.BoolVar(&opts.debug, "debug", false, "request a debug context and log driver messages")
	return cmd
}

func windowConfig(cmd *cobra.Command, opts options) (core.WindowConfig, error) {
	cfg := core.DefaultWindowConfig()
	if opts.config != "" {
		var err error
		if cfg, err = core.LoadWindowConfig(opts.config); err != nil {
			return cfg, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if flags.Changed("title") {
		cfg.Title = opts.title
	}
	if opts.debug {
		cfg.Debug = true
	}
	return cfg, cfg.Validate()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg core.WindowConfig, opts options, log *zap.Logger) error {
	dgl.SetLogger(log)

	win, err := window.New(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	drv, err := opengl.New(log)
	if err != nil {
		return err
	}
	if cfg.Debug {
		drv.EnableDebugOutput()
	}

	ctx := dgl.NewContext(drv, dgl.Config{Logger: log, TrackLeaks: true})
	scene, err := triangle.New(ctx, cfg.Background)
	if err != nil {
		ctx.Close()
		return err
	}

	width, height := win.GetFramebufferSize()
	ctx.Viewport(0, 0, int32(width), int32(height))

	start := window.Time()
	for frame := 0; !win.ShouldClose(); frame++ {
		if opts.frames > 0 && frame >= opts.frames {
			break
		}
		win.PollEvents()
		if win.IsKeyPressed(window.KeyEscape) || win.IsKeyPressed(window.KeyQ) {
			win.SetShouldClose(true)
		}
		if w, h := win.GetFramebufferSize(); w != width || h != height {
			width, height = w, h
			ctx.Viewport(0, 0, int32(width), int32(height))
		}

		scene.Frame(float32(window.Time() - start))
		if err := ctx.Err(); err != nil {
			log.Warn("gl errors during frame", zap.Int("frame", frame), zap.Error(err))
		}
		win.SwapBuffers()
		ctx.Collect()
	}

	scene.Release()
	if err := ctx.Close(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("exiting")
	return nil
}
