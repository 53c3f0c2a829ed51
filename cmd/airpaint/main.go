package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gogpu/gg"

	"github.com/ironsheep/airpaint/internal/capture"
	"github.com/ironsheep/airpaint/internal/command"
	"github.com/ironsheep/airpaint/internal/config"
	"github.com/ironsheep/airpaint/internal/imaging"
	"github.com/ironsheep/airpaint/internal/session"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	configPath     string
	shakePrevent   bool
	cameraID       int
	replayDir      string
	loop           bool
	commandsSource string
	outDir         string
	headless       bool
	version        bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("airpaint", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.configPath, "json", "", "path to the color limits JSON file (required)")
	fs.StringVar(&o.configPath, "j", "", "shorthand for -json")
	fs.BoolVar(&o.shakePrevent, "use-shake-prevention", false, "suppress segments longer than max_jump")
	fs.BoolVar(&o.shakePrevent, "usp", false, "shorthand for -use-shake-prevention")
	fs.IntVar(&o.cameraID, "camera", 0, "webcam device index")
	fs.StringVar(&o.replayDir, "replay", "", "read frames from this directory instead of a webcam")
	fs.BoolVar(&o.loop, "loop", false, "restart the replay after the last frame")
	fs.StringVar(&o.commandsSource, "commands", "", `read commands from "stdin", one per line`)
	fs.StringVar(&o.outDir, "out", ".", "directory for saved drawings")
	fs.BoolVar(&o.headless, "headless", false, "open no windows and save the drawing at exit")
	fs.BoolVar(&o.version, "version", false, "print version information")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "airpaint - draw in the air with a colored object")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: airpaint -j limits.json [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Keys: r/g/b color, +/- size, c clear, s save, o circle, p rectangle, q quit")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Environment variables:")
		fmt.Fprintln(stderr, "  AIRPAINT_LOG_LEVEL=debug    Enable per-frame logging")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.version {
		return &o, nil
	}
	if o.configPath == "" {
		fs.Usage()
		return nil, errors.New("-json is required")
	}
	if o.commandsSource != "" && o.commandsSource != "stdin" {
		return nil, fmt.Errorf("unsupported -commands source %q", o.commandsSource)
	}
	return &o, nil
}

// newLogger returns a text slog.Logger on stderr at the level named by
// AIRPAINT_LOG_LEVEL.
func newLogger(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if opts.version {
		fmt.Printf("airpaint %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return 0
	}

	logger := newLogger(os.Stderr, os.Getenv("AIRPAINT_LOG_LEVEL"))
	gg.SetLogger(logger)
	logger.Debug("airpaint starting", "version", Version, "built", BuildTime, "commit", GitCommit)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Error("cannot load configuration", "error", err)
		return 1
	}

	cam, err := openCamera(opts)
	if err != nil {
		logger.Error("cannot open camera", "error", err)
		return 1
	}
	defer cam.Close()

	var pollers []command.Poller
	var display session.Display
	if !opts.headless {
		win, err := capture.OpenWindows()
		if err != nil {
			logger.Error("cannot open windows", "error", err)
			return 1
		}
		defer win.Close()
		display = win
		pollers = append(pollers, win)
	}
	if opts.commandsSource == "stdin" {
		lines := command.NewLineSource(os.Stdin, logger)
		defer lines.Close()
		pollers = append(pollers, lines)
	}

	maxJump := 0.0
	if opts.shakePrevent {
		maxJump = cfg.MaxJump
		logger.Info("shake prevention enabled", "max_jump", maxJump)
	}

	s := session.New(session.Options{
		Camera:     cam,
		Display:    display,
		Commands:   command.Merge(pollers...),
		Store:      &imaging.Saver{Dir: opts.outDir},
		Logger:     logger,
		Thresholds: cfg.Thresholds(),
		Prepare:    cfg.PrepareOptions(),
		Pen:        cfg.StartPen(),
		MaxJump:    maxJump,
	})
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runErr := s.Run(ctx)

	// A finite replay ends with a capture failure; that is the normal end
	// of a headless run.
	endOfReplay := opts.replayDir != "" && errors.Is(runErr, io.EOF)
	if opts.headless && (runErr == nil || endOfReplay) {
		if _, err := s.Save(); err != nil {
			logger.Error("cannot save drawing", "error", err)
			return 1
		}
	}

	if runErr != nil && !endOfReplay {
		logger.Error("session failed", "error", runErr, "frames", s.Frames())
		return 1
	}
	logger.Info("session ended", "frames", s.Frames())
	return 0
}

func openCamera(opts *options) (capture.Camera, error) {
	if opts.replayDir != "" {
		return capture.OpenReplay(opts.replayDir, opts.loop)
	}
	return capture.OpenCamera(opts.cameraID)
}
