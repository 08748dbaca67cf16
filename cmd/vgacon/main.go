package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/hnimtadd/vgacon"
	"github.com/hnimtadd/vgacon/console/demo"
	"github.com/hnimtadd/vgacon/console/display"
	"github.com/hnimtadd/vgacon/logger"
)

const usage = "vgacon [flags] [command ...]"

type config struct {
	headless     bool
	surface      string
	keyDelay     time.Duration
	commandDelay time.Duration
	logLevel     string
	logFormat    string
	logFile      string
	script       []string
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("vgacon", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.headless, "headless", false, "Run without a terminal UI and print the final screen")
	fs.StringVar(&cfg.surface, "surface", "raw", "Backing surface: raw (video memory layout) or grid")
	fs.DurationVar(&cfg.keyDelay, "key-delay", demo.DefaultKeyDelay, "Delay between typed characters")
	fs.DurationVar(&cfg.commandDelay, "command-delay", demo.DefaultCommandDelay, "Delay between commands")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "Log format: text or json")
	fs.StringVar(&cfg.logFile, "log-file", "", "Write logs to this file (stderr when headless, discarded otherwise)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.surface != "raw" && cfg.surface != "grid" {
		return nil, fmt.Errorf("unknown surface %q", cfg.surface)
	}
	if fs.NArg() > 0 {
		cfg.script = fs.Args()
	}
	return cfg, nil
}

func newLogger(cfg *config) (logger.Logger, io.Closer, error) {
	level, err := logger.ParseLevel(cfg.logLevel)
	if err != nil {
		return nil, nil, err
	}
	typ, err := logger.ParseType(cfg.logFormat)
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	switch {
	case cfg.logFile != "":
		f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out, closer = f, f
	case cfg.headless:
		out = os.Stderr
	}
	return logger.New(logger.Options{Buffer: out, Level: level, Type: typ}), closer, nil
}

func newSurface(kind string) display.Surface {
	if kind == "grid" {
		return display.NewGrid(display.Cols, display.Rows)
	}
	// Hosted stand-in for the memory at display.VGABase.
	mem := make([]byte, display.Cols*display.Rows*display.CellSize)
	return display.NewRaw(mem, display.Cols, display.Rows)
}

func vgaconMain(args []string) int {
	cfg, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log, closer, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := vgacon.Options{
		Surface:      newSurface(cfg.surface),
		Script:       cfg.script,
		KeyDelay:     cfg.keyDelay,
		CommandDelay: cfg.commandDelay,
		Logger:       log,
	}

	if cfg.headless {
		err = runHeadless(ctx, opts, os.Stdout)
	} else {
		err = runTerminal(ctx, opts, log)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("demo failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(vgaconMain(os.Args[1:]))
}
