package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/sanaviron/iconhelper/generator"
	"github.com/sanaviron/iconhelper/icon"
	"golang.org/x/term"
)

const helpBanner = `iconhelper generates the split editor icons.
    Version: %s

Without flags, writes split-horizontally.png, split-vertically.png
and remove-split.png in the current directory.

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	outDir  = flag.String("out", ".", "Destination directory")
	size    = flag.Int("size", icon.DefaultWidth, "Icon width and height, in pixels")
	border  = flag.Int("border", icon.DefaultBorder, "Icon border, in pixels")
	format  = flag.String("format", generator.PNG.String(), "Output format: png, pdf or svg")
	all     = flag.Bool("all", false, "Generate every icon variant, named after the variant")
	workers = flag.Int("conc", runtime.NumCPU(), "Number of icons generated concurrently with -all")
	verbose = flag.Bool("v", false, "Log debug information")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := newLogger(*verbose)
	icon.SetLogger(logger)

	if err := run(logger); err != nil {
		logger.Error("generation failed", "err", err)
		os.Exit(1)
	}
}

// newLogger logs as text on a terminal, as JSON otherwise.
func newLogger(debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func run(logger *slog.Logger) error {
	f, err := generator.ParseFormat(*format)
	if err != nil {
		return err
	}
	opts := generator.Options{
		Width:  *size,
		Height: *size,
		Border: *border,
		Dir:    *outDir,
		Format: f,
	}

	if !*all {
		paths, err := generator.Run(generator.DefaultJobs(), opts)
		for _, p := range paths {
			logger.Info("icon written", "path", p)
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var failed error
	for _, res := range generator.Batch(ctx, generator.AllJobs(), opts, *workers) {
		if res.Err != nil {
			logger.Error("icon failed", "icon", res.Job.Variant.String(), "err", res.Err)
			failed = res.Err
			continue
		}
		logger.Info("icon written", "path", res.Path)
	}
	return failed
}
