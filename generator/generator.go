// Package generator renders icons to files, in one of the
// supported output formats.
package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sanaviron/iconhelper/icon"
	"github.com/sanaviron/iconhelper/iconpdf"
	"github.com/sanaviron/iconhelper/iconraster"
	"github.com/sanaviron/iconhelper/iconsvg"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("generator: unknown format")

// Format is an output file format.
type Format uint8

const (
	PNG Format = iota
	PDF
	SVG
)

var formatNames = [...]string{PNG: "png", PDF: "pdf", SVG: "svg"}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("<unknown Format %d>", f)
}

// Ext returns the file extension, dot included.
func (f Format) Ext() string { return "." + f.String() }

// ParseFormat is case insensitive and accepts a leading dot.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(s), ".")
	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options configures the rendering and the output location.
type Options struct {
	Width, Height, Border int
	Dir                   string // output directory
	Format                Format
}

// DefaultOptions returns 64x64 PNG icons with a 4 pixels border,
// written in the current directory.
func DefaultOptions() Options {
	return Options{
		Width:  icon.DefaultWidth,
		Height: icon.DefaultHeight,
		Border: icon.DefaultBorder,
		Dir:    ".",
		Format: PNG,
	}
}

// Job describes one file to generate.
type Job struct {
	Variant  icon.Variant
	Filename string // optional, without extension. Defaults to the variant file name.
}

// DefaultJobs returns the icons generated when running without arguments.
func DefaultJobs() []Job {
	return []Job{
		{Variant: icon.AddSplitHorizontal, Filename: "split-horizontally"},
		{Variant: icon.AddSplitVertical, Filename: "split-vertically"},
		{Variant: icon.RemoveSplitBoth},
	}
}

// AllJobs returns one job per variant, named after the variant.
func AllJobs() []Job {
	variants := icon.Variants()
	out := make([]Job, len(variants))
	for i, v := range variants {
		out[i] = Job{Variant: v}
	}
	return out
}

// Encode renders the icon and writes it to `w`.
func Encode(w io.Writer, ic *icon.Icon, opts Options) error {
	switch opts.Format {
	case PNG:
		img, err := iconraster.Render(ic, opts.Width, opts.Height, opts.Border)
		if err != nil {
			return err
		}
		return iconraster.EncodePNG(w, img)
	case PDF:
		return iconpdf.Write(w, ic, opts.Width, opts.Height, opts.Border)
	case SVG:
		return iconsvg.Write(w, ic, opts.Width, opts.Height, opts.Border)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, opts.Format)
	}
}

// Save renders the icon into opts.Dir, and returns the path of the file.
// When `filename` is empty, the icon file name is used.
// The format extension is always appended.
// An existing file is overwritten.
func Save(ic *icon.Icon, filename string, opts Options) (string, error) {
	if filename == "" {
		filename = ic.Filename()
	}
	path := filepath.Join(opts.Dir, filename+opts.Format.Ext())

	var buf bytes.Buffer
	if err := Encode(&buf, ic, opts); err != nil {
		return "", fmt.Errorf("rendering %s: %w", ic.Name(), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("saving %s: %w", ic.Name(), err)
	}
	icon.Logger().Debug("icon saved", "icon", ic.Name(), "path", path, "bytes", buf.Len())
	return path, nil
}

// Run generates the jobs one after the other, and stops at the first error.
func Run(jobs []Job, opts Options) ([]string, error) {
	paths := make([]string, 0, len(jobs))
	for _, job := range jobs {
		path, err := Save(job.Variant.Icon(), job.Filename, opts)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Result is the outcome of one job of a batch.
type Result struct {
	Job  Job
	Path string
	Err  error
}

// Batch generates the jobs using `workers` goroutines.
// Each job uses its own canvas. Results are returned in job order.
// Once `ctx` is done, the pending jobs fail with the context error.
func Batch(ctx context.Context, jobs []Job, opts Options, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	results := make([]Result, len(jobs))
	indices := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				job := jobs[i]
				results[i].Job = job
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				results[i].Path, results[i].Err = Save(job.Variant.Icon(), job.Filename, opts)
			}
		}()
	}
	for i := range jobs {
		indices <- i
	}
	close(indices)
	wg.Wait()
	return results
}
