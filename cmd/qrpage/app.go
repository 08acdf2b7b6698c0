package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/prasetyowira/qrpage/config"
	"github.com/prasetyowira/qrpage/domain/generator"
	"github.com/prasetyowira/qrpage/infrastructure/cache"
	"github.com/prasetyowira/qrpage/infrastructure/csvfile"
	"github.com/prasetyowira/qrpage/infrastructure/logger"
	"github.com/prasetyowira/qrpage/infrastructure/qrcode"
	"github.com/prasetyowira/qrpage/infrastructure/render"
)

// Exit codes, part of the CLI contract.
const (
	ExitOK      = 0 // every entry succeeded
	ExitFatal   = 1 // usage error or fatal input error, nothing processed
	ExitPartial = 2 // run completed but one or more entries failed
)

const usage = `Usage:
  qrpage "<title>" "<url>"                  generate a single QR page
  qrpage <input.csv> [output_dir] [font]    generate pages for every CSV row

Batch mode expects a CSV with Title and URL header columns.
Output defaults to the OUTPUT_DIR environment variable or ./output.

Exit codes: 0 all entries succeeded, 1 fatal input or usage error,
2 run completed with one or more failed entries.
`

// App wires the CLI to the generation service.
type App struct {
	cfg config.Config
	out io.Writer
}

// NewApp creates the CLI application.
func NewApp(cfg config.Config, out io.Writer) *App {
	return &App{cfg: cfg, out: out}
}

// Run executes one CLI invocation and returns the process exit code.
func (a *App) Run(args []string) int {
	switch {
	case len(args) == 1 && isCSV(args[0]):
		return a.runBatch(args[0], a.cfg.OutputDir, a.cfg.FontPath)
	case len(args) == 2 && isCSV(args[0]):
		return a.runBatch(args[0], args[1], a.cfg.FontPath)
	case len(args) == 3 && isCSV(args[0]):
		return a.runBatch(args[0], args[1], args[2])
	case len(args) == 2:
		return a.runSingle(args[0], args[1])
	default:
		fmt.Fprint(a.out, usage)
		return ExitFatal
	}
}

func (a *App) runSingle(title, url string) int {
	service, err := a.buildService(a.cfg.OutputDir, a.cfg.FontPath)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return ExitFatal
	}

	result := service.RunSingle(logger.NewRequestContext(), generator.QrEntry{Title: title, URL: url})
	a.printResult(result)

	if !result.Succeeded() {
		return ExitPartial
	}
	return ExitOK
}

func (a *App) runBatch(csvPath, outputDir, fontPath string) int {
	entries, err := csvfile.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return ExitFatal
	}

	service, err := a.buildService(outputDir, fontPath)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return ExitFatal
	}

	summary := service.RunBatch(logger.NewRequestContext(), entries)

	for _, result := range summary.Results {
		a.printResult(result)
	}
	fmt.Fprintf(a.out, "%d of %d entries succeeded, %d failed\n",
		summary.Succeeded, summary.Total, summary.Failed)

	if summary.Failed > 0 {
		return ExitPartial
	}
	return ExitOK
}

func (a *App) printResult(result generator.GenerationResult) {
	if result.Succeeded() {
		fmt.Fprintf(a.out, "saved: %s\n", result.OutputPath)
	} else {
		fmt.Fprintf(a.out, "failed: %q %q: %v\n", result.Entry.Title, result.Entry.URL, result.Err)
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(a.out, "warning: %s\n", warning)
	}
}

func (a *App) buildService(outputDir, fontPath string) (*generator.Service, error) {
	fonts, err := render.NewFontLoader(fontPath, cache.NewFaceCache(faceCacheSize))
	if err != nil {
		return nil, err
	}

	composer := render.NewComposer(a.cfg.PageWidth, a.cfg.PageHeight, a.cfg.QRWidthRatio, fonts)
	encoder := qrcode.NewGenerator(a.cfg.QRLevel, a.cfg.QRBoxSize)

	return generator.NewService(encoder, composer, outputDir), nil
}

// faceCacheSize comfortably covers both text sizes plus the whole URL
// shrink-to-fit range.
const faceCacheSize = 32

// isCSV distinguishes batch mode (first argument is a CSV path) from
// single mode (first argument is a title).
func isCSV(arg string) bool {
	return strings.EqualFold(filepath.Ext(arg), ".csv")
}
