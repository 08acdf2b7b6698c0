package generator

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/prasetyowira/qrpage/constant"
	"github.com/prasetyowira/qrpage/infrastructure/logger"
	"github.com/prasetyowira/qrpage/infrastructure/render"
)

// Encoder produces a QR image for a URL.
type Encoder interface {
	Encode(url string) (image.Image, error)
}

// Composer lays a title, QR image and URL out on a page.
type Composer interface {
	Compose(title string, qr image.Image, url string) (*render.Page, error)
}

// Service drives page generation: sanitize, encode, compose, write.
// Entries are processed one at a time to completion, which is what makes
// filename-collision handling correct without locking.
type Service struct {
	encoder   Encoder
	composer  Composer
	outputDir string
}

// NewService creates a new generator service writing into outputDir.
func NewService(encoder Encoder, composer Composer, outputDir string) *Service {
	logger.Debug("Creating generator service", logger.LoggerInfo{
		ContextFunction: constant.CtxDomain,
		Data: map[string]interface{}{
			constant.DataService:   "generator",
			constant.DataOutputDir: outputDir,
		},
	})

	return &Service{
		encoder:   encoder,
		composer:  composer,
		outputDir: outputDir,
	}
}

// OutputDir returns the directory results are written to.
func (s *Service) OutputDir() string {
	return s.outputDir
}

// RunSingle generates one page for one entry.
func (s *Service) RunSingle(ctx context.Context, entry QrEntry) GenerationResult {
	return s.generate(ctx, entry, map[string]int{})
}

// RunBatch processes entries in input order. Each entry's failure is
// recorded and the batch continues; no entry aborts the run.
func (s *Service) RunBatch(ctx context.Context, entries []QrEntry) BatchSummary {
	logger.CtxInfo(ctx, constant.MsgBatchStarting, logger.LoggerInfo{
		ContextFunction: constant.CtxRunBatch,
		Data: map[string]interface{}{
			constant.DataTotal:     len(entries),
			constant.DataOutputDir: s.outputDir,
		},
	})

	used := map[string]int{}
	summary := BatchSummary{Total: len(entries)}

	for _, entry := range entries {
		result := s.generate(ctx, entry, used)
		summary.Results = append(summary.Results, result)
		if result.Err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Entry: entry, Err: result.Err})
		} else {
			summary.Succeeded++
		}
	}

	logger.CtxInfo(ctx, constant.MsgBatchFinished, logger.LoggerInfo{
		ContextFunction: constant.CtxRunBatch,
		Data: map[string]interface{}{
			constant.DataTotal:     summary.Total,
			constant.DataSucceeded: summary.Succeeded,
			constant.DataFailed:    summary.Failed,
		},
	})

	return summary
}

// generate runs the full pipeline for one entry. used tracks base names
// consumed so far in this run for collision disambiguation.
func (s *Service) generate(ctx context.Context, entry QrEntry, used map[string]int) GenerationResult {
	title := strings.TrimSpace(entry.Title)
	url := strings.TrimSpace(entry.URL)

	if title == "" || url == "" {
		logger.CtxWarn(ctx, constant.MsgEntryFailed, logger.LoggerInfo{
			ContextFunction: constant.CtxRunSingle,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeMalformedRow,
				Message: constant.ErrMalformedRow,
				Type:    constant.ErrTypeValidation,
			},
			Data: map[string]interface{}{
				constant.DataTitle: entry.Title,
				constant.DataURL:   entry.URL,
			},
		})
		return GenerationResult{Entry: entry, Err: ErrMalformedRow}
	}

	qrImg, err := s.encoder.Encode(url)
	if err != nil {
		return s.fail(ctx, entry, constant.ErrCodeQREncode, constant.ErrTypeEncoding, err)
	}

	page, err := s.composer.Compose(title, qrImg, url)
	if err != nil {
		return s.fail(ctx, entry, constant.ErrCodeCompose, constant.ErrTypeComposition, err)
	}

	// Scoped, idempotent creation; the directory may already exist and may
	// already hold files from earlier runs.
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return s.fail(ctx, entry, constant.ErrCodeOutputDir, constant.ErrTypeOutput,
			fmt.Errorf("create output directory: %w", err))
	}

	path := s.uniquePath(Sanitize(title), used)

	if err := writePNG(path, page.Image); err != nil {
		return s.fail(ctx, entry, constant.ErrCodeFileWrite, constant.ErrTypeOutput, err)
	}

	logger.CtxInfo(ctx, constant.MsgEntryProcessed, logger.LoggerInfo{
		ContextFunction: constant.CtxRunSingle,
		Data: map[string]interface{}{
			constant.DataTitle:    title,
			constant.DataURL:      url,
			constant.DataFilename: filepath.Base(path),
			constant.DataWarning:  strings.Join(page.Warnings, "; "),
		},
	})

	return GenerationResult{Entry: entry, OutputPath: path, Warnings: page.Warnings}
}

func (s *Service) fail(ctx context.Context, entry QrEntry, code, errType string, err error) GenerationResult {
	logger.CtxWarn(ctx, constant.MsgEntryFailed, logger.LoggerInfo{
		ContextFunction: constant.CtxRunSingle,
		Error: &logger.CustomError{
			Code:    code,
			Message: err.Error(),
			Type:    errType,
		},
		Data: map[string]interface{}{
			constant.DataTitle: entry.Title,
			constant.DataURL:   entry.URL,
		},
	})
	return GenerationResult{Entry: entry, Err: err}
}

// uniquePath picks the first free filename for the base name: the name
// itself, then -2, -3 and so on. Both names written this run and files
// already on disk count as taken.
func (s *Service) uniquePath(name string, used map[string]int) string {
	for n := used[name]; ; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s-%d", name, n+1)
		}
		path := filepath.Join(s.outputDir, candidate+constant.OutputExtension)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			used[name] = n + 1
			return path
		}
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
