// Package csvfile reads batch input: a UTF-8 CSV whose header row names a
// Title and a URL column. Extra columns are ignored; column order does not
// matter. A missing header is fatal for the whole batch, before any row is
// processed; per-row problems are left for the batch driver to record.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prasetyowira/qrpage/constant"
	"github.com/prasetyowira/qrpage/domain/generator"
	"github.com/prasetyowira/qrpage/infrastructure/logger"
)

// FatalInputError aborts a batch before any row is processed.
type FatalInputError struct {
	Reason string
}

func (e *FatalInputError) Error() string {
	return e.Reason
}

// IsFatal reports whether err is a FatalInputError.
func IsFatal(err error) bool {
	var fatal *FatalInputError
	return errors.As(err, &fatal)
}

// ReadFile reads batch entries from a CSV file on disk.
func ReadFile(path string) ([]generator.QrEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("Failed to open CSV file", logger.LoggerInfo{
			ContextFunction: constant.CtxReadCSV,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeCSVOpen,
				Message: err.Error(),
				Type:    constant.ErrTypeInput,
			},
			Data: map[string]interface{}{
				constant.DataCSVPath: path,
			},
		})
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	return ReadEntries(f)
}

// ReadEntries parses the header row, then turns every subsequent row into a
// QrEntry. Short rows yield entries with empty fields rather than being
// dropped, so the batch driver can record them as malformed.
func ReadEntries(r io.Reader) ([]generator.QrEntry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &FatalInputError{Reason: constant.ErrMissingCSVHeader}
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	titleIdx, urlIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case constant.CSVHeaderTitle:
			if titleIdx < 0 {
				titleIdx = i
			}
		case constant.CSVHeaderURL:
			if urlIdx < 0 {
				urlIdx = i
			}
		}
	}

	if titleIdx < 0 || urlIdx < 0 {
		logger.Error("CSV header missing required columns", logger.LoggerInfo{
			ContextFunction: constant.CtxReadCSV,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeCSVMissingHeader,
				Message: constant.ErrMissingCSVHeader,
				Type:    constant.ErrTypeInput,
			},
			Data: map[string]interface{}{
				constant.DataHeaders: header,
			},
		})
		return nil, &FatalInputError{Reason: constant.ErrMissingCSVHeader}
	}

	var entries []generator.QrEntry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Error("Failed to read CSV row", logger.LoggerInfo{
				ContextFunction: constant.CtxReadCSV,
				Error: &logger.CustomError{
					Code:    constant.ErrCodeCSVRead,
					Message: err.Error(),
					Type:    constant.ErrTypeInput,
				},
			})
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		entries = append(entries, generator.QrEntry{
			Title: field(record, titleIdx),
			URL:   field(record, urlIdx),
		})
	}

	return entries, nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
