package generator

import (
	"errors"

	"github.com/prasetyowira/qrpage/constant"
)

// ErrMalformedRow marks an entry missing a title and/or URL. It is recorded
// per entry and never aborts a batch.
var ErrMalformedRow = errors.New(constant.ErrMalformedRow)

// QrEntry is one title/URL pair to generate a page for.
type QrEntry struct {
	Title string
	URL   string
}

// GenerationResult is the outcome for a single entry. OutputPath is set only
// on success; Warnings carries non-fatal notes such as font fallback.
type GenerationResult struct {
	Entry      QrEntry
	OutputPath string
	Warnings   []string
	Err        error
}

// Succeeded reports whether the entry produced an output file.
func (r GenerationResult) Succeeded() bool {
	return r.Err == nil
}

// Failure pairs a failed entry with its reason, in input order.
type Failure struct {
	Entry QrEntry
	Err   error
}

// BatchSummary aggregates one batch run.
type BatchSummary struct {
	Total     int
	Succeeded int
	Failed    int
	Failures  []Failure
	Results   []GenerationResult
}
