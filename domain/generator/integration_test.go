package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prasetyowira/qrpage/infrastructure/cache"
	"github.com/prasetyowira/qrpage/infrastructure/logger"
	"github.com/prasetyowira/qrpage/infrastructure/qrcode"
	"github.com/prasetyowira/qrpage/infrastructure/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRealService(t *testing.T, outDir string) *Service {
	t.Helper()

	fonts, err := render.NewFontLoader("", cache.NewFaceCache(32))
	require.NoError(t, err)

	composer := render.NewComposer(2550, 3300, 0.78, fonts)
	encoder := qrcode.NewGenerator("medium", 16)

	return NewService(encoder, composer, outDir)
}

func TestIntegration_MixedBatch(t *testing.T) {
	// One good row, one empty row, one non-URL row.
	outDir := t.TempDir()
	service := newRealService(t, outDir)

	entries := []QrEntry{
		{Title: "Launch", URL: "https://a.example/x"},
		{Title: "", URL: ""},
		{Title: "Demo", URL: "not a url"},
	}

	summary := service.RunBatch(logger.NewRequestContext(), entries)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 2, summary.Failed)
	require.Len(t, summary.Failures, 2)
	assert.ErrorIs(t, summary.Failures[0].Err, ErrMalformedRow)
	assert.ErrorIs(t, summary.Failures[1].Err, qrcode.ErrInvalidURL)

	assert.FileExists(t, filepath.Join(outDir, "Launch.png"))

	files, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestIntegration_Deterministic(t *testing.T) {
	entry := QrEntry{Title: "Launch Party", URL: "https://a.example/x"}

	dirA := t.TempDir()
	dirB := t.TempDir()

	resultA := newRealService(t, dirA).RunSingle(logger.NewRequestContext(), entry)
	resultB := newRealService(t, dirB).RunSingle(logger.NewRequestContext(), entry)

	require.NoError(t, resultA.Err)
	require.NoError(t, resultB.Err)

	bytesA, err := os.ReadFile(resultA.OutputPath)
	require.NoError(t, err)
	bytesB, err := os.ReadFile(resultB.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, bytesA, bytesB)
}

func TestIntegration_LongTitleAndURLStillCompose(t *testing.T) {
	// Overflowing text is an accepted degradation, never a failure.
	outDir := t.TempDir()
	service := newRealService(t, outDir)

	entry := QrEntry{
		Title: "An Extremely Long Event Title That Definitely Needs Wrapping Across Several Lines To Fit The Page",
		URL:   "https://subdomain.some-very-long-host.example/with/a/deep/path/segment?and=query&parameters=too",
	}

	result := service.RunSingle(logger.NewRequestContext(), entry)

	require.NoError(t, result.Err)
	assert.FileExists(t, result.OutputPath)
}
