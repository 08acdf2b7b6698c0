package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prasetyowira/qrpage/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(outDir string) config.Config {
	return config.Config{
		OutputDir:    outDir,
		PageWidth:    2550,
		PageHeight:   3300,
		DPI:          300,
		QRLevel:      "medium",
		QRBoxSize:    8,
		QRWidthRatio: 0.78,
	}
}

func runApp(t *testing.T, cfg config.Config, args ...string) (int, string) {
	t.Helper()

	var out bytes.Buffer
	code := NewApp(cfg, &out).Run(args)
	return code, out.String()
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	code, out := runApp(t, testConfig(t.TempDir()))

	assert.Equal(t, ExitFatal, code)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Exit codes:")
}

func TestRun_TooManyArgsWithoutCSV(t *testing.T) {
	code, _ := runApp(t, testConfig(t.TempDir()), "a", "b", "c", "d")

	assert.Equal(t, ExitFatal, code)
}

func TestRun_SingleMode(t *testing.T) {
	outDir := t.TempDir()

	code, out := runApp(t, testConfig(outDir), "Launch", "https://a.example/x")

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "saved:")
	assert.FileExists(t, filepath.Join(outDir, "Launch.png"))
}

func TestRun_SingleModeInvalidURL(t *testing.T) {
	code, out := runApp(t, testConfig(t.TempDir()), "Demo", "not a url")

	assert.Equal(t, ExitPartial, code)
	assert.Contains(t, out, "failed:")
}

func TestRun_BatchMode(t *testing.T) {
	outDir := t.TempDir()
	csvPath := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("Title,URL\nLaunch,https://a.example/x\nDemo,https://b.example\n"), 0o644))

	code, out := runApp(t, testConfig(outDir), csvPath)

	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "2 of 2 entries succeeded, 0 failed")
	assert.FileExists(t, filepath.Join(outDir, "Launch.png"))
	assert.FileExists(t, filepath.Join(outDir, "Demo.png"))
}

func TestRun_BatchModeWithExplicitOutputDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "pages")
	csvPath := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("Title,URL\nLaunch,https://a.example/x\n"), 0o644))

	code, _ := runApp(t, testConfig("ignored"), csvPath, outDir)

	assert.Equal(t, ExitOK, code)
	assert.FileExists(t, filepath.Join(outDir, "Launch.png"))
}

func TestRun_BatchModePartialFailure(t *testing.T) {
	outDir := t.TempDir()
	csvPath := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("Title,URL\nLaunch,https://a.example/x\n,\nDemo,not a url\n"), 0o644))

	code, out := runApp(t, testConfig(outDir), csvPath)

	assert.Equal(t, ExitPartial, code)
	assert.Contains(t, out, "1 of 3 entries succeeded, 2 failed")
}

func TestRun_BatchModeMissingHeaderIsFatal(t *testing.T) {
	outDir := t.TempDir()
	csvPath := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(csvPath,
		[]byte("Title,Link\nLaunch,https://a.example/x\n"), 0o644))

	code, out := runApp(t, testConfig(outDir), csvPath)

	assert.Equal(t, ExitFatal, code)
	assert.Contains(t, out, "error:")

	files, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, files, "fatal input error must write zero files")
}

func TestRun_BatchModeMissingFile(t *testing.T) {
	code, out := runApp(t, testConfig(t.TempDir()), filepath.Join(t.TempDir(), "absent.csv"))

	assert.Equal(t, ExitFatal, code)
	assert.Contains(t, out, "error:")
}

func TestIsCSV(t *testing.T) {
	assert.True(t, isCSV("input.csv"))
	assert.True(t, isCSV("INPUT.CSV"))
	assert.True(t, isCSV("/path/to/list.Csv"))
	assert.False(t, isCSV("My Event Title"))
	assert.False(t, isCSV("https://example.com"))
}
