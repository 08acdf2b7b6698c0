package csvfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prasetyowira/qrpage/domain/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEntries_ParsesRows(t *testing.T) {
	input := "Title,URL\nLaunch,https://a.example/x\nDemo,https://b.example\n"

	entries, err := ReadEntries(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []generator.QrEntry{
		{Title: "Launch", URL: "https://a.example/x"},
		{Title: "Demo", URL: "https://b.example"},
	}, entries)
}

func TestReadEntries_ColumnOrderDoesNotMatter(t *testing.T) {
	input := "URL,Title\nhttps://a.example,Launch\n"

	entries, err := ReadEntries(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Launch", entries[0].Title)
	assert.Equal(t, "https://a.example", entries[0].URL)
}

func TestReadEntries_ExtraColumnsIgnored(t *testing.T) {
	input := "Notes,Title,Owner,URL\nskip,Launch,me,https://a.example\n"

	entries, err := ReadEntries(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, generator.QrEntry{Title: "Launch", URL: "https://a.example"}, entries[0])
}

func TestReadEntries_HeaderIsCaseSensitive(t *testing.T) {
	input := "title,url\nLaunch,https://a.example\n"

	entries, err := ReadEntries(strings.NewReader(input))

	assert.Nil(t, entries)
	assert.True(t, IsFatal(err))
}

func TestReadEntries_MissingURLHeaderIsFatal(t *testing.T) {
	input := "Title,Link\nLaunch,https://a.example\n"

	entries, err := ReadEntries(strings.NewReader(input))

	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.Nil(t, entries)
}

func TestReadEntries_EmptyInputIsFatal(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader(""))

	assert.True(t, IsFatal(err))
	assert.Nil(t, entries)
}

func TestReadEntries_ShortRowsKeptForDriver(t *testing.T) {
	// A row missing the URL column still becomes an entry; the batch
	// driver records it as malformed instead of silently dropping it.
	input := "Title,URL\nOnly Title\n,\n"

	entries, err := ReadEntries(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, generator.QrEntry{Title: "Only Title", URL: ""}, entries[0])
	assert.Equal(t, generator.QrEntry{Title: "", URL: ""}, entries[1])
}

func TestReadEntries_TrimsFields(t *testing.T) {
	input := "Title,URL\n  Launch  ,  https://a.example  \n"

	entries, err := ReadEntries(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, generator.QrEntry{Title: "Launch", URL: "https://a.example"}, entries[0])
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("Title,URL\nLaunch,https://a.example\n"), 0o644))

	entries, err := ReadFile(path)

	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestReadFile_MissingFile(t *testing.T) {
	entries, err := ReadFile(filepath.Join(t.TempDir(), "absent.csv"))

	assert.Error(t, err)
	assert.False(t, IsFatal(err))
	assert.Nil(t, entries)
}
