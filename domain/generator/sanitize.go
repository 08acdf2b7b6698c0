package generator

import (
	"strings"
	"unicode"

	"github.com/prasetyowira/qrpage/constant"
)

// maxFilenameRunes bounds sanitized names well under common filesystem
// limits, leaving room for the collision suffix and extension.
const maxFilenameRunes = 100

// Sanitize turns a free-text title into a filesystem-safe base name.
// Letters, digits, spaces, underscores and hyphens are kept; everything
// else, including path separators and control characters, is dropped.
// Whitespace runs collapse to single spaces and the result is truncated.
// A title with nothing to keep yields the fallback placeholder.
func Sanitize(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '_' || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	name := strings.Join(strings.Fields(b.String()), " ")

	if runes := []rune(name); len(runes) > maxFilenameRunes {
		name = strings.TrimRight(string(runes[:maxFilenameRunes]), " ")
	}

	if name == "" {
		return constant.FallbackFilename
	}
	return name
}
