package render

import (
	"fmt"
	"os"
	"sync"

	"github.com/prasetyowira/qrpage/constant"
	"github.com/prasetyowira/qrpage/infrastructure/cache"
	"github.com/prasetyowira/qrpage/infrastructure/logger"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// builtinFontKey identifies the bundled face in the cache, where it can
// never collide with a real filesystem path.
const builtinFontKey = "\x00builtin"

// FontLoader resolves font faces for the composer. A configured font path
// that is missing or unparseable downgrades to the bundled Go Regular face
// with a warning; face lookup never fails past this boundary because of a
// bad configuration.
type FontLoader struct {
	path  string
	cache *cache.FaceCache

	once     sync.Once
	resolved *opentype.Font
	faceKey  string
	warning  string

	fallback *opentype.Font
}

// NewFontLoader creates a loader for the given font path ("" means the
// bundled default). The bundled fallback is parsed eagerly so a broken
// build surfaces immediately rather than mid-batch.
func NewFontLoader(path string, faces *cache.FaceCache) (*FontLoader, error) {
	fallback, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bundled font: %w", err)
	}
	return &FontLoader{
		path:     path,
		cache:    faces,
		fallback: fallback,
	}, nil
}

// Face returns a face at the given pixel size plus a warning when the
// configured font could not be used. The warning repeats on every call so
// each composed page can report it.
func (l *FontLoader) Face(size float64) (font.Face, string, error) {
	l.once.Do(l.resolve)

	if face, ok := l.cache.Get(l.faceKey, size); ok {
		return face, l.warning, nil
	}

	face, err := opentype.NewFace(l.resolved, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, l.warning, fmt.Errorf("build font face at size %.0f: %w", size, err)
	}

	l.cache.Set(l.faceKey, size, face)
	return face, l.warning, nil
}

// resolve decides once per loader which parsed font backs all faces.
func (l *FontLoader) resolve() {
	l.resolved = l.fallback
	l.faceKey = builtinFontKey

	if l.path == "" {
		return
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		l.warn(err)
		return
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		l.warn(err)
		return
	}

	l.resolved = parsed
	l.faceKey = l.path
}

func (l *FontLoader) warn(err error) {
	l.warning = fmt.Sprintf("font %q could not be loaded (%v); using bundled default", l.path, err)

	logger.Warn(constant.MsgFontFallback, logger.LoggerInfo{
		ContextFunction: constant.CtxLoadFace,
		Error: &logger.CustomError{
			Code:    constant.ErrCodeFontLoad,
			Message: err.Error(),
			Type:    constant.ErrTypeRender,
		},
		Data: map[string]interface{}{
			constant.DataFontPath: l.path,
		},
	})
}
