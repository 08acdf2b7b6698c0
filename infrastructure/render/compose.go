package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/prasetyowira/qrpage/constant"
	"github.com/prasetyowira/qrpage/infrastructure/logger"
)

// Layout constants, in pixels at the reference 300 DPI letter page.
const (
	topMargin  = 300
	sideMargin = 300

	titleFontSize = 150
	titleLineGap  = 20

	urlFontSize    = 80
	urlMinFontSize = 40
	urlShrinkStep  = 2
	urlLineGap     = 10

	qrFrameSize = 20
	sectionGap  = 100
)

// Page is a composed printable page plus any non-fatal warnings collected
// while producing it (currently only font fallback).
type Page struct {
	Image    image.Image
	Warnings []string
}

// Composer lays out a title, a QR image and a URL on a fixed-size
// transparent canvas.
type Composer struct {
	pageWidth    int
	pageHeight   int
	qrWidthRatio float64
	fonts        *FontLoader
}

// NewComposer creates a composer for the given page geometry. qrWidthRatio
// is the fraction of the page width the QR code is scaled to occupy.
func NewComposer(pageWidth, pageHeight int, qrWidthRatio float64, fonts *FontLoader) *Composer {
	if qrWidthRatio <= 0 || qrWidthRatio > 1 {
		qrWidthRatio = 0.78
	}
	return &Composer{
		pageWidth:    pageWidth,
		pageHeight:   pageHeight,
		qrWidthRatio: qrWidthRatio,
		fonts:        fonts,
	}
}

// Compose stacks three regions on a transparent page: the wrapped title at
// the top, the framed QR code in the middle and the URL at the bottom, all
// horizontally centered. Text wider than the page is drawn as-is; overflow
// is an accepted degradation, not an error.
func (c *Composer) Compose(title string, qr image.Image, url string) (*Page, error) {
	dc := gg.NewContext(c.pageWidth, c.pageHeight)
	dc.SetColor(color.Black)

	var warnings []string
	note := func(w string) {
		if w == "" {
			return
		}
		for _, seen := range warnings {
			if seen == w {
				return
			}
		}
		warnings = append(warnings, w)
	}

	maxTextWidth := float64(c.pageWidth - 2*sideMargin)
	centerX := float64(c.pageWidth) / 2

	// Title block.
	titleFace, warning, err := c.fonts.Face(titleFontSize)
	if err != nil {
		return nil, composeError(err)
	}
	note(warning)
	dc.SetFontFace(titleFace)

	currentY := float64(topMargin)
	for _, line := range dc.WordWrap(title, maxTextWidth) {
		dc.DrawStringAnchored(line, centerX, currentY, 0.5, 1)
		currentY += dc.FontHeight() + titleLineGap
	}

	// QR block: scale to the configured page-width fraction. NearestNeighbor
	// keeps module edges hard instead of smearing them.
	qrTarget := int(float64(c.pageWidth) * c.qrWidthRatio)
	scaled := imaging.Resize(qr, qrTarget, qrTarget, imaging.NearestNeighbor)

	qrX := (c.pageWidth - qrTarget) / 2
	qrY := int(currentY) + sectionGap

	dc.DrawRectangle(float64(qrX-qrFrameSize), float64(qrY-qrFrameSize),
		float64(qrTarget+2*qrFrameSize), float64(qrTarget+2*qrFrameSize))
	dc.Fill()
	dc.DrawImage(scaled, qrX, qrY)

	currentY = float64(qrY + qrTarget + qrFrameSize + sectionGap)

	// URL block: shrink the face until the whole URL fits the text width,
	// down to a floor, then wrap whatever still overflows.
	urlSize := float64(urlFontSize)
	for {
		urlFace, warning, err := c.fonts.Face(urlSize)
		if err != nil {
			return nil, composeError(err)
		}
		note(warning)
		dc.SetFontFace(urlFace)

		lineWidth, _ := dc.MeasureString(url)
		if lineWidth <= maxTextWidth || urlSize <= urlMinFontSize {
			break
		}
		urlSize -= urlShrinkStep
	}

	for _, line := range dc.WordWrap(url, maxTextWidth) {
		dc.DrawStringAnchored(line, centerX, currentY, 0.5, 1)
		currentY += dc.FontHeight() + urlLineGap
	}

	logger.Debug("Page composed", logger.LoggerInfo{
		ContextFunction: constant.CtxCompose,
		Data: map[string]interface{}{
			constant.DataTitle:     title,
			constant.DataURL:       url,
			constant.DataPageWidth: c.pageWidth,
			constant.DataFontSize:  urlSize,
		},
	})

	return &Page{Image: dc.Image(), Warnings: warnings}, nil
}

func composeError(err error) error {
	logger.Error("Failed to compose page", logger.LoggerInfo{
		ContextFunction: constant.CtxCompose,
		Error: &logger.CustomError{
			Code:    constant.ErrCodeCompose,
			Message: err.Error(),
			Type:    constant.ErrTypeComposition,
		},
	})
	return err
}
