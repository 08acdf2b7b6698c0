package qrcode

import (
	"errors"
	"image"
	"net/url"
	"strings"

	"github.com/prasetyowira/qrpage/constant"
	"github.com/prasetyowira/qrpage/infrastructure/logger"
	"github.com/skip2/go-qrcode"
)

// ErrInvalidURL is returned when the payload fails the validation rule:
// a parseable http or https URL with a non-empty host.
var ErrInvalidURL = errors.New(constant.ErrInvalidURL)

// Generator handles QR code generation
type Generator struct {
	level   qrcode.RecoveryLevel
	boxSize int
}

// NewGenerator creates a new QR code generator. Unknown level names fall
// back to medium, the default trade-off between capacity and damage
// tolerance.
func NewGenerator(level string, boxSize int) *Generator {
	if boxSize < 1 {
		boxSize = 1
	}
	return &Generator{
		level:   parseLevel(level),
		boxSize: boxSize,
	}
}

// BoxSize returns the configured pixels-per-module scale.
func (g *Generator) BoxSize() int {
	return g.boxSize
}

// ValidateURL applies the acceptance rule for QR payloads.
func ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrInvalidURL
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

// Encode generates a QR code image for the given URL. The returned image is
// square and its side length is a multiple of the configured box size; the
// module count depends on the payload length at the chosen level, so callers
// must scale rather than assume a fixed size.
func (g *Generator) Encode(rawURL string) (image.Image, error) {
	if err := ValidateURL(rawURL); err != nil {
		logger.Warn("Rejected QR payload", logger.LoggerInfo{
			ContextFunction: constant.CtxQREncode,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeInvalidURL,
				Message: err.Error(),
				Type:    constant.ErrTypeValidation,
			},
			Data: map[string]interface{}{
				constant.DataURL: rawURL,
			},
		})
		return nil, err
	}

	qr, err := qrcode.New(rawURL, g.level)
	if err != nil {
		logger.Error("Failed to encode QR code", logger.LoggerInfo{
			ContextFunction: constant.CtxQREncode,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeQREncode,
				Message: err.Error(),
				Type:    constant.ErrTypeEncoding,
			},
			Data: map[string]interface{}{
				constant.DataURL: rawURL,
			},
		})
		return nil, err
	}

	// Negative size renders at |size| pixels per module, quiet zone
	// included, instead of fitting a fixed bounding box.
	img := qr.Image(-g.boxSize)

	logger.Debug("QR code encoded", logger.LoggerInfo{
		ContextFunction: constant.CtxQREncode,
		Data: map[string]interface{}{
			constant.DataURL:       rawURL,
			constant.DataBoxSize:   g.boxSize,
			constant.DataQRModules: img.Bounds().Dx() / g.boxSize,
		},
	})

	return img, nil
}

// parseLevel maps the four standard level names onto the library's
// constants: low=L, medium=M, quartile=Q, high=H.
func parseLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "low":
		return qrcode.Low
	case "quartile":
		return qrcode.High
	case "high":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
