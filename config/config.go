package config

import (
	"os"
	"strconv"
)

// Config holds one run's settings. Values are immutable after LoadConfig.
type Config struct {
	Port         int
	OutputDir    string
	FontPath     string
	PageWidth    int
	PageHeight   int
	DPI          int
	QRLevel      string
	QRBoxSize    int
	QRWidthRatio float64
	LogLevel     string
}

func LoadConfig() Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	pageWidth, _ := strconv.Atoi(getEnv("PAGE_WIDTH", "2550"))
	pageHeight, _ := strconv.Atoi(getEnv("PAGE_HEIGHT", "3300"))
	dpi, _ := strconv.Atoi(getEnv("DPI", "300"))
	boxSize, _ := strconv.Atoi(getEnv("QR_BOX_SIZE", "16"))
	widthRatio, _ := strconv.ParseFloat(getEnv("QR_WIDTH_RATIO", "0.78"), 64)

	return Config{
		Port:         port,
		OutputDir:    getEnv("OUTPUT_DIR", "output"),
		FontPath:     getEnv("FONT_PATH", ""),
		PageWidth:    pageWidth,
		PageHeight:   pageHeight,
		DPI:          dpi,
		QRLevel:      getEnv("QR_LEVEL", "medium"),
		QRBoxSize:    boxSize,
		QRWidthRatio: widthRatio,
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
