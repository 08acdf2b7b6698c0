package main

import (
	"os"

	"github.com/prasetyowira/qrpage/config"
	appLogger "github.com/prasetyowira/qrpage/infrastructure/logger"
)

func main() {
	cfg := config.LoadConfig()

	isProduction := cfg.LogLevel == "INFO"
	appLogger.Initialize(isProduction)

	app := NewApp(cfg, os.Stdout)
	code := app.Run(os.Args[1:])

	appLogger.Close()
	os.Exit(code)
}
