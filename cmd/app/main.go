package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prasetyowira/qrpage/api"
	"github.com/prasetyowira/qrpage/config"
	"github.com/prasetyowira/qrpage/constant"
	"github.com/prasetyowira/qrpage/domain/generator"
	"github.com/prasetyowira/qrpage/infrastructure/cache"
	appLogger "github.com/prasetyowira/qrpage/infrastructure/logger"
	"github.com/prasetyowira/qrpage/infrastructure/qrcode"
	"github.com/prasetyowira/qrpage/infrastructure/render"
)

// faceCacheSize covers both text sizes plus the URL shrink-to-fit range.
const faceCacheSize = 32

func main() {
	// Load configuration from environment variables
	cfg := config.LoadConfig()

	// Initialize logger based on environment
	isProduction := cfg.LogLevel == "INFO"
	appLogger.Initialize(isProduction)
	defer appLogger.Close()

	appLogger.Info(constant.MsgApplicationStarting, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
		Data: map[string]interface{}{
			constant.DataPort:        cfg.Port,
			constant.DataOutputDir:   cfg.OutputDir,
			constant.DataEnvironment: cfg.LogLevel,
		},
	})

	// Build the generation pipeline
	fonts, err := render.NewFontLoader(cfg.FontPath, cache.NewFaceCache(faceCacheSize))
	if err != nil {
		appLogger.Fatal("Failed to initialize fonts", appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeFontParse,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
	}

	composer := render.NewComposer(cfg.PageWidth, cfg.PageHeight, cfg.QRWidthRatio, fonts)
	encoder := qrcode.NewGenerator(cfg.QRLevel, cfg.QRBoxSize)
	service := generator.NewService(encoder, composer, cfg.OutputDir)

	// Create web handler and router
	handler := api.NewHandler(service, encoder, composer, cfg.FontPath)
	router := api.NewRouter(handler)
	router.SetupRoutes()

	// Configure HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.Info(constant.MsgServerStarting, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Data: map[string]interface{}{
				constant.DataPort: cfg.Port,
			},
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal(constant.MsgServerFailedToStart, appLogger.LoggerInfo{
				ContextFunction: constant.CtxMain,
				Error: &appLogger.CustomError{
					Code:    constant.ErrCodeAppServerStart,
					Message: err.Error(),
					Type:    constant.ErrTypeApp,
				},
				Data: map[string]interface{}{
					constant.DataPort: cfg.Port,
				},
			})
		}
	}()

	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	appLogger.Info(constant.MsgServerShuttingDown, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error(constant.MsgServerShutdownError, appLogger.LoggerInfo{
			ContextFunction: constant.CtxMain,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeAppServerShutdown,
				Message: err.Error(),
				Type:    constant.ErrTypeApp,
			},
		})
	}

	appLogger.Info(constant.MsgServerStopped, appLogger.LoggerInfo{
		ContextFunction: constant.CtxMain,
	})
}
