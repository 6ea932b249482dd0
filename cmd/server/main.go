package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hangman/internal/config"
	"hangman/internal/handler"
	"hangman/internal/repository/randomword"
	"hangman/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg.GinMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Hangman server",
		zap.String("addr", cfg.Addr),
		zap.String("word_api", cfg.WordAPI.URL),
		zap.Duration("word_api_timeout", cfg.WordAPI.Timeout),
	)

	gin.SetMode(cfg.GinMode)

	// Initialize word source and service
	wordClient := randomword.NewClient(cfg.WordAPI.URL, cfg.WordAPI.Timeout)
	wordService := service.NewWordService(wordClient, cfg.FallbackWord, logger)

	// Initialize handler and router
	h := handler.NewHandler(wordService, logger)
	router, err := handler.NewRouter(h, cfg.SSL)
	if err != nil {
		logger.Fatal("Failed to build router", zap.Error(err))
	}

	logger.Info("Routes registered", zap.Int("count", len(h.Routes())))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
		return
	}

	logger.Info("Server stopped gracefully")
}

// newLogger picks a development logger in gin debug mode
func newLogger(mode string) (*zap.Logger, error) {
	if mode == gin.DebugMode {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
