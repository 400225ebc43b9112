package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/interviewdeck/interview-analyzer/internal/adapter/handler"
	"github.com/interviewdeck/interview-analyzer/internal/infrastructure/external/vapi"
	analysisuse "github.com/interviewdeck/interview-analyzer/internal/usecase/analysis"
	pkgai "github.com/interviewdeck/interview-analyzer/pkg/ai"
	"github.com/interviewdeck/interview-analyzer/pkg/config"
	pkgvalidator "github.com/interviewdeck/interview-analyzer/pkg/validator"
)

// @title           Interview Transcript Analysis API
// @version         1.0
// @description     Thin relay that fetches Vapi call transcripts and scores them with an LLM evaluation rubric

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize external clients
	vapiClient := vapi.NewClient(cfg.Vapi.BaseURL, cfg.Vapi.Token, cfg.Vapi.UseMock)
	if cfg.Vapi.UseMock {
		log.Println("Vapi running in MOCK mode (no real platform needed)")
	}
	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)

	// Initialize analysis service and handlers
	analysisService := analysisuse.NewService(vapiClient, openaiClient, logger)
	analysisHandler := handler.NewAnalysisHandler(analysisService, logger)

	router := handler.NewRouter(cfg, analysisHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Server.Addr()
		log.Printf("Starting API server on %s (environment: %s)", addr, cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
