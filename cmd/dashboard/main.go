package main

import (
	"context"
	"fmt"
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
	"github.com/interviewdeck/interview-analyzer/internal/infrastructure/session"
	analysisuse "github.com/interviewdeck/interview-analyzer/internal/usecase/analysis"
	dashuse "github.com/interviewdeck/interview-analyzer/internal/usecase/dashboard"
	pkgai "github.com/interviewdeck/interview-analyzer/pkg/ai"
	"github.com/interviewdeck/interview-analyzer/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	sessionTTL, err := time.ParseDuration(cfg.Dashboard.SessionTTL)
	if err != nil {
		sessionTTL = 2 * time.Hour
	}

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())

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

	// Initialize services and session store
	analysisService := analysisuse.NewService(vapiClient, openaiClient, logger)
	callService := dashuse.NewService(vapiClient, logger)
	sessions := session.NewStore(sessionTTL)

	dashboardHandler := handler.NewDashboardHandler(analysisService, callService, sessions, logger)
	dashboardHandler.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Dashboard.Port)
		log.Printf("Starting dashboard on %s", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down dashboard...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Dashboard stopped gracefully")
}
