package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/interviewdeck/interview-analyzer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	analysisHandler *AnalysisHandler
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisHandler *AnalysisHandler) *Router {
	return &Router{
		cfg:             cfg,
		analysisHandler: analysisHandler,
	}
}

// Setup configures all application routes. The route paths and response
// shapes are the published API contract; they are registered at the root,
// not under a version group.
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/", rt.home)

	e.GET("/analyze-call/:call_id", rt.analysisHandler.AnalyzeCall)
	e.GET("/get-transcript/:call_id", rt.analysisHandler.GetTranscript)
	e.POST("/analyze", rt.analysisHandler.Analyze)
}

// healthCheck returns health status with no dependency on remote services
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// home returns a static documentation payload describing the API
func (rt *Router) home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Interview Transcript Analysis API",
		"endpoints": map[string]string{
			"/analyze-call/{call_id}":   "GET - Analyze by call ID directly",
			"/get-transcript/{call_id}": "GET - Get transcript only",
			"/analyze":                  "POST - Analyze a transcript or call ID",
			"/health":                   "GET - Health check",
		},
		"usage_examples": map[string]interface{}{
			"analyze_with_transcript": map[string]interface{}{
				"method": "POST",
				"url":    "/analyze",
				"body":   map[string]string{"transcript": "Your interview transcript here..."},
			},
			"analyze_with_call_id": map[string]interface{}{
				"method": "POST",
				"url":    "/analyze",
				"body":   map[string]string{"call_id": "your-vapi-call-id"},
			},
			"direct_analysis": map[string]interface{}{
				"method": "GET",
				"url":    "/analyze-call/39721b13-a0ef-48a8-baa0-d7c5a96d08c5",
			},
		},
	})
}
