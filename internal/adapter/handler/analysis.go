package handler

import (
	"fmt"
	"net/http"
	"unicode/utf8"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/interviewdeck/interview-analyzer/errors"
	dto "github.com/interviewdeck/interview-analyzer/internal/adapter/dto/analysis"
	analysisuse "github.com/interviewdeck/interview-analyzer/internal/usecase/analysis"
)

// AnalysisHandler exposes transcript fetching and analysis over HTTP
type AnalysisHandler struct {
	svc    analysisuse.Service
	logger *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc analysisuse.Service, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{svc: svc, logger: logger}
}

// AnalyzeCall fetches the transcript for a call and analyzes it
// @Summary      Analyze a recorded call
// @Description  Fetches the transcript for a call id and evaluates it against the interview rubric
// @Tags         Analysis
// @Produce      json
// @Param        call_id  path      string  true  "Call identifier"
// @Success      200      {object}  dto.AnalyzeCallResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /analyze-call/{call_id} [get]
func (h *AnalysisHandler) AnalyzeCall(c echo.Context) error {
	callID := c.Param("call_id")

	transcript, result, err := h.svc.AnalyzeCall(c.Request().Context(), callID)
	if err != nil {
		logError(h.logger, c, err)
		return c.JSON(errorStatus(err), dto.ErrorResponse{
			Error: fmt.Sprintf("Error analyzing call %s: %s", callID, errorText(err)),
		})
	}

	return c.JSON(http.StatusOK, dto.AnalyzeCallResponse{
		Success:          true,
		CallID:           callID,
		Analysis:         result,
		TranscriptLength: utf8.RuneCountInString(transcript),
	})
}

// GetTranscript fetches the transcript for a call without analyzing it
// @Summary      Fetch a call transcript
// @Tags         Analysis
// @Produce      json
// @Param        call_id  path      string  true  "Call identifier"
// @Success      200      {object}  dto.TranscriptResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /get-transcript/{call_id} [get]
func (h *AnalysisHandler) GetTranscript(c echo.Context) error {
	callID := c.Param("call_id")

	transcript, err := h.svc.GetTranscript(c.Request().Context(), callID)
	if err != nil {
		logError(h.logger, c, err)
		return c.JSON(errorStatus(err), dto.ErrorResponse{
			Error: fmt.Sprintf("Error fetching transcript for call %s: %s", callID, errorText(err)),
		})
	}

	return c.JSON(http.StatusOK, dto.TranscriptResponse{
		Success:          true,
		CallID:           callID,
		Transcript:       transcript,
		TranscriptLength: utf8.RuneCountInString(transcript),
	})
}

// Analyze evaluates a transcript supplied directly, or by call id
// @Summary      Analyze a transcript
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AnalyzeRequest  true  "Transcript text or call id"
// @Success      200      {object}  dto.AnalyzeCallResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /analyze [post]
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: errors.ErrInvalidPayload().Message})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Either transcript or call_id is required",
		})
	}

	if req.Transcript != "" {
		result := h.svc.AnalyzeTranscript(c.Request().Context(), req.Transcript)
		return c.JSON(http.StatusOK, dto.AnalyzeCallResponse{
			Success:          true,
			Analysis:         result,
			TranscriptLength: utf8.RuneCountInString(req.Transcript),
		})
	}

	transcript, result, err := h.svc.AnalyzeCall(c.Request().Context(), req.CallID)
	if err != nil {
		logError(h.logger, c, err)
		return c.JSON(errorStatus(err), dto.ErrorResponse{
			Error: fmt.Sprintf("Error analyzing call %s: %s", req.CallID, errorText(err)),
		})
	}

	return c.JSON(http.StatusOK, dto.AnalyzeCallResponse{
		Success:          true,
		CallID:           req.CallID,
		Analysis:         result,
		TranscriptLength: utf8.RuneCountInString(transcript),
	})
}
