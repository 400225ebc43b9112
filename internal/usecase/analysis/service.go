package analysis

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/interviewdeck/interview-analyzer/errors"
	"github.com/interviewdeck/interview-analyzer/internal/infrastructure/external/vapi"
)

// CompletionClient is the remote completion endpoint used for evaluation
type CompletionClient interface {
	CreateCompletion(ctx context.Context, systemPrompt, userContent string) (string, error)
}

// Service defines transcript analysis operations
type Service interface {
	// GetTranscript fetches the transcript recorded for a call.
	GetTranscript(ctx context.Context, callID string) (string, error)
	// AnalyzeTranscript evaluates a transcript. The returned payload is
	// either the decoded evaluation or a reportable error payload with an
	// "error" key; it never fails past this boundary.
	AnalyzeTranscript(ctx context.Context, transcript string) map[string]interface{}
	// AnalyzeCall fetches the transcript for a call and analyzes it.
	AnalyzeCall(ctx context.Context, callID string) (transcript string, analysis map[string]interface{}, err error)
}

type analysisService struct {
	vapiClient vapi.Client
	completion CompletionClient
	parser     *Parser
	logger     *zap.Logger
}

// NewService constructs a new analysis service
func NewService(vapiClient vapi.Client, completion CompletionClient, logger *zap.Logger) Service {
	return &analysisService{
		vapiClient: vapiClient,
		completion: completion,
		parser:     NewParser(),
		logger:     logger,
	}
}

// GetTranscript fetches the transcript for a call from Vapi. Any lookup
// failure is wrapped into a single failure kind carrying the call id and the
// upstream message; an empty transcript on a successfully fetched call is
// returned as-is.
func (s *analysisService) GetTranscript(ctx context.Context, callID string) (string, error) {
	call, err := s.vapiClient.GetCall(ctx, callID)
	if err != nil {
		return "", errors.ErrTranscriptFetchFailed(callID, err)
	}
	return call.Artifact.Transcript, nil
}

// AnalyzeTranscript sends the transcript, unmodified and untruncated, to the
// completion service with the fixed rubric prompt. Remote failures and
// unparseable replies both come back as payloads; there is no retry and no
// verification that the five criteria are present or in range.
func (s *analysisService) AnalyzeTranscript(ctx context.Context, transcript string) map[string]interface{} {
	userContent := fmt.Sprintf("Interview Transcript:\n        %s", transcript)

	content, err := s.completion.CreateCompletion(ctx, systemPrompt, userContent)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("completion request failed", zap.Error(err))
		}
		return map[string]interface{}{
			"error": fmt.Sprintf("OpenAI API error: %s", err.Error()),
		}
	}

	result := s.parser.ParseReply(content)
	if _, failed := result["error"]; failed && s.logger != nil {
		s.logger.Warn("model reply was not valid JSON", zap.Int("reply_length", len(content)))
	}
	return result
}

// AnalyzeCall composes fetch and analyze. A fetch failure propagates as a
// request-level error; the analysis payload carries its own error tag when
// the evaluation itself went wrong.
func (s *analysisService) AnalyzeCall(ctx context.Context, callID string) (string, map[string]interface{}, error) {
	transcript, err := s.GetTranscript(ctx, callID)
	if err != nil {
		return "", nil, err
	}
	return transcript, s.AnalyzeTranscript(ctx, transcript), nil
}
