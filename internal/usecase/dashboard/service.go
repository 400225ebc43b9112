package dashboard

import (
	"context"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/interviewdeck/interview-analyzer/errors"
	"github.com/interviewdeck/interview-analyzer/internal/domain/entities"
	"github.com/interviewdeck/interview-analyzer/internal/infrastructure/external/vapi"
)

// Service defines call control operations for the dashboard
type Service interface {
	StartCall(ctx context.Context) (*entities.Call, error)
	EndCall(ctx context.Context, callID string) error
	// LatestCompletedCall returns the id of the most recently created ended
	// call.
	LatestCompletedCall(ctx context.Context) (string, error)
	// WaitForTranscript polls the call platform until a transcript is
	// attached to the call, backing off between attempts.
	WaitForTranscript(ctx context.Context, callID string) (string, error)
}

type dashboardService struct {
	vapiClient vapi.Client
	logger     *zap.Logger
}

// NewService constructs a new dashboard call service
func NewService(vapiClient vapi.Client, logger *zap.Logger) Service {
	return &dashboardService{
		vapiClient: vapiClient,
		logger:     logger,
	}
}

// interviewAssistant is the fixed assistant configuration submitted at call
// start: model, voice and opening message.
func interviewAssistant() *vapi.CreateCallOptions {
	return &vapi.CreateCallOptions{
		Assistant: vapi.Assistant{
			Name: "Interview Assistant",
			Model: vapi.AssistantModel{
				Provider: "openai",
				Model:    "gpt-4",
				Messages: []vapi.AssistantModelMessage{
					{
						Role:    "system",
						Content: "You are conducting a business case interview. Ask challenging questions and evaluate the candidate's responses.",
					},
				},
			},
			Voice: vapi.AssistantVoice{
				Provider: "11labs",
				VoiceID:  "rachel",
			},
			FirstMessage: "Hello, let's begin the case interview. How would you approach this business problem?",
		},
	}
}

// StartCall starts a new interview call
func (s *dashboardService) StartCall(ctx context.Context) (*entities.Call, error) {
	call, err := s.vapiClient.CreateCall(ctx, interviewAssistant())
	if err != nil {
		return nil, errors.ErrCallStartFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("call started", zap.String("call_id", call.ID))
	}
	return call, nil
}

// EndCall ends an ongoing call
func (s *dashboardService) EndCall(ctx context.Context, callID string) error {
	if err := s.vapiClient.EndCall(ctx, callID); err != nil {
		return errors.ErrCallEndFailed(callID, err)
	}

	if s.logger != nil {
		s.logger.Info("call ended", zap.String("call_id", callID))
	}
	return nil
}

// LatestCompletedCall lists calls, keeps the ended ones and picks the one
// with the latest creation timestamp
func (s *dashboardService) LatestCompletedCall(ctx context.Context) (string, error) {
	calls, err := s.vapiClient.ListCalls(ctx, 0)
	if err != nil {
		return "", errors.ErrCallListFailed(err)
	}

	var latest *entities.Call
	for _, call := range calls {
		if !call.Ended() {
			continue
		}
		if latest == nil || call.CreatedAt.After(latest.CreatedAt) {
			latest = call
		}
	}

	if latest == nil {
		return "", errors.ErrNoCompletedCalls()
	}
	return latest.ID, nil
}

// WaitForTranscript polls until the call platform has attached a transcript.
// Transcription lags call end by a few seconds, so the lookup retries with
// exponential backoff up to a one minute cap.
func (s *dashboardService) WaitForTranscript(ctx context.Context, callID string) (string, error) {
	var transcript string

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = time.Minute

	operation := func() error {
		call, err := s.vapiClient.GetCall(ctx, callID)
		if err != nil {
			return backoff.Permanent(err)
		}
		if call.Artifact.Transcript == "" {
			return fmt.Errorf("transcript not ready for call %s", callID)
		}
		transcript = call.Artifact.Transcript
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return "", errors.ErrTranscriptFetchFailed(callID, err)
	}
	return transcript, nil
}
