package dashboard

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interviewdeck/interview-analyzer/internal/domain/entities"
	"github.com/interviewdeck/interview-analyzer/internal/infrastructure/external/vapi"
)

type stubVapi struct {
	calls     []*entities.Call
	listErr   error
	createErr error
	endErr    error

	// getResponses is consumed one per GetCall, last entry repeats
	getResponses []*entities.Call
	getErr       error
	getCount     int

	created *vapi.CreateCallOptions
	ended   string
}

func (s *stubVapi) GetCall(ctx context.Context, callID string) (*entities.Call, error) {
	s.getCount++
	if s.getErr != nil {
		return nil, s.getErr
	}
	if len(s.getResponses) == 0 {
		return nil, fmt.Errorf("no call")
	}
	idx := s.getCount - 1
	if idx >= len(s.getResponses) {
		idx = len(s.getResponses) - 1
	}
	return s.getResponses[idx], nil
}

func (s *stubVapi) CreateCall(ctx context.Context, options *vapi.CreateCallOptions) (*entities.Call, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = options
	return &entities.Call{ID: "call-new", Status: entities.CallStatusInProgress}, nil
}

func (s *stubVapi) EndCall(ctx context.Context, callID string) error {
	if s.endErr != nil {
		return s.endErr
	}
	s.ended = callID
	return nil
}

func (s *stubVapi) ListCalls(ctx context.Context, limit int) ([]*entities.Call, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.calls, nil
}

func TestStartCall_SubmitsFixedAssistantConfig(t *testing.T) {
	client := &stubVapi{}
	svc := NewService(client, nil)

	call, err := svc.StartCall(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "call-new", call.ID)

	require.NotNil(t, client.created)
	assert.Equal(t, "Interview Assistant", client.created.Assistant.Name)
	assert.Equal(t, "openai", client.created.Assistant.Model.Provider)
	assert.Equal(t, "gpt-4", client.created.Assistant.Model.Model)
	assert.Equal(t, "11labs", client.created.Assistant.Voice.Provider)
	assert.Equal(t, "rachel", client.created.Assistant.Voice.VoiceID)
	assert.NotEmpty(t, client.created.Assistant.FirstMessage)
}

func TestStartCall_Failure(t *testing.T) {
	svc := NewService(&stubVapi{createErr: fmt.Errorf("quota exceeded")}, nil)

	_, err := svc.StartCall(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestEndCall(t *testing.T) {
	client := &stubVapi{}
	svc := NewService(client, nil)

	require.NoError(t, svc.EndCall(context.Background(), "call-7"))
	assert.Equal(t, "call-7", client.ended)
}

func TestLatestCompletedCall_PicksNewestEnded(t *testing.T) {
	now := time.Now()
	client := &stubVapi{calls: []*entities.Call{
		{ID: "old-ended", Status: entities.CallStatusEnded, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "live", Status: entities.CallStatusInProgress, CreatedAt: now},
		{ID: "new-ended", Status: entities.CallStatusEnded, CreatedAt: now.Add(-5 * time.Minute)},
	}}
	svc := NewService(client, nil)

	callID, err := svc.LatestCompletedCall(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "new-ended", callID)
}

func TestLatestCompletedCall_NoneEnded(t *testing.T) {
	client := &stubVapi{calls: []*entities.Call{
		{ID: "live", Status: entities.CallStatusInProgress},
	}}
	svc := NewService(client, nil)

	_, err := svc.LatestCompletedCall(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "No completed calls")
}

func TestLatestCompletedCall_ListFailure(t *testing.T) {
	svc := NewService(&stubVapi{listErr: fmt.Errorf("api down")}, nil)

	_, err := svc.LatestCompletedCall(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "api down")
}

func TestWaitForTranscript_ImmediatelyReady(t *testing.T) {
	client := &stubVapi{getResponses: []*entities.Call{
		{ID: "c", Status: entities.CallStatusEnded, Artifact: entities.CallArtifact{Transcript: "done"}},
	}}
	svc := NewService(client, nil)

	transcript, err := svc.WaitForTranscript(context.Background(), "c")

	require.NoError(t, err)
	assert.Equal(t, "done", transcript)
	assert.Equal(t, 1, client.getCount)
}

func TestWaitForTranscript_ReadyAfterRetry(t *testing.T) {
	client := &stubVapi{getResponses: []*entities.Call{
		{ID: "c", Status: entities.CallStatusEnded},
		{ID: "c", Status: entities.CallStatusEnded, Artifact: entities.CallArtifact{Transcript: "late"}},
	}}
	svc := NewService(client, nil)

	transcript, err := svc.WaitForTranscript(context.Background(), "c")

	require.NoError(t, err)
	assert.Equal(t, "late", transcript)
	assert.GreaterOrEqual(t, client.getCount, 2)
}

func TestWaitForTranscript_LookupFailureIsPermanent(t *testing.T) {
	client := &stubVapi{getErr: fmt.Errorf("call not found")}
	svc := NewService(client, nil)

	_, err := svc.WaitForTranscript(context.Background(), "gone")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone")
	assert.Contains(t, err.Error(), "call not found")
	assert.Equal(t, 1, client.getCount)
}
