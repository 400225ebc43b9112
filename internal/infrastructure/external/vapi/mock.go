package vapi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/interviewdeck/interview-analyzer/internal/domain/entities"
)

const mockTranscript = "AI: Hello, let's begin the case interview. How would you approach this business problem?\n" +
	"User: I would start by clarifying the objective, then structure the problem into market, competition, and internal capabilities."

// mockClient is an in-memory implementation for local development and tests
type mockClient struct {
	mu    sync.Mutex
	calls map[string]*entities.Call
}

func newMockClient() *mockClient {
	return &mockClient{
		calls: make(map[string]*entities.Call),
	}
}

// GetCall (mock) returns a stored call, or a canned ended call for unknown ids
func (m *mockClient) GetCall(ctx context.Context, callID string) (*entities.Call, error) {
	if callID == "" {
		return nil, fmt.Errorf("call id is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if call, ok := m.calls[callID]; ok {
		return call, nil
	}

	return &entities.Call{
		ID:        callID,
		Status:    entities.CallStatusEnded,
		CreatedAt: time.Now().Add(-10 * time.Minute),
		Artifact:  entities.CallArtifact{Transcript: mockTranscript},
	}, nil
}

// CreateCall (mock) simulates starting a call
func (m *mockClient) CreateCall(ctx context.Context, options *CreateCallOptions) (*entities.Call, error) {
	call := &entities.Call{
		ID:        "mock-call-" + uuid.New().String(),
		Status:    entities.CallStatusInProgress,
		CreatedAt: time.Now(),
	}

	m.mu.Lock()
	m.calls[call.ID] = call
	m.mu.Unlock()

	return call, nil
}

// EndCall (mock) marks a stored call as ended and attaches a transcript
func (m *mockClient) EndCall(ctx context.Context, callID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	call, ok := m.calls[callID]
	if !ok {
		return fmt.Errorf("call %s not found", callID)
	}
	call.Status = entities.CallStatusEnded
	call.EndedReason = "customer-ended-call"
	call.Artifact.Transcript = mockTranscript
	return nil
}

// ListCalls (mock) returns stored calls
func (m *mockClient) ListCalls(ctx context.Context, limit int) ([]*entities.Call, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]*entities.Call, 0, len(m.calls))
	for _, call := range m.calls {
		calls = append(calls, call)
	}
	return calls, nil
}
