package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/interviewdeck/interview-analyzer/internal/domain/entities"
)

// Client wraps Vapi call platform operations
type Client interface {
	GetCall(ctx context.Context, callID string) (*entities.Call, error)
	CreateCall(ctx context.Context, options *CreateCallOptions) (*entities.Call, error)
	EndCall(ctx context.Context, callID string) error
	ListCalls(ctx context.Context, limit int) ([]*entities.Call, error)
}

// AssistantModelMessage is a message in the assistant model configuration
type AssistantModelMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AssistantModel configures the LLM backing the voice assistant
type AssistantModel struct {
	Provider string                  `json:"provider"`
	Model    string                  `json:"model"`
	Messages []AssistantModelMessage `json:"messages,omitempty"`
}

// AssistantVoice configures the voice used by the assistant
type AssistantVoice struct {
	Provider string `json:"provider"`
	VoiceID  string `json:"voiceId"`
}

// Assistant is the transient assistant configuration submitted at call start
type Assistant struct {
	Name         string         `json:"name,omitempty"`
	Model        AssistantModel `json:"model"`
	Voice        AssistantVoice `json:"voice"`
	FirstMessage string         `json:"firstMessage,omitempty"`
}

// CreateCallOptions holds options for starting a call
type CreateCallOptions struct {
	Assistant Assistant `json:"assistant"`
}

// realClient is the real Vapi client implementation
type realClient struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewClient creates a new Vapi client. With useMock set, operations are
// served from memory and no network calls are made.
func NewClient(baseURL, token string, useMock bool) Client {
	if useMock {
		return newMockClient()
	}

	if baseURL == "" {
		baseURL = "https://api.vapi.ai"
	}

	return &realClient{
		token:   token,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// GetCall fetches one call record by id
func (c *realClient) GetCall(ctx context.Context, callID string) (*entities.Call, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/call/"+callID, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, responseError("get call", resp)
	}

	var call entities.Call
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return nil, fmt.Errorf("failed to decode call: %w", err)
	}
	return &call, nil
}

// CreateCall starts a call with the given assistant configuration
func (c *realClient) CreateCall(ctx context.Context, options *CreateCallOptions) (*entities.Call, error) {
	if options == nil {
		return nil, fmt.Errorf("call options are required")
	}

	b, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/call", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, responseError("create call", resp)
	}

	var call entities.Call
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return nil, fmt.Errorf("failed to decode call: %w", err)
	}
	return &call, nil
}

// EndCall terminates an ongoing call
func (c *realClient) EndCall(ctx context.Context, callID string) error {
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/call/"+callID+"/end", nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return responseError("end call", resp)
	}
	return nil
}

// ListCalls lists call records, newest first. Pass limit <= 0 for the
// platform default page size.
func (c *realClient) ListCalls(ctx context.Context, limit int) ([]*entities.Call, error) {
	endpoint := c.baseURL + "/call"
	if limit > 0 {
		endpoint += "?limit=" + strconv.Itoa(limit)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, responseError("list calls", resp)
	}

	var calls []*entities.Call
	if err := json.NewDecoder(resp.Body).Decode(&calls); err != nil {
		return nil, fmt.Errorf("failed to decode calls: %w", err)
	}
	return calls, nil
}

func (c *realClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
}

// responseError builds an error carrying the status and upstream body text
func responseError(operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if len(body) > 0 {
		return fmt.Errorf("vapi %s returned status %d: %s", operation, resp.StatusCode, string(body))
	}
	return fmt.Errorf("vapi %s returned status %d", operation, resp.StatusCode)
}
