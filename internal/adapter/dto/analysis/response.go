package analysis

// AnalyzeCallResponse is the response for a completed analysis request
type AnalyzeCallResponse struct {
	Success          bool                   `json:"success"`
	CallID           string                 `json:"call_id,omitempty"`
	Analysis         map[string]interface{} `json:"analysis"`
	TranscriptLength int                    `json:"transcript_length"`
}

// TranscriptResponse is the response for a transcript-only request
type TranscriptResponse struct {
	Success          bool   `json:"success"`
	CallID           string `json:"call_id"`
	Transcript       string `json:"transcript"`
	TranscriptLength int    `json:"transcript_length"`
}

// ErrorResponse is the failure shape for request-level errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// AnalyzeRequest is the body for POST /analyze. Exactly one of Transcript or
// CallID is expected; a transcript takes precedence when both are present.
type AnalyzeRequest struct {
	Transcript string `json:"transcript" validate:"required_without=CallID"`
	CallID     string `json:"call_id" validate:"required_without=Transcript"`
}
