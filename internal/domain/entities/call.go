package entities

import "time"

// Call status values reported by the call platform
const (
	CallStatusQueued     = "queued"
	CallStatusRinging    = "ringing"
	CallStatusInProgress = "in-progress"
	CallStatusEnded      = "ended"
)

// CallArtifact holds recorded outputs attached to a finished call
type CallArtifact struct {
	Transcript string `json:"transcript"`
}

// Call represents one voice session on the call platform
type Call struct {
	ID          string       `json:"id"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	EndedReason string       `json:"endedReason,omitempty"`
	Artifact    CallArtifact `json:"artifact"`
}

// Ended reports whether the call has completed
func (c *Call) Ended() bool {
	return c.Status == CallStatusEnded
}
