package approval

import (
	"strings"
	"time"
)

// Request represents a request for approval of a single command.
type Request struct {
	ID        string    `json:"id"`
	RunID     string    `json:"runId,omitempty"`
	Key       string    `json:"key,omitempty"` // git config key, e.g. alias.ci
	Command   string    `json:"command"`
	CreatedAt time.Time `json:"createdAt"`
}

// Decision represents approval decision
type Decision struct {
	ID        string    `json:"id"` // same as request.ID
	Approved  bool      `json:"approved"`
	Reason    string    `json:"reason,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`
}

// interruptKey is the byte a raw terminal delivers for Ctrl+C.
const interruptKey = 0x03

// IsCancelKey reports whether key asks to abandon the run: Ctrl+C, q or Q.
func IsCancelKey(key string) bool {
	if key == "" {
		return false
	}
	if key[0] == interruptKey {
		return true
	}
	return strings.EqualFold(key, "q")
}

// IsApproveKey reports whether key confirms the command: y or Y.
func IsApproveKey(key string) bool {
	return strings.EqualFold(key, "y")
}
