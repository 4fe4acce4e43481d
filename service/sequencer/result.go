package sequencer

// Outcome describes what happened to a catalog entry.
type Outcome string

const (
	OutcomeConfigured Outcome = "configured"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeFailed     Outcome = "failed"
)

// Result records the outcome of a single entry.
type Result struct {
	Key     string  `json:"key"`
	Command string  `json:"command"`
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
	Stdout  string  `json:"stdout,omitempty"`
	Stderr  string  `json:"stderr,omitempty"`
	Status  int     `json:"status,omitempty"`
	Error   string  `json:"error,omitempty"`
}
