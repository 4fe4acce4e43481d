package report

import (
	"time"

	"github.com/viant/gitsetup/policy"
	"github.com/viant/gitsetup/progress"
	"github.com/viant/gitsetup/service/sequencer"
)

// Record describes one gitsetup run.
type Record struct {
	ID         string              `json:"id"`
	Platform   string              `json:"platform"`
	Name       string              `json:"name,omitempty"`
	Email      string              `json:"email,omitempty"`
	Policy     *policy.Config      `json:"policy,omitempty"`
	StartedAt  time.Time           `json:"startedAt"`
	FinishedAt time.Time           `json:"finishedAt"`
	Cancelled  bool                `json:"cancelled,omitempty"`
	Error      string              `json:"error,omitempty"`
	Results    []*sequencer.Result `json:"results,omitempty"`
	Summary    progress.Counters   `json:"summary"`
}
