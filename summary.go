package gitsetup

import (
	"time"

	"github.com/viant/gitsetup/progress"
	"github.com/viant/gitsetup/service/identity"
	"github.com/viant/gitsetup/service/sequencer"
)

// Summary reports the outcome of a run.
type Summary struct {
	RunID      string
	Platform   string
	Identity   *identity.Identity
	Results    []*sequencer.Result
	Counters   progress.Counters
	Cancelled  bool
	StartedAt  time.Time
	FinishedAt time.Time
}

// Failed reports whether any command failed.
func (s *Summary) Failed() bool {
	return s != nil && s.Counters.Failed > 0
}

// Executed returns the commands that were actually run, in order.
func (s *Summary) Executed() []string {
	if s == nil {
		return nil
	}
	var ret []string
	for _, result := range s.Results {
		if result.Outcome != sequencer.OutcomeSkipped {
			ret = append(ret, result.Command)
		}
	}
	return ret
}
