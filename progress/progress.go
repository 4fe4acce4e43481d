package progress

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the sequencer.
type Delta struct {
	Total      int
	Configured int
	Skipped    int
	Failed     int
}

// Counters is a point-in-time copy of the tracker counters.
type Counters struct {
	Total      int `json:"total"`
	Configured int `json:"configured"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

// String renders the counters as the one-line run summary.
func (c Counters) String() string {
	return fmt.Sprintf("configured: %d, skipped: %d, failed: %d", c.Configured, c.Skipped, c.Failed)
}

// Progress keeps aggregated counters for one run. It is safe for concurrent use.
type Progress struct {
	RunID     string
	StartedAt time.Time

	mux      sync.Mutex
	counters Counters
	onChange func(Counters)
}

// Update applies the supplied delta. The onChange callback, if any, is
// invoked with a copy of the counters outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.mux.Lock()
	p.counters.Total += d.Total
	p.counters.Configured += d.Configured
	p.counters.Skipped += d.Skipped
	p.counters.Failed += d.Failed
	snapshot := p.counters
	cb := p.onChange
	p.mux.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the counters.
func (p *Progress) Snapshot() Counters {
	if p == nil {
		return Counters{}
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.counters
}

// OnChange registers a callback that is invoked after every Update. Passing
// nil disables the callback.
func (p *Progress) OnChange(cb func(Counters)) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.onChange = cb
	p.mux.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker, embeds it in a derived
// context and returns both.
func WithNewTracker(ctx context.Context, runID string, onChange func(Counters)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		RunID:     runID,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot.
func GetSnapshot(ctx context.Context) (Counters, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Counters{}, false
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
