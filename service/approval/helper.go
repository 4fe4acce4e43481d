package approval

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DecisionFunc decides what to do with a pending request.
// Return (true,  "") to approve
//
//	(false, "…") to reject with reason.
type DecisionFunc func(r *Request) (approved bool, reason string)

type funcService struct {
	fn DecisionFunc
}

func (s *funcService) Decide(_ context.Context, r *Request) (*Decision, error) {
	ok, reason := s.fn(r)
	return newDecision(r, ok, reason), nil
}

// NewFuncService adapts fn to Service.
func NewFuncService(fn DecisionFunc) Service {
	return &funcService{fn: fn}
}

// AutoApprove approves every request
func AutoApprove() Service {
	return NewFuncService(func(*Request) (bool, string) { return true, "" })
}

// AutoReject rejects every request with the given reason
func AutoReject(reason string) Service {
	return NewFuncService(func(*Request) (bool, string) { return false, reason })
}

// FromKey turns a single keypress into a decision or ErrCancelled.
func FromKey(r *Request, key string) (*Decision, error) {
	if IsCancelKey(key) {
		return nil, ErrCancelled
	}
	if IsApproveKey(key) {
		return newDecision(r, true, ""), nil
	}
	return newDecision(r, false, fmt.Sprintf("declined with %q", key)), nil
}

func newDecision(r *Request, approved bool, reason string) *Decision {
	d := &Decision{Approved: approved, Reason: reason, DecidedAt: time.Now()}
	if r != nil {
		d.ID = r.ID
	}
	return d
}

// Scripted answers requests with a predefined sequence of keys, one key per
// request. Once the keys are used up every further request is rejected.
type Scripted struct {
	mux  sync.Mutex
	keys []string
	next int
}

// NewScripted creates a scripted service; each rune of answers is one key.
func NewScripted(answers string) *Scripted {
	keys := make([]string, 0, len(answers))
	for _, r := range answers {
		keys = append(keys, string(r))
	}
	return &Scripted{keys: keys}
}

// Decide consumes the next key.
func (s *Scripted) Decide(_ context.Context, r *Request) (*Decision, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.next >= len(s.keys) {
		return newDecision(r, false, "no answer"), nil
	}
	key := s.keys[s.next]
	s.next++
	return FromKey(r, key)
}

// Remaining returns the number of unused keys.
func (s *Scripted) Remaining() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.keys) - s.next
}

var _ Service = (*Scripted)(nil)
