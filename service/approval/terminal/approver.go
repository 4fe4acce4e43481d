package terminal

import (
	"context"

	"github.com/viant/gitsetup/service/approval"
)

// Approver answers approval requests with a keypress.
type Approver struct {
	keys *KeyReader
}

// New creates a keypress driven approval service.
func New(keys *KeyReader) *Approver {
	return &Approver{keys: keys}
}

// Decide waits for one key: y approves, q or Ctrl+C cancels the run, any
// other key rejects the request.
func (a *Approver) Decide(ctx context.Context, r *approval.Request) (*approval.Decision, error) {
	key, err := a.keys.ReadKey(ctx)
	if err != nil {
		return nil, err
	}
	return approval.FromKey(r, key)
}

var _ approval.Service = (*Approver)(nil)
