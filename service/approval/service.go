package approval

import (
	"context"
	"errors"
)

// ErrCancelled is returned when the user abandons the run at a prompt.
var ErrCancelled = errors.New("cancelled")

// Service defines the approval service interface.
type Service interface {
	Decide(ctx context.Context, r *Request) (*Decision, error)
}
