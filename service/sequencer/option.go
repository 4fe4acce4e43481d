package sequencer

import (
	"io"

	"github.com/rs/zerolog"
)

// Option customises Service.
type Option func(s *Service)

// WithOutput sets the writer receiving prompts and status lines.
func WithOutput(w io.Writer) Option {
	return func(s *Service) { s.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithRunID tags approval requests with the run identifier.
func WithRunID(runID string) Option {
	return func(s *Service) { s.runID = runID }
}
