package gitsetup

import (
	"bufio"
	"io"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"

	"github.com/viant/gitsetup/service/approval"
	"github.com/viant/gitsetup/service/locale"
	"github.com/viant/gitsetup/service/sequencer"
)

// Option customises Service.
type Option func(s *Service)

// WithExecutor sets the shell executor. By default a gosh backed executor is
// created per run and closed when the run ends.
func WithExecutor(executor sequencer.Executor) Option {
	return func(s *Service) { s.executor = executor }
}

// WithApprovalService sets the service answering confirmation prompts.
func WithApprovalService(svc approval.Service) Option {
	return func(s *Service) { s.approvalService = svc }
}

// WithInput sets the input used by identity prompts and the default key reader.
func WithInput(r io.Reader) Option {
	return func(s *Service) {
		s.in = bufio.NewReader(r)
		s.stdin = false
	}
}

// WithOutput sets the writer receiving prompts and status lines.
func WithOutput(w io.Writer) Option {
	return func(s *Service) { s.out = w }
}

// WithLogger sets the diagnostic logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithFileSystem sets the afs service used for catalog and report URLs.
func WithFileSystem(fs afs.Service, options ...storage.Option) Option {
	return func(s *Service) {
		s.fs = fs
		s.fsOptions = options
	}
}

// WithEnvLookup overrides os.LookupEnv for the locale check.
func WithEnvLookup(fn locale.LookupFunc) Option {
	return func(s *Service) { s.lookupEnv = fn }
}

// WithFileExists overrides host file detection (optional catalog features).
func WithFileExists(fn func(path string) bool) Option {
	return func(s *Service) { s.fileExists = fn }
}
