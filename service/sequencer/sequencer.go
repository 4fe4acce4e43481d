package sequencer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/viant/gitsetup/catalog"
	"github.com/viant/gitsetup/internal/idgen"
	"github.com/viant/gitsetup/policy"
	"github.com/viant/gitsetup/progress"
	"github.com/viant/gitsetup/service/action/system/exec"
	"github.com/viant/gitsetup/service/approval"
	"github.com/viant/gitsetup/tracing"
)

// Executor runs shell commands.
type Executor interface {
	Execute(ctx context.Context, input *exec.Input, output *exec.Output) error
}

// ErrPolicyRequired is returned when Run is called without a policy.
var ErrPolicyRequired = errors.New("sequencer: policy is required")

// Service is the confirm-and-execute sequencer.
type Service struct {
	executor Executor
	approver approval.Service
	out      io.Writer
	logger   zerolog.Logger
	runID    string
}

// New creates a sequencer. approver is only consulted in ask mode.
func New(executor Executor, approver approval.Service, options ...Option) *Service {
	ret := &Service{
		executor: executor,
		approver: approver,
		out:      os.Stdout,
		logger:   zerolog.Nop(),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Run applies entries in order and returns one Result per entry handled. A
// cancelled prompt stops the run; the results gathered so far are returned
// together with an error wrapping approval.ErrCancelled.
func (s *Service) Run(ctx context.Context, entries []catalog.Entry, p *policy.Policy) ([]*Result, error) {
	if p == nil {
		return nil, ErrPolicyRequired
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	progress.UpdateCtx(ctx, progress.Delta{Total: len(entries)})
	results := make([]*Result, 0, len(entries))
	for _, entry := range entries {
		result, err := s.Apply(ctx, entry, p)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Apply confirms (when asked to) and executes a single entry.
func (s *Service) Apply(ctx context.Context, entry catalog.Entry, p *policy.Policy) (*Result, error) {
	if !p.IsAllowed(entry.Key) {
		s.logger.Debug().Str("key", entry.Key).Msg("excluded by policy")
		return s.skip(ctx, entry, "excluded by policy"), nil
	}
	switch p.Mode {
	case policy.ModeDeny:
		s.printf("dry-run: %s\n", entry.Command)
		return s.skip(ctx, entry, "dry run"), nil
	case policy.ModeAsk:
		decision, err := s.confirm(ctx, entry)
		if err != nil {
			return nil, err
		}
		if !decision.Approved {
			s.printf("skipped\n")
			return s.skip(ctx, entry, decision.Reason), nil
		}
		result := s.execute(ctx, entry)
		if result.Outcome == OutcomeConfigured {
			s.printf("configured\n")
		}
		return result, nil
	default:
		return s.execute(ctx, entry), nil
	}
}

// Execute runs entry without asking; in deny mode it only prints it. It is
// used for the identity settings which are never confirmed.
func (s *Service) Execute(ctx context.Context, entry catalog.Entry, p *policy.Policy) *Result {
	progress.UpdateCtx(ctx, progress.Delta{Total: 1})
	if p != nil && p.Mode == policy.ModeDeny {
		s.printf("dry-run: %s\n", entry.Command)
		return s.skip(ctx, entry, "dry run")
	}
	return s.execute(ctx, entry)
}

func (s *Service) confirm(ctx context.Context, entry catalog.Entry) (*approval.Decision, error) {
	request := &approval.Request{
		ID:        idgen.Short(),
		RunID:     s.runID,
		Key:       entry.Key,
		Command:   entry.Command,
		CreatedAt: time.Now(),
	}
	s.printf("Run this command? %s (y/n/q): ", entry.Command)
	decision, err := s.approver.Decide(ctx, request)
	s.printf("\n")
	if err != nil {
		return nil, fmt.Errorf("confirmation of %s: %w", entry.Key, err)
	}
	s.logger.Debug().Str("key", entry.Key).Bool("approved", decision.Approved).Str("reason", decision.Reason).Msg("decision")
	return decision, nil
}

func (s *Service) execute(ctx context.Context, entry catalog.Entry) *Result {
	ctx, span := tracing.StartSpan(ctx, "gitsetup.command")
	s.printf("%s\n", entry.Command)
	result := &Result{Key: entry.Key, Command: entry.Command}
	output := &exec.Output{}
	err := s.executor.Execute(ctx, exec.NewInput(entry.Command), output)
	if command := output.Last(); command != nil {
		result.Stdout = command.Output
		result.Stderr = command.Stderr
		result.Status = command.Status
		if command.Error != "" && err == nil {
			err = errors.New(command.Error)
		}
	} else if err == nil {
		err = fmt.Errorf("no result for %s", entry.Key)
	}

	if result.Stderr != "" {
		// git writes regular notices to stderr, they suppress stdout but do not fail the command
		s.logger.Debug().Str("key", entry.Key).Str("stderr", result.Stderr).Msg("command stderr")
	} else if result.Stdout != "" {
		s.printf("%s\n", result.Stdout)
	}

	switch {
	case err != nil:
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
	case result.Status != 0:
		result.Outcome = OutcomeFailed
		result.Error = "exit status " + strconv.Itoa(result.Status)
	default:
		result.Outcome = OutcomeConfigured
	}

	span.WithAttributes(map[string]string{"key": entry.Key, "outcome": string(result.Outcome)})
	if result.Outcome == OutcomeFailed {
		s.logger.Error().Str("key", entry.Key).Int("status", result.Status).Str("error", result.Error).Msg("command failed")
		s.printf("failed: %s\n", result.Error)
		progress.UpdateCtx(ctx, progress.Delta{Failed: 1})
		tracing.EndSpan(span, errors.New(result.Error))
		return result
	}
	progress.UpdateCtx(ctx, progress.Delta{Configured: 1})
	tracing.EndSpan(span, nil)
	return result
}

func (s *Service) skip(ctx context.Context, entry catalog.Entry, reason string) *Result {
	progress.UpdateCtx(ctx, progress.Delta{Skipped: 1})
	return &Result{Key: entry.Key, Command: entry.Command, Outcome: OutcomeSkipped, Reason: strings.TrimSpace(reason)}
}

func (s *Service) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
