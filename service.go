package gitsetup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"

	"github.com/viant/gitsetup/catalog"
	"github.com/viant/gitsetup/internal/clock"
	"github.com/viant/gitsetup/internal/idgen"
	"github.com/viant/gitsetup/policy"
	"github.com/viant/gitsetup/progress"
	"github.com/viant/gitsetup/service/action/system/exec"
	"github.com/viant/gitsetup/service/approval"
	"github.com/viant/gitsetup/service/approval/terminal"
	"github.com/viant/gitsetup/service/dao/report"
	"github.com/viant/gitsetup/service/identity"
	"github.com/viant/gitsetup/service/locale"
	"github.com/viant/gitsetup/service/sequencer"
	"github.com/viant/gitsetup/tracing"
)

// Service represents gitsetup service
type Service struct {
	executor        sequencer.Executor
	approvalService approval.Service
	in              *bufio.Reader
	stdin           bool
	out             io.Writer
	logger          zerolog.Logger
	fs              afs.Service
	fsOptions       []storage.Option
	lookupEnv       locale.LookupFunc
	fileExists      func(path string) bool
}

// New creates a service; without options it talks to the terminal.
func New(options ...Option) *Service {
	ret := &Service{
		in:         bufio.NewReader(os.Stdin),
		stdin:      true,
		out:        os.Stdout,
		logger:     zerolog.Nop(),
		lookupEnv:  os.LookupEnv,
		fileExists: fileExists,
	}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.approvalService == nil {
		fd := -1
		if ret.stdin {
			fd = int(os.Stdin.Fd())
		}
		ret.approvalService = terminal.New(terminal.NewKeyReader(ret.in, fd))
	}
	return ret
}

// Run applies the identity and the catalog according to cfg. Command
// failures do not stop the run, they are counted in the summary. A prompt
// answered with q stops the run and returns approval.ErrCancelled.
func (s *Service) Run(ctx context.Context, cfg *Config) (*Summary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	runID := idgen.New()
	ctx, tracker := progress.WithNewTracker(ctx, runID, nil)
	ctx, span := tracing.StartSpan(ctx, "gitsetup.run")
	span.WithAttributes(map[string]string{"run.id": runID, "platform": cfg.Platform})
	logger := s.logger.With().Str("run", runID).Logger()

	executor, release := s.ensureExecutor(cfg)
	defer release()

	summary := &Summary{RunID: runID, Platform: cfg.Platform, StartedAt: tracker.StartedAt}
	err := s.run(ctx, cfg, executor, summary, logger)
	summary.Counters = tracker.Snapshot()
	summary.FinishedAt = clock.Now()
	logger.Debug().Dur("elapsed", clock.Since(summary.StartedAt)).Str("counters", summary.Counters.String()).Msg("run finished")

	switch {
	case errors.Is(err, approval.ErrCancelled):
		summary.Cancelled = true
		s.printf("cancelled\n")
	case err == nil:
		s.printf("------------------------------------------\n")
		s.printf("%s\n", summary.Counters)
	}
	if cfg.ReportURL != "" && summary.Identity != nil {
		if rErr := s.saveReport(ctx, cfg, summary, err); rErr != nil {
			logger.Error().Err(rErr).Str("url", cfg.ReportURL).Msg("failed to save report")
		}
	}
	tracing.EndSpan(span, err)
	return summary, err
}

func (s *Service) run(ctx context.Context, cfg *Config, executor sequencer.Executor, summary *Summary, logger zerolog.Logger) error {
	definitions, err := s.definitions(ctx, cfg)
	if err != nil {
		return err
	}
	resolver := identity.NewResolver(executor, s.in, s.out)
	id, err := resolver.Resolve(ctx, cfg.Name, cfg.Email)
	if err != nil {
		return err
	}
	summary.Identity = id

	p := cfg.Policy()
	seq := sequencer.New(executor, s.approvalService,
		sequencer.WithOutput(s.out),
		sequencer.WithLogger(logger.With().Str("component", "sequencer").Logger()),
		sequencer.WithRunID(summary.RunID))

	s.printf("\nStarting Git environment setup\n")
	s.printf("------------------------------------------\n")
	for _, entry := range catalog.Identity(cfg.Platform, id.Name, id.Email) {
		summary.Results = append(summary.Results, seq.Execute(ctx, entry, p))
	}

	entries := catalog.Build(cfg.Platform, definitions, catalog.Options{Features: s.features(cfg)})
	logger.Debug().Int("entries", len(entries)).Str("mode", string(p.Mode)).Msg("applying catalog")
	results, err := seq.Run(ctx, entries, p)
	summary.Results = append(summary.Results, results...)
	if err != nil {
		return err
	}

	for _, action := range locale.Plan(cfg.Platform, s.lookupEnv) {
		if action.Entry != nil {
			summary.Results = append(summary.Results, seq.Execute(ctx, *action.Entry, p))
		}
		for _, line := range action.Notice {
			s.printf("%s\n", line)
		}
	}
	return nil
}

func (s *Service) definitions(ctx context.Context, cfg *Config) ([]*catalog.Definition, error) {
	if cfg.CatalogURL == "" {
		return catalog.Default(), nil
	}
	return catalog.NewLoader(s.fs, s.fsOptions...).Load(ctx, cfg.CatalogURL)
}

func (s *Service) features(cfg *Config) []string {
	var features []string
	if catalog.IsWindows(cfg.Platform) && s.fileExists(catalog.TortoiseGitPath) {
		features = append(features, catalog.FeatureTortoiseGit)
	}
	return features
}

func (s *Service) ensureExecutor(cfg *Config) (sequencer.Executor, func()) {
	if s.executor != nil {
		return s.executor, func() {}
	}
	executor := exec.New(exec.WithPlatform(cfg.Platform))
	return executor, func() {
		if err := executor.Close(context.Background()); err != nil {
			s.logger.Warn().Err(err).Msg("failed to close shell session")
		}
	}
}

func (s *Service) saveReport(ctx context.Context, cfg *Config, summary *Summary, runErr error) error {
	store, err := report.New(ctx, cfg.ReportURL, s.fs)
	if err != nil {
		return err
	}
	record := &report.Record{
		ID:         summary.RunID,
		Platform:   summary.Platform,
		Name:       summary.Identity.Name,
		Email:      summary.Identity.Email,
		Policy:     policy.ToConfig(cfg.Policy()),
		StartedAt:  summary.StartedAt,
		FinishedAt: summary.FinishedAt,
		Cancelled:  summary.Cancelled,
		Results:    summary.Results,
		Summary:    summary.Counters,
	}
	if runErr != nil && !summary.Cancelled {
		record.Error = runErr.Error()
	}
	return store.Save(ctx, record)
}

func (s *Service) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
