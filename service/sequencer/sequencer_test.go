package sequencer_test

import (
	"bytes"
	"context"
	"errors"
	osexec "os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/gitsetup/catalog"
	"github.com/viant/gitsetup/policy"
	"github.com/viant/gitsetup/progress"
	"github.com/viant/gitsetup/service/action/system/exec"
	"github.com/viant/gitsetup/service/approval"
	"github.com/viant/gitsetup/service/sequencer"
)

// recorder is an Executor that remembers every command it was asked to run.
type recorder struct {
	executed []string
	results  map[string]*exec.Command
	err      error
}

func (r *recorder) Execute(_ context.Context, input *exec.Input, output *exec.Output) error {
	if r.err != nil {
		return r.err
	}
	for _, cmd := range input.Commands {
		r.executed = append(r.executed, cmd)
		result := &exec.Command{Input: cmd}
		if predefined, ok := r.results[cmd]; ok {
			result = predefined
		}
		output.Commands = append(output.Commands, result)
	}
	return nil
}

func entries() []catalog.Entry {
	return []catalog.Entry{
		{Key: "alias.ci", Command: "git config --global alias.ci commit"},
		{Key: "alias.co", Command: "git config --global alias.co checkout"},
		{Key: "alias.st", Command: "git config --global alias.st status"},
	}
}

func commands(in []catalog.Entry) []string {
	var ret []string
	for _, e := range in {
		ret = append(ret, e.Command)
	}
	return ret
}

func TestService_RunNonInteractive(t *testing.T) {
	executor := &recorder{results: map[string]*exec.Command{
		"git config --global alias.co checkout": {Status: 1, Stderr: "error: could not lock config file"},
	}}
	out := &bytes.Buffer{}
	srv := sequencer.New(executor, approval.AutoReject("never asked"), sequencer.WithOutput(out))
	ctx, tracker := progress.WithNewTracker(context.Background(), "run", nil)

	results, err := srv.Run(ctx, entries(), policy.New(policy.ModeAuto))
	require.NoError(t, err)

	// every command exactly once, in catalog order, regardless of outcome
	assert.Equal(t, commands(entries()), executor.executed)
	require.Len(t, results, 3)
	assert.Equal(t, sequencer.OutcomeConfigured, results[0].Outcome)
	assert.Equal(t, sequencer.OutcomeFailed, results[1].Outcome)
	assert.Equal(t, sequencer.OutcomeConfigured, results[2].Outcome)
	assert.Equal(t, progress.Counters{Total: 3, Configured: 2, Failed: 1}, tracker.Snapshot())
	assert.NotContains(t, out.String(), "(y/n/q)")
	assert.NotContains(t, out.String(), "skipped")
}

func TestService_RunInteractive(t *testing.T) {
	testCases := []struct {
		description      string
		keys             string
		expectExecuted   []string
		expectConfigured int
		expectSkipped    int
		expectCancelled  bool
	}{
		{
			description:      "approve all",
			keys:             "yyy",
			expectExecuted:   commands(entries()),
			expectConfigured: 3,
		},
		{
			description:    "reject with n and space",
			keys:           "n N",
			expectExecuted: nil,
			expectSkipped:  3,
		},
		{
			description:      "mixed",
			keys:             "ynY",
			expectExecuted:   []string{entries()[0].Command, entries()[2].Command},
			expectConfigured: 2,
			expectSkipped:    1,
		},
		{
			description:      "quit halts before subsequent commands",
			keys:             "yqy",
			expectExecuted:   []string{entries()[0].Command},
			expectConfigured: 1,
			expectCancelled:  true,
		},
		{
			description:     "interrupt byte",
			keys:            "\x03",
			expectCancelled: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			executor := &recorder{}
			out := &bytes.Buffer{}
			srv := sequencer.New(executor, approval.NewScripted(testCase.keys), sequencer.WithOutput(out))
			results, err := srv.Run(context.Background(), entries(), policy.New(policy.ModeAsk))
			if testCase.expectCancelled {
				assert.ErrorIs(t, err, approval.ErrCancelled)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, testCase.expectExecuted, executor.executed)
			assert.Equal(t, testCase.expectConfigured, strings.Count(out.String(), "configured\n"))
			assert.Equal(t, testCase.expectSkipped, strings.Count(out.String(), "skipped\n"))
			handled := testCase.expectConfigured + testCase.expectSkipped
			assert.Len(t, results, handled)
		})
	}
}

func TestService_ApplyPromptFormat(t *testing.T) {
	executor := &recorder{}
	out := &bytes.Buffer{}
	srv := sequencer.New(executor, approval.NewScripted("y"), sequencer.WithOutput(out))
	_, err := srv.Apply(context.Background(), entries()[0], policy.New(policy.ModeAsk))
	require.NoError(t, err)
	assert.Equal(t, "Run this command? git config --global alias.ci commit (y/n/q): \n"+
		"git config --global alias.ci commit\n"+
		"configured\n", out.String())
}

func TestService_StderrSuppressesStdout(t *testing.T) {
	cmd := entries()[0].Command
	executor := &recorder{results: map[string]*exec.Command{
		cmd: {Input: cmd, Output: "visible?", Stderr: "warning: notice"},
	}}
	out := &bytes.Buffer{}
	srv := sequencer.New(executor, nil, sequencer.WithOutput(out))
	result, err := srv.Apply(context.Background(), entries()[0], policy.New(policy.ModeAuto))
	require.NoError(t, err)
	assert.Equal(t, sequencer.OutcomeConfigured, result.Outcome)
	assert.NotContains(t, out.String(), "visible?")

	executor.results[cmd] = &exec.Command{Input: cmd, Output: "visible!"}
	_, err = srv.Apply(context.Background(), entries()[0], policy.New(policy.ModeAuto))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "visible!")
}

func TestService_RunnerError(t *testing.T) {
	executor := &recorder{err: errors.New("bash: not found")}
	out := &bytes.Buffer{}
	srv := sequencer.New(executor, nil, sequencer.WithOutput(out))
	ctx, tracker := progress.WithNewTracker(context.Background(), "run", nil)
	results, err := srv.Run(ctx, entries(), policy.New(policy.ModeAuto))
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, result := range results {
		assert.Equal(t, sequencer.OutcomeFailed, result.Outcome)
		assert.Equal(t, "bash: not found", result.Error)
	}
	assert.Equal(t, 3, tracker.Snapshot().Failed)
}

func TestService_PolicyFilters(t *testing.T) {
	executor := &recorder{}
	out := &bytes.Buffer{}
	srv := sequencer.New(executor, approval.NewScripted(""), sequencer.WithOutput(out))
	p := &policy.Policy{Mode: policy.ModeAuto, BlockList: []string{"alias.co"}}
	results, err := srv.Run(context.Background(), entries(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{entries()[0].Command, entries()[2].Command}, executor.executed)
	assert.Equal(t, sequencer.OutcomeSkipped, results[1].Outcome)
	assert.Equal(t, "excluded by policy", results[1].Reason)

	// excluded entries are not prompted for
	executor = &recorder{}
	out.Reset()
	srv = sequencer.New(executor, approval.NewScripted("y"), sequencer.WithOutput(out))
	p = &policy.Policy{Mode: policy.ModeAsk, AllowList: []string{"alias.st"}}
	_, err = srv.Run(context.Background(), entries(), p)
	require.NoError(t, err)
	assert.Equal(t, []string{entries()[2].Command}, executor.executed)
	assert.Equal(t, 1, strings.Count(out.String(), "(y/n/q)"))
}

func TestService_DryRun(t *testing.T) {
	executor := &recorder{}
	out := &bytes.Buffer{}
	srv := sequencer.New(executor, nil, sequencer.WithOutput(out))
	p := policy.New(policy.ModeDeny)
	results, err := srv.Run(context.Background(), entries(), p)
	require.NoError(t, err)
	assert.Empty(t, executor.executed)
	assert.Len(t, results, 3)
	assert.Equal(t, 3, strings.Count(out.String(), "dry-run: "))

	result := srv.Execute(context.Background(), entries()[0], p)
	assert.Equal(t, sequencer.OutcomeSkipped, result.Outcome)
	assert.Empty(t, executor.executed)
}

func TestService_RunRequiresPolicy(t *testing.T) {
	srv := sequencer.New(&recorder{}, nil)
	_, err := srv.Run(context.Background(), entries(), nil)
	assert.ErrorIs(t, err, sequencer.ErrPolicyRequired)
	_, err = srv.Run(context.Background(), entries(), policy.New("maybe"))
	assert.Error(t, err)
}

func TestService_ApplyWithShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("bash session is not used on windows")
	}
	if _, err := osexec.LookPath("bash"); err != nil {
		t.Skip("bash is not available")
	}
	executor := exec.New(exec.WithPlatform(catalog.Linux))
	defer executor.Close(context.Background())
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	srv := sequencer.New(executor, nil,
		sequencer.WithOutput(out),
		sequencer.WithLogger(zerolog.New(logs).Level(zerolog.DebugLevel)))
	ctx, tracker := progress.WithNewTracker(context.Background(), "run", nil)
	auto := policy.New(policy.ModeAuto)

	notice, err := srv.Apply(ctx, catalog.Entry{Key: "notice", Command: "echo visible-stdout; echo git-notice 1>&2"}, auto)
	require.NoError(t, err)
	assert.Equal(t, sequencer.OutcomeConfigured, notice.Outcome)
	assert.Equal(t, "visible-stdout", notice.Stdout)
	assert.Equal(t, "git-notice", notice.Stderr)
	assert.NotContains(t, out.String(), "visible-stdout\n")
	assert.Contains(t, logs.String(), "git-notice")

	plain, err := srv.Apply(ctx, catalog.Entry{Key: "plain", Command: "echo plain-stdout"}, auto)
	require.NoError(t, err)
	assert.Equal(t, sequencer.OutcomeConfigured, plain.Outcome)
	// the echoed command and its output
	assert.Equal(t, 2, strings.Count(out.String(), "plain-stdout\n"))

	failed, err := srv.Apply(ctx, catalog.Entry{Key: "failing", Command: "echo oops 1>&2; false"}, auto)
	require.NoError(t, err)
	assert.Equal(t, sequencer.OutcomeFailed, failed.Outcome)
	assert.Equal(t, 1, failed.Status)
	assert.Equal(t, "oops", failed.Stderr)
	assert.Contains(t, out.String(), "failed: exit status 1\n")

	assert.Equal(t, progress.Counters{Configured: 2, Failed: 1}, tracker.Snapshot())
}
