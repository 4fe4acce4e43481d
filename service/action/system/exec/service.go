package exec

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/viant/afs"
	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
)

// noTimeoutMs replaces the session default timeout when a command may run
// for as long as it needs.
const noTimeoutMs = math.MaxInt32

// Service executes shell commands on the local host. On POSIX hosts commands
// share one gosh bash session; on Windows each command is started through
// cmd.exe so that the Windows catalog quoting applies.
type Service struct {
	platform string
	env      map[string]string
	fs       afs.Service
	session  *gosh.Service
	errURL   string
	errPath  string
	mux      sync.Mutex
}

// New creates a new Service instance
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.platform == "" {
		ret.platform = defaultPlatform()
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret
}

// Execute runs input commands in order and records one Command per executed
// entry. Command failures are reported through Output, never as an error;
// an error is only returned when no shell could be started at all.
func (s *Service) Execute(ctx context.Context, input *Input, output *Output) error {
	if input == nil || output == nil {
		return fmt.Errorf("invalid input/output: %T, %T", input, output)
	}
	timeout := time.Duration(input.TimeoutMs) * time.Millisecond
	commands := make([]*Command, 0, len(input.Commands))
	for _, cmd := range input.Commands {
		command, err := s.executeCommand(ctx, cmd, input.Env, timeout)
		if err != nil {
			return err
		}
		commands = append(commands, command)
		output.Status = command.Status
	}
	output.Commands = commands
	return nil
}

func (s *Service) executeCommand(ctx context.Context, command string, env map[string]string, timeout time.Duration) (*Command, error) {
	if s.platform == "windows" {
		return runWindows(ctx, command, s.mergeEnv(env), timeout), nil
	}
	session, err := s.getSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	options := []runner.Option{runner.WithTimeout(timeoutMs(timeout))}
	if len(env) > 0 {
		options = append(options, runner.WithEnvironment(env))
	}
	started := time.Now()
	// the session shares one stream for stdout and stderr, stderr is
	// redirected to a file and read back once the command completes
	stdout, status, err := session.Run(ctx, redirectStderr(command, s.errPath), options...)
	elapsed := time.Since(started)
	if timeout > 0 && elapsed > timeout && err == nil {
		err = fmt.Errorf("command %v timed out after: %s", command, elapsed)
	}
	ret := &Command{Input: command, Status: status}
	ret.Output = strings.TrimRight(stdout, "\r\n")
	ret.Stderr = s.readStderr(ctx)
	if err != nil {
		ret.Error = err.Error()
		if ret.Status == 0 {
			ret.Status = -1
		}
	}
	return ret, nil
}

// timeoutMs converts timeout to the session option; zero means no limit.
func timeoutMs(timeout time.Duration) int {
	if timeout <= 0 {
		return noTimeoutMs
	}
	return int(timeout.Milliseconds())
}

// redirectStderr wraps command in a group so that the stderr of every part of
// it lands in errPath.
func redirectStderr(command, errPath string) string {
	command = strings.TrimRight(strings.TrimSpace(command), ";")
	return "{ " + command + "; } 2>'" + strings.ReplaceAll(errPath, "'", `'\''`) + "'"
}

func (s *Service) readStderr(ctx context.Context) string {
	data, err := s.fs.DownloadWithURL(ctx, s.errURL)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(data), "\r\n")
}

func (s *Service) mergeEnv(env map[string]string) map[string]string {
	if len(s.env) == 0 {
		return env
	}
	merged := make(map[string]string, len(s.env)+len(env))
	for k, v := range s.env {
		merged[k] = v
	}
	for k, v := range env {
		merged[k] = v
	}
	return merged
}

// getSession retrieves the shared bash session or creates it.
func (s *Service) getSession(ctx context.Context) (*gosh.Service, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.session != nil {
		return s.session, nil
	}
	var envOptions []runner.Option
	if len(s.env) > 0 {
		envOptions = append(envOptions, runner.WithEnvironment(s.env))
	}
	errFile, err := os.CreateTemp("", "gitsetup-stderr-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create stderr file: %w", err)
	}
	_ = errFile.Close()
	session, err := gosh.New(ctx, local.New(envOptions...))
	if err != nil {
		_ = os.Remove(errFile.Name())
		return nil, err
	}
	s.errPath = errFile.Name()
	s.errURL = "file://" + s.errPath
	s.session = session
	return session, nil
}

// Close releases the bash session held by this service
func (s *Service) Close(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.session == nil {
		return nil
	}
	err := s.session.Close()
	s.session = nil
	if dErr := s.fs.Delete(ctx, s.errURL); dErr != nil && err == nil {
		err = dErr
	}
	s.errURL, s.errPath = "", ""
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}
