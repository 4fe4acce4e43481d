package exec

import (
	"bytes"
	"context"
	"errors"
	"os"
	osexec "os/exec"
	"strings"
	"time"
)

// runWindows starts command through cmd.exe, keeping stdout and stderr apart.
func runWindows(ctx context.Context, command string, env map[string]string, timeout time.Duration) *Command {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	cmd := shellCommand(ctx, command)
	if len(env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	ret := &Command{Input: command}
	err := cmd.Run()
	ret.Output = strings.TrimRight(stdout.String(), "\r\n")
	ret.Stderr = strings.TrimRight(stderr.String(), "\r\n")
	if err != nil {
		var exitErr *osexec.ExitError
		if errors.As(err, &exitErr) {
			ret.Status = exitErr.ExitCode()
		} else {
			ret.Status = -1
			ret.Error = err.Error()
		}
	}
	return ret
}
