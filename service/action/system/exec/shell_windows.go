//go:build windows

package exec

import (
	"context"
	osexec "os/exec"
	"syscall"
)

// shellCommand passes command to cmd.exe verbatim; the default argument
// escaping uses \" which cmd.exe does not understand.
func shellCommand(ctx context.Context, command string) *osexec.Cmd {
	cmd := osexec.CommandContext(ctx, "cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: `cmd.exe /d /s /c "` + command + `"`}
	return cmd
}
