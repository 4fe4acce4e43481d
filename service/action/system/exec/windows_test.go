package exec

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWindows(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("cmd.exe is only available on windows")
	}
	command := runWindows(context.Background(), "echo gitsetup && echo notice 1>&2", nil, 0)
	assert.Equal(t, 0, command.Status)
	assert.Contains(t, command.Output, "gitsetup")
	assert.Contains(t, command.Stderr, "notice")

	command = runWindows(context.Background(), "exit /b 3", nil, 0)
	assert.Equal(t, 3, command.Status)
	assert.True(t, command.Failed())
}

func TestRunWindows_QuotedArguments(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("cmd.exe is only available on windows")
	}
	command := runWindows(context.Background(), `echo "A B"`, nil, 0)
	assert.Equal(t, 0, command.Status)
	assert.Equal(t, `"A B"`, command.Output)

	command = runWindows(context.Background(), `if "A B"=="A B" (echo same) else (echo different)`, nil, 0)
	assert.Equal(t, 0, command.Status, command.Stderr)
	assert.Equal(t, "same", command.Output)
}
