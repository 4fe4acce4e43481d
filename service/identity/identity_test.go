package identity

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/gitsetup/service/action/system/exec"
)

type gitConfig struct {
	values   map[string]string
	executed []string
}

func (g *gitConfig) Execute(_ context.Context, input *exec.Input, output *exec.Output) error {
	for _, cmd := range input.Commands {
		g.executed = append(g.executed, cmd)
		key := strings.TrimPrefix(cmd, "git config --global ")
		value, ok := g.values[key]
		if !ok {
			output.Commands = append(output.Commands, &exec.Command{Input: cmd, Status: 1})
			continue
		}
		output.Commands = append(output.Commands, &exec.Command{Input: cmd, Output: value + "\n"})
	}
	return nil
}

func TestValidateEmail(t *testing.T) {
	testCases := []struct {
		email  string
		expect bool
	}{
		{email: "user@example.com", expect: true},
		{email: "First.Last@Example.COM", expect: true},
		{email: "not-an-email", expect: false},
		{email: "", expect: false},
		{email: "a@", expect: false},
		{email: "@example.com", expect: false},
		{email: "a@[1.2.3.4]", expect: false},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, ValidateEmail(testCase.email), testCase.email)
	}
}

func TestResolver_Resolve(t *testing.T) {
	testCases := []struct {
		description  string
		name         string
		email        string
		stdin        string
		current      map[string]string
		expect       *Identity
		expectErr    error
		expectPrompt bool
	}{
		{
			description: "flags only",
			name:        "A B",
			email:       "a@b.com",
			expect:      &Identity{Name: "A B", Email: "a@b.com"},
		},
		{
			description:  "prompt with defaults accepted",
			stdin:        "\n\n",
			current:      map[string]string{"user.name": "Jane Doe", "user.email": "jane@example.com"},
			expect:       &Identity{Name: "Jane Doe", Email: "jane@example.com"},
			expectPrompt: true,
		},
		{
			description:  "prompt overrides defaults",
			stdin:        "John Roe\njohn@example.com\n",
			current:      map[string]string{"user.name": "Jane Doe", "user.email": "jane@example.com"},
			expect:       &Identity{Name: "John Roe", Email: "john@example.com"},
			expectPrompt: true,
		},
		{
			description:  "only missing email prompted",
			name:         "A B",
			stdin:        "a@b.com\n",
			expect:       &Identity{Name: "A B", Email: "a@b.com"},
			expectPrompt: true,
		},
		{
			description:  "empty name",
			stdin:        "\nuser@example.com\n",
			expectErr:    ErrNameRequired,
			expectPrompt: true,
		},
		{
			description: "invalid email",
			name:        "A B",
			email:       "not-an-email",
			expectErr:   ErrEmailInvalid,
		},
		{
			description:  "input closed",
			stdin:        "",
			expectErr:    ErrNameRequired,
			expectPrompt: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			executor := &gitConfig{values: testCase.current}
			out := &bytes.Buffer{}
			resolver := NewResolver(executor, bufio.NewReader(strings.NewReader(testCase.stdin)), out)
			actual, err := resolver.Resolve(context.Background(), testCase.name, testCase.email)
			if testCase.expectErr != nil {
				assert.ErrorIs(t, err, testCase.expectErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, testCase.expect, actual)
			}
			assert.Equal(t, testCase.expectPrompt, strings.Contains(out.String(), "?"))
			if !testCase.expectPrompt {
				assert.Empty(t, executor.executed)
			}
		})
	}
}

func TestResolver_PromptShowsCurrent(t *testing.T) {
	executor := &gitConfig{values: map[string]string{"user.name": "Jane Doe"}}
	out := &bytes.Buffer{}
	resolver := NewResolver(executor, bufio.NewReader(strings.NewReader("\njane@example.com\n")), out)
	_, err := resolver.Resolve(context.Background(), "", "")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Display name? [Jane Doe] ")
	assert.Contains(t, out.String(), "E-mail address? ")
	assert.NotContains(t, out.String(), "E-mail address? [")
}
