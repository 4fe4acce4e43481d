// Package identity resolves the git user.name and user.email applied by a run.
package identity

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/viant/gitsetup/service/action/system/exec"
)

var (
	ErrNameRequired = errors.New("you must configure the user.name setting")
	ErrEmailInvalid = errors.New("you must configure a valid user.email setting")
)

// Identity holds the resolved user settings.
type Identity struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Executor runs shell commands.
type Executor interface {
	Execute(ctx context.Context, input *exec.Input, output *exec.Output) error
}

var validate = validator.New()

// ValidateEmail reports whether email is an acceptable user.email value.
func ValidateEmail(email string) bool {
	return validate.Var(strings.ToLower(email), "required,email") == nil
}

// Validate checks the identity and maps failures to the sentinel errors.
func (i *Identity) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrNameRequired
	}
	if !ValidateEmail(i.Email) {
		return ErrEmailInvalid
	}
	return validate.Struct(i)
}

// Resolver fills in missing identity values from the current git settings
// and interactive prompts.
type Resolver struct {
	executor Executor
	in       *bufio.Reader
	out      io.Writer
}

// NewResolver creates a resolver. in must be the same buffered reader used by
// any later keypress prompts.
func NewResolver(executor Executor, in *bufio.Reader, out io.Writer) *Resolver {
	return &Resolver{executor: executor, in: in, out: out}
}

// Resolve returns a validated identity. Flag values win; when either is empty
// the user is prompted with the current git value as default.
func (r *Resolver) Resolve(ctx context.Context, name, email string) (*Identity, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		fmt.Fprintln(r.out, "The following will help you set up your Git environment:")
		fmt.Fprintln(r.out)
		currentName := r.current(ctx, "user.name")
		currentEmail := r.current(ctx, "user.email")
		if name == "" {
			name = r.ask("Display name?", currentName)
		}
		if email == "" {
			email = r.ask("E-mail address?", currentEmail)
		}
	}
	ret := &Identity{Name: name, Email: email}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// current reads a global git setting; errors mean "not set".
func (r *Resolver) current(ctx context.Context, key string) string {
	output := &exec.Output{}
	if err := r.executor.Execute(ctx, exec.NewInput("git config --global "+key), output); err != nil {
		return ""
	}
	command := output.Last()
	if command == nil || command.Failed() {
		return ""
	}
	return strings.TrimSpace(command.Output)
}

func (r *Resolver) ask(subject, current string) string {
	prompt := subject
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", subject, current)
	}
	fmt.Fprint(r.out, prompt+" ")
	line, _ := r.in.ReadString('\n')
	if answer := strings.TrimSpace(line); answer != "" {
		return answer
	}
	return current
}
