package gitsetup

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"

	"github.com/viant/gitsetup/policy"
)

// Config is a serialisable representation of a run. It can be populated from
// YAML/JSON, flags or both; flags win.
type Config struct {
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Email       string   `json:"email,omitempty" yaml:"email,omitempty"`
	Interactive bool     `json:"interactive,omitempty" yaml:"interactive,omitempty"`
	DryRun      bool     `json:"dryRun,omitempty" yaml:"dryRun,omitempty"`
	Only        []string `json:"only,omitempty" yaml:"only,omitempty"`
	Skip        []string `json:"skip,omitempty" yaml:"skip,omitempty"`
	Platform    string   `json:"platform,omitempty" yaml:"platform,omitempty" validate:"required"`
	CatalogURL  string   `json:"catalogURL,omitempty" yaml:"catalogURL,omitempty"`
	ReportURL   string   `json:"reportURL,omitempty" yaml:"reportURL,omitempty"`
}

// ErrConflictingModes is returned when both interactive and dry-run are requested.
var ErrConflictingModes = errors.New("interactive and dry-run modes are mutually exclusive")

// DefaultConfig returns a non-interactive configuration for the host platform.
func DefaultConfig() *Config {
	return &Config{Platform: runtime.GOOS}
}

var validate = validator.New()

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config was nil")
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Interactive && c.DryRun {
		return ErrConflictingModes
	}
	return nil
}

// Policy derives the sequencer policy: dry-run never executes, interactive
// asks before each command, anything else executes right away.
func (c *Config) Policy() *policy.Policy {
	mode := policy.ModeAuto
	switch {
	case c.DryRun:
		mode = policy.ModeDeny
	case c.Interactive:
		mode = policy.ModeAsk
	}
	return &policy.Policy{
		Mode:      mode,
		AllowList: append([]string(nil), c.Only...),
		BlockList: append([]string(nil), c.Skip...),
	}
}

// LoadConfig reads a YAML config from URL on top of DefaultConfig.
func LoadConfig(ctx context.Context, fs afs.Service, URL string, options ...storage.Option) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	return cfg, nil
}
