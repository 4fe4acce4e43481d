package policy

import (
	"fmt"
	"strings"
)

// Mode controls how the sequencer treats a catalog entry.
type Mode string

// Execution modes recognised by the sequencer.
const (
	ModeAsk  Mode = "ask"  // ask user before every command
	ModeAuto Mode = "auto" // execute without asking
	ModeDeny Mode = "deny" // print only, never execute (dry run)
)

// Policy represents the approval settings for the current run.
//
//   - Mode controls the high-level behaviour (ask / auto / deny).
//   - AllowList, BlockList filter entries by git config key regardless of Mode.
type Policy struct {
	Mode      Mode
	AllowList []string // whitelist (empty => all)
	BlockList []string // blacklist
}

// New creates a policy for the supplied mode.
func New(mode Mode) *Policy {
	return &Policy{Mode: mode}
}

// Config represents the declarative, serialisable part of a Policy.
type Config struct {
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	AllowList []string `json:"allow,omitempty" yaml:"allow,omitempty"`
	BlockList []string `json:"block,omitempty" yaml:"block,omitempty"`
}

// ToConfig converts a runtime Policy into a persistable Config.
func ToConfig(p *Policy) *Config {
	if p == nil {
		return nil
	}
	return &Config{
		Mode:      string(p.Mode),
		AllowList: append([]string(nil), p.AllowList...),
		BlockList: append([]string(nil), p.BlockList...),
	}
}

// FromConfig converts a stored Config back to a runtime Policy.
func FromConfig(c *Config) *Policy {
	if c == nil {
		return nil
	}
	return &Policy{
		Mode:      Mode(strings.ToLower(c.Mode)),
		AllowList: append([]string(nil), c.AllowList...),
		BlockList: append([]string(nil), c.BlockList...),
	}
}

// Validate checks that the mode is one of the known values.
func (p *Policy) Validate() error {
	if p == nil {
		return fmt.Errorf("policy was nil")
	}
	switch p.Mode {
	case ModeAsk, ModeAuto, ModeDeny:
		return nil
	}
	return fmt.Errorf("unsupported policy mode: %q", p.Mode)
}

// IsAllowed evaluates AllowList / BlockList. Both lists match the git config
// key (for example "alias.ci") case-insensitively.
func (p *Policy) IsAllowed(key string) bool {
	if p == nil {
		return true
	}

	normalized := strings.ToLower(key)

	// BlockList has priority.
	for _, b := range p.BlockList {
		if normalized == strings.ToLower(b) {
			return false
		}
	}

	if len(p.AllowList) == 0 {
		return true
	}

	for _, a := range p.AllowList {
		if normalized == strings.ToLower(a) {
			return true
		}
	}

	return false
}
