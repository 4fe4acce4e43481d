package catalog

import (
	"fmt"
	"strings"
)

// Feature names a host capability an entry may depend on.
const (
	FeatureTortoiseGit = "tortoisegit"
)

// Definition describes one git setting.
type Definition struct {
	Key       string   `json:"key" yaml:"key"`
	Value     string   `json:"value" yaml:"value"`
	Platforms []string `json:"platforms,omitempty" yaml:"platforms,omitempty"` // empty => all
	Requires  string   `json:"requires,omitempty" yaml:"requires,omitempty"`   // feature name
}

// Entry is a definition rendered for a platform.
type Entry struct {
	Key     string `json:"key"`
	Command string `json:"command"`
}

// Options controls which optional definitions are included.
type Options struct {
	Features []string
}

func (o Options) has(feature string) bool {
	for _, f := range o.Features {
		if strings.EqualFold(f, feature) {
			return true
		}
	}
	return false
}

// Matches reports whether d applies to platform with options.
func (d *Definition) Matches(platform string, options Options) bool {
	if d.Requires != "" && !options.has(d.Requires) {
		return false
	}
	if len(d.Platforms) == 0 {
		return true
	}
	for _, p := range d.Platforms {
		if strings.EqualFold(p, platform) {
			return true
		}
	}
	return false
}

// Render returns the shell command applying d on platform.
func (d *Definition) Render(platform string) string {
	return fmt.Sprintf("git config --global %s %s", d.Key, Quote(platform, d.Value))
}

// Build renders every applicable definition in table order.
func Build(platform string, definitions []*Definition, options Options) []Entry {
	var entries []Entry
	for _, d := range definitions {
		if !d.Matches(platform, options) {
			continue
		}
		entries = append(entries, Entry{Key: d.Key, Command: d.Render(platform)})
	}
	return entries
}

// Command returns the built-in command for key on platform.
func Command(platform, key string) (string, bool) {
	for _, d := range Default() {
		if d.Key == key && d.Matches(platform, Options{Features: []string{FeatureTortoiseGit}}) {
			return d.Render(platform), true
		}
	}
	return "", false
}

// Identity returns the user.name and user.email entries, which always run
// before the catalog.
func Identity(platform, name, email string) []Entry {
	user := []*Definition{
		{Key: "user.name", Value: name},
		{Key: "user.email", Value: email},
	}
	return Build(platform, user, Options{})
}

// Validate checks that a loaded catalog is usable.
func Validate(definitions []*Definition) error {
	if len(definitions) == 0 {
		return fmt.Errorf("catalog was empty")
	}
	for i, d := range definitions {
		if d == nil || d.Key == "" {
			return fmt.Errorf("catalog entry %d: key was empty", i)
		}
		if d.Value == "" {
			return fmt.Errorf("catalog entry %s: value was empty", d.Key)
		}
	}
	return nil
}
