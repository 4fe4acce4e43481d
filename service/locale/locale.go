// Package locale checks the locale variables git needs to print non-ASCII
// paths and messages correctly.
package locale

import (
	"fmt"

	"github.com/viant/gitsetup/catalog"
)

// DefaultValue is the locale recommended for every variable.
const DefaultValue = "C.UTF-8"

// Variables lists the checked environment variables in check order.
var Variables = []string{"LC_ALL", "LANG"}

// LookupFunc mirrors os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Action fixes or reports one missing variable. On Windows Entry persists the
// variable with SETX; elsewhere Entry is nil and Notice tells the user what
// to export.
type Action struct {
	Variable string
	Entry    *catalog.Entry
	Notice   []string
}

// Plan returns one action per unset or empty variable.
func Plan(platform string, lookup LookupFunc) []*Action {
	var actions []*Action
	for _, name := range Variables {
		if value, ok := lookup(name); ok && value != "" {
			continue
		}
		action := &Action{Variable: name}
		if catalog.IsWindows(platform) {
			action.Entry = &catalog.Entry{Key: "env." + name, Command: fmt.Sprintf("SETX %s %s", name, DefaultValue)}
			action.Notice = []string{"Restart the application or command prompt for the environment variable to take effect!"}
		} else {
			action.Notice = []string{
				"REMEMBER TO SET UP THE FOLLOWING ENVIRONMENT VARIABLE:",
				fmt.Sprintf("export %s=%s", name, DefaultValue),
			}
		}
		actions = append(actions, action)
	}
	return actions
}
