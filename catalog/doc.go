// Package catalog defines the ordered list of git settings applied by a run.
//
// The catalog is a table of Definitions, each a git config key and value.
// Turning a Definition into a shell command is a pure function of the target
// platform: POSIX shells get single-quoted values, cmd.exe gets double-quoted
// ones. A YAML file may replace the built-in table.
package catalog
