// Package progress keeps the counters of a single gitsetup run: how many
// commands were configured, skipped or failed. The final summary and the
// process exit status are derived from them.
package progress
