// Package sequencer applies catalog entries one after another. Depending on
// the policy mode each entry runs right away, waits for a single-key
// confirmation, or is only printed. Every entry produces a Result and
// updates the run progress.
package sequencer
