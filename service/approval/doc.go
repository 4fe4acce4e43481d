// Package approval implements the human-in-the-loop confirmation layer. Each
// catalog entry applied in interactive mode is turned into a Request; an
// approval Service answers it with a Decision or cancels the whole run.
package approval
