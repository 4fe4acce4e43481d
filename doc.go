// Package gitsetup configures a user's global git settings.
//
// A run resolves the user identity, then applies an ordered catalog of
// `git config --global` commands (aliases, editor, line endings, colours)
// through a sequencer that either executes every command or asks for a
// single-key confirmation first:
//
//	srv := gitsetup.New()
//	cfg := gitsetup.DefaultConfig()
//	cfg.Name, cfg.Email, cfg.Interactive = "Jane Doe", "jane@example.com", true
//	summary, err := srv.Run(ctx, cfg)
//
// The summary counts configured, skipped and failed commands; callers use it
// to decide the process exit status.
package gitsetup
