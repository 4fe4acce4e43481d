package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viant/gitsetup"
	"github.com/viant/gitsetup/internal/logging"
	"github.com/viant/gitsetup/service/approval"
	"github.com/viant/gitsetup/tracing"
)

var version = "1.0.0"

type flags struct {
	config      string
	name        string
	email       string
	interactive bool
	dryRun      bool
	only        []string
	skip        []string
	catalog     string
	report      string
	answers     string
	logLevel    string
	traceFile   string
	platform    string
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	code := 0
	cmd := newRootCmd(stdin, stdout, stderr, &code)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, approval.ErrCancelled) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return code
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer, code *int) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:   "gitsetup",
		Short: "Set up global git settings",
		Long: `gitsetup configures the global git identity, aliases, line-ending
policy and editor behaviour. With -i every setting is confirmed with a
single keypress: y runs it, q stops, any other key skips it.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			logger := logging.Configure(logging.Config{Level: f.logLevel, Output: stderr, Console: true})
			if f.traceFile != "" {
				if err := tracing.Init("gitsetup", version, f.traceFile); err != nil {
					return fmt.Errorf("failed to init tracing: %w", err)
				}
				defer func() {
					if err := tracing.Shutdown(context.Background()); err != nil {
						logger.Warn().Err(err).Msg("failed to flush traces")
					}
				}()
			}

			options := []gitsetup.Option{
				gitsetup.WithOutput(stdout),
				gitsetup.WithLogger(logging.WithComponent("gitsetup")),
			}
			if stdin != os.Stdin {
				options = append(options, gitsetup.WithInput(stdin))
			}
			var scripted *approval.Scripted
			if f.answers != "" {
				scripted = approval.NewScripted(f.answers)
				options = append(options, gitsetup.WithApprovalService(scripted))
			}
			summary, err := gitsetup.New(options...).Run(cmd.Context(), cfg)
			if scripted != nil && scripted.Remaining() > 0 {
				logger.Warn().Int("count", scripted.Remaining()).Msg("unused answers")
			}
			if err != nil {
				return err
			}
			if summary.Failed() {
				*code = 1
			}
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("v{{.Version}}\n")

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "YAML config URL (file path, file://, mem://...)")
	fl.StringVar(&f.name, "name", "", "git user.name")
	fl.StringVar(&f.email, "email", "", "git user.email")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "confirm each setting with a single keypress")
	fl.BoolVar(&f.dryRun, "dry-run", false, "print the commands without running them")
	fl.StringSliceVar(&f.only, "only", nil, "apply only these config keys")
	fl.StringSliceVar(&f.skip, "skip", nil, "never apply these config keys")
	fl.StringVar(&f.catalog, "catalog", "", "YAML catalog URL replacing the built-in settings")
	fl.StringVar(&f.report, "report", "", "directory URL receiving a JSON report of the run")
	fl.StringVar(&f.answers, "answers", "", "keys answering the prompts in order, e.g. yynq")
	fl.StringVar(&f.logLevel, "log-level", "", "diagnostic log level (debug, info, warn, error)")
	fl.StringVar(&f.traceFile, "trace-file", "", "write OpenTelemetry spans to this file")
	fl.StringVar(&f.platform, "platform", "", "target platform (linux, darwin, windows)")
	_ = fl.MarkHidden("platform")
	return cmd
}

// resolve merges the optional config file with flags; explicitly set flags win.
func (f *flags) resolve(cmd *cobra.Command) (*gitsetup.Config, error) {
	cfg := gitsetup.DefaultConfig()
	if f.config != "" {
		loaded, err := gitsetup.LoadConfig(cmd.Context(), nil, f.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	changed := cmd.Flags().Changed
	if changed("name") {
		cfg.Name = f.name
	}
	if changed("email") {
		cfg.Email = f.email
	}
	if changed("interactive") {
		cfg.Interactive = f.interactive
	}
	if changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if changed("only") {
		cfg.Only = f.only
	}
	if changed("skip") {
		cfg.Skip = f.skip
	}
	if changed("catalog") {
		cfg.CatalogURL = f.catalog
	}
	if changed("report") {
		cfg.ReportURL = f.report
	}
	if changed("platform") {
		cfg.Platform = strings.ToLower(f.platform)
	}
	return cfg, nil
}
