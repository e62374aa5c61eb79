// Package cli wires configuration, providers and rendering into the mlbbio commands.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elibenporat/mlbbio/internal/logging"
)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           serviceName,
		Short:         "mlbbio fetches MLB player bios from the Stats API and decodes them into typed records.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(a.opts.Stdin)
	root.SetOut(a.opts.Stdout)
	root.SetErr(a.opts.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.provider, "provider", "", "data provider: statsapi or fixture (env PROVIDER)")
	pf.StringVar(&a.flags.baseURL, "base-url", "", "Stats API base URL (env STATSAPI_BASE_URL)")
	pf.StringVar(&a.flags.schema, "schema", "", "decoding schema: minimal, strict or loose (env STATSAPI_SCHEMA)")
	pf.DurationVar(&a.flags.pace, "pace", 0, "minimum delay between upstream requests (env REQUEST_PACE)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "text, json or pretty (env LOG_FORMAT)")
	pf.BoolVar(&a.flags.metrics, "metrics", false, "dump Prometheus metrics to stderr on exit (env METRICS_ENABLED)")

	root.AddCommand(
		newBioCommand(a),
		newPeopleCommand(a),
		newConvertCommand(a),
		newBatchCommand(a),
		newDecodeCommand(a),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	a := &app{opts: opts.withDefaults()}
	root := newRootCommand(a)
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	name := serviceName
	if cmd != nil {
		name = cmd.Name()
	}
	a.finish(name, err)

	if err == nil {
		return 0
	}
	if a.logger != nil {
		logging.Error(a.logger, "command failed", err, logging.FieldCommand, name)
	} else {
		fmt.Fprintln(a.opts.Stderr, "Error:", err)
	}
	return 1
}
