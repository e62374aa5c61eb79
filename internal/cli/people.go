package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/elibenporat/mlbbio/internal/app/roster"
	"github.com/elibenporat/mlbbio/internal/logging"
	"github.com/elibenporat/mlbbio/internal/render"
)

func newPeopleCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "people <id>...",
		Short: "Fetch several players in one request and decode them with --schema.",
		Example: "  mlbbio people --schema minimal 545361 458015 614177\n" +
			"  mlbbio people --output json 545361,458015",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output, render.FormatTable)
			if err != nil {
				return err
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			logger := a.loggerFor(cmd.Context())
			found, err := roster.NewService(a.provider, logger).Lookup(cmd.Context(), ids)
			if err != nil {
				return err
			}
			logger.Info("people decoded",
				logging.Schema(a.schema.String()),
				slog.Int(logging.FieldCount, len(found.Players)),
			)
			return writeRecords(cmd, format, found.Envelope, found.Players, a.opts.Now())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: debug, table or json (default table)")
	return cmd
}
