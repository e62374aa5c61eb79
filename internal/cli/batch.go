package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/elibenporat/mlbbio/internal/app/roster"
	"github.com/elibenporat/mlbbio/internal/config"
	"github.com/elibenporat/mlbbio/internal/logging"
	"github.com/elibenporat/mlbbio/internal/render"
)

func newBatchCommand(a *app) *cobra.Command {
	var (
		output     string
		rosterFile string
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Fetch every player on a roster one request at a time, stopping at the first failure.",
		Example: "  mlbbio batch\n" +
			"  mlbbio batch --roster roster.json5 --pace 250ms",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output, render.FormatTable)
			if err != nil {
				return err
			}
			path := a.cfg.RosterFile
			if cmd.Flags().Changed("roster") {
				path = rosterFile
			}
			logger := a.loggerFor(cmd.Context())
			r, err := loadRoster(path, logger)
			if err != nil {
				return err
			}

			logger.Info("batch starting",
				slog.String("roster", r.Name),
				logging.Schema(a.schema.String()),
				slog.Int(logging.FieldCount, len(r.PlayerIDs)),
			)
			players, err := roster.NewService(a.provider, logger).Batch(cmd.Context(), r.PlayerIDs)
			if err != nil {
				return err
			}
			return writeRecords(cmd, format, players, players, a.opts.Now())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: debug, table or json (default table)")
	cmd.Flags().StringVar(&rosterFile, "roster", "", "JSON5 roster file (env ROSTER_FILE); built-in roster when empty")
	return cmd
}

func loadRoster(path string, logger *slog.Logger) (roster.Roster, error) {
	if path == "" {
		return roster.DefaultRoster(), nil
	}
	file, err := config.LoadRoster(path, logger)
	if err != nil {
		return roster.Roster{}, err
	}
	name := file.Name
	if name == "" {
		name = path
	}
	return roster.Roster{Name: name, PlayerIDs: file.PlayerIDs}, nil
}
