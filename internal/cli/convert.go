package cli

import (
	"github.com/spf13/cobra"

	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/render"
)

func newConvertCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "convert <id>",
		Short:   "Fetch one player and print the flattened record. The debug dump shows the nested record first.",
		Example: "  mlbbio convert 545361",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output, render.FormatDebug)
			if err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			person, err := a.provider.FetchPerson(cmd.Context(), id)
			if err != nil {
				return err
			}
			player := people.NewPlayer(person)
			if format == render.FormatDebug {
				return render.Debug(cmd.OutOrStdout(), person, player)
			}
			return writeRecords(cmd, format, player, []people.Player{player}, a.opts.Now())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: debug, table or json (default debug)")
	return cmd
}
