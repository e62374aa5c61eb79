package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/providers/statsapi"
	"github.com/elibenporat/mlbbio/internal/render"
)

func newDecodeCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "decode <file|->",
		Short: "Decode a saved Stats API people payload with --schema, without network access.",
		Example: "  mlbbio decode trout.json\n" +
			"  curl -s https://statsapi.mlb.com/api/v1/people/545361 | mlbbio decode --schema loose -",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output, render.FormatTable)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			env, err := statsapi.Decode(data, a.schema)
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			return writeRecords(cmd, format, env, people.NewPlayers(env.People), a.opts.Now())
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: debug, table or json (default table)")
	return cmd
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}
