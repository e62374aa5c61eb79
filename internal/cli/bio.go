package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/providers/statsapi"
	"github.com/elibenporat/mlbbio/internal/render"
)

func newBioCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "bio <id>",
		Short:   "Print the raw bio response for one player.",
		Example: "  mlbbio bio 545361",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			text, err := a.provider.FetchBio(cmd.Context(), id)
			if err != nil {
				return err
			}
			return render.Labeled(cmd.OutOrStdout(), bioLabel(id, text), text)
		},
	}
}

// bioLabel names the player from the body when it carries a full name.
func bioLabel(id uint32, text string) string {
	env, err := statsapi.Decode([]byte(text), people.SchemaMinimal)
	if err == nil && len(env.People) > 0 && env.People[0].FullName != "" {
		return env.People[0].FullName + "'s Bio"
	}
	return fmt.Sprintf("Player %d's Bio", id)
}
