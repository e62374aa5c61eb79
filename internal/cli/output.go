package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/elibenporat/mlbbio/internal/domain/people"
	"github.com/elibenporat/mlbbio/internal/render"
)

// writeRecords prints nested records for debug and json, flat players for table.
func writeRecords(cmd *cobra.Command, format render.Format, nested any, players []people.Player, now time.Time) error {
	w := cmd.OutOrStdout()
	switch format {
	case render.FormatDebug:
		return render.Debug(w, nested)
	case render.FormatJSON:
		return render.JSON(w, nested)
	default:
		render.Table(w, players, now)
		return nil
	}
}
