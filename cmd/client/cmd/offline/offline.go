package offline

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"safetrip/cmd/client/cmd/types"
	"safetrip/cmd/client/cmd/ui"
	"safetrip/internal/app/client"
)

var OfflineCmd = &cobra.Command{
	Use:       "offline <type>",
	Short:     "Show the last saved copy of some data without contacting the server",
	Long:      "Types: " + strings.Join(client.CacheTypes, ", "),
	Args:      cobra.ExactArgs(1),
	ValidArgs: client.CacheTypes,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(client.CacheTypes, args[0]) {
			return fmt.Errorf("unknown type %q, expected one of: %s", args[0], strings.Join(client.CacheTypes, ", "))
		}

		app, err := types.App(cmd)
		if err != nil {
			return err
		}

		entry, err := app.Offline(cmd.Context(), args[0])
		if errors.Is(err, client.ErrNotCached) {
			ui.Warn("nothing saved for %s yet", args[0])
			return nil
		}
		if err != nil {
			return err
		}

		ui.Heading("%s, saved %s", args[0], entry.UpdatedAt.Local().Format("2006-01-02 15:04"))
		return ui.JSON(entry.Payload)
	},
}
