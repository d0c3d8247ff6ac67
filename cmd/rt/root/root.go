package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"routine/internal/ui"
)

const Version = "0.1.0"

type rootFlags struct {
	configFile string
	dbPath     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "rt",
		Short:         "routine: a daily and weekly habit tracker",
		Long:          "routine tracks recurring daily and weekly tasks, marks them done per day or ISO week, and derives a streak for each daily task.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default $XDG_CONFIG_HOME/routine/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "", "SQLite database path (overrides storage.path)")

	cmd.AddCommand(
		newListCmd(flags),
		newDoCmd(flags),
		newAddCmd(flags),
		newRemoveCmd(flags),
		newMoveCmd(flags),
		newSwapCmd(flags),
		newAltCmd(flags),
		newStatusCmd(flags),
		newExportCmd(flags),
		newBoardCmd(flags),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
