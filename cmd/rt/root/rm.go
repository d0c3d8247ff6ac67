package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"routine/internal/ui"
)

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a task and its history",
		Args:    idArgs(1, "id is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			kind, t, err := resolveTask(svc, id)
			if err != nil {
				return err
			}
			if _, err := svc.Remove(ctx, kind, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s task #%d: %s\n", ui.IconTrash, kind, id, t.Name)
			return nil
		},
	}

	return cmd
}
