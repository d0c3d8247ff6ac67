package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"routine/internal/ui"
)

func newSwapCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap <id> <name>",
		Short: "Swap a task's name with one of its alternatives (or a new name)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("id and new name are required")
			}
			_, err := parseID(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])
			name := strings.Join(args[1:], " ")

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			kind, before, err := resolveTask(svc, id)
			if err != nil {
				return err
			}
			swapped, err := svc.Swap(ctx, kind, id, name)
			if err != nil {
				return err
			}
			if !swapped {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("nothing to swap"))
				return nil
			}
			_, after, err := resolveTask(svc, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s → %s\n", ui.IconSwap, before.Name, after.Name)
			if len(after.Alternatives) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Alternatives", strings.Join(after.Alternatives, ", ")))
			}
			return nil
		},
	}

	return cmd
}
