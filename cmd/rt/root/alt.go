package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"routine/internal/ui"
)

func newAltCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alt <id> <alternative>",
		Short: "Add an alternative name to a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("id and alternative are required")
			}
			_, err := parseID(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])
			candidate := strings.Join(args[1:], " ")

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
			added, err := svc.AddAlternative(ctx, kind, id, candidate)
			if err != nil {
				return err
			}
			if !added {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%q is already known for %s", strings.TrimSpace(candidate), t.Name)))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added alternative %q to %s\n", ui.IconPlus, strings.TrimSpace(candidate), t.Name)
			return nil
		},
	}

	return cmd
}
