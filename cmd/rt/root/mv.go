package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"routine/internal/ui"
)

func parseDirection(s string) (int, error) {
	switch s {
	case "up":
		return -1, nil
	case "down":
		return 1, nil
	default:
		return 0, errors.New("direction must be up or down")
	}
}

func newMoveCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mv <id> up|down",
		Aliases: []string{"move"},
		Short:   "Move a task one position up or down",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := idArgs(2, "id and direction are required")(cmd, args); err != nil {
				return err
			}
			_, err := parseDirection(args[1])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])
			dir, _ := parseDirection(args[1])

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
			moved, err := svc.Move(ctx, kind, id, dir)
			if err != nil {
				return err
			}
			if !moved {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("%s is already at the %s", t.Name, edgeName(dir))))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Moved %s %s\n", ui.IconMove, t.Name, args[1])
			return nil
		},
	}

	return cmd
}

func edgeName(dir int) string {
	if dir < 0 {
		return "top"
	}
	return "bottom"
}
