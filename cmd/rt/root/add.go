package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"routine/internal/engine"
	"routine/internal/ui"
)

func newAddCmd(flags *rootFlags) *cobra.Command {
	var weekly bool
	var alts string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a daily (or weekly) task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := engine.Daily
			if weekly {
				kind = engine.Weekly
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.Add(ctx, kind, strings.Join(args, " "), engine.SplitAlternatives(alts))
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("%s Added %s task #%d: %s", ui.IconPlus, kind, t.ID, t.Name)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(msg))
			if len(t.Alternatives) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Alternatives", strings.Join(t.Alternatives, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&weekly, "weekly", "w", false, "Add to the weekly list")
	cmd.Flags().StringVarP(&alts, "alt", "a", "", "Comma-separated alternative names")

	return cmd
}
