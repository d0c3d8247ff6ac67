package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"routine/internal/period"
	"routine/internal/ui"
)

func newDoCmd(flags *rootFlags) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Toggle a task done/undone for a date (or its ISO week)",
		Args:  idArgs(1, "id is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			ref, err := referenceDate(svc, date)
			if err != nil {
				return err
			}
			kind, _, err := resolveTask(svc, id)
			if err != nil {
				return err
			}
			if _, err := svc.Toggle(ctx, kind, id, ref); err != nil {
				return err
			}

			l, err := svc.Store().List(kind)
			if err != nil {
				return err
			}
			t, _ := l.Get(id)
			key := l.Key(ref)
			if t.DoneOn(key) {
				msg := fmt.Sprintf("%s Done: %s %s", ui.IconDone, t.Name, ui.Muted.Render("("+key+")"))
				if l.Cadence().Streaks {
					msg += " " + ui.Streak(t.CurrentStreak(svc.Today()))
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(msg))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s Undone: %s %s\n", ui.IconTodo, t.Name, ui.Muted.Render("("+key+")"))
			}
			if period.DayKey(ref) != period.DayKey(svc.Today()) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("streaks count back from today"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD, default today)")

	return cmd
}
