package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"routine/internal/engine"
	"routine/internal/ui"
)

func newStatusCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's progress, this week's progress and streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, flags)
			if err != nil {
				return err
			}
			defer cleanup()

			b := svc.View(svc.Today())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Status"))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%s %s", b.Daily.Key, ui.Progress(b.Daily.Done, b.Daily.Total))))
			fmt.Fprintln(out, ui.LabelValue("This week", fmt.Sprintf("%s %s", b.Weekly.Key, ui.Progress(b.Weekly.Done, b.Weekly.Total))))
			if best, ok := b.BestStreak(); ok && best.Streak > 0 {
				fmt.Fprintln(out, ui.LabelValue("Best streak", fmt.Sprintf("%s %s", best.Name, ui.Streak(best.Streak))))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconFire+" Streaks"))
			if len(b.Daily.Rows) == 0 {
				fmt.Fprintln(out, "  "+ui.Muted.Render("(no daily tasks)"))
			}
			for _, r := range b.Daily.Rows {
				fmt.Fprintf(out, "  %s %s %s\n", ui.Check(r.Done), r.Name, ui.Streak(r.Streak))
			}
			if pending := pendingNames(b.Weekly); len(pending) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(ui.IconWeek+" Still open this week"))
				for _, name := range pending {
					fmt.Fprintf(out, "  %s %s\n", ui.Check(false), name)
				}
			}
			return nil
		},
	}

	return cmd
}

func pendingNames(sec engine.Section) []string {
	var names []string
	for _, r := range sec.Rows {
		if !r.Done {
			names = append(names, r.Name)
		}
	}
	return names
}
