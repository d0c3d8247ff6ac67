package root

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"routine/internal/engine"
	"routine/internal/ui"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show daily and weekly tasks for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			renderBoard(cmd.OutOrStdout(), svc.View(ref))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Reference date (YYYY-MM-DD, default today)")

	return cmd
}

func renderBoard(w io.Writer, b engine.Board) {
	title := b.Date.Format("Monday, January 2, 2006")
	if b.IsToday() {
		title += " " + ui.Muted.Render("(today)")
	}
	fmt.Fprintln(w, ui.Heading(ui.IconCalendar, title))
	fmt.Fprintln(w, "")

	renderSection(w, "Daily", b.Daily)
	fmt.Fprintln(w, "")
	renderSection(w, "Weekly "+b.Weekly.Key, b.Weekly)
}

func renderSection(w io.Writer, title string, sec engine.Section) {
	fmt.Fprintf(w, "%s %s\n", ui.H2.Render(title), ui.Progress(sec.Done, sec.Total))
	if len(sec.Rows) == 0 {
		fmt.Fprintln(w, "  "+ui.Muted.Render("(none)"))
		return
	}
	for _, r := range sec.Rows {
		line := fmt.Sprintf("  %s %s %s", ui.Check(r.Done), ui.Muted.Render(fmt.Sprintf("#%d", r.ID)), r.Name)
		if r.HasStreak {
			line += " " + ui.Streak(r.Streak)
		} else {
			line += " " + ui.WeeklyStatus(r.Done)
		}
		if len(r.Alternatives) > 0 {
			line += " " + ui.Muted.Render("["+strings.Join(r.Alternatives, ", ")+"]")
		}
		fmt.Fprintln(w, line)
	}
}
