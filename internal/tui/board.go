package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"routine/internal/engine"
	"routine/internal/ui"
)

func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m boardModel) View() string {
	main := m.renderMain()
	sidebar := m.renderSidebar()

	leftW := 44
	if m.width > 0 {
		maxLeft := m.width - 28
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 24 {
			leftW = 24
		}
	}

	linesLeft := strings.Split(main, "\n")
	linesRight := strings.Split(sidebar, "\n")
	n := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < n; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return m.renderHeader() + "\n\n" + body.String() + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	title := fmt.Sprintf("routine | %s %s", ui.IconCalendar, m.date.Format("Mon Jan 2, 2006"))
	if period := m.board.Weekly.Key; period != "" {
		title += " | " + period
	}
	if !m.board.Date.IsZero() && !m.board.IsToday() {
		title += " " + ui.Warn.Render("(not today: t to jump back)")
	}
	return ui.Title.Render(title)
}

func (m boardModel) renderMain() string {
	if m.loading && m.board.Date.IsZero() {
		return "Loading…"
	}
	var out []string
	pos := 0
	out, pos = m.renderSection(out, "Daily", m.board.Daily, pos)
	out = append(out, "")
	out, _ = m.renderSection(out, "Weekly", m.board.Weekly, pos)
	return strings.Join(out, "\n")
}

// renderSection appends the section's lines; pos is the selection index of its first row.
func (m boardModel) renderSection(out []string, title string, sec engine.Section, pos int) ([]string, int) {
	out = append(out, fmt.Sprintf("%s %s %d/%d", title, progressBar(sec.Done, sec.Total, 12), sec.Done, sec.Total))
	if len(sec.Rows) == 0 {
		out = append(out, "  (empty)")
		return out, pos
	}
	for _, r := range sec.Rows {
		cursor := "  "
		if pos == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if r.Done {
			mark = "[x]"
		}
		text := fmt.Sprintf("%s%s %s", cursor, mark, r.Name)
		if r.HasStreak {
			text += fmt.Sprintf(" (%d %s)", r.Streak, ui.IconFire)
		}
		if len(r.Alternatives) > 0 {
			text += " ~ " + strings.Join(r.Alternatives, "/")
		}
		out = append(out, text)
		pos++
	}
	return out, pos
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Keys"}
	lines = append(lines, "- ←/→ or h/l: day")
	lines = append(lines, "- t: today")
	lines = append(lines, "- ↑/↓ or k/j: select")
	lines = append(lines, "- c/space: toggle")
	lines = append(lines, "- K/J: move")
	lines = append(lines, "- s: swap")
	lines = append(lines, "- a/w: add daily/weekly")
	lines = append(lines, "- A: add alternative")
	lines = append(lines, "- d: remove")
	lines = append(lines, "- q: quit")
	if best, ok := m.board.BestStreak(); ok && best.Streak > 0 {
		lines = append(lines, "")
		lines = append(lines, fmt.Sprintf("Best: %s %d %s", best.Name, best.Streak, ui.IconFire))
	}
	return ui.Panel.Render(strings.Join(lines, "\n"))
}

func (m boardModel) renderFooter() string {
	if m.mode != inputNone {
		return "\n" + m.input.View() + "\n" + ui.Muted.Render("enter to confirm, esc to cancel")
	}
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
