package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// routine theme (CLI + TUI).
// Kept small: reusable styles and a few emojis.

const (
	IconSparkle  = "✨"
	IconPlus     = "➕"
	IconDone     = "✓"
	IconTodo     = "○"
	IconFire     = "🔥"
	IconCalendar = "📅"
	IconWeek     = "🗓️"
	IconSwap     = "↔️"
	IconMove     = "↕️"
	IconTrash    = "🗑️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Check renders the completion mark for a task.
func Check(done bool) string {
	if done {
		return Good.Render(IconDone)
	}
	return Muted.Render(IconTodo)
}

// Streak renders "(n 🔥)"; zero streaks are muted.
func Streak(n int) string {
	s := fmt.Sprintf("(%d %s)", n, IconFire)
	if n == 0 {
		return Muted.Render(s)
	}
	return Gold.Render(s)
}

// WeeklyStatus renders the weekly Done/Pending badge.
func WeeklyStatus(done bool) string {
	if done {
		return Good.Render("✅ Done")
	}
	return Warn.Render("⏳ Pending")
}

// Progress renders "done/total".
func Progress(done, total int) string {
	s := fmt.Sprintf("%d/%d", done, total)
	if total > 0 && done == total {
		return Good.Render(s)
	}
	return Muted.Render(s)
}
