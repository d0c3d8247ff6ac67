package engine

import (
	"time"

	"routine/internal/period"
)

// Row is one task as seen on a reference date.
type Row struct {
	ID           int64
	Name         string
	Alternatives []string
	Position     int
	Done         bool
	// Streak is set for daily tasks and counts back from today, not the reference date.
	Streak    int
	HasStreak bool
}

type Section struct {
	Kind  ListKind
	Key   string
	Rows  []Row
	Done  int
	Total int
}

// Board is everything the presentation layer needs to render one date.
type Board struct {
	Date   time.Time
	Today  time.Time
	Daily  Section
	Weekly Section
}

func (b Board) Section(kind ListKind) Section {
	if kind == Weekly {
		return b.Weekly
	}
	return b.Daily
}

// IsToday reports whether the reference date is the current day.
func (b Board) IsToday() bool {
	return period.DayKey(b.Date) == period.DayKey(b.Today)
}

// BestStreak is the longest current daily streak on the board.
func (b Board) BestStreak() (Row, bool) {
	var best Row
	found := false
	for _, r := range b.Daily.Rows {
		if !found || r.Streak > best.Streak {
			best = r
			found = true
		}
	}
	return best, found
}

// View renders both lists for the reference date.
func (s *Service) View(date time.Time) Board {
	today := s.Today()
	return Board{
		Date:   period.Day(date),
		Today:  today,
		Daily:  section(s.store.Daily(), date, today),
		Weekly: section(s.store.Weekly(), date, today),
	}
}

func section(l *List, date, today time.Time) Section {
	key := l.Key(date)
	tasks := l.Tasks()
	sec := Section{Kind: l.Kind(), Key: key, Total: len(tasks), Rows: make([]Row, 0, len(tasks))}
	for i, t := range tasks {
		r := Row{
			ID:           t.ID,
			Name:         t.Name,
			Alternatives: t.Alternatives,
			Position:     i,
			Done:         t.DoneOn(key),
		}
		if l.Cadence().Streaks {
			r.Streak = t.CurrentStreak(today)
			r.HasStreak = true
		}
		if r.Done {
			sec.Done++
		}
		sec.Rows = append(sec.Rows, r)
	}
	return sec
}
