package engine

import (
	"fmt"
	"time"
)

// Store holds the daily and weekly lists. Task ids are unique across both.
type Store struct {
	daily  *List
	weekly *List
	lastID int64
}

func NewStore(daily, weekly []Task) *Store {
	s := &Store{
		daily:  NewList(DailyCadence, daily),
		weekly: NewList(WeeklyCadence, weekly),
	}
	for _, l := range []*List{s.daily, s.weekly} {
		for _, t := range l.tasks {
			s.lastID = max(s.lastID, t.ID)
		}
	}
	return s
}

func (s *Store) Daily() *List  { return s.daily }
func (s *Store) Weekly() *List { return s.weekly }

func (s *Store) List(kind ListKind) (*List, error) {
	switch kind {
	case Daily:
		return s.daily, nil
	case Weekly:
		return s.weekly, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, kind)
	}
}

// Locate reports which list holds id.
func (s *Store) Locate(id int64) (ListKind, bool) {
	if s.daily.index(id) >= 0 {
		return Daily, true
	}
	if s.weekly.index(id) >= 0 {
		return Weekly, true
	}
	return "", false
}

// Add appends a new task with a fresh id and an empty ledger.
func (s *Store) Add(kind ListKind, name string, alternatives []string, now time.Time) (Task, error) {
	l, err := s.List(kind)
	if err != nil {
		return Task{}, err
	}
	n, err := normalizeName(name)
	if err != nil {
		return Task{}, err
	}
	t := Task{
		ID:           s.nextID(now),
		Name:         n,
		Alternatives: normalizeAlternatives(n, alternatives),
		Completed:    Ledger{},
	}
	if l.cadence.Streaks {
		t.Streak = new(int)
	}
	l.add(t)
	return t.clone(), nil
}

// nextID is time-derived but always above every id the store has held.
func (s *Store) nextID(now time.Time) int64 {
	id := max(now.UnixMilli(), s.lastID+1)
	s.lastID = id
	return id
}
