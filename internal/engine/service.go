package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"routine/internal/period"
	"routine/internal/storage"
)

const (
	DefaultDailyKey  = "dailyTasks"
	DefaultWeeklyKey = "weeklyTasks"
)

// Service owns the in-memory store and writes it back after every change.
// It is the single source of truth for one process; callers must not share a
// Service across goroutines.
type Service struct {
	kv     storage.KV
	clock  period.Clock
	logger *slog.Logger

	dailyKey  string
	weeklyKey string

	defaultDaily  []Task
	defaultWeekly []Task

	store *Store
}

type Option func(*Service)

func WithClock(c period.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithKeys overrides the slot keys the two lists are stored under.
func WithKeys(daily, weekly string) Option {
	return func(s *Service) {
		if daily != "" {
			s.dailyKey = daily
		}
		if weekly != "" {
			s.weeklyKey = weekly
		}
	}
}

func WithDefaults(daily, weekly []Task) Option {
	return func(s *Service) {
		s.defaultDaily = cloneTasks(daily)
		s.defaultWeekly = cloneTasks(weekly)
	}
}

func NewService(kv storage.KV, opts ...Option) *Service {
	s := &Service{
		kv:            kv,
		clock:         period.System,
		dailyKey:      DefaultDailyKey,
		weeklyKey:     DefaultWeeklyKey,
		defaultDaily:  DefaultDaily(),
		defaultWeekly: DefaultWeekly(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = discardLogger()
	}
	s.store = NewStore(s.defaultDaily, s.defaultWeekly)
	return s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func (s *Service) Store() *Store       { return s.store }
func (s *Service) Today() time.Time    { return period.Day(s.clock.Now()) }
func (s *Service) Clock() period.Clock { return s.clock }

// Load replaces the in-memory store with the persisted lists. Each list falls
// back to its defaults independently.
func (s *Service) Load(ctx context.Context) {
	daily := LoadList(ctx, s.kv, s.dailyKey, s.defaultDaily, s.logger)
	weekly := LoadList(ctx, s.kv, s.weeklyKey, s.defaultWeekly, s.logger)

	inDaily := make(map[int64]bool, len(daily))
	for _, t := range daily {
		inDaily[t.ID] = true
	}
	kept := weekly[:0]
	for _, t := range weekly {
		if inDaily[t.ID] {
			s.logger.Warn("dropping weekly task with id already used by a daily task", "id", t.ID, "name", t.Name)
			continue
		}
		kept = append(kept, t)
	}

	s.store = NewStore(daily, kept)
	s.store.Daily().RefreshStreaks(s.Today())
}

// Save writes both lists. Each is written on its own; a failure on one does
// not stop the other.
func (s *Service) Save(ctx context.Context) error {
	s.store.Daily().RefreshStreaks(s.Today())
	errDaily := SaveList(ctx, s.kv, s.dailyKey, s.store.Daily().Tasks())
	errWeekly := SaveList(ctx, s.kv, s.weeklyKey, s.store.Weekly().Tasks())
	if err := errors.Join(errDaily, errWeekly); err != nil {
		return err
	}
	s.logger.Debug("saved", "daily", s.store.Daily().Len(), "weekly", s.store.Weekly().Len())
	return nil
}

// Resolve finds the list holding id, or ErrTaskNotFound.
func (s *Service) Resolve(id int64) (ListKind, error) {
	kind, ok := s.store.Locate(id)
	if !ok {
		return "", ErrTaskNotFound
	}
	return kind, nil
}

// mutate runs op against the selected list and saves when it changed something.
func (s *Service) mutate(ctx context.Context, kind ListKind, name string, op func(l *List) bool) (bool, error) {
	l, err := s.store.List(kind)
	if err != nil {
		return false, err
	}
	if !op(l) {
		s.logger.Debug("no change", "op", name, "list", kind)
		return false, nil
	}
	return true, s.Save(ctx)
}

// Toggle flips completion of task id for the period containing date.
func (s *Service) Toggle(ctx context.Context, kind ListKind, id int64, date time.Time) (bool, error) {
	return s.mutate(ctx, kind, "toggle", func(l *List) bool {
		return l.Toggle(id, l.Key(date))
	})
}

func (s *Service) Add(ctx context.Context, kind ListKind, name string, alternatives []string) (Task, error) {
	t, err := s.store.Add(kind, name, alternatives, s.clock.Now())
	if err != nil {
		s.logger.Debug("add rejected", "list", kind, "error", err)
		return Task{}, err
	}
	return t, s.Save(ctx)
}

func (s *Service) Remove(ctx context.Context, kind ListKind, id int64) (bool, error) {
	return s.mutate(ctx, kind, "remove", func(l *List) bool { return l.Remove(id) })
}

func (s *Service) Move(ctx context.Context, kind ListKind, id int64, dir int) (bool, error) {
	return s.mutate(ctx, kind, "move", func(l *List) bool { return l.Move(id, dir) })
}

func (s *Service) Swap(ctx context.Context, kind ListKind, id int64, newName string) (bool, error) {
	return s.mutate(ctx, kind, "swap", func(l *List) bool { return l.Swap(id, newName) })
}

func (s *Service) AddAlternative(ctx context.Context, kind ListKind, id int64, candidate string) (bool, error) {
	return s.mutate(ctx, kind, "add-alternative", func(l *List) bool { return l.AddAlternative(id, candidate) })
}

// Snapshot is a copy of both lists with freshly computed streaks.
type Snapshot struct {
	Daily  []Task `json:"dailyTasks" yaml:"dailyTasks"`
	Weekly []Task `json:"weeklyTasks" yaml:"weeklyTasks"`
}

// Tasks returns the list of the given kind.
func (s Snapshot) Tasks(kind ListKind) []Task {
	if kind == Weekly {
		return s.Weekly
	}
	return s.Daily
}

func (s *Service) Snapshot() Snapshot {
	s.store.Daily().RefreshStreaks(s.Today())
	return Snapshot{
		Daily:  s.store.Daily().Tasks(),
		Weekly: s.store.Weekly().Tasks(),
	}
}
