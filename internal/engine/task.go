package engine

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"routine/internal/period"
)

// ListKind selects one of the two task lists.
type ListKind string

const (
	Daily  ListKind = "daily"
	Weekly ListKind = "weekly"
)

func (k ListKind) IsValid() bool {
	switch k {
	case Daily, Weekly:
		return true
	default:
		return false
	}
}

func ParseListKind(input string) (ListKind, error) {
	k := ListKind(strings.TrimSpace(strings.ToLower(input)))
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownList, input)
	}
	return k, nil
}

// Ledger maps a period key to whether the task was completed in that period.
// A missing key and false both mean not completed.
type Ledger map[string]bool

func (l Ledger) Done(key string) bool { return l[key] }

// Task is a recurring daily or weekly task.
type Task struct {
	ID           int64    `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Alternatives []string `json:"alternatives" yaml:"alternatives"`
	Completed    Ledger   `json:"completed" yaml:"completed"`
	// Streak is the last value computed by CurrentStreak; daily tasks only.
	Streak *int `json:"streak,omitempty" yaml:"streak,omitempty"`
}

// CurrentStreak derives the task's streak as of today from its ledger.
func (t Task) CurrentStreak(today time.Time) int {
	return CurrentStreak(t.Completed, today)
}

// DoneOn reports the effective completion for a period key.
func (t Task) DoneOn(key string) bool {
	return t.Completed.Done(key)
}

func (t Task) clone() Task {
	out := t
	out.Alternatives = slices.Clone(t.Alternatives)
	if out.Alternatives == nil {
		out.Alternatives = []string{}
	}
	out.Completed = make(Ledger, len(t.Completed))
	for k, v := range t.Completed {
		out.Completed[k] = v
	}
	if t.Streak != nil {
		v := *t.Streak
		out.Streak = &v
	}
	return out
}

func cloneTasks(tasks []Task) []Task {
	out := make([]Task, len(tasks))
	for i := range tasks {
		out[i] = tasks[i].clone()
	}
	return out
}

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", ErrEmptyName
	}
	return n, nil
}

// normalizeAlternatives trims entries and drops blanks, duplicates and the current name.
func normalizeAlternatives(name string, alts []string) []string {
	out := make([]string, 0, len(alts))
	for _, a := range alts {
		a = strings.TrimSpace(a)
		if a == "" || a == name || slices.Contains(out, a) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// SplitAlternatives parses a comma separated list of alternatives.
func SplitAlternatives(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Cadence binds a list kind to its period key function.
type Cadence struct {
	Kind    ListKind
	Key     func(time.Time) string
	Streaks bool
}

var (
	DailyCadence  = Cadence{Kind: Daily, Key: period.DayKey, Streaks: true}
	WeeklyCadence = Cadence{Kind: Weekly, Key: period.WeekKey}
)
