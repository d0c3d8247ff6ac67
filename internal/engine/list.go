package engine

import (
	"slices"
	"strings"
	"time"
)

// List is an ordered task list with a fixed cadence. Position in the list is
// the display order.
//
// Every mutation builds a new slice and swaps it in, so a rejected operation
// never leaves a partial change behind.
type List struct {
	cadence Cadence
	tasks   []Task
}

// NewList copies tasks. Lists without streaks drop any stored streak value.
func NewList(c Cadence, tasks []Task) *List {
	l := &List{cadence: c, tasks: cloneTasks(tasks)}
	if !c.Streaks {
		for i := range l.tasks {
			l.tasks[i].Streak = nil
		}
	}
	return l
}

func (l *List) Kind() ListKind         { return l.cadence.Kind }
func (l *List) Cadence() Cadence       { return l.cadence }
func (l *List) Len() int               { return len(l.tasks) }
func (l *List) Tasks() []Task          { return cloneTasks(l.tasks) }
func (l *List) Key(t time.Time) string { return l.cadence.Key(t) }

func (l *List) Get(id int64) (Task, bool) {
	i := l.index(id)
	if i < 0 {
		return Task{}, false
	}
	return l.tasks[i].clone(), true
}

func (l *List) index(id int64) int {
	return slices.IndexFunc(l.tasks, func(t Task) bool { return t.ID == id })
}

// update applies fn to a copy of the task and commits it only when fn reports a change.
func (l *List) update(id int64, fn func(t *Task) bool) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	t := l.tasks[i].clone()
	if !fn(&t) {
		return false
	}
	next := slices.Clone(l.tasks)
	next[i] = t
	l.tasks = next
	return true
}

// Toggle flips the completion for one period key. The stored streak is left alone.
func (l *List) Toggle(id int64, key string) bool {
	return l.update(id, func(t *Task) bool {
		t.Completed[key] = !t.Completed[key]
		return true
	})
}

func (l *List) add(t Task) {
	next := slices.Clone(l.tasks)
	l.tasks = append(next, t.clone())
}

// Remove deletes the task. Removing an unknown id is a no-op.
func (l *List) Remove(id int64) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.tasks = slices.Delete(slices.Clone(l.tasks), i, i+1)
	return true
}

// Move swaps the task with its neighbour in direction dir (-1 up, +1 down).
// Moves past either end are no-ops.
func (l *List) Move(id int64, dir int) bool {
	if dir != -1 && dir != 1 {
		return false
	}
	i := l.index(id)
	j := i + dir
	if i < 0 || j < 0 || j >= len(l.tasks) {
		return false
	}
	next := slices.Clone(l.tasks)
	next[i], next[j] = next[j], next[i]
	l.tasks = next
	return true
}

// Swap renames the task to newName, rotating the old name into the alternatives.
func (l *List) Swap(id int64, newName string) bool {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return false
	}
	return l.update(id, func(t *Task) bool {
		if t.Name == newName {
			return false
		}
		old := t.Name
		t.Name = newName
		t.Alternatives = slices.DeleteFunc(t.Alternatives, func(a string) bool { return a == newName })
		t.Alternatives = append(t.Alternatives, old)
		return true
	})
}

// AddAlternative appends candidate unless it is blank, already listed, or the current name.
func (l *List) AddAlternative(id int64, candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return false
	}
	return l.update(id, func(t *Task) bool {
		if candidate == t.Name || slices.Contains(t.Alternatives, candidate) {
			return false
		}
		t.Alternatives = append(t.Alternatives, candidate)
		return true
	})
}

// RefreshStreaks recomputes the stored streak of every task from its ledger.
// Lists without streaks are left untouched.
func (l *List) RefreshStreaks(today time.Time) {
	if !l.cadence.Streaks {
		return
	}
	next := cloneTasks(l.tasks)
	for i := range next {
		s := next[i].CurrentStreak(today)
		next[i].Streak = &s
	}
	l.tasks = next
}
