package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(l *List) []string {
	var out []string
	for _, t := range l.Tasks() {
		out = append(out, t.Name)
	}
	return out
}

func newDailyList() *List {
	return NewList(DailyCadence, DefaultDaily())
}

func TestListToggleWritesOnlyOneLedgerEntry(t *testing.T) {
	l := newDailyList()

	require.True(t, l.Toggle(1, "2024-01-05"))
	got, _ := l.Get(1)
	assert.Equal(t, Ledger{"2024-01-05": true}, got.Completed)
	assert.Equal(t, 0, *got.Streak, "toggle must not touch the stored streak")

	require.True(t, l.Toggle(1, "2024-01-05"))
	got, _ = l.Get(1)
	assert.Equal(t, Ledger{"2024-01-05": false}, got.Completed)
	assert.False(t, got.DoneOn("2024-01-05"))

	assert.False(t, l.Toggle(999, "2024-01-05"))
}

func TestListSwapAlternative(t *testing.T) {
	l := newDailyList()

	require.True(t, l.Swap(1, "Gym"))
	got, _ := l.Get(1)
	assert.Equal(t, "Gym", got.Name)
	assert.NotContains(t, got.Alternatives, "Gym")
	assert.Contains(t, got.Alternatives, "Workout")
	assert.Equal(t, []string{"Yoga", "Workout"}, got.Alternatives)
}

func TestListSwapEdgeCases(t *testing.T) {
	l := newDailyList()

	assert.False(t, l.Swap(42, "Gym"), "unknown id")
	assert.False(t, l.Swap(1, "  "), "blank name")
	assert.False(t, l.Swap(1, "Workout"), "same name")

	require.True(t, l.Swap(1, "Swim"))
	got, _ := l.Get(1)
	assert.Equal(t, "Swim", got.Name)
	assert.Equal(t, []string{"Gym", "Yoga", "Workout"}, got.Alternatives)
}

func TestListAddAlternativeIsIdempotent(t *testing.T) {
	l := newDailyList()

	require.True(t, l.AddAlternative(2, "Audiobook"))
	first, _ := l.Get(2)

	assert.False(t, l.AddAlternative(2, "Audiobook"))
	assert.False(t, l.AddAlternative(2, " Audiobook "))
	second, _ := l.Get(2)
	assert.Equal(t, first.Alternatives, second.Alternatives)
	assert.Equal(t, []string{"Book", "Kindle", "Audiobook"}, second.Alternatives)
}

func TestListAddAlternativeGuards(t *testing.T) {
	l := newDailyList()

	assert.False(t, l.AddAlternative(2, ""))
	assert.False(t, l.AddAlternative(2, "   "))
	assert.False(t, l.AddAlternative(2, "Read"), "current name")
	assert.False(t, l.AddAlternative(99, "Anything"))

	got, _ := l.Get(2)
	assert.Equal(t, []string{"Book", "Kindle"}, got.Alternatives)
}

func TestListMove(t *testing.T) {
	l := NewList(DailyCadence, []Task{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}})

	assert.False(t, l.Move(1, -1), "first item up")
	assert.Equal(t, []string{"a", "b", "c"}, names(l))

	assert.False(t, l.Move(3, 1), "last item down")
	assert.False(t, l.Move(2, 2), "invalid direction")
	assert.False(t, l.Move(7, 1), "unknown id")
	assert.Equal(t, 3, l.Len())

	require.True(t, l.Move(1, 1))
	assert.Equal(t, []string{"b", "a", "c"}, names(l))
	require.True(t, l.Move(3, -1))
	assert.Equal(t, []string{"b", "c", "a"}, names(l))
}

func TestListRemoveIsIdempotent(t *testing.T) {
	l := newDailyList()

	require.True(t, l.Remove(1))
	assert.False(t, l.Remove(1))
	assert.Equal(t, []string{"Read"}, names(l))
}

func TestListTasksAreCopies(t *testing.T) {
	l := newDailyList()
	tasks := l.Tasks()
	tasks[0].Name = "mutated"
	tasks[0].Alternatives[0] = "mutated"
	tasks[0].Completed["2024-01-01"] = true

	got, _ := l.Get(1)
	assert.Equal(t, "Workout", got.Name)
	assert.Equal(t, "Gym", got.Alternatives[0])
	assert.Empty(t, got.Completed)
}

func TestListRefreshStreaks(t *testing.T) {
	today := day(2024, time.January, 5)
	daily := NewList(DailyCadence, []Task{{ID: 1, Name: "Read", Completed: ledgerFor(day(2024, time.January, 4))}})
	daily.RefreshStreaks(today)
	got, _ := daily.Get(1)
	require.NotNil(t, got.Streak)
	assert.Equal(t, 1, *got.Streak)

	weekly := NewList(WeeklyCadence, DefaultWeekly())
	weekly.RefreshStreaks(today)
	w, _ := weekly.Get(101)
	assert.Nil(t, w.Streak)
}

func TestWeeklyCadenceKeys(t *testing.T) {
	l := NewList(WeeklyCadence, DefaultWeekly())
	assert.Equal(t, "2025-W1", l.Key(day(2024, time.December, 30)))
	assert.Equal(t, Weekly, l.Kind())
}

func TestSplitAlternatives(t *testing.T) {
	assert.Equal(t, []string{"Gym", "Home workout"}, SplitAlternatives(" Gym, ,Home workout ,"))
	assert.Nil(t, SplitAlternatives(""))
}

func TestParseListKind(t *testing.T) {
	k, err := ParseListKind(" Weekly ")
	require.NoError(t, err)
	assert.Equal(t, Weekly, k)

	_, err = ParseListKind("monthly")
	assert.ErrorIs(t, err, ErrUnknownList)
}
