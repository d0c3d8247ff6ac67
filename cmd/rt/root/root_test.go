package root

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"routine/internal/engine"
)

type testEnv struct {
	t  *testing.T
	db string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("ROUTINE_DB", "")
	return &testEnv{t: t, db: filepath.Join(t.TempDir(), "routine.db")}
}

func (e *testEnv) run(args ...string) (string, error) {
	e.t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--db", e.db}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, out)
	return out
}

func (e *testEnv) snapshot() engine.Snapshot {
	e.t.Helper()
	var snap engine.Snapshot
	require.NoError(e.t, json.Unmarshal([]byte(e.mustRun("export")), &snap))
	return snap
}

func names(tasks []engine.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Name)
	}
	return out
}

func TestListShowsDefaults(t *testing.T) {
	e := newTestEnv(t)

	out := e.mustRun("list")
	assert.Contains(t, out, "Workout")
	assert.Contains(t, out, "Read")
	assert.Contains(t, out, "Go out")
	assert.Contains(t, out, "(today)")
	assert.Contains(t, out, "0/2")
}

func TestDoTogglesAndPersists(t *testing.T) {
	e := newTestEnv(t)

	out := e.mustRun("do", "1")
	assert.Contains(t, out, "Done: Workout")
	assert.Contains(t, out, "(1 🔥)")

	assert.Contains(t, e.mustRun("list"), "1/2")

	out = e.mustRun("do", "1")
	assert.Contains(t, out, "Undone: Workout")
}

func TestDoWithPastDate(t *testing.T) {
	e := newTestEnv(t)

	out := e.mustRun("do", "101", "--date", "2024-01-04")
	assert.Contains(t, out, "2024-W1")

	snap := e.snapshot()
	require.Len(t, snap.Weekly, 1)
	assert.True(t, snap.Weekly[0].Completed["2024-W1"])
}

func TestDoErrors(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.run("do", "999")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrTaskNotFound)

	_, err = e.run("do", "abc")
	assert.EqualError(t, err, "id must be an integer")

	_, err = e.run("do")
	assert.EqualError(t, err, "id is required")

	_, err = e.run("do", "1", "--date", "05/01/2024")
	assert.ErrorContains(t, err, "invalid date")
}

func TestAddWeeklyWithAlternatives(t *testing.T) {
	e := newTestEnv(t)

	out := e.mustRun("add", "Call", "family", "--weekly", "--alt", "Mom, Dad, Call family,")
	assert.Contains(t, out, "Added weekly task")
	assert.Contains(t, out, "Call family")

	snap := e.snapshot()
	require.Len(t, snap.Weekly, 2)
	added := snap.Weekly[1]
	assert.Equal(t, "Call family", added.Name)
	assert.Equal(t, []string{"Mom", "Dad"}, added.Alternatives)
	assert.Greater(t, added.ID, int64(101))

	_, err := e.run("add", "   ")
	assert.ErrorIs(t, err, engine.ErrEmptyName)
}

func TestMoveSwapAltRemove(t *testing.T) {
	e := newTestEnv(t)

	e.mustRun("mv", "2", "up")
	assert.Equal(t, []string{"Read", "Workout"}, names(e.snapshot().Daily))

	out := e.mustRun("mv", "2", "up")
	assert.Contains(t, out, "already at the top")

	_, err := e.run("mv", "2", "sideways")
	assert.EqualError(t, err, "direction must be up or down")

	e.mustRun("swap", "1", "Gym")
	e.mustRun("alt", "1", "Pilates")
	w := e.snapshot().Daily[1]
	assert.Equal(t, "Gym", w.Name)
	assert.Equal(t, []string{"Yoga", "Workout", "Pilates"}, w.Alternatives)

	out = e.mustRun("alt", "1", "Yoga")
	assert.Contains(t, out, "already known")

	e.mustRun("rm", "1")
	assert.Equal(t, []string{"Read"}, names(e.snapshot().Daily))

	_, err = e.run("rm", "1")
	assert.ErrorIs(t, err, engine.ErrTaskNotFound)
}

func TestExportYAML(t *testing.T) {
	e := newTestEnv(t)

	out := e.mustRun("export", "--format", "yaml")
	assert.Contains(t, out, "dailyTasks:")
	assert.Contains(t, out, "weeklyTasks:")
	assert.Contains(t, out, "name: Workout")

	_, err := e.run("export", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestStatus(t *testing.T) {
	e := newTestEnv(t)
	e.mustRun("do", "2")

	out := e.mustRun("status")
	assert.Contains(t, out, "Streaks")
	assert.Contains(t, out, "Best streak")
	assert.Contains(t, out, "Still open this week")
	assert.Contains(t, out, "Go out")
}

func TestExportSingleList(t *testing.T) {
	e := newTestEnv(t)

	var weekly []engine.Task
	require.NoError(t, json.Unmarshal([]byte(e.mustRun("export", "--list", "weekly")), &weekly))
	assert.Equal(t, []string{"Go out"}, names(weekly))
	assert.Nil(t, weekly[0].Streak)

	_, err := e.run("export", "--list", "monthly")
	assert.ErrorIs(t, err, engine.ErrUnknownList)
}
