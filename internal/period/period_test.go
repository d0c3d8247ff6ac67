package period

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func TestDayKeyStableWithinDay(t *testing.T) {
	morning := time.Date(2024, time.March, 9, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, time.March, 9, 23, 59, 59, 0, time.Local)

	assert.Equal(t, "2024-03-09", DayKey(morning))
	assert.Equal(t, DayKey(morning), DayKey(night))
}

func TestDayKeySortsLexicographically(t *testing.T) {
	a := DayKey(localDate(2024, time.September, 30))
	b := DayKey(localDate(2024, time.October, 1))
	assert.Less(t, a, b)
}

func TestWeekKeyYearBoundaries(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{localDate(2024, time.December, 30), "2025-W1"},
		{localDate(2025, time.January, 5), "2025-W1"},
		{localDate(2021, time.January, 3), "2020-W53"},
		{localDate(2023, time.January, 1), "2022-W52"},
		{localDate(2024, time.January, 1), "2024-W1"},
		{localDate(2024, time.January, 7), "2024-W1"},
		{localDate(2024, time.January, 8), "2024-W2"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, WeekKey(tc.date), "WeekKey(%s)", DayKey(tc.date))
	}
}

func TestWeekKeyMonotonicWithinYear(t *testing.T) {
	day := localDate(2024, time.January, 1)
	prev := 0
	for day.Year() == 2024 {
		year, week := day.ISOWeek()
		if year == 2024 {
			require.GreaterOrEqual(t, week, prev, "week went backwards at %s", DayKey(day))
			prev = week
		}
		day = AddDays(day, 1)
	}
	assert.Equal(t, 52, prev)
}

func TestWeekKeySharedMondayToSunday(t *testing.T) {
	monday := localDate(2024, time.May, 13)
	for i := 0; i < 7; i++ {
		assert.Equal(t, "2024-W20", WeekKey(AddDays(monday, i)))
	}
	assert.Equal(t, "2024-W21", WeekKey(AddDays(monday, 7)))
}

func TestAddDaysCrossesMonthAndYear(t *testing.T) {
	assert.Equal(t, "2024-03-01", DayKey(AddDays(localDate(2024, time.February, 28), 2)))
	assert.Equal(t, "2023-12-31", DayKey(AddDays(localDate(2024, time.January, 1), -1)))
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-05", DayKey(d))

	_, err = ParseDay("01/05/2024")
	assert.Error(t, err)
}

func TestFixedClock(t *testing.T) {
	at := localDate(2024, time.January, 5)
	assert.True(t, Fixed(at).Now().Equal(at))
}

// withLocal switches time.Local for the duration of the test.
func withLocal(t *testing.T, name string) {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	prev := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = prev })
}

func TestDayKeysAcrossMidnightDSTGap(t *testing.T) {
	// DST started at 00:00 on 2018-11-04 in Sao Paulo; that midnight never happened.
	withLocal(t, "America/Sao_Paulo")

	gapDay := time.Date(2018, time.November, 4, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "2018-11-04", DayKey(Day(gapDay)))
	assert.Equal(t, "2018-11-04", DayKey(AddDays(gapDay.AddDate(0, 0, -1), 1)))
	assert.Equal(t, "2018-11-03", DayKey(AddDays(gapDay, -1)))

	d, err := ParseDay("2018-11-04")
	require.NoError(t, err)
	assert.Equal(t, "2018-11-04", DayKey(d))

	var keys []string
	for i := 0; i < 4; i++ {
		keys = append(keys, DayKey(AddDays(time.Date(2018, time.November, 6, 8, 0, 0, 0, time.Local), -i)))
	}
	assert.Equal(t, []string{"2018-11-06", "2018-11-05", "2018-11-04", "2018-11-03"}, keys)
}
