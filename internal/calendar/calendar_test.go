package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(date(2025, 7, 7, 0), date(2025, 7, 7, 23)))
	assert.False(t, SameDay(date(2025, 7, 7, 23), date(2025, 7, 8, 0)))
	assert.False(t, SameDay(date(2025, 7, 7, 12), date(2024, 7, 7, 12)))
}

func TestSameISOWeek(t *testing.T) {
	// Monday through Sunday of one ISO week.
	assert.True(t, SameISOWeek(date(2025, 7, 7, 0), date(2025, 7, 13, 23)))
	// Sunday to the following Monday crosses the boundary.
	assert.False(t, SameISOWeek(date(2025, 7, 13, 23), date(2025, 7, 14, 0)))
	// ISO years differ even when calendar years match.
	assert.False(t, SameISOWeek(date(2025, 1, 1, 0), date(2025, 12, 31, 0)))
	// Dec 29th 2025 belongs to ISO week 1 of 2026.
	assert.True(t, SameISOWeek(date(2025, 12, 29, 0), date(2026, 1, 4, 0)))
}

func TestSameMonth(t *testing.T) {
	assert.True(t, SameMonth(date(2025, 7, 1, 0), date(2025, 7, 31, 23)))
	assert.False(t, SameMonth(date(2025, 7, 31, 23), date(2025, 8, 1, 0)))
	assert.False(t, SameMonth(date(2025, 7, 15, 0), date(2024, 7, 15, 0)))
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(date(2025, 7, 7, 17))
	assert.Equal(t, date(2025, 7, 7, 0), got)

	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)
	local := time.Date(2025, 7, 7, 1, 30, 0, 0, loc)
	assert.Equal(t, loc, StartOfDay(local).Location())
	assert.Equal(t, 0, StartOfDay(local).Hour())
}

func TestStartOfMonth(t *testing.T) {
	assert.Equal(t, date(2025, 7, 1, 0), StartOfMonth(date(2025, 7, 31, 23)))
}

func TestWeekStart(t *testing.T) {
	monday := date(2025, 7, 7, 0)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i).Add(15 * time.Hour)
		assert.Equal(t, monday, WeekStart(day), "day offset %d", i)
	}
	assert.Equal(t, monday.AddDate(0, 0, 7), WeekStart(date(2025, 7, 14, 3)))
}

func TestWeekInterval(t *testing.T) {
	start, end := WeekInterval(date(2025, 7, 9, 16))
	assert.Equal(t, date(2025, 7, 7, 0), start)
	assert.Equal(t, date(2025, 7, 14, 0), end)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(date(2025, 7, 10, 0)))
	assert.Equal(t, 30, DaysInMonth(date(2025, 6, 10, 0)))
	assert.Equal(t, 28, DaysInMonth(date(2025, 2, 10, 0)))
	assert.Equal(t, 29, DaysInMonth(date(2024, 2, 10, 0)))
}
