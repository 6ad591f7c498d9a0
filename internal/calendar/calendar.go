// Package calendar provides day/week/month comparisons for the habit
// engine. Weeks start on Monday (ISO), matching the weekly-luck reset.
// All functions are pure; timezone comes from the inputs themselves.
package calendar

import "time"

// FirstDayOfWeek is the calendar's week start.
const FirstDayOfWeek = time.Monday

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameISOWeek reports whether a and b fall in the same ISO week
// (ISO year and week number must both match).
func SameISOWeek(a, b time.Time) bool {
	ay, aw := a.ISOWeek()
	by, bw := b.ISOWeek()
	return ay == by && aw == bw
}

// SameMonth reports whether a and b fall in the same month and year.
func SameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns the first day of t's month at midnight.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday 00:00 that begins t's week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) - int(FirstDayOfWeek) + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// WeekInterval returns the half-open [Monday 00:00, next Monday 00:00)
// interval containing t.
func WeekInterval(t time.Time) (start, end time.Time) {
	start = WeekStart(t)
	return start, start.AddDate(0, 0, 7)
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
