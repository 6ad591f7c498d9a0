package habit

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/leetboo/leetboo/internal/calendar"
	"github.com/leetboo/leetboo/internal/domain"
	"github.com/leetboo/leetboo/internal/infra/metrics"
)

// LogActivity appends a completion event for the calendar day of date.
// At most one entry exists per (type, day): duplicates are a silent no-op,
// which is what prevents double-rewarding when the same day arrives via
// both a banner confirmation and a backdated entry.
//
// addCoins credits the type's reward through the ledger. Interactive
// confirmation flows pass false because they credit through their own
// path; callers coordinate so coins land exactly once per occurrence.
func (e *Engine) LogActivity(t domain.ActivityType, date time.Time, addCoins bool) error {
	if !t.Valid() {
		return domain.ErrUnknownActivityType
	}
	e.update(func(now time.Time) bool {
		return e.appendLogLocked(t, date, addCoins)
	})
	return nil
}

// appendLogLocked is the deduplicated insert shared by LogActivity and
// ConfirmCheckIn. Returns false when the day was already logged.
func (e *Engine) appendLogLocked(t domain.ActivityType, date time.Time, addCoins bool) bool {
	for _, entry := range e.data.ActivityLog {
		if entry.Type == t && calendar.SameDay(entry.Date, date) {
			metrics.DuplicateLogsIgnored.WithLabelValues(string(t)).Inc()
			return false
		}
	}

	if addCoins {
		e.addCoinsLocked(t.Reward())
	}
	e.data.ActivityLog = append(e.data.ActivityLog, domain.ActivityLogEntry{
		ID:          uuid.New().String(),
		Date:        date,
		Type:        t,
		CoinsEarned: t.Reward(),
	})
	slices.SortStableFunc(e.data.ActivityLog, func(a, b domain.ActivityLogEntry) int {
		return a.Date.Compare(b.Date)
	})
	metrics.LogEntriesAppended.WithLabelValues(string(t)).Inc()
	return true
}

// CurrentStreak counts consecutive logged days of the type ending today
// or yesterday. A most-recent entry older than yesterday means the chain
// is broken and the streak is 0.
func (e *Engine) CurrentStreak(t domain.ActivityType) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()

	// Newest-first days of this type.
	var days []time.Time
	for i := len(e.data.ActivityLog) - 1; i >= 0; i-- {
		if e.data.ActivityLog[i].Type == t {
			days = append(days, calendar.StartOfDay(e.data.ActivityLog[i].Date))
		}
	}
	if len(days) == 0 {
		return 0
	}

	today := calendar.StartOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	streak := 0
	expected := yesterday
	start := 0
	switch {
	case days[0].Equal(today):
		streak = 1
		start = 1
	case days[0].Equal(yesterday):
		// Walk from yesterday without pre-incrementing.
	default:
		return 0
	}

	for _, d := range days[start:] {
		switch {
		case d.Equal(expected):
			streak++
			expected = expected.AddDate(0, 0, -1)
		case d.After(expected):
			// Duplicate of an already-matched day. The log dedupe should
			// keep this unreachable; skipping preserves the chain anyway.
		default:
			return streak
		}
	}
	return streak
}

// MonthlyCount returns the number of distinct calendar days in the
// current month with at least one entry of the type.
func (e *Engine) MonthlyCount(t domain.ActivityType) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()

	seen := make(map[int]bool)
	for _, entry := range e.data.ActivityLog {
		if entry.Type == t && calendar.SameMonth(entry.Date, now) {
			seen[entry.Date.Day()] = true
		}
	}
	return len(seen)
}

// MissedDates lists the days of the current month strictly before today
// with no entry of the type, newest first.
func (e *Engine) MissedDates(t domain.ActivityType) []time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()

	logged := make(map[int]bool)
	for _, entry := range e.data.ActivityLog {
		if entry.Type == t && calendar.SameMonth(entry.Date, now) {
			logged[entry.Date.Day()] = true
		}
	}

	monthStart := calendar.StartOfMonth(now)
	var missed []time.Time
	for day := now.Day() - 1; day >= 1; day-- {
		if !logged[day] {
			missed = append(missed, monthStart.AddDate(0, 0, day-1))
		}
	}
	return missed
}

// MissedWeeklyMissions lists the start dates (Mondays) of fully elapsed
// ISO weeks whose end boundary falls inside the current month and that
// have no completion recorded for key, newest first.
func (e *Engine) MissedWeeklyMissions(key string) []time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()

	todayStart := calendar.StartOfDay(now)
	monthStart := calendar.StartOfMonth(now)
	nextMonth := monthStart.AddDate(0, 1, 0)

	var missed []time.Time
	for ws := calendar.WeekStart(monthStart); ws.Before(nextMonth); ws = ws.AddDate(0, 0, 7) {
		we := ws.AddDate(0, 0, 7)
		if !we.After(monthStart) || we.After(nextMonth) {
			continue // end boundary outside this month
		}
		if we.After(todayStart) {
			continue // week not fully elapsed yet
		}
		if !e.data.HasWeeklyMission(key, ws) {
			missed = append(missed, ws)
		}
	}
	slices.Reverse(missed)
	return missed
}
