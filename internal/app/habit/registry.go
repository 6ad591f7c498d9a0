package habit

import (
	"time"

	"github.com/leetboo/leetboo/internal/calendar"
	"github.com/leetboo/leetboo/internal/domain"
)

// ToggleActivity flips the enablement of the activity. Disabling an
// activity also hides its banner for the session.
func (e *Engine) ToggleActivity(t domain.ActivityType) error {
	if !t.Valid() {
		return domain.ErrUnknownActivityType
	}
	e.update(func(now time.Time) bool {
		a := e.data.Activity(t)
		a.IsEnabled = !a.IsEnabled
		if !a.IsEnabled {
			e.visible[t] = false
		}
		return true
	})
	return nil
}

// MarkActivityDone records a completion for today. It does not award
// coins — that is the ledger's job, and callers invoke both.
func (e *Engine) MarkActivityDone(t domain.ActivityType) error {
	if !t.Valid() {
		return domain.ErrUnknownActivityType
	}
	e.update(func(now time.Time) bool {
		e.markDoneLocked(t, now)
		return true
	})
	return nil
}

func (e *Engine) markDoneLocked(t domain.ActivityType, now time.Time) {
	a := e.data.Activity(t)
	a.CompletedToday = true
	ts := now
	a.LastCompletedDate = &ts
	e.visible[t] = false
}

// CheckAndResetDaily applies the calendar reset rules. Daily activities
// reset whenever the last completion is not today. A weekly-luck
// completion stays done for its whole ISO week and resets when Monday
// rolls the week over.
func (e *Engine) CheckAndResetDaily() {
	e.update(func(now time.Time) bool {
		changed := false
		for i := range e.data.Activities {
			a := &e.data.Activities[i]
			if a.LastCompletedDate == nil {
				continue
			}
			last := *a.LastCompletedDate

			var reset bool
			if a.Type.IsWeekly() {
				reset = (now.Weekday() == calendar.FirstDayOfWeek && !calendar.SameDay(last, now)) ||
					!calendar.SameISOWeek(last, now)
			} else {
				reset = !calendar.SameDay(last, now)
			}

			if reset && a.CompletedToday {
				a.CompletedToday = false
				changed = true
			}
		}
		return changed
	})
}
