package habit

import (
	"slices"
	"time"

	"github.com/leetboo/leetboo/internal/calendar"
	"github.com/leetboo/leetboo/internal/domain"
	"github.com/leetboo/leetboo/internal/infra/metrics"
)

// Banner policy. Each activity's banner is Hidden, Visible, or
// Dismissed-today, evaluated independently and re-derived on every
// refresh. Visibility lives only in memory; dismissals persist until the
// lazy sweep notices the day has rolled over.

// BannerVisible reports whether the reminder banner for the type should
// currently be shown.
func (e *Engine) BannerVisible(t domain.ActivityType) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible[t]
}

// TriggerCheckInBanner shows the banner if the activity is eligible:
// enabled, not completed today, not dismissed today, and (for weekly
// luck) today is Monday.
func (e *Engine) TriggerCheckInBanner(t domain.ActivityType) error {
	if !t.Valid() {
		return domain.ErrUnknownActivityType
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()
	if e.bannerEligibleLocked(t, now) && !e.visible[t] {
		e.visible[t] = true
		metrics.BannersShown.WithLabelValues(string(t)).Inc()
	}
	return nil
}

// CheckAndShowBannersOnAppOpen evaluates every activity's banner.
func (e *Engine) CheckAndShowBannersOnAppOpen() {
	for _, t := range domain.AllActivityTypes() {
		_ = e.TriggerCheckInBanner(t)
	}
}

func (e *Engine) bannerEligibleLocked(t domain.ActivityType, now time.Time) bool {
	a := e.data.Activity(t)
	if a == nil || !a.IsEnabled || a.CompletedToday {
		return false
	}
	if dismissed, ok := e.data.DismissedBanners[t]; ok && calendar.SameDay(dismissed, now) {
		return false
	}
	if t.IsWeekly() && now.Weekday() != calendar.FirstDayOfWeek {
		return false
	}
	return true
}

// DismissBanner hides the banner for the rest of the day without
// affecting completion or coins.
func (e *Engine) DismissBanner(t domain.ActivityType) error {
	if !t.Valid() {
		return domain.ErrUnknownActivityType
	}
	e.update(func(now time.Time) bool {
		e.data.DismissedBanners[t] = now
		e.visible[t] = false
		metrics.BannersDismissed.WithLabelValues(string(t)).Inc()
		return true
	})
	return nil
}

// ClearOldDismissals lazily sweeps dismissal records that are no longer
// from today, letting still-eligible banners reappear on the next
// evaluation.
func (e *Engine) ClearOldDismissals() {
	e.update(func(now time.Time) bool {
		changed := false
		for t, when := range e.data.DismissedBanners {
			if !calendar.SameDay(when, now) {
				delete(e.data.DismissedBanners, t)
				changed = true
			}
		}
		return changed
	})
}

// ConfirmCheckIn completes the activity from its banner: credits the
// type's reward, marks it done, logs today's occurrence without a second
// credit, clears any dismissal, and suppresses the type's remaining
// reminders for the day.
func (e *Engine) ConfirmCheckIn(t domain.ActivityType) error {
	if !t.Valid() {
		return domain.ErrUnknownActivityType
	}

	e.mu.Lock()
	now := e.clock.Now()
	if a := e.data.Activity(t); a != nil && a.CompletedToday {
		// Already confirmed today; a second confirm must not credit again.
		e.mu.Unlock()
		return nil
	}
	e.addCoinsLocked(t.Reward())
	e.markDoneLocked(t, now)
	e.appendLogLocked(t, now, false) // coins already added above
	delete(e.data.DismissedBanners, t)
	e.persistLocked()
	metrics.BannersConfirmed.WithLabelValues(string(t)).Inc()
	obs := slices.Clone(e.observers)
	suppress := e.suppress
	e.mu.Unlock()

	if suppress != nil {
		suppress(t)
	}
	for _, f := range obs {
		f()
	}
	return nil
}
