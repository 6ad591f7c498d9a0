package habit

import (
	"time"

	"github.com/leetboo/leetboo/internal/domain"
)

// Notification-settings mutations. Every mutation re-normalizes so the
// times list always matches the frequency count.

// SetNotificationsEnabled flips the master reminder switch.
func (e *Engine) SetNotificationsEnabled(enabled bool) {
	e.update(func(time.Time) bool {
		e.data.NotificationSettings.EnableNotifications = enabled
		return true
	})
}

// SetMagicNotificationsEnabled flips the magic status/tip reminders.
func (e *Engine) SetMagicNotificationsEnabled(enabled bool) {
	e.update(func(time.Time) bool {
		e.data.NotificationSettings.MagicNotificationsEnabled = enabled
		return true
	})
}

// SetReminderFrequency changes how many reminders fire per day, resizing
// the times list (truncate, or extend from the last time).
func (e *Engine) SetReminderFrequency(f domain.ReminderFrequency) error {
	if _, err := domain.ParseReminderFrequency(string(f)); err != nil {
		return err
	}
	e.update(func(time.Time) bool {
		e.data.NotificationSettings.ReminderFrequency = f
		e.data.NotificationSettings.Normalize()
		return true
	})
	return nil
}

// SetReminderTime updates one reminder slot. Out-of-range indexes are a
// no-op: the slot set is bounded by the frequency.
func (e *Engine) SetReminderTime(index int, t domain.ReminderTime) {
	e.update(func(time.Time) bool {
		times := e.data.NotificationSettings.DailyReminderTimes
		if index < 0 || index >= len(times) {
			return false
		}
		times[index] = t
		return true
	})
}

// NotificationSettings returns a copy of the current settings.
func (e *Engine) NotificationSettings() domain.NotificationSettings {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.data.NotificationSettings
	s.DailyReminderTimes = append([]domain.ReminderTime(nil), s.DailyReminderTimes...)
	return s
}
