package domain

import (
	"encoding/json"
	"fmt"
)

// ReminderFrequency is how many daily reminders fire per enabled activity.
type ReminderFrequency string

const (
	Once            ReminderFrequency = "once"
	TwiceDaily      ReminderFrequency = "twice_daily"
	ThreeTimesDaily ReminderFrequency = "three_times_daily"
)

// Count is the number of reminder times this frequency carries.
func (f ReminderFrequency) Count() int {
	switch f {
	case TwiceDaily:
		return 2
	case ThreeTimesDaily:
		return 3
	default:
		return 1
	}
}

// ParseReminderFrequency validates a string as a ReminderFrequency.
func ParseReminderFrequency(s string) (ReminderFrequency, error) {
	switch f := ReminderFrequency(s); f {
	case Once, TwiceDaily, ThreeTimesDaily:
		return f, nil
	}
	return "", ErrInvalidFrequency
}

// ReminderTime is a wall-clock time of day.
type ReminderTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// String formats the time as HH:MM.
func (t ReminderTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// NotificationSettings controls reminder scheduling.
// Invariant: len(DailyReminderTimes) == ReminderFrequency.Count() at all
// times; Normalize restores it after any mutation or decode.
type NotificationSettings struct {
	EnableNotifications       bool              `json:"enable_notifications"`
	DailyReminderTimes        []ReminderTime    `json:"daily_reminder_times"`
	ReminderFrequency         ReminderFrequency `json:"reminder_frequency"`
	MagicNotificationsEnabled bool              `json:"magic_notifications_enabled"`
}

// DefaultNotificationSettings returns the first-run settings:
// two reminders per day at 09:00 and 18:00.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EnableNotifications: true,
		ReminderFrequency:   TwiceDaily,
		DailyReminderTimes: []ReminderTime{
			{Hour: 9, Minute: 0},
			{Hour: 18, Minute: 0},
		},
	}
}

// Normalize resizes DailyReminderTimes to match the frequency count:
// extra entries are truncated from the end, missing entries extend the
// last one by 4 hours (capped at hour 23).
func (s *NotificationSettings) Normalize() {
	want := s.ReminderFrequency.Count()
	if want == 0 {
		want = 1
	}
	if len(s.DailyReminderTimes) == 0 {
		s.DailyReminderTimes = []ReminderTime{{Hour: 9, Minute: 0}}
	}
	if len(s.DailyReminderTimes) > want {
		s.DailyReminderTimes = s.DailyReminderTimes[:want]
	}
	for len(s.DailyReminderTimes) < want {
		last := s.DailyReminderTimes[len(s.DailyReminderTimes)-1]
		s.DailyReminderTimes = append(s.DailyReminderTimes, ReminderTime{
			Hour:   min(last.Hour+4, 23),
			Minute: last.Minute,
		})
	}
}

// rawNotificationSettings is the tolerant decode shape. It accepts both the
// current schema (daily_reminder_times list) and the legacy one (a single
// daily_reminder_time).
type rawNotificationSettings struct {
	EnableNotifications       *bool             `json:"enable_notifications"`
	DailyReminderTimes        []ReminderTime    `json:"daily_reminder_times"`
	DailyReminderTime         *ReminderTime     `json:"daily_reminder_time"`
	ReminderFrequency         ReminderFrequency `json:"reminder_frequency"`
	MagicNotificationsEnabled bool              `json:"magic_notifications_enabled"`
}

// migrateNotificationSettings turns raw decoded fields into settings under
// the current schema. Pure — independently testable from the store.
//
// Precedence: list field if present; else expand the legacy singular time
// across the frequency (+6h capped at 21 for twice daily, +4h/+8h capped
// at 17/21 for three times daily); else defaults. The result is always
// normalized to the frequency count.
func migrateNotificationSettings(raw rawNotificationSettings) NotificationSettings {
	s := NotificationSettings{
		EnableNotifications:       true,
		ReminderFrequency:         raw.ReminderFrequency,
		MagicNotificationsEnabled: raw.MagicNotificationsEnabled,
	}
	if raw.EnableNotifications != nil {
		s.EnableNotifications = *raw.EnableNotifications
	}
	if _, err := ParseReminderFrequency(string(s.ReminderFrequency)); err != nil {
		s.ReminderFrequency = TwiceDaily
	}

	switch {
	case len(raw.DailyReminderTimes) > 0:
		s.DailyReminderTimes = raw.DailyReminderTimes
	case raw.DailyReminderTime != nil:
		first := *raw.DailyReminderTime
		s.DailyReminderTimes = []ReminderTime{first}
		switch s.ReminderFrequency {
		case TwiceDaily:
			s.DailyReminderTimes = append(s.DailyReminderTimes,
				ReminderTime{Hour: min(first.Hour+6, 21), Minute: first.Minute})
		case ThreeTimesDaily:
			s.DailyReminderTimes = append(s.DailyReminderTimes,
				ReminderTime{Hour: min(first.Hour+4, 17), Minute: first.Minute},
				ReminderTime{Hour: min(first.Hour+8, 21), Minute: first.Minute})
		}
	default:
		s.DailyReminderTimes = DefaultNotificationSettings().DailyReminderTimes
	}

	s.Normalize()
	return s
}

// UnmarshalJSON decodes settings tolerantly, migrating the legacy
// single-reminder schema when present.
func (s *NotificationSettings) UnmarshalJSON(b []byte) error {
	var raw rawNotificationSettings
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*s = migrateNotificationSettings(raw)
	return nil
}
