package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// DocumentName is the key the user document is persisted under.
const DocumentName = "userdata"

// DefaultTargetCoins is the first-run coin target.
const DefaultTargetCoins = 1000

// UserData is the root aggregate: one instance, persisted as one JSON
// document, mutated in place by the engine and saved after every mutation.
type UserData struct {
	CurrentCoins      int  `json:"current_coins"`
	TargetCoins       int  `json:"target_coins"`
	CustomMonthlyRate *int `json:"custom_monthly_rate,omitempty"`

	Activities  []Activity         `json:"activities"`
	ActivityLog []ActivityLogEntry `json:"activity_log"`

	CompletedOneTimeMissions []string                   `json:"completed_one_time_missions"`
	CompletedWeeklyMissions  []string                   `json:"completed_weekly_missions"`
	DismissedBanners         map[ActivityType]time.Time `json:"dismissed_banners"`

	NotificationSettings NotificationSettings `json:"notification_settings"`

	// Legacy fields preserved for serialization compatibility. Not
	// load-bearing for engine logic.
	LastCheckInPromptDate    *time.Time `json:"last_check_in_prompt_date,omitempty"`
	HasConfirmedCheckInToday bool       `json:"has_confirmed_check_in_today"`
}

// NewUserData returns the first-run document: three enabled activities,
// empty log, default target and settings.
func NewUserData() *UserData {
	d := &UserData{
		TargetCoins:          DefaultTargetCoins,
		DismissedBanners:     make(map[ActivityType]time.Time),
		NotificationSettings: DefaultNotificationSettings(),
	}
	for _, t := range AllActivityTypes() {
		d.Activities = append(d.Activities, Activity{
			ID:        uuid.New().String(),
			Type:      t,
			IsEnabled: true,
		})
	}
	return d
}

// Activity returns the activity of the given type, or nil for an unknown
// type. Exactly one activity exists per type.
func (d *UserData) Activity(t ActivityType) *Activity {
	for i := range d.Activities {
		if d.Activities[i].Type == t {
			return &d.Activities[i]
		}
	}
	return nil
}

// EnabledActivities returns the activities the user has switched on.
func (d *UserData) EnabledActivities() []Activity {
	var out []Activity
	for _, a := range d.Activities {
		if a.IsEnabled {
			out = append(out, a)
		}
	}
	return out
}

// ─── Mission sets ───────────────────────────────────────────────────────────

// WeeklyMissionKey scopes a mission key to the ISO week of date:
// "<key>-<isoYear>-<isoWeek>".
func WeeklyMissionKey(key string, date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%s-%d-%d", key, year, week)
}

// HasOneTimeMission reports whether the one-time mission was completed.
func (d *UserData) HasOneTimeMission(key string) bool {
	return slices.Contains(d.CompletedOneTimeMissions, key)
}

// AddOneTimeMission records a one-time mission completion. Permanent.
func (d *UserData) AddOneTimeMission(key string) {
	if !d.HasOneTimeMission(key) {
		d.CompletedOneTimeMissions = append(d.CompletedOneTimeMissions, key)
	}
}

// HasWeeklyMission reports whether the mission was completed in the ISO
// week of date.
func (d *UserData) HasWeeklyMission(key string, date time.Time) bool {
	return slices.Contains(d.CompletedWeeklyMissions, WeeklyMissionKey(key, date))
}

// AddWeeklyMission records a weekly mission completion for the ISO week
// of date.
func (d *UserData) AddWeeklyMission(key string, date time.Time) {
	wk := WeeklyMissionKey(key, date)
	if !slices.Contains(d.CompletedWeeklyMissions, wk) {
		d.CompletedWeeklyMissions = append(d.CompletedWeeklyMissions, wk)
	}
}

// ─── Codec ──────────────────────────────────────────────────────────────────

// EncodeUserData serializes the document for the blob store.
func EncodeUserData(d *UserData) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// DecodeUserData deserializes a persisted document. Settings migration and
// invariant repair happen here: the reminder-times list is resized to the
// frequency, the dismissal map is allocated, and all three activities are
// guaranteed to exist.
func DecodeUserData(raw []byte) (*UserData, error) {
	var d UserData
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode user data: %w", err)
	}

	d.NotificationSettings.Normalize()
	if d.DismissedBanners == nil {
		d.DismissedBanners = make(map[ActivityType]time.Time)
	}
	if d.TargetCoins <= 0 {
		d.TargetCoins = DefaultTargetCoins
	}
	for _, t := range AllActivityTypes() {
		if d.Activity(t) == nil {
			d.Activities = append(d.Activities, Activity{
				ID:        uuid.New().String(),
				Type:      t,
				IsEnabled: true,
			})
		}
	}
	return &d, nil
}
