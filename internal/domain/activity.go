// Package domain holds the LeetBoo data model: activity definitions, the
// persisted user document, notification settings, and sentinel errors.
// Domain types are pure — no infrastructure dependency.
package domain

import "time"

// ActivityType is the closed set of recurring activities.
type ActivityType string

const (
	DailyCheckIn ActivityType = "daily_check_in"
	DailyProblem ActivityType = "daily_problem"
	WeeklyLuck   ActivityType = "weekly_luck"
)

// ActivityInfo is the per-type definition: reward, estimate, display title.
// Single source of truth — reward amounts are never duplicated elsewhere.
type ActivityInfo struct {
	Title           string `json:"title"`
	Reward          int    `json:"reward"`
	MonthlyEstimate int    `json:"monthly_estimate"`
	Weekly          bool   `json:"weekly"`
}

var activityInfo = map[ActivityType]ActivityInfo{
	DailyCheckIn: {Title: "Daily Check-In", Reward: 1, MonthlyEstimate: 30},
	DailyProblem: {Title: "Daily Problem", Reward: 10, MonthlyEstimate: 300},
	WeeklyLuck:   {Title: "Weekly Luck", Reward: 10, MonthlyEstimate: 40, Weekly: true},
}

// AllActivityTypes returns every activity type in display order.
func AllActivityTypes() []ActivityType {
	return []ActivityType{DailyCheckIn, DailyProblem, WeeklyLuck}
}

// ParseActivityType validates a string as an ActivityType.
func ParseActivityType(s string) (ActivityType, error) {
	t := ActivityType(s)
	if _, ok := activityInfo[t]; !ok {
		return "", ErrUnknownActivityType
	}
	return t, nil
}

// Valid reports whether t is a known activity type.
func (t ActivityType) Valid() bool {
	_, ok := activityInfo[t]
	return ok
}

// Info returns the definition for this type. The zero ActivityInfo is
// returned for unknown types; callers that parsed input via
// ParseActivityType never see it.
func (t ActivityType) Info() ActivityInfo {
	return activityInfo[t]
}

// Reward is the fixed coin reward for one completion.
func (t ActivityType) Reward() int { return activityInfo[t].Reward }

// MonthlyEstimate is the fixed monthly coin estimate used when no custom
// rate is set.
func (t ActivityType) MonthlyEstimate() int { return activityInfo[t].MonthlyEstimate }

// IsWeekly reports whether the activity resets weekly instead of daily.
func (t ActivityType) IsWeekly() bool { return activityInfo[t].Weekly }

// Activity is one user-facing recurring activity. Exactly one instance
// exists per ActivityType for the lifetime of the document.
type Activity struct {
	ID                string       `json:"id"`
	Type              ActivityType `json:"type"`
	IsEnabled         bool         `json:"is_enabled"`
	CompletedToday    bool         `json:"completed_today"`
	LastCompletedDate *time.Time   `json:"last_completed_date,omitempty"`
}

// ActivityLogEntry is an immutable completion event. CoinsEarned is
// informational — the ledger mutates the balance at logging time.
type ActivityLogEntry struct {
	ID          string       `json:"id"`
	Date        time.Time    `json:"date"`
	Type        ActivityType `json:"activity_type"`
	CoinsEarned int          `json:"coins_earned"`
}
