package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserDataHasOneActivityPerType(t *testing.T) {
	d := NewUserData()
	require.Len(t, d.Activities, len(AllActivityTypes()))
	for _, typ := range AllActivityTypes() {
		a := d.Activity(typ)
		require.NotNil(t, a, "missing activity %s", typ)
		assert.True(t, a.IsEnabled)
		assert.NotEmpty(t, a.ID)
	}
	assert.Equal(t, DefaultTargetCoins, d.TargetCoins)
}

func TestCodecRoundTrip(t *testing.T) {
	d := NewUserData()
	d.CurrentCoins = 77
	d.AddOneTimeMission("first_checkin")
	when := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	d.AddWeeklyMission("review", when)
	d.DismissedBanners[DailyProblem] = when

	raw, err := EncodeUserData(d)
	require.NoError(t, err)

	got, err := DecodeUserData(raw)
	require.NoError(t, err)
	assert.Equal(t, 77, got.CurrentCoins)
	assert.True(t, got.HasOneTimeMission("first_checkin"))
	assert.True(t, got.HasWeeklyMission("review", when))
	assert.True(t, got.DismissedBanners[DailyProblem].Equal(when))
}

func TestDecodeRepairsSparseDocument(t *testing.T) {
	// A document from an older build: no banners map, no activities, a
	// zeroed target. Decode must repair all of it.
	got, err := DecodeUserData([]byte(`{"current_coins": 12}`))
	require.NoError(t, err)

	assert.Equal(t, 12, got.CurrentCoins)
	assert.Equal(t, DefaultTargetCoins, got.TargetCoins)
	assert.NotNil(t, got.DismissedBanners)
	assert.Len(t, got.Activities, len(AllActivityTypes()))
	assert.Len(t, got.NotificationSettings.DailyReminderTimes,
		got.NotificationSettings.ReminderFrequency.Count())
}

func TestDecodeKeepsKnownActivities(t *testing.T) {
	raw := []byte(`{
		"target_coins": 800,
		"activities": [
			{"id": "a1", "type": "daily_problem", "is_enabled": false}
		]
	}`)
	got, err := DecodeUserData(raw)
	require.NoError(t, err)

	require.Len(t, got.Activities, 3)
	a := got.Activity(DailyProblem)
	require.NotNil(t, a)
	assert.Equal(t, "a1", a.ID)
	assert.False(t, a.IsEnabled, "existing activity state must survive the repair")
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := DecodeUserData([]byte("{broken"))
	assert.Error(t, err)
}

func TestWeeklyMissionKeySpansYearBoundary(t *testing.T) {
	// Dec 29th 2025 and Jan 2nd 2026 share ISO week 1 of 2026.
	dec := time.Date(2025, 12, 29, 12, 0, 0, 0, time.UTC)
	jan := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, WeeklyMissionKey("review", dec), WeeklyMissionKey("review", jan))
	assert.Equal(t, "review-2026-1", WeeklyMissionKey("review", jan))
}

func TestParseActivityType(t *testing.T) {
	for _, typ := range AllActivityTypes() {
		got, err := ParseActivityType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	_, err := ParseActivityType("napping")
	assert.ErrorIs(t, err, ErrUnknownActivityType)
}

func TestActivityInfoTable(t *testing.T) {
	assert.Equal(t, 1, DailyCheckIn.Reward())
	assert.Equal(t, 10, DailyProblem.Reward())
	assert.Equal(t, 10, WeeklyLuck.Reward())
	assert.Equal(t, 30, DailyCheckIn.MonthlyEstimate())
	assert.Equal(t, 300, DailyProblem.MonthlyEstimate())
	assert.Equal(t, 40, WeeklyLuck.MonthlyEstimate())
	assert.True(t, WeeklyLuck.IsWeekly())
	assert.False(t, DailyCheckIn.IsWeekly())
	assert.False(t, ActivityType("napping").Valid())
}
