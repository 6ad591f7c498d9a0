package habit

import (
	"time"

	"github.com/leetboo/leetboo/internal/infra/metrics"
)

// ─── Coins ──────────────────────────────────────────────────────────────────
// The engine performs no numeric validation here: invalid input is
// rejected at the UI/API boundary before it reaches the ledger.

// AddCoins credits (or with a negative amount, debits) the balance.
func (e *Engine) AddCoins(amount int) {
	e.update(func(time.Time) bool {
		e.addCoinsLocked(amount)
		return true
	})
}

func (e *Engine) addCoinsLocked(amount int) {
	e.data.CurrentCoins += amount
	if amount > 0 {
		metrics.CoinsAwarded.Add(float64(amount))
	}
}

// SetCurrentCoins overwrites the balance.
func (e *Engine) SetCurrentCoins(coins int) {
	e.update(func(time.Time) bool {
		e.data.CurrentCoins = coins
		return true
	})
}

// SetTargetCoins overwrites the coin target.
func (e *Engine) SetTargetCoins(target int) {
	e.update(func(time.Time) bool {
		e.data.TargetCoins = target
		return true
	})
}

// SetCustomMonthlyRate overrides the automatic monthly estimate; nil
// restores the automatic one.
func (e *Engine) SetCustomMonthlyRate(rate *int) {
	e.update(func(time.Time) bool {
		if rate == nil {
			e.data.CustomMonthlyRate = nil
		} else {
			r := *rate
			e.data.CustomMonthlyRate = &r
		}
		return true
	})
}

// ─── Missions ───────────────────────────────────────────────────────────────

// CompleteOneTimeMission records the mission key permanently.
func (e *Engine) CompleteOneTimeMission(key string) {
	e.update(func(time.Time) bool {
		if e.data.HasOneTimeMission(key) {
			return false
		}
		e.data.AddOneTimeMission(key)
		return true
	})
}

// IsOneTimeMissionCompleted reports whether the mission was ever completed.
func (e *Engine) IsOneTimeMissionCompleted(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.data.HasOneTimeMission(key)
}

// CompleteWeeklyMission records the mission for the ISO week of date.
// The same key completes independently in different weeks.
func (e *Engine) CompleteWeeklyMission(key string, date time.Time) {
	e.update(func(time.Time) bool {
		if e.data.HasWeeklyMission(key, date) {
			return false
		}
		e.data.AddWeeklyMission(key, date)
		return true
	})
}

// IsWeeklyMissionCompleted reports completion for the ISO week of date.
func (e *Engine) IsWeeklyMissionCompleted(key string, date time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.data.HasWeeklyMission(key, date)
}
