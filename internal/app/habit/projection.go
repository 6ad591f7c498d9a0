package habit

import (
	"math"

	"github.com/leetboo/leetboo/internal/domain"
)

// Derived values are recomputed on demand, never cached.

// EstimatedMonthlyCoins is the user's custom rate when set, otherwise the
// sum of the enabled activities' fixed monthly estimates.
func (e *Engine) EstimatedMonthlyCoins() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return estimatedMonthly(e.data)
}

func estimatedMonthly(d *domain.UserData) int {
	if d.CustomMonthlyRate != nil {
		return *d.CustomMonthlyRate
	}
	total := 0
	for _, a := range d.Activities {
		if a.IsEnabled {
			total += a.Type.MonthlyEstimate()
		}
	}
	return total
}

// MonthsToTarget projects months until the target at the estimated rate.
// A rate of zero (nothing enabled) means no ETA and yields 0.
func (e *Engine) MonthsToTarget() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return monthsToTarget(e.data)
}

func monthsToTarget(d *domain.UserData) float64 {
	rate := estimatedMonthly(d)
	if rate <= 0 {
		return 0
	}
	remaining := d.TargetCoins - d.CurrentCoins
	if remaining < 0 {
		remaining = 0
	}
	return float64(remaining) / float64(rate)
}

// DaysToTarget is MonthsToTarget at a fixed 30-day month, rounded up.
func (e *Engine) DaysToTarget() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return int(math.Ceil(monthsToTarget(e.data) * 30))
}

// ProgressPercentage is the coin balance as a percentage of the target,
// clamped to [0, 100].
func (e *Engine) ProgressPercentage() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.data.TargetCoins <= 0 {
		return 0
	}
	pct := float64(e.data.CurrentCoins) / float64(e.data.TargetCoins) * 100
	return math.Max(0, math.Min(100, pct))
}
