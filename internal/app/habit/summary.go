package habit

import (
	"math"

	"github.com/leetboo/leetboo/internal/domain"
)

// ActivityStatus is one activity's dashboard row.
type ActivityStatus struct {
	domain.Activity
	Title         string `json:"title"`
	Reward        int    `json:"reward"`
	Streak        int    `json:"streak"`
	MonthlyCount  int    `json:"monthly_count"`
	BannerVisible bool   `json:"banner_visible"`
}

// Summary is the dashboard snapshot consumed by the API and CLI.
type Summary struct {
	CurrentCoins          int              `json:"current_coins"`
	TargetCoins           int              `json:"target_coins"`
	ProgressPct           float64          `json:"progress_pct"`
	EstimatedMonthlyCoins int              `json:"estimated_monthly_coins"`
	MonthsToTarget        float64          `json:"months_to_target"`
	DaysToTarget          int              `json:"days_to_target"`
	Activities            []ActivityStatus `json:"activities"`
}

// Summarize assembles the full dashboard snapshot.
func (e *Engine) Summarize() Summary {
	// Streak/count getters take the lock themselves; gather them first.
	streaks := make(map[domain.ActivityType]int)
	counts := make(map[domain.ActivityType]int)
	banners := make(map[domain.ActivityType]bool)
	for _, t := range domain.AllActivityTypes() {
		streaks[t] = e.CurrentStreak(t)
		counts[t] = e.MonthlyCount(t)
		banners[t] = e.BannerVisible(t)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := Summary{
		CurrentCoins:          e.data.CurrentCoins,
		TargetCoins:           e.data.TargetCoins,
		EstimatedMonthlyCoins: estimatedMonthly(e.data),
		MonthsToTarget:        monthsToTarget(e.data),
	}
	s.DaysToTarget = int(math.Ceil(s.MonthsToTarget * 30))
	if e.data.TargetCoins > 0 {
		pct := float64(e.data.CurrentCoins) / float64(e.data.TargetCoins) * 100
		s.ProgressPct = math.Max(0, math.Min(100, pct))
	}

	for _, a := range e.data.Activities {
		info := a.Type.Info()
		s.Activities = append(s.Activities, ActivityStatus{
			Activity:      a,
			Title:         info.Title,
			Reward:        info.Reward,
			Streak:        streaks[a.Type],
			MonthlyCount:  counts[a.Type],
			BannerVisible: banners[a.Type],
		})
	}
	return s
}
