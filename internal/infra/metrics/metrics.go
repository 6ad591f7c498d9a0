// Package metrics provides Prometheus metrics for LeetBoo: coins, log
// activity, banner decisions, reminder scheduling, and persistence health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Coins ──────────────────────────────────────────────────────────────────

// CoinsAwarded counts coins credited through the ledger.
var CoinsAwarded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "leetboo",
	Name:      "coins_awarded_total",
	Help:      "Total coins credited to the balance.",
})

// CurrentCoins mirrors the persisted coin balance.
var CurrentCoins = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "leetboo",
	Name:      "current_coins",
	Help:      "Current coin balance.",
})

// ─── Activity log ───────────────────────────────────────────────────────────

// LogEntriesAppended counts accepted activity log entries by type.
var LogEntriesAppended = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "leetboo",
	Name:      "log_entries_appended_total",
	Help:      "Total activity log entries appended.",
}, []string{"type"})

// DuplicateLogsIgnored counts same-day log attempts dropped by dedupe.
var DuplicateLogsIgnored = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "leetboo",
	Name:      "duplicate_logs_ignored_total",
	Help:      "Total duplicate same-day log attempts ignored.",
}, []string{"type"})

// ─── Banners ────────────────────────────────────────────────────────────────

// BannersShown counts banner transitions to visible.
var BannersShown = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "leetboo",
	Name:      "banners_shown_total",
	Help:      "Total reminder banners shown.",
}, []string{"type"})

// BannersDismissed counts same-day banner dismissals.
var BannersDismissed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "leetboo",
	Name:      "banners_dismissed_total",
	Help:      "Total reminder banners dismissed.",
}, []string{"type"})

// BannersConfirmed counts banner confirmations (completions).
var BannersConfirmed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "leetboo",
	Name:      "banners_confirmed_total",
	Help:      "Total reminder banners confirmed.",
}, []string{"type"})

// ─── Reminders ──────────────────────────────────────────────────────────────

// RemindersScheduled counts notification specs handed to the scheduler.
var RemindersScheduled = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "leetboo",
	Name:      "reminders_scheduled_total",
	Help:      "Total notification specs scheduled.",
})

// ─── Persistence ────────────────────────────────────────────────────────────

// SaveFailures counts swallowed document save failures.
var SaveFailures = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "leetboo",
	Name:      "save_failures_total",
	Help:      "Total failed document saves (state kept in memory).",
})
