package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/leetboo/leetboo/internal/app/entitlement"
	"github.com/leetboo/leetboo/internal/app/habit"
	"github.com/leetboo/leetboo/internal/domain"
	"github.com/leetboo/leetboo/internal/infra/metrics"
)

// Identifier layout. Daily reminders carry an index suffix so each slot
// cancels independently; the weekly-luck reminder is a single fixed id.
const (
	reminderPrefix = "leetboo-reminder-"
	magicContestID = "leetboo-magic-contest"
	magicStatusID  = "leetboo-magic-status-"
)

// ReminderIdentifierPrefix is the cancellation prefix for a type's
// reminder specs.
func ReminderIdentifierPrefix(t domain.ActivityType) string {
	return reminderPrefix + string(t)
}

// Planner rebuilds the scheduled notification set from engine state.
type Planner struct {
	sched  Scheduler
	engine *habit.Engine
	ent    entitlement.Service
}

// NewPlanner wires the planner to its scheduler and collaborators.
func NewPlanner(sched Scheduler, engine *habit.Engine, ent entitlement.Service) *Planner {
	return &Planner{sched: sched, engine: engine, ent: ent}
}

// Rebuild replaces the entire scheduled set: everything previously
// scheduled by this planner is cancelled first (full-replace, no
// diffing), then the current spec list is handed over.
func (p *Planner) Rebuild() error {
	entitled := p.ent != nil && p.ent.IsEntitled()
	specs := BuildSpecs(p.engine.Summarize(), p.engine.NotificationSettings(), entitled)

	p.sched.CancelAll()
	if err := p.sched.Schedule(specs); err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	metrics.RemindersScheduled.Add(float64(len(specs)))
	return nil
}

// SuppressForToday cancels the currently scheduled specs for the type.
// The next Rebuild re-schedules them; suppression lasts only until then.
func (p *Planner) SuppressForToday(t domain.ActivityType) {
	prefix := ReminderIdentifierPrefix(t)
	var ids []string
	for _, s := range p.sched.ListPending() {
		if strings.HasPrefix(s.Identifier, prefix) {
			ids = append(ids, s.Identifier)
		}
	}
	if len(ids) > 0 {
		p.sched.Cancel(ids)
	}
}

// BuildSpecs derives the declarative notification set. Pure: message
// bodies reflect the summary at schedule time and are not updated live.
func BuildSpecs(sum habit.Summary, settings domain.NotificationSettings, entitled bool) []Spec {
	if !settings.EnableNotifications {
		return nil
	}

	var specs []Spec
	anyEnabled := false

	for _, a := range sum.Activities {
		if !a.IsEnabled {
			continue
		}
		anyEnabled = true
		prefix := ReminderIdentifierPrefix(a.Type)

		if a.Type.IsWeekly() {
			// One weekly reminder on Monday at the first configured time.
			first := settings.DailyReminderTimes[0]
			specs = append(specs, Spec{
				Identifier: prefix,
				Title:      a.Title,
				Body:       fmt.Sprintf("It's Monday — claim your %s bonus (%d coins).", a.Title, a.Reward),
				Hour:       first.Hour,
				Minute:     first.Minute,
				Weekly:     true,
				Weekday:    time.Monday,
			})
			continue
		}

		for i, rt := range settings.DailyReminderTimes {
			specs = append(specs, Spec{
				Identifier: fmt.Sprintf("%s-%d", prefix, i),
				Title:      a.Title,
				Body:       fmt.Sprintf("Don't forget today's %s (+%d coins).", a.Title, a.Reward),
				Hour:       rt.Hour,
				Minute:     rt.Minute,
			})
		}
	}

	if settings.MagicNotificationsEnabled && entitled && anyEnabled {
		specs = append(specs, magicSpecs(sum)...)
	}
	return specs
}

// magicSpecs are the subscription-gated status/tip reminders: a Saturday
// contest nudge plus three fixed weekday slots cycling status messages.
func magicSpecs(sum habit.Summary) []Spec {
	messages := []string{
		fmt.Sprintf("You're at %d of %d coins — %.0f%% of the way there.",
			sum.CurrentCoins, sum.TargetCoins, sum.ProgressPct),
		fmt.Sprintf("At your current pace you'll hit %d coins in about %d days.",
			sum.TargetCoins, sum.DaysToTarget),
		fmt.Sprintf("Keep it up: %d coins per month puts the target within reach.",
			sum.EstimatedMonthlyCoins),
	}

	specs := []Spec{{
		Identifier: magicContestID,
		Title:      "Weekly Contest",
		Body:       "The weekly contest starts soon — warm up with a problem.",
		Hour:       14,
		Weekly:     true,
		Weekday:    time.Saturday,
	}}

	slots := []struct {
		weekday time.Weekday
		hour    int
	}{
		{time.Monday, 12},
		{time.Wednesday, 16},
		{time.Friday, 18},
	}
	for i, slot := range slots {
		specs = append(specs, Spec{
			Identifier: fmt.Sprintf("%s%d", magicStatusID, i),
			Title:      "LeetBoo",
			Body:       messages[i%len(messages)],
			Hour:       slot.hour,
			Weekly:     true,
			Weekday:    slot.weekday,
		})
	}
	return specs
}
