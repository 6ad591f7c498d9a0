// Package habit implements the LeetBoo activity/state engine: activity
// reset rules, the deduplicated activity log and streak math, the reward
// and mission ledger, target projections, and the reminder banner policy.
//
// All reads and writes go through one Engine guarded by a single mutex —
// the engine is the sole writer of the persisted document and saves after
// every mutation. Saves are best-effort: a failed save is logged and the
// in-memory state stays authoritative for the session.
package habit

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/leetboo/leetboo/internal/domain"
	"github.com/leetboo/leetboo/internal/infra/metrics"
)

// Clock supplies the current time. Injected so temporal logic is
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// Store persists the user document as a single named blob.
type Store interface {
	Load(name string) ([]byte, error)
	Save(name string, body []byte) error
}

// Engine owns the in-memory user document and serializes every mutation.
type Engine struct {
	mu    sync.Mutex
	store Store
	clock Clock
	data  *domain.UserData

	// Banner visibility is evaluated fresh on every refresh; it is
	// session state, never persisted.
	visible map[domain.ActivityType]bool

	observers []func()
	suppress  func(domain.ActivityType)
}

// New loads the persisted document (or creates the first-run defaults)
// and returns the engine. A malformed document falls back to defaults —
// no partial recovery beyond the settings migration in the codec.
func New(store Store, clock Clock) (*Engine, error) {
	e := &Engine{
		store:   store,
		clock:   clock,
		visible: make(map[domain.ActivityType]bool),
	}

	raw, err := store.Load(domain.DocumentName)
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		e.data = domain.NewUserData()
		e.persistLocked()
	case err != nil:
		return nil, fmt.Errorf("load user data: %w", err)
	default:
		data, derr := domain.DecodeUserData(raw)
		if derr != nil {
			log.Printf("[engine] corrupt user document, starting fresh: %v", derr)
			data = domain.NewUserData()
		}
		e.data = data
	}

	metrics.CurrentCoins.Set(float64(e.data.CurrentCoins))
	return e, nil
}

// Subscribe registers a callback invoked after every committed mutation.
// Callbacks run outside the engine lock and may call back into the engine.
func (e *Engine) Subscribe(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, fn)
}

// SetSuppressor installs the hook that silences remaining reminders for a
// type after a confirmation. Called outside the engine lock.
func (e *Engine) SetSuppressor(fn func(domain.ActivityType)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.suppress = fn
}

// Snapshot returns a copy of the current document for read-only use.
func (e *Engine) Snapshot() domain.UserData {
	e.mu.Lock()
	defer e.mu.Unlock()

	d := *e.data
	d.Activities = slices.Clone(e.data.Activities)
	d.ActivityLog = slices.Clone(e.data.ActivityLog)
	d.CompletedOneTimeMissions = slices.Clone(e.data.CompletedOneTimeMissions)
	d.CompletedWeeklyMissions = slices.Clone(e.data.CompletedWeeklyMissions)
	d.NotificationSettings.DailyReminderTimes = slices.Clone(e.data.NotificationSettings.DailyReminderTimes)
	d.DismissedBanners = make(map[domain.ActivityType]time.Time, len(e.data.DismissedBanners))
	for k, v := range e.data.DismissedBanners {
		d.DismissedBanners[k] = v
	}
	return d
}

// RefreshDay runs the app-foreground pair: reset completions per calendar
// rules, sweep stale dismissals, then re-evaluate banner visibility.
func (e *Engine) RefreshDay() {
	e.CheckAndResetDaily()
	e.ClearOldDismissals()
	e.CheckAndShowBannersOnAppOpen()
}

// update runs fn under the lock, persists and notifies observers when fn
// reports a change. fn returns false for silent no-ops (nothing saved,
// nobody notified).
func (e *Engine) update(fn func(now time.Time) bool) {
	e.mu.Lock()
	changed := fn(e.clock.Now())
	if changed {
		e.persistLocked()
	}
	obs := slices.Clone(e.observers)
	e.mu.Unlock()

	if changed {
		for _, f := range obs {
			f()
		}
	}
}

// persistLocked writes the document through the store. Best-effort: the
// in-memory state already reflects the mutation, so failures are swallowed
// after logging and the next successful save catches up.
func (e *Engine) persistLocked() {
	raw, err := domain.EncodeUserData(e.data)
	if err != nil {
		log.Printf("[engine] encode user data: %v", err)
		metrics.SaveFailures.Inc()
		return
	}
	if err := e.store.Save(domain.DocumentName, raw); err != nil {
		log.Printf("[engine] save user data: %v", err)
		metrics.SaveFailures.Inc()
	}
	metrics.CurrentCoins.Set(float64(e.data.CurrentCoins))
}
