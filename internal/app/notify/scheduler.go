// Package notify plans local reminder notifications. The planner turns
// activity enablement, reminder preferences, and the subscription tier
// into a declarative spec list; delivery belongs to an external scheduler
// behind the Scheduler interface.
package notify

import (
	"slices"
	"sync"
	"time"
)

// Spec is one recurring local notification.
type Spec struct {
	Identifier string       `json:"identifier"`
	Title      string       `json:"title"`
	Body       string       `json:"body"`
	Hour       int          `json:"hour"`
	Minute     int          `json:"minute"`
	Weekly     bool         `json:"weekly"`
	Weekday    time.Weekday `json:"weekday,omitempty"` // meaningful when Weekly
}

// Scheduler is the external notification service. Schedule failures are
// non-fatal to the engine; cancellation is by identifier.
type Scheduler interface {
	CancelAll()
	Schedule(specs []Spec) error
	Cancel(identifiers []string)
	ListPending() []Spec
	RequestAuthorization() (bool, error)
}

// MemoryScheduler records specs in memory. Used by the daemon (no OS
// notification center in a headless build) and by tests.
type MemoryScheduler struct {
	mu      sync.Mutex
	pending []Spec
}

// NewMemoryScheduler returns an empty in-memory scheduler.
func NewMemoryScheduler() *MemoryScheduler {
	return &MemoryScheduler{}
}

// CancelAll drops every pending spec.
func (m *MemoryScheduler) CancelAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = nil
}

// Schedule appends the given specs.
func (m *MemoryScheduler) Schedule(specs []Spec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = append(m.pending, specs...)
	return nil
}

// Cancel removes the specs with the given identifiers.
func (m *MemoryScheduler) Cancel(identifiers []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = slices.DeleteFunc(m.pending, func(s Spec) bool {
		return slices.Contains(identifiers, s.Identifier)
	})
}

// ListPending returns a copy of the pending specs.
func (m *MemoryScheduler) ListPending() []Spec {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.pending)
}

// RequestAuthorization always succeeds for the in-memory scheduler.
func (m *MemoryScheduler) RequestAuthorization() (bool, error) {
	return true, nil
}
