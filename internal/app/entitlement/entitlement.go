// Package entitlement defines the subscription collaborator the engine
// consumes. The engine only reads the entitlement flag; purchase and
// receipt validation live outside this core.
package entitlement

import "sync"

// Outcome is the result of a purchase attempt.
type Outcome string

const (
	OutcomePurchased Outcome = "purchased"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeFailed    Outcome = "failed"
)

// Service exposes the subscription state and actions.
type Service interface {
	IsEntitled() bool
	Purchase() (Outcome, error)
	Restore() error
}

// Static is a local entitlement service seeded from configuration.
// Purchase and Restore simply grant the flag — there is no store backend.
type Static struct {
	mu       sync.Mutex
	entitled bool
}

// NewStatic returns a static service with the given initial state.
func NewStatic(entitled bool) *Static {
	return &Static{entitled: entitled}
}

// IsEntitled reports the current entitlement flag.
func (s *Static) IsEntitled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entitled
}

// Purchase grants the entitlement.
func (s *Static) Purchase() (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entitled = true
	return OutcomePurchased, nil
}

// Restore re-grants a previously purchased entitlement.
func (s *Static) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entitled = true
	return nil
}
