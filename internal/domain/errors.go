package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────

var (
	// Engine errors
	ErrUnknownActivityType = errors.New("unknown activity type")
	ErrInvalidFrequency    = errors.New("unknown reminder frequency")

	// Store errors
	ErrDocumentNotFound = errors.New("document not found")

	// Entitlement errors
	ErrNotEntitled = errors.New("feature requires an active subscription")
)
