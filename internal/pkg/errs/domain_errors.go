package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Station errors
	ErrStationNotFound = errors.New("station not found")

	// Session lifecycle errors
	ErrStationOccupied      = errors.New("station already occupied")
	ErrNoActiveSession      = errors.New("no active session on station")
	ErrSessionNotPaused     = errors.New("session is not paused")
	ErrSessionAlreadyPaused = errors.New("session is already paused")
	ErrOpenEndedExtend      = errors.New("open-ended session cannot be extended")

	// Pricing errors
	ErrInvalidOffer   = errors.New("invalid pricing offer")
	ErrInvalidPricing = errors.New("invalid pricing configuration")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Persistence errors
	ErrSnapshotCorrupt = errors.New("snapshot is corrupt or unreadable")
)
