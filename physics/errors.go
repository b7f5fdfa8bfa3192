package physics

import "errors"

var (
	// ErrUnknownBody is returned when a handle does not name a live body.
	ErrUnknownBody = errors.New("physics: unknown body")
	// ErrSameBody is returned when a joint would connect a body to itself.
	ErrSameBody = errors.New("physics: joint connects a body to itself")
	// ErrWorldLocked is returned when the engine rejects a change mid-step.
	ErrWorldLocked = errors.New("physics: world is locked")
)
