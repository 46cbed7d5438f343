package physics

import "errors"

// Configuration errors returned by the setter boundary. Invalid values
// are rejected here so the inverse mass/inertia divisions inside the
// integration step never see them.
var (
	// ErrNonPositiveMass indicates a mass <= 0 for a non-stationary body.
	ErrNonPositiveMass = errors.New("physics: mass must be positive for a non-stationary body")

	// ErrNonPositiveInertia indicates a moment of inertia <= 0.
	ErrNonPositiveInertia = errors.New("physics: moment of inertia must be positive")

	// ErrDampingRange indicates a damping factor outside (0, 1].
	ErrDampingRange = errors.New("physics: damping factor must be in (0, 1]")
)
