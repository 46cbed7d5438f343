package world

import "racecore/internal/object"

// ForceGenerator computes and accumulates a force/torque into its
// target each step, before any integration runs. Implementations must
// use only the body's accumulation API, never integrate directly.
type ForceGenerator interface {
	UpdateForce(obj *object.Object, dt float64)
}

// Observer is notified after each object's integration step. The
// rendering/particle layer hangs off this hook and must treat the
// object as read-only.
type Observer interface {
	OnStep(obj *object.Object, t float64)
}

// Metric accumulates a scalar over a run for one bound object.
type Metric interface {
	Name() string
	Observe(obj *object.Object, t float64)
	Value() float64
	Reset()
}

// Config drives a fixed-step run.
type Config struct {
	Dt       float64
	Duration float64
}

// Dimensions bound the world volume. MetersPerUnit converts world
// units to meters for force generators that care about real gravity.
type Dimensions struct {
	MinX, MaxX    float64
	MinY, MaxY    float64
	MinZ, MaxZ    float64
	MetersPerUnit float64
}
