package physics

import "github.com/go-gl/mathgl/mgl64"

// Locator reports the world-space center of mass of the owning object.
// Position-aware force and impulse calls use it to derive torque from
// an off-center application point. A body without a locator treats
// application points as offsets from its own center.
type Locator interface {
	CenterOfMass() mgl64.Vec3
}

// Body is the physics interface an object steps once per tick.
// [Component] is the standard implementation; variants such as
// [ParticleBody] override the impulse entry points or the step itself.
//
// Accumulation calls may arrive 0..N times between steps; StepTime
// consumes the accumulators exactly once.
type Body interface {
	// StepTime integrates accumulated forces and impulses into the
	// body's velocities over a step of the given length in seconds.
	StepTime(step float64)

	// Reset returns the body to its post-construction motion state
	// without touching mass, inertia, damping or restitution.
	Reset()

	AddForce(force mgl64.Vec3)
	AddForceAt(force, pos mgl64.Vec3)
	AddTorque(torque float64)
	AddImpulse(impulse mgl64.Vec3, isCollision bool)
	AddImpulseAt(impulse, pos mgl64.Vec3, isCollision bool)
	AddAngularImpulse(impulse float64, isCollision bool)
	ClearForces()

	Velocity() mgl64.Vec3
	Speed() float64
	AngularVelocity() float64
	Mass() float64
	InvMass() float64
	Restitution() float64

	IsSleeping() bool
	IsStationary() bool

	CollisionTag() int
	NeverCollideWithTag() int

	SetLocator(l Locator)
}
