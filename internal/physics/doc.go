// Package physics implements per-object rigid-body integration.
//
// Each simulated object owns exactly one [Body]. Forces, torques and
// impulses are accumulated through the public API between steps and
// consumed by a single StepTime call per simulation tick:
//
//   - [Component]: the standard rigid body (linear + angular motion,
//     damping, sleeping, stationary/infinite-mass handling)
//   - [ParticleBody]: a lightweight variant for effect particles
//
// Forces are mass-divided and scaled by the step length; impulses are
// instantaneous velocity deltas independent of the step length.
//
// # Coordinate conventions
//
// Linear state is a 3D vector; rotation is a single signed angular
// velocity about the z axis (rad/s), counter-clockwise positive.
// Torque derived from an off-center force is the z component of
// cross(offset, force), so a positive x offset with a positive y force
// yields positive torque.
//
// All operations are total over floating-point inputs: NaN or infinite
// values propagate silently into the state. Input validation is the
// caller's responsibility; only mass, inertia and damping setters
// reject invalid configuration.
package physics
