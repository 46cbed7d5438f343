package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Defaults applied by NewComponent.
const (
	DefaultRestitution    = 0.5
	DefaultLinearDamping  = 0.999
	DefaultAngularDamping = 0.999
	DefaultSleepLimit     = 0.01
)

// sleepFrameThreshold is the number of consecutive steps both
// velocities must stay under the sleep limits before the body falls
// asleep. Matches the reference engine's behavior of requiring a short
// run of quiet frames rather than a single one.
const sleepFrameThreshold = 10

// Component is the standard rigid body. Zero value is not usable; use
// NewComponent. A Component is exclusively owned by one object and is
// not safe for concurrent use: accumulation and stepping follow a
// strict single-threaded phase order per tick.
type Component struct {
	velocity        mgl64.Vec3
	angularVelocity float64

	// acceleration is constant (e.g. gravity) and survives steps;
	// forces, torque and the impulses are cleared after integration.
	acceleration   mgl64.Vec3
	forces         mgl64.Vec3
	torque         float64
	linearImpulse  mgl64.Vec3
	angularImpulse float64

	mass               float64
	invMass            float64
	momentOfInertia    float64
	invMomentOfInertia float64

	restitution    float64
	linearDamping  float64
	angularDamping float64
	maxSpeed       float64

	// Deprecated friction coefficient kept for configurations that
	// predate the damping model. It has no direct integration effect;
	// the world maps it onto an implicit friction generator.
	xyFriction float64

	linearSleepLimit  float64
	angularSleepLimit float64
	sleepCount        int
	sleeping          bool
	sleepPrevented    bool

	stationary  bool
	integrating bool

	collisionTag        int
	neverCollideWithTag int

	locator Locator
}

// NewComponent returns a dynamic body with unit mass and inertia.
func NewComponent() *Component {
	return &Component{
		mass:               1,
		invMass:            1,
		momentOfInertia:    1,
		invMomentOfInertia: 1,
		restitution:        DefaultRestitution,
		linearDamping:      DefaultLinearDamping,
		angularDamping:     DefaultAngularDamping,
		linearSleepLimit:   DefaultSleepLimit,
		angularSleepLimit:  DefaultSleepLimit,
	}
}

// SetLocator attaches the owning object's center-of-mass provider.
func (c *Component) SetLocator(l Locator) { c.locator = l }

// AddForce accumulates a force for the next integration step. The
// velocity does not change until StepTime runs.
func (c *Component) AddForce(force mgl64.Vec3) {
	if c.sleeping && force.Len()*c.invMass > c.linearSleepLimit {
		c.wake()
	}
	c.forces = c.forces.Add(force)
}

// AddForceAt accumulates a force applied at pos (world coordinates).
// The component of the force off the center of mass contributes
// torque: the z component of cross(pos-center, force).
func (c *Component) AddForceAt(force, pos mgl64.Vec3) {
	arm := pos.Sub(c.center())
	c.AddTorque(arm.X()*force.Y() - arm.Y()*force.X())
	c.AddForce(force)
}

// AddTorque accumulates torque for the next integration step.
func (c *Component) AddTorque(torque float64) {
	if c.sleeping && math.Abs(torque)*c.invMomentOfInertia > c.angularSleepLimit {
		c.wake()
	}
	c.torque += torque
}

// AddImpulse accumulates an instantaneous velocity-altering impulse.
// A collision impulse always wakes a sleeping body. A non-collision
// impulse wakes it only if the resulting velocity delta would exceed
// the linear sleep limit; below that it is dropped while asleep.
func (c *Component) AddImpulse(impulse mgl64.Vec3, isCollision bool) {
	if c.sleeping {
		if !isCollision && impulse.Len()*c.invMass <= c.linearSleepLimit {
			return
		}
		c.wake()
	}
	c.linearImpulse = c.linearImpulse.Add(impulse)
}

// AddImpulseAt is AddImpulse with an application point: the offset
// from the center of mass also contributes an angular impulse, with
// the same sign convention as AddForceAt.
func (c *Component) AddImpulseAt(impulse, pos mgl64.Vec3, isCollision bool) {
	if c.sleeping {
		if !isCollision && impulse.Len()*c.invMass <= c.linearSleepLimit {
			return
		}
		c.wake()
	}
	arm := pos.Sub(c.center())
	c.angularImpulse += arm.X()*impulse.Y() - arm.Y()*impulse.X()
	c.linearImpulse = c.linearImpulse.Add(impulse)
}

// AddAngularImpulse accumulates an instantaneous angular impulse in
// rad/s. Wake semantics follow AddImpulse.
func (c *Component) AddAngularImpulse(impulse float64, isCollision bool) {
	if c.sleeping {
		if !isCollision && math.Abs(impulse)*c.invMomentOfInertia <= c.angularSleepLimit {
			return
		}
		c.wake()
	}
	c.angularImpulse += impulse
}

// ClearForces resets the accumulated force and torque without
// integrating them. Pending impulses are unaffected.
func (c *Component) ClearForces() {
	c.forces = mgl64.Vec3{}
	c.torque = 0
}

// StepTime integrates the accumulated forces and impulses over step
// seconds. It must be called exactly once per object per tick; a
// recursive call is a programming error and is refused.
func (c *Component) StepTime(step float64) {
	if c.integrating {
		return
	}
	c.integrating = true
	defer func() { c.integrating = false }()

	if c.stationary {
		// Infinite mass: nothing can move it, but the frame's
		// contributions must not leak into a later step.
		c.clearAccumulators()
		return
	}

	if c.sleeping && !c.sleepPrevented {
		// Wake-ups happen at accumulation time; anything still
		// pending here is below the wake threshold and is dropped.
		c.clearAccumulators()
		return
	}

	c.integrateLinear(step)
	c.integrateAngular(step)
	c.clearAccumulators()
	c.evaluateSleep()
}

func (c *Component) integrateLinear(step float64) {
	c.velocity = c.velocity.Add(c.forces.Mul(c.invMass).Add(c.acceleration).Mul(step))
	// Impulses bypass the step scaling: they are instantaneous.
	c.velocity = c.velocity.Add(c.linearImpulse.Mul(c.invMass))
	c.velocity = c.velocity.Mul(c.linearDamping)

	if c.maxSpeed > 0 {
		if speed := c.velocity.Len(); speed > c.maxSpeed {
			c.velocity = c.velocity.Mul(c.maxSpeed / speed)
		}
	}
}

func (c *Component) integrateAngular(step float64) {
	c.angularVelocity += c.torque * c.invMomentOfInertia * step
	c.angularVelocity += c.angularImpulse * c.invMomentOfInertia
	c.angularVelocity *= c.angularDamping
}

func (c *Component) clearAccumulators() {
	c.forces = mgl64.Vec3{}
	c.torque = 0
	c.linearImpulse = mgl64.Vec3{}
	c.angularImpulse = 0
}

func (c *Component) evaluateSleep() {
	if c.sleepPrevented {
		c.sleepCount = 0
		return
	}
	if c.velocity.Len() < c.linearSleepLimit && math.Abs(c.angularVelocity) < c.angularSleepLimit {
		c.sleepCount++
		if c.sleepCount > sleepFrameThreshold {
			c.sleeping = true
			c.velocity = mgl64.Vec3{}
			c.angularVelocity = 0
		}
		return
	}
	c.sleepCount = 0
	c.sleeping = false
}

func (c *Component) wake() {
	c.sleeping = false
	c.sleepCount = 0
}

func (c *Component) center() mgl64.Vec3 {
	if c.locator != nil {
		return c.locator.CenterOfMass()
	}
	return mgl64.Vec3{}
}

// Reset returns the component to its initial motion state: zero
// velocities and accumulators, awake, not integrating. Mass, inertia,
// damping, restitution, sleep limits and tags are preserved.
func (c *Component) Reset() {
	c.velocity = mgl64.Vec3{}
	c.angularVelocity = 0
	c.clearAccumulators()
	c.sleeping = false
	c.sleepCount = 0
	c.integrating = false
}

// ResetZ zeroes the z components of the velocity and the accumulated
// force, e.g. when an object lands after a jump or leaves a bridge.
func (c *Component) ResetZ() {
	c.velocity[2] = 0
	c.forces[2] = 0
}

// SetVelocity replaces the current velocity.
func (c *Component) SetVelocity(v mgl64.Vec3) { c.velocity = v }

// Velocity returns the current linear velocity in world units/s.
func (c *Component) Velocity() mgl64.Vec3 { return c.velocity }

// Speed returns the magnitude of the current velocity.
func (c *Component) Speed() float64 { return c.velocity.Len() }

// SetMaxSpeed clamps the post-integration speed to the given value.
// Zero or negative disables the clamp.
func (c *Component) SetMaxSpeed(maxSpeed float64) { c.maxSpeed = maxSpeed }

// MaxSpeed returns the speed clamp, 0 meaning unclamped.
func (c *Component) MaxSpeed() float64 { return c.maxSpeed }

// SetAngularVelocity replaces the current angular velocity in rad/s.
func (c *Component) SetAngularVelocity(w float64) { c.angularVelocity = w }

// AngularVelocity returns the current angular velocity in rad/s.
func (c *Component) AngularVelocity() float64 { return c.angularVelocity }

// SetAcceleration sets the constant acceleration (e.g. gravity).
// Use AddForce for acceleration that varies per frame.
func (c *Component) SetAcceleration(a mgl64.Vec3) { c.acceleration = a }

// Acceleration returns the constant acceleration.
func (c *Component) Acceleration() mgl64.Vec3 { return c.acceleration }

// SetMass sets the mass. With stationary true the body gets infinite
// effective mass: both inverse mass and inverse inertia become zero
// and integration never changes its velocities. A non-stationary mass
// must be positive.
func (c *Component) SetMass(mass float64, stationary bool) error {
	if stationary {
		c.mass = mass
		c.invMass = 0
		c.invMomentOfInertia = 0
		c.stationary = true
		return nil
	}
	if mass <= 0 {
		return ErrNonPositiveMass
	}
	c.mass = mass
	c.invMass = 1 / mass
	c.stationary = false
	if c.momentOfInertia > 0 {
		c.invMomentOfInertia = 1 / c.momentOfInertia
	}
	return nil
}

// Mass returns the mass.
func (c *Component) Mass() float64 { return c.mass }

// InvMass returns the inverse mass; zero for stationary bodies.
func (c *Component) InvMass() float64 { return c.invMass }

// SetMomentOfInertia sets the rotational inertia. Must be positive.
func (c *Component) SetMomentOfInertia(momentOfInertia float64) error {
	if momentOfInertia <= 0 {
		return ErrNonPositiveInertia
	}
	c.momentOfInertia = momentOfInertia
	if !c.stationary {
		c.invMomentOfInertia = 1 / momentOfInertia
	}
	return nil
}

// MomentOfInertia returns the rotational inertia.
func (c *Component) MomentOfInertia() float64 { return c.momentOfInertia }

// InvMomentOfInertia returns the inverse inertia; zero for stationary bodies.
func (c *Component) InvMomentOfInertia() float64 { return c.invMomentOfInertia }

// SetRestitution sets the bounce coefficient, clamped into [0, 1].
func (c *Component) SetRestitution(restitution float64) {
	c.restitution = math.Min(math.Max(restitution, 0), 1)
}

// Restitution returns the bounce coefficient.
func (c *Component) Restitution() float64 { return c.restitution }

// SetLinearDamping sets the multiplicative per-step velocity decay.
// Valid range is (0, 1]; 1 disables damping.
func (c *Component) SetLinearDamping(damping float64) error {
	if damping <= 0 || damping > 1 {
		return ErrDampingRange
	}
	c.linearDamping = damping
	return nil
}

// LinearDamping returns the linear damping factor.
func (c *Component) LinearDamping() float64 { return c.linearDamping }

// SetAngularDamping sets the per-step angular velocity decay, (0, 1].
func (c *Component) SetAngularDamping(damping float64) error {
	if damping <= 0 || damping > 1 {
		return ErrDampingRange
	}
	c.angularDamping = damping
	return nil
}

// AngularDamping returns the angular damping factor.
func (c *Component) AngularDamping() float64 { return c.angularDamping }

// SetXYFriction sets the legacy global friction coefficient.
//
// Deprecated: superseded by SetLinearDamping and SetAngularDamping.
// The value is preserved so existing configurations keep working: a
// coefficient > 0 makes the world attach an implicit friction
// generator when the object is added.
func (c *Component) SetXYFriction(friction float64) { c.xyFriction = friction }

// XYFriction returns the legacy global friction coefficient.
func (c *Component) XYFriction() float64 { return c.xyFriction }

// SetSleepLimits sets the velocity magnitudes under which the body is
// considered quiet. Defaults are 0.01 for both.
func (c *Component) SetSleepLimits(linear, angular float64) {
	c.linearSleepLimit = linear
	c.angularSleepLimit = angular
}

// IsSleeping reports whether the body is asleep.
func (c *Component) IsSleeping() bool { return c.sleeping }

// PreventSleeping disables the sleep transition while enabled. A
// sleeping body is woken immediately.
func (c *Component) PreventSleeping(flag bool) {
	c.sleepPrevented = flag
	if flag {
		c.wake()
	}
}

// ToggleSleep forces the sleep state. Putting a body to sleep zeroes
// its velocities; waking clears the quiet-frame counter.
func (c *Component) ToggleSleep(state bool) {
	if state {
		c.sleeping = true
		c.velocity = mgl64.Vec3{}
		c.angularVelocity = 0
		return
	}
	c.wake()
}

// IsStationary reports whether the body has infinite effective mass.
func (c *Component) IsStationary() bool { return c.stationary }

// IsIntegrating reports whether a StepTime call is in progress.
func (c *Component) IsIntegrating() bool { return c.integrating }

// SetCollisionTag sets the tag used by the external collision filter.
func (c *Component) SetCollisionTag(tag int) { c.collisionTag = tag }

// CollisionTag returns the collision filter tag.
func (c *Component) CollisionTag() int { return c.collisionTag }

// SetNeverCollideWithTag filters out collisions against objects
// carrying the given tag before any impulse is computed.
func (c *Component) SetNeverCollideWithTag(tag int) { c.neverCollideWithTag = tag }

// NeverCollideWithTag returns the filtered-out tag.
func (c *Component) NeverCollideWithTag() int { return c.neverCollideWithTag }
