package forces

import (
	"math"

	"racecore/internal/object"
)

// Friction opposes linear motion and spin with a force proportional
// to the normal force (mass * gravity). It can be toggled at runtime;
// the braking friction of a car is an example of an on-demand binding.
type Friction struct {
	linear     float64
	rotational float64
	gravity    float64
	enabled    bool
}

// NewFriction returns an enabled generator with the given linear and
// rotational coefficients.
func NewFriction(linear, rotational float64) *Friction {
	return &Friction{
		linear:     linear,
		rotational: rotational,
		gravity:    DefaultGravity,
		enabled:    true,
	}
}

// SetGravity overrides the gravity used for the normal force.
func (f *Friction) SetGravity(g float64) { f.gravity = g }

// Enable toggles the generator without unbinding it.
func (f *Friction) Enable(flag bool) { f.enabled = flag }

// Enabled reports whether the generator currently applies force.
func (f *Friction) Enabled() bool { return f.enabled }

// UpdateForce applies friction opposing the target's velocity and
// angular velocity.
func (f *Friction) UpdateForce(obj *object.Object, dt float64) {
	if !f.enabled {
		return
	}
	p := obj.Physics()
	normal := p.Mass() * f.gravity

	if v := p.Velocity(); f.linear > 0 {
		if speed := v.Len(); speed > minSpeed {
			p.AddForce(v.Mul(-f.linear * normal / speed))
		}
	}

	if f.rotational > 0 {
		if w := p.AngularVelocity(); math.Abs(w) > minSpeed {
			// Lever arm from the shape's footprint; shapeless
			// objects get a unit arm.
			arm := 1.0
			if s := obj.Shape(); s != nil {
				arm = math.Max(s.Width(), s.Height()) / 2
			}
			torque := f.rotational * normal * arm
			if w > 0 {
				torque = -torque
			}
			p.AddTorque(torque)
		}
	}
}
