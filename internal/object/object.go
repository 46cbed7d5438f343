// Package object associates a physics body with geometry and a world
// transform. An object exclusively owns its body for its whole
// lifetime; the world steps objects, each object steps its body and
// then folds the resulting velocities into position and heading.
package object

import (
	"github.com/go-gl/mathgl/mgl64"

	"racecore/internal/physics"
	"racecore/internal/shape"
	"racecore/internal/trig"
)

// Object is one simulated entity.
type Object struct {
	name     string
	index    int
	position mgl64.Vec3
	angle    float64 // radians, counter-clockwise
	shape    shape.Shape
	body     physics.Body
}

// New creates an object owning the given body. A nil body gets a
// fresh standard component. The object registers itself as the body's
// center-of-mass locator.
func New(name string, sh shape.Shape, body physics.Body) *Object {
	if body == nil {
		body = physics.NewComponent()
	}
	o := &Object{
		name:  name,
		index: -1,
		shape: sh,
		body:  body,
	}
	body.SetLocator(o)
	return o
}

// Name returns the object's name.
func (o *Object) Name() string { return o.name }

// Index is the world registration slot, -1 while unregistered.
func (o *Object) Index() int { return o.index }

// SetIndex is called by the owning world on add/remove.
func (o *Object) SetIndex(i int) { o.index = i }

// Physics returns the owned body.
func (o *Object) Physics() physics.Body { return o.body }

// Shape returns the geometry metadata, nil for shapeless objects.
func (o *Object) Shape() shape.Shape { return o.shape }

// Position returns the world-space position.
func (o *Object) Position() mgl64.Vec3 { return o.position }

// SetPosition teleports the object without touching its velocities.
func (o *Object) SetPosition(p mgl64.Vec3) { o.position = p }

// Translate moves the object by the given delta.
func (o *Object) Translate(d mgl64.Vec3) { o.position = o.position.Add(d) }

// Angle returns the heading in radians, counter-clockwise.
func (o *Object) Angle() float64 { return o.angle }

// SetAngle sets the heading in radians.
func (o *Object) SetAngle(a float64) { o.angle = a }

// Rotate turns the object by delta radians.
func (o *Object) Rotate(delta float64) { o.angle += delta }

// Direction returns the unit heading vector in the xy plane.
func (o *Object) Direction() mgl64.Vec3 {
	s, c := trig.SinCos(o.angle)
	return mgl64.Vec3{c, s, 0}
}

// CenterOfMass returns the world-space center of mass: the position
// plus the shape's offset rotated by the current heading. Implements
// physics.Locator.
func (o *Object) CenterOfMass() mgl64.Vec3 {
	if o.shape == nil {
		return o.position
	}
	return o.position.Add(trig.Rotated(o.shape.CenterOfMass(), o.angle))
}

// StepTime advances the body one tick and integrates the resulting
// velocities into position and heading. Sleeping and stationary
// objects keep their transform.
func (o *Object) StepTime(step float64) {
	o.body.StepTime(step)
	if o.body.IsSleeping() || o.body.IsStationary() {
		return
	}
	o.position = o.position.Add(o.body.Velocity().Mul(step))
	o.angle += o.body.AngularVelocity() * step
}

// Reset restores the body's initial motion state. The transform is
// left alone; callers reposition explicitly.
func (o *Object) Reset() {
	o.body.Reset()
}
