// Package shape provides the geometry metadata the object system and
// external collision code read: bounding dimensions, center-of-mass
// offsets and moment-of-inertia formulas. No collision math lives
// here.
package shape

import "github.com/go-gl/mathgl/mgl64"

// Shape describes an object's footprint.
type Shape interface {
	// Width and Height are the axis-aligned bounding dimensions in
	// the shape's local frame.
	Width() float64
	Height() float64

	// CenterOfMass is the offset of the center of mass from the
	// object's position, in the local frame.
	CenterOfMass() mgl64.Vec3

	// MomentOfInertia returns the rotational inertia about the
	// center of mass for the given mass.
	MomentOfInertia(mass float64) float64
}

// Rect is a rectangular footprint centered on the object position.
type Rect struct {
	w, h float64
	com  mgl64.Vec3
}

// NewRect returns a rectangle of the given width and height.
func NewRect(width, height float64) *Rect {
	return &Rect{w: width, h: height}
}

func (r *Rect) Width() float64  { return r.w }
func (r *Rect) Height() float64 { return r.h }

func (r *Rect) CenterOfMass() mgl64.Vec3 { return r.com }

// SetCenterOfMass offsets the center of mass, e.g. for a rear-heavy
// vehicle.
func (r *Rect) SetCenterOfMass(com mgl64.Vec3) { r.com = com }

// MomentOfInertia of a solid rectangle: m*(w²+h²)/12.
func (r *Rect) MomentOfInertia(mass float64) float64 {
	return mass * (r.w*r.w + r.h*r.h) / 12
}

// Circle is a circular footprint centered on the object position.
type Circle struct {
	radius float64
}

// NewCircle returns a circle with the given radius.
func NewCircle(radius float64) *Circle {
	return &Circle{radius: radius}
}

func (c *Circle) Radius() float64 { return c.radius }
func (c *Circle) Width() float64  { return 2 * c.radius }
func (c *Circle) Height() float64 { return 2 * c.radius }

func (c *Circle) CenterOfMass() mgl64.Vec3 { return mgl64.Vec3{} }

// MomentOfInertia of a solid disc: m*r²/2.
func (c *Circle) MomentOfInertia(mass float64) float64 {
	return mass * c.radius * c.radius / 2
}
