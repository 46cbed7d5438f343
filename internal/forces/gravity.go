package forces

import (
	"github.com/go-gl/mathgl/mgl64"

	"racecore/internal/object"
)

// Gravity applies a constant acceleration field as a per-frame force.
// Bodies with a constant world gravity are usually configured through
// SetAcceleration instead; this generator serves scenarios where the
// field varies per object or is toggled (bridges, jumps).
type Gravity struct {
	field mgl64.Vec3
}

// NewGravity returns a generator for the given field, e.g.
// {0, 0, -9.81} for z-down world gravity.
func NewGravity(field mgl64.Vec3) *Gravity {
	return &Gravity{field: field}
}

// UpdateForce applies field * mass to the target.
func (g *Gravity) UpdateForce(obj *object.Object, dt float64) {
	p := obj.Physics()
	p.AddForce(g.field.Mul(p.Mass()))
}
