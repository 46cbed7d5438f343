package forces

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"racecore/internal/object"
)

// Centrifugal pushes a turning body outward: the force grows with
// speed and turn rate and points away from the turn center. The
// amplification factor exaggerates the effect for gameplay feel.
type Centrifugal struct {
	amplification float64
}

// NewCentrifugal returns a generator with the given amplification.
func NewCentrifugal(amplification float64) *Centrifugal {
	return &Centrifugal{amplification: amplification}
}

// UpdateForce applies the outward push perpendicular to the velocity.
func (c *Centrifugal) UpdateForce(obj *object.Object, dt float64) {
	p := obj.Physics()
	v := p.Velocity()
	w := p.AngularVelocity()

	speed := v.Len()
	if speed < minSpeed || w == 0 {
		return
	}

	// Left normal of the velocity; w's sign selects the actual turn
	// side, the leading minus flips it outward.
	perp := mgl64.Vec3{-v.Y() / speed, v.X() / speed, 0}
	mag := -c.amplification * p.Mass() * speed * w
	if math.IsNaN(mag) {
		return
	}
	p.AddForce(perp.Mul(mag))
}
