package forces

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"racecore/internal/object"
	"racecore/internal/trig"
)

// SlideFriction opposes the lateral (sideways relative to heading)
// component of the target's velocity, which is what keeps tires from
// drifting freely through corners.
type SlideFriction struct {
	coeff   float64
	gravity float64
	enabled bool
}

// NewSlideFriction returns an enabled slide friction generator.
func NewSlideFriction(coeff float64) *SlideFriction {
	return &SlideFriction{
		coeff:   coeff,
		gravity: DefaultGravity,
		enabled: true,
	}
}

// Enable toggles the generator without unbinding it.
func (s *SlideFriction) Enable(flag bool) { s.enabled = flag }

// UpdateForce applies a force against the sideways velocity component.
func (s *SlideFriction) UpdateForce(obj *object.Object, dt float64) {
	if !s.enabled {
		return
	}
	p := obj.Physics()

	side := trig.Rotated(mgl64.Vec3{0, 1, 0}, obj.Angle())
	lateral := p.Velocity().Dot(side)
	if math.Abs(lateral) < minSpeed {
		return
	}

	mag := s.coeff * p.Mass() * s.gravity
	if lateral > 0 {
		mag = -mag
	}
	p.AddForce(side.Mul(mag))
}
