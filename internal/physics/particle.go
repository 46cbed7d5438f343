package physics

import "github.com/go-gl/mathgl/mgl64"

// ParticleBody is a non-physical body for effect particles (smoke,
// skid marks, sparks). It moves linearly, has no angular response and
// never sleeps, so short-lived particles are not frozen mid-flight.
type ParticleBody struct {
	*Component
}

// NewParticleBody returns a particle body with unit mass.
func NewParticleBody() *ParticleBody {
	c := NewComponent()
	c.PreventSleeping(true)
	return &ParticleBody{Component: c}
}

// AddImpulseAt applies only the linear part; particles carry no
// rotational state worth exciting.
func (p *ParticleBody) AddImpulseAt(impulse, pos mgl64.Vec3, isCollision bool) {
	p.Component.AddImpulse(impulse, isCollision)
}

// AddAngularImpulse is a no-op for particles.
func (p *ParticleBody) AddAngularImpulse(impulse float64, isCollision bool) {}

// AddForceAt applies only the linear part.
func (p *ParticleBody) AddForceAt(force, pos mgl64.Vec3) {
	p.Component.AddForce(force)
}

// AddTorque is a no-op for particles.
func (p *ParticleBody) AddTorque(torque float64) {}
