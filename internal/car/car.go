// Package car implements the vehicle gameplay layer on top of the
// physics core. It talks to its body exclusively through the public
// force/impulse API; all integration stays inside the physics
// component.
package car

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"racecore/internal/forces"
	"racecore/internal/object"
	"racecore/internal/physics"
	"racecore/internal/shape"
	"racecore/internal/trig"
	"racecore/internal/world"
)

// Tuning defaults, in world units.
const (
	DefaultMass            = 1000.0
	DefaultPower           = 5000.0
	DefaultTurningImpulse  = 0.40
	DefaultMaxSpeed        = 15.0
	DefaultRestitution     = 0.1
	DefaultWidth           = 26.0
	DefaultLength          = 50.0
	defaultSlideFriction   = 0.5
	defaultRollingFriction = 0.1
	defaultSpinFriction    = 0.5
	defaultBrakingFriction = 1.0
	defaultOffTrackCoeff   = 0.5
	offTrackMoment         = 50000.0
	centrifugalAmp         = 5.0
	maxTireAngle           = 45
)

// Tire mounting points in the car's local frame, +x forward.
var (
	leftFrontTirePos  = mgl64.Vec3{20, 13, 0}
	rightFrontTirePos = mgl64.Vec3{20, -13, 0}
	leftRearTirePos   = mgl64.Vec3{-20, 13, 0}
	rightRearTirePos  = mgl64.Vec3{-20, -13, 0}
)

// Params configures a car; zero fields fall back to the defaults.
type Params struct {
	Mass            float64
	MomentOfInertia float64
	Power           float64
	TurningImpulse  float64
	MaxSpeed        float64
	Restitution     float64
	LinearDamping   float64
	AngularDamping  float64
	Width           float64
	Length          float64
}

// ApplyDefaults fills zero fields with the package defaults.
func (p *Params) ApplyDefaults() {
	if p.Mass <= 0 {
		p.Mass = DefaultMass
	}
	if p.MomentOfInertia <= 0 {
		p.MomentOfInertia = p.Mass * 10
	}
	if p.Power <= 0 {
		p.Power = DefaultPower
	}
	if p.TurningImpulse <= 0 {
		p.TurningImpulse = DefaultTurningImpulse
	}
	if p.MaxSpeed <= 0 {
		p.MaxSpeed = DefaultMaxSpeed
	}
	if p.Restitution <= 0 {
		p.Restitution = DefaultRestitution
	}
	if p.Width <= 0 {
		p.Width = DefaultWidth
	}
	if p.Length <= 0 {
		p.Length = DefaultLength
	}
}

// Car couples an object, its physics body and the friction/steering
// state of a vehicle.
type Car struct {
	obj  *object.Object
	body *physics.Component

	power          float64
	turningImpulse float64
	length         float64

	tireAngle float64 // degrees, eased toward the steering input

	brakingFriction  *forces.Friction
	offTrackFriction *forces.Friction

	accelerating bool
	braking      bool
	reverse      bool

	leftOffTrack  bool
	rightOffTrack bool

	// Heading cosine/sine cached once per step.
	dx, dy     float64
	speedInKmh float64
}

// New builds a car, registers it with the world and binds its
// friction and centrifugal generators.
func New(w *world.World, name string, params Params) (*Car, error) {
	params.ApplyDefaults()

	sh := shape.NewRect(params.Length, params.Width)
	body := physics.NewComponent()
	obj := object.New(name, sh, body)

	if err := body.SetMass(params.Mass, false); err != nil {
		return nil, err
	}
	if err := body.SetMomentOfInertia(params.MomentOfInertia); err != nil {
		return nil, err
	}
	if params.LinearDamping > 0 {
		if err := body.SetLinearDamping(params.LinearDamping); err != nil {
			return nil, err
		}
	}
	if params.AngularDamping > 0 {
		if err := body.SetAngularDamping(params.AngularDamping); err != nil {
			return nil, err
		}
	}
	body.SetMaxSpeed(params.MaxSpeed)
	body.SetRestitution(params.Restitution)

	c := &Car{
		obj:            obj,
		body:           body,
		power:          params.Power,
		turningImpulse: params.TurningImpulse,
		length:         math.Max(params.Length, params.Width),
		dx:             1,
	}

	c.brakingFriction = forces.NewFriction(defaultBrakingFriction, 0)
	c.brakingFriction.Enable(false)
	c.offTrackFriction = forces.NewFriction(defaultOffTrackCoeff, 0)
	c.offTrackFriction.Enable(false)

	w.AddObject(obj)
	w.AddForceGenerator(forces.NewSlideFriction(defaultSlideFriction), obj)
	w.AddForceGenerator(forces.NewFriction(defaultRollingFriction, defaultSpinFriction), obj)
	w.AddForceGenerator(c.brakingFriction, obj)
	w.AddForceGenerator(c.offTrackFriction, obj)
	w.AddForceGenerator(forces.NewCentrifugal(centrifugalAmp), obj)

	return c, nil
}

// Object returns the underlying simulated object.
func (c *Car) Object() *object.Object { return c.obj }

// Length is the car's longest footprint dimension.
func (c *Car) Length() float64 { return c.length }

// SetPower sets the engine force magnitude.
func (c *Car) SetPower(power float64) { c.power = power }

// SetTurningImpulse sets the per-input angular impulse.
func (c *Car) SetTurningImpulse(impulse float64) { c.turningImpulse = impulse }

// Accelerate applies the engine force along the heading.
func (c *Car) Accelerate() {
	c.brakingFriction.Enable(false)

	c.body.AddForce(mgl64.Vec3{c.dx, c.dy, 0}.Mul(c.power))

	c.accelerating = true
	c.braking = false
	c.reverse = false
}

// Brake engages braking friction; near standstill it switches to
// reversing with half power.
func (c *Car) Brake() {
	c.accelerating = false

	if c.speedInKmh < 1 {
		c.reverse = true
	}

	if c.reverse {
		c.body.AddForce(mgl64.Vec3{c.dx, c.dy, 0}.Mul(-c.power / 2))
		return
	}

	c.braking = true
	c.brakingFriction.Enable(true)
}

// NoAction releases throttle and brake.
func (c *Car) NoAction() {
	c.brakingFriction.Enable(false)
	c.accelerating = false
	c.braking = false
	c.reverse = false
}

// TurnLeft eases the tires left and, when moving, applies a
// counter-clockwise steering impulse.
func (c *Car) TurnLeft() {
	if c.tireAngle < maxTireAngle {
		c.tireAngle++
	}
	if math.Abs(c.speedInKmh) > 1 {
		c.body.AddAngularImpulse(c.turningImpulse, false)
	}
}

// TurnRight is TurnLeft mirrored.
func (c *Car) TurnRight() {
	if c.tireAngle > -maxTireAngle {
		c.tireAngle--
	}
	if math.Abs(c.speedInKmh) > 1 {
		c.body.AddAngularImpulse(-c.turningImpulse, false)
	}
}

// NoSteering eases the tires back toward center.
func (c *Car) NoSteering() {
	if c.tireAngle < 0 {
		c.tireAngle++
	} else if c.tireAngle > 0 {
		c.tireAngle--
	}
}

// TireAngle returns the current steering angle in degrees.
func (c *Car) TireAngle() float64 { return c.tireAngle }

// SetLeftSideOffTrack marks the left tires as off the track surface.
// Either side off-track enables the extra friction.
func (c *Car) SetLeftSideOffTrack(state bool) {
	c.leftOffTrack = state
	c.offTrackFriction.Enable(c.leftOffTrack || c.rightOffTrack)
}

// SetRightSideOffTrack mirrors SetLeftSideOffTrack.
func (c *Car) SetRightSideOffTrack(state bool) {
	c.rightOffTrack = state
	c.offTrackFriction.Enable(c.leftOffTrack || c.rightOffTrack)
}

// IsBraking reports whether braking friction is engaged.
func (c *Car) IsBraking() bool { return c.braking }

// IsAccelerating reports whether the throttle was applied this frame.
func (c *Car) IsAccelerating() bool { return c.accelerating }

// SpeedInKmh is the signed speed along the heading, scaled for HUDs.
func (c *Car) SpeedInKmh() float64 { return c.speedInKmh }

// StepTime refreshes the cached heading, the HUD speed, and applies
// the off-track yaw moment. Call once per tick, before steering and
// throttle input for the next frame.
func (c *Car) StepTime() {
	c.dy, c.dx = trig.SinCos(c.obj.Angle())

	heading := mgl64.Vec3{c.dx, c.dy, 0}
	c.speedInKmh = c.body.Velocity().Dot(heading) * 120 / 10

	if c.speedInKmh > 10 {
		if c.leftOffTrack {
			c.body.AddTorque(offTrackMoment)
		}
		if c.rightOffTrack {
			c.body.AddTorque(-offTrackMoment)
		}
	}
}

// TirePositions returns the world-space tire locations:
// left-front, right-front, left-rear, right-rear.
func (c *Car) TirePositions() [4]mgl64.Vec3 {
	angle := c.obj.Angle()
	pos := c.obj.Position()
	return [4]mgl64.Vec3{
		pos.Add(trig.Rotated(leftFrontTirePos, angle)),
		pos.Add(trig.Rotated(rightFrontTirePos, angle)),
		pos.Add(trig.Rotated(leftRearTirePos, angle)),
		pos.Add(trig.Rotated(rightRearTirePos, angle)),
	}
}

// ClearStatuses drops the per-frame throttle/brake flags.
func (c *Car) ClearStatuses() {
	c.braking = false
	c.accelerating = false
}
