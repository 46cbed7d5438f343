package control

import "racecore/internal/car"

// Driver feeds inputs to a car once per tick.
type Driver interface {
	Drive(c *car.Car, t float64)
}

// Cruise holds a target speed (km/h) with a PID on the throttle.
type Cruise struct {
	pid *PID
}

// NewCruise returns a driver that accelerates toward targetKmh and
// brakes above it.
func NewCruise(kp, ki, kd, targetKmh float64) *Cruise {
	return &Cruise{pid: NewPID(kp, ki, kd, targetKmh)}
}

// Drive applies throttle or brake from the PID output.
func (d *Cruise) Drive(c *car.Car, t float64) {
	u := d.pid.Compute(c.SpeedInKmh(), t)
	switch {
	case u > 0:
		c.Accelerate()
	case u < 0:
		c.Brake()
	default:
		c.NoAction()
	}
}

// None is a no-input driver; the car coasts.
type None struct{}

// Drive does nothing.
func (None) Drive(c *car.Car, t float64) {}
