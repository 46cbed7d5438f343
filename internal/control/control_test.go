package control

import (
	"testing"

	"racecore/internal/car"
	"racecore/internal/physics"
	"racecore/internal/world"
)

func TestPIDSign(t *testing.T) {
	p := NewPID(1, 0, 0, 10)

	if u := p.Compute(0, 0); u <= 0 {
		t.Errorf("below target: output %v, want > 0", u)
	}
	if u := p.Compute(20, 1); u >= 0 {
		t.Errorf("above target: output %v, want < 0", u)
	}
}

func TestPIDIntegralAccumulates(t *testing.T) {
	p := NewPID(0, 1, 0, 10)

	p.Compute(0, 0)
	u1 := p.Compute(0, 1)
	u2 := p.Compute(0, 2)
	if u2 <= u1 {
		t.Errorf("integral did not grow: %v then %v", u1, u2)
	}

	p.Reset()
	if u := p.Compute(0, 3); u != 0 {
		t.Errorf("reset PID with zero Kp returned %v, want 0", u)
	}
}

func TestCruiseReachesTarget(t *testing.T) {
	w := world.New()
	c, err := car.New(w, "bot", car.Params{})
	if err != nil {
		t.Fatal(err)
	}
	c.Object().Physics().(*physics.Component).PreventSleeping(true)

	d := NewCruise(10, 0.1, 1, 60)

	const dt = 0.016
	for i := 0; i < 3000; i++ {
		c.StepTime()
		d.Drive(c, w.Elapsed())
		w.StepTime(dt)
	}

	got := c.SpeedInKmh()
	if got < 40 || got > 80 {
		t.Errorf("cruise speed = %v km/h, want near 60", got)
	}
}
