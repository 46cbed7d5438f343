// Package metrics provides run-level telemetry accumulators. Each
// metric is bound to one object in the world and sampled after every
// integration step.
package metrics

import (
	"racecore/internal/object"
)

// Speed tracks the peak and mean speed of an object.
type Speed struct {
	name    string
	peak    float64
	total   float64
	samples int
}

func NewSpeed() *Speed {
	return &Speed{name: "speed"}
}

func (s *Speed) Name() string { return s.name }

func (s *Speed) Observe(obj *object.Object, t float64) {
	speed := obj.Physics().Speed()
	if speed > s.peak {
		s.peak = speed
	}
	s.total += speed
	s.samples++
}

// Value returns the mean speed over the run.
func (s *Speed) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.total / float64(s.samples)
}

// Peak returns the highest speed seen.
func (s *Speed) Peak() float64 { return s.peak }

func (s *Speed) Reset() {
	s.peak = 0
	s.total = 0
	s.samples = 0
}
