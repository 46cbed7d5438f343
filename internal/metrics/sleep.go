package metrics

import (
	"racecore/internal/object"
)

// SleepRatio measures the fraction of samples a body spent asleep.
type SleepRatio struct {
	name     string
	sleeping int
	samples  int
}

func NewSleepRatio() *SleepRatio {
	return &SleepRatio{name: "sleep_ratio"}
}

func (s *SleepRatio) Name() string { return s.name }

func (s *SleepRatio) Observe(obj *object.Object, t float64) {
	s.samples++
	if obj.Physics().IsSleeping() {
		s.sleeping++
	}
}

func (s *SleepRatio) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.sleeping) / float64(s.samples)
}

func (s *SleepRatio) Reset() {
	s.sleeping = 0
	s.samples = 0
}
