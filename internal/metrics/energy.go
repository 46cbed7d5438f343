package metrics

import (
	"racecore/internal/object"
)

// KineticEnergy averages the translational plus rotational kinetic
// energy of a body over a run.
type KineticEnergy struct {
	name            string
	momentOfInertia float64
	total           float64
	samples         int
}

func NewKineticEnergy(momentOfInertia float64) *KineticEnergy {
	return &KineticEnergy{
		name:            "kinetic_energy",
		momentOfInertia: momentOfInertia,
	}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(obj *object.Object, t float64) {
	body := obj.Physics()
	v := body.Speed()
	w := body.AngularVelocity()

	ke := 0.5 * body.Mass() * v * v
	ke += 0.5 * e.momentOfInertia * w * w

	e.total += ke
	e.samples++
}

func (e *KineticEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

func (e *KineticEnergy) Reset() {
	e.total = 0
	e.samples = 0
}
