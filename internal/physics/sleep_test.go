package physics_test

import (
	"github.com/go-gl/mathgl/mgl64"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"racecore/internal/physics"
)

// The sleep machine: Active -> Sleeping after a run of quiet steps,
// Sleeping -> Active on collision impulses, sufficiently large
// non-collision impulses, PreventSleeping or an explicit toggle.
var _ = Describe("sleep state machine", func() {
	var c *physics.Component

	const step = 0.016

	quietSteps := func(n int) {
		for i := 0; i < n; i++ {
			c.StepTime(step)
		}
	}

	BeforeEach(func() {
		c = physics.NewComponent()
	})

	It("starts awake", func() {
		Expect(c.IsSleeping()).To(BeFalse())
	})

	It("falls asleep after a run of sub-limit steps", func() {
		c.SetVelocity(mgl64.Vec3{0.001, 0, 0})
		c.SetAngularVelocity(0.001)

		Expect(c.IsSleeping()).To(BeFalse())
		quietSteps(30)
		Expect(c.IsSleeping()).To(BeTrue())
		Expect(c.Speed()).To(BeZero())
		Expect(c.AngularVelocity()).To(BeZero())
	})

	It("does not sleep while moving above the limits", func() {
		c.SetVelocity(mgl64.Vec3{5, 0, 0})
		Expect(c.SetLinearDamping(1)).To(Succeed())
		quietSteps(100)
		Expect(c.IsSleeping()).To(BeFalse())
	})

	Context("while sleeping", func() {
		BeforeEach(func() {
			c.ToggleSleep(true)
			Expect(c.IsSleeping()).To(BeTrue())
		})

		It("skips integration entirely", func() {
			c.SetAcceleration(mgl64.Vec3{0, -9.81, 0})
			quietSteps(10)
			Expect(c.Speed()).To(BeZero())
		})

		It("wakes on a collision impulse regardless of magnitude", func() {
			c.AddImpulse(mgl64.Vec3{1e-9, 0, 0}, true)
			Expect(c.IsSleeping()).To(BeFalse())
		})

		It("wakes on a large non-collision impulse", func() {
			c.AddImpulse(mgl64.Vec3{2, 0, 0}, false)
			Expect(c.IsSleeping()).To(BeFalse())

			Expect(c.SetLinearDamping(1)).To(Succeed())
			c.StepTime(step)
			Expect(c.Speed()).To(BeNumerically("~", 2, 1e-12))
		})

		It("drops a sub-threshold non-collision impulse", func() {
			c.AddImpulse(mgl64.Vec3{0.0001, 0, 0}, false)
			Expect(c.IsSleeping()).To(BeTrue())

			// Even after an explicit wake the dropped impulse is gone.
			c.ToggleSleep(false)
			Expect(c.SetLinearDamping(1)).To(Succeed())
			c.StepTime(step)
			Expect(c.Speed()).To(BeZero())
		})

		It("wakes on an angular collision impulse", func() {
			c.AddAngularImpulse(1e-9, true)
			Expect(c.IsSleeping()).To(BeFalse())
		})

		It("wakes when sleeping is prevented", func() {
			c.PreventSleeping(true)
			Expect(c.IsSleeping()).To(BeFalse())
		})

		It("wakes on an explicit toggle", func() {
			c.ToggleSleep(false)
			Expect(c.IsSleeping()).To(BeFalse())
		})
	})

	Context("with sleeping prevented", func() {
		BeforeEach(func() {
			c.PreventSleeping(true)
		})

		It("never falls asleep on its own", func() {
			c.SetVelocity(mgl64.Vec3{0.0001, 0, 0})
			quietSteps(200)
			Expect(c.IsSleeping()).To(BeFalse())
		})
	})

	It("re-arms the quiet counter after waking", func() {
		c.SetVelocity(mgl64.Vec3{0.001, 0, 0})
		quietSteps(30)
		Expect(c.IsSleeping()).To(BeTrue())

		c.AddImpulse(mgl64.Vec3{5, 0, 0}, true)
		Expect(c.IsSleeping()).To(BeFalse())
		c.StepTime(step)

		// A single quiet step must not put it straight back to sleep.
		c.SetVelocity(mgl64.Vec3{})
		c.StepTime(step)
		Expect(c.IsSleeping()).To(BeFalse())
	})

	It("never sleeps a stationary body", func() {
		Expect(c.SetMass(10, true)).To(Succeed())
		quietSteps(50)
		Expect(c.IsStationary()).To(BeTrue())
		Expect(c.IsSleeping()).To(BeFalse())
	})
})
