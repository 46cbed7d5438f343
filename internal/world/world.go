// Package world owns the per-tick stepping pipeline: registered force
// generators write into body accumulators, then every object
// integrates, then observers and metrics read the results. The three
// phases never interleave within a tick and objects step in
// registration order, so runs are reproducible.
package world

import (
	"context"
	"fmt"

	"racecore/internal/forces"
	"racecore/internal/object"
)

type generatorBinding struct {
	gen    ForceGenerator
	target *object.Object
}

type metricBinding struct {
	metric Metric
	target *object.Object
}

// World holds the simulated objects and steps them cooperatively.
// Not safe for concurrent use; everything happens on the tick thread.
type World struct {
	objects    []*object.Object
	generators []generatorBinding
	metrics    []metricBinding
	observers  []Observer

	// Removal during a step is deferred to the end of the tick so
	// iteration order stays intact mid-frame.
	pendingRemovals []*object.Object

	dims    Dimensions
	elapsed float64
}

// New returns an empty world.
func New() *World {
	return &World{
		dims: Dimensions{MetersPerUnit: 1},
	}
}

// SetDimensions bounds the world volume.
func (w *World) SetDimensions(d Dimensions) {
	if d.MetersPerUnit <= 0 {
		d.MetersPerUnit = 1
	}
	w.dims = d
}

// Dimensions returns the world bounds.
func (w *World) Dimensions() Dimensions { return w.dims }

// AddObject registers an object for stepping and assigns its index.
// A body carrying the legacy xyFriction coefficient gets an implicit
// friction generator, preserving pre-damping configurations.
func (w *World) AddObject(o *object.Object) {
	if o.Index() >= 0 {
		return
	}
	o.SetIndex(len(w.objects))
	w.objects = append(w.objects, o)

	if f, ok := o.Physics().(interface{ XYFriction() float64 }); ok {
		if coeff := f.XYFriction(); coeff > 0 {
			w.AddForceGenerator(forces.NewFriction(coeff, 0), o)
		}
	}
}

// RemoveObject unregisters lazily: the object keeps stepping until
// the end of the current tick (or the next StepTime call if none is
// running).
func (w *World) RemoveObject(o *object.Object) {
	w.pendingRemovals = append(w.pendingRemovals, o)
}

// RemoveObjectNow unregisters immediately.
func (w *World) RemoveObjectNow(o *object.Object) {
	w.remove(o)
}

// ObjectCount returns the number of registered objects.
func (w *World) ObjectCount() int { return len(w.objects) }

// Objects returns the registered objects in stepping order. The slice
// is owned by the world; callers must not mutate it.
func (w *World) Objects() []*object.Object { return w.objects }

// AddForceGenerator binds a generator to a target object. The same
// generator may be bound to any number of objects.
func (w *World) AddForceGenerator(gen ForceGenerator, target *object.Object) {
	w.generators = append(w.generators, generatorBinding{gen: gen, target: target})
}

// RemoveForceGenerators drops all generator bindings for the target.
func (w *World) RemoveForceGenerators(target *object.Object) {
	kept := w.generators[:0]
	for _, b := range w.generators {
		if b.target != target {
			kept = append(kept, b)
		}
	}
	w.generators = kept
}

// AddObserver registers a post-step read-only hook.
func (w *World) AddObserver(o Observer) { w.observers = append(w.observers, o) }

// AddMetric binds a metric to one object.
func (w *World) AddMetric(m Metric, target *object.Object) {
	w.metrics = append(w.metrics, metricBinding{metric: m, target: target})
}

// ResetMetrics resets all bound metrics.
func (w *World) ResetMetrics() {
	for _, b := range w.metrics {
		b.metric.Reset()
	}
}

// Metrics returns name -> value for all bound metrics.
func (w *World) Metrics() map[string]float64 {
	out := make(map[string]float64, len(w.metrics))
	for _, b := range w.metrics {
		out[b.metric.Name()] = b.metric.Value()
	}
	return out
}

// Elapsed returns the accumulated simulated time in seconds.
func (w *World) Elapsed() float64 { return w.elapsed }

// StepTime advances the whole world by step seconds: generators
// first, then integration in registration order, then observers and
// metrics, then deferred removals.
func (w *World) StepTime(step float64) {
	for _, b := range w.generators {
		p := b.target.Physics()
		if p.IsSleeping() || p.IsStationary() {
			continue
		}
		b.gen.UpdateForce(b.target, step)
	}

	for _, o := range w.objects {
		o.StepTime(step)
	}

	w.elapsed += step

	for _, obs := range w.observers {
		for _, o := range w.objects {
			obs.OnStep(o, w.elapsed)
		}
	}
	for _, b := range w.metrics {
		b.metric.Observe(b.target, w.elapsed)
	}

	w.flushRemovals()
}

// Run steps the world for cfg.Duration at fixed cfg.Dt. The callback,
// if non-nil, runs before each step and may stop the run by returning
// false. Cancelled contexts abort between steps.
func (w *World) Run(ctx context.Context, cfg Config, callback func(t float64) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	steps := int(cfg.Duration / cfg.Dt)
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if callback != nil && !callback(w.elapsed) {
			return nil
		}
		w.StepTime(cfg.Dt)
	}
	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}

func (w *World) flushRemovals() {
	for _, o := range w.pendingRemovals {
		w.remove(o)
	}
	w.pendingRemovals = w.pendingRemovals[:0]
}

func (w *World) remove(o *object.Object) {
	idx := -1
	for i, obj := range w.objects {
		if obj == o {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	w.objects = append(w.objects[:idx], w.objects[idx+1:]...)
	for i := idx; i < len(w.objects); i++ {
		w.objects[i].SetIndex(i)
	}
	o.SetIndex(-1)
	w.RemoveForceGenerators(o)
}

// ShouldCollide implements the tag filter the collision system
// consults before computing any contact: a pair is skipped when either
// side refuses the other's tag. Tag zero means unset.
func ShouldCollide(a, b *object.Object) bool {
	pa, pb := a.Physics(), b.Physics()
	if t := pa.NeverCollideWithTag(); t != 0 && t == pb.CollisionTag() {
		return false
	}
	if t := pb.NeverCollideWithTag(); t != 0 && t == pa.CollisionTag() {
		return false
	}
	return true
}
