package metrics

import (
	"github.com/go-gl/mathgl/mgl64"

	"racecore/internal/object"
)

// Distance accumulates the path length an object travels.
type Distance struct {
	name    string
	prev    mgl64.Vec3
	total   float64
	samples int
}

func NewDistance() *Distance {
	return &Distance{name: "distance"}
}

func (d *Distance) Name() string { return d.name }

func (d *Distance) Observe(obj *object.Object, t float64) {
	pos := obj.Position()
	if d.samples > 0 {
		d.total += pos.Sub(d.prev).Len()
	}
	d.prev = pos
	d.samples++
}

func (d *Distance) Value() float64 { return d.total }

func (d *Distance) Reset() {
	d.prev = mgl64.Vec3{}
	d.total = 0
	d.samples = 0
}
