// Package trig provides table-based sin/cos lookups and 2D rotation
// helpers for the hot per-frame paths (tire positions, heading
// vectors). Accuracy is ~1e-3 rad, plenty for rendering-adjacent math.
package trig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const tableSize = 4096

// Table holds precomputed sin/cos samples over [0, 2π) with linear
// interpolation between entries.
type Table struct {
	sin []float64
	cos []float64
	n   int
}

var defaultTable = NewTable(tableSize)

// NewTable precomputes a lookup table with n samples.
func NewTable(n int) *Table {
	t := &Table{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}
	for i := 0; i < n; i++ {
		a := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i] = math.Sin(a)
		t.cos[i] = math.Cos(a)
	}
	return t
}

func (t *Table) index(x float64) (i0, i1 int, frac float64) {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	return i % t.n, (i + 1) % t.n, idx - float64(i)
}

// Sin returns the interpolated sine of x (radians).
func (t *Table) Sin(x float64) float64 {
	i0, i1, frac := t.index(x)
	return t.sin[i0]*(1-frac) + t.sin[i1]*frac
}

// Cos returns the interpolated cosine of x (radians).
func (t *Table) Cos(x float64) float64 {
	i0, i1, frac := t.index(x)
	return t.cos[i0]*(1-frac) + t.cos[i1]*frac
}

// SinCos returns both values with a single index computation.
func (t *Table) SinCos(x float64) (sin, cos float64) {
	i0, i1, frac := t.index(x)
	sin = t.sin[i0]*(1-frac) + t.sin[i1]*frac
	cos = t.cos[i0]*(1-frac) + t.cos[i1]*frac
	return
}

// Rotated returns v rotated by angle radians about the z axis,
// counter-clockwise positive. The z component passes through.
func (t *Table) Rotated(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	s, c := t.SinCos(angle)
	return mgl64.Vec3{
		v.X()*c - v.Y()*s,
		v.X()*s + v.Y()*c,
		v.Z(),
	}
}

// Sin uses the package default table.
func Sin(x float64) float64 { return defaultTable.Sin(x) }

// Cos uses the package default table.
func Cos(x float64) float64 { return defaultTable.Cos(x) }

// SinCos uses the package default table.
func SinCos(x float64) (float64, float64) { return defaultTable.SinCos(x) }

// Rotated uses the package default table.
func Rotated(v mgl64.Vec3, angle float64) mgl64.Vec3 { return defaultTable.Rotated(v, angle) }
