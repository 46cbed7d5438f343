package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"racecore/internal/storage"
)

// PlotSpeed renders an ascii chart of speed over a recorded run.
func PlotSpeed(frames []storage.Frame, width, height int) string {
	if len(frames) == 0 {
		return "no telemetry"
	}

	data := make([]float64, len(frames))
	for i, f := range frames {
		data[i] = f.SpeedKmh
	}

	caption := fmt.Sprintf("speed (km/h), %.1fs run", frames[len(frames)-1].T)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// PlotAngularVelocity renders an ascii chart of yaw rate over a run.
func PlotAngularVelocity(frames []storage.Frame, width, height int) string {
	if len(frames) == 0 {
		return "no telemetry"
	}

	data := make([]float64, len(frames))
	for i, f := range frames {
		data[i] = f.AngularVelocity
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("angular velocity (rad/s)"),
	)
}

// PlotTrack draws the travelled path on a braille canvas, scaled to
// fit the given character dimensions.
func PlotTrack(frames []storage.Frame, width, height int) string {
	if len(frames) == 0 {
		return "no telemetry"
	}

	minX, maxX := frames[0].X, frames[0].X
	minY, maxY := frames[0].Y, frames[0].Y
	for _, f := range frames {
		if f.X < minX {
			minX = f.X
		}
		if f.X > maxX {
			maxX = f.X
		}
		if f.Y < minY {
			minY = f.Y
		}
		if f.Y > maxY {
			maxY = f.Y
		}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	c := NewCanvas(width, height)
	pw := float64(width*2 - 1)
	ph := float64(height*4 - 1)

	var prevX, prevY int
	for i, f := range frames {
		// Flip y so larger world y draws higher on screen.
		x := int((f.X - minX) / spanX * pw)
		y := int(ph - (f.Y-minY)/spanY*ph)
		if i > 0 {
			c.DrawLine(prevX, prevY, x, y)
		}
		prevX, prevY = x, y
	}

	var b strings.Builder
	b.WriteString(c.String())
	b.WriteString(fmt.Sprintf("x: [%.0f, %.0f]  y: [%.0f, %.0f]\n", minX, maxX, minY, maxY))
	return b.String()
}
