package viz

import (
	"strings"
	"testing"

	"racecore/internal/storage"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] == 0x2800 {
		t.Error("expected dot at origin")
	}

	c.Clear()
	if c.Grid[0][0] != 0x2800 {
		t.Error("expected empty cell after clear")
	}
}

func TestCanvasIgnoresOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(100, 100)

	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				t.Fatal("out-of-bounds set touched the grid")
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)

	dots := 0
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				dots++
			}
		}
	}
	if dots == 0 {
		t.Error("line drew nothing")
	}
}

func TestPlotSpeedEmpty(t *testing.T) {
	if got := PlotSpeed(nil, 40, 5); got != "no telemetry" {
		t.Errorf("got %q", got)
	}
}

func TestPlotTrack(t *testing.T) {
	frames := []storage.Frame{
		{T: 0, X: 0, Y: 0},
		{T: 1, X: 100, Y: 50},
		{T: 2, X: 200, Y: 0},
	}

	out := PlotTrack(frames, 20, 5)
	if !strings.Contains(out, "x: [0, 200]") {
		t.Errorf("missing bounds footer: %q", out)
	}
}
