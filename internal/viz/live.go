package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"racecore/internal/car"
	"racecore/internal/world"
)

const (
	canvasWidth     = 80
	canvasHeight    = 22
	historyCapacity = 600

	// Frames a key press keeps its input active. Terminals deliver
	// repeats, not key-up events, so inputs decay instead.
	inputHold = 6
)

type TickMsg time.Time

// Model is the interactive driving view.
type Model struct {
	world *world.World
	car   *car.Car
	dt    float64

	canvas *Canvas
	trail  []struct{ x, y int }

	running  bool
	throttle int
	brake    int
	steer    int // positive left, negative right, decays to zero

	speedHistory []float64
	showHelp     bool
}

// NewModel wraps a world and car for interactive driving.
func NewModel(w *world.World, c *car.Car, dt float64) Model {
	return Model{
		world:        w,
		car:          c,
		dt:           dt,
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		trail:        make([]struct{ x, y int }, 0, 200),
		running:      true,
		speedHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "up", "k":
			m.throttle = inputHold
		case "down", "j":
			m.brake = inputHold
		case "left", "h":
			m.steer = inputHold
		case "right", "l":
			m.steer = -inputHold
		case "?":
			m.showHelp = !m.showHelp
		}

	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}

	return m, nil
}

func (m *Model) step() {
	m.car.StepTime()

	switch {
	case m.throttle > 0:
		m.car.Accelerate()
		m.throttle--
	case m.brake > 0:
		m.car.Brake()
		m.brake--
	default:
		m.car.NoAction()
	}

	switch {
	case m.steer > 0:
		m.car.TurnLeft()
		m.steer--
	case m.steer < 0:
		m.car.TurnRight()
		m.steer++
	default:
		m.car.NoSteering()
	}

	m.world.StepTime(m.dt)

	m.speedHistory = append(m.speedHistory, m.car.SpeedInKmh())
	if len(m.speedHistory) > historyCapacity {
		m.speedHistory = m.speedHistory[1:]
	}

	pos := m.car.Object().Position()
	dims := m.world.Dimensions()
	spanX := dims.MaxX - dims.MinX
	spanY := dims.MaxY - dims.MinY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}
	x := int((pos.X() - dims.MinX) / spanX * float64(canvasWidth*2-1))
	y := int(float64(canvasHeight*4-1) * (1 - (pos.Y()-dims.MinY)/spanY))
	m.trail = append(m.trail, struct{ x, y int }{x, y})
	if len(m.trail) > 200 {
		m.trail = m.trail[1:]
	}
}

func (m *Model) reset() {
	m.car.Object().Reset()
	m.car.NoAction()
	m.trail = m.trail[:0]
	m.speedHistory = m.speedHistory[:0]
}

func (m Model) View() string {
	m.canvas.Clear()
	for i := 1; i < len(m.trail); i++ {
		m.canvas.DrawLine(m.trail[i-1].x, m.trail[i-1].y, m.trail[i].x, m.trail[i].y)
	}

	left := canvasStyle.Render(m.canvas.String())
	right := statsStyle.Render(m.statsView())

	view := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	if m.showHelp {
		view += "\n" + helpStyle.Render(
			"arrows/hjkl drive   space pause   r reset   q quit")
	}
	return view
}

func (m Model) statsView() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.car.Object().Name()))
	b.WriteString("\n")

	status := "running"
	if !m.running {
		status = "paused"
	}
	b.WriteString(labelStyle.Render("status") + valueStyle.Render(status) + "\n")
	b.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.1f s", m.world.Elapsed())) + "\n")
	b.WriteString(labelStyle.Render("speed") + valueStyle.Render(fmt.Sprintf("%.1f km/h", m.car.SpeedInKmh())) + "\n")
	b.WriteString(labelStyle.Render("tire angle") + valueStyle.Render(fmt.Sprintf("%.0f deg", m.car.TireAngle())) + "\n")
	b.WriteString(labelStyle.Render("yaw rate") + valueStyle.Render(fmt.Sprintf("%.2f rad/s", m.car.Object().Physics().AngularVelocity())) + "\n")

	if m.car.IsBraking() {
		b.WriteString(offTrackWarn.Render("BRAKING") + "\n")
	}

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory,
			asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("km/h"))
		b.WriteString(graphStyle.Render(chart))
	}

	return b.String()
}
