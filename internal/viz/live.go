// Package viz renders a live terminal view of a flight.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/stepperanch/projsim/internal/ballistics"
	"github.com/stepperanch/projsim/internal/dynamo"
	"github.com/stepperanch/projsim/internal/flight"
	"github.com/stepperanch/projsim/internal/geom"
	"github.com/stepperanch/projsim/internal/integrators"
)

const (
	canvasWidth  = 70
	canvasHeight = 18
	historyCap   = 600
)

type TickMsg time.Time

// Model holds the running projectile, its trail and the UI state.
type Model struct {
	proj  *ballistics.Projectile
	integ dynamo.Integrator
	cfg   flight.Config

	launchPos  geom.Point
	launchVel  geom.Vec3
	launchSpin geom.Vec3
	params     ballistics.Params

	scenario string
	fps      int

	trail      []geom.Point
	altHistory []float64

	running bool
	done    bool
}

// NewModel sets up a live view for the given configured projectile.
func NewModel(proj *ballistics.Projectile, cfg flight.Config, scenario string, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		proj:       proj,
		integ:      integrators.NewRK4(),
		cfg:        cfg,
		launchPos:  proj.Position(),
		launchVel:  proj.Velocity(),
		launchSpin: proj.Spin(),
		params:     proj.Params(),
		scenario:   scenario,
		fps:        fps,
		trail:      []geom.Point{proj.Position()},
		altHistory: []float64{proj.Height()},
		running:    true,
		done:       proj.Grounded(),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
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
			fresh, err := ballistics.New(m.launchPos, m.launchVel, m.launchSpin, m.params)
			if err == nil {
				m.proj = fresh
				m.trail = []geom.Point{fresh.Position()}
				m.altHistory = []float64{fresh.Height()}
				m.done = fresh.Grounded()
				m.running = true
			}
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			m.advanceFrame()
		}
		return m, m.tick()
	}

	return m, nil
}

// advanceFrame integrates one frame of wall-clock time, several physics
// steps per frame at small dt.
func (m *Model) advanceFrame() {
	steps := int(1.0 / (float64(m.fps) * m.cfg.TimeStep))
	if steps < 1 {
		steps = 1
	}

	for i := 0; i < steps; i++ {
		if m.proj.Time() >= m.cfg.MaxTime {
			m.done = true
			break
		}
		clamped := flight.Advance(m.integ, m.proj, m.cfg.Wind, m.cfg.TimeStep)
		m.trail = append(m.trail, m.proj.Position())
		if clamped {
			m.done = true
			break
		}
	}

	m.altHistory = append(m.altHistory, m.proj.Height())
	if len(m.altHistory) > historyCap {
		m.altHistory = m.altHistory[len(m.altHistory)-historyCap:]
	}
}

func (m Model) View() string {
	canvas := m.renderCanvas()
	stats := m.renderStats()

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(canvas),
		statsStyle.Render(stats),
	)

	graph := ""
	if len(m.altHistory) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.altHistory,
			asciigraph.Height(6),
			asciigraph.Width(canvasWidth),
			asciigraph.Caption("altitude (m)"),
		))
	}

	help := helpStyle.Render("space pause · r reset · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(fmt.Sprintf("projsim live · %s", m.scenario)),
		main,
		graph,
		help,
	)
}

// renderCanvas draws the side view: horizontal range against altitude.
func (m Model) renderCanvas() string {
	grid := make([][]rune, canvasHeight)
	for i := range grid {
		grid[i] = make([]rune, canvasWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	maxR, maxZ := 1.0, 1.0
	for _, p := range m.trail {
		if r := math.Hypot(p.X, p.Y); r > maxR {
			maxR = r
		}
		if p.Z > maxZ {
			maxZ = p.Z
		}
	}

	for i, p := range m.trail {
		col := int(float64(canvasWidth-1) * math.Hypot(p.X, p.Y) / maxR)
		row := canvasHeight - 1 - int(float64(canvasHeight-1)*p.Z/maxZ)
		if col < 0 || col >= canvasWidth || row < 0 || row >= canvasHeight {
			continue
		}
		if i == len(m.trail)-1 {
			grid[row][col] = '●'
		} else if grid[row][col] == ' ' {
			grid[row][col] = '·'
		}
	}

	// Ground line along the bottom edge.
	for j := 0; j < canvasWidth; j++ {
		if grid[canvasHeight-1][j] == ' ' {
			grid[canvasHeight-1][j] = '─'
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m Model) renderStats() string {
	pos := m.proj.Position()
	vel := m.proj.Velocity()

	status := statusFlying.Render("FLYING")
	if m.done {
		status = statusGrounded.Render("DOWN")
	} else if !m.running {
		status = statusPaused.Render("PAUSED")
	}

	rows := []struct {
		label, value string
	}{
		{"status", status},
		{"time", fmt.Sprintf("%.3f s", pos.T)},
		{"position", fmt.Sprintf("(%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z)},
		{"velocity", fmt.Sprintf("(%.2f, %.2f, %.2f)", vel.X, vel.Y, vel.Z)},
		{"speed", fmt.Sprintf("%.2f m/s", m.proj.Speed())},
		{"height", fmt.Sprintf("%.2f m", m.proj.Height())},
		{"range", fmt.Sprintf("%.2f m", m.proj.Range())},
	}

	var sb strings.Builder
	for _, r := range rows {
		sb.WriteString(labelStyle.Render(r.label))
		sb.WriteString(valueStyle.Render(r.value))
		sb.WriteByte('\n')
	}
	return sb.String()
}
