package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rootviz/internal/scene"
)

const (
	canvasWidth   = 80
	canvasHeight  = 28
	traceCapacity = 240
	rateStep      = 0.05
)

type TickMsg time.Time

// Model is the bubbletea program animating a scene: each tick advances
// the plane angles by their spin rates and renders one frame.
type Model struct {
	sc       *scene.Scene
	cam      *Camera
	canvas   *Canvas
	fps      int
	running  bool
	selected int
	trace    []float64
	elapsed  float64
	frame    *scene.Frame
	err      error
	showHelp bool
}

// NewModel wraps a configured scene for interactive viewing.
func NewModel(sc *scene.Scene, fps int) Model {
	return Model{
		sc:      sc,
		cam:     NewCamera(),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		fps:     fps,
		running: true,
		trace:   make([]float64, 0, traceCapacity),
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
			m.sc.Reset()
			m.trace = m.trace[:0]
			m.elapsed = 0
		case "tab":
			m.selected = (m.selected + 1) % len(m.sc.Planes())
		case "up", "k":
			m.sc.SetRate(m.selected, m.sc.Rate(m.selected)+rateStep)
		case "down", "j":
			m.sc.SetRate(m.selected, m.sc.Rate(m.selected)-rateStep)
		case "x":
			m.cam.RotateX(0.1)
		case "X":
			m.cam.RotateX(-0.1)
		case "y":
			m.cam.RotateY(0.1)
		case "Y":
			m.cam.RotateY(-0.1)
		case "z":
			m.cam.RotateZ(0.1)
		case "Z":
			m.cam.RotateZ(-0.1)
		case "+", "=":
			m.cam.ZoomIn()
		case "-", "_":
			m.cam.ZoomOut()
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			dt := 1.0 / float64(m.fps)
			m.sc.Advance(dt)
			m.elapsed += dt
		}
		f, err := m.sc.Frame()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.frame = f
		m.trace = append(m.trace, f.Points[0][0])
		if len(m.trace) > traceCapacity {
			m.trace = m.trace[1:]
		}
		return m, m.tick()
	}
	return m, nil
}

// Err reports the failure that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) View() string {
	if m.frame == nil {
		return "generating root system..."
	}

	m.canvas.Clear()
	RenderFrame(m.canvas, m.frame, m.cam)

	canvasStyle := lipgloss.NewStyle().Padding(1, 2).Foreground(CurrentTheme.Primary)
	statsStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(CurrentTheme.Muted).Padding(1, 2).Width(42)
	headerStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Width(11)
	valueStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Secondary)
	activeStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Muted).MarginTop(1)

	var s strings.Builder
	s.WriteString(headerStyle.Render("E8 ROOT SYSTEM") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs", m.elapsed)) + "\n")
	s.WriteString(labelStyle.Render("Roots") + valueStyle.Render(fmt.Sprintf("%d", len(m.frame.Points))) + "\n")
	s.WriteString(labelStyle.Render("Edges") + valueStyle.Render(fmt.Sprintf("%d", len(m.frame.Edges))) + "\n")
	s.WriteString(labelStyle.Render("View") + valueStyle.Render(fmt.Sprintf("%dD zoom %.1fx", m.frame.OutDim, m.cam.Zoom)) + "\n")

	if len(m.trace) > 1 {
		chart := asciigraph.Plot(m.trace,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("x(root 0)"))
		s.WriteString("\n" + chart + "\n")
	}

	s.WriteString("\nSPIN PLANES\n")
	for k, p := range m.sc.Planes() {
		line := fmt.Sprintf("(%d,%d) rate %+.2f  angle %+.2f",
			p.I, p.J, m.sc.Rate(k), m.frame.Angles[k])
		if k == m.selected {
			s.WriteString(activeStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\nSP:Pause R:Reset Q:Quit T:Theme\nTab:Plane ↑↓:Rate xyz:Camera ?:Help"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()))

	if m.showHelp {
		return helpOverlay + "\n" + main
	}
	return main
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume spin        ║
║  R        - Reset angles             ║
║  Q        - Quit                     ║
║  Tab      - Select spin plane        ║
║  Up/K     - Faster spin (+0.05)      ║
║  Down/J   - Slower spin (-0.05)      ║
║  x/X y/Y z/Z - Rotate 3D camera      ║
║  +/-      - Zoom                     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
