package viz

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/bars3d/internal/chart"
	"github.com/san-kum/bars3d/internal/interact"
	"github.com/san-kum/bars3d/internal/session"
)

const (
	panelWidth      = 40
	historyCapacity = 240
	canvasPadX      = 2
	canvasPadY      = 1
	orbitStep       = 0.1
	zoomStep        = 1.1
	minCols         = 10
	minRows         = 5
)

type TickMsg time.Time

// SnapshotFunc writes the current canvas and labels somewhere and returns
// where.
type SnapshotFunc func(c *Canvas, labels []*chart.Label) (string, error)

type Option func(*Model)

func WithTheme(name string) Option       { return func(m *Model) { m.theme = GetTheme(name) } }
func WithLogger(l *slog.Logger) Option   { return func(m *Model) { m.log = l } }
func WithSnapshot(f SnapshotFunc) Option { return func(m *Model) { m.snapshot = f } }

// WithSize sets the initial terminal size used until the first
// tea.WindowSizeMsg arrives.
func WithSize(width, height int) Option {
	return func(m *Model) { m.width, m.height = width, height }
}

// Model hosts one session in the terminal. The session's viewport is the
// canvas measured in braille sub-pixels.
type Model struct {
	session  *session.Session
	canvas   *Canvas
	renderer *Renderer
	interval time.Duration

	width, height int
	running       bool
	showHelp      bool
	theme         Theme
	selected      int
	history       []float64
	status        string
	snapshot      SnapshotFunc
	log           *slog.Logger
	err           error
}

func NewModel(s *session.Session, opts ...Option) Model {
	cfg := s.Config()
	m := Model{
		session:  s,
		interval: time.Second / time.Duration(cfg.FPS),
		width:    80 + panelWidth,
		height:   24,
		running:  true,
		theme:    GetTheme(cfg.Theme),
		history:  make([]float64, 0, historyCapacity),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.resize(m.width, m.height)
	return m
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if err := m.step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	orbit := m.session.Orbit
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.running = !m.running
	case "left", "h":
		orbit.Rotate(-orbitStep, 0)
	case "right", "l":
		orbit.Rotate(orbitStep, 0)
	case "up", "k":
		orbit.Rotate(0, orbitStep)
	case "down", "j":
		orbit.Rotate(0, -orbitStep)
	case "+", "=":
		orbit.Zoom(1 / zoomStep)
	case "-", "_":
		orbit.Zoom(zoomStep)
	case "tab":
		m.selectBar(m.selected + 1)
	case "shift+tab":
		m.selectBar(m.selected - 1)
	case "t":
		m.theme = NextTheme(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	case "r":
		if err := m.session.Reset(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.history = m.history[:0]
		m.selectBar(m.selected)
		m.status = "reset"
		m.redraw()
	case "s":
		m.takeSnapshot()
	}
	return m, nil
}

// step runs one frame, or only redraws while paused so camera moves still
// show.
func (m *Model) step() error {
	if !m.running {
		m.redraw()
		return nil
	}
	if err := m.session.Tick(); err != nil {
		return err
	}
	if b := m.bar(); b != nil {
		m.history = append(m.history, b.Scale())
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
	}
	m.drawLabels()
	return nil
}

func (m *Model) redraw() {
	if err := m.session.Refresh(); err != nil {
		m.log.Warn("refresh", "err", err)
	}
	m.drawLabels()
}

// click maps a terminal cell to the centre of its braille cell in canvas
// sub-pixels and hit-tests there.
func (m *Model) click(x, y int) {
	if m.showHelp {
		return
	}
	col, row := x-canvasPadX, y-canvasPadY
	if col < 0 || row < 0 || col >= m.canvas.Width || row >= m.canvas.Height {
		return
	}
	res := m.session.PointerDown(float64(col*2+1), float64(row*4+2))
	m.status = describe(res)
	if b, ok := res.Target.(*chart.Bar); ok {
		m.selectBar(b.Index)
	}
	if !m.running {
		m.redraw()
	}
}

func describe(res interact.Result) string {
	if res.Mesh == nil {
		return res.Kind.String()
	}
	return fmt.Sprintf("%s %s", res.Kind, res.Mesh.Name)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	cols := width - panelWidth - 1 - 2*canvasPadX
	rows := height - 2*canvasPadY
	if cols < minCols {
		cols = minCols
	}
	if rows < minRows {
		rows = minRows
	}
	m.canvas = NewCanvas(cols, rows)
	m.renderer = NewRenderer(m.canvas)
	m.session.SetRenderer(m.renderer)
	pw, ph := m.canvas.Pixels()
	m.session.Resize(float64(pw), float64(ph))
	m.redraw()
}

// selectBar wraps i into range and clears the history when the selection
// changes.
func (m *Model) selectBar(i int) {
	n := len(m.session.Chart.Bars)
	if n == 0 {
		m.selected = 0
		m.history = m.history[:0]
		return
	}
	i = ((i % n) + n) % n
	if i != m.selected {
		m.history = m.history[:0]
	}
	m.selected = i
}

func (m Model) bar() *chart.Bar {
	bars := m.session.Chart.Bars
	if m.selected < 0 || m.selected >= len(bars) {
		return nil
	}
	return bars[m.selected]
}

// drawLabels centres each label's text on its projected cell.
func (m *Model) drawLabels() {
	for _, l := range m.session.Chart.Labels {
		col, row := labelCell(l.X, l.Y, l.Text)
		m.canvas.PutText(col, row, l.Text)
	}
}

// labelCell maps a label's pixel position to the cell where its text
// starts. Positions left of or above the canvas stay off it.
func labelCell(x, y float64, text string) (col, row int) {
	col = int(math.Floor(x/2)) - len(text)/2
	row = int(math.Floor(y / 4))
	return col, row
}

func (m *Model) takeSnapshot() {
	if m.snapshot == nil {
		m.status = "snapshots disabled"
		return
	}
	path, err := m.snapshot(m.canvas, m.session.Chart.Labels)
	if err != nil {
		m.log.Error("snapshot", "err", err)
		m.status = "snapshot failed"
		return
	}
	m.log.Info("snapshot written", "path", path)
	m.status = "saved " + path
}

func (m Model) View() string {
	canvasView := lipgloss.NewStyle().
		Padding(canvasPadY, canvasPadX).
		Render(m.canvas.Styled(m.theme.Label(), m.theme.Text))
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.panel())
	if m.showHelp {
		return helpText + "\n" + body
	}
	return body
}

func (m Model) panel() string {
	var s strings.Builder
	title := "BARS3D " + strings.ToUpper(string(m.session.Variant()))
	s.WriteString(m.theme.Header().Render(GradientText(title, m.theme.Primary, m.theme.Secondary)) + "\n")

	if m.running {
		s.WriteString(StatusRunning.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(MetricLabel.Render(label) + MetricValue.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2f", m.session.Time()))
	row("Frame", fmt.Sprintf("%d", m.session.Frames()))
	row("Bars", fmt.Sprintf("%d", len(m.session.Chart.Bars)))
	row("Camera", fmt.Sprintf("%.1f", m.session.Camera.Distance()))
	row("Theme", m.theme.Name)
	if m.status != "" {
		row("Last", m.status)
	}

	if b := m.bar(); b != nil {
		s.WriteString("\n" + Separator(panelWidth-4) + "\n\n")
		row("Selected", b.Mesh.Name)
		row("Height", chart.FormatHeight(b.Height))
		row("Scale", fmt.Sprintf("%.2f", b.Scale()))
		if b.Height > 0 {
			s.WriteString(ProgressBar(b.Scale()/(1.5*b.Height), panelWidth-6) + "\n")
		}
		if len(m.history) > 1 {
			plot := asciigraph.Plot(m.history,
				asciigraph.Height(6),
				asciigraph.Width(panelWidth-12),
				asciigraph.Caption(b.Mesh.Name+" scale"))
			s.WriteString(graphStyle.Render(plot) + "\n")
		}
		s.WriteString("\n" + Sparkline(m.session.Chart.Scales(), panelWidth-6) + "\n")
	}

	s.WriteString(KeyHint.Render("SP:Pause R:Reset Q:Quit\nT:Theme  S:Snapshot ?:Help\nTab:Bar  ←→↑↓:Orbit +-:Zoom"))
	return m.theme.Panel().Render(s.String())
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space      - Pause/Resume           ║
║  R          - Rebuild the chart      ║
║  Q          - Quit                   ║
║  Arrows/HJKL- Orbit the camera       ║
║  + / -      - Zoom in / out          ║
║  Tab        - Select next bar        ║
║  Click      - Pick a bar             ║
║  S          - Save SVG snapshot      ║
║  T          - Cycle themes           ║
║  ?          - Toggle this help       ║
╚══════════════════════════════════════╝
`

// Run starts the terminal host and blocks until the user quits.
func Run(s *session.Session, opts ...Option) error {
	p := tea.NewProgram(NewModel(s, opts...), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
