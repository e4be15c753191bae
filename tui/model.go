// Package tui animates a traversal in the terminal with bubbletea.
//
// # Description
//
// The model owns one graph, its layout and one traversal engine.
// A tea.Tick advances the engine once per configured interval; the view
// paints the graph on a character canvas coloured by node state, lists the
// frontier, and scrolls the operation log in a viewport.
//
// # Keys
//
//	space  pause / resume        n    single step
//	r      restart (same graph)  g    new random graph
//	a      next algorithm        tab  next end node
//	q      quit                  click two nodes to pick start and end
//
// # Thread Safety
//
// Models are used from the bubbletea event loop only.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathfinder/builder"
	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/core"
	"github.com/katalvlaran/pathfinder/layout"
	"github.com/katalvlaran/pathfinder/traversal"
)

// =============================================================================
// Messages
// =============================================================================

// ConfigMsg replaces the model's configuration, e.g. after a hot reload.
// The graph is rebuilt and the run restarted.
type ConfigMsg struct {
	Config config.Config
}

// tickMsg asks for one step. gen ties it to the run that scheduled it, so
// ticks from a run that has since been restarted are dropped.
type tickMsg struct {
	gen int
}

// =============================================================================
// Model
// =============================================================================

const (
	headerHeight = 1
	logHeight    = 6
	footerHeight = 3 // frontier, status, help
	defaultW     = 80
	defaultH     = 24
)

// Model is the bubbletea model.
type Model struct {
	cfg  config.Config
	seed int64

	graph  *core.Graph[string]
	pos    layout.Positions[string] // unscaled layout
	screen layout.Positions[string] // pos mapped onto the map area, in cells

	algo       traversal.Algorithm
	start, end string
	sel        layout.Selection[string]
	engine     *traversal.Engine[string]
	gen        int
	paused     bool

	log    viewport.Model
	width  int
	height int
	ready  bool

	err      error
	quitting bool
}

// New validates cfg, builds the graph and its layout, and prepares a run.
// The run starts ticking once the program calls Init.
func New(cfg config.Config) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	algo, err := cfg.TraversalAlgorithm()
	if err != nil {
		return Model{}, err
	}

	m := Model{cfg: cfg, seed: cfg.Graph.Seed, algo: algo, width: defaultW, height: defaultH}
	m.log = viewport.New(defaultW, logHeight)
	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.log.Width = msg.Width
		m.log.Height = logHeight
		m.ready = true
		m.rescale()
		return m, nil

	case tickMsg:
		if msg.gen != m.gen || m.paused {
			return m, nil
		}
		m.step()
		return m, m.tick()

	case ConfigMsg:
		algo, err := msg.Config.TraversalAlgorithm()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.cfg, m.seed, m.algo = msg.Config, msg.Config.Graph.Seed, algo
		if m.err = m.rebuild(); m.err != nil {
			return m, nil
		}
		return m, m.tick()

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		v, ok := layout.NodeAt(m.graph.Vertices(), m.screen, float64(msg.X), float64(msg.Y-headerHeight), 1)
		if !ok {
			return m, nil
		}
		m.sel.Pick(v)
		if !m.sel.Complete() {
			return m, nil
		}
		m.start, _ = m.sel.Start()
		m.end, _ = m.sel.End()
		return m, m.restart()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ":
			m.paused = !m.paused
			if !m.paused {
				m.gen++ // drop any tick still in flight
				return m, m.tick()
			}

		case "n":
			m.step()

		case "r":
			return m, m.restart()

		case "g":
			m.seed++
			if m.err = m.rebuild(); m.err != nil {
				return m, nil
			}
			return m, m.tick()

		case "a":
			m.algo = (m.algo + 1) % 3
			return m, m.restart()

		case "tab":
			vs := m.graph.Vertices()
			for i, v := range vs {
				if v == m.end {
					m.end = vs[(i+1)%len(vs)]
					break
				}
			}
			return m, m.restart()

		case "up", "k":
			m.log.ScrollUp(1)

		case "down", "j":
			m.log.ScrollDown(1)
		}
	}

	return m, nil
}

// =============================================================================
// Run control
// =============================================================================

// tick schedules the next step of the current run, or nothing when the run
// is paused or finished.
func (m Model) tick() tea.Cmd {
	if m.paused || m.engine == nil || m.engine.State() != traversal.Running {
		return nil
	}
	gen := m.gen
	d := m.cfg.Interval()
	if d <= 0 {
		return func() tea.Msg { return tickMsg{gen: gen} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// step advances the engine once and refreshes the log pane.
func (m *Model) step() {
	if m.engine == nil || m.engine.State() != traversal.Running {
		return
	}
	if _, err := m.engine.Advance(); err != nil {
		m.err = err
		return
	}
	m.refreshLog()
}

// rebuild regenerates the graph from cfg and the current seed, lays it out,
// resolves endpoints, and restarts.
func (m *Model) rebuild() error {
	opts := append(m.cfg.BuilderOptions(), builder.WithSeed(m.seed))
	g, err := builder.BuildGraph(opts, m.cfg.GraphConstructor())
	if err != nil {
		return err
	}
	pos, err := m.cfg.Positions(g)
	if err != nil {
		return err
	}
	m.graph, m.pos = g, pos
	m.sel.Reset()

	vs := g.Vertices()
	m.start, m.end = vs[0], vs[len(vs)-1]
	if m.cfg.Start != "" && g.HasVertex(m.cfg.Start) {
		m.start = m.cfg.Start
	}
	if m.cfg.End != "" && g.HasVertex(m.cfg.End) {
		m.end = m.cfg.End
	}
	m.rescale()
	m.restart()
	return m.err
}

// restart discards the current engine and starts a fresh run.
func (m *Model) restart() tea.Cmd {
	var opts []traversal.Option
	if m.algo == traversal.DLS {
		opts = append(opts, traversal.WithDepthLimit(m.cfg.DepthLimit))
	}
	e, err := traversal.New[string](m.graph, m.start, m.end, m.algo, opts...)
	if err != nil {
		m.err = err
		return nil
	}
	m.engine, m.err = e, nil
	m.gen++
	m.refreshLog()
	return m.tick()
}

// rescale maps the layout onto the map area in character cells.
func (m *Model) rescale() {
	w, h := m.mapSize()
	widest := 1
	for v := range m.pos {
		widest = max(widest, len(v))
	}
	canvas := layout.Canvas{Width: float64(max(w-widest, 0)), Height: float64(max(h-1, 0))}
	screen, err := layout.Scale(m.pos, canvas)
	if err != nil {
		return
	}
	for v, p := range screen {
		screen[v] = layout.Point{X: float64(int(p.X + 0.5)), Y: float64(int(p.Y + 0.5))}
	}
	m.screen = screen
}

// mapSize is the character area left for the graph.
func (m Model) mapSize() (int, int) {
	return m.width, max(m.height-headerHeight-logHeight-footerHeight, 3)
}

// refreshLog rewrites the log pane and scrolls to the newest entry.
func (m *Model) refreshLog() {
	m.log.SetContent(renderLog(m.engine.Log()))
	m.log.GotoBottom()
}

// =============================================================================
// Accessors (tests and callers)
// =============================================================================

// Engine returns the current run.
func (m Model) Engine() *traversal.Engine[string] { return m.engine }

// Graph returns the current graph.
func (m Model) Graph() *core.Graph[string] { return m.graph }

// Paused reports whether ticking is suspended.
func (m Model) Paused() bool { return m.paused }

// Err returns the last error shown in the status line.
func (m Model) Err() error { return m.err }

// Endpoints returns the current start and end nodes.
func (m Model) Endpoints() (string, string) { return m.start, m.end }
