package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathfinder/traversal"
)

// nodeState is the colour class of a vertex in the current frame.
type nodeState int

const (
	stateUnvisited nodeState = iota
	stateFrontier
	stateExpanded
	stateCurrent
	statePath
)

// cell is one character of the map canvas.
type cell struct {
	ch    rune
	style lipgloss.Style
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderMap())
	b.WriteString("\n")
	b.WriteString(m.renderFrontier())
	b.WriteString("\n")
	b.WriteString(m.log.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space pause · n step · r restart · g new graph · a algorithm · tab end node · click start/end · q quit"))
	return b.String()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("pathfinder")
	algo := algoStyle.Render(m.algo.String())
	if m.algo == traversal.DLS {
		algo += statsStyle.Render(fmt.Sprintf(" limit %d", m.cfg.DepthLimit))
	}
	route := fmt.Sprintf("%s → %s", m.start, m.end)
	stats := statsStyle.Render(fmt.Sprintf("%d nodes · %d edges · seed %d",
		m.graph.VertexCount(), m.graph.EdgeCount(), m.seed))
	return strings.Join([]string{title, algo, route, stats}, "  ")
}

// renderMap draws edges as dotted lines and nodes as coloured labels.
func (m Model) renderMap() string {
	w, h := m.mapSize()
	if w <= 0 {
		return ""
	}
	grid := make([][]cell, h)
	for y := range grid {
		grid[y] = make([]cell, w)
		for x := range grid[y] {
			grid[y][x] = cell{ch: ' ', style: edgeStyle}
		}
	}

	states := m.nodeStates()
	onPath := pathEdges(m.engine.Path())

	for _, e := range m.graph.Edges() {
		p, q := m.screen[e.From], m.screen[e.To]
		style := edgeStyle
		if onPath[[2]string{e.From, e.To}] || onPath[[2]string{e.To, e.From}] {
			style = pathEdgeStyle
		}
		plotLine(grid, int(p.X), int(p.Y), int(q.X), int(q.Y), style)
	}

	for _, v := range m.graph.Vertices() {
		p, ok := m.screen[v]
		if !ok {
			continue
		}
		style := nodeStyles[states[v]]
		if v == m.start || v == m.end {
			style = style.Underline(true)
		}
		x, y := int(p.X), int(p.Y)
		for i, r := range v {
			if y >= 0 && y < h && x+i >= 0 && x+i < w {
				grid[y][x+i] = cell{ch: r, style: style}
			}
		}
	}

	rows := make([]string, h)
	for y, row := range grid {
		var rb strings.Builder
		for _, c := range row {
			rb.WriteString(c.style.Render(string(c.ch)))
		}
		rows[y] = rb.String()
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderFrontier() string {
	name := "Stack"
	if m.algo == traversal.BFS {
		name = "Queue"
	}
	return statsStyle.Render(name+": ") + fmt.Sprint(m.engine.Frontier())
}

func (m Model) renderStatus() string {
	if m.err != nil {
		return errorStyle.Render("error: " + m.err.Error())
	}
	e := m.engine
	state := e.State().String()
	if m.paused && e.State() == traversal.Running {
		state = "Paused"
	}
	line := fmt.Sprintf("%s · step %d", state, e.Steps())
	switch e.State() {
	case traversal.Found:
		line += " · path " + strings.Join(e.Path(), " → ")
		return foundStyle.Render(line)
	case traversal.Exhausted:
		line += fmt.Sprintf(" · %s unreachable", m.end)
		if m.algo == traversal.DLS {
			line += fmt.Sprintf(" within depth %d", m.cfg.DepthLimit)
		}
		return exhaustedStyle.Render(line)
	}
	return statsStyle.Render(line)
}

// nodeStates classifies every vertex. Later rules win: frontier, expanded,
// current (the last expanded while the run is live), path.
func (m Model) nodeStates() map[string]nodeState {
	states := make(map[string]nodeState)
	e := m.engine
	for _, v := range e.Frontier() {
		states[v] = stateFrontier
	}
	expanded := e.Expanded()
	for _, v := range expanded {
		states[v] = stateExpanded
	}
	if e.State() == traversal.Running && len(expanded) > 0 {
		states[expanded[len(expanded)-1]] = stateCurrent
	}
	for _, v := range e.Path() {
		states[v] = statePath
	}
	return states
}

// renderLog formats the operation log, one numbered entry per line.
func renderLog(ops []traversal.Operation[string]) string {
	if len(ops) == 0 {
		return statsStyle.Render("(no operations yet)")
	}
	lines := make([]string, len(ops))
	for i, op := range ops {
		style := discoveryStyle
		if op.IsRemoval() {
			style = removalStyle
		}
		lines[i] = fmt.Sprintf("%4d  %s  %s", i+1,
			style.Render(fmt.Sprintf("%-7s", op.Kind)),
			fmt.Sprintf("%s (depth %d)", op.Node, op.Depth))
	}
	return strings.Join(lines, "\n")
}

func pathEdges(path []string) map[[2]string]bool {
	out := make(map[[2]string]bool, len(path))
	for i := 1; i < len(path); i++ {
		out[[2]string{path[i-1], path[i]}] = true
	}
	return out
}

// plotLine marks the cells between (x0,y0) and (x1,y1) with Bresenham's
// algorithm. Cells outside the grid are skipped.
func plotLine(grid [][]cell, x0, y0, x1, y1 int, style lipgloss.Style) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) {
			grid[y0][x0] = cell{ch: '·', style: style}
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
