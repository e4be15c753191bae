package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	algoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	foundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	exhaustedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	edgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	pathEdgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	discoveryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75"))

	removalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	// node fill colours match the DOT export: grey, blue, green, red.
	nodeStyles = map[nodeState]lipgloss.Style{
		stateUnvisited: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		stateFrontier:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		stateExpanded:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("27")).Bold(true),
		stateCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("42")).Bold(true),
		statePath:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Bold(true),
	}
)
