package main

import (
	"github.com/charmbracelet/lipgloss"
	tea "github.com/charmbracelet/bubbletea"

	layout "boxlayout"
)

// model is the bubbletea program state: the dashboard tree is built once
// and never mutated; only the root budget changes as the terminal
// resizes.
type model struct {
	root   *layout.BoxNode
	leaves []leafInfo
	cache  *layout.RectCache[*layout.BoxNode]
	width  int
	height int
}

type leafInfo struct {
	node  *layout.BoxNode
	label string
	style lipgloss.Style
}

func newModel(width, height int) model {
	root, leaves := buildDashboard()
	m := model{
		root:   root,
		leaves: leaves,
		cache:  layout.NewRectCache[*layout.BoxNode](len(leaves) + 8),
		width:  width,
		height: height,
	}
	m.relayout()
	return m
}

func (m *model) relayout() {
	layout.Layout(m.root, layout.Row, float32(m.width), float32(m.height), m.cache, layout.BoxTree{}, layout.BoxStore{})
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	cv := newCanvas(m.width, m.height)
	for _, leaf := range m.leaves {
		x, y, w, h := m.cache.Rect(leaf.node)
		cv.paintBox(int(x), int(y), int(w), int(h), leaf.label, leaf.style)
	}
	return cv.String()
}

func labelStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(color)).
		Align(lipgloss.Center, lipgloss.Center)
}

func contentSizeLabel(text string) func(knownWidth, knownHeight *float32) (float32, float32, bool) {
	return func(knownWidth, knownHeight *float32) (float32, float32, bool) {
		return float32(len(text) + 4), 3, true
	}
}
