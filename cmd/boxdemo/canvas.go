package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas is a fixed-size grid of runes that leaves paint themselves onto:
// no dirty tracking, no cell styling beyond what lipgloss already
// rendered into each box's lines, since real terminal rendering sits
// outside this module's scope.
type canvas struct {
	width, height int
	cells         [][]rune
}

func newCanvas(width, height int) *canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &canvas{width: width, height: height, cells: cells}
}

// paintBox renders a bordered, labeled rectangle at (x, y, w, h) and
// blits it onto the canvas, clipping anything that falls outside
// bounds. style controls the border color and where label sits inside
// the box.
func (c *canvas) paintBox(x, y, w, h int, label string, style lipgloss.Style) {
	if w <= 0 || h <= 0 {
		return
	}
	block := style.Width(w - 2).Height(h - 2).Render(label)
	lines := strings.Split(block, "\n")
	for dy, line := range lines {
		py := y + dy
		if py < 0 || py >= c.height {
			continue
		}
		dx := 0
		for _, r := range line {
			px := x + dx
			if px >= 0 && px < c.width {
				c.cells[py][px] = r
			}
			dx++
		}
	}
}

func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		b.WriteString(string(row))
		if y < len(c.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
