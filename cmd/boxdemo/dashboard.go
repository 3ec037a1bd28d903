package main

import (
	layout "boxlayout"
)

// buildDashboard assembles a sample tree that exercises every layout
// kind the solver supports: a Row/Column nesting for the header and
// body, a Grid for the instrument panel, a self-directed badge
// overlaying the body, and a wrapping tag strip along the bottom.
func buildDashboard() (*layout.BoxNode, []leafInfo) {
	var leaves []leafInfo
	add := func(n *layout.BoxNode, label, color string) *layout.BoxNode {
		leaves = append(leaves, leafInfo{node: n, label: label, style: labelStyle(color)})
		return n
	}

	title := add(layout.Leaf().Height(layout.Fixed(3)), "box layout demo", "63")

	gaugeA := add(layout.Leaf().GridPlacement(0, 0, 1, 1), "CPU", "42")
	gaugeB := add(layout.Leaf().GridPlacement(0, 1, 1, 1), "MEM", "42")
	gaugeC := add(layout.Leaf().GridPlacement(1, 0, 1, 2), "DISK", "42")
	grid := layout.GridBox(
		[]layout.Unit{layout.Stretch(1), layout.Fixed(4)},
		[]layout.Unit{layout.Stretch(1), layout.Stretch(1)},
		gaugeA, gaugeB, gaugeC,
	).Width(layout.Percent(40)).Gap(layout.Fixed(1))

	logPane := add(layout.Leaf().Width(layout.Stretch(1)), "event log", "99")

	badge := add(
		layout.Leaf().Width(layout.Fixed(12)).Height(layout.Fixed(3)).
			Right(layout.Fixed(2)).Top(layout.Fixed(1)).SelfDirected(),
		"LIVE", "205",
	)

	body := layout.RowBox(grid, logPane, badge).
		Height(layout.Stretch(1)).Gap(layout.Fixed(1))

	var tags []*layout.BoxNode
	for _, name := range []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"} {
		tags = append(tags, add(
			layout.Leaf().Width(layout.Auto()).Height(layout.Fixed(3)).ContentSize(contentSizeLabel(name)),
			name, "220",
		))
	}
	tagStrip := layout.RowBox(tags...).
		Height(layout.Fixed(3)).Wrap().Gap(layout.Fixed(1))

	root := layout.Col(title, body, tagStrip).Gap(layout.Fixed(1))
	return root, leaves
}
