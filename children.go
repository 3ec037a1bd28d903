package layout

// childMeasure accumulates everything the measurement and stretch
// passes learn about one child before positions are written. It lives
// only for the duration of a single layoutLine call.
type childMeasure[N comparable] struct {
	node    N
	posKind PositionKind

	mainBeforeUnit, mainAfterUnit   Unit
	crossBeforeUnit, crossAfterUnit Unit
	mainUnit, crossUnit             Unit

	mainBefore, main, mainAfter   float32
	crossBefore, cross, crossAfter float32

	mainFlexSum  float32
	crossFlexSum float32

	mainNonFlex  float32
	crossNonFlex float32

	mainRemainder  float32
	crossRemainder float32
}

const (
	stretchMainBefore = iota
	stretchMainAfter
	stretchMainSize
)

type stretchSlot struct {
	idx  int
	part int
}

// layoutLine runs the measure/stretch/position passes over one ordered
// run of children that all share a single main-axis budget. It is
// called once directly for an un-wrapped Row or Column, and once per
// flex line when wrapping is enabled.
func layoutLine[N comparable](
	parent N,
	layoutKind LayoutKind,
	mainBudget, crossBudget float32,
	mainOffset, crossOffset float32,
	children []N,
	cache Cache[N],
	tree Tree[N],
	store Store[N],
) (mainSum, crossMax float32) {
	nodeMainBefore, nodeMainAfter, nodeCrossBefore, nodeCrossAfter := childDefaultUnits(store, parent, layoutKind)
	var mainBetween Unit
	if isHorizontalMain(layoutKind) {
		mainBetween = store.ColBetween(parent)
	} else {
		mainBetween = store.RowBetween(parent)
	}

	live := make([]N, 0, len(children))
	for _, c := range children {
		if !store.Visible(c) {
			zeroSubtree(c, cache, tree)
			continue
		}
		live = append(live, c)
	}
	if len(live) == 0 {
		return 0, 0
	}

	measures := make([]childMeasure[N], len(live))
	var stretchOrder []stretchSlot
	var mainNonFlexSum, mainFlexSumShared float32

	for i, child := range live {
		posKind := store.PositionKind(child)
		mainBeforeU, mainAfterU, crossBeforeU, crossAfterU := sideUnits(store, child, layoutKind)
		mainU, crossU := sizeUnits(store, child, layoutKind)

		first := i == 0
		last := i == len(live)-1
		mainBeforeWasAuto, mainAfterWasAuto := mainBeforeU.IsAuto(), mainAfterU.IsAuto()
		crossBeforeWasAuto, crossAfterWasAuto := crossBeforeU.IsAuto(), crossAfterU.IsAuto()

		if mainBeforeU.IsAuto() {
			if first || posKind == SelfDirected {
				mainBeforeU = nodeMainBefore
			} else {
				mainBeforeU = mainBetween
			}
		}
		if mainAfterU.IsAuto() {
			if last || posKind == SelfDirected {
				mainAfterU = nodeMainAfter
			}
		}
		if crossBeforeU.IsAuto() {
			crossBeforeU = nodeCrossBefore
		}
		if crossAfterU.IsAuto() {
			crossAfterU = nodeCrossAfter
		}

		// Self-directed centering: a child positioned in isolation that
		// leaves both sides of an axis unset, while the parent configured
		// only one of the two matching child-space defaults, mirrors the
		// configured default onto the other side, so an unpinned axis
		// centers instead of collapsing against one edge.
		if posKind == SelfDirected {
			if mainBeforeWasAuto && nodeMainBefore.IsAuto() && mainAfterWasAuto && !nodeMainAfter.IsAuto() {
				mainBeforeU = nodeMainAfter
			} else if mainAfterWasAuto && nodeMainAfter.IsAuto() && mainBeforeWasAuto && !nodeMainBefore.IsAuto() {
				mainAfterU = nodeMainBefore
			}
			if crossBeforeWasAuto && nodeCrossBefore.IsAuto() && crossAfterWasAuto && !nodeCrossAfter.IsAuto() {
				crossBeforeU = nodeCrossAfter
			} else if crossAfterWasAuto && nodeCrossAfter.IsAuto() && crossBeforeWasAuto && !nodeCrossBefore.IsAuto() {
				crossAfterU = nodeCrossBefore
			}
		}

		m := &measures[i]
		m.node = child
		m.posKind = posKind
		m.mainBeforeUnit, m.mainAfterUnit = mainBeforeU, mainAfterU
		m.crossBeforeUnit, m.crossAfterUnit = crossBeforeU, crossAfterU
		m.mainUnit, m.crossUnit = mainU, crossU

		minCB, maxCB, minCA, maxCA := sideClampCross(store, child, layoutKind)

		if crossBeforeU.IsStretch() {
			m.crossFlexSum += crossBeforeU.StretchFactor()
		} else {
			m.crossBefore = clampResolved(resolveLength(crossBeforeU, crossBudget), minCB, maxCB, crossBudget)
			m.crossNonFlex += m.crossBefore
		}
		if crossAfterU.IsStretch() {
			m.crossFlexSum += crossAfterU.StretchFactor()
		} else {
			m.crossAfter = clampResolved(resolveLength(crossAfterU, crossBudget), minCA, maxCA, crossBudget)
			m.crossNonFlex += m.crossAfter
		}

		var childCrossBudget float32
		switch {
		case crossU.IsStretch():
			m.crossFlexSum += crossU.StretchFactor()
		case crossU.IsAuto():
			childCrossBudget = 0
		default:
			childCrossBudget = resolveLength(crossU, crossBudget)
			m.cross = childCrossBudget
			m.crossNonFlex += m.cross
		}

		minMB, maxMB, minMA, maxMA := sideClampMain(store, child, layoutKind)

		if mainBeforeU.IsStretch() {
			m.mainFlexSum += mainBeforeU.StretchFactor()
			stretchOrder = append(stretchOrder, stretchSlot{i, stretchMainBefore})
		} else {
			m.mainBefore = clampResolved(resolveLength(mainBeforeU, mainBudget), minMB, maxMB, mainBudget)
			m.mainNonFlex += m.mainBefore
		}
		if mainAfterU.IsStretch() {
			m.mainFlexSum += mainAfterU.StretchFactor()
			stretchOrder = append(stretchOrder, stretchSlot{i, stretchMainAfter})
		} else {
			m.mainAfter = clampResolved(resolveLength(mainAfterU, mainBudget), minMA, maxMA, mainBudget)
			m.mainNonFlex += m.mainAfter
		}

		if mainU.IsStretch() {
			m.mainFlexSum += mainU.StretchFactor()
			stretchOrder = append(stretchOrder, stretchSlot{i, stretchMainSize})
		} else {
			childSize := Layout(child, layoutKind, mainBudget, childCrossBudget, cache, tree, store)
			m.main = childSize.Main
			m.mainNonFlex += m.main
			if crossU.IsAuto() {
				m.cross = childSize.Cross
				m.crossNonFlex += m.cross
			}
		}

		if posKind == ParentDirected {
			mainNonFlexSum += m.mainNonFlex
			mainFlexSumShared += m.mainFlexSum
			mainSum += m.mainNonFlex
		} else if m.mainNonFlex > mainSum {
			mainSum = m.mainNonFlex
		}
		if m.crossNonFlex > crossMax {
			crossMax = m.crossNonFlex
		}
	}

	// Main-axis stretch resolution: distribute whatever main budget
	// remains after non-flex contributions across stretch consumers.
	freeMainShared := mainBudget
	if mainSum > freeMainShared {
		freeMainShared = mainSum
	}
	freeMainShared -= mainNonFlexSum
	if freeMainShared < 0 {
		freeMainShared = 0
	}
	var perFlexMainShared float32
	if mainFlexSumShared > 0 {
		perFlexMainShared = freeMainShared / mainFlexSumShared
	}
	var sharedRemainder float32

	for _, slot := range stretchOrder {
		m := &measures[slot.idx]
		var factor float32
		switch slot.part {
		case stretchMainBefore:
			factor = m.mainBeforeUnit.StretchFactor()
		case stretchMainAfter:
			factor = m.mainAfterUnit.StretchFactor()
		case stretchMainSize:
			factor = m.mainUnit.StretchFactor()
		}

		var allocated float32
		if m.posKind == SelfDirected {
			childFree := mainBudget
			if m.mainNonFlex > childFree {
				childFree = m.mainNonFlex
			}
			childFree -= m.mainNonFlex
			if childFree < 0 {
				childFree = 0
			}
			var childPerFlex float32
			if m.mainFlexSum > 0 {
				childPerFlex = childFree / m.mainFlexSum
			}
			allocated, m.mainRemainder = remainderAlloc(factor, childPerFlex, m.mainRemainder)
		} else {
			allocated, sharedRemainder = remainderAlloc(factor, perFlexMainShared, sharedRemainder)
		}

		child := m.node
		minMB, maxMB, minMA, maxMA := sideClampMain(store, child, layoutKind)
		switch slot.part {
		case stretchMainBefore:
			m.mainBefore = clampResolved(allocated, minMB, maxMB, mainBudget)
			m.mainNonFlex += m.mainBefore
		case stretchMainAfter:
			m.mainAfter = clampResolved(allocated, minMA, maxMA, mainBudget)
			m.mainNonFlex += m.mainAfter
		case stretchMainSize:
			childSize := Layout(child, layoutKind, allocated, m.cross, cache, tree, store)
			m.main = childSize.Main
			m.mainNonFlex += m.main
			if m.crossUnit.IsAuto() {
				m.cross = childSize.Cross
				m.crossNonFlex += m.cross
			}
		}
		if m.posKind == ParentDirected {
			mainSum += allocatedDelta(slot.part, m)
		} else if m.mainNonFlex > mainSum {
			mainSum = m.mainNonFlex
		}
	}

	// Cross-axis stretch resolution: each child resolves its own cross
	// stretch independently, against the line's cross budget.
	crossMax = 0
	for i := range measures {
		m := &measures[i]
		if m.crossFlexSum > 0 {
			freeCross := crossBudget
			if crossMax > freeCross {
				freeCross = crossMax
			}
			if m.crossNonFlex > freeCross {
				freeCross = m.crossNonFlex
			}
			freeCross -= m.crossNonFlex
			if freeCross < 0 {
				freeCross = 0
			}
			perFlexCross := freeCross / m.crossFlexSum

			minCB, maxCB, minCA, maxCA := sideClampCross(store, m.node, layoutKind)
			if m.crossBeforeUnit.IsStretch() {
				var allocated float32
				allocated, m.crossRemainder = remainderAlloc(m.crossBeforeUnit.StretchFactor(), perFlexCross, m.crossRemainder)
				m.crossBefore = clampResolved(allocated, minCB, maxCB, crossBudget)
				m.crossNonFlex += m.crossBefore
			}
			if m.crossAfterUnit.IsStretch() {
				var allocated float32
				allocated, m.crossRemainder = remainderAlloc(m.crossAfterUnit.StretchFactor(), perFlexCross, m.crossRemainder)
				m.crossAfter = clampResolved(allocated, minCA, maxCA, crossBudget)
				m.crossNonFlex += m.crossAfter
			}
			if m.crossUnit.IsStretch() {
				var allocated float32
				allocated, m.crossRemainder = remainderAlloc(m.crossUnit.StretchFactor(), perFlexCross, m.crossRemainder)
				childSize := Layout(m.node, layoutKind, m.main, allocated, cache, tree, store)
				m.cross = childSize.Cross
				m.crossNonFlex += m.cross
			}
		}
		if m.crossNonFlex > crossMax {
			crossMax = m.crossNonFlex
		}
	}

	// Position pass: walk children once more and write final rectangles.
	cursor := mainOffset
	for i := range measures {
		m := &measures[i]
		if m.posKind == ParentDirected {
			cursor += m.mainBefore
			setCacheMainPos(cache, m.node, layoutKind, cursor)
			setCacheCrossPos(cache, m.node, layoutKind, crossOffset+m.crossBefore)
			cursor += m.main + m.mainAfter
		} else {
			setCacheMainPos(cache, m.node, layoutKind, mainOffset+m.mainBefore)
			setCacheCrossPos(cache, m.node, layoutKind, crossOffset+m.crossBefore)
		}
	}

	return mainSum, crossMax
}

// allocatedDelta reports how much a just-resolved stretch slot added to
// the node's stacking sum, so the running mainSum can be kept current
// without re-summing every child on every slot.
func allocatedDelta[N comparable](part int, m *childMeasure[N]) float32 {
	switch part {
	case stretchMainBefore:
		return m.mainBefore
	case stretchMainAfter:
		return m.mainAfter
	default:
		return m.main
	}
}

// childDefaultUnits returns the parent-configured default space a child
// falls back on when its own matching side is Auto (ChildLeft/Right for
// a Row's before/after, ChildTop/Bottom for a Column's), translated into
// ownKind's main/cross terms the same way sideUnits translates a node's
// own left/right/top/bottom.
func childDefaultUnits[N any](store Store[N], node N, ownKind LayoutKind) (mainBefore, mainAfter, crossBefore, crossAfter Unit) {
	if isHorizontalMain(ownKind) {
		return store.ChildLeft(node), store.ChildRight(node), store.ChildTop(node), store.ChildBottom(node)
	}
	return store.ChildTop(node), store.ChildBottom(node), store.ChildLeft(node), store.ChildRight(node)
}

func sideClampMain[N any](store Store[N], node N, ownKind LayoutKind) (minBefore, maxBefore, minAfter, maxAfter Unit) {
	minMB, maxMB, minMA, maxMA, _, _, _, _ := sideClampUnits(store, node, ownKind)
	return minMB, maxMB, minMA, maxMA
}

func sideClampCross[N any](store Store[N], node N, ownKind LayoutKind) (minBefore, maxBefore, minAfter, maxAfter Unit) {
	_, _, _, _, minCB, maxCB, minCA, maxCA := sideClampUnits(store, node, ownKind)
	return minCB, maxCB, minCA, maxCA
}

// layoutWrapped groups children into flex lines that each fit within
// mainBudget, then stacks the lines along the cross axis. Line
// membership is decided from a cheap non-recursive
// estimate of each child's fixed/percent main contribution; Stretch and
// Auto children are treated as zero-width for the purpose of deciding
// where a line breaks, since their true extent isn't known until the
// line they land in has already been chosen.
func layoutWrapped[N comparable](
	parent N,
	layoutKind LayoutKind,
	mainBudget, crossBudget float32,
	mainOffset, crossOffset float32,
	children []N,
	cache Cache[N],
	tree Tree[N],
	store Store[N],
) (mainSum, crossMax float32) {
	var lines [][]N
	var current []N
	var currentMain float32
	for _, child := range children {
		if !store.Visible(child) {
			zeroSubtree(child, cache, tree)
			continue
		}
		contribution := estimateMainExtent(store, child, layoutKind, mainBudget)
		if len(current) > 0 && currentMain+contribution > mainBudget {
			lines = append(lines, current)
			current = nil
			currentMain = 0
		}
		current = append(current, child)
		currentMain += contribution
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return 0, 0
	}

	var lineGapUnit Unit
	if isHorizontalMain(layoutKind) {
		lineGapUnit = store.VerticalGap(parent)
	} else {
		lineGapUnit = store.HorizontalGap(parent)
	}
	lineGap := resolveLength(lineGapUnit, crossBudget)

	crossCursor := crossOffset
	for i, line := range lines {
		ms, cm := layoutLine(parent, layoutKind, mainBudget, crossBudget, mainOffset, crossCursor, line, cache, tree, store)
		if ms > mainSum {
			mainSum = ms
		}
		crossMax += cm
		crossCursor += cm
		if i < len(lines)-1 {
			crossMax += lineGap
			crossCursor += lineGap
		}
	}
	return mainSum, crossMax
}

// estimateMainExtent gives a non-recursive lower bound on a child's
// main-axis footprint (fixed/percent before+size+after only) for
// deciding flex-line membership before real measurement runs.
func estimateMainExtent[N any](store Store[N], child N, ownKind LayoutKind, mainBudget float32) float32 {
	beforeU, afterU, _, _ := sideUnits(store, child, ownKind)
	sizeU, _ := sizeUnits(store, child, ownKind)
	var total float32
	for _, u := range [...]Unit{beforeU, afterU, sizeU} {
		if u.IsFixed() || u.IsPercent() {
			total += resolveLength(u, mainBudget)
		}
	}
	return total
}
