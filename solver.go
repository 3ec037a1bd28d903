package layout

// The solver performs a single recursive depth-first traversal per
// Layout call:
//
//   - Downward: resolve this node's own main/cross size against the
//     budgets handed down by the parent.
//   - Children: measure every child's non-flexible contribution,
//     recursing into non-stretch children so their own subtrees are
//     fully resolved before this node's free space is known.
//   - Stretch: distribute the remaining free space across stretch
//     consumers on main, then on cross, re-invoking Layout for any
//     child whose own size was a stretch factor.
//   - Position: walk children once more, writing their rectangles into
//     the cache relative to this node's inner box.
//   - Up: if this node's own size was Auto, replace it with whatever
//     the children pass produced, and report the final Size upward.
//
// No state survives between calls; every intermediate value above
// lives in per-call scratch slices sized by this node's fan-out.

// Layout computes the position and size of node and everything beneath
// it, writing the results into cache, and returns the main/cross
// extent the parent must attribute to node.
func Layout[N comparable](
	node N,
	parentLayoutKind LayoutKind,
	mainBudget, crossBudget float32,
	cache Cache[N],
	tree Tree[N],
	store Store[N],
) Size {
	if !store.Visible(node) {
		zeroSubtree(node, cache, tree)
		return Size{}
	}

	layoutKind := store.LayoutKind(node)

	mainUnit, crossUnit := sizeUnits(store, node, parentLayoutKind)

	computedMain := resolveOwnAxis(mainUnit, mainBudget)
	// A Fixed cross size is taken as is; any other cross size uses
	// crossBudget as given (layoutLine passes a Percent child's cross
	// size already resolved).
	computedCross := crossBudget
	if crossUnit.IsFixed() {
		computedCross = resolveLength(crossUnit, crossBudget)
	}

	children := tree.Children(node)

	// Content-size feedback: only fires for a leaf with exactly one Auto
	// axis. When both are Auto the children pass below determines both.
	horizontal := isHorizontalMain(parentLayoutKind)
	if len(children) == 0 && mainUnit.IsAuto() && !crossUnit.IsAuto() {
		if horizontal {
			if w, _, ok := store.ContentSize(node, nil, &computedCross); ok {
				computedMain = w
			}
		} else if _, h, ok := store.ContentSize(node, &computedCross, nil); ok {
			computedMain = h
		}
	}
	if len(children) == 0 && crossUnit.IsAuto() && !mainUnit.IsAuto() {
		if horizontal {
			if _, h, ok := store.ContentSize(node, &computedMain, nil); ok {
				computedCross = h
			}
		} else if w, _, ok := store.ContentSize(node, nil, &computedMain); ok {
			computedCross = w
		}
	}

	// Translate into the node's own main/cross terms for sizing its
	// children; these differ from the parent's terms whenever the
	// node's own layout kind disagrees with its parent's.
	var parentMain, parentCross float32
	if isHorizontalMain(parentLayoutKind) != isHorizontalMain(layoutKind) {
		parentMain, parentCross = computedCross, computedMain
	} else {
		parentMain, parentCross = computedMain, computedCross
	}

	border := resolveLength(store.Border(node), parentMain)
	innerMain := parentMain - 2*border
	innerCross := parentCross - 2*border
	if innerMain < 0 {
		innerMain = 0
	}
	if innerCross < 0 {
		innerCross = 0
	}

	var mainSum, crossMax float32
	if len(children) > 0 {
		if layoutKind == Grid {
			mainSum, crossMax = layoutGrid(node, layoutKind, innerMain, innerCross, border, border, children, cache, tree, store)
		} else if store.Wrap(node) {
			mainSum, crossMax = layoutWrapped(node, layoutKind, innerMain, innerCross, border, border, children, cache, tree, store)
		} else {
			mainSum, crossMax = layoutLine(node, layoutKind, innerMain, innerCross, border, border, children, cache, tree, store)
		}
	}

	// Auto size propagation: children win over content_size whenever
	// the node has any — content_size is for leaves.
	if len(children) != 0 {
		if isHorizontalMain(parentLayoutKind) == isHorizontalMain(layoutKind) {
			if mainUnit.IsAuto() {
				computedMain = mainSum
			}
			if crossUnit.IsAuto() {
				computedCross = crossMax
			}
		} else {
			if mainUnit.IsAuto() {
				computedMain = crossMax
			}
			if crossUnit.IsAuto() {
				computedCross = mainSum
			}
		}
		if mainUnit.IsAuto() {
			computedMain += 2 * border
		}
		if crossUnit.IsAuto() {
			computedCross += 2 * border
		}
	}

	minMainU, maxMainU, minCrossU, maxCrossU := sizeClampUnits(store, node, parentLayoutKind)
	computedMain = clampSize(computedMain,
		resolveLength(minMainU, mainBudget), resolveLength(maxMainU, mainBudget),
		!minMainU.IsAuto(), !maxMainU.IsAuto())
	computedCross = clampSize(computedCross,
		resolveLength(minCrossU, crossBudget), resolveLength(maxCrossU, crossBudget),
		!minCrossU.IsAuto(), !maxCrossU.IsAuto())

	setCacheMain(cache, node, parentLayoutKind, computedMain)
	setCacheCross(cache, node, parentLayoutKind, computedCross)

	return Size{Main: computedMain, Cross: computedCross}
}

// zeroSubtree writes a zero rectangle for node and every descendant so
// that an invisible node never leaves a stale rectangle behind.
func zeroSubtree[N comparable](node N, cache Cache[N], tree Tree[N]) {
	cache.SetWidth(node, 0)
	cache.SetHeight(node, 0)
	cache.SetPosX(node, 0)
	cache.SetPosY(node, 0)
	for _, child := range tree.Children(node) {
		zeroSubtree(child, cache, tree)
	}
}

// sizeUnits returns (main, cross) size units for node, where main/cross
// are relative to refKind (either the parent's layout kind, when
// reading a node's own size, or a node's own layout kind, when reading
// one of its children's size).
func sizeUnits[N any](store Store[N], node N, refKind LayoutKind) (main, cross Unit) {
	if isHorizontalMain(refKind) {
		return store.Width(node), store.Height(node)
	}
	return store.Height(node), store.Width(node)
}

// resolveOwnAxis resolves a node's own size unit against its budget:
// Fixed and Percent resolve against the budget, Stretch takes the
// whole budget (the parent will revisit it during its own stretch
// pass), Auto is provisionally 0.
func resolveOwnAxis(u Unit, budget float32) float32 {
	switch {
	case u.IsFixed(), u.IsPercent():
		return resolveLength(u, budget)
	case u.IsStretch():
		return budget
	default:
		return 0
	}
}

func resolveLength(u Unit, parentExtent float32) float32 {
	return resolveToLength(u, parentExtent)
}

// sizeClampUnits returns the min/max units for node's own main and cross
// size axes, in terms of the parent's layout kind (so callers can
// resolve and apply them directly against mainBudget/crossBudget).
func sizeClampUnits[N any](store Store[N], node N, parentLayoutKind LayoutKind) (minMain, maxMain, minCross, maxCross Unit) {
	if isHorizontalMain(parentLayoutKind) {
		return store.MinWidth(node), store.MaxWidth(node), store.MinHeight(node), store.MaxHeight(node)
	}
	return store.MinHeight(node), store.MaxHeight(node), store.MinWidth(node), store.MaxWidth(node)
}

// sideUnits returns the four space units around a child (main-before,
// main-after, cross-before, cross-after) translated into ownKind's
// terms, where ownKind is the layout kind of the PARENT doing the
// positioning (Row: main runs left-right, so before/after are
// left/right and cross is top/bottom; Column: the reverse).
func sideUnits[N any](store Store[N], node N, ownKind LayoutKind) (mainBefore, mainAfter, crossBefore, crossAfter Unit) {
	if isHorizontalMain(ownKind) {
		return store.Left(node), store.Right(node), store.Top(node), store.Bottom(node)
	}
	return store.Top(node), store.Bottom(node), store.Left(node), store.Right(node)
}

// sideClampUnits mirrors sideUnits for the min/max variants of each
// side, used when clamping resolved spacing the same way resolved
// size gets clamped.
func sideClampUnits[N any](store Store[N], node N, ownKind LayoutKind) (minMainBefore, maxMainBefore, minMainAfter, maxMainAfter, minCrossBefore, maxCrossBefore, minCrossAfter, maxCrossAfter Unit) {
	if isHorizontalMain(ownKind) {
		return store.MinLeft(node), store.MaxLeft(node), store.MinRight(node), store.MaxRight(node),
			store.MinTop(node), store.MaxTop(node), store.MinBottom(node), store.MaxBottom(node)
	}
	return store.MinTop(node), store.MaxTop(node), store.MinBottom(node), store.MaxBottom(node),
		store.MinLeft(node), store.MaxLeft(node), store.MinRight(node), store.MaxRight(node)
}

// clampResolved applies clampSize using u's min/max only when they
// aren't Auto, leaving value untouched otherwise.
func clampResolved(value float32, minU, maxU Unit, budget float32) float32 {
	return clampSize(value, resolveLength(minU, budget), resolveLength(maxU, budget), !minU.IsAuto(), !maxU.IsAuto())
}
