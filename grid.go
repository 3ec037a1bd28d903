package layout

// layoutGrid resolves a node's row/column tracks against its inner box
// and positions each child into the cell union of its row/col index and
// span, using a fixed-and-flexible track model: Fixed/Percent tracks
// take their resolved length first, Stretch/Auto tracks split whatever
// remains.
//
// Grid is treated as a horizontal-main kind: columns are the main axis
// and rows are the cross axis, matching how GridCols/GridRows read.
func layoutGrid[N comparable](
	node N,
	layoutKind LayoutKind,
	mainBudget, crossBudget float32,
	mainOffset, crossOffset float32,
	children []N,
	cache Cache[N],
	tree Tree[N],
	store Store[N],
) (mainSum, crossMax float32) {
	colUnits := store.GridCols(node)
	rowUnits := store.GridRows(node)
	if len(colUnits) == 0 {
		colUnits = []Unit{Stretch(1)}
	}
	if len(rowUnits) == 0 {
		rowUnits = []Unit{Stretch(1)}
	}

	colGap := resolveLength(store.HorizontalGap(node), mainBudget)
	rowGap := resolveLength(store.VerticalGap(node), crossBudget)

	colLengths, colOffsets, colTotal := resolveTracks(colUnits, mainBudget, colGap)
	rowLengths, rowOffsets, rowTotal := resolveTracks(rowUnits, crossBudget, rowGap)

	for _, child := range children {
		if !store.Visible(child) {
			zeroSubtree(child, cache, tree)
			continue
		}

		colStart := clampIndex(store.ColIndex(child), len(colLengths))
		rowStart := clampIndex(store.RowIndex(child), len(rowLengths))
		colSpan := clampSpan(store.ColSpan(child), colStart, len(colLengths))
		rowSpan := clampSpan(store.RowSpan(child), rowStart, len(rowLengths))

		cellWidth := spanExtent(colLengths, colStart, colSpan, colGap)
		cellHeight := spanExtent(rowLengths, rowStart, rowSpan, rowGap)

		Layout(child, Grid, cellWidth, cellHeight, cache, tree, store)
		setCacheMainPos(cache, child, Grid, mainOffset+colOffsets[colStart])
		setCacheCrossPos(cache, child, Grid, crossOffset+rowOffsets[rowStart])
	}

	return colTotal, rowTotal
}

// resolveTracks distributes budget across tracks, Fixed/Percent tracks
// taking their resolved length first and Stretch/Auto tracks sharing
// whatever remains (Auto behaves as Stretch(1) for track sizing, since
// a grid track has no content of its own to measure against). It
// returns each track's length, each track's start offset, and the
// total extent consumed including inter-track gaps.
func resolveTracks(units []Unit, budget float32, gap float32) (lengths []float32, offsets []float32, total float32) {
	n := len(units)
	lengths = make([]float32, n)
	offsets = make([]float32, n)

	gapSpace := gap * float32(n-1)
	if gapSpace < 0 {
		gapSpace = 0
	}
	available := budget - gapSpace
	if available < 0 {
		available = 0
	}

	var nonFlex, flexSum float32
	kinds := make([]bool, n) // true = flexible (Stretch or Auto)
	for i, u := range units {
		switch {
		case u.IsFixed(), u.IsPercent():
			lengths[i] = resolveLength(u, available)
			nonFlex += lengths[i]
		case u.IsStretch():
			kinds[i] = true
			flexSum += u.StretchFactor()
		default:
			kinds[i] = true
			flexSum += 1
		}
	}

	free := available - nonFlex
	if free < 0 {
		free = 0
	}
	var perFlex float32
	if flexSum > 0 {
		perFlex = free / flexSum
	}

	var carry float32
	for i, u := range units {
		if !kinds[i] {
			continue
		}
		factor := u.StretchFactor()
		if u.IsAuto() {
			factor = 1
		}
		lengths[i], carry = remainderAlloc(factor, perFlex, carry)
	}

	var cursor float32
	for i := range units {
		offsets[i] = cursor
		cursor += lengths[i]
		if i < n-1 {
			cursor += gap
		}
	}
	total = cursor
	return lengths, offsets, total
}

func spanExtent(lengths []float32, start, span int, gap float32) float32 {
	var total float32
	for i := start; i < start+span && i < len(lengths); i++ {
		total += lengths[i]
	}
	if span > 1 {
		total += gap * float32(span-1)
	}
	return total
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func clampSpan(span, start, n int) int {
	if span < 1 {
		span = 1
	}
	if start+span > n {
		span = n - start
	}
	if span < 1 {
		span = 1
	}
	return span
}
