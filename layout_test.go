package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rect(n *BoxNode, cache *RectCache[*BoxNode]) (x, y, w, h float32) {
	return cache.Rect(n)
}

// S1: pixel width + pixel height lands at the origin under either a
// Row or a Column parent.
func TestPixelSizeUnderRowParent(t *testing.T) {
	child := Leaf().Width(Fixed(100)).Height(Fixed(150))
	root := RowBox(child)

	cache := NewRectCache[*BoxNode](2)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	x, y, w, h := rect(child, cache)
	require.Equal(t, [4]float32{0, 0, 100, 150}, [4]float32{x, y, w, h})
}

func TestPixelSizeUnderColumnParent(t *testing.T) {
	child := Leaf().Width(Fixed(100)).Height(Fixed(150))
	root := Col(child)

	cache := NewRectCache[*BoxNode](2)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	x, y, w, h := rect(child, cache)
	require.Equal(t, [4]float32{0, 0, 100, 150}, [4]float32{x, y, w, h})
}

// S2: percent width + pixel height.
func TestPercentWidth(t *testing.T) {
	child := Leaf().Width(Percent(50)).Height(Fixed(150))
	root := RowBox(child)

	cache := NewRectCache[*BoxNode](2)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	x, y, w, h := rect(child, cache)
	require.Equal(t, [4]float32{0, 0, 300, 150}, [4]float32{x, y, w, h})
}

// S3: stretch width + pixel height fills the parent's main axis.
func TestStretchWidth(t *testing.T) {
	child := Leaf().Width(Stretch(1)).Height(Fixed(150))
	root := RowBox(child)

	cache := NewRectCache[*BoxNode](2)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	x, y, w, h := rect(child, cache)
	require.Equal(t, [4]float32{0, 0, 600, 150}, [4]float32{x, y, w, h})
}

// S4: pixel left offsets the child without affecting its size.
func TestPixelLeftOffset(t *testing.T) {
	child := Leaf().Width(Fixed(100)).Height(Fixed(150)).Left(Fixed(50))
	root := RowBox(child)

	cache := NewRectCache[*BoxNode](2)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	x, y, w, h := rect(child, cache)
	require.Equal(t, [4]float32{50, 0, 100, 150}, [4]float32{x, y, w, h})
}

// S5: min-width clamps a smaller fixed width up.
func TestMinWidthClampsUp(t *testing.T) {
	child := Leaf().Width(Fixed(100)).Height(Fixed(100)).MinWidth(Fixed(200))
	root := RowBox(child)

	cache := NewRectCache[*BoxNode](2)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	x, y, w, h := rect(child, cache)
	require.Equal(t, [4]float32{0, 0, 200, 100}, [4]float32{x, y, w, h})
}

// S6: a self-directed child with its bottom pinned and both horizontal
// sides open centers horizontally and offsets from the pinned bottom.
func TestSelfDirectedCentering(t *testing.T) {
	floating := Leaf().Width(Fixed(100)).Height(Fixed(100)).Bottom(Fixed(10)).SelfDirected()
	root := Col(
		Leaf().Width(Fixed(100)).Height(Fixed(100)),
		Leaf().Width(Fixed(100)).Height(Fixed(100)),
		Leaf().Width(Fixed(100)).Height(Fixed(100)),
		floating,
	).ChildLeft(Stretch(1)).ChildTop(Stretch(1))

	cache := NewRectCache[*BoxNode](8)
	Layout(root, Column, 600, 600, cache, BoxTree{}, BoxStore{})

	x, y, w, h := rect(floating, cache)
	require.Equal(t, float32(250), x, "centered horizontally")
	require.Equal(t, float32(490), y, "positioned so the bottom edge sits 10 above the parent's bottom edge")
	require.Equal(t, float32(100), w)
	require.Equal(t, float32(100), h)
}

// S7: an Auto main axis adopts whatever content_size reports when the
// cross axis is already known.
func TestContentSizeWidth(t *testing.T) {
	child := Leaf().Width(Auto()).Height(Fixed(400)).ContentSize(
		func(knownWidth, knownHeight *float32) (float32, float32, bool) {
			return 100, *knownHeight, true
		},
	)
	root := RowBox(child)

	cache := NewRectCache[*BoxNode](2)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	x, y, w, h := rect(child, cache)
	require.Equal(t, [4]float32{0, 0, 100, 400}, [4]float32{x, y, w, h})
}

// S8: a 2x2 grid with one flexible and one fixed row resolves track
// sizes before placing its children into cell unions.
func TestGrid2x2(t *testing.T) {
	a := Leaf().GridPlacement(0, 0, 1, 1)
	b := Leaf().GridPlacement(0, 1, 1, 1)
	c := Leaf().GridPlacement(1, 0, 1, 1)
	d := Leaf().GridPlacement(1, 1, 1, 1)
	root := GridBox(
		[]Unit{Stretch(1), Fixed(200)},
		[]Unit{Stretch(1), Stretch(1)},
		a, b, c, d,
	)

	cache := NewRectCache[*BoxNode](8)
	Layout(root, Row, 1000, 600, cache, BoxTree{}, BoxStore{})

	for name, n := range map[string]*BoxNode{"a": a, "b": b, "c": c, "d": d} {
		_, _, w, _ := rect(n, cache)
		require.Equal(t, float32(500), w, "column width for %s", name)
	}
	_, _, _, ha := rect(a, cache)
	_, _, _, hb := rect(b, cache)
	_, _, _, hc := rect(c, cache)
	_, _, _, hd := rect(d, cache)
	require.Equal(t, float32(400), ha)
	require.Equal(t, float32(400), hb)
	require.Equal(t, float32(200), hc)
	require.Equal(t, float32(200), hd)

	_, yc, _, _ := rect(c, cache)
	require.Equal(t, float32(400), yc, "second row starts after the first row's resolved height")
	xb, _, _, _ := rect(b, cache)
	require.Equal(t, float32(500), xb, "second column starts after the first column's resolved width")
}

// Invariant 1: extents never go negative, even when a stretch budget
// is exhausted by fixed siblings.
func TestExtentsNeverNegative(t *testing.T) {
	root := RowBox(
		Leaf().Width(Fixed(900)).Height(Fixed(50)),
		Leaf().Width(Stretch(1)).Height(Fixed(50)),
	)

	cache := NewRectCache[*BoxNode](4)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	for _, child := range root.children {
		_, _, w, h := rect(child, cache)
		require.GreaterOrEqual(t, w, float32(0))
		require.GreaterOrEqual(t, h, float32(0))
	}
}

// Invariant 2: re-invoking layout with the same budget against a
// parent with no stretch children is idempotent.
func TestLayoutIsIdempotentWithoutStretch(t *testing.T) {
	root := RowBox(
		Leaf().Width(Fixed(100)).Height(Fixed(50)),
		Leaf().Width(Fixed(200)).Height(Fixed(50)),
	)

	cache := NewRectCache[*BoxNode](4)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})
	first := [2][4]float32{}
	for i, child := range root.children {
		x, y, w, h := rect(child, cache)
		first[i] = [4]float32{x, y, w, h}
	}

	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})
	for i, child := range root.children {
		x, y, w, h := rect(child, cache)
		require.Equal(t, first[i], [4]float32{x, y, w, h})
	}
}

// Invariant 3: resolved stretch allocations consume the free main
// slice exactly, with no rounding residual left over.
func TestStretchAllocationHasNoResidual(t *testing.T) {
	root := RowBox(
		Leaf().Width(Stretch(1)).Height(Fixed(10)),
		Leaf().Width(Stretch(1)).Height(Fixed(10)),
		Leaf().Width(Stretch(1)).Height(Fixed(10)),
	)

	cache := NewRectCache[*BoxNode](4)
	Layout(root, Row, 601, 100, cache, BoxTree{}, BoxStore{})

	var sum float32
	for _, child := range root.children {
		_, _, w, _ := rect(child, cache)
		sum += w
	}
	require.Equal(t, float32(601), sum)
}

// Invariant 4: swapping a parent's layout kind swaps x/y without
// reordering siblings.
func TestSwappingLayoutKindSwapsAxes(t *testing.T) {
	a := Leaf().Width(Fixed(100)).Height(Fixed(100))
	b := Leaf().Width(Fixed(100)).Height(Fixed(100))

	rowRoot := RowBox(a, b)
	rowCache := NewRectCache[*BoxNode](4)
	Layout(rowRoot, Row, 600, 600, rowCache, BoxTree{}, BoxStore{})

	a2 := Leaf().Width(Fixed(100)).Height(Fixed(100))
	b2 := Leaf().Width(Fixed(100)).Height(Fixed(100))
	colRoot := Col(a2, b2)
	colCache := NewRectCache[*BoxNode](4)
	Layout(colRoot, Row, 600, 600, colCache, BoxTree{}, BoxStore{})

	ax, ay, _, _ := rect(a, rowCache)
	ax2, ay2, _, _ := rect(a2, colCache)
	require.Equal(t, ax, ay2)
	require.Equal(t, ay, ax2)

	bx, _, _, _ := rect(b, rowCache)
	_, by2, _, _ := rect(b2, colCache)
	require.Equal(t, bx, by2, "second sibling still follows the first after the axis swap")
}

// Invariant 6: an invisible node and its whole subtree collapse to a
// zero rectangle.
func TestInvisibleSubtreeIsZeroed(t *testing.T) {
	grandchild := Leaf().Width(Fixed(50)).Height(Fixed(50))
	hiddenChild := Col(grandchild).Width(Fixed(100)).Height(Fixed(100)).Hidden()
	root := RowBox(hiddenChild)

	cache := NewRectCache[*BoxNode](4)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	x, y, w, h := rect(hiddenChild, cache)
	require.Equal(t, [4]float32{0, 0, 0, 0}, [4]float32{x, y, w, h})
	gx, gy, gw, gh := rect(grandchild, cache)
	require.Equal(t, [4]float32{0, 0, 0, 0}, [4]float32{gx, gy, gw, gh})
}

// Invariant 5: content_size is invoked at most once per axis per node
// per layout call.
func TestContentSizeCalledAtMostOncePerAxis(t *testing.T) {
	var calls int
	child := Leaf().Width(Auto()).Height(Fixed(200)).ContentSize(
		func(knownWidth, knownHeight *float32) (float32, float32, bool) {
			calls++
			return 42, *knownHeight, true
		},
	)
	root := RowBox(child)

	cache := NewRectCache[*BoxNode](2)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	require.Equal(t, 1, calls)
}

// Auto-sized parents adopt the sum of their children's main-axis
// footprint when they have no explicit size.
func TestAutoParentSumsChildren(t *testing.T) {
	root := Col(
		Leaf().Width(Fixed(80)).Height(Fixed(20)),
		Leaf().Width(Fixed(80)).Height(Fixed(30)),
	).Height(Auto())

	cache := NewRectCache[*BoxNode](4)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	_, _, _, h := rect(root, cache)
	require.Equal(t, float32(50), h)
}

// Nested Row-in-Column percent resolution: a percent width resolves
// against the immediate parent's resolved main extent, not the root
// viewport.
func TestNestedPercentResolvesAgainstImmediateParent(t *testing.T) {
	inner := Leaf().Width(Percent(50)).Height(Fixed(20))
	middle := RowBox(inner).Width(Fixed(200)).Height(Fixed(20))
	root := Col(middle)

	cache := NewRectCache[*BoxNode](4)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	_, _, w, _ := rect(inner, cache)
	require.Equal(t, float32(100), w)
}

func TestBorderInsetsChildBudget(t *testing.T) {
	child := Leaf().Width(Stretch(1)).Height(Stretch(1))
	root := RowBox(child).Width(Fixed(100)).Height(Fixed(100)).Border(Fixed(5))

	cache := NewRectCache[*BoxNode](4)
	Layout(root, Row, 600, 600, cache, BoxTree{}, BoxStore{})

	x, y, w, h := rect(child, cache)
	require.Equal(t, [4]float32{5, 5, 90, 90}, [4]float32{x, y, w, h})
}
