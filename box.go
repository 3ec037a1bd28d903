package layout

// BoxNode is the reference in-memory node, built fluently in the
// spirit of a chainable-modifier builder API. It exists for
// tests and the demo program; callers with their own tree (an ECS, a
// scene graph, a widget hierarchy) implement Store/Tree/Cache directly
// against their own types instead.
type BoxNode struct {
	parent   *BoxNode
	children []*BoxNode

	layoutKind   LayoutKind
	positionKind PositionKind
	visible      bool

	width, height             Unit
	minWidth, maxWidth         Unit
	minHeight, maxHeight       Unit

	left, right, top, bottom Unit
	minLeft, maxLeft         Unit
	minRight, maxRight       Unit
	minTop, maxTop           Unit
	minBottom, maxBottom     Unit

	childLeft, childRight Unit
	childTop, childBottom Unit
	rowBetween, colBetween Unit
	border                 Unit

	gridRows, gridCols               []Unit
	rowIndex, colIndex                int
	rowSpan, colSpan                  int

	wrap                         bool
	horizontalGap, verticalGap   Unit

	contentSizeFn func(knownWidth, knownHeight *float32) (w, h float32, ok bool)

	// Tag is free for callers to stash whatever identifies this node in
	// their own domain (a widget name, a debug label); the solver never
	// reads it.
	Tag string
}

func newBoxNode(kind LayoutKind, children ...*BoxNode) *BoxNode {
	n := &BoxNode{
		layoutKind:   kind,
		positionKind: ParentDirected,
		visible:      true,
		width:        Stretch(1),
		height:       Stretch(1),
		minWidth:     Auto(), maxWidth: Auto(),
		minHeight: Auto(), maxHeight: Auto(),
		left: Auto(), right: Auto(), top: Auto(), bottom: Auto(),
		minLeft: Auto(), maxLeft: Auto(), minRight: Auto(), maxRight: Auto(),
		minTop: Auto(), maxTop: Auto(), minBottom: Auto(), maxBottom: Auto(),
		childLeft: Auto(), childRight: Auto(), childTop: Auto(), childBottom: Auto(),
		rowBetween: Auto(), colBetween: Auto(), border: Auto(),
		rowSpan: 1, colSpan: 1,
		horizontalGap: Auto(), verticalGap: Auto(),
		children: children,
	}
	for _, c := range children {
		c.parent = n
	}
	return n
}

// Col creates a vertical container (children stack top to bottom).
func Col(children ...*BoxNode) *BoxNode { return newBoxNode(Column, children...) }

// RowBox creates a horizontal container (children stack left to right).
// Named RowBox rather than Row to avoid colliding with the LayoutKind
// constant of the same name.
func RowBox(children ...*BoxNode) *BoxNode { return newBoxNode(Row, children...) }

// GridBox creates a grid container with the given row and column
// tracks.
func GridBox(rows, cols []Unit, children ...*BoxNode) *BoxNode {
	n := newBoxNode(Grid, children...)
	n.gridRows = rows
	n.gridCols = cols
	return n
}

// Leaf creates a childless node — text, an icon, a gauge, anything the
// caller's renderer draws once the solver has placed it.
func Leaf() *BoxNode { return newBoxNode(Column) }

func (n *BoxNode) AddChild(child *BoxNode) *BoxNode {
	child.parent = n
	n.children = append(n.children, child)
	return n
}

// Chainable modifiers, in the usual Gap/Pad/Width/Height/Percent/Grow
// fluent style.

func (n *BoxNode) Width(u Unit) *BoxNode  { n.width = u; return n }
func (n *BoxNode) Height(u Unit) *BoxNode { n.height = u; return n }
func (n *BoxNode) MinWidth(u Unit) *BoxNode  { n.minWidth = u; return n }
func (n *BoxNode) MaxWidth(u Unit) *BoxNode  { n.maxWidth = u; return n }
func (n *BoxNode) MinHeight(u Unit) *BoxNode { n.minHeight = u; return n }
func (n *BoxNode) MaxHeight(u Unit) *BoxNode { n.maxHeight = u; return n }

func (n *BoxNode) Left(u Unit) *BoxNode   { n.left = u; return n }
func (n *BoxNode) Right(u Unit) *BoxNode  { n.right = u; return n }
func (n *BoxNode) Top(u Unit) *BoxNode    { n.top = u; return n }
func (n *BoxNode) Bottom(u Unit) *BoxNode { n.bottom = u; return n }

func (n *BoxNode) MinLeft(u Unit) *BoxNode   { n.minLeft = u; return n }
func (n *BoxNode) MaxLeft(u Unit) *BoxNode   { n.maxLeft = u; return n }
func (n *BoxNode) MinRight(u Unit) *BoxNode  { n.minRight = u; return n }
func (n *BoxNode) MaxRight(u Unit) *BoxNode  { n.maxRight = u; return n }
func (n *BoxNode) MinTop(u Unit) *BoxNode    { n.minTop = u; return n }
func (n *BoxNode) MaxTop(u Unit) *BoxNode    { n.maxTop = u; return n }
func (n *BoxNode) MinBottom(u Unit) *BoxNode { n.minBottom = u; return n }
func (n *BoxNode) MaxBottom(u Unit) *BoxNode { n.maxBottom = u; return n }

// Pad sets child_left/child_right to horizontal and
// child_top/child_bottom to vertical.
func (n *BoxNode) Pad(horizontal, vertical Unit) *BoxNode {
	n.childLeft, n.childRight = horizontal, horizontal
	n.childTop, n.childBottom = vertical, vertical
	return n
}

func (n *BoxNode) ChildLeft(u Unit) *BoxNode   { n.childLeft = u; return n }
func (n *BoxNode) ChildRight(u Unit) *BoxNode  { n.childRight = u; return n }
func (n *BoxNode) ChildTop(u Unit) *BoxNode    { n.childTop = u; return n }
func (n *BoxNode) ChildBottom(u Unit) *BoxNode { n.childBottom = u; return n }
func (n *BoxNode) RowBetween(u Unit) *BoxNode  { n.rowBetween = u; return n }
func (n *BoxNode) ColBetween(u Unit) *BoxNode  { n.colBetween = u; return n }

// Gap is shorthand for RowBetween+ColBetween set to the same value.
func (n *BoxNode) Gap(u Unit) *BoxNode {
	n.rowBetween, n.colBetween = u, u
	return n
}

func (n *BoxNode) Border(u Unit) *BoxNode { n.border = u; return n }

func (n *BoxNode) SelfDirected() *BoxNode { n.positionKind = SelfDirected; return n }
func (n *BoxNode) Hidden() *BoxNode       { n.visible = false; return n }

func (n *BoxNode) Wrap() *BoxNode                   { n.wrap = true; return n }
func (n *BoxNode) HorizontalGap(u Unit) *BoxNode { n.horizontalGap = u; return n }
func (n *BoxNode) VerticalGap(u Unit) *BoxNode   { n.verticalGap = u; return n }

// GridPlacement sets where this node sits in its parent's grid tracks.
func (n *BoxNode) GridPlacement(row, col, rowSpan, colSpan int) *BoxNode {
	n.rowIndex, n.colIndex = row, col
	n.rowSpan, n.colSpan = rowSpan, colSpan
	return n
}

// ContentSize registers the callback the solver invokes when this
// node's size is Auto on exactly one axis and the other axis is known.
func (n *BoxNode) ContentSize(fn func(knownWidth, knownHeight *float32) (w, h float32, ok bool)) *BoxNode {
	n.contentSizeFn = fn
	return n
}

func (n *BoxNode) Tagged(tag string) *BoxNode { n.Tag = tag; return n }

// BoxStore implements Store[*BoxNode] by reading the fields a BoxNode
// builder chain set. It has no state of its own.
type BoxStore struct{}

func (BoxStore) LayoutKind(n *BoxNode) LayoutKind     { return n.layoutKind }
func (BoxStore) PositionKind(n *BoxNode) PositionKind { return n.positionKind }
func (BoxStore) Visible(n *BoxNode) bool              { return n.visible }

func (BoxStore) Width(n *BoxNode) Unit     { return n.width }
func (BoxStore) Height(n *BoxNode) Unit    { return n.height }
func (BoxStore) MinWidth(n *BoxNode) Unit  { return n.minWidth }
func (BoxStore) MinHeight(n *BoxNode) Unit { return n.minHeight }
func (BoxStore) MaxWidth(n *BoxNode) Unit  { return n.maxWidth }
func (BoxStore) MaxHeight(n *BoxNode) Unit { return n.maxHeight }

func (BoxStore) Left(n *BoxNode) Unit      { return n.left }
func (BoxStore) Right(n *BoxNode) Unit     { return n.right }
func (BoxStore) Top(n *BoxNode) Unit       { return n.top }
func (BoxStore) Bottom(n *BoxNode) Unit    { return n.bottom }
func (BoxStore) MinLeft(n *BoxNode) Unit   { return n.minLeft }
func (BoxStore) MaxLeft(n *BoxNode) Unit   { return n.maxLeft }
func (BoxStore) MinRight(n *BoxNode) Unit  { return n.minRight }
func (BoxStore) MaxRight(n *BoxNode) Unit  { return n.maxRight }
func (BoxStore) MinTop(n *BoxNode) Unit    { return n.minTop }
func (BoxStore) MaxTop(n *BoxNode) Unit    { return n.maxTop }
func (BoxStore) MinBottom(n *BoxNode) Unit { return n.minBottom }
func (BoxStore) MaxBottom(n *BoxNode) Unit { return n.maxBottom }

func (BoxStore) ChildLeft(n *BoxNode) Unit   { return n.childLeft }
func (BoxStore) ChildRight(n *BoxNode) Unit  { return n.childRight }
func (BoxStore) ChildTop(n *BoxNode) Unit    { return n.childTop }
func (BoxStore) ChildBottom(n *BoxNode) Unit { return n.childBottom }
func (BoxStore) RowBetween(n *BoxNode) Unit  { return n.rowBetween }
func (BoxStore) ColBetween(n *BoxNode) Unit  { return n.colBetween }
func (BoxStore) Border(n *BoxNode) Unit      { return n.border }

func (BoxStore) GridRows(n *BoxNode) []Unit { return n.gridRows }
func (BoxStore) GridCols(n *BoxNode) []Unit { return n.gridCols }
func (BoxStore) RowIndex(n *BoxNode) int    { return n.rowIndex }
func (BoxStore) ColIndex(n *BoxNode) int    { return n.colIndex }
func (BoxStore) RowSpan(n *BoxNode) int     { return n.rowSpan }
func (BoxStore) ColSpan(n *BoxNode) int     { return n.colSpan }

func (BoxStore) Wrap(n *BoxNode) bool             { return n.wrap }
func (BoxStore) HorizontalGap(n *BoxNode) Unit { return n.horizontalGap }
func (BoxStore) VerticalGap(n *BoxNode) Unit   { return n.verticalGap }

func (BoxStore) ContentSize(n *BoxNode, knownWidth, knownHeight *float32) (w, h float32, ok bool) {
	if n.contentSizeFn == nil {
		return 0, 0, false
	}
	return n.contentSizeFn(knownWidth, knownHeight)
}

// BoxTree implements Tree[*BoxNode] over the parent/children pointers a
// BoxNode builder chain wires up.
type BoxTree struct{}

func (BoxTree) Children(n *BoxNode) []*BoxNode { return n.children }

func (BoxTree) Parent(n *BoxNode) (*BoxNode, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func (BoxTree) IsFirstChild(n *BoxNode) bool {
	if n.parent == nil || len(n.parent.children) == 0 {
		return false
	}
	return n.parent.children[0] == n
}

func (BoxTree) IsLastChild(n *BoxNode) bool {
	if n.parent == nil || len(n.parent.children) == 0 {
		return false
	}
	return n.parent.children[len(n.parent.children)-1] == n
}
