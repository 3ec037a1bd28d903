package layout

// LayoutKind selects a node's main axis: Row means horizontal, Column
// means vertical, Grid positions children into row/column tracks.
type LayoutKind uint8

const (
	Column LayoutKind = iota
	Row
	Grid
)

func (k LayoutKind) String() string {
	switch k {
	case Row:
		return "Row"
	case Grid:
		return "Grid"
	default:
		return "Column"
	}
}

// PositionKind controls whether a child stacks in line with its
// siblings or is positioned against the parent in isolation.
type PositionKind uint8

const (
	ParentDirected PositionKind = iota
	SelfDirected
)

// Store is the read-only property contract the solver queries for
// every node it visits. N is the node handle type the caller's tree
// uses (an entity ID, a pointer, an index — anything comparable the
// caller already has).
//
// Implementations are expected to embed BaseStore[N] and override only
// the properties they care about; BaseStore supplies sensible defaults
// for everything else, so a type with mostly-default properties stays
// embedded and selectively overridden rather than restating every
// method.
type Store[N any] interface {
	LayoutKind(n N) LayoutKind
	PositionKind(n N) PositionKind
	Visible(n N) bool

	Width(n N) Unit
	Height(n N) Unit
	MinWidth(n N) Unit
	MinHeight(n N) Unit
	MaxWidth(n N) Unit
	MaxHeight(n N) Unit

	Left(n N) Unit
	Right(n N) Unit
	Top(n N) Unit
	Bottom(n N) Unit
	MinLeft(n N) Unit
	MaxLeft(n N) Unit
	MinRight(n N) Unit
	MaxRight(n N) Unit
	MinTop(n N) Unit
	MaxTop(n N) Unit
	MinBottom(n N) Unit
	MaxBottom(n N) Unit

	ChildLeft(n N) Unit
	ChildRight(n N) Unit
	ChildTop(n N) Unit
	ChildBottom(n N) Unit
	RowBetween(n N) Unit
	ColBetween(n N) Unit
	Border(n N) Unit

	GridRows(n N) []Unit
	GridCols(n N) []Unit
	RowIndex(n N) int
	ColIndex(n N) int
	RowSpan(n N) int
	ColSpan(n N) int

	// Wrap reports whether overflowing parent-directed children should
	// start a new flex line instead of overflowing the main axis. This
	// is a parent-level toggle; default is no-wrap.
	Wrap(n N) bool
	HorizontalGap(n N) Unit
	VerticalGap(n N) Unit

	// ContentSize is invoked only when the node has Auto on at least
	// one size axis and no children have contributed to that axis.
	// Exactly one of knownWidth/knownHeight is non-nil on any given
	// call. ok reports whether a content size was produced; when false
	// the solver falls back to 0.
	ContentSize(n N, knownWidth, knownHeight *float32) (w, h float32, ok bool)
}

// Tree describes how the solver walks the caller's hierarchy. Children
// must be yielded in declaration order and that order must be stable
// across the measurement, stretch, and positioning passes within a
// single Layout call.
type Tree[N any] interface {
	Children(n N) []N
	Parent(n N) (N, bool)
	IsFirstChild(n N) bool
	IsLastChild(n N) bool
}

// Cache is the keyed rectangle store the solver writes into. N must be
// comparable so it can serve as a map key in the reference
// implementation; callers with a dense, index-addressed cache (e.g. a
// slice keyed by entity generation) are free to implement Cache
// without ever using N as a map key.
type Cache[N comparable] interface {
	Width(n N) float32
	Height(n N) float32
	PosX(n N) float32
	PosY(n N) float32

	SetWidth(n N, width float32)
	SetHeight(n N, height float32)
	SetPosX(n N, posx float32)
	SetPosY(n N, posy float32)
}

// Size is the main/cross extent a node reports to its parent.
type Size struct {
	Main, Cross float32
}

// BaseStore supplies the documented default for every Store property.
// Embed it in a concrete store and override only the properties that
// vary per node.
type BaseStore[N any] struct{}

func (BaseStore[N]) LayoutKind(N) LayoutKind    { return Column }
func (BaseStore[N]) PositionKind(N) PositionKind { return ParentDirected }
func (BaseStore[N]) Visible(N) bool              { return true }

func (BaseStore[N]) Width(N) Unit     { return Stretch(1) }
func (BaseStore[N]) Height(N) Unit    { return Stretch(1) }
func (BaseStore[N]) MinWidth(N) Unit  { return Auto() }
func (BaseStore[N]) MinHeight(N) Unit { return Auto() }
func (BaseStore[N]) MaxWidth(N) Unit  { return Auto() }
func (BaseStore[N]) MaxHeight(N) Unit { return Auto() }

func (BaseStore[N]) Left(N) Unit      { return Auto() }
func (BaseStore[N]) Right(N) Unit     { return Auto() }
func (BaseStore[N]) Top(N) Unit       { return Auto() }
func (BaseStore[N]) Bottom(N) Unit    { return Auto() }
func (BaseStore[N]) MinLeft(N) Unit   { return Auto() }
func (BaseStore[N]) MaxLeft(N) Unit   { return Auto() }
func (BaseStore[N]) MinRight(N) Unit  { return Auto() }
func (BaseStore[N]) MaxRight(N) Unit  { return Auto() }
func (BaseStore[N]) MinTop(N) Unit    { return Auto() }
func (BaseStore[N]) MaxTop(N) Unit    { return Auto() }
func (BaseStore[N]) MinBottom(N) Unit { return Auto() }
func (BaseStore[N]) MaxBottom(N) Unit { return Auto() }

func (BaseStore[N]) ChildLeft(N) Unit   { return Auto() }
func (BaseStore[N]) ChildRight(N) Unit  { return Auto() }
func (BaseStore[N]) ChildTop(N) Unit    { return Auto() }
func (BaseStore[N]) ChildBottom(N) Unit { return Auto() }
func (BaseStore[N]) RowBetween(N) Unit  { return Auto() }
func (BaseStore[N]) ColBetween(N) Unit  { return Auto() }
func (BaseStore[N]) Border(N) Unit      { return Auto() }

func (BaseStore[N]) GridRows(N) []Unit { return nil }
func (BaseStore[N]) GridCols(N) []Unit { return nil }
func (BaseStore[N]) RowIndex(N) int    { return 0 }
func (BaseStore[N]) ColIndex(N) int    { return 0 }
func (BaseStore[N]) RowSpan(N) int     { return 1 }
func (BaseStore[N]) ColSpan(N) int     { return 1 }

func (BaseStore[N]) Wrap(N) bool             { return false }
func (BaseStore[N]) HorizontalGap(N) Unit { return Auto() }
func (BaseStore[N]) VerticalGap(N) Unit   { return Auto() }

func (BaseStore[N]) ContentSize(N, *float32, *float32) (float32, float32, bool) {
	return 0, 0, false
}
