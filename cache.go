package layout

// isHorizontalMain reports whether kind runs its main axis left-right.
// Row does; Grid is conventionally anchored the same way it reads
// (columns run horizontally), so it shares Row's axis mapping; Column
// is the only vertical-main kind.
func isHorizontalMain(kind LayoutKind) bool {
	return kind != Column
}

// cacheMain reads the extent along the parent's main axis: width if the
// parent lays out horizontally, height otherwise.
func cacheMain[N comparable](c Cache[N], n N, parentKind LayoutKind) float32 {
	if isHorizontalMain(parentKind) {
		return c.Width(n)
	}
	return c.Height(n)
}

// cacheCross reads the extent along the parent's cross axis.
func cacheCross[N comparable](c Cache[N], n N, parentKind LayoutKind) float32 {
	if isHorizontalMain(parentKind) {
		return c.Height(n)
	}
	return c.Width(n)
}

func setCacheMain[N comparable](c Cache[N], n N, parentKind LayoutKind, v float32) {
	if isHorizontalMain(parentKind) {
		c.SetWidth(n, v)
	} else {
		c.SetHeight(n, v)
	}
}

func setCacheCross[N comparable](c Cache[N], n N, parentKind LayoutKind, v float32) {
	if isHorizontalMain(parentKind) {
		c.SetHeight(n, v)
	} else {
		c.SetWidth(n, v)
	}
}

func setCacheMainPos[N comparable](c Cache[N], n N, parentKind LayoutKind, v float32) {
	if isHorizontalMain(parentKind) {
		c.SetPosX(n, v)
	} else {
		c.SetPosY(n, v)
	}
}

func setCacheCrossPos[N comparable](c Cache[N], n N, parentKind LayoutKind, v float32) {
	if isHorizontalMain(parentKind) {
		c.SetPosY(n, v)
	} else {
		c.SetPosX(n, v)
	}
}

// cachedRect is one node's cached rectangle, expressed in its parent's
// coordinate space.
type cachedRect struct {
	width, height float32
	posx, posy    float32
}

// RectCache is the reference map-backed implementation of Cache. It
// accepts writes for any key the tree yields: a map can always grow to
// admit a new key, so reads for keys that were never written return the
// Go zero value (0), a safe fallback for an unrecognized node.
type RectCache[N comparable] struct {
	rects map[N]cachedRect
}

// NewRectCache creates an empty cache, optionally pre-sized for a known
// node count to avoid incremental map growth during the first layout
// pass (the same reason a slice gets capacity-hinted from expected
// fan-out).
func NewRectCache[N comparable](sizeHint int) *RectCache[N] {
	return &RectCache[N]{rects: make(map[N]cachedRect, sizeHint)}
}

func (c *RectCache[N]) Width(n N) float32  { return c.rects[n].width }
func (c *RectCache[N]) Height(n N) float32 { return c.rects[n].height }
func (c *RectCache[N]) PosX(n N) float32   { return c.rects[n].posx }
func (c *RectCache[N]) PosY(n N) float32   { return c.rects[n].posy }

func (c *RectCache[N]) SetWidth(n N, width float32) {
	r := c.rects[n]
	r.width = width
	c.rects[n] = r
}

func (c *RectCache[N]) SetHeight(n N, height float32) {
	r := c.rects[n]
	r.height = height
	c.rects[n] = r
}

func (c *RectCache[N]) SetPosX(n N, posx float32) {
	r := c.rects[n]
	r.posx = posx
	c.rects[n] = r
}

func (c *RectCache[N]) SetPosY(n N, posy float32) {
	r := c.rects[n]
	r.posy = posy
	c.rects[n] = r
}

// Rect returns the node's full cached rectangle as a convenience for
// callers that don't want to make four separate accessor calls.
func (c *RectCache[N]) Rect(n N) (posx, posy, width, height float32) {
	r := c.rects[n]
	return r.posx, r.posy, r.width, r.height
}
