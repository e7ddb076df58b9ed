package compose

// Offset is a relative displacement in cells, positive X moving right and
// positive Y moving down.
type Offset struct {
	DX, DY int
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{o.DX + other.DX, o.DY + other.DY}
}

// Size is a width/height pair in cells.
type Size struct {
	W, H int
}

// Region is an axis-aligned rectangle in absolute screen coordinates.
// X and Y are the top-left corner; W and H are always non-negative.
type Region struct {
	X, Y, W, H int
}

// NewRegion builds a region, clamping negative width or height to zero so an
// empty region never reports an inverted extent.
func NewRegion(x, y, w, h int) Region {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Region{X: x, Y: y, W: w, H: h}
}

// Empty reports whether the region covers no cells.
func (r Region) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Right is the x coordinate one past the region's right edge.
func (r Region) Right() int { return r.X + r.W }

// Bottom is the y coordinate one past the region's bottom edge.
func (r Region) Bottom() int { return r.Y + r.H }

// Contains reports whether the point (x, y) falls within the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Translate shifts the region by an offset.
func (r Region) Translate(o Offset) Region {
	return Region{X: r.X + o.DX, Y: r.Y + o.DY, W: r.W, H: r.H}
}

// Intersection returns the overlapping area of two regions. The result is
// empty (W == 0 or H == 0) when the regions do not overlap.
func (r Region) Intersection(other Region) Region {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	return NewRegion(x1, y1, x2-x1, y2-y1)
}

// Union returns the smallest region covering both inputs.
func (r Region) Union(other Region) Region {
	if r.Empty() {
		return other
	}
	if other.Empty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return NewRegion(x1, y1, x2-x1, y2-y1)
}

// Overlaps reports whether two regions share at least one cell.
func (r Region) Overlaps(other Region) bool {
	return !r.Intersection(other).Empty()
}

// XRange returns the half-open column extent [x1, x2) of the region.
func (r Region) XRange() (x1, x2 int) {
	return r.X, r.Right()
}

// YRange returns the half-open row extent [y1, y2) of the region.
func (r Region) YRange() (y1, y2 int) {
	return r.Y, r.Bottom()
}
