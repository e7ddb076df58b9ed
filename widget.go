package compose

// Widget is the capability surface the compositor requires from a tree
// node. It deliberately knows nothing about events, styling or input: the
// widget tree, its theming and its event plumbing all live outside this
// package (spec "Out of scope"). Anything satisfying this interface can be
// arranged, rendered and hit-tested.
type Widget interface {
	// Size is the widget's currently reported size.
	Size() Size

	// Z is the widget's base layer order. The compositor's arranger does
	// not read it: a child's order is its parent's order with the
	// layout-assigned Placement.Z appended. A Layout may consult it when
	// choosing Placement.Z values.
	Z() []int

	// Visible reports whether the widget should be included in render.
	Visible() bool

	// Transparent reports whether the renderer should skip this widget's
	// own output while still arranging and hit-testing it.
	Transparent() bool

	// Scroll is subtracted from child absolute positions during
	// arrangement, implementing scrollable containers.
	Scroll() Offset

	// Layout returns the widget's sub-layout, or nil if it has none (a
	// leaf widget).
	Layout() Layout

	// StyleOffset resolves an optional relative displacement for this
	// widget given its container and clip sizes. A widget with no offset
	// behavior returns the zero Offset.
	StyleOffset(container, clip Size) Offset

	// Lines produces exactly Size().H lines, each totalling Size().W
	// cells. The renderer calls this only for visible, non-transparent
	// widgets; GetStyleAt calls it for whichever widget is hit.
	Lines() []Line

	// ClearRenderCache invalidates any cached Lines output. Called by
	// UpdateWidget before re-rendering a single widget.
	ClearRenderCache()
}

// Placement is one child produced by a Layout's Arrange call, in the
// parent's local coordinate space.
type Placement struct {
	Region Region
	Widget Widget
	Z      int
}

// Layout supplies the sub-arrangement of a container widget's children.
// Arrange returns the placements to render plus the full set of widgets it
// considered, including any it chose not to place (they are still tracked
// for show/hide diffing).
type Layout interface {
	Arrange(widget Widget, size Size, scroll Offset) (placements []Placement, considered []Widget)
}
