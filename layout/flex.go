// Package layout provides compose.Layout implementations for arranging
// a container's children, grounded on the teacher's Flex container: a
// linear orientation, an alignment mode, fixed spacing between
// children, and a per-child size that is fixed (positive), auto (zero,
// uses the child's own Size()), or flexible (negative, a fraction of
// the remaining space).
package layout

import (
	compose "github.com/rasterwerk/compose"
)

// Orientation is the axis a Flex lays its children out along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// Alignment controls how children are positioned across the
// cross-axis.
type Alignment int

const (
	Start Alignment = iota
	Center
	End
	Stretch
)

// Child pairs a widget with its requested size along the main axis.
// Size == 0 means "use the widget's own Size()"; Size < 0 means "this
// many parts of the remaining space after fixed and auto children are
// placed"; Size > 0 is an absolute cell count.
type Child struct {
	Widget compose.Widget
	Size   int
	Z      int
}

// Flex arranges a fixed list of children along one axis with uniform
// spacing between them, the way the teacher's Flex container does.
type Flex struct {
	Orientation Orientation
	Alignment   Alignment
	Spacing     int
	Children    []Child
}

// Arrange implements compose.Layout. It ignores the scroll parameter:
// flex itself does not scroll, a scrolling container would wrap one.
func (f Flex) Arrange(widget compose.Widget, size compose.Size, scroll compose.Offset) ([]compose.Placement, []compose.Widget) {
	main := size.W
	if f.Orientation == Vertical {
		main = size.H
	}

	fixed := 0
	flexUnits := 0
	resolved := make([]int, len(f.Children))
	for i, c := range f.Children {
		switch {
		case c.Size > 0:
			resolved[i] = c.Size
			fixed += c.Size
		case c.Size == 0:
			cs := c.Widget.Size()
			natural := cs.W
			if f.Orientation == Vertical {
				natural = cs.H
			}
			resolved[i] = natural
			fixed += natural
		default:
			flexUnits += -c.Size
		}
	}

	spacingTotal := 0
	if len(f.Children) > 1 {
		spacingTotal = f.Spacing * (len(f.Children) - 1)
	}
	remaining := main - fixed - spacingTotal
	if remaining < 0 {
		remaining = 0
	}

	unit := 0
	if flexUnits > 0 {
		unit = remaining / flexUnits
	}
	for i, c := range f.Children {
		if c.Size < 0 {
			resolved[i] = unit * -c.Size
		}
	}

	placements := make([]compose.Placement, 0, len(f.Children))
	considered := make([]compose.Widget, 0, len(f.Children))
	pos := 0
	for i, c := range f.Children {
		length := resolved[i]
		cross := size.H
		crossPos := 0
		if f.Orientation == Vertical {
			cross = size.W
		}
		if f.Alignment != Stretch {
			childCross := cross
			if f.Orientation == Horizontal {
				childCross = c.Widget.Size().H
			} else {
				childCross = c.Widget.Size().W
			}
			switch f.Alignment {
			case Center:
				crossPos = (cross - childCross) / 2
			case End:
				crossPos = cross - childCross
			}
			cross = childCross
		}

		var region compose.Region
		if f.Orientation == Horizontal {
			region = compose.NewRegion(pos, crossPos, length, cross)
		} else {
			region = compose.NewRegion(crossPos, pos, cross, length)
		}

		placements = append(placements, compose.Placement{Region: region, Widget: c.Widget, Z: c.Z})
		considered = append(considered, c.Widget)
		pos += length + f.Spacing
	}

	return placements, considered
}
