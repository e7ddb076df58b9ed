package compose

import "sort"

// hitEntry is one widget's position for the purposes of point queries:
// its absolute region, and that region clipped by its ancestors.
type hitEntry struct {
	widget  Widget
	cropped Region
	region  Region
}

// frontToBack returns every arranged widget (regardless of visibility or
// transparency — hit-testing sees the whole map, only the renderer
// filters) together with its clipped region, frontmost first.
func (c *Compositor) frontToBack() []hitEntry {
	out := make([]hitEntry, 0, len(c.entries))
	for w, e := range c.entries {
		out = append(out, hitEntry{widget: w, cropped: e.region.Intersection(e.clip), region: e.region})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return c.entries[out[j].widget].order.Less(c.entries[out[i].widget].order)
	})
	return out
}

// GetWidgetAt returns the frontmost widget whose clipped region contains
// (x, y), and its absolute (unclipped) region.
func (c *Compositor) GetWidgetAt(x, y int) (Widget, Region, error) {
	for _, e := range c.frontToBack() {
		if e.cropped.Contains(x, y) {
			return e.widget, e.region, nil
		}
	}
	return nil, Region{}, ErrNoWidget
}

// GetStyleAt returns the style of the cell at (x, y), or the null Style
// if no widget covers that point. Lookup misses are swallowed here: style
// queries back hover highlighting and are expected to be best-effort.
func (c *Compositor) GetStyleAt(x, y int) Style {
	widget, region, err := c.GetWidgetAt(x, y)
	if err != nil {
		return Style{}
	}
	if _, ok := c.regions[widget]; !ok {
		return Style{}
	}

	lines := widget.Lines()
	localX := x - region.X
	localY := y - region.Y
	if localY < 0 || localY >= len(lines) {
		return Style{}
	}

	end := 0
	for _, seg := range lines[localY] {
		end += seg.Width
		if localX < end {
			return seg.Style
		}
	}
	return Style{}
}
