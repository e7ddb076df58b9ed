package compose

import "sort"

// renderEntry is the compositor's authoritative record for one arranged
// widget: its absolute region, its depth-order key, the clip rectangle
// inherited from its ancestors, and the virtual size driving scrollbars.
type renderEntry struct {
	region      Region
	order       Order
	clip        Region
	virtualSize Size
}

// regionClip is the smaller projection of a renderEntry kept for partial
// update, per spec invariant 5 (regions[w] agrees with map[w].region/clip).
type regionClip struct {
	Region Region
	Clip   Region
}

// arrangement is the result of one arrangeRoot walk: every widget the
// walk encountered, and the subset that actually occupies a region.
type arrangement struct {
	entries map[Widget]renderEntry
	widgets map[Widget]struct{}
}

// arrangeRoot recursively computes absolute regions for root and its
// descendants, starting at the origin with the full screen as both region
// and clip and an empty order tuple.
func arrangeRoot(root Widget, size Size) arrangement {
	a := arrangement{
		entries: make(map[Widget]renderEntry),
		widgets: make(map[Widget]struct{}),
	}
	if root == nil {
		return a
	}
	screen := NewRegion(0, 0, size.W, size.H)
	addWidget(&a, root, screen, nil, screen)
	return a
}

// addWidget implements spec.md 4.1's recursive arrange step for widget w,
// placed at local region r with depth-order prefix order and inherited
// clip rectangle clip. It returns w's virtual size in its own local
// coordinate space (its own extent unioned with every descendant's).
func addWidget(a *arrangement, w Widget, r Region, order Order, clip Region) Size {
	a.widgets[w] = struct{}{}

	delta := w.StyleOffset(Size{W: r.W, H: r.H}, Size{W: clip.W, H: clip.H})
	storedRegion := r.Translate(delta)

	totalRegion := NewRegion(0, 0, r.W, r.H)

	if layout := w.Layout(); layout != nil {
		placements, considered := layout.Arrange(w, Size{W: r.W, H: r.H}, w.Scroll())
		for _, c := range considered {
			a.widgets[c] = struct{}{}
		}

		sorted := make([]Placement, len(placements))
		copy(sorted, placements)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Z < sorted[j].Z })

		subClip := clip.Intersection(r)
		scroll := w.Scroll()

		for _, p := range sorted {
			childOrder := order.Append(p.Z)
			absRegion := p.Region.Translate(Offset{DX: r.X - scroll.DX, DY: r.Y - scroll.DY})
			addWidget(a, p.Widget, absRegion, childOrder, subClip)
			totalRegion = totalRegion.Union(p.Region)
		}
	}

	a.entries[w] = renderEntry{
		region:      storedRegion,
		order:       order,
		clip:        clip,
		virtualSize: totalRegion.Size(),
	}
	return totalRegion.Size()
}

// Size returns the region's own dimensions as a Size value.
func (r Region) Size() Size {
	return Size{W: r.W, H: r.H}
}
