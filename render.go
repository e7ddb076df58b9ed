package compose

import "sort"

// Patch is a positioned group of lines intended to be written to a
// sub-rectangle of the terminal, the external artifact UpdateWidget
// returns. A driver writes each line at (Region.X, Region.Y+i) in turn,
// with no trailing line terminator after the last line.
type Patch struct {
	Lines  []Line
	Region Region
}

// renderableWidgets returns the widgets present in entries, front first
// (descending Order), skipping invisible and transparent ones. Ties are
// impossible in a well-formed arrangement (spec invariant 2); SliceStable
// keeps the result deterministic if one ever slips through.
func renderableWidgets(entries map[Widget]renderEntry) []Widget {
	widgets := make([]Widget, 0, len(entries))
	for w := range entries {
		if w.Visible() && !w.Transparent() {
			widgets = append(widgets, w)
		}
	}
	sort.SliceStable(widgets, func(i, j int) bool {
		return entries[widgets[j]].order.Less(entries[widgets[i]].order)
	})
	return widgets
}

// renderLines is the four-phase renderer: it fills a cut-aligned bucket
// per row, paints front to back with first-writer-wins occlusion, then
// assembles and horizontally crops the result to crop.
func renderLines(entries map[Widget]renderEntry, cuts [][]int, size Size, crop Region) []Line {
	y1, y2 := crop.YRange()

	// Phase 1: one bucket per cut column, per row in the requested range.
	chops := make([]map[int]Line, y2)
	for y := y1; y < y2; y++ {
		row := make(map[int]Line, len(cuts[y]))
		for _, col := range cuts[y] {
			row[col] = nil
		}
		chops[y] = row
	}
	filled := make([]map[int]bool, y2)
	for y := y1; y < y2; y++ {
		filled[y] = make(map[int]bool, len(cuts[y]))
	}

	// Phase 2: front-to-back fill.
	for _, w := range renderableWidgets(entries) {
		e := entries[w]
		renderRegion := e.region.Intersection(e.clip)
		if renderRegion.Empty() {
			continue
		}

		lines := w.Lines()
		if renderRegion != e.region {
			deltaX := renderRegion.X - e.region.X
			deltaY := renderRegion.Y - e.region.Y
			splitAt := []int{deltaX, deltaX + renderRegion.W}
			cropped := make([]Line, renderRegion.H)
			for i, line := range lines[deltaY : deltaY+renderRegion.H] {
				pieces := divide(line, splitAt)
				cropped[i] = pieces[1]
			}
			lines = cropped
		}

		ry1, ry2 := renderRegion.YRange()
		for y := ry1; y < ry2; y++ {
			if y < y1 || y >= y2 {
				continue
			}
			line := lines[y-ry1]

			firstCut, lastCut := renderRegion.X, renderRegion.Right()
			var finalCuts []int
			for _, c := range cuts[y] {
				if c >= firstCut && c <= lastCut {
					finalCuts = append(finalCuts, c)
				}
			}

			var slices []Line
			if len(finalCuts) == 2 {
				slices = []Line{line}
			} else {
				inner := make([]int, 0, len(finalCuts)-2)
				for _, c := range finalCuts[1 : len(finalCuts)-1] {
					inner = append(inner, c-renderRegion.X)
				}
				slices = divide(line, inner)
			}

			for i, slice := range slices {
				col := finalCuts[i]
				if !filled[y][col] {
					chops[y][col] = slice
					filled[y][col] = true
				}
			}
		}
	}

	// Phase 3: assembly.
	renderedLines := make([]Line, y2-y1)
	for y := y1; y < y2; y++ {
		var out Line
		for _, col := range cuts[y] {
			if filled[y][col] {
				out = append(out, chops[y][col]...)
			}
		}
		renderedLines[y-y1] = out
	}

	// Phase 4: horizontal crop.
	if crop.X != 0 || crop.Right() != size.W {
		for i, line := range renderedLines {
			renderedLines[i] = widthView(line, crop.X, crop.Right())
		}
	}

	return renderedLines
}
