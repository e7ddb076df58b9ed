package compose

import "sort"

// computeCuts builds the per-row sorted list of vertical cut columns: every
// x and x+w of every arranged widget's clipped region, on every row that
// region covers, plus the screen edges 0 and width on every row. It is the
// basis the renderer uses to slice widget output into column-aligned runs.
func computeCuts(entries map[Widget]renderEntry, size Size) [][]int {
	rows := make([][]int, size.H)
	for y := range rows {
		rows[y] = []int{0, size.W}
	}

	screen := NewRegion(0, 0, size.W, size.H)
	for _, e := range entries {
		clipped := e.region.Intersection(e.clip)
		if clipped.Empty() {
			continue
		}
		if !withinScreen(clipped, screen) {
			continue
		}
		x1, x2 := clipped.X, clipped.Right()
		y1, y2 := clipped.YRange()
		for y := y1; y < y2; y++ {
			rows[y] = append(rows[y], x1, x2)
		}
	}

	for y, row := range rows {
		rows[y] = sortedUniqueInts(row)
	}
	return rows
}

// withinScreen reports whether r lies entirely inside screen.
func withinScreen(r, screen Region) bool {
	return r.X >= screen.X && r.Y >= screen.Y && r.Right() <= screen.Right() && r.Bottom() <= screen.Bottom()
}

func sortedUniqueInts(values []int) []int {
	sort.Ints(values)
	out := values[:0]
	for i, v := range values {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
