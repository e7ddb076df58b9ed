package compose

import (
	"github.com/rivo/uniseg"
)

// Segment is an opaque run of styled text. Width is the precomputed,
// grapheme-cluster-aware cell width of Text, so callers never need to
// re-measure it.
type Segment struct {
	Text  string
	Style Style
	Width int
}

// NewSegment builds a Segment, measuring Text's cell width with uniseg so
// double-width runes and combining marks are counted correctly.
func NewSegment(text string, style Style) Segment {
	return Segment{Text: text, Style: style, Width: uniseg.StringWidth(text)}
}

// Line is a single row of segments, read left to right with no gaps.
type Line []Segment

// Width is the total cell width of a line.
func (l Line) Width() int {
	w := 0
	for _, seg := range l {
		w += seg.Width
	}
	return w
}

// grapheme is one grapheme cluster pulled out of a line, tagged with the
// style of the segment it came from. Flattening a line to clusters is what
// lets divide find cut points that never land inside a multi-cell rune.
type grapheme struct {
	text  string
	width int
	style Style
}

func flatten(line Line) []grapheme {
	var out []grapheme
	for _, seg := range line {
		text := seg.Text
		state := -1
		for len(text) > 0 {
			c, rest, w, newState := uniseg.FirstGraphemeClusterInString(text, state)
			out = append(out, grapheme{text: c, width: w, style: seg.Style})
			text = rest
			state = newState
		}
	}
	return out
}

// pack regroups consecutive same-style clusters back into segments.
func pack(gs []grapheme) Line {
	if len(gs) == 0 {
		return nil
	}
	var line Line
	cur := Segment{Style: gs[0].style}
	for _, g := range gs {
		if g.style != cur.Style && cur.Width > 0 {
			line = append(line, cur)
			cur = Segment{Style: g.style}
		}
		cur.Text += g.text
		cur.Width += g.width
	}
	line = append(line, cur)
	return line
}

// divide splits a line into consecutive sub-lines at the given ascending,
// de-duplicated cell-column offsets. It is total (every offset produces a
// cut), idempotent, and length-preserving (the concatenation of the
// results reproduces the original line), and it never splits inside a
// grapheme cluster: a cut that would land mid-cluster is deferred to the
// cluster's trailing edge.
func divide(line Line, cuts []int) []Line {
	if len(cuts) == 0 {
		return []Line{line}
	}

	gs := flatten(line)
	result := make([]Line, 0, len(cuts)+1)
	var current []grapheme
	pos := 0
	i := 0

	for _, target := range cuts {
		for pos < target && i < len(gs) {
			current = append(current, gs[i])
			pos += gs[i].width
			i++
		}
		result = append(result, pack(current))
		current = nil
	}
	for ; i < len(gs); i++ {
		current = append(current, gs[i])
	}
	result = append(result, pack(current))
	return result
}

// widthView returns the horizontal slice of a line spanning cell columns
// [x1, x2), cropping segments at their edges via divide.
func widthView(line Line, x1, x2 int) Line {
	w := line.Width()
	if x1 <= 0 && x2 >= w {
		return line
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > w {
		x2 = w
	}
	if x2 <= x1 {
		return nil
	}

	var cuts []int
	if x1 > 0 {
		cuts = append(cuts, x1)
	}
	cuts = append(cuts, x2)

	pieces := divide(line, cuts)
	if x1 > 0 {
		return pieces[1]
	}
	return pieces[0]
}
