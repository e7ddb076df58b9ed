// Package demo provides small, self-contained Widget implementations
// used by cmd/democompose: a static label and a figlet4go-rendered
// banner, grounded on the teacher's label.go and cmd/figlet-browser.
package demo

import (
	"strings"

	"github.com/mbndr/figlet4go"
	"github.com/rivo/uniseg"

	compose "github.com/rasterwerk/compose"
)

// Label is a fixed-size widget rendering one line of styled text,
// padded or cropped to its box's width. It implements both
// compose.Widget and inspector.Identifiable.
type Label struct {
	WidgetID string
	Text     string
	Style    compose.Style
	Width    int
}

func (l *Label) ID() string               { return l.WidgetID }
func (l *Label) Size() compose.Size       { return compose.Size{W: l.Width, H: 1} }
func (l *Label) Z() []int                 { return nil }
func (l *Label) Visible() bool            { return true }
func (l *Label) Transparent() bool        { return false }
func (l *Label) Scroll() compose.Offset   { return compose.Offset{} }
func (l *Label) Layout() compose.Layout   { return nil }
func (l *Label) ClearRenderCache()        {}

func (l *Label) StyleOffset(container, clip compose.Size) compose.Offset {
	return compose.Offset{}
}

func (l *Label) Lines() []compose.Line {
	text := l.Text
	width := uniseg.StringWidth(text)
	switch {
	case width < l.Width:
		text += strings.Repeat(" ", l.Width-width)
	case width > l.Width:
		text = cropToWidth(text, l.Width)
	}
	return []compose.Line{{compose.NewSegment(text, l.Style)}}
}

// cropToWidth truncates text to at most width cells, never splitting a
// grapheme cluster: a cluster that would straddle the boundary is
// dropped whole rather than split. (compose's divide instead keeps such
// a cluster in the left piece.)
func cropToWidth(text string, width int) string {
	var out strings.Builder
	total := 0
	state := -1
	for len(text) > 0 {
		cluster, rest, w, newState := uniseg.FirstGraphemeClusterInString(text, state)
		if total+w > width {
			break
		}
		out.WriteString(cluster)
		total += w
		text = rest
		state = newState
	}
	return out.String()
}

// Banner renders text as FIGlet block letters using figlet4go, the
// library the teacher's cmd/figlet-browser uses for the same job.
// Rendering happens once at construction; Banner is otherwise a static
// Widget like Label.
type Banner struct {
	WidgetID string
	Style    compose.Style
	lines    []compose.Line
	width    int
}

// NewBanner renders text with the named FIGlet font (relative to the
// process's working directory, matching figlet4go's own font lookup)
// and returns a ready-to-arrange Banner. A font that fails to load is
// ignored and figlet4go's default font is used instead; if rendering
// itself fails, the banner is the plain text on a single line.
func NewBanner(id, text, fontPath string, style compose.Style) *Banner {
	b := &Banner{WidgetID: id, Style: style}

	renderer := figlet4go.NewAsciiRender()
	opts := figlet4go.NewRenderOptions()
	if fontPath != "" {
		if err := renderer.LoadFont(fontPath); err == nil {
			opts.FontName = fontNameFromPath(fontPath)
		}
	}

	rendered, err := renderer.RenderOpts(text, opts)
	if err != nil {
		rendered = text + "\n"
	}

	for _, line := range strings.Split(strings.TrimRight(rendered, "\n"), "\n") {
		w := uniseg.StringWidth(line)
		if w > b.width {
			b.width = w
		}
		b.lines = append(b.lines, compose.Line{compose.NewSegment(line, style)})
	}
	for i, line := range b.lines {
		w := line.Width()
		if w < b.width {
			b.lines[i] = append(line, compose.NewSegment(strings.Repeat(" ", b.width-w), style))
		}
	}
	return b
}

func fontNameFromPath(path string) string {
	name := path
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}
	return strings.TrimSuffix(name, ".flf")
}

func (b *Banner) ID() string             { return b.WidgetID }
func (b *Banner) Size() compose.Size     { return compose.Size{W: b.width, H: len(b.lines)} }
func (b *Banner) Z() []int               { return nil }
func (b *Banner) Visible() bool          { return true }
func (b *Banner) Transparent() bool      { return false }
func (b *Banner) Scroll() compose.Offset { return compose.Offset{} }
func (b *Banner) Layout() compose.Layout { return nil }
func (b *Banner) ClearRenderCache()      {}

func (b *Banner) StyleOffset(container, clip compose.Size) compose.Offset {
	return compose.Offset{}
}

func (b *Banner) Lines() []compose.Line {
	return b.lines
}
