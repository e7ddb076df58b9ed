package compose

// fakeWidget is a minimal Widget used across the compositor tests. Tests
// configure only the fields a given scenario needs; the zero value is a
// 0x0 invisible widget with no layout.
type fakeWidget struct {
	name        string
	size        Size
	z           []int
	visible     bool
	transparent bool
	scroll      Offset
	layout      Layout
	offset      Offset
	lines       []Line

	clearCalls int
}

func newFakeWidget(name string, size Size, lines []Line) *fakeWidget {
	return &fakeWidget{name: name, size: size, lines: lines, visible: true}
}

func (f *fakeWidget) Size() Size                               { return f.size }
func (f *fakeWidget) Z() []int                                 { return f.z }
func (f *fakeWidget) Visible() bool                             { return f.visible }
func (f *fakeWidget) Transparent() bool                         { return f.transparent }
func (f *fakeWidget) Scroll() Offset                            { return f.scroll }
func (f *fakeWidget) Layout() Layout                            { return f.layout }
func (f *fakeWidget) StyleOffset(container, clip Size) Offset   { return f.offset }
func (f *fakeWidget) Lines() []Line                             { return f.lines }
func (f *fakeWidget) ClearRenderCache()                         { f.clearCalls++ }

// fixedLayout returns a fixed set of placements regardless of the size and
// scroll it is called with, enough to drive arrangement tests without
// reimplementing a real layout algorithm.
type fixedLayout struct {
	placements []Placement
	considered []Widget
}

func (f fixedLayout) Arrange(widget Widget, size Size, scroll Offset) ([]Placement, []Widget) {
	return f.placements, f.considered
}

func solidLine(width int, char string, style Style) Line {
	return Line{NewSegment(repeat(char, width), style)}
}

func repeat(s string, n int) string {
	out := ""
	for range n {
		out += s
	}
	return out
}
