package demo

import compose "github.com/rasterwerk/compose"

// Container is a plain grouping widget: it renders nothing of its own
// and delegates child placement entirely to Layout, grounded on the
// teacher's Container/Box split where the container contributes no
// visual output by itself.
type Container struct {
	WidgetID  string
	WidgetZ   []int
	Invisible bool
	Transp    bool
	ChildSize compose.Size
	ChildLay  compose.Layout
}

func (c *Container) ID() string             { return c.WidgetID }
func (c *Container) Size() compose.Size     { return c.ChildSize }
func (c *Container) Z() []int               { return c.WidgetZ }
func (c *Container) Visible() bool          { return !c.Invisible }
func (c *Container) Transparent() bool      { return c.Transp }
func (c *Container) Scroll() compose.Offset { return compose.Offset{} }
func (c *Container) Layout() compose.Layout { return c.ChildLay }
func (c *Container) ClearRenderCache()      {}

func (c *Container) StyleOffset(container, clip compose.Size) compose.Offset {
	return compose.Offset{}
}

func (c *Container) Lines() []compose.Line {
	lines := make([]compose.Line, c.ChildSize.H)
	for i := range lines {
		lines[i] = compose.Line{compose.NewSegment(spaces(c.ChildSize.W), compose.Style{})}
	}
	return lines
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
