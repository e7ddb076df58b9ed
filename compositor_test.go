package compose

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scenario (a): single root widget, 3x2, two lines of a red "XXX".
func TestRenderSingleRootWidget(t *testing.T) {
	red := Style{Foreground: "red"}
	root := newFakeWidget("root", Size{W: 3, H: 2}, []Line{
		{NewSegment("XXX", red)},
		{NewSegment("XXX", red)},
	})

	c := NewCompositor()
	c.Reflow(root, Size{W: 3, H: 2})

	lines := c.Render(nil)
	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 3, line.Width())
		assert.Equal(t, "XXX", lineText(line))
	}

	cuts := c.ensureCuts()
	assert.Equal(t, [][]int{{0, 3}, {0, 3}}, cuts)
}

// scenario (b): two non-overlapping 2x1 widgets on a 4x1 screen.
func TestRenderNonOverlappingWidgets(t *testing.T) {
	left := newFakeWidget("left", Size{W: 2, H: 1}, []Line{solidLine(2, "L", Style{})})
	right := newFakeWidget("right", Size{W: 2, H: 1}, []Line{solidLine(2, "R", Style{})})

	root := newFakeWidget("root", Size{W: 4, H: 1}, nil)
	root.visible = false
	root.layout = fixedLayout{
		placements: []Placement{
			{Region: NewRegion(0, 0, 2, 1), Widget: left, Z: 0},
			{Region: NewRegion(2, 0, 2, 1), Widget: right, Z: 1},
		},
		considered: []Widget{left, right},
	}

	c := NewCompositor()
	c.Reflow(root, Size{W: 4, H: 1})

	cuts := c.ensureCuts()
	assert.Equal(t, []int{0, 2, 4}, cuts[0])

	lines := c.Render(nil)
	assert.Len(t, lines, 1)
	assert.Equal(t, "LLRR", lineText(lines[0]))
}

// buildOcclusionScenario sets up scenario (c): A behind, B in front,
// overlapping on a 4x1 screen.
func buildOcclusionScenario() (*Compositor, *fakeWidget, *fakeWidget) {
	a := newFakeWidget("A", Size{W: 4, H: 1}, []Line{solidLine(4, "A", Style{})})
	b := newFakeWidget("B", Size{W: 2, H: 1}, []Line{solidLine(2, "B", Style{})})

	root := newFakeWidget("root", Size{W: 4, H: 1}, nil)
	root.visible = false
	root.layout = fixedLayout{
		placements: []Placement{
			{Region: NewRegion(0, 0, 4, 1), Widget: a, Z: 0},
			{Region: NewRegion(1, 0, 2, 1), Widget: b, Z: 1},
		},
		considered: []Widget{a, b},
	}

	c := NewCompositor()
	c.Reflow(root, Size{W: 4, H: 1})
	return c, a, b
}

func TestRenderOcclusion(t *testing.T) {
	c, _, _ := buildOcclusionScenario()
	lines := c.Render(nil)
	assert.Len(t, lines, 1)
	assert.Equal(t, "ABBA", lineText(lines[0]))
}

// scenario (d): a widget whose region extends beyond its inherited clip.
func TestRenderClip(t *testing.T) {
	child := newFakeWidget("child", Size{W: 4, H: 4}, nil)
	child.lines = make([]Line, 4)
	for i := range child.lines {
		child.lines[i] = solidLine(4, "Z", Style{})
	}

	root := newFakeWidget("root", Size{W: 4, H: 4}, nil)
	root.visible = false
	root.layout = fixedLayout{
		placements: []Placement{{Region: NewRegion(2, 2, 4, 4), Widget: child, Z: 0}},
		considered: []Widget{child},
	}

	c := NewCompositor()
	c.Reflow(root, Size{W: 4, H: 4})

	region, err := c.GetWidgetRegion(child)
	assert.NoError(t, err)
	assert.Equal(t, NewRegion(2, 2, 4, 4), region)

	rc := c.regions[child]
	clipped := rc.Region.Intersection(rc.Clip)
	assert.Equal(t, NewRegion(2, 2, 2, 2), clipped)

	lines := c.Render(nil)
	assert.Len(t, lines, 4)
	assert.Empty(t, lines[0])
	assert.Empty(t, lines[1])
	assert.Equal(t, "ZZ", lineText(lines[2]))
	assert.Equal(t, "ZZ", lineText(lines[3]))
}

// scenario (e): hit testing against the occlusion scenario.
func TestGetWidgetAt(t *testing.T) {
	c, a, b := buildOcclusionScenario()

	w, _, err := c.GetWidgetAt(0, 0)
	assert.NoError(t, err)
	assert.Same(t, a, w)

	w, _, err = c.GetWidgetAt(1, 0)
	assert.NoError(t, err)
	assert.Same(t, b, w)

	w, _, err = c.GetWidgetAt(2, 0)
	assert.NoError(t, err)
	assert.Same(t, b, w)

	w, _, err = c.GetWidgetAt(3, 0)
	assert.NoError(t, err)
	assert.Same(t, a, w)

	_, _, err = c.GetWidgetAt(10, 10)
	assert.True(t, errors.Is(err, ErrNoWidget))
}

// scenario (f): partial update includes frontmost overlap.
func TestUpdateWidgetIncludesFrontOverlap(t *testing.T) {
	c, a, b := buildOcclusionScenario()

	patchB := c.UpdateWidget(b)
	assert.NotNil(t, patchB)
	assert.Equal(t, NewRegion(1, 0, 2, 1), patchB.Region)
	assert.Len(t, patchB.Lines, 1)
	assert.Equal(t, "BB", lineText(patchB.Lines[0]))
	assert.Equal(t, 1, b.clearCalls)

	patchA := c.UpdateWidget(a)
	assert.NotNil(t, patchA)
	assert.Equal(t, NewRegion(0, 0, 4, 1), patchA.Region)
	assert.Len(t, patchA.Lines, 1)
	assert.Equal(t, "ABBA", lineText(patchA.Lines[0]))
}

func TestUpdateWidgetUnknownWidget(t *testing.T) {
	c := NewCompositor()
	orphan := newFakeWidget("orphan", Size{W: 1, H: 1}, nil)
	assert.Nil(t, c.UpdateWidget(orphan))
}

func TestGetStyleAtNullWhenNoWidget(t *testing.T) {
	c, _, _ := buildOcclusionScenario()
	assert.Equal(t, Style{}, c.GetStyleAt(-1, -1))
}

func TestReflowDiff(t *testing.T) {
	a := newFakeWidget("a", Size{W: 2, H: 1}, []Line{solidLine(2, "A", Style{})})
	root := newFakeWidget("root", Size{W: 2, H: 1}, nil)
	root.layout = fixedLayout{
		placements: []Placement{{Region: NewRegion(0, 0, 2, 1), Widget: a, Z: 0}},
		considered: []Widget{a},
	}

	c := NewCompositor()
	notif := c.Reflow(root, Size{W: 2, H: 1})
	assert.ElementsMatch(t, []Widget{root, a}, notif.Shown)
	assert.Empty(t, notif.Hidden)
	assert.Empty(t, notif.Resized)

	// second reflow with a now resized: its stale reported size (still
	// 2x1) no longer matches the region a freshly arranged 3x1 layout
	// would give it.
	root.layout = fixedLayout{
		placements: []Placement{{Region: NewRegion(0, 0, 3, 1), Widget: a, Z: 0}},
		considered: []Widget{a},
	}
	notif = c.Reflow(root, Size{W: 3, H: 1})
	assert.Empty(t, notif.Shown)
	assert.Empty(t, notif.Hidden)
	assert.Contains(t, notif.Resized, Widget(a))
}

func TestCutsStrictlyIncreasingAndBounded(t *testing.T) {
	c, _, _ := buildOcclusionScenario()
	for _, row := range c.ensureCuts() {
		assert.Equal(t, 0, row[0])
		assert.Equal(t, 4, row[len(row)-1])
		for i := 1; i < len(row); i++ {
			assert.Greater(t, row[i], row[i-1])
		}
	}
}

func TestRenderRoundTrip(t *testing.T) {
	c, _, _ := buildOcclusionScenario()
	first := c.Render(nil)
	second := c.Render(nil)
	assert.Equal(t, first, second)
}
