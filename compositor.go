package compose

// ReflowNotifications reports how a reflow changed the arrangement
// relative to the previous one: widgets that disappeared, widgets that
// appeared, and widgets present in both that changed size. The terminal
// driver turns these into Hide/Show/Resize events (screen.py's
// refresh_layout).
type ReflowNotifications struct {
	Hidden  []Widget
	Shown   []Widget
	Resized []Widget
}

// Compositor holds one widget tree's arrangement and produces rendered
// output from it. It is single-threaded and synchronous: a caller must
// not call Reflow concurrently with Render, UpdateWidget or any hit-test
// method, and must not call any method concurrently with another.
type Compositor struct {
	root Widget
	size Size

	entries map[Widget]renderEntry
	regions map[Widget]regionClip
	widgets map[Widget]struct{}

	cuts [][]int // nil when invalid; recomputed lazily by ensureCuts

	requireUpdateFlag bool

	Trace *Trace
}

// NewCompositor creates an empty compositor with no arrangement yet.
func NewCompositor() *Compositor {
	return &Compositor{
		entries: make(map[Widget]renderEntry),
		regions: make(map[Widget]regionClip),
		widgets: make(map[Widget]struct{}),
		Trace:   NewTrace(256),
	}
}

// Reflow recomputes the full arrangement from root at the given screen
// size and returns the diff against the previous arrangement. The
// previous arrangement is kept intact until the new one is fully built,
// so a panic from a misbehaving widget or layout never leaves the
// compositor half-updated.
func (c *Compositor) Reflow(root Widget, size Size) ReflowNotifications {
	c.Trace.Add("reflow", "start root=%T size=%dx%d", root, size.W, size.H)

	a := arrangeRoot(root, size)

	notif := ReflowNotifications{}
	for w := range c.entries {
		if _, ok := a.entries[w]; !ok {
			notif.Hidden = append(notif.Hidden, w)
		}
	}
	for w, e := range a.entries {
		if _, ok := c.entries[w]; !ok {
			notif.Shown = append(notif.Shown, w)
			continue
		}
		if w.Size() != e.region.Size() {
			notif.Resized = append(notif.Resized, w)
		}
	}

	c.root = root
	c.size = size
	c.entries = a.entries
	c.widgets = a.widgets
	c.regions = make(map[Widget]regionClip, len(a.entries))
	for w, e := range a.entries {
		c.regions[w] = regionClip{Region: e.region, Clip: e.clip}
	}
	c.cuts = nil
	c.requireUpdateFlag = false

	c.Trace.Add("reflow", "done shown=%d hidden=%d resized=%d", len(notif.Shown), len(notif.Hidden), len(notif.Resized))
	return notif
}

// ensureCuts computes and caches the cut lists if they are not already
// valid for the current arrangement.
func (c *Compositor) ensureCuts() [][]int {
	if c.cuts == nil {
		c.cuts = computeCuts(c.entries, c.size)
	}
	return c.cuts
}

// Render produces one segment list per row of the screen, or of crop if
// given. Rows outside the screen are clamped away; an empty or
// out-of-bounds crop yields no lines.
func (c *Compositor) Render(crop *Region) []Line {
	screen := NewRegion(0, 0, c.size.W, c.size.H)
	region := screen
	if crop != nil {
		region = crop.Intersection(screen)
	}
	cuts := c.ensureCuts()
	lines := renderLines(c.entries, cuts, c.size, region)
	c.Trace.Add("render", "rows=%d crop=%v", len(lines), crop != nil)
	return lines
}

// UpdateWidget re-renders a single widget's clipped region and returns a
// Patch a driver can blit directly, or nil if the widget is not part of
// the current arrangement or occupies no visible area. The patch covers
// the widget's clipped rectangle, not just its own output, so any
// overlapping frontmost widget still wins (scenario f).
func (c *Compositor) UpdateWidget(w Widget) *Patch {
	rc, ok := c.regions[w]
	if !ok {
		return nil
	}
	updateRegion := rc.Region.Intersection(rc.Clip)
	if updateRegion.Empty() {
		return nil
	}
	w.ClearRenderCache()
	lines := c.Render(&updateRegion)
	c.Trace.Add("update", "widget=%T region=%v", w, updateRegion)
	return &Patch{Lines: lines, Region: updateRegion}
}

// GetOffset returns the widget's absolute top-left position.
func (c *Compositor) GetOffset(w Widget) (Offset, error) {
	e, ok := c.entries[w]
	if !ok {
		return Offset{}, ErrNoWidget
	}
	return Offset{DX: e.region.X, DY: e.region.Y}, nil
}

// GetWidgetRegion returns the widget's absolute region.
func (c *Compositor) GetWidgetRegion(w Widget) (Region, error) {
	e, ok := c.entries[w]
	if !ok {
		return Region{}, ErrNoWidget
	}
	return e.region, nil
}

// Widgets returns every widget the last Reflow's arrangement walk
// encountered, regardless of whether it occupies a region (spec.md
// invariant 3: widgets ⊇ map's keys). Order is unspecified.
func (c *Compositor) Widgets() []Widget {
	out := make([]Widget, 0, len(c.widgets))
	for w := range c.widgets {
		out = append(out, w)
	}
	return out
}

// RequireUpdate marks the arrangement as stale, for a driver to notice on
// its next idle tick and call Reflow.
func (c *Compositor) RequireUpdate() {
	c.requireUpdateFlag = true
	c.cuts = nil
}

// CheckUpdate reports whether RequireUpdate has been called since the
// last ResetUpdate (or the last Reflow, which also clears the flag).
func (c *Compositor) CheckUpdate() bool {
	return c.requireUpdateFlag
}

// ResetUpdate clears the require-update flag without reflowing.
func (c *Compositor) ResetUpdate() {
	c.requireUpdateFlag = false
}
