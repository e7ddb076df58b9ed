// Package terminal hosts the compositor's one real-world collaborator: a
// tcell-backed driver that owns the screen, feeds resize/input events into
// a Compositor and blits the results back out.
package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	compose "github.com/rasterwerk/compose"
)

// Driver owns a tcell.Screen and drives a Compositor from it: resize
// events trigger Reflow, mouse events are resolved through hit-test
// queries, Ctrl+C/Ctrl+Q end Run, and Patches are blitted with
// SetContent/Show.
//
// A Driver is single-threaded by construction: one goroutine
// (EventLoop) only ever sends onto the events channel, and Run is the
// only goroutine that ever touches the Compositor, mirroring the
// teacher's UI.Run/UI.EventLoop split.
type Driver struct {
	screen tcell.Screen
	comp   *compose.Compositor
	root   compose.Widget

	events chan tcell.Event
	quit   chan struct{}
	redraw chan compose.Widget

	capture        compose.Widget
	capturedRegion compose.Region

	onResize func(compose.ReflowNotifications)
	onTiming func(phase string, d time.Duration, rows int)
	onSpan   func(phase string, start, end time.Time)
}

// NewDriver creates a driver around an existing compositor. Screen
// initialization is deferred to Run, matching NewUI/Run's split in the
// teacher.
func NewDriver(comp *compose.Compositor, root compose.Widget) *Driver {
	return &Driver{
		comp:   comp,
		root:   root,
		events: make(chan tcell.Event, 16),
		quit:   make(chan struct{}),
		redraw: make(chan compose.Widget, 16),
	}
}

// OnResize installs a callback invoked with the ReflowNotifications
// produced by every resize-driven reflow.
func (d *Driver) OnResize(fn func(compose.ReflowNotifications)) {
	d.onResize = fn
}

// OnTiming installs a callback invoked after every Reflow, full Render
// and patch-producing UpdateWidget call with the phase name ("reflow",
// "render", "update_widget"), how long it took, and a count: the rows
// produced for render and update_widget, the number of shown plus
// resized widgets for reflow — the hook a caller wires to
// metrics.Recorder.Record.
func (d *Driver) OnTiming(fn func(phase string, d time.Duration, rows int)) {
	d.onTiming = fn
}

// OnSpan installs a callback invoked with the start and end time of
// every Reflow, full Render and UpdateWidget call, for a caller to
// export as a tracing span (telemetry.Exporter.Span).
func (d *Driver) OnSpan(fn func(phase string, start, end time.Time)) {
	d.onSpan = fn
}

// ProbeSize returns the terminal's current size using golang.org/x/term,
// for diagnostics or sizing decisions made before a screen exists (e.g.
// a headless dry run that only wants to know how wide the compositor
// would arrange against).
func ProbeSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}

// Run initializes the terminal, performs the first arrangement, and
// blocks in the event loop until Stop is called or a quit key is seen.
func (d *Driver) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	d.screen = screen
	d.screen.EnableMouse()
	d.screen.SetStyle(tcell.StyleDefault)
	d.screen.Clear()

	w, h := d.screen.Size()
	d.reflow(w, h)
	d.paint()

	go d.EventLoop()

	for {
		select {
		case <-d.quit:
			d.screen.Fini()
			return nil
		case w := <-d.redraw:
			d.paintWidget(w)
		case ev := <-d.events:
			if d.handle(ev) {
				d.screen.Fini()
				return nil
			}
		}
	}
}

// Stop requests a graceful shutdown of the event loop.
func (d *Driver) Stop() {
	select {
	case <-d.quit:
	default:
		close(d.quit)
	}
}

// RequestRedraw queues a single widget for a partial repaint via
// UpdateWidget, the terminal-side counterpart of spec.md's partial
// update operation.
func (d *Driver) RequestRedraw(w compose.Widget) {
	select {
	case d.redraw <- w:
	default:
	}
}

// EventLoop polls tcell for events and forwards them to the main loop,
// grounded on the teacher's UI.EventLoop: kept in its own goroutine so
// PollEvent's blocking call never stalls redraws or quit handling.
func (d *Driver) EventLoop() {
	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case d.events <- ev:
		case <-d.quit:
			return
		}
	}
}

func (d *Driver) reflow(w, h int) {
	start := time.Now()
	notif := d.comp.Reflow(d.root, compose.Size{W: w, H: h})
	d.recordPhase("reflow", start, time.Now(), len(notif.Shown)+len(notif.Resized))
	if d.onResize != nil {
		d.onResize(notif)
	}
}

func (d *Driver) handle(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyCtrlQ:
			return true
		}
	case *tcell.EventMouse:
		d.forwardMouse(ev)
	case *tcell.EventResize:
		w, h := d.screen.Size()
		d.reflow(w, h)
		d.screen.Sync()
		d.paint()
	}
	return false
}

// forwardMouse resolves a screen-space mouse event with the compositor's
// hit-testing, carrying over screen.py's mouse-capture branch: a Button1
// press captures the widget under the pointer, and while a widget holds
// capture, each event's widget-local coordinates are computed against
// that widget's last known region instead of a fresh GetWidgetAt lookup
// (so drags that leave the widget's bounds still target it) and recorded
// in the compositor's Trace. Events are not delivered to widgets.
func (d *Driver) forwardMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if d.capture != nil {
		localX := x - d.capturedRegion.X
		localY := y - d.capturedRegion.Y
		d.comp.Trace.Add("mouse", "captured widget=%T local=%d,%d", d.capture, localX, localY)
		if ev.Buttons() == tcell.ButtonNone {
			d.capture = nil
		}
		return
	}

	widget, region, err := d.comp.GetWidgetAt(x, y)
	if err != nil {
		return
	}
	if ev.Buttons()&tcell.Button1 != 0 {
		d.capture = widget
		d.capturedRegion = region
	}
}

// paint renders the full screen and blits it.
func (d *Driver) paint() {
	start := time.Now()
	lines := d.comp.Render(nil)
	d.recordPhase("render", start, time.Now(), len(lines))
	d.blit(0, 0, lines)
	d.screen.Show()
}

// paintWidget re-renders and blits a single widget's clipped region.
func (d *Driver) paintWidget(w compose.Widget) {
	start := time.Now()
	patch := d.comp.UpdateWidget(w)
	if patch == nil {
		return
	}
	d.recordPhase("update_widget", start, time.Now(), len(patch.Lines))
	d.blit(patch.Region.X, patch.Region.Y, patch.Lines)
	d.screen.Show()
}

func (d *Driver) recordPhase(phase string, start, end time.Time, rows int) {
	if d.onTiming != nil {
		d.onTiming(phase, end.Sub(start), rows)
	}
	if d.onSpan != nil {
		d.onSpan(phase, start, end)
	}
}

// blit writes rendered lines to the screen starting at column x0, row y0,
// mapping each Segment's cells through styleToTcell.
func (d *Driver) blit(x0, y0 int, lines []compose.Line) {
	for i, line := range lines {
		x := x0
		y := y0 + i
		for _, seg := range line {
			style := styleToTcell(seg.Style)
			for _, r := range []rune(seg.Text) {
				d.screen.SetContent(x, y, r, nil, style)
				x++
			}
		}
	}
}

func styleToTcell(s compose.Style) tcell.Style {
	style := tcell.StyleDefault
	if s.Foreground != "" {
		style = style.Foreground(tcell.GetColor(s.Foreground))
	}
	if s.Background != "" {
		style = style.Background(tcell.GetColor(s.Background))
	}
	switch s.Attrs {
	case "bold":
		style = style.Bold(true)
	case "underline":
		style = style.Underline(true)
	case "reverse":
		style = style.Reverse(true)
	case "italic":
		style = style.Italic(true)
	}
	return style
}
