// Package inspector lets a debugging tool find widgets by ID glob,
// grounded on the teacher's Ctrl+D inspector.go tree browser but
// headless: it returns matches for a caller (a terminal driver, a test,
// a REPL) to render however it likes, using
// github.com/bmatcuk/doublestar/v4 for the glob syntax instead of the
// teacher's flat ID-equality Find.
package inspector

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	compose "github.com/rasterwerk/compose"
)

// Identifiable is an optional capability: a widget that wants to be
// discoverable by inspector.Find implements it. The compose core
// itself has no notion of widget IDs, so this lives here rather than on
// compose.Widget.
type Identifiable interface {
	ID() string
}

// Match is one widget found by a glob query, together with its current
// absolute region (empty if the widget has no region this reflow).
type Match struct {
	ID     string
	Widget compose.Widget
	Region compose.Region
}

// Find returns every widget in the compositor's current arrangement
// whose ID matches the doublestar pattern (e.g. "sidebar.*",
// "**/button-*"), sorted by ID. Widgets that don't implement
// Identifiable are skipped, not errored on.
func Find(c *compose.Compositor, pattern string) ([]Match, error) {
	var out []Match
	for _, w := range c.Widgets() {
		id, ok := w.(Identifiable)
		if !ok {
			continue
		}

		matched, err := doublestar.Match(pattern, id.ID())
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}

		region, _ := c.GetWidgetRegion(w) // zero Region if unarranged
		out = append(out, Match{ID: id.ID(), Widget: w, Region: region})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
