package compose

// Style is the visual attributes carried by a Segment. It is a flat value
// type so the core never depends on a terminal library; a driver such as
// terminal.Driver maps it onto its own style representation (tcell.Style).
type Style struct {
	Foreground string // color name or "#rrggbb", empty means "inherit"
	Background string
	Attrs      string // space separated: "bold", "italic", "underline", ...
}

// Null reports whether the style carries no attributes at all.
func (s Style) Null() bool {
	return s.Foreground == "" && s.Background == "" && s.Attrs == ""
}
