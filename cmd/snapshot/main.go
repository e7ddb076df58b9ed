// Command snapshot renders one frame of a widget tree headlessly and
// copies the result to the OS clipboard, the way the teacher's terminal
// editor copies selected text out with github.com/atotto/clipboard.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/rasterwerk/compose"
	"github.com/rasterwerk/compose/demo"
	"github.com/rasterwerk/compose/layout"
)

func main() {
	var (
		text  = flag.String("text", "compose", "banner text")
		font  = flag.String("font", "", "path to a .flf figlet font (optional)")
		width = flag.Int("width", 80, "screen width to arrange against")
	)
	flag.Parse()

	banner := demo.NewBanner("banner", *text, *font, compose.Style{})
	subtitle := &demo.Label{WidgetID: "subtitle", Text: "a terminal compositor", Width: 40}

	root := &demo.Container{
		WidgetID:  "root",
		Invisible: true,
		ChildLay: layout.Flex{
			Orientation: layout.Vertical,
			Alignment:   layout.Start,
			Spacing:     1,
			Children: []layout.Child{
				{Widget: banner, Size: 0},
				{Widget: subtitle, Size: 0},
			},
		},
	}

	height := banner.Size().H + 1 + subtitle.Size().H
	comp := compose.NewCompositor()
	comp.Reflow(root, compose.Size{W: *width, H: height})

	lines := comp.Render(nil)
	var out strings.Builder
	for _, line := range lines {
		for _, seg := range line {
			out.WriteString(seg.Text)
		}
		out.WriteByte('\n')
	}

	if err := clipboard.WriteAll(out.String()); err != nil {
		fmt.Fprintln(os.Stderr, "snapshot: clipboard unavailable, printing instead:", err)
		fmt.Print(out.String())
		return
	}
	fmt.Fprintln(os.Stderr, "snapshot: copied to clipboard")
}
