// Command democompose wires a small widget tree, a flex layout and a
// figlet4go banner into a live terminal.Driver, exercising the full
// compositor pipeline end to end the way the teacher's cmd/* demos
// exercise the widget framework end to end.
package main

import (
	"context"
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rasterwerk/compose"
	"github.com/rasterwerk/compose/configwatch"
	"github.com/rasterwerk/compose/demo"
	"github.com/rasterwerk/compose/layout"
	"github.com/rasterwerk/compose/metrics"
	"github.com/rasterwerk/compose/telemetry"
	"github.com/rasterwerk/compose/terminal"
)

func main() {
	var (
		text              = flag.String("text", "compose", "banner text")
		font              = flag.String("font", "", "path to a .flf figlet font (optional)")
		metricsPath       = flag.String("metrics", "", "sqlite path to record render/reflow timings (optional)")
		configPath        = flag.String("config", "", "path to a configwatch JSON config to hot-reload (optional)")
		telemetryEndpoint = flag.String("telemetry", "", "OTLP/gRPC collector address to export reflow/render spans to (optional)")
	)
	flag.Parse()

	red := compose.Style{Foreground: "red"}
	green := compose.Style{Foreground: "green"}

	banner := demo.NewBanner("banner", *text, *font, red)
	subtitle := &demo.Label{WidgetID: "subtitle", Text: "a terminal compositor", Style: green, Width: 40}

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

	comp := compose.NewCompositor()
	driver := terminal.NewDriver(comp, root)
	driver.OnResize(func(notif compose.ReflowNotifications) {
		comp.Trace.Add("demo", "shown=%d hidden=%d resized=%d", len(notif.Shown), len(notif.Hidden), len(notif.Resized))
	})

	if *metricsPath != "" {
		rec, err := metrics.Open(*metricsPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "democompose: metrics disabled:", err)
		} else {
			defer rec.Close()
			driver.OnTiming(func(phase string, d time.Duration, rows int) {
				if err := rec.Record(phase, d, rows); err != nil {
					comp.Trace.Add("metrics", "record failed: %v", err)
				}
			})
		}
	}

	if *telemetryEndpoint != "" {
		ctx := context.Background()
		exp, err := telemetry.Dial(ctx, *telemetryEndpoint)
		if err != nil {
			fmt.Fprintln(os.Stderr, "democompose: telemetry disabled:", err)
		} else {
			defer exp.Close()
			traceID := randomID(16)
			driver.OnSpan(func(phase string, start, end time.Time) {
				exp.Span(phase, start, end, traceID, randomID(8))
				if err := exp.Flush(ctx); err != nil {
					comp.Trace.Add("telemetry", "flush failed: %v", err)
				}
			})
		}
	}

	if *configPath != "" {
		watcher, err := configwatch.Watch(*configPath, func(cfg configwatch.Config) {
			if cfg.DebugTrace {
				comp.RequireUpdate()
			}
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "democompose: config watch disabled:", err)
		} else {
			defer watcher.Close()
		}
	}

	if err := driver.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "democompose:", err)
		os.Exit(1)
	}
}

func randomID(n int) []byte {
	id := make([]byte, n)
	_, _ = rand.Read(id)
	return id
}
