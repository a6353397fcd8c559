package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/skyroute/builder"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/reroute"
)

// Report status lines.
const (
	StatusOriginal = "ORIGINAL FLIGHT PATH"
	StatusRerouted = "FLIGHT REROUTED DUE TO WEATHER CONDITIONS"
	StatusNoPath   = "NO PATH AVAILABLE"
)

// Status returns the report status line of d.
func Status(d reroute.Decision) string {
	switch {
	case !d.Found():
		return StatusNoPath
	case d.Rerouted:
		return StatusRerouted
	default:
		return StatusOriginal
	}
}

// WriteReport renders d as the plain-text route report.
func WriteReport(w io.Writer, snap core.Snapshot, src, dst int, d reroute.Decision) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Flight %s → %s\n", airportLabel(snap, src), airportLabel(snap, dst))
	if len(d.Hazards) > 0 {
		fmt.Fprintf(&b, "\nBAD WEATHER DETECTED on the direct route %s\n", snap.Label(d.DirectPath))
		writeSegments(&b, "Affected segments:", d.Hazards)
	}

	fmt.Fprintf(&b, "\n%s\n", Status(d))
	switch {
	case !d.Found() && d.BlockedByWeather():
		b.WriteString("All possible routes are affected by bad weather.\n")
	case !d.Found():
		fmt.Fprintf(&b, "No route connects %s and %s.\n", snap.Code(src), snap.Code(dst))
	default:
		fmt.Fprintf(&b, "Route: %s\n", snap.Label(d.Path))
		fmt.Fprintf(&b, "Cost:  %.1f\n", d.Cost)
	}
	if d.Degraded {
		writeSegments(&b, "WARNING: no completely safe route; still crossing:", d.Residual)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func writeSegments(b *strings.Builder, title string, segs []core.Segment) {
	b.WriteString(title + "\n")
	for _, s := range segs {
		fmt.Fprintf(b, "  %s: %s\n", s.Label, s.Description)
	}
}

func airportLabel(snap core.Snapshot, i int) string {
	code := snap.Code(i)
	if name := builder.AirportName(code); name != "" {
		return code + " (" + name + ")"
	}

	return code
}
