// Package export renders recorded frames to files: SVG for a single frame,
// animated GIF for a run, and small SVG line charts of per-frame stats.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/backdrop/internal/surface"
)

// FrameToSVG converts one recorded frame to SVG. Glows become radial
// gradients fading to transparent at their radius.
func FrameToSVG(cmds []surface.Command, width, height float64, background string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	glows := 0
	for _, c := range cmds {
		switch c.Kind {
		case surface.KindClear:
			// the background rect already covers it
		case surface.KindCircle:
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s" fill-opacity="%.3f"/>
`, c.From.X, c.From.Y, c.Radius, c.Color, c.Alpha))
		case surface.KindLine:
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-opacity="%.3f" stroke-width="%.2f"/>
`, c.From.X, c.From.Y, c.To.X, c.To.Y, c.Color, c.Alpha, c.Width))
		case surface.KindGlow:
			id := fmt.Sprintf("glow%d", glows)
			glows++
			sb.WriteString(fmt.Sprintf(`<radialGradient id="%s"><stop offset="0" stop-color="%s" stop-opacity="%.3f"/><stop offset="1" stop-color="%s" stop-opacity="0"/></radialGradient>
<circle cx="%.1f" cy="%.1f" r="%.2f" fill="url(#%s)"/>
`, id, c.Color, c.Alpha, c.Color, c.From.X, c.From.Y, c.Radius, id))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG draws values as a polyline scaled to fill width×height.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	stepX := float64(width) / float64(len(values)-1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range values {
		x := float64(i) * stepX
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
