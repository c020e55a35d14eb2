package arc

import (
	"math"
	"strings"

	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	fillGlyph  = "█"
	trackGlyph = "░"
)

// Ring is the terminal render target for a countdown. It only remembers the
// last offset written to it.
type Ring struct {
	geo    Geometry
	offset float64
	Fill   lipgloss.Style
	Track  lipgloss.Style
	Label  lipgloss.Style
}

func NewRing(g Geometry) *Ring {
	return &Ring{
		geo:    g,
		offset: g.Circumference,
		Fill:   lipgloss.NewStyle(),
		Track:  lipgloss.NewStyle().Faint(true),
		Label:  lipgloss.NewStyle().Bold(true),
	}
}

func (r *Ring) SetStrokeDashOffset(v float64) {
	r.offset = v
}

func (r *Ring) Offset() float64 {
	return r.offset
}

func (r *Ring) Geometry() Geometry {
	return r.geo
}

// Rows returns the rendered height in terminal rows.
func (r *Ring) Rows() int {
	rows := int(math.Round(r.geo.Size / config.RingUnitsPerCell))
	if rows < 3 {
		rows = 3
	}
	return rows
}

// View draws the ring, filled clockwise from twelve o'clock, with label
// centred on the middle row.
func (r *Ring) View(label string) string {
	rows := r.Rows()
	cols := rows * 2
	scale := float64(rows) / r.geo.Size
	center := r.geo.Center * scale
	radius := r.geo.Radius * scale
	band := math.Max(0.55, r.geo.StrokeWidth*scale/2)
	drawnLen := r.geo.Circumference - r.offset

	grid := make([][]string, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]string, cols)
		for x := 0; x < cols; x++ {
			dx := (float64(x)+0.5)/2 - center
			dy := float64(y) + 0.5 - center
			if math.Abs(math.Hypot(dx, dy)-radius) > band {
				grid[y][x] = " "
				continue
			}
			angle := math.Atan2(dx, -dy)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			pos := angle / (2 * math.Pi) * r.geo.Circumference
			if pos <= drawnLen {
				grid[y][x] = r.Fill.Render(fillGlyph)
			} else {
				grid[y][x] = r.Track.Render(trackGlyph)
			}
		}
	}

	lines := make([]string, rows)
	mid := rows / 2
	for y := range grid {
		if y == mid && label != "" {
			lines[y] = overlayLabel(grid[y], r.Label.Render(label), cols)
			continue
		}
		lines[y] = strings.Join(grid[y], "")
	}
	return strings.Join(lines, "\n")
}

func overlayLabel(row []string, label string, cols int) string {
	w := ansi.StringWidth(label)
	if w > cols-4 {
		label = ansi.Truncate(label, cols-4, "")
		w = ansi.StringWidth(label)
	}
	start := (cols - w) / 2
	var b strings.Builder
	for x := 0; x < start; x++ {
		b.WriteString(row[x])
	}
	b.WriteString(label)
	for x := start + w; x < cols; x++ {
		b.WriteString(row[x])
	}
	return b.String()
}
