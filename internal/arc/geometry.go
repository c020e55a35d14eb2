// Package arc holds the countdown ring geometry and its terminal renderer.
package arc

import (
	"errors"
	"math"

	"github.com/akyairhashvil/morning-stretch/internal/config"
)

var ErrInvalidGeometry = errors.New("arc: size and stroke must be positive and finite, stroke < size")

// Geometry describes the circular indicator. It is derived once from Size and
// StrokeWidth and never mutated afterwards.
type Geometry struct {
	Size          float64
	StrokeWidth   float64
	Radius        float64
	Center        float64
	Circumference float64
}

func NewGeometry(size, stroke float64) (Geometry, error) {
	if !finite(size) || !finite(stroke) || size <= 0 || stroke <= 0 || stroke >= size {
		return Geometry{}, ErrInvalidGeometry
	}
	radius := (size - stroke) / 2
	return Geometry{
		Size:          size,
		StrokeWidth:   stroke,
		Radius:        radius,
		Center:        size / 2,
		Circumference: 2 * math.Pi * radius,
	}, nil
}

// DefaultGeometry is the 250-unit ring with a 10-unit stroke.
func DefaultGeometry() Geometry {
	g, _ := NewGeometry(config.RingSize, config.RingStroke)
	return g
}

// DrawnFraction converts a stroke-dash-offset back to the visible share of the ring.
func (g Geometry) DrawnFraction(offset float64) float64 {
	if g.Circumference <= 0 {
		return 0
	}
	f := 1 - offset/g.Circumference
	return math.Max(0, math.Min(1, f))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Target is anything that can be told to set its stroke-dash-offset.
type Target interface {
	SetStrokeDashOffset(v float64)
}
