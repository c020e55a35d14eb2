package tui

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/akyairhashvil/morning-stretch/internal/config"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

// BurstOptions mirrors the knobs of a confetti burst. Velocity 45 launches a
// piece roughly to the top of the screen; gravity is in screen heights per
// second squared per unit.
type BurstOptions struct {
	Count    int
	Spread   float64
	Velocity float64
	Gravity  float64
	Scalar   float64
	OriginY  float64
}

func DefaultBurst() BurstOptions {
	return BurstOptions{
		Count:    config.ConfettiCount,
		Spread:   config.ConfettiSpread,
		Velocity: config.ConfettiVelocity,
		Gravity:  config.ConfettiGravity,
		Scalar:   config.ConfettiScalar,
		OriginY:  config.ConfettiOriginY,
	}
}

const (
	velocityUnit = 1.8 / config.ConfettiVelocity
	gravityUnit  = 2.0
	maxFrames    = config.FrameRate * 5
)

var (
	smallGlyphs = []string{"•", "·", "*", "+"}
	largeGlyphs = []string{"■", "◆", "●", "▲"}
)

type particle struct {
	proj  *harmonica.Projectile
	glyph string
	color lipgloss.Color
}

// Confetti is a set of particles in normalised screen space: x and y run
// from 0 to 1, y grows downward.
type Confetti struct {
	particles []particle
	frames    int
}

func NewConfetti(opts BurstOptions, palette []lipgloss.Color, rng *rand.Rand) *Confetti {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	if len(palette) == 0 {
		palette = []lipgloss.Color{"205"}
	}
	glyphs := smallGlyphs
	if opts.Scalar >= 1.5 {
		glyphs = largeGlyphs
	}
	dt := harmonica.FPS(config.FrameRate)
	gravity := harmonica.Vector{Y: opts.Gravity * gravityUnit}
	spread := opts.Spread * math.Pi / 180

	c := &Confetti{particles: make([]particle, 0, opts.Count)}
	for i := 0; i < opts.Count; i++ {
		// Straight up, jittered across the spread.
		angle := math.Pi/2 + (rng.Float64()-0.5)*spread
		speed := opts.Velocity * velocityUnit * (0.5 + 0.5*rng.Float64())
		vel := harmonica.Vector{
			X: math.Cos(angle) * speed * 0.5,
			Y: -math.Sin(angle) * speed,
		}
		start := harmonica.Point{X: 0.5, Y: opts.OriginY}
		c.particles = append(c.particles, particle{
			proj:  harmonica.NewProjectile(dt, start, vel, gravity),
			glyph: glyphs[rng.IntN(len(glyphs))],
			color: palette[rng.IntN(len(palette))],
		})
	}
	return c
}

// Update advances every particle one frame and drops those that fell away.
func (c *Confetti) Update() {
	if c == nil {
		return
	}
	c.frames++
	live := c.particles[:0]
	for _, p := range c.particles {
		pos := p.proj.Update()
		if pos.Y > 1.3 && p.proj.Velocity().Y > 0 {
			continue
		}
		if c.frames > maxFrames {
			continue
		}
		live = append(live, p)
	}
	c.particles = live
}

func (c *Confetti) Active() bool {
	return c != nil && len(c.particles) > 0
}

func (c *Confetti) Len() int {
	if c == nil {
		return 0
	}
	return len(c.particles)
}

// View rasterises visible particles into a width×height block.
func (c *Confetti) View(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]string, height)
	for y := range grid {
		grid[y] = make([]string, width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	if c != nil {
		for _, p := range c.particles {
			pos := p.proj.Position()
			x := int(pos.X * float64(width))
			y := int(pos.Y * float64(height))
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			grid[y][x] = lipgloss.NewStyle().Foreground(p.color).Render(p.glyph)
		}
	}
	lines := make([]string, height)
	for y := range grid {
		lines[y] = strings.Join(grid[y], "")
	}
	return strings.Join(lines, "\n")
}
