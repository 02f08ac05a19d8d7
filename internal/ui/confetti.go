package ui

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type particle struct {
	x, y   float64
	vx, vy float64
	glyph  rune
	color  int
}

// Confetti is a falling-particle field. Call Step once per animation frame.
type Confetti struct {
	theme     Theme
	rng       *rand.Rand
	width     int
	height    int
	particles []particle
}

// NewConfetti seeds a field; the same seed always animates the same way.
func NewConfetti(t Theme, seed uint64) *Confetti {
	if len(t.Glyphs) == 0 {
		t.Glyphs = []rune{'*'}
	}
	return &Confetti{
		theme: t,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Resize sets the field size and respawns the particles.
func (c *Confetti) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == c.width && height == c.height && len(c.particles) > 0 {
		return
	}
	c.width, c.height = width, height
	n := width * height / 12
	if n < 4 {
		n = 4
	}
	c.particles = make([]particle, n)
	for i := range c.particles {
		c.particles[i] = c.spawn(float64(c.rng.IntN(height)))
	}
}

func (c *Confetti) spawn(y float64) particle {
	p := particle{
		x:     c.rng.Float64() * float64(c.width),
		y:     y,
		vx:    (c.rng.Float64() - 0.5) * 0.6,
		vy:    0.3 + c.rng.Float64()*0.7,
		glyph: c.theme.Glyphs[c.rng.IntN(len(c.theme.Glyphs))],
	}
	if len(c.theme.Confetti) > 0 {
		p.color = c.rng.IntN(len(c.theme.Confetti))
	}
	return p
}

// Step advances every particle one frame; particles leaving the bottom
// re-enter at the top.
func (c *Confetti) Step() {
	for i := range c.particles {
		p := &c.particles[i]
		p.x += p.vx
		p.y += p.vy
		if p.x < 0 {
			p.x += float64(c.width)
		} else if p.x >= float64(c.width) {
			p.x -= float64(c.width)
		}
		if p.y >= float64(c.height) {
			*p = c.spawn(0)
		}
	}
}

func (c *Confetti) grid() [][]int {
	g := make([][]int, c.height)
	for y := range g {
		g[y] = make([]int, c.width)
		for x := range g[y] {
			g[y][x] = -1
		}
	}
	for i, p := range c.particles {
		x, y := int(p.x), int(p.y)
		if x >= 0 && x < c.width && y >= 0 && y < c.height {
			g[y][x] = i
		}
	}
	return g
}

func (c *Confetti) renderCells(row []int) string {
	var b strings.Builder
	for _, idx := range row {
		if idx < 0 {
			b.WriteByte(' ')
			continue
		}
		p := c.particles[idx]
		s := string(p.glyph)
		if len(c.theme.Confetti) > 0 {
			s = lipgloss.NewStyle().Foreground(c.theme.Confetti[p.color]).Render(s)
		}
		b.WriteString(s)
	}
	return b.String()
}

// View renders the field.
func (c *Confetti) View() string {
	return c.Overlay("")
}

// Overlay renders the field with box centered on top of it. Rows the box
// covers keep their confetti left and right of it.
func (c *Confetti) Overlay(box string) string {
	g := c.grid()
	var lines []string
	if box != "" {
		lines = strings.Split(box, "\n")
	}
	boxW := lipgloss.Width(box)
	top := (c.height - len(lines)) / 2
	left := (c.width - boxW) / 2
	if left < 0 {
		left = 0
	}

	rows := make([]string, c.height)
	for y := range g {
		i := y - top
		if i < 0 || i >= len(lines) || boxW > c.width {
			rows[y] = c.renderCells(g[y])
			if i >= 0 && i < len(lines) {
				rows[y] = lines[i]
			}
			continue
		}
		line := lines[i]
		if pad := boxW - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows[y] = c.renderCells(g[y][:left]) + line + c.renderCells(g[y][left+boxW:])
	}
	return strings.Join(rows, "\n")
}

// Count is the number of live particles.
func (c *Confetti) Count() int { return len(c.particles) }
