package cli

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/game"
	"github.com/matzehuels/klondike/pkg/geom"
	"github.com/matzehuels/klondike/pkg/pile"
)

// =============================================================================
// Canvas - styled character grid
// =============================================================================

// canvas is a fixed-size grid of styled runes the table is painted onto.
// Painting happens bottom card first, so overlapping fanned cards occlude
// naturally, the same way physical cards do.
type canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]*lipgloss.Style
}

func newCanvas(w, h int) *canvas {
	runes := make([][]rune, h)
	styles := make([][]*lipgloss.Style, h)
	for y := range runes {
		runes[y] = make([]rune, w)
		styles[y] = make([]*lipgloss.Style, w)
		for x := range runes[y] {
			runes[y][x] = ' '
		}
	}
	return &canvas{w: w, h: h, runes: runes, styles: styles}
}

func (c *canvas) set(x, y int, ch rune, st *lipgloss.Style) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.runes[y][x] = ch
	c.styles[y][x] = st
}

// box paints a border around r using box-drawing runes.
func (c *canvas) box(r geom.Rect, st *lipgloss.Style) {
	x0, y0 := round(r.X), round(r.Y)
	x1, y1 := round(r.Right())-1, round(r.Bottom())-1

	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─', st)
		c.set(x, y1, '─', st)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│', st)
		c.set(x1, y, '│', st)
	}
	c.set(x0, y0, '┌', st)
	c.set(x1, y0, '┐', st)
	c.set(x0, y1, '└', st)
	c.set(x1, y1, '┘', st)
}

// fill paints the interior of r with ch.
func (c *canvas) fill(r geom.Rect, ch rune, st *lipgloss.Style) {
	for y := round(r.Y) + 1; y < round(r.Bottom())-1; y++ {
		for x := round(r.X) + 1; x < round(r.Right())-1; x++ {
			c.set(x, y, ch, st)
		}
	}
}

// text writes s starting at (x, y), clipped to the canvas.
func (c *canvas) text(x, y int, s string, st *lipgloss.Style) {
	for i, ch := range []rune(s) {
		c.set(x+i, y, ch, st)
	}
}

// String flattens the grid into styled terminal output.
func (c *canvas) String() string {
	var b strings.Builder
	for y := range c.runes {
		for x, ch := range c.runes[y] {
			if st := c.styles[y][x]; st != nil {
				b.WriteString(st.Render(string(ch)))
			} else {
				b.WriteRune(ch)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func round(f float64) int { return int(math.Round(f)) }

// =============================================================================
// Table rendering
// =============================================================================

// selection marks cards the player has picked up: the top depth cards of
// the pile at ref.
type selection struct {
	ref   game.Ref
	depth int
}

// renderTable paints the whole table. src highlights a picked-up run and
// cursor outlines the pile the keyboard is pointing at; both may be nil.
func renderTable(t *game.Table, src *selection, cursor *game.Ref) string {
	c := newCanvas(tableExtent(t))

	for _, ref := range t.Refs() {
		p, err := t.Pile(ref)
		if err != nil {
			continue
		}
		renderPile(c, t, ref, p, src)
		if cursor != nil && ref == *cursor {
			c.box(footprint(p, t.Layout()), &styleSelected)
		}
	}
	return c.String()
}

// footprint is the empty-slot rectangle of a pile: its anchor with the
// layout's card dimensions.
func footprint(p *pile.Pile, l game.Layout) geom.Rect {
	b := p.Bounds()
	return geom.NewRect(b.X, b.Y, l.CardW, l.CardH)
}

func renderPile(c *canvas, t *game.Table, ref game.Ref, p *pile.Pile, src *selection) {
	if p.Empty() {
		c.box(footprint(p, t.Layout()), &styleSlot)
		return
	}

	cards := p.Cards()
	for i, cd := range cards {
		rect := p.CardRect(cd)
		picked := src != nil && src.ref == ref && i >= len(cards)-src.depth
		renderCard(c, rect, cd, t.IsFaceUp(ref, i), picked)
	}
}

func renderCard(c *canvas, r geom.Rect, cd card.Card, faceUp, picked bool) {
	border := &styleCardBlack
	if picked {
		border = &styleSelected
	}

	// Blank the card area first so cards underneath do not bleed through.
	c.fill(r, ' ', nil)
	c.box(r, border)

	if !faceUp {
		c.fill(r, '░', &styleCardBack)
		return
	}

	label := &styleCardBlack
	if cd.Color() == card.Red {
		label = &styleCardRed
	}
	c.text(round(r.X)+1, round(r.Y)+1, cd.String(), label)
}

// tableExtent computes the canvas size that fits every pile and every
// resident card, with one cell of padding.
func tableExtent(t *game.Table) (w, h int) {
	for _, ref := range t.Refs() {
		p, err := t.Pile(ref)
		if err != nil {
			continue
		}
		rects := []geom.Rect{footprint(p, t.Layout())}
		for _, cd := range p.Cards() {
			rects = append(rects, p.CardRect(cd))
		}
		for _, r := range rects {
			if x := round(r.Right()) + 1; x > w {
				w = x
			}
			if y := round(r.Bottom()) + 1; y > h {
				h = y
			}
		}
	}
	return w, h
}
