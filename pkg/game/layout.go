package game

import (
	"github.com/matzehuels/klondike/pkg/geom"
	"github.com/matzehuels/klondike/pkg/pile"
)

// Layout holds the table's screen-space metrics. Units are whatever the
// renderer uses; the TUI treats them as terminal cells.
type Layout struct {
	CardW  float64 `toml:"card_width"`
	CardH  float64 `toml:"card_height"`
	FanDY  float64 `toml:"fan_offset"`
	GapX   float64 `toml:"gap_x"`
	GapY   float64 `toml:"gap_y"`
	Margin float64 `toml:"margin"`
}

// DefaultLayout returns the metrics used by the terminal renderer: cards
// sized for a card glyph plus padding, fanned two rows apart.
func DefaultLayout() Layout {
	return Layout{
		CardW:  7,
		CardH:  5,
		FanDY:  2,
		GapX:   2,
		GapY:   2,
		Margin: 1,
	}
}

// metrics converts the layout into the card footprint piles render with.
func (l Layout) metrics() pile.Metrics {
	return pile.Metrics{CardW: l.CardW, CardH: l.CardH, FanDY: l.FanDY}
}

// slotX returns the left edge of the n-th card slot in a row.
func (l Layout) slotX(n int) float64 {
	return l.Margin + float64(n)*(l.CardW+l.GapX)
}

// stockBounds places the stock in the top-left corner.
func (l Layout) stockBounds() geom.Rect {
	return geom.NewRect(l.slotX(0), l.Margin, l.CardW, l.CardH)
}

// wasteBounds places the waste beside the stock.
func (l Layout) wasteBounds() geom.Rect {
	return geom.NewRect(l.slotX(1), l.Margin, l.CardW, l.CardH)
}

// foundationBounds places the n-th foundation at the right end of the top
// row, leaving an empty slot after the waste.
func (l Layout) foundationBounds(n int) geom.Rect {
	return geom.NewRect(l.slotX(3+n), l.Margin, l.CardW, l.CardH)
}

// tableauBounds places the n-th tableau column below the top row. The
// rectangle spans the column's maximum fanned extent so that pointer
// hit-testing reaches every card in the fan.
func (l Layout) tableauBounds(n int) geom.Rect {
	y := l.Margin + l.CardH + l.GapY
	h := l.CardH + l.FanDY*float64(pile.TableauCapacity-1)
	return geom.NewRect(l.slotX(n), y, l.CardW, h)
}
