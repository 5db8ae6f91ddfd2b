package pile

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/geom"
)

// TableauCapacity is the most cards a tableau column can ever hold: six
// face-down cards from the deal under a full King-to-Ace run.
const TableauCapacity = 19

// TableauVariant implements the tableau column rules: cards stack in
// descending rank with alternating colors, and only a King may start an
// empty column. Cards fan downward so every resident card stays visible.
type TableauVariant struct {
	BaseVariant
	Metrics Metrics
}

// NewTableau creates the n-th tableau column (n is zero-based; the display
// name is one-based).
func NewTableau(n int, bounds geom.Rect, m Metrics, logger *log.Logger) *Pile {
	return newPile(fmt.Sprintf("tableau %d", n+1), TableauCapacity, bounds, &TableauVariant{Metrics: m}, logger)
}

// CanPush accepts a King onto an empty column, or a card one rank below
// the current top in the opposite color.
func (v *TableauVariant) CanPush(p *Pile, c card.Card) bool {
	top, ok := p.Peek()
	if !ok {
		return c.Rank == card.King
	}
	return c.Color() != top.Color() && c.Rank == top.Rank-1
}

// CardRect fans cards downward: the card at slot i renders FanDY below the
// card at slot i-1. A non-resident card is placed where it would land as
// the new top.
func (v *TableauVariant) CardRect(p *Pile, c card.Card) geom.Rect {
	i := p.indexOf(c)
	if i < 0 {
		i = p.Count()
	}
	return squaredRect(p, v.Metrics).Translate(0, float64(i)*v.Metrics.FanDY)
}

var _ Variant = (*TableauVariant)(nil)
