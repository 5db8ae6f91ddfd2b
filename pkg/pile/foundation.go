package pile

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/geom"
)

// FoundationCapacity is a full suit, Ace through King.
const FoundationCapacity = 13

// FoundationVariant implements a suit foundation: it accepts only its own
// suit, starting from the Ace and ascending one rank at a time. Cards
// render squared, so only the top card is visible.
type FoundationVariant struct {
	BaseVariant
	Suit    card.Suit
	Metrics Metrics
}

// NewFoundation creates the foundation for the given suit.
func NewFoundation(suit card.Suit, bounds geom.Rect, m Metrics, logger *log.Logger) *Pile {
	return newPile("foundation "+suit.String(), FoundationCapacity, bounds, &FoundationVariant{Suit: suit, Metrics: m}, logger)
}

// CanPush accepts the Ace of the foundation's suit onto an empty pile, or
// the next rank up in the same suit.
func (v *FoundationVariant) CanPush(p *Pile, c card.Card) bool {
	if c.Suit != v.Suit {
		return false
	}
	top, ok := p.Peek()
	if !ok {
		return c.Rank == card.Ace
	}
	return c.Rank == top.Rank+1
}

// CardRect renders every card at the pile's position.
func (v *FoundationVariant) CardRect(p *Pile, c card.Card) geom.Rect {
	return squaredRect(p, v.Metrics)
}

var _ Variant = (*FoundationVariant)(nil)
