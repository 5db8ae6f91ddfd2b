package pile

import (
	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/geom"
)

// Variant is the extension contract a concrete pile kind implements. The
// pile owns every structural concern (capacity, contiguity, LIFO order)
// and consults its variant only for placement legality, reactions to
// successful mutation, and card geometry.
//
// Embed [BaseVariant] to inherit default legality (always accept) and
// no-op hooks. CardRect has deliberately no default: every pile kind must
// decide where its cards render.
type Variant interface {
	// CanPush reports whether c may be placed on top of p. It is consulted
	// only after the capacity check passes, and never for force pushes.
	CanPush(p *Pile, c card.Card) bool

	// OnPushed runs after c has been stored as p's new top.
	OnPushed(p *Pile, c card.Card)

	// OnPopped runs after c has been removed from p.
	OnPopped(p *Pile, c card.Card)

	// CardRect returns the rectangle where c renders in p. For a resident
	// card this is its actual position; for a non-resident card it is the
	// position the card would take as the new top.
	CardRect(p *Pile, c card.Card) geom.Rect
}

// BaseVariant provides the default legality predicate (every card is
// accepted) and no-op mutation hooks. It does not provide CardRect, so
// embedding it still forces a geometry decision.
type BaseVariant struct{}

// CanPush accepts every card.
func (BaseVariant) CanPush(*Pile, card.Card) bool { return true }

// OnPushed does nothing.
func (BaseVariant) OnPushed(*Pile, card.Card) {}

// OnPopped does nothing.
func (BaseVariant) OnPopped(*Pile, card.Card) {}

// Metrics holds the card footprint shared by the variant geometries.
// FanDY is the vertical offset between consecutive cards in a fanned
// column; squared piles ignore it.
type Metrics struct {
	CardW, CardH float64
	FanDY        float64
}

// squaredRect is the geometry of piles whose cards all render at the same
// spot: the card footprint anchored at the pile's top-left corner.
func squaredRect(p *Pile, m Metrics) geom.Rect {
	b := p.Bounds()
	return geom.NewRect(b.X, b.Y, m.CardW, m.CardH)
}
