package pile

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/geom"
)

// StockVariant implements the face-down draw stock. Players never place
// cards here, so the legality predicate rejects everything; dealing and
// recycling the waste go through ForcePush. Cards render squared.
type StockVariant struct {
	BaseVariant
	Metrics Metrics
}

// NewStock creates the draw stock. Its capacity is the full deck, since
// the entire deck sits here before the deal.
func NewStock(bounds geom.Rect, m Metrics, logger *log.Logger) *Pile {
	return newPile("stock", card.DeckSize, bounds, &StockVariant{Metrics: m}, logger)
}

// CanPush rejects every card: the stock is fed only by forced pushes.
func (v *StockVariant) CanPush(*Pile, card.Card) bool { return false }

// CardRect renders every card at the stock's position.
func (v *StockVariant) CardRect(p *Pile, c card.Card) geom.Rect {
	return squaredRect(p, v.Metrics)
}

var _ Variant = (*StockVariant)(nil)
