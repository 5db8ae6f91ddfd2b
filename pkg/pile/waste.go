package pile

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/geom"
)

// WasteVariant implements the face-up discard beside the stock. Cards
// arrive only by drawing from the stock (a forced push), never by player
// placement. Cards render squared, top card face up.
type WasteVariant struct {
	BaseVariant
	Metrics Metrics
}

// NewWaste creates the waste pile. Drawing can put the whole deck here,
// so its capacity is the full deck.
func NewWaste(bounds geom.Rect, m Metrics, logger *log.Logger) *Pile {
	return newPile("waste", card.DeckSize, bounds, &WasteVariant{Metrics: m}, logger)
}

// CanPush rejects every card: the waste is fed only by draws.
func (v *WasteVariant) CanPush(*Pile, card.Card) bool { return false }

// CardRect renders every card at the waste's position.
func (v *WasteVariant) CardRect(p *Pile, c card.Card) geom.Rect {
	return squaredRect(p, v.Metrics)
}

var _ Variant = (*WasteVariant)(nil)
