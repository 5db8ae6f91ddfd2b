package pile

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/geom"
)

// CellCapacity is one card: a cell is a parking spot, not a stack.
const CellCapacity = 1

// CellVariant implements a single-card holding slot. Any card may be
// parked in an empty cell; the capacity bound alone keeps it to one card.
type CellVariant struct {
	BaseVariant
	Metrics Metrics
}

// NewCell creates the n-th holding cell (n is zero-based; the display
// name is one-based).
func NewCell(n int, bounds geom.Rect, m Metrics, logger *log.Logger) *Pile {
	return newPile(fmt.Sprintf("cell %d", n+1), CellCapacity, bounds, &CellVariant{Metrics: m}, logger)
}

// CardRect renders the held card at the cell's position.
func (v *CellVariant) CardRect(p *Pile, c card.Card) geom.Rect {
	return squaredRect(p, v.Metrics)
}

var _ Variant = (*CellVariant)(nil)
