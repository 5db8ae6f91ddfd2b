// Package game orchestrates a klondike solitaire session on top of the
// pile primitive: it deals a seeded deck into the table's piles, applies
// player moves as Pop-then-Push sequences, tracks which tableau cards are
// face up, and detects the win.
//
// The piles guarantee only single-pile invariants. Everything cross-pile -
// a card never living in two piles, a failed move leaving the table
// unchanged - is this package's discipline: every move pops first, pushes
// second, and force-pushes the cards back onto their source when the
// destination rejects them.
package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/errors"
	"github.com/matzehuels/klondike/pkg/geom"
	"github.com/matzehuels/klondike/pkg/pile"
)

// Zone identifies a kind of pile on the table.
type Zone int

const (
	ZoneStock Zone = iota
	ZoneWaste
	ZoneFoundation
	ZoneTableau
)

// String returns the zone name used in errors and logs.
func (z Zone) String() string {
	switch z {
	case ZoneStock:
		return "stock"
	case ZoneWaste:
		return "waste"
	case ZoneFoundation:
		return "foundation"
	case ZoneTableau:
		return "tableau"
	default:
		return fmt.Sprintf("Zone(%d)", int(z))
	}
}

// Ref addresses one pile on the table. Index is meaningful only for
// foundations (0-3) and tableaus (0-6).
type Ref struct {
	Zone  Zone
	Index int
}

// String returns a short address like "tableau 3" or "stock".
func (r Ref) String() string {
	if r.Zone == ZoneFoundation || r.Zone == ZoneTableau {
		return fmt.Sprintf("%s %d", r.Zone, r.Index+1)
	}
	return r.Zone.String()
}

// Counts of each pile kind on a klondike table.
const (
	NumFoundations = 4
	NumTableaus    = 7
)

// Config controls a new deal.
type Config struct {
	Seed      uint64 // shuffle seed; same seed, same deal
	DrawCount int    // cards per draw, 1 or 3
	Layout    Layout
	Logger    *log.Logger // nil suppresses diagnostics
}

// Table is one klondike game in progress. It owns the stock, waste, four
// foundations, and seven tableau columns, and is the only component that
// moves cards between them.
//
// Table is not safe for concurrent use; the TUI drives it from a single
// frame loop.
type Table struct {
	id          uuid.UUID
	stock       *pile.Pile
	waste       *pile.Pile
	foundations [NumFoundations]*pile.Pile
	tableaus    [NumTableaus]*pile.Pile
	faceUp      [NumTableaus]int // face-up cards at the top of each column
	drawCount   int
	moves       int
	layout      Layout
	logger      *log.Logger
}

// New deals a fresh table from the configured seed: one to seven cards
// across the tableau columns with the top card of each face up, and the
// remaining 24 cards in the stock.
func New(cfg Config) (*Table, error) {
	if cfg.DrawCount != 1 && cfg.DrawCount != 3 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "draw count must be 1 or 3, got %d", cfg.DrawCount)
	}

	id := uuid.New()
	logger := cfg.Logger
	if logger != nil {
		logger = logger.With("game", id.String())
	}

	l := cfg.Layout
	m := l.metrics()

	t := &Table{
		id:        id,
		stock:     pile.NewStock(l.stockBounds(), m, logger),
		waste:     pile.NewWaste(l.wasteBounds(), m, logger),
		drawCount: cfg.DrawCount,
		layout:    l,
		logger:    logger,
	}
	for i, s := range card.Suits {
		t.foundations[i] = pile.NewFoundation(s, l.foundationBounds(i), m, logger)
	}
	for i := range t.tableaus {
		t.tableaus[i] = pile.NewTableau(i, l.tableauBounds(i), m, logger)
	}

	deck := card.Shuffled(cfg.Seed)
	next := 0
	for col := range t.tableaus {
		for range col + 1 {
			t.tableaus[col].ForcePush(deck[next])
			next++
		}
		t.faceUp[col] = 1
	}
	for ; next < len(deck); next++ {
		t.stock.ForcePush(deck[next])
	}

	if logger != nil {
		logger.Debug("dealt table", "seed", cfg.Seed, "draw", cfg.DrawCount, "stock", t.stock.Count())
	}
	return t, nil
}

// ID returns the game's unique identifier, used for log correlation.
func (t *Table) ID() uuid.UUID { return t.id }

// Moves returns the number of successful moves so far, draws included.
func (t *Table) Moves() int { return t.moves }

// DrawCount returns how many cards each draw turns over.
func (t *Table) DrawCount() int { return t.drawCount }

// Layout returns the metrics the table was arranged with.
func (t *Table) Layout() Layout { return t.layout }

// Pile resolves a reference to its pile, or an UNKNOWN_PILE error when the
// zone or index is out of range.
func (t *Table) Pile(r Ref) (*pile.Pile, error) {
	switch r.Zone {
	case ZoneStock:
		return t.stock, nil
	case ZoneWaste:
		return t.waste, nil
	case ZoneFoundation:
		if r.Index < 0 || r.Index >= NumFoundations {
			return nil, errors.New(errors.ErrCodeUnknownPile, "no foundation %d", r.Index+1)
		}
		return t.foundations[r.Index], nil
	case ZoneTableau:
		if r.Index < 0 || r.Index >= NumTableaus {
			return nil, errors.New(errors.ErrCodeUnknownPile, "no tableau %d", r.Index+1)
		}
		return t.tableaus[r.Index], nil
	default:
		return nil, errors.New(errors.ErrCodeUnknownPile, "unknown zone %d", int(r.Zone))
	}
}

// Refs returns every pile address on the table in rendering order: stock,
// waste, foundations left to right, tableaus left to right.
func (t *Table) Refs() []Ref {
	refs := make([]Ref, 0, 2+NumFoundations+NumTableaus)
	refs = append(refs, Ref{Zone: ZoneStock}, Ref{Zone: ZoneWaste})
	for i := range NumFoundations {
		refs = append(refs, Ref{Zone: ZoneFoundation, Index: i})
	}
	for i := range NumTableaus {
		refs = append(refs, Ref{Zone: ZoneTableau, Index: i})
	}
	return refs
}

// PileAt returns the reference of the pile whose bounds contain pt.
// ok is false when the point hits empty table felt.
func (t *Table) PileAt(pt geom.Point) (Ref, bool) {
	for _, r := range t.Refs() {
		p, err := t.Pile(r)
		if err != nil {
			continue
		}
		if p.Contains(pt) {
			return r, true
		}
	}
	return Ref{}, false
}

// FaceUp returns how many cards at the top of tableau column n are face
// up. It is zero for an empty column and for out-of-range columns.
func (t *Table) FaceUp(n int) int {
	if n < 0 || n >= NumTableaus {
		return 0
	}
	return t.faceUp[n]
}

// IsFaceUp reports whether the card at slot i of tableau column n is face
// up. Cards in every other zone are face up except the stock.
func (t *Table) IsFaceUp(r Ref, i int) bool {
	switch r.Zone {
	case ZoneStock:
		return false
	case ZoneTableau:
		p, err := t.Pile(r)
		if err != nil {
			return false
		}
		return i >= p.Count()-t.FaceUp(r.Index)
	default:
		return true
	}
}

// Won reports whether every foundation holds its full suit.
func (t *Table) Won() bool {
	for _, f := range t.foundations {
		if !f.Full() {
			return false
		}
	}
	return true
}
