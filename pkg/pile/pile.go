// Package pile implements the bounded, order-preserving card pile that
// underlies every stack-like zone on a solitaire table: tableau columns,
// foundations, holding cells, the draw stock, and the waste.
//
// A [Pile] guarantees three structural invariants across every operation:
// a fixed capacity set at construction, contiguous occupancy of its slots,
// and strict last-in-first-out order. Everything a concrete zone adds on
// top of that (placement legality, reactions to change, card geometry) is
// supplied through the [Variant] contract rather than baked into the pile,
// so bounds checking and iteration logic exist exactly once.
//
// # Failure semantics
//
// No operation panics. Failed pushes return false, and reads from an empty
// pile return the zero [card.Card] with a false flag. Push-on-full and
// pop-on-empty additionally emit a warning through the pile's logger; a
// push rejected by the legality predicate is silent, since rejecting a
// placement is ordinary gameplay rather than a caller bug.
//
// # Ownership and atomicity
//
// Piles are not safe for concurrent use and give no cross-pile guarantees.
// Moving a card between piles is a caller-orchestrated Pop-then-Push pair:
// if the destination rejects the push, the card is already out of the
// source and the caller must reconcile (typically by force-pushing it
// back). The pile never prevents one card value from residing in two piles
// at once; single ownership is the orchestration layer's discipline.
package pile

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/geom"
)

var (
	// ErrBadCapacity is returned by [New] when capacity is not positive.
	// A pile's capacity is fixed for its lifetime and must admit at least
	// one card.
	ErrBadCapacity = errors.New("pile capacity must be positive")

	// ErrNilVariant is returned by [New] when no variant is supplied.
	// Every pile needs a variant, if only for its card geometry; use
	// [BaseVariant] to get default legality and hooks.
	ErrNilVariant = errors.New("pile variant must not be nil")
)

// Pile is a fixed-capacity LIFO container of cards. Occupied slots are
// always the contiguous prefix [0, Count), bottom card first, and only the
// top card can be removed. The zero value is not usable; construct piles
// with [New] or one of the variant constructors in this package.
type Pile struct {
	name    string
	cards   []card.Card // len == capacity, slots above top are stale
	top     int         // index of the top card, -1 when empty
	bounds  geom.Rect
	variant Variant
	logger  *log.Logger
}

// New creates an empty pile with the given name, capacity, screen bounds,
// and variant. The name appears in diagnostics and identifies the pile to
// players ("tableau 3", "stock"). A nil logger suppresses diagnostics.
func New(name string, capacity int, bounds geom.Rect, v Variant, logger *log.Logger) (*Pile, error) {
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	if v == nil {
		return nil, ErrNilVariant
	}
	return newPile(name, capacity, bounds, v, logger), nil
}

// newPile is the unvalidated constructor used by the in-package variant
// constructors, whose capacities are compile-time constants.
func newPile(name string, capacity int, bounds geom.Rect, v Variant, logger *log.Logger) *Pile {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Pile{
		name:    name,
		cards:   make([]card.Card, capacity),
		top:     -1,
		bounds:  bounds,
		variant: v,
		logger:  logger,
	}
}

// Name returns the pile's display name.
func (p *Pile) Name() string { return p.name }

// Capacity returns the fixed maximum number of resident cards.
func (p *Pile) Capacity() int { return len(p.cards) }

// Count returns the number of cards currently in the pile.
func (p *Pile) Count() int { return p.top + 1 }

// Empty reports whether the pile holds no cards.
func (p *Pile) Empty() bool { return p.top < 0 }

// Full reports whether the pile is at capacity.
func (p *Pile) Full() bool { return p.Count() == len(p.cards) }

// Bounds returns the pile's screen-space rectangle.
func (p *Pile) Bounds() geom.Rect { return p.bounds }

// SetBounds moves the pile's screen-space rectangle. Layout is owned by
// whoever arranges the table; it has no effect on stack state.
func (p *Pile) SetBounds(r geom.Rect) { p.bounds = r }

// Contains reports whether pt lies within the pile's bounds. This is a
// pure geometric test for pointer hit-detection and says nothing about
// whether any card is present.
func (p *Pile) Contains(pt geom.Point) bool { return p.bounds.Contains(pt) }

// Push places c on top of the pile if the variant's legality predicate
// accepts it. It returns false without mutating the pile when the pile is
// full (warning logged) or when the placement is illegal (silent). On
// success the variant's OnPushed hook runs after the card is stored.
func (p *Pile) Push(c card.Card) bool { return p.push(c, false) }

// ForcePush places c on top of the pile, bypassing the legality predicate.
// The capacity bound still applies: a force push onto a full pile fails
// exactly like a normal one. Orchestration uses this to deal, to move
// already-validated runs, and to return cards after a rejected move.
func (p *Pile) ForcePush(c card.Card) bool { return p.push(c, true) }

func (p *Pile) push(c card.Card, force bool) bool {
	// Capacity is checked before legality, so a full pile warns even when
	// the placement would also have been illegal.
	if p.Full() {
		p.logger.Warn("push on full pile", "pile", p.name, "capacity", len(p.cards), "card", c)
		return false
	}
	if !force && !p.variant.CanPush(p, c) {
		return false
	}
	p.top++
	p.cards[p.top] = c
	p.variant.OnPushed(p, c)
	return true
}

// Pop removes and returns the top card. On an empty pile it logs a warning
// and returns the zero card with ok == false. On success the variant's
// OnPopped hook runs after the card is removed.
func (p *Pile) Pop() (card.Card, bool) {
	if p.Empty() {
		p.logger.Warn("pop on empty pile", "pile", p.name)
		return card.Card{}, false
	}
	c := p.cards[p.top]
	p.top--
	p.variant.OnPopped(p, c)
	return c, true
}

// Peek returns the top card without removing it. ok is false when the pile
// is empty. Peek never mutates the pile, runs no hooks, and logs nothing.
func (p *Pile) Peek() (card.Card, bool) {
	if p.Empty() {
		return card.Card{}, false
	}
	return p.cards[p.top], true
}

// At returns the card stored at index i, where 0 is the bottom of the
// pile. ok is false for any index outside the occupied range [0, Count),
// including indices of stale slots left behind by pops.
func (p *Pile) At(i int) (card.Card, bool) {
	if i < 0 || i > p.top {
		return card.Card{}, false
	}
	return p.cards[i], true
}

// Cards returns a snapshot of the occupied slots in bottom-to-top
// insertion order. The returned slice is a copy: mutating the pile after
// the call does not affect it, so it is safe to range over while moving
// cards around.
func (p *Pile) Cards() []card.Card {
	out := make([]card.Card, p.Count())
	copy(out, p.cards[:p.Count()])
	return out
}

// CardRect returns the rectangle where c renders in this pile, delegating
// to the variant's geometry policy.
func (p *Pile) CardRect(c card.Card) geom.Rect {
	return p.variant.CardRect(p, c)
}

// indexOf returns the slot index of the first occupied slot holding c, or
// -1 if c is not resident. It exists for variant geometry and composite
// lookups; external consumers iterate Cards instead.
func (p *Pile) indexOf(c card.Card) int {
	for i := 0; i <= p.top; i++ {
		if p.cards[i] == c {
			return i
		}
	}
	return -1
}
