package game

import (
	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/errors"
)

// Draw turns over the next cards from the stock onto the waste. With an
// empty stock it recycles the waste back into the stock instead, restoring
// the original draw order. Drawing from an empty stock and empty waste is
// an EMPTY_PILE error.
func (t *Table) Draw() error {
	if t.stock.Empty() {
		if t.waste.Empty() {
			return errors.New(errors.ErrCodeEmptyPile, "nothing left to draw")
		}
		// Popping the whole waste reverses it, which is exactly the
		// recycle order klondike wants.
		recycled := 0
		for {
			c, ok := t.waste.Pop()
			if !ok {
				break
			}
			t.stock.ForcePush(c)
			recycled++
		}
		t.moves++
		if t.logger != nil {
			t.logger.Debug("recycled waste", "cards", recycled)
		}
		return nil
	}

	for range t.drawCount {
		c, ok := t.stock.Pop()
		if !ok {
			break
		}
		t.waste.ForcePush(c)
	}
	t.moves++
	return nil
}

// Move transfers n cards from src to dst. n must be 1 except for
// tableau-to-tableau moves, which may carry a face-up run.
//
// The transfer is the documented two-step seam: the cards are popped from
// src before dst has accepted them. When dst rejects the placement the
// popped cards are force-pushed back onto src in their original order and
// an ILLEGAL_MOVE error is returned, so a failed move is invisible to the
// player.
func (t *Table) Move(src, dst Ref, n int) error {
	srcPile, err := t.Pile(src)
	if err != nil {
		return err
	}
	dstPile, err := t.Pile(dst)
	if err != nil {
		return err
	}

	if src.Zone == ZoneStock {
		return errors.New(errors.ErrCodeIllegalMove, "cards leave the stock only by drawing")
	}
	if dst.Zone == ZoneStock || dst.Zone == ZoneWaste {
		return errors.New(errors.ErrCodeIllegalMove, "cannot place cards on the %s", dst.Zone)
	}

	if n < 1 {
		return errors.New(errors.ErrCodeBadRunDepth, "must move at least one card, got %d", n)
	}
	if n > 1 && (src.Zone != ZoneTableau || dst.Zone != ZoneTableau) {
		return errors.New(errors.ErrCodeBadRunDepth, "only tableau-to-tableau moves may carry a run")
	}
	if src.Zone == ZoneTableau && n > t.FaceUp(src.Index) {
		return errors.New(errors.ErrCodeBadRunDepth, "only %d face-up cards on %s", t.FaceUp(src.Index), src)
	}
	if srcPile.Empty() {
		return errors.New(errors.ErrCodeEmptyPile, "%s is empty", src)
	}
	if n > srcPile.Count() {
		return errors.New(errors.ErrCodeBadRunDepth, "%s holds %d cards, not %d", src, srcPile.Count(), n)
	}

	// Pop the run, top card first. scratch[n-1] is the run's bottom card,
	// the one the destination judges.
	scratch := make([]card.Card, 0, n)
	for range n {
		c, ok := srcPile.Pop()
		if !ok {
			break
		}
		scratch = append(scratch, c)
	}

	if !dstPile.Push(scratch[len(scratch)-1]) {
		// Rejected: undo the pops so the table looks untouched.
		for i := len(scratch) - 1; i >= 0; i-- {
			srcPile.ForcePush(scratch[i])
		}
		return errors.New(errors.ErrCodeIllegalMove, "cannot place %s on %s", scratch[len(scratch)-1], dst)
	}
	// The rest of a face-up run is already in legal order; pushing it
	// card by card through the legality predicate would re-check what the
	// source column established.
	for i := len(scratch) - 2; i >= 0; i-- {
		dstPile.ForcePush(scratch[i])
	}

	t.settleFaceUp(src, dst, n)
	t.moves++
	if t.logger != nil {
		t.logger.Debug("moved", "from", src.String(), "to", dst.String(), "cards", n)
	}
	return nil
}

// settleFaceUp adjusts the face-up bookkeeping after a successful move,
// flipping a newly exposed tableau card.
func (t *Table) settleFaceUp(src, dst Ref, n int) {
	if src.Zone == ZoneTableau {
		t.faceUp[src.Index] -= n
		if t.faceUp[src.Index] <= 0 {
			t.faceUp[src.Index] = 0
			if !t.tableaus[src.Index].Empty() {
				t.faceUp[src.Index] = 1
			}
		}
	}
	if dst.Zone == ZoneTableau {
		t.faceUp[dst.Index] += n
	}
}

// foundationFor returns the foundation index for c's suit.
func foundationFor(c card.Card) int {
	for i, s := range card.Suits {
		if s == c.Suit {
			return i
		}
	}
	return 0 // unreachable for valid cards
}

// AutoFoundation repeatedly moves every eligible waste and tableau top
// card onto its foundation until nothing more fits, and returns the number
// of cards moved.
func (t *Table) AutoFoundation() int {
	total := 0
	for {
		movedThisPass := false
		sources := make([]Ref, 0, 1+NumTableaus)
		sources = append(sources, Ref{Zone: ZoneWaste})
		for i := range NumTableaus {
			sources = append(sources, Ref{Zone: ZoneTableau, Index: i})
		}

		for _, src := range sources {
			p, err := t.Pile(src)
			if err != nil {
				continue
			}
			top, ok := p.Peek()
			if !ok {
				continue
			}
			dst := Ref{Zone: ZoneFoundation, Index: foundationFor(top)}
			if t.Move(src, dst, 1) == nil {
				total++
				movedThisPass = true
			}
		}
		if !movedThisPass {
			return total
		}
	}
}
