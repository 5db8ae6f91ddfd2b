// Package card defines the immutable playing-card value types: ranks,
// suits, colors, and the Card value itself, plus deck construction with
// seeded shuffling for reproducible deals.
package card

import (
	"fmt"
	"math/rand/v2"
)

// Rank is a card rank from Ace (low) to King.
type Rank int

// Ranks in ascending order. Ace is low, matching solitaire foundation order.
const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankSymbols = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Valid reports whether the rank is within [Ace, King].
func (r Rank) Valid() bool { return r >= Ace && r <= King }

// String returns the short rank symbol (e.g. "A", "10", "Q").
func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankSymbols[r]
}

// Suit is one of the four French suits.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists all four suits in a stable order, one per foundation.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

var suitSymbols = [...]string{"♣", "♦", "♥", "♠"}

// Valid reports whether the suit is one of the four French suits.
func (s Suit) Valid() bool { return s >= Clubs && s <= Spades }

// String returns the suit glyph (e.g. "♥").
func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitSymbols[s]
}

// Color is the red/black coloring of a suit.
type Color int

const (
	Black Color = iota
	Red
)

// String returns "black" or "red".
func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Color returns Red for diamonds and hearts, Black for clubs and spades.
func (s Suit) Color() Color {
	if s == Diamonds || s == Hearts {
		return Red
	}
	return Black
}

// Card is an immutable playing-card value. The zero value is not a valid
// card (its rank is 0); use Valid to distinguish it from dealt cards.
type Card struct {
	Rank Rank
	Suit Suit
}

// Valid reports whether the card has a legal rank and suit.
// The zero Card is invalid, which makes it usable as an absent sentinel.
func (c Card) Valid() bool { return c.Rank.Valid() && c.Suit.Valid() }

// Color returns the card's color, derived from its suit.
func (c Card) Color() Color { return c.Suit.Color() }

// String returns the compact form, e.g. "Q♠" or "10♦".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck returns all 52 cards in a fixed order: suits in Suits order,
// ranks ascending within each suit.
func Deck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for r := Ace; r <= King; r++ {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// Shuffled returns a 52-card deck shuffled with the given seed.
// The same seed always produces the same order, so deals are reproducible.
func Shuffled(seed uint64) []Card {
	deck := Deck()
	rng := rand.New(rand.NewPCG(seed, seed))
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}
