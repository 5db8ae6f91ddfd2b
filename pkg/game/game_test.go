package game

import (
	"testing"

	"github.com/matzehuels/klondike/pkg/card"
	"github.com/matzehuels/klondike/pkg/errors"
	"github.com/matzehuels/klondike/pkg/geom"
	"github.com/matzehuels/klondike/pkg/pile"
)

func newTestTable(t *testing.T, seed uint64, draw int) *Table {
	t.Helper()
	table, err := New(Config{Seed: seed, DrawCount: draw, Layout: DefaultLayout()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return table
}

// clearPile empties p without caring about what it held.
func clearPile(p *pile.Pile) {
	for !p.Empty() {
		p.Pop()
	}
}

func TestNewDeal(t *testing.T) {
	table := newTestTable(t, 7, 1)

	for i, col := range table.tableaus {
		if got, want := col.Count(), i+1; got != want {
			t.Errorf("tableau %d has %d cards, want %d", i+1, got, want)
		}
		if table.FaceUp(i) != 1 {
			t.Errorf("tableau %d has %d face-up cards, want 1", i+1, table.FaceUp(i))
		}
	}
	if got := table.stock.Count(); got != 24 {
		t.Errorf("stock has %d cards, want 24", got)
	}
	if !table.waste.Empty() {
		t.Error("waste should start empty")
	}
	for i, f := range table.foundations {
		if !f.Empty() {
			t.Errorf("foundation %d should start empty", i+1)
		}
	}
	if table.Moves() != 0 {
		t.Errorf("Moves() = %d on a fresh deal, want 0", table.Moves())
	}
}

func TestNewDealDeterminism(t *testing.T) {
	a := newTestTable(t, 99, 1)
	b := newTestTable(t, 99, 1)

	for i := range a.tableaus {
		ac, bc := a.tableaus[i].Cards(), b.tableaus[i].Cards()
		for j := range ac {
			if ac[j] != bc[j] {
				t.Fatalf("same seed dealt different tableaus at column %d", i+1)
			}
		}
	}
}

func TestNewRejectsBadDrawCount(t *testing.T) {
	for _, draw := range []int{0, 2, -1, 4} {
		_, err := New(Config{Seed: 1, DrawCount: draw, Layout: DefaultLayout()})
		if !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("New with draw %d: error = %v, want INVALID_CONFIG", draw, err)
		}
	}
}

func TestDraw(t *testing.T) {
	tests := []struct {
		name      string
		draw      int
		wantWaste int
	}{
		{name: "draw one", draw: 1, wantWaste: 1},
		{name: "draw three", draw: 3, wantWaste: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := newTestTable(t, 7, tt.draw)
			before := table.stock.Count()

			if err := table.Draw(); err != nil {
				t.Fatalf("Draw: %v", err)
			}
			if got := table.waste.Count(); got != tt.wantWaste {
				t.Errorf("waste has %d cards, want %d", got, tt.wantWaste)
			}
			if got := table.stock.Count(); got != before-tt.wantWaste {
				t.Errorf("stock has %d cards, want %d", got, before-tt.wantWaste)
			}
		})
	}
}

func TestDrawShortFinalDraw(t *testing.T) {
	table := newTestTable(t, 7, 3)
	// 24 stock cards: 8 full draws of 3.
	for range 8 {
		if err := table.Draw(); err != nil {
			t.Fatalf("Draw: %v", err)
		}
	}
	if !table.stock.Empty() {
		t.Fatalf("stock should be empty after 8 draws, has %d", table.stock.Count())
	}
	if got := table.waste.Count(); got != 24 {
		t.Fatalf("waste has %d cards, want 24", got)
	}
}

func TestDrawRecyclesWaste(t *testing.T) {
	table := newTestTable(t, 7, 1)
	original := table.stock.Cards()

	for range 24 {
		if err := table.Draw(); err != nil {
			t.Fatalf("Draw: %v", err)
		}
	}
	// Stock exhausted: the next draw recycles.
	if err := table.Draw(); err != nil {
		t.Fatalf("recycle draw: %v", err)
	}
	if !table.waste.Empty() {
		t.Error("waste should be empty after recycling")
	}
	recycled := table.stock.Cards()
	if len(recycled) != len(original) {
		t.Fatalf("stock has %d cards after recycle, want %d", len(recycled), len(original))
	}
	for i := range original {
		if recycled[i] != original[i] {
			t.Fatalf("recycle changed draw order at %d: %v != %v", i, recycled[i], original[i])
		}
	}
}

func TestDrawEverythingEmpty(t *testing.T) {
	table := newTestTable(t, 7, 1)
	clearPile(table.stock)

	err := table.Draw()
	if !errors.Is(err, errors.ErrCodeEmptyPile) {
		t.Errorf("Draw on empty stock and waste: error = %v, want EMPTY_PILE", err)
	}
}

func TestPileAt(t *testing.T) {
	table := newTestTable(t, 7, 1)
	l := table.Layout()

	tests := []struct {
		name   string
		point  geom.Point
		want   Ref
		wantOK bool
	}{
		{
			name:   "stock corner",
			point:  geom.Point{X: l.Margin + 1, Y: l.Margin + 1},
			want:   Ref{Zone: ZoneStock},
			wantOK: true,
		},
		{
			name:   "waste",
			point:  geom.Point{X: l.slotX(1) + 1, Y: l.Margin + 1},
			want:   Ref{Zone: ZoneWaste},
			wantOK: true,
		},
		{
			name:   "second foundation",
			point:  geom.Point{X: l.slotX(4) + 1, Y: l.Margin + 1},
			want:   Ref{Zone: ZoneFoundation, Index: 1},
			wantOK: true,
		},
		{
			name:   "third tableau deep in the fan",
			point:  geom.Point{X: l.slotX(2) + 1, Y: l.Margin + l.CardH + l.GapY + 10},
			want:   Ref{Zone: ZoneTableau, Index: 2},
			wantOK: true,
		},
		{
			name:   "empty felt between rows",
			point:  geom.Point{X: l.slotX(2) + 1, Y: l.Margin + l.CardH + l.GapY/2},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.PileAt(tt.point)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("PileAt(%v) = %v, %v, want %v, %v", tt.point, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestIsFaceUp(t *testing.T) {
	table := newTestTable(t, 7, 1)

	col := Ref{Zone: ZoneTableau, Index: 4} // 5 cards, top face up
	if table.IsFaceUp(col, 3) {
		t.Error("buried tableau card should be face down")
	}
	if !table.IsFaceUp(col, 4) {
		t.Error("top tableau card should be face up")
	}
	if !table.IsFaceUp(Ref{Zone: ZoneWaste}, 0) {
		t.Error("waste cards are face up")
	}
	if table.IsFaceUp(Ref{Zone: ZoneStock}, 0) {
		t.Error("stock cards are face down")
	}
}

func TestWon(t *testing.T) {
	table := newTestTable(t, 7, 1)
	if table.Won() {
		t.Fatal("fresh deal should not be won")
	}

	for i, s := range card.Suits {
		for r := card.Ace; r <= card.King; r++ {
			if !table.foundations[i].ForcePush(card.Card{Rank: r, Suit: s}) {
				t.Fatalf("seeding foundation %v failed at %v", s, r)
			}
		}
	}
	if !table.Won() {
		t.Error("full foundations should win")
	}
}
