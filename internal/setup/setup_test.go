package setup

import (
	"testing"

	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/state"
)

func deckOf(n int) []string {
	deck := make([]string, n)
	for i := range deck {
		deck[i] = "chrome_sentinel"
	}
	return deck
}

func TestNewInitialState_DealsFiveCardsPerSeat(t *testing.T) {
	cat := catalog.Default()
	gs := NewInitialState(state.DefaultConfig(), cat, 2026, deckOf(20), deckOf(20))

	if len(gs.Players[state.Host].Hand) != InitialHandSize {
		t.Errorf("expected host hand size %d, got %d", InitialHandSize, len(gs.Players[state.Host].Hand))
	}
	if len(gs.Players[state.Away].Hand) != InitialHandSize {
		t.Errorf("expected away hand size %d, got %d", InitialHandSize, len(gs.Players[state.Away].Hand))
	}
	if len(gs.Players[state.Host].Deck) != 20-InitialHandSize {
		t.Errorf("expected host deck to shrink by the dealt hand, got %d remaining", len(gs.Players[state.Host].Deck))
	}
}

func TestNewInitialState_NoCardDuplicatedAcrossHandAndDeck(t *testing.T) {
	cat := catalog.Default()
	gs := NewInitialState(state.DefaultConfig(), cat, 7, deckOf(15), deckOf(15))

	seen := make(map[string]bool)
	for _, id := range append(append([]string{}, gs.Players[state.Host].Hand...), gs.Players[state.Host].Deck...) {
		if seen[id] {
			t.Fatalf("card instance %q appears twice in host's hand+deck", id)
		}
		seen[id] = true
	}
	if len(seen) != 15 {
		t.Errorf("expected 15 distinct host card instances total, got %d", len(seen))
	}
}

func TestNewInitialState_SetsGameStarted(t *testing.T) {
	gs := NewInitialState(state.DefaultConfig(), catalog.Default(), 1, deckOf(10), deckOf(10))
	if !gs.GameStarted {
		t.Error("expected GameStarted to be true")
	}
}

func TestNewInitialState_DeterministicGivenSeed(t *testing.T) {
	cat := catalog.Default()
	a := NewInitialState(state.DefaultConfig(), cat, 99, deckOf(20), deckOf(20))
	b := NewInitialState(state.DefaultConfig(), cat, 99, deckOf(20), deckOf(20))

	for i := range a.Players[state.Host].Hand {
		if a.Players[state.Host].Hand[i] != b.Players[state.Host].Hand[i] {
			t.Fatalf("same seed produced different host hands at index %d: %q vs %q",
				i, a.Players[state.Host].Hand[i], b.Players[state.Host].Hand[i])
		}
	}
	if a.RNGSeed != b.RNGSeed {
		t.Errorf("expected identical resumable RNG seed for identical input seed, got %d vs %d", a.RNGSeed, b.RNGSeed)
	}
}
