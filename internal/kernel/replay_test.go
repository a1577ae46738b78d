package kernel

import (
	"encoding/json"
	"testing"

	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/setup"
	"github.com/tcgx-game/duelcore/internal/state"
)

// scriptedDeck returns a minimal deterministic n-card deck built entirely
// from one card definition, enough to drive a handful of turns without
// running out.
func scriptedDeck(defID string, n int) []string {
	deck := make([]string, n)
	for i := range deck {
		deck[i] = defID
	}
	return deck
}

// playFiveTurns runs a short, fixed sequence of commands (advance through
// phases, summon, end turn; no attacks) for up to five turns and returns the
// final state plus every event produced, in order.
func playFiveTurns(seed int64) (*state.GameState, []Event) {
	cat := catalog.Default()
	hostDeck := scriptedDeck("chrome_sentinel", 12)
	awayDeck := scriptedDeck("aero_knight", 12)
	gs := setup.NewInitialState(state.DefaultConfig(), cat, seed, hostDeck, awayDeck)

	var all []Event
	apply := func(cmd Command, seat state.Seat) bool {
		events := Decide(gs, cmd, seat)
		if len(events) == 0 {
			return false
		}
		gs = EvolveAll(gs, events)
		sba := ApplyStateBasedActions(gs)
		gs = EvolveAll(gs, sba)
		all = append(all, events...)
		all = append(all, sba...)
		return true
	}

	for turn := 0; turn < 5 && !gs.GameOver; turn++ {
		seat := gs.CurrentTurnPlayer
		for gs.CurrentPhase != state.PhaseMain && !gs.GameOver {
			if !apply(Command{Type: CmdAdvancePhase}, seat) {
				break
			}
		}
		if gs.GameOver {
			break
		}
		if hand := gs.Players[seat].Hand; len(hand) > 0 {
			apply(Command{Type: CmdSummon, CardID: hand[0], Position: state.PositionAttack}, seat)
		}
		for gs.CurrentPhase != state.PhaseEnd && !gs.GameOver {
			if !apply(Command{Type: CmdAdvancePhase}, seat) {
				break
			}
		}
		if gs.GameOver {
			break
		}
		apply(Command{Type: CmdEndTurn}, seat)
	}
	return gs, all
}

// TestReplayDeterminism_SameSeedSameEvents replays the identical scripted
// sequence twice from seed 2026 and asserts both the event stream and the
// resulting state are byte-identical (spec §8 "replay-determinism over <=5
// turns with seed 2026").
func TestReplayDeterminism_SameSeedSameEvents(t *testing.T) {
	const seed = 2026

	gsA, eventsA := playFiveTurns(seed)
	gsB, eventsB := playFiveTurns(seed)

	jsonA, err := json.Marshal(eventsA)
	if err != nil {
		t.Fatalf("marshal eventsA: %v", err)
	}
	jsonB, err := json.Marshal(eventsB)
	if err != nil {
		t.Fatalf("marshal eventsB: %v", err)
	}
	if string(jsonA) != string(jsonB) {
		t.Fatalf("event streams diverged for identical seed:\nA=%s\nB=%s", jsonA, jsonB)
	}

	stateA, err := json.Marshal(gsA)
	if err != nil {
		t.Fatalf("marshal stateA: %v", err)
	}
	stateB, err := json.Marshal(gsB)
	if err != nil {
		t.Fatalf("marshal stateB: %v", err)
	}
	if string(stateA) != string(stateB) {
		t.Fatalf("final states diverged for identical seed:\nA=%s\nB=%s", stateA, stateB)
	}
	if len(eventsA) == 0 {
		t.Fatal("expected at least some events to have been produced over 5 turns")
	}
}

// TestReplayDeterminism_DifferentSeedsCanDiverge builds the initial state
// from seeds 1 and 2 and compares the advanced RNG seeds the two states
// carry. Equal seeds are reported as a skip, not a failure; the test makes
// no assertion about the hands or decks.
func TestReplayDeterminism_DifferentSeedsCanDiverge(t *testing.T) {
	cat := catalog.Default()
	hostDeck := append(scriptedDeck("chrome_sentinel", 6), scriptedDeck("aero_knight", 6)...)
	awayDeck := append(scriptedDeck("aero_knight", 6), scriptedDeck("chrome_sentinel", 6)...)

	gs1 := setup.NewInitialState(state.DefaultConfig(), cat, 1, hostDeck, awayDeck)
	gs2 := setup.NewInitialState(state.DefaultConfig(), cat, 2, hostDeck, awayDeck)

	if gs1.RNGSeed == gs2.RNGSeed {
		t.Skip("seeds happened to advance identically; not a failure, just uninformative")
	}
}
