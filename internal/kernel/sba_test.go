package kernel

import (
	"testing"

	"github.com/tcgx-game/duelcore/internal/state"
)

func TestSBA_LifePointsZero_EndsGame(t *testing.T) {
	gs := newTestState(t)
	gs.Players[state.Away].LifePoints = 0

	events := ApplyStateBasedActions(gs)
	if len(events) != 1 || events[0].Type != EvtGameEnded {
		t.Fatalf("expected a single game_ended event, got %v", eventTypes(events))
	}
	if events[0].Winner != state.Host || events[0].WinReason != WinReasonLPZero {
		t.Errorf("expected host to win by lp_zero, got winner=%s reason=%s", events[0].Winner, events[0].WinReason)
	}
}

// TestSBA_BreakdownWin exercises the spec §8 "breakdown win" scenario: a
// seat accumulating MaxBreakdownsToWin breakdowns on its opponent's board
// wins outright.
func TestSBA_BreakdownWin(t *testing.T) {
	gs := newTestState(t)
	gs.CurrentPhase = state.PhaseMain // out of the draw phase, so the empty deck is no deck-out
	gs.Players[state.Host].BreakdownsCaused = gs.Config.MaxBreakdownsToWin

	events := ApplyStateBasedActions(gs)
	if len(events) != 1 || events[0].Type != EvtGameEnded {
		t.Fatalf("expected a single game_ended event, got %v", eventTypes(events))
	}
	if events[0].Winner != state.Host || events[0].WinReason != WinReasonBreakdown {
		t.Errorf("expected host to win by breakdown, got winner=%s reason=%s", events[0].Winner, events[0].WinReason)
	}
}

func TestSBA_BreakdownThresholdDestroysMonster(t *testing.T) {
	gs := newTestState(t)
	gs.CurrentPhase = state.PhaseMain // out of the draw phase, so the empty deck is no deck-out
	cardID := putOnBoard(gs, state.Away, "chrome_sentinel", state.PositionAttack, false)
	gs.Players[state.Away].Board[0].ViceCounters = gs.Config.BreakdownThreshold

	events := ApplyStateBasedActions(gs)
	if !containsEventType(events, EvtBreakdownTriggered) || !containsEventType(events, EvtCardSentToGraveyard) {
		t.Fatalf("expected breakdown_triggered + card_sent_to_graveyard, got %v", eventTypes(events))
	}
	next := EvolveAll(gs, events)
	if next.Players[state.Away].BoardSlot(cardID) != nil {
		t.Error("expected the broken-down monster to leave the board")
	}
	if next.Players[state.Host].BreakdownsCaused != 1 {
		t.Errorf("expected the opponent's breakdownsCaused to increment, got %d", next.Players[state.Host].BreakdownsCaused)
	}
}

func TestSBA_DeckOut_EndsGameForActiveSeat(t *testing.T) {
	gs := newTestState(t)
	gs.CurrentTurnPlayer = state.Host
	gs.CurrentPhase = state.PhaseDraw
	// host's deck is empty by construction (newTestState never seeds one).

	events := ApplyStateBasedActions(gs)
	if !containsEventType(events, EvtDeckOut) || !containsEventType(events, EvtGameEnded) {
		t.Fatalf("expected deck_out + game_ended, got %v", eventTypes(events))
	}
	for _, e := range events {
		if e.Type == EvtGameEnded && (e.Winner != state.Away || e.WinReason != WinReasonDeckOut) {
			t.Errorf("expected away to win by deck_out, got winner=%s reason=%s", e.Winner, e.WinReason)
		}
	}
}

func TestSBA_HandSizeExcess_DiscardsAtEndPhase(t *testing.T) {
	gs := newTestState(t)
	gs.CurrentPhase = state.PhaseEnd
	for i := 0; i < gs.Config.MaxHandSize+2; i++ {
		putInHand(gs, state.Host, "chrome_sentinel")
	}

	events := ApplyStateBasedActions(gs)
	discards := 0
	for _, e := range events {
		if e.Type == EvtCardSentToGraveyard {
			discards++
		}
	}
	if discards != 2 {
		t.Fatalf("expected 2 discards to bring hand down to the max size, got %d", discards)
	}
}

func TestSBA_Quiescent_NoEventsWhenNothingFires(t *testing.T) {
	gs := newTestState(t)
	gs.CurrentPhase = state.PhaseMain // out of the draw phase, so the empty deck is no deck-out
	events := ApplyStateBasedActions(gs)
	if len(events) != 0 {
		t.Fatalf("expected no SBA events on a fresh idle state, got %v", eventTypes(events))
	}
}
