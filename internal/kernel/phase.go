package kernel

import "github.com/tcgx-game/duelcore/internal/state"

// decideAdvancePhase implements ADVANCE_PHASE (spec §4.1.2). It is illegal
// from PhaseEnd (END_TURN must be used instead), from a chain window, and
// for the non-active seat.
func decideAdvancePhase(gs *state.GameState, seat state.Seat) []Event {
	if !requireActiveSeat(gs, seat) {
		return noEvents
	}
	if inChainWindow(gs) {
		return noEvents
	}
	if gs.CurrentPhase == state.PhaseEnd {
		return noEvents
	}
	next, ok := gs.CurrentPhase.Next()
	if !ok {
		return noEvents
	}

	var events []Event

	if gs.CurrentPhase == state.PhaseDraw {
		ps := gs.Players[seat]
		if len(ps.Deck) == 0 {
			// Emit DECK_OUT directly rather than noEvents: an empty decide
			// result is read as ILLEGAL_MOVE by the service before state-based
			// actions ever run, which would make deck-out unreachable through
			// the real command loop. The phase is left unchanged (still
			// PhaseDraw) so ApplyStateBasedActions' own deck-out check fires
			// and appends GAME_ENDED.
			return []Event{{Type: EvtDeckOut, Seat: seat}}
		}
		drawn := ps.Deck[len(ps.Deck)-1]
		defID := drawn
		if d, ok := gs.InstanceToDefinition[drawn]; ok {
			defID = d
		}
		events = append(events, Event{
			Type: EvtCardDrawn, Seat: seat, CardID: drawn, DefinitionID: defID,
			From: state.FromDeck, Turn: gs.TurnNumber,
		})
	}

	events = append(events, Event{
		Type: EvtPhaseChanged, Phase: next, Seat: seat, Turn: gs.TurnNumber,
	})
	return events
}

// decideEndTurn implements END_TURN: only legal from PhaseEnd, for the
// active seat, outside a chain window (spec §4.1.2).
func decideEndTurn(gs *state.GameState, seat state.Seat) []Event {
	if !requireActiveSeat(gs, seat) {
		return noEvents
	}
	if inChainWindow(gs) {
		return noEvents
	}
	if gs.CurrentPhase != state.PhaseEnd {
		return noEvents
	}

	next := seat.Opponent()
	var events []Event

	for _, mod := range gs.TemporaryModifiers {
		if mod.ExpiresAt == state.ExpiresEndOfTurn {
			events = append(events, Event{Type: EvtModifierExpired, CardID: mod.TargetCardID})
		}
	}

	events = append(events, Event{
		Type: EvtTurnStarted, Seat: next, Turn: gs.TurnNumber + 1, Phase: state.PhaseDraw,
	})
	return events
}
