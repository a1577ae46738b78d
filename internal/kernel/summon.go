package kernel

import (
	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/state"
)

// decideSummon implements SUMMON and SET_MONSTER (spec §4.1.3). Both share
// the same legality shape; isSet only changes the resulting event and the
// face-down/defense outcome.
func decideSummon(gs *state.GameState, cmd Command, seat state.Seat, isSet bool) []Event {
	if !requireActiveSeat(gs, seat) {
		return noEvents
	}
	if inChainWindow(gs) {
		return noEvents
	}
	if gs.CurrentPhase != state.PhaseMain && gs.CurrentPhase != state.PhaseMain2 {
		return noEvents
	}
	ps := gs.Players[seat]
	if ps.NormalSummonedThisTurn {
		return noEvents
	}
	if ps.HandIndex(cmd.CardID) < 0 {
		return noEvents
	}
	def, ok := gs.DefinitionOf(cmd.CardID)
	if !ok || def.Type != catalog.TypeStereotype {
		return noEvents
	}

	required := def.SacrificesRequired(gs.Config.TributeThresholdLevel)
	if required == 0 {
		if len(cmd.TributeCardIDs) != 0 {
			return noEvents
		}
		if len(ps.Board) >= gs.Config.MaxBoardSlots {
			return noEvents
		}
	} else {
		if len(cmd.TributeCardIDs) != required {
			return noEvents
		}
		for _, t := range cmd.TributeCardIDs {
			b := ps.BoardSlot(t)
			if b == nil || b.FaceDown {
				return noEvents
			}
		}
		// Post-tribute board size must still respect the slot cap.
		if len(ps.Board)-required >= gs.Config.MaxBoardSlots {
			return noEvents
		}
	}

	position := cmd.Position
	if isSet {
		position = state.PositionDefense
	} else if position == "" {
		position = state.PositionAttack
	}

	var events []Event
	for _, t := range cmd.TributeCardIDs {
		events = append(events,
			Event{Type: EvtCardDestroyed, SourceSeat: seat, CardID: t, Reason: "tribute"},
			Event{Type: EvtCardSentToGraveyard, SourceSeat: seat, CardID: t, From: state.FromBoard},
		)
	}

	evType := EvtMonsterSummoned
	if isSet {
		evType = EvtMonsterSet
	}
	events = append(events, Event{
		Type: evType, Seat: seat, CardID: cmd.CardID, DefinitionID: def.ID,
		Position: position, Turn: gs.TurnNumber,
	})
	return appendEventTriggers(gs, events, "card_destroyed")
}

// decideFlipSummon implements FLIP_SUMMON: a face-down board card owned by
// the active seat, not summoned/set this turn, flips face-up attack without
// consuming the turn's normal summon (spec §4.1.3).
func decideFlipSummon(gs *state.GameState, cmd Command, seat state.Seat) []Event {
	if !requireActiveSeat(gs, seat) {
		return noEvents
	}
	if inChainWindow(gs) {
		return noEvents
	}
	if gs.CurrentPhase != state.PhaseMain && gs.CurrentPhase != state.PhaseMain2 {
		return noEvents
	}
	ps := gs.Players[seat]
	b := ps.BoardSlot(cmd.CardID)
	if b == nil || !b.FaceDown {
		return noEvents
	}
	if b.TurnSummoned == gs.TurnNumber {
		return noEvents
	}
	events := []Event{{Type: EvtFlipSummoned, Seat: seat, CardID: cmd.CardID, Turn: gs.TurnNumber}}
	return append(events, flipTriggerEvents(gs, seat, cmd.CardID, cmd.Targets)...)
}

// flipTriggerEvents auto-activates a TriggerFlip ability on the card that
// was just flip-summoned (spec's flip effects always resolve without
// requiring a separate activation command — ported from the teacher's flip
// handling in processEffectSerialization(log.EventFlipNoSummon)).
func flipTriggerEvents(gs *state.GameState, seat state.Seat, cardID string, targets []string) []Event {
	def, ok := gs.DefinitionOf(cardID)
	if !ok {
		return nil
	}
	var events []Event
	for i, ab := range def.Effects {
		if ab.Trigger != catalog.TriggerFlip {
			continue
		}
		if effectUseBlocked(gs, cardID, def.ID, ab) {
			continue
		}
		link := state.ChainLink{CardID: cardID, EffectIndex: i, ActivatingPlayer: seat, Targets: targets}
		for _, action := range ab.Actions {
			events = append(events, interpretAction(gs, action, link)...)
		}
		if ev := effectUsedEvent(seat, cardID, def.ID, i, ab); ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}

// decideChangePosition implements CHANGE_POSITION: a face-up board card
// owned by the active seat that hasn't already changed position or
// attacked this turn may flip attack<->defense (spec §4.1.3).
func decideChangePosition(gs *state.GameState, cmd Command, seat state.Seat) []Event {
	if !requireActiveSeat(gs, seat) {
		return noEvents
	}
	if inChainWindow(gs) {
		return noEvents
	}
	if gs.CurrentPhase != state.PhaseMain && gs.CurrentPhase != state.PhaseMain2 {
		return noEvents
	}
	ps := gs.Players[seat]
	b := ps.BoardSlot(cmd.CardID)
	if b == nil || b.FaceDown {
		return noEvents
	}
	if b.ChangedPositionThisTurn || b.HasAttackedThisTurn {
		return noEvents
	}
	next := state.PositionDefense
	if b.Position == state.PositionDefense {
		next = state.PositionAttack
	}
	return []Event{{Type: EvtPositionChanged, Seat: seat, CardID: cmd.CardID, Position: next, Turn: gs.TurnNumber}}
}
