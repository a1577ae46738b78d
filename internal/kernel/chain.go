package kernel

import (
	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/state"
)

// decideSetSpellTrap implements SET_SPELL_TRAP: a spell or trap in the
// active seat's hand goes face-down into a spell/trap zone slot, or the
// dedicated field-spell slot for a field-type spell.
func decideSetSpellTrap(gs *state.GameState, cmd Command, seat state.Seat) []Event {
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
	if ps.HandIndex(cmd.CardID) < 0 {
		return noEvents
	}
	def, ok := gs.DefinitionOf(cmd.CardID)
	if !ok || (def.Type != catalog.TypeSpell && def.Type != catalog.TypeTrap) {
		return noEvents
	}
	if def.Type == catalog.TypeSpell && def.SpellType == catalog.SpellField {
		if ps.FieldSpell != nil {
			return noEvents
		}
	} else if len(ps.SpellTrapZone) >= gs.Config.MaxSpellTrapSlots {
		return noEvents
	}
	return []Event{{Type: EvtSpellTrapSet, Seat: seat, CardID: cmd.CardID, DefinitionID: def.ID, Turn: gs.TurnNumber}}
}

// decideActivate implements ACTIVATE_SPELL and ACTIVATE_TRAP as the opening
// activation of a new chain (spec §4.1.5); responses to an already-open
// chain go through decideChainResponse instead.
func decideActivate(gs *state.GameState, cmd Command, seat state.Seat, isSpell bool) []Event {
	if inChainWindow(gs) {
		return noEvents
	}
	ps := gs.Players[seat]

	var def *catalog.CardDefinition
	var ok bool
	if isSpell {
		fromHand := ps.HandIndex(cmd.CardID) >= 0
		st := ps.SpellTrapSlot(cmd.CardID)
		if !fromHand && (st == nil || !st.FaceDown) {
			return noEvents
		}
		if !requireActiveSeat(gs, seat) || (gs.CurrentPhase != state.PhaseMain && gs.CurrentPhase != state.PhaseMain2) {
			return noEvents
		}
		def, ok = gs.DefinitionOf(cmd.CardID)
		if !ok || def.Type != catalog.TypeSpell {
			return noEvents
		}
	} else {
		st := ps.SpellTrapSlot(cmd.CardID)
		if st == nil || !st.FaceDown || st.TurnSet >= gs.TurnNumber {
			return noEvents
		}
		def, ok = gs.DefinitionOf(cmd.CardID)
		if !ok || def.Type != catalog.TypeTrap {
			return noEvents
		}
	}

	if len(def.Effects) == 0 {
		return noEvents
	}
	ability := def.Effects[0]
	if effectUseBlocked(gs, cmd.CardID, def.ID, ability) {
		return noEvents
	}

	evType := EvtSpellActivated
	if !isSpell {
		evType = EvtTrapActivated
	}
	events := []Event{
		{Type: evType, Seat: seat, CardID: cmd.CardID, DefinitionID: def.ID, Targets: cmd.Targets, Turn: gs.TurnNumber},
		{Type: EvtChainStarted, Seat: seat, CardID: cmd.CardID, DefinitionID: def.ID, Turn: gs.TurnNumber, Targets: cmd.Targets},
	}
	if ev := effectUsedEvent(seat, cmd.CardID, def.ID, 0, ability); ev != nil {
		events = append(events, *ev)
	}
	return events
}

// decideActivateEffect implements ACTIVATE_EFFECT: a face-up monster's own
// ignition ability, opening a chain the same way decideActivate does for
// spells and traps (spec §4.1.5 makes no distinction between a spell/trap
// activation and a monster ignition effect as a chain's opening link).
func decideActivateEffect(gs *state.GameState, cmd Command, seat state.Seat) []Event {
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
	def, ok := gs.DefinitionOf(cmd.CardID)
	if !ok || cmd.EffectIndex < 0 || cmd.EffectIndex >= len(def.Effects) {
		return noEvents
	}
	ability := def.Effects[cmd.EffectIndex]
	if ability.Trigger != catalog.TriggerIgnition {
		return noEvents
	}
	if effectUseBlocked(gs, cmd.CardID, def.ID, ability) {
		return noEvents
	}

	events := []Event{
		{Type: EvtEffectActivated, Seat: seat, CardID: cmd.CardID, DefinitionID: def.ID, EffectIndex: cmd.EffectIndex, Targets: cmd.Targets, Turn: gs.TurnNumber},
		{Type: EvtChainStarted, Seat: seat, CardID: cmd.CardID, DefinitionID: def.ID, EffectIndex: cmd.EffectIndex, Turn: gs.TurnNumber, Targets: cmd.Targets},
	}
	if ev := effectUsedEvent(seat, cmd.CardID, def.ID, cmd.EffectIndex, ability); ev != nil {
		events = append(events, *ev)
	}
	return events
}

// decideChainResponse implements CHAIN_RESPONSE (spec §4.1.5): a pass, or
// a further activation appended as the new top of the chain. Two
// consecutive passes close the window and resolve the chain LIFO.
func decideChainResponse(gs *state.GameState, cmd Command, seat state.Seat) []Event {
	if !inChainWindow(gs) || gs.PendingPong == nil {
		return noEvents
	}
	if gs.PendingPong.AwaitingSeat != seat {
		return noEvents
	}

	if cmd.Pass {
		if gs.PendingPong.ConsecutivePasses+1 >= 2 {
			return resolveChain(gs)
		}
		return []Event{{Type: EvtChainPassed, Seat: seat}}
	}

	ps := gs.Players[seat]
	fromHand := ps.HandIndex(cmd.CardID) >= 0
	st := ps.SpellTrapSlot(cmd.CardID)
	if !fromHand && (st == nil || !st.FaceDown) {
		return noEvents
	}
	def, ok := gs.DefinitionOf(cmd.CardID)
	if !ok || (def.Type != catalog.TypeSpell && def.Type != catalog.TypeTrap) {
		return noEvents
	}
	if cmd.EffectIndex < 0 || cmd.EffectIndex >= len(def.Effects) {
		return noEvents
	}
	top := gs.CurrentChain.Links[len(gs.CurrentChain.Links)-1]
	topDef, _ := gs.DefinitionOf(top.CardID)
	topSpeed := catalog.Speed1
	if topDef != nil && top.EffectIndex < len(topDef.Effects) {
		topSpeed = topDef.Effects[top.EffectIndex].ExecSpeed
	}
	ability := def.Effects[cmd.EffectIndex]
	if !catalog.CanRespondWith(topSpeed, ability.ExecSpeed) {
		return noEvents
	}
	if effectUseBlocked(gs, cmd.CardID, def.ID, ability) {
		return noEvents
	}

	evType := EvtSpellActivated
	if def.Type == catalog.TypeTrap {
		evType = EvtTrapActivated
	}
	events := []Event{
		{Type: evType, Seat: seat, CardID: cmd.CardID, DefinitionID: def.ID, Targets: cmd.Targets, Turn: gs.TurnNumber},
		{Type: EvtChainLinkAdded, ActivatingPlayer: seat, CardID: cmd.CardID, DefinitionID: def.ID, EffectIndex: cmd.EffectIndex, Targets: cmd.Targets},
	}
	if ev := effectUsedEvent(seat, cmd.CardID, def.ID, cmd.EffectIndex, ability); ev != nil {
		events = append(events, *ev)
	}
	return events
}

// resolveChain walks the chain LIFO (spec §4.1.5): the last-added link
// resolves first. A link whose negate target was set by a later (i.e.
// earlier-resolved) link's NEGATE action produces no effect events, but
// CHAIN_RESOLVED always closes the chain.
func resolveChain(gs *state.GameState) []Event {
	var events []Event

	negated := make(map[string]bool)
	links := gs.CurrentChain.Links
	for i := len(links) - 1; i >= 0; i-- {
		link := links[i]
		def, ok := gs.DefinitionOf(link.CardID)
		if !ok || link.EffectIndex >= len(def.Effects) {
			continue
		}
		ability := def.Effects[link.EffectIndex]
		if negated[link.CardID] {
			continue
		}
		for _, action := range ability.Actions {
			if action.Kind == catalog.ActionNegate {
				for _, t := range link.Targets {
					negated[t] = true
				}
				continue
			}
			events = append(events, interpretAction(gs, action, link)...)
		}
	}
	events = appendEventTriggers(gs, events, "card_destroyed")
	// CHAIN_RESOLVED closes the chain last, after every link's resolution
	// events — evolve.go's handler nils gs.CurrentChain on this event, and
	// that must only happen once the full LIFO walk above has run.
	events = append(events, Event{Type: EvtChainResolved})
	return events
}
