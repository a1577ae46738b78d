package kernel

import (
	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/state"
)

// triggeredAbility is one face-up monster's ability that has been found to
// match a firing condition (a flip or a matching TRIGGER_EVENT tag), still
// awaiting ordering and resolution.
type triggeredAbility struct {
	CardID       string
	DefinitionID string
	Controller   state.Seat
	EffectIndex  int
	Ability      catalog.EffectAbility
}

// effectUseBlocked reports whether ability is gated by an OPT/HOPT limit
// that has already been spent this turn (spec's once-per-turn/hard-once-
// per-turn effect limits; catalog.EffectAbility.OncePerTurn is tracked per
// definition id, HardOncePerTurn per card instance).
func effectUseBlocked(gs *state.GameState, cardID, definitionID string, ability catalog.EffectAbility) bool {
	if ability.OncePerTurn && gs.OptUsedThisTurn[definitionID] {
		return true
	}
	if ability.HardOncePerTurn && gs.HoptUsedEffects[cardID] {
		return true
	}
	return false
}

// effectUsedEvent returns the EFFECT_USED event marking ability's OPT/HOPT
// spend, or nil if ability isn't gated by either limit. decide never
// mutates gs directly (spec §4.1: "decide never mutates its state
// argument") — evolve's EvtEffectUsed case is what actually writes
// gs.OptUsedThisTurn/HoptUsedEffects.
func effectUsedEvent(seat state.Seat, cardID, definitionID string, effectIndex int, ability catalog.EffectAbility) *Event {
	if !ability.OncePerTurn && !ability.HardOncePerTurn {
		return nil
	}
	return &Event{Type: EvtEffectUsed, Seat: seat, CardID: cardID, DefinitionID: definitionID, EffectIndex: effectIndex}
}

// collectEventTriggers scans both seats' face-up boards for TRIGGER_EVENT
// abilities matching eventTag, skipping any already spent this turn
// (ported from the teacher's collectTriggers in effect_resolution.go,
// restricted here to the TriggerEvent kind).
func collectEventTriggers(gs *state.GameState, eventTag string) []triggeredAbility {
	var found []triggeredAbility
	for _, seat := range []state.Seat{state.Host, state.Away} {
		for _, b := range gs.Players[seat].Board {
			if b.FaceDown {
				continue
			}
			def, ok := gs.DefinitionOf(b.CardID)
			if !ok {
				continue
			}
			for i, ab := range def.Effects {
				if ab.Trigger != catalog.TriggerEvent || ab.TriggerEvent != eventTag {
					continue
				}
				if effectUseBlocked(gs, b.CardID, def.ID, ab) {
					continue
				}
				found = append(found, triggeredAbility{
					CardID: b.CardID, DefinitionID: def.ID, Controller: seat,
					EffectIndex: i, Ability: ab,
				})
			}
		}
	}
	return found
}

// orderTriggers applies simultaneous trigger ordering: turn-player
// mandatory, then non-turn-player mandatory, then turn-player optional,
// then non-turn-player optional. Ported from the teacher's
// processEffectSerialization (battle.go / effect_resolution.go), which
// orders PendingTrigger batches the same way before building a chain.
func orderTriggers(gs *state.GameState, triggers []triggeredAbility) []triggeredAbility {
	tp := gs.CurrentTurnPlayer
	buckets := [4]func(t triggeredAbility) bool{
		func(t triggeredAbility) bool { return t.Controller == tp && t.Ability.Mandatory },
		func(t triggeredAbility) bool { return t.Controller != tp && t.Ability.Mandatory },
		func(t triggeredAbility) bool { return t.Controller == tp && !t.Ability.Mandatory },
		func(t triggeredAbility) bool { return t.Controller != tp && !t.Ability.Mandatory },
	}
	ordered := make([]triggeredAbility, 0, len(triggers))
	for _, want := range buckets {
		for _, t := range triggers {
			if want(t) {
				ordered = append(ordered, t)
			}
		}
	}
	return ordered
}

// resolveTriggers interprets each triggered ability's actions in order.
// Every ability resolves against the same pre-batch gs: two triggers
// sharing an OncePerTurn definition id within one simultaneous batch both
// still fire (the teacher's processEffectSerialization has the same
// property — OPT is only checked against the state as of when the window
// opened, not against sibling links still queued in the same window).
func resolveTriggers(gs *state.GameState, triggers []triggeredAbility) []Event {
	var events []Event
	for _, t := range triggers {
		link := state.ChainLink{CardID: t.CardID, EffectIndex: t.EffectIndex, ActivatingPlayer: t.Controller}
		for _, action := range t.Ability.Actions {
			events = append(events, interpretAction(gs, action, link)...)
		}
		if ev := effectUsedEvent(t.Controller, t.CardID, t.DefinitionID, t.EffectIndex, t.Ability); ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}

// hasEventType reports whether events contains an event of type t.
func hasEventType(events []Event, t EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// appendEventTriggers checks a just-produced event batch for an event
// matching tag's underlying EventType and, if found, collects, orders, and
// resolves every TRIGGER_EVENT ability watching for it (e.g.
// abyssal_netrunner's "card_destroyed" toll), appending the resulting
// events. gs is the pre-batch state: these abilities don't depend on the
// zone transitions the batch performs, only on the fact that a destroy
// happened.
func appendEventTriggers(gs *state.GameState, events []Event, tag string) []Event {
	var underlying EventType
	switch tag {
	case "card_destroyed":
		underlying = EvtCardDestroyed
	default:
		return events
	}
	if !hasEventType(events, underlying) {
		return events
	}
	triggers := collectEventTriggers(gs, tag)
	if len(triggers) == 0 {
		return events
	}
	triggers = orderTriggers(gs, triggers)
	return append(events, resolveTriggers(gs, triggers)...)
}
