package kernel

import (
	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/state"
)

// resolveSeat maps a catalog.SeatTarget to a concrete seat relative to the
// activating player.
func resolveSeat(target catalog.SeatTarget, activator state.Seat) state.Seat {
	if target == catalog.TargetOpponent {
		return activator.Opponent()
	}
	return activator
}

func mapDuration(d catalog.Duration) state.Duration {
	if d == catalog.DurationPermanent {
		return state.ExpiresPermanent
	}
	return state.ExpiresEndOfTurn
}

func mapSourceZone(z catalog.SourceZone) state.ZoneFrom {
	switch z {
	case catalog.FromGraveyard:
		return state.FromGraveyard
	case catalog.FromBanished:
		return state.FromBanished
	case catalog.FromDeck:
		return state.FromDeck
	default:
		return state.FromHand
	}
}

// interpretAction compiles one declarative EffectAction into an ordered
// event sequence (spec §4.1.7, catalog.EffectAction).
func interpretAction(gs *state.GameState, action catalog.EffectAction, link state.ChainLink) []Event {
	activator := link.ActivatingPlayer

	switch action.Kind {
	case catalog.ActionDestroy:
		return destroyEvents(gs, action, link, activator)

	case catalog.ActionDraw:
		seat := resolveSeat(action.SeatTarget, activator)
		return drawEvents(gs, seat, action.Count)

	case catalog.ActionDamage:
		seat := resolveSeat(action.SeatTarget, activator)
		return []Event{{Type: EvtDamageDealt, Seat: seat, Amount: action.Amount}}

	case catalog.ActionHeal:
		seat := resolveSeat(action.SeatTarget, activator)
		return []Event{{Type: EvtLifeGained, Seat: seat, Amount: action.Amount}}

	case catalog.ActionBoostAttack:
		var events []Event
		for _, t := range link.Targets {
			events = append(events, Event{
				Type: EvtModifierApplied, CardID: t, SourceCardID: link.CardID,
				AttackDelta: action.Amount, ExpiresAt: mapDuration(action.Duration),
			})
		}
		return events

	case catalog.ActionBoostDefense:
		var events []Event
		for _, t := range link.Targets {
			events = append(events, Event{
				Type: EvtModifierApplied, CardID: t, SourceCardID: link.CardID,
				DefenseDelta: action.Amount, ExpiresAt: mapDuration(action.Duration),
			})
		}
		return events

	case catalog.ActionAddVice:
		var events []Event
		for _, t := range link.Targets {
			events = append(events, Event{Type: EvtViceCounterAdded, CardID: t, Count: action.Count})
		}
		return events

	case catalog.ActionRemoveVice:
		var events []Event
		for _, t := range link.Targets {
			events = append(events, Event{Type: EvtViceCounterRemoved, CardID: t, Count: action.Count})
		}
		return events

	case catalog.ActionBanish:
		var events []Event
		for _, t := range link.Targets {
			_, owner := findBoardCardSeat(gs, t)
			from := state.FromGraveyard
			if owner != "" {
				from = state.FromBoard
			} else {
				owner = activator.Opponent()
			}
			events = append(events, Event{Type: EvtCardBanished, SourceSeat: owner, CardID: t, From: from})
		}
		return events

	case catalog.ActionReturnToHand:
		var events []Event
		for _, t := range link.Targets {
			_, owner := findBoardCardSeat(gs, t)
			if owner == "" {
				owner = activator.Opponent()
			}
			events = append(events, Event{Type: EvtCardReturnedToHand, SourceSeat: owner, CardID: t, From: state.FromBoard})
		}
		return events

	case catalog.ActionDiscard:
		seat := resolveSeat(action.SeatTarget, activator)
		return discardEvents(gs, seat, link.Targets, action.Count)

	case catalog.ActionSpecialSummon:
		seat := resolveSeat(action.SeatTarget, activator)
		var events []Event
		for _, t := range link.Targets {
			defID := t
			if d, ok := gs.InstanceToDefinition[t]; ok {
				defID = d
			}
			events = append(events, Event{
				Type: EvtSpecialSummoned, Seat: seat, CardID: t, DefinitionID: defID,
				Position: state.PositionAttack, From: mapSourceZone(action.FromZone),
			})
		}
		return events

	case catalog.ActionChangePosition:
		var events []Event
		for _, t := range link.Targets {
			b, owner := findBoardCardSeat(gs, t)
			if b == nil {
				continue
			}
			next := state.PositionDefense
			if b.Position == state.PositionDefense {
				next = state.PositionAttack
			}
			events = append(events, Event{Type: EvtPositionChanged, Seat: owner, CardID: t, Position: next})
		}
		return events

	default:
		return nil
	}
}

func destroyEvents(gs *state.GameState, action catalog.EffectAction, link state.ChainLink, activator state.Seat) []Event {
	var targets []string
	switch action.DestroyTarget {
	case catalog.TargetAllOpponentMonsters:
		opp := gs.Players[activator.Opponent()]
		for _, b := range opp.Board {
			targets = append(targets, b.CardID)
		}
	case catalog.TargetAllSpellsTraps:
		opp := gs.Players[activator.Opponent()]
		for _, s := range opp.SpellTrapZone {
			targets = append(targets, s.CardID)
		}
		if opp.FieldSpell != nil {
			targets = append(targets, opp.FieldSpell.CardID)
		}
	default:
		targets = link.Targets
	}

	var events []Event
	for _, t := range targets {
		from, owner := zoneOf(gs, t)
		events = append(events,
			Event{Type: EvtCardDestroyed, SourceSeat: owner, CardID: t, Reason: "effect"},
			Event{Type: EvtCardSentToGraveyard, SourceSeat: owner, CardID: t, From: from},
		)
	}
	return events
}

// zoneOf reports which zone a card currently occupies and its owner,
// searching boards then spell/trap zones across both seats.
func zoneOf(gs *state.GameState, cardID string) (state.ZoneFrom, state.Seat) {
	for _, seat := range []state.Seat{state.Host, state.Away} {
		ps := gs.Players[seat]
		if ps.BoardSlot(cardID) != nil {
			return state.FromBoard, seat
		}
		if ps.SpellTrapSlot(cardID) != nil {
			return state.FromSpellTrapZone, seat
		}
	}
	return state.FromBoard, ""
}

func drawEvents(gs *state.GameState, seat state.Seat, count int) []Event {
	ps := gs.Players[seat]
	var events []Event
	n := count
	if n > len(ps.Deck) {
		n = len(ps.Deck)
	}
	deck := ps.Deck
	for i := 0; i < n; i++ {
		cardID := deck[len(deck)-1-i]
		defID := cardID
		if d, ok := gs.InstanceToDefinition[cardID]; ok {
			defID = d
		}
		events = append(events, Event{Type: EvtCardDrawn, Seat: seat, CardID: cardID, DefinitionID: defID, From: state.FromDeck})
	}
	return events
}

func discardEvents(gs *state.GameState, seat state.Seat, targets []string, count int) []Event {
	ps := gs.Players[seat]
	chosen := targets
	if len(chosen) == 0 {
		n := count
		if n > len(ps.Hand) {
			n = len(ps.Hand)
		}
		for i := 0; i < n; i++ {
			chosen = append(chosen, ps.Hand[len(ps.Hand)-1-i])
		}
	}
	var events []Event
	for _, c := range chosen {
		events = append(events, Event{Type: EvtCardSentToGraveyard, SourceSeat: seat, CardID: c, From: state.FromHand})
	}
	return events
}
