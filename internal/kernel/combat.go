package kernel

import "github.com/tcgx-game/duelcore/internal/state"

// effectiveAttack returns a board card's current attack, its catalog base
// plus any accumulated temporary boost.
func effectiveAttack(gs *state.GameState, b *state.BoardCard) int {
	def, ok := gs.DefinitionOf(b.CardID)
	base := 0
	if ok && def.Attack != nil {
		base = *def.Attack
	}
	return base + b.TemporaryBoosts.Attack
}

// effectiveDefense returns a board card's current defense.
func effectiveDefense(gs *state.GameState, b *state.BoardCard) int {
	def, ok := gs.DefinitionOf(b.CardID)
	base := 0
	if ok && def.Defense != nil {
		base = *def.Defense
	}
	return base + b.TemporaryBoosts.Defense
}

// decideDeclareAttack implements DECLARE_ATTACK (spec §4.1.4).
func decideDeclareAttack(gs *state.GameState, cmd Command, seat state.Seat) []Event {
	if !requireActiveSeat(gs, seat) {
		return noEvents
	}
	if inChainWindow(gs) {
		return noEvents
	}
	if gs.CurrentPhase != state.PhaseCombat {
		return noEvents
	}
	if gs.TurnNumber <= 1 && !gs.Config.FirstTurnAttackAllowed {
		return noEvents
	}

	ps := gs.Players[seat]
	attacker := ps.BoardSlot(cmd.AttackerID)
	if attacker == nil {
		return noEvents
	}
	if attacker.FaceDown || attacker.Position != state.PositionAttack {
		return noEvents
	}
	if !attacker.CanAttack || attacker.HasAttackedThisTurn {
		return noEvents
	}

	opp := seat.Opponent()
	ops := gs.Players[opp]

	var events []Event
	var defender *state.BoardCard
	if cmd.TargetID == "" {
		if len(ops.Board) != 0 {
			return noEvents
		}
		events = append(events, Event{Type: EvtAttackDeclared, Seat: seat, AttackerID: cmd.AttackerID, Turn: gs.TurnNumber})
		a := effectiveAttack(gs, attacker)
		events = append(events,
			Event{Type: EvtDamageDealt, Seat: opp, Amount: a, IsBattle: true},
			Event{Type: EvtBattleResolved, AttackerID: cmd.AttackerID, Result: ResultWin},
		)
			return events
	}

	defender = ops.BoardSlot(cmd.TargetID)
	if defender == nil {
		return noEvents
	}

	events = append(events, Event{Type: EvtAttackDeclared, Seat: seat, AttackerID: cmd.AttackerID, TargetID: cmd.TargetID, Turn: gs.TurnNumber})

	if defender.FaceDown {
		events = append(events, Event{
			Type: EvtPositionChanged, Seat: opp, CardID: defender.CardID,
			Position: defender.Position, Turn: gs.TurnNumber,
		})
	}

	a := effectiveAttack(gs, attacker)

	if defender.Position == state.PositionAttack {
		d := effectiveAttack(gs, defender)
		switch {
		case a > d:
			events = append(events,
				Event{Type: EvtCardDestroyed, SourceSeat: opp, CardID: defender.CardID, Reason: "battle"},
				Event{Type: EvtCardSentToGraveyard, SourceSeat: opp, CardID: defender.CardID, From: state.FromBoard},
				Event{Type: EvtDamageDealt, Seat: opp, Amount: a - d, IsBattle: true},
				Event{Type: EvtBattleResolved, AttackerID: cmd.AttackerID, TargetID: cmd.TargetID, Result: ResultWin},
			)
		case a < d:
			events = append(events,
				Event{Type: EvtCardDestroyed, SourceSeat: seat, CardID: attacker.CardID, Reason: "battle"},
				Event{Type: EvtCardSentToGraveyard, SourceSeat: seat, CardID: attacker.CardID, From: state.FromBoard},
				Event{Type: EvtDamageDealt, Seat: seat, Amount: d - a},
				Event{Type: EvtBattleResolved, AttackerID: cmd.AttackerID, TargetID: cmd.TargetID, Result: ResultLose},
			)
		default:
			events = append(events,
				Event{Type: EvtCardDestroyed, SourceSeat: seat, CardID: attacker.CardID, Reason: "battle"},
				Event{Type: EvtCardSentToGraveyard, SourceSeat: seat, CardID: attacker.CardID, From: state.FromBoard},
				Event{Type: EvtCardDestroyed, SourceSeat: opp, CardID: defender.CardID, Reason: "battle"},
				Event{Type: EvtCardSentToGraveyard, SourceSeat: opp, CardID: defender.CardID, From: state.FromBoard},
				Event{Type: EvtBattleResolved, AttackerID: cmd.AttackerID, TargetID: cmd.TargetID, Result: ResultDraw},
			)
		}
	} else {
		d := effectiveDefense(gs, defender)
		switch {
		case a > d:
			events = append(events,
				Event{Type: EvtCardDestroyed, SourceSeat: opp, CardID: defender.CardID, Reason: "battle"},
				Event{Type: EvtCardSentToGraveyard, SourceSeat: opp, CardID: defender.CardID, From: state.FromBoard},
				Event{Type: EvtBattleResolved, AttackerID: cmd.AttackerID, TargetID: cmd.TargetID, Result: ResultWin},
			)
		case a < d:
			events = append(events,
				Event{Type: EvtDamageDealt, Seat: seat, Amount: d - a},
				Event{Type: EvtBattleResolved, AttackerID: cmd.AttackerID, TargetID: cmd.TargetID, Result: ResultLose},
			)
		default:
			events = append(events, Event{Type: EvtBattleResolved, AttackerID: cmd.AttackerID, TargetID: cmd.TargetID, Result: ResultDraw})
		}
	}

	return appendEventTriggers(gs, events, "card_destroyed")
}
