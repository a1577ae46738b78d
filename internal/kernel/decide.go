// Package kernel implements the pure rules engine: decide(state, command,
// seat) -> events and evolve(state, event) -> state' (spec §4.1). Both
// functions are pure: decide never mutates its state argument, and evolve
// returns a new *state.GameState rather than mutating in place.
package kernel

import "github.com/tcgx-game/duelcore/internal/state"

// noEvents is returned by decide for any illegal command (spec §4.1.8:
// "Empty means the command was illegal; no state change implied.").
var noEvents []Event

// Decide computes the event vector a command produces. It never mutates
// gs. An empty result means the command was illegal for the given seat in
// the current state.
func Decide(gs *state.GameState, cmd Command, seat state.Seat) []Event {
	if gs.GameOver {
		return noEvents
	}
	if !seat.Valid() {
		return noEvents
	}

	switch cmd.Type {
	case CmdSurrender:
		return decideSurrender(gs, seat)
	case CmdAdvancePhase:
		return decideAdvancePhase(gs, seat)
	case CmdEndTurn:
		return decideEndTurn(gs, seat)
	case CmdSummon:
		return decideSummon(gs, cmd, seat, false)
	case CmdSetMonster:
		return decideSummon(gs, cmd, seat, true)
	case CmdFlipSummon:
		return decideFlipSummon(gs, cmd, seat)
	case CmdChangePosition:
		return decideChangePosition(gs, cmd, seat)
	case CmdSetSpellTrap:
		return decideSetSpellTrap(gs, cmd, seat)
	case CmdActivateSpell:
		return decideActivate(gs, cmd, seat, true)
	case CmdActivateTrap:
		return decideActivate(gs, cmd, seat, false)
	case CmdActivateEffect:
		return decideActivateEffect(gs, cmd, seat)
	case CmdDeclareAttack:
		return decideDeclareAttack(gs, cmd, seat)
	case CmdChainResponse:
		return decideChainResponse(gs, cmd, seat)
	default:
		return noEvents
	}
}

func decideSurrender(gs *state.GameState, seat state.Seat) []Event {
	return []Event{{
		Type:      EvtGameEnded,
		Winner:    seat.Opponent(),
		WinReason: WinReasonSurrender,
	}}
}

// inChainWindow reports whether a chain response window is currently open.
func inChainWindow(gs *state.GameState) bool {
	return gs.CurrentChain != nil && len(gs.CurrentChain.Links) > 0
}

// requireActiveSeat rejects commands from the non-turn player except where
// explicitly allowed (chain responses, surrender).
func requireActiveSeat(gs *state.GameState, seat state.Seat) bool {
	return seat == gs.CurrentTurnPlayer
}
