// Package legalmoves enumerates the commands a seat may legally submit in
// a given state. It never re-derives rule logic: every candidate is run
// through kernel.Decide against a cloned state and kept only if the
// result is non-empty, so soundness and completeness follow from decide's
// own behavior by construction (spec §8).
package legalmoves

import (
	"github.com/tcgx-game/duelcore/internal/kernel"
	"github.com/tcgx-game/duelcore/internal/state"
)

// LegalMoves returns every command Decide would accept for seat in gs.
func LegalMoves(gs *state.GameState, seat state.Seat) []kernel.Command {
	var legal []kernel.Command
	for _, cmd := range candidates(gs, seat) {
		if len(kernel.Decide(gs.Clone(), cmd, seat)) > 0 {
			legal = append(legal, cmd)
		}
	}
	return legal
}

func candidates(gs *state.GameState, seat state.Seat) []kernel.Command {
	var cmds []kernel.Command
	cmds = append(cmds,
		kernel.Command{Type: kernel.CmdAdvancePhase},
		kernel.Command{Type: kernel.CmdEndTurn},
		kernel.Command{Type: kernel.CmdSurrender},
	)

	ps := gs.Players[seat]
	opp := gs.Players[seat.Opponent()]

	for _, cardID := range ps.Hand {
		cmds = append(cmds,
			kernel.Command{Type: kernel.CmdSummon, CardID: cardID, Position: state.PositionAttack},
			kernel.Command{Type: kernel.CmdSummon, CardID: cardID, Position: state.PositionDefense},
			kernel.Command{Type: kernel.CmdSetMonster, CardID: cardID},
			kernel.Command{Type: kernel.CmdSetSpellTrap, CardID: cardID},
			kernel.Command{Type: kernel.CmdActivateSpell, CardID: cardID},
		)
		for _, tribute := range ps.Board {
			cmds = append(cmds,
				kernel.Command{Type: kernel.CmdSummon, CardID: cardID, Position: state.PositionAttack, TributeCardIDs: []string{tribute.CardID}},
				kernel.Command{Type: kernel.CmdSummon, CardID: cardID, Position: state.PositionDefense, TributeCardIDs: []string{tribute.CardID}},
				kernel.Command{Type: kernel.CmdSetMonster, CardID: cardID, TributeCardIDs: []string{tribute.CardID}},
			)
		}
	}

	for _, b := range ps.Board {
		cmds = append(cmds,
			kernel.Command{Type: kernel.CmdFlipSummon, CardID: b.CardID},
			kernel.Command{Type: kernel.CmdChangePosition, CardID: b.CardID},
			kernel.Command{Type: kernel.CmdDeclareAttack, AttackerID: b.CardID},
		)
		for _, target := range opp.Board {
			cmds = append(cmds, kernel.Command{Type: kernel.CmdDeclareAttack, AttackerID: b.CardID, TargetID: target.CardID})
		}
		if def, ok := gs.DefinitionOf(b.CardID); ok {
			for i := range def.Effects {
				cmds = append(cmds, kernel.Command{Type: kernel.CmdActivateEffect, CardID: b.CardID, EffectIndex: i})
			}
		}
	}

	for _, s := range ps.SpellTrapZone {
		cmds = append(cmds,
			kernel.Command{Type: kernel.CmdActivateSpell, CardID: s.CardID},
			kernel.Command{Type: kernel.CmdActivateTrap, CardID: s.CardID},
		)
		if def, ok := gs.DefinitionOf(s.CardID); ok {
			for i := range def.Effects {
				cmds = append(cmds,
					kernel.Command{Type: kernel.CmdActivateSpell, CardID: s.CardID, EffectIndex: i},
					kernel.Command{Type: kernel.CmdActivateTrap, CardID: s.CardID, EffectIndex: i},
				)
			}
		}
	}
	if ps.FieldSpell != nil {
		cmds = append(cmds, kernel.Command{Type: kernel.CmdActivateSpell, CardID: ps.FieldSpell.CardID})
	}

	if gs.CurrentChain != nil && gs.PendingPong != nil && gs.PendingPong.AwaitingSeat == seat {
		cmds = append(cmds, kernel.Command{Type: kernel.CmdChainResponse, Pass: true})
		for _, cardID := range ps.Hand {
			cmds = append(cmds, kernel.Command{Type: kernel.CmdChainResponse, CardID: cardID})
		}
		for _, s := range ps.SpellTrapZone {
			if def, ok := gs.DefinitionOf(s.CardID); ok {
				for i := range def.Effects {
					cmds = append(cmds, kernel.Command{Type: kernel.CmdChainResponse, CardID: s.CardID, EffectIndex: i})
				}
			}
		}
	}

	return cmds
}
