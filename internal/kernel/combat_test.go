package kernel

import (
	"testing"

	"github.com/tcgx-game/duelcore/internal/state"
)

// TestDirectAttack_OpponentBoardEmpty: an attacker with an empty opponent
// board deals its full attack as damage and wins the battle unopposed
// (spec §8 "direct attack").
func TestDirectAttack_OpponentBoardEmpty(t *testing.T) {
	gs := newTestState(t)
	atkID := putOnBoard(gs, state.Host, "chrome_sentinel", state.PositionAttack, false)
	gs = atCombatPhase(gs, state.Host, 2)

	next, events := runCommand(gs, Command{Type: CmdDeclareAttack, AttackerID: atkID}, state.Host)
	if len(events) == 0 {
		t.Fatal("expected declare_attack to be legal with an empty opponent board")
	}
	if !containsEventType(events, EvtDamageDealt) {
		t.Fatalf("expected damage_dealt, got %v", eventTypes(events))
	}
	for _, e := range events {
		if e.Type == EvtDamageDealt {
			if e.Seat != state.Away || e.Amount != 1800 {
				t.Errorf("expected 1800 damage to away, got %d to %s", e.Amount, e.Seat)
			}
		}
	}
	if next.Players[state.Away].LifePoints != 8000-1800 {
		t.Errorf("away LP = %d, want %d", next.Players[state.Away].LifePoints, 8000-1800)
	}
}

// TestDeclareAttack_AttackerWins: attacker ATK > defender ATK destroys the
// defender and deals the attack differential as damage (spec §8 "ATK>ATK").
func TestDeclareAttack_AttackerWins(t *testing.T) {
	gs := newTestState(t)
	atkID := putOnBoard(gs, state.Host, "aero_knight", state.PositionAttack, false)  // 1900
	defID := putOnBoard(gs, state.Away, "chrome_sentinel", state.PositionAttack, false) // 1800
	gs = atCombatPhase(gs, state.Host, 2)

	next, events := runCommand(gs, Command{Type: CmdDeclareAttack, AttackerID: atkID, TargetID: defID}, state.Host)
	if len(events) == 0 {
		t.Fatal("expected declare_attack to be legal")
	}
	if !containsEventType(events, EvtCardDestroyed) {
		t.Fatalf("expected defender destroyed, got %v", eventTypes(events))
	}
	for _, e := range events {
		if e.Type == EvtDamageDealt && e.Amount != 100 {
			t.Errorf("expected 100 piercing-free damage differential, got %d", e.Amount)
		}
	}
	if len(next.Players[state.Away].Board) != 0 {
		t.Error("defender should have left the board")
	}
	if len(next.Players[state.Away].Graveyard) != 1 || next.Players[state.Away].Graveyard[0] != defID {
		t.Error("defender should be in away's graveyard")
	}
	if next.Players[state.Away].LifePoints != 8000-100 {
		t.Errorf("away LP = %d, want %d", next.Players[state.Away].LifePoints, 8000-100)
	}
}

// TestDeclareAttack_ATKTie: equal attack values destroy both
// monsters and deal no damage (spec §8 "ATK=DEF tie" generalized to
// attack-position mirrors).
func TestDeclareAttack_ATKTie(t *testing.T) {
	gs := newTestState(t)
	atkID := putOnBoard(gs, state.Host, "chrome_sentinel", state.PositionAttack, false)
	defID := putOnBoard(gs, state.Away, "chrome_sentinel", state.PositionAttack, false)
	gs = atCombatPhase(gs, state.Host, 2)

	next, events := runCommand(gs, Command{Type: CmdDeclareAttack, AttackerID: atkID, TargetID: defID}, state.Host)
	destroyed := 0
	for _, e := range events {
		if e.Type == EvtCardDestroyed {
			destroyed++
		}
		if e.Type == EvtDamageDealt {
			t.Errorf("a tied attack-position battle should deal no damage, got %+v", e)
		}
	}
	if destroyed != 2 {
		t.Errorf("expected both monsters destroyed, got %d destroy events", destroyed)
	}
	if len(next.Players[state.Host].Board) != 0 || len(next.Players[state.Away].Board) != 0 {
		t.Error("both boards should be empty after a tied battle")
	}
}

// TestDeclareAttack_AttackBelowDefense_AttackerTakesDamage: attack lower
// than a defending monster's defense — nothing is destroyed and the
// attacker's controller takes the difference as damage.
func TestDeclareAttack_AttackBelowDefense_AttackerTakesDamage(t *testing.T) {
	gs := newTestState(t)
	atkID := putOnBoard(gs, state.Host, "chrome_sentinel", state.PositionAttack, false) // ATK 1800
	defID := putOnBoard(gs, state.Away, "steel_juggernaut", state.PositionDefense, false) // DEF 2200
	_ = defID
	gs = atCombatPhase(gs, state.Host, 2)

	next, events := runCommand(gs, Command{Type: CmdDeclareAttack, AttackerID: atkID, TargetID: defID}, state.Host)
	if len(events) == 0 {
		t.Fatal("expected declare_attack to be legal")
	}
	for _, e := range events {
		if e.Type == EvtCardDestroyed {
			t.Error("attacker should not be destroyed attacking a higher-defense target")
		}
	}
	// Attacker (1800) < defender DEF (2200): attacker's controller takes the
	// defensive-battle damage differential and the attacker survives.
	found := false
	for _, e := range events {
		if e.Type == EvtDamageDealt && e.Seat == state.Host && e.Amount == 400 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 400 damage to host, got %v", events)
	}
	if len(next.Players[state.Host].Board) != 1 {
		t.Error("attacker should remain on board after losing to a higher-defense target")
	}
}

// TestDeclareAttack_FirstTurnBlocked: DECLARE_ATTACK is illegal on turn 1
// when the config disallows first-turn attacks (spec §8 "turn-1-attack
// blocked").
func TestDeclareAttack_FirstTurnBlocked(t *testing.T) {
	gs := newTestState(t)
	atkID := putOnBoard(gs, state.Host, "chrome_sentinel", state.PositionAttack, false)
	gs = atCombatPhase(gs, state.Host, 1)

	events := Decide(gs, Command{Type: CmdDeclareAttack, AttackerID: atkID}, state.Host)
	if len(events) != 0 {
		t.Fatalf("expected declare_attack to be illegal on turn 1, got %v", eventTypes(events))
	}
}

// TestDeclareAttack_WrongSeat: the non-active seat may never declare an
// attack, even with a legal attacker of its own.
func TestDeclareAttack_WrongSeat(t *testing.T) {
	gs := newTestState(t)
	atkID := putOnBoard(gs, state.Away, "chrome_sentinel", state.PositionAttack, false)
	gs = atCombatPhase(gs, state.Host, 2)

	events := Decide(gs, Command{Type: CmdDeclareAttack, AttackerID: atkID}, state.Away)
	if len(events) != 0 {
		t.Fatalf("expected declare_attack to be illegal for the non-active seat, got %v", eventTypes(events))
	}
}

// TestDeclareAttack_AlreadyAttacked: a monster cannot attack twice in the
// same turn.
func TestDeclareAttack_AlreadyAttacked(t *testing.T) {
	gs := newTestState(t)
	atkID := putOnBoard(gs, state.Host, "chrome_sentinel", state.PositionAttack, false)
	gs = atCombatPhase(gs, state.Host, 2)

	next, events := runCommand(gs, Command{Type: CmdDeclareAttack, AttackerID: atkID}, state.Host)
	if len(events) == 0 {
		t.Fatal("first attack should be legal")
	}
	events2 := Decide(next, Command{Type: CmdDeclareAttack, AttackerID: atkID}, state.Host)
	if len(events2) != 0 {
		t.Fatalf("expected second attack this turn to be illegal, got %v", eventTypes(events2))
	}
}
