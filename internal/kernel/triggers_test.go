package kernel

import (
	"testing"

	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/state"
)

// TestFlipSummon_AutoFiresTriggerFlipAbility pins review fix (d): a
// TriggerFlip ability (breaker_chrome_warrior's destroy) must resolve on
// its own flip-summon, with no separate activation command.
func TestFlipSummon_AutoFiresTriggerFlipAbility(t *testing.T) {
	gs := atMainPhase(newTestState(t), state.Host, 2)
	flipID := putOnBoard(gs, state.Host, "breaker_chrome_warrior", state.PositionDefense, true)
	gs.Players[state.Host].Board[0].TurnSummoned = gs.TurnNumber - 1
	targetID := putOnBoard(gs, state.Away, "chrome_sentinel", state.PositionAttack, false)

	next, events := runCommand(gs, Command{Type: CmdFlipSummon, CardID: flipID, Targets: []string{targetID}}, state.Host)
	if !containsEventType(events, EvtFlipSummoned) {
		t.Fatalf("expected flip_summoned, got %v", eventTypes(events))
	}
	if !containsEventType(events, EvtCardDestroyed) {
		t.Fatalf("expected the flip ability's destroy to fire automatically, got %v", eventTypes(events))
	}
	if len(next.Players[state.Away].Board) != 0 {
		t.Fatal("expected the targeted monster to be destroyed")
	}
}

// TestFlipSummon_FlipAbilityRespectsHardOncePerTurn pins the HOPT half of
// review fix (f): breaker_chrome_warrior's flip ability is hard-once-per-
// turn, so a second qualifying flip in the same turn must not re-fire it.
// (Flip summon itself can only happen once per card, so this drives the
// gate directly via effectUseBlocked's pre-set state rather than a second
// flip of the same card.)
func TestFlipSummon_FlipAbilityRespectsHardOncePerTurn(t *testing.T) {
	gs := atMainPhase(newTestState(t), state.Host, 2)
	flipID := putOnBoard(gs, state.Host, "breaker_chrome_warrior", state.PositionDefense, true)
	gs.Players[state.Host].Board[0].TurnSummoned = gs.TurnNumber - 1
	targetID := putOnBoard(gs, state.Away, "chrome_sentinel", state.PositionAttack, false)
	gs.HoptUsedEffects[flipID] = true

	_, events := runCommand(gs, Command{Type: CmdFlipSummon, CardID: flipID, Targets: []string{targetID}}, state.Host)
	if !containsEventType(events, EvtFlipSummoned) {
		t.Fatalf("expected flip_summoned to still succeed, got %v", eventTypes(events))
	}
	if containsEventType(events, EvtCardDestroyed) {
		t.Fatalf("expected the already-spent HOPT ability not to fire again, got %v", eventTypes(events))
	}
}

// TestBattleDestroy_FiresTriggerEventAbility pins review fix (d)'s other
// half: abyssal_netrunner's "card_destroyed" TriggerEvent ability must fire
// when any card is destroyed in battle, not just by its own controller's
// action.
func TestBattleDestroy_FiresTriggerEventAbility(t *testing.T) {
	gs := atCombatPhase(newTestState(t), state.Host, 2)
	attackerID := putOnBoard(gs, state.Host, "steel_juggernaut", state.PositionAttack, false)
	putOnBoard(gs, state.Away, "abyssal_netrunner", state.PositionAttack, false)
	defenderID := putOnBoard(gs, state.Away, "chrome_sentinel", state.PositionDefense, false)
	gs.Players[state.Away].Deck = []string{"reserve#1"}
	gs.InstanceToDefinition["reserve#1"] = "chrome_sentinel"

	next, events := runCommand(gs, Command{Type: CmdDeclareAttack, AttackerID: attackerID, TargetID: defenderID}, state.Host)
	if !containsEventType(events, EvtCardDestroyed) {
		t.Fatalf("expected the attack to destroy the defender, got %v", eventTypes(events))
	}
	if !containsEventType(events, EvtCardDrawn) {
		t.Fatalf("expected abyssal_netrunner's card_destroyed toll to draw a card, got %v", eventTypes(events))
	}
	if len(next.Players[state.Away].Hand) != 1 {
		t.Fatalf("expected the drawn card in hand, got %d", len(next.Players[state.Away].Hand))
	}
}

// TestTriggerOrdering_TurnPlayerMandatoryResolvesFirst pins review fix (c):
// simultaneous triggers order turn-player-mandatory, then
// non-turn-player-mandatory, then turn-player-optional, then
// non-turn-player-optional.
func TestTriggerOrdering_TurnPlayerMandatoryResolvesFirst(t *testing.T) {
	gs := newTestState(t)
	gs.CurrentTurnPlayer = state.Away

	triggers := []triggeredAbility{
		{CardID: "opt-self", Controller: state.Away, Ability: abilityWithMandatory(false)},
		{CardID: "mand-opp", Controller: state.Host, Ability: abilityWithMandatory(true)},
		{CardID: "mand-self", Controller: state.Away, Ability: abilityWithMandatory(true)},
		{CardID: "opt-opp", Controller: state.Host, Ability: abilityWithMandatory(false)},
	}

	ordered := orderTriggers(gs, triggers)
	want := []string{"mand-self", "mand-opp", "opt-self", "opt-opp"}
	if len(ordered) != len(want) {
		t.Fatalf("expected %d ordered triggers, got %d", len(want), len(ordered))
	}
	for i, id := range want {
		if ordered[i].CardID != id {
			t.Fatalf("position %d: expected %q, got %q (full order %v)", i, id, ordered[i].CardID, cardIDsOf(ordered))
		}
	}
}

func cardIDsOf(triggers []triggeredAbility) []string {
	out := make([]string, len(triggers))
	for i, t := range triggers {
		out[i] = t.CardID
	}
	return out
}

// TestActivateEffect_IgnitionAbilityOpensChain pins review fix (e): a
// face-up monster's own TriggerIgnition ability (void_drifter's banish
// self) now has a reachable activation path through CmdActivateEffect.
func TestActivateEffect_IgnitionAbilityOpensChain(t *testing.T) {
	gs := atMainPhase(newTestState(t), state.Host, 2)
	driftID := putOnBoard(gs, state.Host, "void_drifter", state.PositionDefense, false)

	next, events := runCommand(gs, Command{Type: CmdActivateEffect, CardID: driftID, EffectIndex: 0, Targets: []string{driftID}}, state.Host)
	if !containsEventType(events, EvtEffectActivated) || !containsEventType(events, EvtChainStarted) {
		t.Fatalf("expected effect_activated and chain_started, got %v", eventTypes(events))
	}
	if next.CurrentChain == nil || len(next.CurrentChain.Links) != 1 {
		t.Fatal("expected the ignition ability to open a one-link chain")
	}
}

// TestActivateEffect_RejectsNonIgnitionAbility ensures a TriggerFlip/
// TriggerEvent ability can't be activated as if it were an ignition
// ability through CmdActivateEffect.
func TestActivateEffect_RejectsNonIgnitionAbility(t *testing.T) {
	gs := atMainPhase(newTestState(t), state.Host, 2)
	runnerID := putOnBoard(gs, state.Host, "abyssal_netrunner", state.PositionDefense, false)

	events := Decide(gs, Command{Type: CmdActivateEffect, CardID: runnerID, EffectIndex: 0}, state.Host)
	if len(events) != 0 {
		t.Fatalf("expected activating a non-ignition ability directly to be illegal, got %v", eventTypes(events))
	}
}

// TestActivateEffect_RespectsOncePerTurn pins review fix (f): void_drifter's
// ignition ability is OPT, so a second activation in the same turn must be
// illegal, and the limit must reset on the following turn.
func TestActivateEffect_RespectsOncePerTurn(t *testing.T) {
	gs := atMainPhase(newTestState(t), state.Host, 2)
	driftID := putOnBoard(gs, state.Host, "void_drifter", state.PositionDefense, false)
	fodderID := putOnBoard(gs, state.Host, "chrome_sentinel", state.PositionDefense, false)

	cmd := Command{Type: CmdActivateEffect, CardID: driftID, EffectIndex: 0, Targets: []string{fodderID}}
	gs, firstEvents := runCommand(gs, cmd, state.Host)
	if len(firstEvents) == 0 {
		t.Fatal("expected the first activation to succeed")
	}
	gs, _ = runCommand(gs, Command{Type: CmdChainResponse, Pass: true}, state.Away)
	gs, _ = runCommand(gs, Command{Type: CmdChainResponse, Pass: true}, state.Host)

	secondEvents := Decide(gs, cmd, state.Host)
	if len(secondEvents) != 0 {
		t.Fatalf("expected a second activation this turn to be illegal (OPT spent), got %v", eventTypes(secondEvents))
	}

	// Simulate the next turn starting: OptUsedThisTurn/HoptUsedEffects reset.
	gs = EvolveAll(gs, []Event{{Type: EvtTurnStarted, Seat: state.Host, Turn: gs.TurnNumber + 1, Phase: state.PhaseMain}})
	thirdEvents := Decide(gs, cmd, state.Host)
	if len(thirdEvents) == 0 {
		t.Fatal("expected the OPT limit to reset on the next turn")
	}
}

func abilityWithMandatory(mandatory bool) catalog.EffectAbility {
	return catalog.EffectAbility{Mandatory: mandatory}
}
