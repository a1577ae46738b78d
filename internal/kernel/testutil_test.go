package kernel

import (
	"testing"

	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/state"
)

// newTestState builds a fresh two-seat state on the default catalog and
// config, with both decks/hands empty so a test can place cards by hand.
func newTestState(t *testing.T) *state.GameState {
	t.Helper()
	return state.New(state.DefaultConfig(), catalog.Default(), 1)
}

// putOnBoard places a board card directly (bypassing summon legality) so
// combat/position tests can start from an arbitrary mid-game layout.
func putOnBoard(gs *state.GameState, seat state.Seat, defID string, pos state.Position, faceDown bool) string {
	instanceID := gs.NextInstanceID(defID)
	gs.Players[seat].Board = append(gs.Players[seat].Board, &state.BoardCard{
		CardID: instanceID, DefinitionID: defID,
		Position: pos, FaceDown: faceDown, CanAttack: true,
	})
	return instanceID
}

// putInHand adds a card instance to seat's hand and returns its instance id.
func putInHand(gs *state.GameState, seat state.Seat, defID string) string {
	instanceID := gs.NextInstanceID(defID)
	gs.Players[seat].Hand = append(gs.Players[seat].Hand, instanceID)
	return instanceID
}

// runCommand folds cmd's decide() output through evolve, then runs SBAs to
// fixpoint — the same composition service.Service.SubmitAction performs.
func runCommand(gs *state.GameState, cmd Command, seat state.Seat) (*state.GameState, []Event) {
	events := Decide(gs, cmd, seat)
	if len(events) == 0 {
		return gs, nil
	}
	next := EvolveAll(gs, events)
	sba := ApplyStateBasedActions(next)
	next = EvolveAll(next, sba)
	return next, append(events, sba...)
}

func eventTypes(events []Event) []EventType {
	var out []EventType
	for _, e := range events {
		out = append(out, e.Type)
	}
	return out
}

func containsEventType(events []Event, t EventType) bool {
	for _, e := range events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// atCombatPhase sets gs directly to seat's combat phase on the given turn,
// bypassing ADVANCE_PHASE's draw step — combat.go tests care about battle
// resolution, not phase traversal, which phase_test.go covers separately.
func atCombatPhase(gs *state.GameState, seat state.Seat, turn int) *state.GameState {
	gs.CurrentTurnPlayer = seat
	gs.TurnNumber = turn
	gs.CurrentPhase = state.PhaseCombat
	return gs
}
