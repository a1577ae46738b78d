package kernel

import (
	"github.com/tcgx-game/duelcore/internal/catalog"
	"github.com/tcgx-game/duelcore/internal/state"
)

// Evolve folds a single event into gs, returning a new state. gs is never
// mutated (spec §4.1: "evolve(state, event) -> state', folds a single
// event, returning a new state (functional update)").
func Evolve(gs *state.GameState, e Event) *state.GameState {
	next := gs.Clone()
	applyEvent(next, e)
	return next
}

// EvolveAll folds an ordered batch of events, in order, returning the
// resulting state. This is the composition callers use after a decide
// call: apply the full event vector, then (separately) run
// ApplyStateBasedActions to fixpoint.
func EvolveAll(gs *state.GameState, events []Event) *state.GameState {
	cur := gs
	for _, e := range events {
		cur = Evolve(cur, e)
	}
	return cur
}

func applyEvent(gs *state.GameState, e Event) {
	switch e.Type {
	case EvtPhaseChanged:
		gs.CurrentPhase = e.Phase

	case EvtTurnStarted:
		gs.CurrentTurnPlayer = e.Seat
		gs.TurnNumber = e.Turn
		gs.CurrentPhase = e.Phase
		for _, seat := range []state.Seat{state.Host, state.Away} {
			ps := gs.Players[seat]
			ps.NormalSummonedThisTurn = false
			for _, b := range ps.Board {
				b.HasAttackedThisTurn = false
				b.ChangedPositionThisTurn = false
			}
		}
		gs.OptUsedThisTurn = make(map[string]bool)
		gs.HoptUsedEffects = make(map[string]bool)

	case EvtCardDrawn:
		ps := gs.Players[e.Seat]
		ps.Deck = popBack(ps.Deck, e.CardID)
		ps.Hand = append(ps.Hand, e.CardID)

	case EvtMonsterSummoned, EvtMonsterSet:
		ps := gs.Players[e.Seat]
		ps.Hand = removeString(ps.Hand, e.CardID)
		faceDown := e.Type == EvtMonsterSet
		pos := e.Position
		if faceDown {
			pos = state.PositionDefense
		}
		ps.Board = append(ps.Board, &state.BoardCard{
			CardID: e.CardID, DefinitionID: e.DefinitionID,
			Position: pos, FaceDown: faceDown, CanAttack: true,
			TurnSummoned: gs.TurnNumber, TurnControlChanged: gs.TurnNumber,
		})
		gs.LastSummon = &state.LastSummon{CardID: e.CardID, Seat: e.Seat}
		ps.NormalSummonedThisTurn = true

	case EvtSpecialSummoned:
		ps := gs.Players[e.Seat]
		removeFromZone(gs, e.Seat, e.From, e.CardID)
		ps.Board = append(ps.Board, &state.BoardCard{
			CardID: e.CardID, DefinitionID: e.DefinitionID,
			Position: e.Position, FaceDown: false, CanAttack: true,
			TurnSummoned: gs.TurnNumber, TurnControlChanged: gs.TurnNumber,
		})
		gs.LastSummon = &state.LastSummon{CardID: e.CardID, Seat: e.Seat}

	case EvtFlipSummoned:
		if b := findBoardCard(gs, e.CardID); b != nil {
			b.FaceDown = false
			b.Position = state.PositionAttack
		}

	case EvtPositionChanged:
		if b := findBoardCard(gs, e.CardID); b != nil {
			b.Position = e.Position
			b.FaceDown = false
			b.ChangedPositionThisTurn = true
		}

	case EvtSpellTrapSet:
		ps := gs.Players[e.Seat]
		ps.Hand = removeString(ps.Hand, e.CardID)
		isField := false
		if def, ok := gs.Catalog.Lookup(e.DefinitionID); ok {
			isField = def.SpellType == catalog.SpellField
		}
		card := &state.SpellTrapCard{
			CardID: e.CardID, DefinitionID: e.DefinitionID,
			FaceDown: true, IsFieldSpell: isField,
			TurnSet: gs.TurnNumber,
		}
		if card.IsFieldSpell {
			ps.FieldSpell = card
		} else {
			ps.SpellTrapZone = append(ps.SpellTrapZone, card)
		}

	case EvtSpellActivated, EvtTrapActivated:
		ps := gs.Players[e.Seat]
		st := ps.SpellTrapSlot(e.CardID)
		if st == nil {
			// Activating directly from hand: materialize the zone entry.
			ps.Hand = removeString(ps.Hand, e.CardID)
			st = &state.SpellTrapCard{CardID: e.CardID, DefinitionID: e.DefinitionID, TurnSet: gs.TurnNumber}
			ps.SpellTrapZone = append(ps.SpellTrapZone, st)
		}
		st.FaceDown = false
		st.Activated = true
		// The chain link itself is added by EvtChainStarted (the opening
		// activation) or EvtChainLinkAdded (a response) — not here, since
		// both of those events always accompany this one and would
		// otherwise double-append the same link.

	case EvtEffectActivated:
		// Observational only: the owning board card is unchanged by
		// activating its own ignition ability, aside from the chain link
		// EvtChainStarted/EvtChainLinkAdded adds alongside this event.

	case EvtChainStarted:
		if gs.CurrentChain == nil {
			gs.CurrentChain = &state.Chain{}
		}
		gs.CurrentChain.Links = append(gs.CurrentChain.Links, state.ChainLink{
			CardID: e.CardID, EffectIndex: e.EffectIndex, ActivatingPlayer: e.Seat, Targets: e.Targets,
		})
		opp := e.Seat.Opponent()
		gs.CurrentPriorityPlayer = opp
		gs.CurrentChainPasser = ""
		gs.PendingPong = &state.PendingPong{AwaitingSeat: opp, ConsecutivePasses: 0}

	case EvtChainLinkAdded:
		if gs.CurrentChain == nil {
			gs.CurrentChain = &state.Chain{}
		}
		gs.CurrentChain.Links = append(gs.CurrentChain.Links, state.ChainLink{
			CardID: e.CardID, EffectIndex: e.EffectIndex,
			ActivatingPlayer: e.ActivatingPlayer, Targets: e.Targets,
		})
		opp := e.ActivatingPlayer.Opponent()
		gs.CurrentPriorityPlayer = opp
		gs.PendingPong = &state.PendingPong{AwaitingSeat: opp, ConsecutivePasses: 0}

	case EvtChainResolved:
		gs.CurrentChain = nil
		gs.CurrentPriorityPlayer = ""
		gs.CurrentChainPasser = ""
		gs.PendingPong = nil

	case EvtDamageDealt:
		ps := gs.Players[e.Seat]
		ps.LifePoints -= e.Amount
		if ps.LifePoints < 0 {
			ps.LifePoints = 0
		}

	case EvtCardDestroyed:
		// Observational only; the matching CARD_SENT_TO_GRAVEYARD /
		// CARD_BANISHED event performs the zone transition (spec's
		// "two-phase destroy-then-graveyard idiom").

	case EvtCardSentToGraveyard:
		removeFromZone(gs, e.SourceSeat, e.From, e.CardID)
		gs.Players[e.SourceSeat].Graveyard = append(gs.Players[e.SourceSeat].Graveyard, e.CardID)

	case EvtCardBanished:
		removeFromZone(gs, e.SourceSeat, e.From, e.CardID)
		gs.Players[e.SourceSeat].Banished = append(gs.Players[e.SourceSeat].Banished, e.CardID)

	case EvtCardReturnedToHand:
		removeFromZone(gs, e.SourceSeat, e.From, e.CardID)
		gs.Players[e.SourceSeat].Hand = append(gs.Players[e.SourceSeat].Hand, e.CardID)

	case EvtViceCounterAdded:
		if b := findBoardCard(gs, e.CardID); b != nil {
			b.ViceCounters += e.Count
		}

	case EvtViceCounterRemoved:
		if b := findBoardCard(gs, e.CardID); b != nil {
			b.ViceCounters -= e.Count
			if b.ViceCounters < 0 {
				b.ViceCounters = 0
			}
		}

	case EvtBreakdownTriggered:
		gs.Players[e.Seat.Opponent()].BreakdownsCaused++

	case EvtModifierApplied:
		if b := findBoardCard(gs, e.CardID); b != nil {
			b.TemporaryBoosts.Attack += e.AttackDelta
			b.TemporaryBoosts.Defense += e.DefenseDelta
		}
		mod := state.Modifier{
			TargetCardID: e.CardID, SourceCardID: e.SourceCardID,
			AttackDelta: e.AttackDelta, DefenseDelta: e.DefenseDelta, ExpiresAt: e.ExpiresAt,
		}
		if e.ExpiresAt == state.ExpiresEndOfTurn {
			gs.TemporaryModifiers = append(gs.TemporaryModifiers, mod)
		} else {
			gs.LingeringEffects = append(gs.LingeringEffects, mod)
		}

	case EvtModifierExpired:
		if b := findBoardCard(gs, e.CardID); b != nil {
			for _, m := range gs.TemporaryModifiers {
				if m.TargetCardID == e.CardID {
					b.TemporaryBoosts.Attack -= m.AttackDelta
					b.TemporaryBoosts.Defense -= m.DefenseDelta
				}
			}
		}
		kept := gs.TemporaryModifiers[:0]
		for _, m := range gs.TemporaryModifiers {
			if m.TargetCardID != e.CardID {
				kept = append(kept, m)
			}
		}
		gs.TemporaryModifiers = kept

	case EvtAttackDeclared:
		if b := gs.Players[e.Seat].BoardSlot(e.AttackerID); b != nil {
			b.HasAttackedThisTurn = true
		}

	case EvtChainPassed:
		if gs.PendingPong != nil {
			gs.PendingPong.AwaitingSeat = e.Seat.Opponent()
			gs.PendingPong.ConsecutivePasses++
		}

	case EvtLifeGained:
		gs.Players[e.Seat].LifePoints += e.Amount

	case EvtEffectUsed:
		if def, ok := gs.Catalog.Lookup(e.DefinitionID); ok && e.EffectIndex >= 0 && e.EffectIndex < len(def.Effects) {
			ab := def.Effects[e.EffectIndex]
			if ab.OncePerTurn {
				gs.OptUsedThisTurn[e.DefinitionID] = true
			}
			if ab.HardOncePerTurn {
				gs.HoptUsedEffects[e.CardID] = true
			}
		}

	case EvtBattleResolved, EvtDeckOut:
		// Observational only.

	case EvtGameEnded:
		gs.GameOver = true
		winner := e.Winner
		gs.Winner = &winner
		gs.WinReason = e.WinReason
	}
}

func popBack(deck []string, want string) []string {
	if len(deck) == 0 {
		return deck
	}
	if deck[len(deck)-1] == want {
		return deck[:len(deck)-1]
	}
	return removeString(deck, want)
}

func removeString(list []string, id string) []string {
	for i, v := range list {
		if v == id {
			return append(append([]string(nil), list[:i]...), list[i+1:]...)
		}
	}
	return list
}

func removeBoardCard(list []*state.BoardCard, id string) []*state.BoardCard {
	for i, v := range list {
		if v.CardID == id {
			return append(append([]*state.BoardCard(nil), list[:i]...), list[i+1:]...)
		}
	}
	return list
}

func removeSpellTrapCard(list []*state.SpellTrapCard, id string) []*state.SpellTrapCard {
	for i, v := range list {
		if v.CardID == id {
			return append(append([]*state.SpellTrapCard(nil), list[:i]...), list[i+1:]...)
		}
	}
	return list
}

// findBoardCard locates a board card by instance id across both seats.
func findBoardCard(gs *state.GameState, cardID string) *state.BoardCard {
	for _, seat := range []state.Seat{state.Host, state.Away} {
		if b := gs.Players[seat].BoardSlot(cardID); b != nil {
			return b
		}
	}
	return nil
}

// findBoardCardSeat locates a board card and the seat that owns it.
func findBoardCardSeat(gs *state.GameState, cardID string) (*state.BoardCard, state.Seat) {
	for _, seat := range []state.Seat{state.Host, state.Away} {
		if b := gs.Players[seat].BoardSlot(cardID); b != nil {
			return b, seat
		}
	}
	return nil, ""
}

// removeFromZone removes cardID from the named zone for seat.
func removeFromZone(gs *state.GameState, seat state.Seat, from state.ZoneFrom, cardID string) {
	ps := gs.Players[seat]
	switch from {
	case state.FromBoard:
		ps.Board = removeBoardCard(ps.Board, cardID)
	case state.FromSpellTrapZone:
		ps.SpellTrapZone = removeSpellTrapCard(ps.SpellTrapZone, cardID)
	case state.FromField:
		if ps.FieldSpell != nil && ps.FieldSpell.CardID == cardID {
			ps.FieldSpell = nil
		}
	case state.FromHand:
		ps.Hand = removeString(ps.Hand, cardID)
	case state.FromGraveyard:
		ps.Graveyard = removeString(ps.Graveyard, cardID)
	case state.FromBanished:
		ps.Banished = removeString(ps.Banished, cardID)
	case state.FromDeck:
		ps.Deck = removeString(ps.Deck, cardID)
	}
}
