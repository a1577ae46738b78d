// Package mask projects a full GameState down to the information a single
// seat is entitled to see (spec §3, PlayerView): opponent hand becomes a
// count, face-down cards expose only zone/position/counters, decks expose
// counts only.
package mask

import "github.com/tcgx-game/duelcore/internal/state"

// BoardCardView is a board card as seen by an observer; FaceDown cards
// from the opponent's side hide DefinitionID.
type BoardCardView struct {
	CardID                  string       `json:"cardId"`
	DefinitionID            string       `json:"definitionId,omitempty"`
	Position                state.Position `json:"position"`
	FaceDown                bool         `json:"faceDown"`
	CanAttack               bool         `json:"canAttack"`
	HasAttackedThisTurn     bool         `json:"hasAttackedThisTurn"`
	ChangedPositionThisTurn bool         `json:"changedPositionThisTurn"`
	ViceCounters            int          `json:"viceCounters"`
	TemporaryBoosts         state.Boost  `json:"temporaryBoosts"`
}

// SpellTrapCardView mirrors BoardCardView for the spell/trap zone.
type SpellTrapCardView struct {
	CardID       string `json:"cardId"`
	DefinitionID string `json:"definitionId,omitempty"`
	FaceDown     bool   `json:"faceDown"`
	Activated    bool   `json:"activated"`
	IsFieldSpell bool   `json:"isFieldSpell"`
}

// PlayerSideView is one seat's zones as visible to the requesting observer.
// HandCount/DeckCount replace Hand/Deck entirely on the opponent's side;
// on the observer's own side Hand and Deck are fully visible.
type PlayerSideView struct {
	Hand          []string            `json:"hand,omitempty"`
	HandCount     int                 `json:"handCount"`
	Board         []BoardCardView     `json:"board"`
	SpellTrapZone []SpellTrapCardView `json:"spellTrapZone"`
	FieldSpell    *SpellTrapCardView  `json:"fieldSpell,omitempty"`
	DeckCount     int                 `json:"deckCount"`
	Graveyard     []string            `json:"graveyard"`
	Banished      []string            `json:"banished"`

	LifePoints             int  `json:"lifePoints"`
	BreakdownsCaused       int  `json:"breakdownsCaused"`
	NormalSummonedThisTurn bool `json:"normalSummonedThisTurn"`
}

// PlayerView is the full masked projection returned to one seat (spec §3).
type PlayerView struct {
	Self     PlayerSideView `json:"self"`
	Opponent PlayerSideView `json:"opponent"`

	CurrentTurnPlayer state.Seat  `json:"currentTurnPlayer"`
	TurnNumber        int         `json:"turnNumber"`
	CurrentPhase      state.Phase `json:"currentPhase"`

	CurrentChain          *state.Chain `json:"currentChain,omitempty"`
	CurrentPriorityPlayer state.Seat   `json:"currentPriorityPlayer,omitempty"`
	CurrentChainPasser    state.Seat   `json:"currentChainPasser,omitempty"`

	Winner    *state.Seat `json:"winner,omitempty"`
	WinReason string      `json:"winReason,omitempty"`
	GameOver  bool        `json:"gameOver"`
}

// Mask projects gs down to what seat is entitled to observe. Pass "" (an
// invalid seat) to build a spectator view — equivalent to intersecting
// both seats' masks, per spec §4.5's authorization note.
func Mask(gs *state.GameState, seat state.Seat) PlayerView {
	spectator := !seat.Valid()

	view := PlayerView{
		CurrentTurnPlayer: gs.CurrentTurnPlayer,
		TurnNumber:        gs.TurnNumber,
		CurrentPhase:      gs.CurrentPhase,
		CurrentChain:      gs.CurrentChain,
		Winner:            gs.Winner,
		WinReason:         gs.WinReason,
		GameOver:          gs.GameOver,
	}
	if !spectator {
		view.CurrentPriorityPlayer = gs.CurrentPriorityPlayer
		view.CurrentChainPasser = gs.CurrentChainPasser
	}

	if spectator {
		view.Self = maskSide(gs, state.Host, true)
		view.Opponent = maskSide(gs, state.Away, true)
		return view
	}

	view.Self = maskSide(gs, seat, false)
	view.Opponent = maskSide(gs, seat.Opponent(), true)
	return view
}

func maskSide(gs *state.GameState, seat state.Seat, hidden bool) PlayerSideView {
	ps := gs.Players[seat]

	v := PlayerSideView{
		HandCount:              len(ps.Hand),
		DeckCount:               len(ps.Deck),
		Graveyard:               ps.Graveyard,
		Banished:                ps.Banished,
		LifePoints:              ps.LifePoints,
		BreakdownsCaused:        ps.BreakdownsCaused,
		NormalSummonedThisTurn:  ps.NormalSummonedThisTurn,
	}
	if !hidden {
		v.Hand = ps.Hand
	}

	for _, b := range ps.Board {
		v.Board = append(v.Board, maskBoardCard(b, hidden))
	}
	for _, s := range ps.SpellTrapZone {
		v.SpellTrapZone = append(v.SpellTrapZone, maskSpellTrapCard(s, hidden))
	}
	if ps.FieldSpell != nil {
		c := maskSpellTrapCard(ps.FieldSpell, hidden)
		v.FieldSpell = &c
	}
	return v
}

func maskBoardCard(b *state.BoardCard, hidden bool) BoardCardView {
	v := BoardCardView{
		CardID:                  b.CardID,
		Position:                b.Position,
		FaceDown:                b.FaceDown,
		CanAttack:               b.CanAttack,
		HasAttackedThisTurn:     b.HasAttackedThisTurn,
		ChangedPositionThisTurn: b.ChangedPositionThisTurn,
		ViceCounters:            b.ViceCounters,
		TemporaryBoosts:         b.TemporaryBoosts,
	}
	if !b.FaceDown || !hidden {
		v.DefinitionID = b.DefinitionID
	}
	return v
}

func maskSpellTrapCard(s *state.SpellTrapCard, hidden bool) SpellTrapCardView {
	v := SpellTrapCardView{
		CardID:       s.CardID,
		FaceDown:     s.FaceDown,
		Activated:    s.Activated,
		IsFieldSpell: s.IsFieldSpell,
	}
	if !s.FaceDown || !hidden {
		v.DefinitionID = s.DefinitionID
	}
	return v
}
