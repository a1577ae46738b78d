// Package state defines the typed game state, zones, and modifiers for a
// duel. It is data plus small constructors and zone accessors — the rules
// themselves live in the kernel (spec §3, "State Model... no logic beyond
// construction").
package state

import "github.com/tcgx-game/duelcore/internal/catalog"

// Seat identifies one of the two participating sides.
type Seat string

const (
	Host Seat = "host"
	Away Seat = "away"
)

// Opponent returns the other seat.
func (s Seat) Opponent() Seat {
	if s == Host {
		return Away
	}
	return Host
}

// Valid reports whether s is a recognized seat value.
func (s Seat) Valid() bool {
	return s == Host || s == Away
}

// Position is a board card's battle stance.
type Position string

const (
	PositionAttack  Position = "attack"
	PositionDefense Position = "defense"
)

// Phase is a segment of a turn.
type Phase string

const (
	PhaseDraw           Phase = "draw"
	PhaseStandby        Phase = "standby"
	PhaseBreakdownCheck Phase = "breakdown_check"
	PhaseMain           Phase = "main"
	PhaseCombat         Phase = "combat"
	PhaseMain2          Phase = "main2"
	PhaseEnd            Phase = "end"
)

// phaseOrder is the fixed per-turn sequence driven by ADVANCE_PHASE.
var phaseOrder = []Phase{PhaseDraw, PhaseStandby, PhaseBreakdownCheck, PhaseMain, PhaseCombat, PhaseMain2, PhaseEnd}

// Next returns the phase that follows p within a turn, and false when p
// has no successor (PhaseEnd is last; END_TURN handles the turn rollover
// instead).
func (p Phase) Next() (Phase, bool) {
	for i, ph := range phaseOrder {
		if ph == p {
			if i+1 < len(phaseOrder) {
				return phaseOrder[i+1], true
			}
			return p, false
		}
	}
	return p, false
}

// ZoneFrom names the zone a zone-transition event moved a card out of.
type ZoneFrom string

const (
	FromBoard         ZoneFrom = "board"
	FromHand          ZoneFrom = "hand"
	FromSpellTrapZone ZoneFrom = "spell_trap_zone"
	FromField         ZoneFrom = "field"
	FromGraveyard     ZoneFrom = "graveyard"
	FromBanished      ZoneFrom = "banished"
	FromDeck          ZoneFrom = "deck"
)

// Boost is an accumulated temporary or permanent stat modification.
type Boost struct {
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// BoardCard is a stereotype occupying a board slot.
type BoardCard struct {
	CardID                  string   `json:"cardId"`
	DefinitionID            string   `json:"definitionId"`
	Position                Position `json:"position"`
	FaceDown                bool     `json:"faceDown"`
	CanAttack               bool     `json:"canAttack"`
	HasAttackedThisTurn     bool     `json:"hasAttackedThisTurn"`
	ChangedPositionThisTurn bool     `json:"changedPositionThisTurn"`
	ViceCounters            int      `json:"viceCounters"`
	TemporaryBoosts         Boost    `json:"temporaryBoosts"`
	EquippedCards           []string `json:"equippedCards"`
	TurnSummoned            int      `json:"turnSummoned"`
	TurnControlChanged      int      `json:"turnControlChanged"`
}

// SpellTrapCard is a spell or trap occupying a spell/trap zone slot (or
// the field-spell slot, when IsFieldSpell is set).
type SpellTrapCard struct {
	CardID       string `json:"cardId"`
	DefinitionID string `json:"definitionId"`
	FaceDown     bool   `json:"faceDown"`
	Activated    bool   `json:"activated"`
	IsFieldSpell bool   `json:"isFieldSpell"`
	TurnSet      int    `json:"turnSet"`
}

// ChainLink is one pending entry on the chain stack.
type ChainLink struct {
	CardID           string   `json:"cardId"`
	EffectIndex      int      `json:"effectIndex"`
	ActivatingPlayer Seat     `json:"activatingPlayer"`
	Targets          []string `json:"targets"`
}

// Chain is the LIFO stack of pending chain links.
type Chain struct {
	Links []ChainLink `json:"links"`
}

// Modifier is an applied stat change awaiting expiry.
type Modifier struct {
	TargetCardID string   `json:"targetCardId"`
	SourceCardID string   `json:"sourceCardId"`
	AttackDelta  int      `json:"attackDelta"`
	DefenseDelta int      `json:"defenseDelta"`
	ExpiresAt    Duration `json:"expiresAt"`
}

// Duration controls when a boost/modifier is swept away.
type Duration string

const (
	ExpiresEndOfTurn Duration = "end_of_turn"
	ExpiresPermanent Duration = "permanent"
)

// PendingActionKind names what a PendingAction is waiting on.
type PendingActionKind string

const (
	PendingNone           PendingActionKind = ""
	PendingAttackReplay   PendingActionKind = "attack_replay"
	PendingChainResponse  PendingActionKind = "chain_response"
)

// PendingAction captures mid-resolution state that needs a follow-up
// command before play can continue (e.g. an attack whose original target
// vanished during the response window, ported from the teacher's battle
// "replay" flow).
type PendingAction struct {
	Kind       PendingActionKind `json:"kind"`
	Seat       Seat              `json:"seat"`
	AttackerID string            `json:"attackerId,omitempty"`
}

// PendingPong tracks who must answer the current chain-response
// solicitation and since when — the "ping/pong" of priority passing
// described in spec §4.1.5.
type PendingPong struct {
	AwaitingSeat   Seat `json:"awaitingSeat"`
	ConsecutivePasses int `json:"consecutivePasses"`
}

// LastSummon records the most recent summon for trigger matching (the
// teacher's LastSummonEvent).
type LastSummon struct {
	CardID string `json:"cardId"`
	Seat   Seat   `json:"seat"`
}

// Config is the per-match rule configuration (spec §3).
type Config struct {
	StartingLP              int  `json:"startingLP"`
	MaxBoardSlots           int  `json:"maxBoardSlots"`
	MaxSpellTrapSlots       int  `json:"maxSpellTrapSlots"`
	MaxHandSize             int  `json:"maxHandSize"`
	BreakdownThreshold      int  `json:"breakdownThreshold"`
	MaxBreakdownsToWin      int  `json:"maxBreakdownsToWin"`
	TributeThresholdLevel   int  `json:"tributeThresholdLevel"`
	FirstTurnAttackAllowed  bool `json:"firstTurnAttackAllowed"`
}

// DefaultConfig returns the spec's default rule configuration.
func DefaultConfig() Config {
	return Config{
		StartingLP:             8000,
		MaxBoardSlots:          3,
		MaxSpellTrapSlots:      3,
		MaxHandSize:            7,
		BreakdownThreshold:     3,
		MaxBreakdownsToWin:     3,
		TributeThresholdLevel:  7,
		FirstTurnAttackAllowed: false,
	}
}

// PlayerState is one seat's zones and scalars.
type PlayerState struct {
	Hand          []string         `json:"hand"`
	Board         []*BoardCard     `json:"board"`
	SpellTrapZone []*SpellTrapCard `json:"spellTrapZone"`
	FieldSpell    *SpellTrapCard   `json:"fieldSpell,omitempty"`
	Deck          []string         `json:"deck"`
	Graveyard     []string         `json:"graveyard"`
	Banished      []string         `json:"banished"`

	LifePoints             int  `json:"lifePoints"`
	BreakdownsCaused       int  `json:"breakdownsCaused"`
	NormalSummonedThisTurn bool `json:"normalSummonedThisTurn"`
}

// NewPlayerState creates an empty player side seeded with starting LP.
func NewPlayerState(startingLP int) *PlayerState {
	return &PlayerState{LifePoints: startingLP}
}

// BoardSlot returns the board card with the given instance id, or nil.
func (p *PlayerState) BoardSlot(cardID string) *BoardCard {
	for _, b := range p.Board {
		if b.CardID == cardID {
			return b
		}
	}
	return nil
}

// SpellTrapSlot returns the spell/trap card with the given instance id
// (including the field-spell slot), or nil.
func (p *PlayerState) SpellTrapSlot(cardID string) *SpellTrapCard {
	if p.FieldSpell != nil && p.FieldSpell.CardID == cardID {
		return p.FieldSpell
	}
	for _, s := range p.SpellTrapZone {
		if s.CardID == cardID {
			return s
		}
	}
	return nil
}

// HandIndex returns the index of cardID within Hand, or -1.
func (p *PlayerState) HandIndex(cardID string) int {
	for i, c := range p.Hand {
		if c == cardID {
			return i
		}
	}
	return -1
}

// GameState is the full, server-only duel state (spec §3).
type GameState struct {
	Config               Config             `json:"config"`
	Catalog              *catalog.Catalog   `json:"-"`
	InstanceToDefinition map[string]string  `json:"instanceToDefinition"`

	Players map[Seat]*PlayerState `json:"players"`

	CurrentTurnPlayer Seat  `json:"currentTurnPlayer"`
	TurnNumber        int   `json:"turnNumber"`
	CurrentPhase      Phase `json:"currentPhase"`

	CurrentChain           *Chain         `json:"currentChain,omitempty"`
	NegatedLinks           map[string]bool `json:"negatedLinks"`
	CurrentPriorityPlayer  Seat           `json:"currentPriorityPlayer,omitempty"`
	CurrentChainPasser     Seat           `json:"currentChainPasser,omitempty"`
	PendingPong            *PendingPong   `json:"pendingPong,omitempty"`

	PendingAction      *PendingAction `json:"pendingAction,omitempty"`
	TemporaryModifiers []Modifier     `json:"temporaryModifiers"`
	LingeringEffects   []Modifier     `json:"lingeringEffects"`

	OptUsedThisTurn  map[string]bool `json:"optUsedThisTurn"`
	HoptUsedEffects  map[string]bool `json:"hoptUsedEffects"`

	LastSummon *LastSummon `json:"lastSummon,omitempty"`

	Winner     *Seat  `json:"winner,omitempty"`
	WinReason  string `json:"winReason,omitempty"`
	GameOver   bool   `json:"gameOver"`
	GameStarted bool  `json:"gameStarted"`

	RNGSeed int64 `json:"rngSeed"`

	nextInstanceSeq int
}

// New creates a fresh, empty GameState for two seats using cfg and cat.
func New(cfg Config, cat *catalog.Catalog, seed int64) *GameState {
	return &GameState{
		Config:               cfg,
		Catalog:              cat,
		InstanceToDefinition: make(map[string]string),
		Players: map[Seat]*PlayerState{
			Host: NewPlayerState(cfg.StartingLP),
			Away: NewPlayerState(cfg.StartingLP),
		},
		CurrentPhase:      PhaseDraw,
		CurrentTurnPlayer: Host,
		TurnNumber:        1,
		NegatedLinks:      make(map[string]bool),
		OptUsedThisTurn:   make(map[string]bool),
		HoptUsedEffects:   make(map[string]bool),
		RNGSeed:           seed,
	}
}

// DefinitionOf resolves a card instance id to its definition, defaulting
// an instance to its own id when no mapping is recorded (legacy states,
// spec §3 Card instance).
func (gs *GameState) DefinitionOf(cardID string) (*catalog.CardDefinition, bool) {
	defID, ok := gs.InstanceToDefinition[cardID]
	if !ok {
		defID = cardID
	}
	return gs.Catalog.Lookup(defID)
}

// NextInstanceID mints a fresh, match-unique card instance id.
func (gs *GameState) NextInstanceID(definitionID string) string {
	gs.nextInstanceSeq++
	id := definitionIDSeq(definitionID, gs.nextInstanceSeq)
	gs.InstanceToDefinition[id] = definitionID
	return id
}

func definitionIDSeq(defID string, seq int) string {
	return defID + "#" + itoa(seq)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Clone performs a deep-enough copy of the state for decide/evolve's
// functional-update contract: callers never observe an input state
// mutated after a decide/evolve call returns.
func (gs *GameState) Clone() *GameState {
	cp := *gs
	cp.InstanceToDefinition = cloneStringMap(gs.InstanceToDefinition)
	cp.NegatedLinks = cloneBoolMap(gs.NegatedLinks)
	cp.OptUsedThisTurn = cloneBoolMap(gs.OptUsedThisTurn)
	cp.HoptUsedEffects = cloneBoolMap(gs.HoptUsedEffects)
	cp.TemporaryModifiers = append([]Modifier(nil), gs.TemporaryModifiers...)
	cp.LingeringEffects = append([]Modifier(nil), gs.LingeringEffects...)

	cp.Players = make(map[Seat]*PlayerState, len(gs.Players))
	for seat, p := range gs.Players {
		cp.Players[seat] = clonePlayer(p)
	}

	if gs.CurrentChain != nil {
		links := append([]ChainLink(nil), gs.CurrentChain.Links...)
		cp.CurrentChain = &Chain{Links: links}
	}
	if gs.PendingAction != nil {
		pa := *gs.PendingAction
		cp.PendingAction = &pa
	}
	if gs.PendingPong != nil {
		pp := *gs.PendingPong
		cp.PendingPong = &pp
	}
	if gs.LastSummon != nil {
		ls := *gs.LastSummon
		cp.LastSummon = &ls
	}
	if gs.Winner != nil {
		w := *gs.Winner
		cp.Winner = &w
	}
	return &cp
}

func clonePlayer(p *PlayerState) *PlayerState {
	cp := *p
	cp.Hand = append([]string(nil), p.Hand...)
	cp.Deck = append([]string(nil), p.Deck...)
	cp.Graveyard = append([]string(nil), p.Graveyard...)
	cp.Banished = append([]string(nil), p.Banished...)
	cp.Board = make([]*BoardCard, len(p.Board))
	for i, b := range p.Board {
		nb := *b
		nb.EquippedCards = append([]string(nil), b.EquippedCards...)
		cp.Board[i] = &nb
	}
	cp.SpellTrapZone = make([]*SpellTrapCard, len(p.SpellTrapZone))
	for i, s := range p.SpellTrapZone {
		ns := *s
		cp.SpellTrapZone[i] = &ns
	}
	if p.FieldSpell != nil {
		fs := *p.FieldSpell
		cp.FieldSpell = &fs
	}
	return &cp
}

func cloneStringMap(m map[string]string) map[string]string {
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	cp := make(map[string]bool, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
