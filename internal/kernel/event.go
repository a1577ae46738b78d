package kernel

import "github.com/tcgx-game/duelcore/internal/state"

// EventType tags every observable game event (spec §4.1.1).
type EventType string

const (
	EvtPhaseChanged        EventType = "phase_changed"
	EvtTurnStarted         EventType = "turn_started"
	EvtCardDrawn           EventType = "card_drawn"
	EvtMonsterSummoned     EventType = "monster_summoned"
	EvtMonsterSet          EventType = "monster_set"
	EvtFlipSummoned        EventType = "flip_summoned"
	EvtPositionChanged     EventType = "position_changed"
	EvtSpellTrapSet        EventType = "spell_trap_set"
	EvtSpellActivated      EventType = "spell_activated"
	EvtTrapActivated       EventType = "trap_activated"
	EvtEffectActivated     EventType = "effect_activated"
	EvtAttackDeclared      EventType = "attack_declared"
	EvtDamageDealt         EventType = "damage_dealt"
	EvtCardDestroyed       EventType = "card_destroyed"
	EvtCardSentToGraveyard EventType = "card_sent_to_graveyard"
	EvtCardBanished        EventType = "card_banished"
	EvtCardReturnedToHand  EventType = "card_returned_to_hand"
	EvtViceCounterAdded    EventType = "vice_counter_added"
	EvtViceCounterRemoved  EventType = "vice_counter_removed"
	EvtBreakdownTriggered  EventType = "breakdown_triggered"
	EvtModifierApplied     EventType = "modifier_applied"
	EvtModifierExpired     EventType = "modifier_expired"
	EvtChainStarted        EventType = "chain_started"
	EvtChainLinkAdded      EventType = "chain_link_added"
	EvtChainResolved       EventType = "chain_resolved"
	EvtBattleResolved      EventType = "battle_resolved"
	EvtDeckOut             EventType = "deck_out"
	EvtGameEnded           EventType = "game_ended"
	EvtSpecialSummoned     EventType = "special_summoned"

	// Implementation-only events, outside spec.md's explicit "Events
	// (subset)" list but within its stated room for more: a single
	// non-closing chain pass has no externally-listed event of its own,
	// and neither does restoring life points.
	EvtChainPassed EventType = "chain_passed"
	EvtLifeGained  EventType = "life_gained"

	// EvtEffectUsed marks an OPT/HOPT-gated ability's spend for the turn;
	// it carries no board effect of its own (the actions it accompanies do
	// that), only the bookkeeping evolve needs to enforce the limit.
	EvtEffectUsed EventType = "effect_used"
)

// BattleResult tags the outcome of a BATTLE_RESOLVED event.
type BattleResult string

const (
	ResultWin  BattleResult = "win"
	ResultLose BattleResult = "lose"
	ResultDraw BattleResult = "draw"
)

// Event is a single emitted occurrence. It is a closed, struct-shaped
// tagged variant: only the fields relevant to Type are populated, the
// rest are left at their zero value and omitted from JSON.
type Event struct {
	Type EventType `json:"type"`

	Seat       state.Seat     `json:"seat,omitempty"`
	SourceSeat state.Seat     `json:"sourceSeat,omitempty"`
	CardID     string         `json:"cardId,omitempty"`
	DefinitionID string       `json:"definitionId,omitempty"`
	From       state.ZoneFrom `json:"from,omitempty"`

	Position state.Position `json:"position,omitempty"`
	Phase    state.Phase    `json:"phase,omitempty"`
	Turn     int            `json:"turn,omitempty"`

	Amount   int  `json:"amount,omitempty"`
	IsBattle bool `json:"isBattle,omitempty"`
	Result   BattleResult `json:"result,omitempty"`

	AttackerID string `json:"attackerId,omitempty"`
	TargetID   string `json:"targetId,omitempty"`
	Reason     string `json:"reason,omitempty"`

	EffectIndex      int        `json:"effectIndex,omitempty"`
	ActivatingPlayer state.Seat `json:"activatingPlayer,omitempty"`
	Targets          []string   `json:"targets,omitempty"`
	Negated          bool       `json:"negated,omitempty"`

	Winner    state.Seat `json:"winner,omitempty"`
	WinReason string     `json:"winReason,omitempty"`

	Count     int            `json:"count,omitempty"`
	ExpiresAt state.Duration `json:"expiresAt,omitempty"`

	SourceCardID string `json:"sourceCardId,omitempty"`
	AttackDelta  int    `json:"attackDelta,omitempty"`
	DefenseDelta int    `json:"defenseDelta,omitempty"`
}

// Win reasons (spec §3 invariant 2, §4.1.6).
const (
	WinReasonLPZero    = "lp_zero"
	WinReasonDeckOut   = "deck_out"
	WinReasonBreakdown = "breakdown"
	WinReasonSurrender = "surrender"
)
