package kernel

import "github.com/tcgx-game/duelcore/internal/state"

// CommandType tags the commands a seat may submit (spec §4.1.1).
type CommandType string

const (
	CmdAdvancePhase   CommandType = "advance_phase"
	CmdEndTurn        CommandType = "end_turn"
	CmdDrawCard       CommandType = "draw_card"
	CmdSummon         CommandType = "summon"
	CmdSetMonster     CommandType = "set_monster"
	CmdFlipSummon     CommandType = "flip_summon"
	CmdChangePosition CommandType = "change_position"
	CmdSetSpellTrap   CommandType = "set_spell_trap"
	CmdActivateSpell  CommandType = "activate_spell"
	CmdActivateTrap   CommandType = "activate_trap"
	CmdActivateEffect CommandType = "activate_effect"
	CmdDeclareAttack  CommandType = "declare_attack"
	CmdChainResponse  CommandType = "chain_response"
	CmdSurrender      CommandType = "surrender"
)

// Command is a single player-submitted action (spec §4.1.1). Not every
// field applies to every CommandType; see the per-type doc comments.
type Command struct {
	Type CommandType `json:"type"`

	// SUMMON / SET_MONSTER / FLIP_SUMMON / CHANGE_POSITION / SET_SPELL_TRAP /
	// ACTIVATE_SPELL / ACTIVATE_TRAP / ACTIVATE_EFFECT
	CardID         string          `json:"cardId,omitempty"`
	Position       state.Position  `json:"position,omitempty"`
	TributeCardIDs []string        `json:"tributeCardIds,omitempty"`
	Targets        []string        `json:"targets,omitempty"`

	// DECLARE_ATTACK
	AttackerID   string `json:"attackerId,omitempty"`
	AttackerSlot *int   `json:"attackerSlot,omitempty"`
	TargetID     string `json:"targetId,omitempty"`

	// CHAIN_RESPONSE / ACTIVATE_EFFECT: EffectIndex selects which of the
	// card's abilities (CardDefinition.Effects) is being activated.
	Pass        bool `json:"pass,omitempty"`
	EffectIndex int  `json:"effectIndex,omitempty"`
}
