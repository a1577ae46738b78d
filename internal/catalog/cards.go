package catalog

// intp returns a pointer to v, for the optional Attack/Defense/Level
// fields on CardDefinition.
func intp(v int) *int { return &v }

// Default is a representative catalog exercising every ActionKind the
// effect interpreter understands except remove_vice, grounded on the teacher's card registry
// (cards.go) but expressed as declarative EffectAction sequences instead
// of closures.
func Default() *Catalog {
	return New([]*CardDefinition{
		{
			ID: "chrome_sentinel", Name: "Chrome Sentinel", Type: TypeStereotype,
			Attack: intp(1800), Defense: intp(1200), Level: intp(4), Attribute: AttrDark,
		},
		{
			ID: "aero_knight", Name: "Aero Knight Parshath", Type: TypeStereotype,
			Attack: intp(1900), Defense: intp(1400), Level: intp(4), Attribute: AttrWind,
		},
		{
			ID: "breaker_chrome_warrior", Name: "Breaker the Chrome Warrior", Type: TypeStereotype,
			Attack: intp(1900), Defense: intp(800), Level: intp(4), Attribute: AttrLight,
			Effects: []EffectAbility{{
				Name: "Breaker's Spark", ExecSpeed: Speed2, Trigger: TriggerFlip, HardOncePerTurn: true,
				Actions: []EffectAction{{Kind: ActionDestroy, DestroyTarget: TargetSelected}},
			}},
		},
		{
			ID: "steel_juggernaut", Name: "Steel Juggernaut", Type: TypeStereotype,
			Attack: intp(2600), Defense: intp(2200), Level: intp(7),
		},
		{
			ID: "abyssal_netrunner", Name: "Abyssal Netrunner", Type: TypeStereotype,
			Attack: intp(1200), Defense: intp(900), Level: intp(3), Attribute: AttrWater,
			Effects: []EffectAbility{{
				Name: "Netrunner's Toll", ExecSpeed: Speed1, Trigger: TriggerEvent, TriggerEvent: "card_destroyed", OncePerTurn: true,
				Actions: []EffectAction{{Kind: ActionDraw, SeatTarget: TargetSelf, Count: 1}},
			}},
		},
		{
			ID: "void_drifter", Name: "Void Drifter", Type: TypeStereotype,
			Attack: intp(0), Defense: intp(2000), Level: intp(3),
			Effects: []EffectAbility{{
				Name: "Phase Out", ExecSpeed: Speed1, Trigger: TriggerIgnition, OncePerTurn: true,
				Actions: []EffectAction{{Kind: ActionBanish}},
			}},
		},
		{
			ID: "datamancer", Name: "Datamancer", Type: TypeStereotype,
			Attack: intp(1500), Defense: intp(1400), Level: intp(4),
			Effects: []EffectAbility{{
				Name: "Data Recall", ExecSpeed: Speed1, Trigger: TriggerIgnition, HardOncePerTurn: true,
				Actions: []EffectAction{{Kind: ActionReturnToHand, SeatTarget: TargetOpponent}},
			}},
		},
		{
			ID: "greed_protocol", Name: "Greed Protocol", Type: TypeSpell, SpellType: SpellNormal,
			Effects: []EffectAbility{{
				Name: "Greed Protocol", ExecSpeed: Speed1, Trigger: TriggerIgnition,
				Actions: []EffectAction{{Kind: ActionDraw, SeatTarget: TargetSelf, Count: 2}},
			}},
		},
		{
			ID: "void_purge", Name: "Void Purge", Type: TypeSpell, SpellType: SpellNormal,
			Effects: []EffectAbility{{
				Name: "Void Purge", ExecSpeed: Speed1, Trigger: TriggerIgnition,
				Actions: []EffectAction{{Kind: ActionDestroy, DestroyTarget: TargetAllOpponentMonsters}},
			}},
		},
		{
			ID: "emp_cascade", Name: "EMP Cascade", Type: TypeSpell, SpellType: SpellNormal,
			Effects: []EffectAbility{{
				Name: "EMP Cascade", ExecSpeed: Speed1, Trigger: TriggerIgnition,
				Actions: []EffectAction{{Kind: ActionDestroy, DestroyTarget: TargetAllSpellsTraps}},
			}},
		},
		{
			ID: "reactive_plating", Name: "Reactive Plating", Type: TypeSpell, SpellType: SpellEquip,
			Effects: []EffectAbility{{
				Name: "Reactive Plating", ExecSpeed: Speed1, Trigger: TriggerIgnition,
				Actions: []EffectAction{{Kind: ActionBoostAttack, Amount: 700, Duration: DurationPermanent}},
			}},
		},
		{
			ID: "reflector_array", Name: "Reflector Array", Type: TypeSpell, SpellType: SpellField,
			Effects: []EffectAbility{{
				Name: "Reflector Array", ExecSpeed: Speed1, Trigger: TriggerContinuous,
				Actions: []EffectAction{{Kind: ActionBoostDefense, SeatTarget: TargetSelf, Amount: 500, Duration: DurationPermanent}},
			}},
		},
		{
			ID: "neural_siphon", Name: "Neural Siphon", Type: TypeSpell, SpellType: SpellQuickPlay,
			Effects: []EffectAbility{{
				Name: "Neural Siphon", ExecSpeed: Speed2, Trigger: TriggerQuick,
				Actions: []EffectAction{
					{Kind: ActionDamage, SeatTarget: TargetOpponent, Amount: 800},
					{Kind: ActionHeal, SeatTarget: TargetSelf, Amount: 800},
				},
			}},
		},
		{
			ID: "emergency_reboot", Name: "Emergency Reboot", Type: TypeTrap, TrapType: TrapNormal,
			Effects: []EffectAbility{{
				Name: "Emergency Reboot", ExecSpeed: Speed2, Trigger: TriggerIgnition,
				Actions: []EffectAction{{Kind: ActionSpecialSummon, FromZone: FromGraveyard, Count: 1}},
			}},
		},
		{
			ID: "decoy_holograms", Name: "Decoy Holograms", Type: TypeTrap, TrapType: TrapNormal,
			Effects: []EffectAbility{{
				Name: "Decoy Holograms", ExecSpeed: Speed2, Trigger: TriggerIgnition,
				Actions: []EffectAction{{Kind: ActionNegate}},
			}},
		},
		{
			ID: "trace_and_terminate", Name: "Trace and Terminate", Type: TypeTrap, TrapType: TrapCounter,
			Effects: []EffectAbility{{
				Name: "Trace and Terminate", ExecSpeed: Speed3, Trigger: TriggerQuick,
				Actions: []EffectAction{
					{Kind: ActionNegate},
					{Kind: ActionDestroy, DestroyTarget: TargetSelected},
				},
			}},
		},
		{
			ID: "static_discharge", Name: "Static Discharge", Type: TypeTrap, TrapType: TrapContinuous,
			Effects: []EffectAbility{{
				Name: "Static Discharge", ExecSpeed: Speed2, Trigger: TriggerIgnition, OncePerTurn: true,
				Actions: []EffectAction{{Kind: ActionAddVice, Count: 1}},
			}},
		},
		{
			ID: "memory_corruption", Name: "Memory Corruption", Type: TypeTrap, TrapType: TrapNormal,
			Effects: []EffectAbility{{
				Name: "Memory Corruption", ExecSpeed: Speed2, Trigger: TriggerIgnition,
				Actions: []EffectAction{{Kind: ActionDiscard, SeatTarget: TargetOpponent, Count: 1}},
			}},
		},
		{
			ID: "resurrection_protocol", Name: "Resurrection Protocol", Type: TypeTrap, TrapType: TrapNormal,
			Effects: []EffectAbility{{
				Name: "Resurrection Protocol", ExecSpeed: Speed2, Trigger: TriggerIgnition,
				Actions: []EffectAction{{Kind: ActionChangePosition}},
			}},
		},
		{
			ID: "cascade_failure", Name: "Cascade Failure", Type: TypeVice,
		},
	})
}
