package entities

// Character is a finalized, immutable character record. Derived stats
// are computed once at finalization and stored alongside the choices
// that produced them.
type Character struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Level    int32  `json:"level"`
	RaceID   string `json:"race_id"`
	ClassID  string `json:"class_id"`

	// BaseAbilities are the assigned scores before racial bonuses;
	// Abilities are the final scores with bonuses applied.
	BaseAbilities AbilityScores `json:"base_abilities"`
	Abilities     AbilityScores `json:"abilities"`

	SkillIDs          []string             `json:"skill_ids"`
	ExpertiseSkillIDs []string             `json:"expertise_skill_ids,omitempty"`
	FightingStyle     string               `json:"fighting_style,omitempty"`
	Equipment         []EquipmentSelection `json:"equipment"`
	CantripIDs        []string             `json:"cantrip_ids,omitempty"`
	SpellIDs          []string             `json:"spell_ids,omitempty"`

	MaxHP             int32 `json:"max_hp"`
	CurrentHP         int32 `json:"current_hp"`
	ArmorClass        int32 `json:"armor_class"`
	Initiative        int32 `json:"initiative"`
	Speed             int32 `json:"speed"`
	ProficiencyBonus  int32 `json:"proficiency_bonus"`
	PassivePerception int32 `json:"passive_perception"`

	// SpellSaveDC and SpellAttackBonus are zero for non-casters.
	SpellSaveDC      int32 `json:"spell_save_dc,omitempty"`
	SpellAttackBonus int32 `json:"spell_attack_bonus,omitempty"`

	// CoinsRemaining is what was left of the starting budget after
	// equipment purchases.
	CoinsRemaining Coins `json:"coins_remaining"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// HasSkill reports whether the character is proficient in a skill.
func (c *Character) HasSkill(skillID string) bool {
	for _, id := range c.SkillIDs {
		if id == skillID {
			return true
		}
	}
	return false
}

// HasExpertise reports whether the character has expertise in a skill.
func (c *Character) HasExpertise(skillID string) bool {
	for _, id := range c.ExpertiseSkillIDs {
		if id == skillID {
			return true
		}
	}
	return false
}

// SkillModifier returns the character's modifier for a skill given the
// skill's governing ability. Proficiency adds the proficiency bonus,
// expertise doubles it.
func (c *Character) SkillModifier(skillID, governingAbility string) int32 {
	mod := AbilityModifier(c.Abilities.Get(governingAbility))
	if c.HasExpertise(skillID) {
		return mod + 2*c.ProficiencyBonus
	}
	if c.HasSkill(skillID) {
		return mod + c.ProficiencyBonus
	}
	return mod
}
