package rulebook

import "github.com/KirkDiggler/character-builder/internal/entities"

// Fighting styles a fighter may choose from.
var fighterStyles = []string{
	"Archery",
	"Blind Fighting",
	"Defense",
	"Dueling",
	"Great Weapon Fighting",
	"Interception",
	"Protection",
	"Thrown Weapon Fighting",
	"Two-Weapon Fighting",
	"Unarmed Fighting",
}

var classTable = []*Class{
	{
		ID:           entities.ClassFighter,
		Name:         "Fighter",
		HitDie:       10,
		SkillCount:   2,
		StartingGold: 155,
		SkillIDs: []string{
			entities.SkillAcrobatics,
			entities.SkillAnimalHandling,
			entities.SkillAthletics,
			entities.SkillHistory,
			entities.SkillInsight,
			entities.SkillIntimidation,
			entities.SkillPerception,
			entities.SkillPersuasion,
			entities.SkillSurvival,
		},
		FightingStyles: fighterStyles,
		PrimaryAbilityChoices: []string{
			entities.AbilityStrength,
			entities.AbilityDexterity,
		},
		ArmorProficiencies: []string{"light", "medium", "heavy", "shields"},
		WeaponProficiencies: []string{
			"simple_melee", "simple_ranged", "martial_melee", "martial_ranged",
		},
		Features: []string{"Fighting Style", "Second Wind", "Weapon Mastery"},
	},
	{
		ID:           entities.ClassRogue,
		Name:         "Rogue",
		HitDie:       8,
		SkillCount:   4,
		StartingGold: 100,
		SkillIDs: []string{
			entities.SkillAcrobatics,
			entities.SkillAthletics,
			entities.SkillDeception,
			entities.SkillInsight,
			entities.SkillIntimidation,
			entities.SkillInvestigation,
			entities.SkillPerception,
			entities.SkillPerformance,
			entities.SkillPersuasion,
			entities.SkillSleightOfHand,
			entities.SkillStealth,
		},
		ExpertiseCount:     2,
		ArmorProficiencies: []string{"light"},
		WeaponProficiencies: []string{
			"simple_melee", "simple_ranged",
			"hand_crossbow", "longsword", "rapier", "shortsword",
		},
		Features: []string{"Expertise", "Sneak Attack", "Thieves' Cant", "Weapon Mastery"},
	},
	{
		ID:           entities.ClassCleric,
		Name:         "Cleric",
		HitDie:       8,
		SkillCount:   2,
		StartingGold: 110,
		SkillIDs: []string{
			entities.SkillHistory,
			entities.SkillInsight,
			entities.SkillMedicine,
			entities.SkillPersuasion,
			entities.SkillReligion,
		},
		CastingAbility:      entities.AbilityWisdom,
		CantripCount:        3,
		SpellCount:          6,
		ArmorProficiencies:  []string{"light", "medium", "shields"},
		WeaponProficiencies: []string{"simple_melee", "simple_ranged"},
		Features:            []string{"Spellcasting", "Divine Order"},
	},
	{
		ID:           entities.ClassWizard,
		Name:         "Wizard",
		HitDie:       6,
		SkillCount:   2,
		StartingGold: 55,
		SkillIDs: []string{
			entities.SkillArcana,
			entities.SkillHistory,
			entities.SkillInvestigation,
			entities.SkillMedicine,
			entities.SkillReligion,
		},
		CastingAbility:     entities.AbilityIntelligence,
		CantripCount:       3,
		SpellCount:         6,
		ArmorProficiencies: []string{},
		WeaponProficiencies: []string{
			"dagger", "dart", "sling", "quarterstaff", "light_crossbow",
		},
		Features: []string{"Spellcasting", "Ritual Adept", "Arcane Recovery"},
	},
}
