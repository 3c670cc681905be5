package rulebook

import "github.com/KirkDiggler/character-builder/internal/entities"

var skillTable = []*Skill{
	{
		ID:          entities.SkillAcrobatics,
		Name:        "Acrobatics",
		Ability:     entities.AbilityDexterity,
		Description: "Stay on your feet in a tricky situation, including maintaining balance, tumbling, and stunts.",
	},
	{
		ID:          entities.SkillAnimalHandling,
		Name:        "Animal Handling",
		Ability:     entities.AbilityWisdom,
		Description: "Calm down a domesticated animal, keep a mount from getting spooked, or intuit an animal's intentions.",
	},
	{
		ID:          entities.SkillArcana,
		Name:        "Arcana",
		Ability:     entities.AbilityIntelligence,
		Description: "Recall knowledge about spells, magic items, eldritch symbols, magical traditions, and the planes of existence.",
	},
	{
		ID:          entities.SkillAthletics,
		Name:        "Athletics",
		Ability:     entities.AbilityStrength,
		Description: "Handle difficult situations encountered while climbing, jumping, or swimming.",
	},
	{
		ID:          entities.SkillDeception,
		Name:        "Deception",
		Ability:     entities.AbilityCharisma,
		Description: "Convincingly hide the truth, either verbally or through your actions.",
	},
	{
		ID:          entities.SkillHistory,
		Name:        "History",
		Ability:     entities.AbilityIntelligence,
		Description: "Recall lore about historical events, legendary people, ancient kingdoms, and lost civilizations.",
	},
	{
		ID:          entities.SkillInsight,
		Name:        "Insight",
		Ability:     entities.AbilityWisdom,
		Description: "Determine the true intentions of a creature, such as when searching out a lie.",
	},
	{
		ID:          entities.SkillIntimidation,
		Name:        "Intimidation",
		Ability:     entities.AbilityCharisma,
		Description: "Influence others through overt threats, hostile actions, and physical violence.",
	},
	{
		ID:          entities.SkillInvestigation,
		Name:        "Investigation",
		Ability:     entities.AbilityIntelligence,
		Description: "Look around for clues and make deductions based on those clues.",
	},
	{
		ID:          entities.SkillMedicine,
		Name:        "Medicine",
		Ability:     entities.AbilityWisdom,
		Description: "Stabilize a dying companion or diagnose an illness.",
	},
	{
		ID:          entities.SkillNature,
		Name:        "Nature",
		Ability:     entities.AbilityIntelligence,
		Description: "Recall lore about terrain, plants and animals, the weather, and natural cycles.",
	},
	{
		ID:          entities.SkillPerception,
		Name:        "Perception",
		Ability:     entities.AbilityWisdom,
		Description: "Spot, hear, or otherwise detect the presence of something.",
	},
	{
		ID:          entities.SkillPerformance,
		Name:        "Performance",
		Ability:     entities.AbilityCharisma,
		Description: "Delight an audience with music, dance, acting, storytelling, or another form of entertainment.",
	},
	{
		ID:          entities.SkillPersuasion,
		Name:        "Persuasion",
		Ability:     entities.AbilityCharisma,
		Description: "Influence someone or a group with tact, social graces, or good nature.",
	},
	{
		ID:          entities.SkillReligion,
		Name:        "Religion",
		Ability:     entities.AbilityIntelligence,
		Description: "Recall lore about deities, rites and prayers, religious hierarchies, and holy symbols.",
	},
	{
		ID:          entities.SkillSleightOfHand,
		Name:        "Sleight of Hand",
		Ability:     entities.AbilityDexterity,
		Description: "Perform manual trickery, such as planting something on someone or concealing an object.",
	},
	{
		ID:          entities.SkillStealth,
		Name:        "Stealth",
		Ability:     entities.AbilityDexterity,
		Description: "Conceal yourself from enemies, slink past guards, or sneak up on someone unseen and unheard.",
	},
	{
		ID:          entities.SkillSurvival,
		Name:        "Survival",
		Ability:     entities.AbilityWisdom,
		Description: "Follow tracks, hunt wild game, guide your group through the wilds, or predict the weather.",
	},
}
