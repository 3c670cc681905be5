package rulebook

import "github.com/KirkDiggler/character-builder/internal/entities"

var raceTable = []*Race{
	{
		ID:   entities.RaceHuman,
		Name: "Human",
		// Humans take no fixed ability bonuses in this ruleset.
		AbilityBonuses: map[string]int32{},
		Speed:          30,
	},
	{
		ID:   entities.RaceElf,
		Name: "Elf",
		AbilityBonuses: map[string]int32{
			entities.AbilityDexterity: 2,
			entities.AbilityCharisma:  1,
		},
		Speed: 30,
	},
	{
		ID:   entities.RaceDwarf,
		Name: "Dwarf",
		AbilityBonuses: map[string]int32{
			entities.AbilityConstitution: 2,
			entities.AbilityStrength:     1,
		},
		Speed: 25,
	},
	{
		ID:   entities.RaceHalfling,
		Name: "Halfling",
		AbilityBonuses: map[string]int32{
			entities.AbilityDexterity:    2,
			entities.AbilityConstitution: 1,
		},
		Speed: 25,
	},
}
