package sheet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
	"github.com/KirkDiggler/character-builder/internal/rulebook"
	"github.com/KirkDiggler/character-builder/internal/sheet"
)

func testFighter() *entities.Character {
	return &entities.Character{
		ID:       "char_1",
		PlayerID: "player_1",
		Name:     "Borin Stonefist",
		Level:    1,
		RaceID:   entities.RaceDwarf,
		ClassID:  entities.ClassFighter,
		BaseAbilities: entities.AbilityScores{
			Strength: 15, Dexterity: 13, Constitution: 14,
			Intelligence: 10, Wisdom: 12, Charisma: 8,
		},
		Abilities: entities.AbilityScores{
			Strength: 16, Dexterity: 13, Constitution: 16,
			Intelligence: 10, Wisdom: 12, Charisma: 8,
		},
		SkillIDs:      []string{entities.SkillAthletics, entities.SkillPerception},
		FightingStyle: "defense",
		Equipment: []entities.EquipmentSelection{
			{ItemID: "chain_mail", Quantity: 1},
			{ItemID: "longsword", Quantity: 1},
			{ItemID: "shield", Quantity: 1},
		},
		MaxHP:             13,
		CurrentHP:         13,
		ArmorClass:        18,
		Initiative:        1,
		Speed:             25,
		ProficiencyBonus:  2,
		PassivePerception: 13,
		CoinsRemaining:    entities.Coins{Gold: 64},
	}
}

func testWizard() *entities.Character {
	return &entities.Character{
		ID:       "char_2",
		PlayerID: "player_1",
		Name:     "Mira Thorngage",
		Level:    1,
		RaceID:   entities.RaceElf,
		ClassID:  entities.ClassWizard,
		BaseAbilities: entities.AbilityScores{
			Strength: 8, Dexterity: 13, Constitution: 12,
			Intelligence: 15, Wisdom: 14, Charisma: 10,
		},
		Abilities: entities.AbilityScores{
			Strength: 8, Dexterity: 15, Constitution: 12,
			Intelligence: 15, Wisdom: 14, Charisma: 11,
		},
		SkillIDs: []string{entities.SkillArcana, entities.SkillInvestigation},
		Equipment: []entities.EquipmentSelection{
			{ItemID: "quarterstaff", Quantity: 1},
			{ItemID: "spellbook", Quantity: 1},
		},
		CantripIDs:        []string{"fire_bolt", "mage_hand", "light"},
		SpellIDs:          []string{"magic_missile", "shield", "mage_armor", "sleep", "detect_magic", "identify"},
		MaxHP:             7,
		CurrentHP:         7,
		ArmorClass:        12,
		Initiative:        2,
		Speed:             30,
		ProficiencyBonus:  2,
		PassivePerception: 12,
		SpellSaveDC:       12,
		SpellAttackBonus:  4,
		CoinsRemaining:    entities.Coins{Gold: 4, Silver: 8},
	}
}

func TestRenderDeterministic(t *testing.T) {
	rb := rulebook.New()
	char := testFighter()

	first, err := sheet.Render(char, rb)
	require.NoError(t, err)
	second, err := sheet.Render(char, rb)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestRenderFighter(t *testing.T) {
	rb := rulebook.New()

	rendered, err := sheet.Render(testFighter(), rb)
	require.NoError(t, err)
	out := string(rendered)

	assert.Contains(t, out, "BORIN STONEFIST")
	assert.Contains(t, out, "Level 1 Dwarf Fighter")
	assert.Contains(t, out, "Armor Class        18")
	assert.Contains(t, out, "Hit Points         13 / 13 (hit die d10)")
	assert.Contains(t, out, "Speed              25 ft.")
	assert.Contains(t, out, "Fighting Style     Defense")
	assert.Contains(t, out, "[*] Athletics")
	assert.Contains(t, out, "Chain Mail")
	assert.Contains(t, out, "Coins remaining:          64 gp")
	assert.NotContains(t, out, "SPELLCASTING")
}

func TestRenderWizardSpellBlock(t *testing.T) {
	rb := rulebook.New()

	rendered, err := sheet.Render(testWizard(), rb)
	require.NoError(t, err)
	out := string(rendered)

	assert.Contains(t, out, "SPELLCASTING")
	assert.Contains(t, out, "Ability       Intelligence")
	assert.Contains(t, out, "Save DC       12")
	assert.Contains(t, out, "Attack Bonus  +4")
	assert.Contains(t, out, "- Fire Bolt")
	assert.Contains(t, out, "- Magic Missile")
}

func TestRenderNilCharacter(t *testing.T) {
	_, err := sheet.Render(nil, rulebook.New())
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
}

func TestRenderUnknownReferences(t *testing.T) {
	rb := rulebook.New()

	char := testFighter()
	char.RaceID = "gnome"
	_, err := sheet.Render(char, rb)
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))

	char = testFighter()
	char.Equipment = append(char.Equipment, entities.EquipmentSelection{ItemID: "vorpal_sword", Quantity: 1})
	_, err = sheet.Render(char, rb)
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
}
