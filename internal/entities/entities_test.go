package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/character-builder/internal/entities"
)

func TestAbilityModifier(t *testing.T) {
	cases := map[int32]int32{
		1:  -5,
		7:  -2,
		8:  -1,
		9:  -1,
		10: 0,
		11: 0,
		12: 1,
		15: 2,
		18: 4,
		20: 5,
	}
	for score, want := range cases {
		assert.Equal(t, want, entities.AbilityModifier(score), "score %d", score)
	}
}

func TestAbilityScoresGetSet(t *testing.T) {
	scores := &entities.AbilityScores{}
	scores.Set(entities.AbilityDexterity, 14)
	scores.Set(entities.AbilityWisdom, 12)

	assert.Equal(t, int32(14), scores.Get(entities.AbilityDexterity))
	assert.Equal(t, int32(12), scores.Get(entities.AbilityWisdom))
	assert.Equal(t, int32(0), scores.Get("luck"))

	var nilScores *entities.AbilityScores
	assert.Equal(t, int32(0), nilScores.Get(entities.AbilityStrength))
}

func TestCoinsConversion(t *testing.T) {
	c := entities.CoinsFromCopper(1234)
	assert.Equal(t, entities.Coins{Gold: 12, Silver: 3, Copper: 4}, c)
	assert.Equal(t, int64(1234), c.TotalCopper())

	assert.Equal(t, entities.Coins{}, entities.CoinsFromCopper(-5))
	assert.Equal(t, int64(15500), entities.GoldCoins(155).TotalCopper())
}

func TestCoinsString(t *testing.T) {
	assert.Equal(t, "0 cp", entities.Coins{}.String())
	assert.Equal(t, "2 gp, 5 sp", entities.Coins{Gold: 2, Silver: 5}.String())
	assert.Equal(t, "1 pp, 1 cp", entities.Coins{Platinum: 1, Copper: 1}.String())
}

func TestCreationProgressSteps(t *testing.T) {
	p := &entities.CreationProgress{}
	assert.False(t, p.HasAbilityScores())

	p.SetStep(entities.ProgressStepAbilityScores, true)
	p.SetStep(entities.ProgressStepRace, true)
	assert.True(t, p.HasAbilityScores())
	assert.True(t, p.HasRace())
	assert.False(t, p.HasClass())

	p.SetStep(entities.ProgressStepRace, false)
	assert.False(t, p.HasRace())
	assert.True(t, p.HasAbilityScores())
}

func TestCharacterSkillModifier(t *testing.T) {
	ch := &entities.Character{
		Abilities:         entities.AbilityScores{Dexterity: 16, Wisdom: 10},
		SkillIDs:          []string{entities.SkillStealth, entities.SkillAcrobatics},
		ExpertiseSkillIDs: []string{entities.SkillStealth},
		ProficiencyBonus:  2,
	}

	assert.Equal(t, int32(7), ch.SkillModifier(entities.SkillStealth, entities.AbilityDexterity))
	assert.Equal(t, int32(5), ch.SkillModifier(entities.SkillAcrobatics, entities.AbilityDexterity))
	assert.Equal(t, int32(0), ch.SkillModifier(entities.SkillInsight, entities.AbilityWisdom))
}
