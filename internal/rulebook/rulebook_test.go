package rulebook_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
	"github.com/KirkDiggler/character-builder/internal/rulebook"
)

type RulebookTestSuite struct {
	suite.Suite
	rb *rulebook.Rulebook
}

func (s *RulebookTestSuite) SetupTest() {
	s.rb = rulebook.New()
}

func (s *RulebookTestSuite) TestRaceLookup() {
	s.Run("known race", func() {
		race, err := s.rb.Race(entities.RaceDwarf)
		s.NoError(err)
		s.Equal("Dwarf", race.Name)
		s.Equal(int32(25), race.Speed)
		s.Equal(int32(2), race.AbilityBonuses[entities.AbilityConstitution])
		s.Equal(int32(1), race.AbilityBonuses[entities.AbilityStrength])
	})

	s.Run("human has no bonuses", func() {
		race, err := s.rb.Race(entities.RaceHuman)
		s.NoError(err)
		s.Empty(race.AbilityBonuses)
		s.Equal(int32(30), race.Speed)
	})

	s.Run("unknown race", func() {
		_, err := s.rb.Race("gnome")
		s.Error(err)
		s.True(errors.IsNotFound(err))
	})
}

func (s *RulebookTestSuite) TestClassLookup() {
	s.Run("fighter", func() {
		class, err := s.rb.Class(entities.ClassFighter)
		s.NoError(err)
		s.Equal(int32(10), class.HitDie)
		s.Equal(int32(2), class.SkillCount)
		s.Equal(int32(155), class.StartingGold)
		s.False(class.IsCaster())
		s.NotEmpty(class.FightingStyles)
		s.Len(class.SkillIDs, 9)
	})

	s.Run("rogue", func() {
		class, err := s.rb.Class(entities.ClassRogue)
		s.NoError(err)
		s.Equal(int32(4), class.SkillCount)
		s.Equal(int32(2), class.ExpertiseCount)
		s.Len(class.SkillIDs, 11)
	})

	s.Run("casters", func() {
		cleric, err := s.rb.Class(entities.ClassCleric)
		s.NoError(err)
		s.Equal(entities.AbilityWisdom, cleric.CastingAbility)
		s.Equal(int32(3), cleric.CantripCount)
		s.Equal(int32(6), cleric.SpellCount)

		wizard, err := s.rb.Class(entities.ClassWizard)
		s.NoError(err)
		s.Equal(entities.AbilityIntelligence, wizard.CastingAbility)
		s.Equal(int32(6), wizard.HitDie)
		s.Equal(int32(55), wizard.StartingGold)
	})

	s.Run("unknown class", func() {
		_, err := s.rb.Class("bard")
		s.True(errors.IsNotFound(err))
	})
}

func (s *RulebookTestSuite) TestSkillTable() {
	s.Len(s.rb.Skills(), 18)

	stealth, err := s.rb.Skill(entities.SkillStealth)
	s.NoError(err)
	s.Equal(entities.AbilityDexterity, stealth.Ability)

	perception, err := s.rb.Skill(entities.SkillPerception)
	s.NoError(err)
	s.Equal(entities.AbilityWisdom, perception.Ability)

	_, err = s.rb.Skill("basket_weaving")
	s.True(errors.IsNotFound(err))
}

func (s *RulebookTestSuite) TestClassSkillsAreRealSkills() {
	for _, class := range s.rb.Classes() {
		for _, skillID := range class.SkillIDs {
			_, err := s.rb.Skill(skillID)
			s.NoError(err, "class %s lists unknown skill %s", class.ID, skillID)
		}
	}
}

func (s *RulebookTestSuite) TestItemCatalog() {
	s.Run("weapon", func() {
		longsword, err := s.rb.Item("longsword")
		s.NoError(err)
		s.Equal(entities.EquipmentCategoryWeapon, longsword.Category)
		s.Equal("martial_melee", longsword.WeaponCategory)
		s.Equal(int64(1500), longsword.CostCopper)
		s.Equal("1d10", longsword.VersatileDamage)
	})

	s.Run("light armor keeps full dex", func() {
		leather, err := s.rb.Item("leather")
		s.NoError(err)
		s.Equal(int32(11), leather.BaseAC)
		s.Equal(int32(-1), leather.MaxDexBonus)
	})

	s.Run("medium armor caps dex at two", func() {
		chainShirt, err := s.rb.Item("chain_shirt")
		s.NoError(err)
		s.Equal(int32(13), chainShirt.BaseAC)
		s.Equal(int32(2), chainShirt.MaxDexBonus)
	})

	s.Run("heavy armor ignores dex", func() {
		plate, err := s.rb.Item("plate")
		s.NoError(err)
		s.Equal(int32(18), plate.BaseAC)
		s.Equal(int32(0), plate.MaxDexBonus)
		s.Equal(int32(15), plate.StrengthRequirement)
	})

	s.Run("shield", func() {
		shield, err := s.rb.Item("shield")
		s.NoError(err)
		s.Equal(entities.EquipmentCategoryShield, shield.Category)
		s.Equal(int32(2), shield.ACBonus)
	})

	s.Run("gear priced in copper", func() {
		torch, err := s.rb.Item("torch")
		s.NoError(err)
		s.Equal(int64(1), torch.CostCopper)

		rations, err := s.rb.Item("rations")
		s.NoError(err)
		s.Equal(int64(50), rations.CostCopper)
	})

	s.Run("unknown item", func() {
		_, err := s.rb.Item("vorpal_sword")
		s.True(errors.IsNotFound(err))
	})
}

func (s *RulebookTestSuite) TestSpellLists() {
	s.Run("wizard list", func() {
		spells := s.rb.ClassSpells(entities.ClassWizard)
		s.NotEmpty(spells)

		var cantrips, level1 int
		for _, sp := range spells {
			switch sp.Level {
			case 0:
				cantrips++
			case 1:
				level1++
			}
		}
		s.Equal(20, cantrips)
		s.Equal(31, level1)
	})

	s.Run("cleric list", func() {
		spells := s.rb.ClassSpells(entities.ClassCleric)
		var cantrips, level1 int
		for _, sp := range spells {
			switch sp.Level {
			case 0:
				cantrips++
			case 1:
				level1++
			}
		}
		s.Equal(9, cantrips)
		s.Equal(15, level1)
	})

	s.Run("lookup by class", func() {
		fireBolt, ok := s.rb.ClassSpell(entities.ClassWizard, "fire_bolt")
		s.True(ok)
		s.Equal(int32(0), fireBolt.Level)

		_, ok = s.rb.ClassSpell(entities.ClassCleric, "fire_bolt")
		s.False(ok)

		s.Empty(s.rb.ClassSpells(entities.ClassFighter))
	})
}

func (s *RulebookTestSuite) TestProficiencies() {
	fighter, _ := s.rb.Class(entities.ClassFighter)
	rogue, _ := s.rb.Class(entities.ClassRogue)
	wizard, _ := s.rb.Class(entities.ClassWizard)
	cleric, _ := s.rb.Class(entities.ClassCleric)

	s.Run("armor", func() {
		s.True(s.rb.HasArmorProficiency(fighter, entities.ArmorClassHeavy))
		s.True(s.rb.HasArmorProficiency(cleric, entities.ArmorClassMedium))
		s.False(s.rb.HasArmorProficiency(cleric, entities.ArmorClassHeavy))
		s.False(s.rb.HasArmorProficiency(rogue, entities.ArmorClassMedium))
		s.False(s.rb.HasArmorProficiency(wizard, entities.ArmorClassLight))
		s.True(s.rb.HasArmorProficiency(fighter, entities.EquipmentCategoryShield))
		s.False(s.rb.HasArmorProficiency(rogue, entities.EquipmentCategoryShield))
	})

	s.Run("weapons", func() {
		greatsword, _ := s.rb.Item("greatsword")
		rapier, _ := s.rb.Item("rapier")
		dagger, _ := s.rb.Item("dagger")

		s.True(s.rb.HasWeaponProficiency(fighter, greatsword))
		s.False(s.rb.HasWeaponProficiency(rogue, greatsword))
		s.True(s.rb.HasWeaponProficiency(rogue, rapier))
		s.True(s.rb.HasWeaponProficiency(wizard, dagger))
		s.False(s.rb.HasWeaponProficiency(wizard, rapier))
		s.True(s.rb.HasWeaponProficiency(cleric, dagger))
	})
}

func (s *RulebookTestSuite) TestStandardArray() {
	arr := rulebook.StandardArray()
	s.Equal([]int32{15, 14, 13, 12, 10, 8}, arr)

	// Mutating the returned slice must not affect later calls.
	arr[0] = 3
	s.Equal(int32(15), rulebook.StandardArray()[0])
}

func TestRulebookTestSuite(t *testing.T) {
	suite.Run(t, new(RulebookTestSuite))
}
