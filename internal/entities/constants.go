package entities

// Race identifiers
const (
	RaceHuman    = "human"
	RaceElf      = "elf"
	RaceDwarf    = "dwarf"
	RaceHalfling = "halfling"
)

// Class identifiers
const (
	ClassFighter = "fighter"
	ClassRogue   = "rogue"
	ClassCleric  = "cleric"
	ClassWizard  = "wizard"
)

// Ability identifiers
const (
	AbilityStrength     = "strength"
	AbilityDexterity    = "dexterity"
	AbilityConstitution = "constitution"
	AbilityIntelligence = "intelligence"
	AbilityWisdom       = "wisdom"
	AbilityCharisma     = "charisma"
)

// Skill identifiers
const (
	SkillAcrobatics     = "acrobatics"
	SkillAnimalHandling = "animal_handling"
	SkillArcana         = "arcana"
	SkillAthletics      = "athletics"
	SkillDeception      = "deception"
	SkillHistory        = "history"
	SkillInsight        = "insight"
	SkillIntimidation   = "intimidation"
	SkillInvestigation  = "investigation"
	SkillMedicine       = "medicine"
	SkillNature         = "nature"
	SkillPerception     = "perception"
	SkillPerformance    = "performance"
	SkillPersuasion     = "persuasion"
	SkillReligion       = "religion"
	SkillSleightOfHand  = "sleight_of_hand"
	SkillStealth        = "stealth"
	SkillSurvival       = "survival"
)

// Creation step identifiers, in wizard order
const (
	StepName          = "name"
	StepAbilityScores = "ability_scores"
	StepRace          = "race"
	StepClass         = "class"
	StepSkills        = "skills"
	StepEquipment     = "equipment"
	StepSpells        = "spells"
	StepReview        = "review"
)

// Roll method identifiers accepted by the dice engine
const (
	RollMethodStandard = "standard" // 4d6 drop lowest
	RollMethodArray    = "array"    // fixed 15/14/13/12/10/8
	RollMethodClassic  = "classic"  // 3d6 straight
)

// Equipment slot categories
const (
	EquipmentCategoryWeapon = "weapon"
	EquipmentCategoryArmor  = "armor"
	EquipmentCategoryShield = "shield"
	EquipmentCategoryGear   = "gear"
)

// Armor weight classes, which govern how dexterity applies to AC
const (
	ArmorClassLight  = "light"
	ArmorClassMedium = "medium"
	ArmorClassHeavy  = "heavy"
)
