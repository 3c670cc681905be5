package entities

// AbilityScores holds the six core ability scores for a character.
// A nil *AbilityScores on a draft means the scores have not been
// assigned yet.
type AbilityScores struct {
	Strength     int32 `json:"strength"`
	Dexterity    int32 `json:"dexterity"`
	Constitution int32 `json:"constitution"`
	Intelligence int32 `json:"intelligence"`
	Wisdom       int32 `json:"wisdom"`
	Charisma     int32 `json:"charisma"`
}

// Get returns the score for the named ability, or 0 if the name is
// not one of the six ability identifiers.
func (a *AbilityScores) Get(ability string) int32 {
	if a == nil {
		return 0
	}
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 0
	}
}

// Set assigns the score for the named ability. Unknown names are ignored.
func (a *AbilityScores) Set(ability string, score int32) {
	switch ability {
	case AbilityStrength:
		a.Strength = score
	case AbilityDexterity:
		a.Dexterity = score
	case AbilityConstitution:
		a.Constitution = score
	case AbilityIntelligence:
		a.Intelligence = score
	case AbilityWisdom:
		a.Wisdom = score
	case AbilityCharisma:
		a.Charisma = score
	}
}

// Values returns the six scores in canonical ability order.
func (a *AbilityScores) Values() []int32 {
	return []int32{a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma}
}

// AbilityOrder lists the six abilities in canonical display order.
var AbilityOrder = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// AbilityModifier returns the modifier for a score, rounding toward
// negative infinity so that a score of 9 yields -1, not 0.
func AbilityModifier(score int32) int32 {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}
