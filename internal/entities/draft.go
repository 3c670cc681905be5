package entities

// ProgressStep represents a creation step as a bitflag.
type ProgressStep uint8

const (
	ProgressStepName ProgressStep = 1 << iota
	ProgressStepAbilityScores
	ProgressStepRace
	ProgressStepClass
	ProgressStepSkills
	ProgressStepEquipment
	ProgressStepSpells
)

// stepFlags maps step identifiers to their progress bits.
var stepFlags = map[string]ProgressStep{
	StepName:          ProgressStepName,
	StepAbilityScores: ProgressStepAbilityScores,
	StepRace:          ProgressStepRace,
	StepClass:         ProgressStepClass,
	StepSkills:        ProgressStepSkills,
	StepEquipment:     ProgressStepEquipment,
	StepSpells:        ProgressStepSpells,
}

// StepFlag returns the progress bit for a step identifier. The review
// step has no bit; it is reached when every required step is complete.
func StepFlag(stepID string) (ProgressStep, bool) {
	f, ok := stepFlags[stepID]
	return f, ok
}

// CreationProgress tracks which creation steps have been completed.
type CreationProgress struct {
	StepsCompleted       uint8  `json:"steps_completed"`
	CompletionPercentage int32  `json:"completion_percentage"`
	CurrentStep          string `json:"current_step"`
}

func (p *CreationProgress) hasStep(step ProgressStep) bool {
	return p.StepsCompleted&uint8(step) != 0
}

func (p *CreationProgress) setStep(step ProgressStep, completed bool) {
	if completed {
		p.StepsCompleted |= uint8(step)
	} else {
		p.StepsCompleted &^= uint8(step)
	}
}

// HasName returns true if the name step is complete.
func (p *CreationProgress) HasName() bool { return p.hasStep(ProgressStepName) }

// HasAbilityScores returns true if ability scores have been assigned.
func (p *CreationProgress) HasAbilityScores() bool { return p.hasStep(ProgressStepAbilityScores) }

// HasRace returns true if a race has been chosen.
func (p *CreationProgress) HasRace() bool { return p.hasStep(ProgressStepRace) }

// HasClass returns true if a class has been chosen.
func (p *CreationProgress) HasClass() bool { return p.hasStep(ProgressStepClass) }

// HasSkills returns true if skill proficiencies have been chosen.
func (p *CreationProgress) HasSkills() bool { return p.hasStep(ProgressStepSkills) }

// HasEquipment returns true if equipment has been purchased.
func (p *CreationProgress) HasEquipment() bool { return p.hasStep(ProgressStepEquipment) }

// HasSpells returns true if spells have been chosen.
func (p *CreationProgress) HasSpells() bool { return p.hasStep(ProgressStepSpells) }

// SetStep marks a step complete or incomplete.
func (p *CreationProgress) SetStep(step ProgressStep, completed bool) {
	p.setStep(step, completed)
}

// HasStep reports whether the given step bit is set.
func (p *CreationProgress) HasStep(step ProgressStep) bool {
	return p.hasStep(step)
}

// EquipmentSelection is one purchased line item on a draft.
type EquipmentSelection struct {
	ItemID   string `json:"item_id"`
	Quantity int32  `json:"quantity"`
}

// CharacterDraft is a character mid-creation. Fields for steps not yet
// completed hold zero values; Progress records which steps are done.
type CharacterDraft struct {
	ID       string `json:"id"`
	PlayerID string `json:"player_id"`

	Name    string `json:"name,omitempty"`
	RaceID  string `json:"race_id,omitempty"`
	ClassID string `json:"class_id,omitempty"`

	// RollMethod and RolledScores record the dice engine output that
	// assignment draws from. RolledScores is the unassigned pool.
	RollMethod   string  `json:"roll_method,omitempty"`
	RolledScores []int32 `json:"rolled_scores,omitempty"`

	// AbilityScores are the assigned base scores, before racial bonuses.
	AbilityScores *AbilityScores `json:"ability_scores,omitempty"`

	SkillIDs          []string             `json:"skill_ids,omitempty"`
	ExpertiseSkillIDs []string             `json:"expertise_skill_ids,omitempty"`
	FightingStyle     string               `json:"fighting_style,omitempty"`
	Equipment         []EquipmentSelection `json:"equipment,omitempty"`
	CantripIDs        []string             `json:"cantrip_ids,omitempty"`
	SpellIDs          []string             `json:"spell_ids,omitempty"`

	Progress CreationProgress `json:"progress"`

	ExpiresAt int64 `json:"expires_at"`
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}
