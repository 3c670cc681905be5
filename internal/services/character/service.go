// Package character defines the interface for character creation operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/character-builder/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/rulebook"
)

// Service defines the interface for character creation operations
type Service interface {
	// Draft lifecycle
	CreateDraft(ctx context.Context, input *CreateDraftInput) (*CreateDraftOutput, error)
	GetDraft(ctx context.Context, input *GetDraftInput) (*GetDraftOutput, error)
	GetDraftByPlayer(ctx context.Context, input *GetDraftByPlayerInput) (*GetDraftByPlayerOutput, error)
	DeleteDraft(ctx context.Context, input *DeleteDraftInput) (*DeleteDraftOutput, error)

	// Dice
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)

	// Section-based updates, one per wizard step
	UpdateName(ctx context.Context, input *UpdateNameInput) (*UpdateNameOutput, error)
	UpdateAbilityScores(ctx context.Context, input *UpdateAbilityScoresInput) (*UpdateAbilityScoresOutput, error)
	UpdateRace(ctx context.Context, input *UpdateRaceInput) (*UpdateRaceOutput, error)
	UpdateClass(ctx context.Context, input *UpdateClassInput) (*UpdateClassOutput, error)
	UpdateSkills(ctx context.Context, input *UpdateSkillsInput) (*UpdateSkillsOutput, error)
	UpdateEquipment(ctx context.Context, input *UpdateEquipmentInput) (*UpdateEquipmentOutput, error)
	UpdateSpells(ctx context.Context, input *UpdateSpellsInput) (*UpdateSpellsOutput, error)

	// Validation
	ValidateDraft(ctx context.Context, input *ValidateDraftInput) (*ValidateDraftOutput, error)

	// Character finalization
	FinalizeDraft(ctx context.Context, input *FinalizeDraftInput) (*FinalizeDraftOutput, error)

	// Rule data listings, for clients presenting creation choices
	ListRaces(ctx context.Context, input *ListRacesInput) (*ListRacesOutput, error)
	ListClasses(ctx context.Context, input *ListClassesInput) (*ListClassesOutput, error)
	ListSkills(ctx context.Context, input *ListSkillsInput) (*ListSkillsOutput, error)
	ListEquipment(ctx context.Context, input *ListEquipmentInput) (*ListEquipmentOutput, error)
	ListClassSpells(ctx context.Context, input *ListClassSpellsInput) (*ListClassSpellsOutput, error)

	// Completed character operations
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	RenderCharacterSheet(ctx context.Context, input *RenderCharacterSheetInput) (*RenderCharacterSheetOutput, error)
}

// Draft lifecycle types

// CreateDraftInput defines the request for creating a draft
type CreateDraftInput struct {
	PlayerID string
	Name     string // Optional; completes the name step when set
}

// CreateDraftOutput defines the response for creating a draft
type CreateDraftOutput struct {
	Draft *entities.CharacterDraft
}

// GetDraftInput defines the request for getting a draft
type GetDraftInput struct {
	DraftID string
}

// GetDraftOutput defines the response for getting a draft
type GetDraftOutput struct {
	Draft *entities.CharacterDraft
}

// GetDraftByPlayerInput defines the request for getting a player's draft
type GetDraftByPlayerInput struct {
	PlayerID string
}

// GetDraftByPlayerOutput defines the response for getting a player's draft
type GetDraftByPlayerOutput struct {
	Draft *entities.CharacterDraft
}

// DeleteDraftInput defines the request for deleting a draft
type DeleteDraftInput struct {
	DraftID string
}

// DeleteDraftOutput defines the response for deleting a draft
type DeleteDraftOutput struct {
	Message string
}

// Dice types

// RollAbilityScoresInput defines the request for rolling ability scores
type RollAbilityScoresInput struct {
	DraftID string
	Method  string
}

// RollAbilityScoresOutput returns the rolled pool awaiting assignment
type RollAbilityScoresOutput struct {
	Draft  *entities.CharacterDraft
	Scores []int32
}

// Section update types

// UpdateNameInput defines the request for setting the character name
type UpdateNameInput struct {
	DraftID string
	Name    string
}

// UpdateNameOutput defines the response for setting the character name
type UpdateNameOutput struct {
	Draft *entities.CharacterDraft
}

// UpdateAbilityScoresInput assigns rolled values to abilities. Every
// ability must be assigned and the multiset of assigned values must
// match the rolled pool exactly.
type UpdateAbilityScoresInput struct {
	DraftID     string
	Assignments map[string]int32
}

// UpdateAbilityScoresOutput defines the response for assigning scores
type UpdateAbilityScoresOutput struct {
	Draft *entities.CharacterDraft
}

// UpdateRaceInput defines the request for choosing a race
type UpdateRaceInput struct {
	DraftID string
	RaceID  string
}

// UpdateRaceOutput defines the response for choosing a race
type UpdateRaceOutput struct {
	Draft *entities.CharacterDraft
}

// UpdateClassInput defines the request for choosing a class.
// FightingStyle applies only to classes that offer one.
type UpdateClassInput struct {
	DraftID       string
	ClassID       string
	FightingStyle string
}

// UpdateClassOutput defines the response for choosing a class
type UpdateClassOutput struct {
	Draft *entities.CharacterDraft
}

// UpdateSkillsInput defines the request for choosing skill
// proficiencies. ExpertiseSkillIDs applies only to classes that grant
// expertise and must be a subset of SkillIDs.
type UpdateSkillsInput struct {
	DraftID           string
	SkillIDs          []string
	ExpertiseSkillIDs []string
}

// UpdateSkillsOutput defines the response for choosing skills
type UpdateSkillsOutput struct {
	Draft *entities.CharacterDraft
}

// UpdateEquipmentInput defines the request for purchasing equipment
// against the class starting gold budget.
type UpdateEquipmentInput struct {
	DraftID    string
	Selections []entities.EquipmentSelection
}

// UpdateEquipmentOutput defines the response for purchasing equipment.
// Warnings lists legal-but-unproficient purchases; they never fail the
// step.
type UpdateEquipmentOutput struct {
	Draft          *entities.CharacterDraft
	Warnings       []string
	RemainingCoins entities.Coins
}

// UpdateSpellsInput defines the request for choosing spells
type UpdateSpellsInput struct {
	DraftID    string
	CantripIDs []string
	SpellIDs   []string
}

// UpdateSpellsOutput defines the response for choosing spells
type UpdateSpellsOutput struct {
	Draft *entities.CharacterDraft
}

// Validation types

// ValidateDraftInput defines the request for validating a draft
type ValidateDraftInput struct {
	DraftID string
}

// StepStatus reports one step's completeness
type StepStatus struct {
	Step     string
	Complete bool
	Required bool
}

// ValidateDraftOutput reports per-step completeness and whether the
// draft can be finalized.
type ValidateDraftOutput struct {
	Draft       *entities.CharacterDraft
	Steps       []StepStatus
	CanFinalize bool
	MissingStep string // First incomplete required step, if any
}

// Finalization types

// FinalizeDraftInput defines the request for finalizing a draft
type FinalizeDraftInput struct {
	DraftID string
}

// FinalizeDraftOutput defines the response for finalizing a draft
type FinalizeDraftOutput struct {
	Character *entities.Character
}

// Rule data listing types

// ListRacesInput defines the request for listing playable races
type ListRacesInput struct{}

// ListRacesOutput returns all races sorted by ID
type ListRacesOutput struct {
	Races []*rulebook.Race
}

// ListClassesInput defines the request for listing playable classes
type ListClassesInput struct{}

// ListClassesOutput returns all classes sorted by ID
type ListClassesOutput struct {
	Classes []*rulebook.Class
}

// ListSkillsInput defines the request for listing skills
type ListSkillsInput struct{}

// ListSkillsOutput returns all skills sorted by ID
type ListSkillsOutput struct {
	Skills []*rulebook.Skill
}

// ListEquipmentInput defines the request for listing the equipment
// catalog
type ListEquipmentInput struct{}

// ListEquipmentOutput returns the full catalog sorted by ID
type ListEquipmentOutput struct {
	Items []*rulebook.Item
}

// ListClassSpellsInput defines the request for listing a class's spell
// options
type ListClassSpellsInput struct {
	ClassID string
}

// ListClassSpellsOutput returns the class spell list, cantrips
// included. Non-caster classes get an empty list.
type ListClassSpellsOutput struct {
	Spells []*rulebook.Spell
}

// Completed character types

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	PlayerID string
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	Message string
}

// RenderCharacterSheetInput defines the request for rendering a sheet
type RenderCharacterSheetInput struct {
	CharacterID string
}

// RenderCharacterSheetOutput carries the rendered printable sheet
type RenderCharacterSheetOutput struct {
	Sheet []byte
}
