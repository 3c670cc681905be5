// Package character implements the character creation orchestrator
package character

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/character-builder/internal/dice"
	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
	"github.com/KirkDiggler/character-builder/internal/pkg/clock"
	"github.com/KirkDiggler/character-builder/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/character-builder/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/character-builder/internal/repositories/draft"
	"github.com/KirkDiggler/character-builder/internal/rulebook"
	"github.com/KirkDiggler/character-builder/internal/services/character"
	"github.com/KirkDiggler/character-builder/internal/sheet"
)

// DraftTTLSeconds is how long an untouched draft lives.
const DraftTTLSeconds = 24 * 60 * 60

// Config holds the dependencies for the character orchestrator
type Config struct {
	DraftRepo     draftrepo.Repository
	CharacterRepo characterrepo.Repository
	Rulebook      *rulebook.Rulebook
	Roller        *dice.Roller
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.DraftRepo == nil {
		vb.RequiredField("DraftRepo")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Rulebook == nil {
		vb.RequiredField("Rulebook")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	draftRepo     draftrepo.Repository
	characterRepo characterrepo.Repository
	rulebook      *rulebook.Rulebook
	roller        *dice.Roller
	idGen         idgen.Generator
	clock         clock.Clock
	steps         *stepGraph
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	steps, err := newStepGraph()
	if err != nil {
		return nil, errors.Wrap(err, "failed to build step graph")
	}

	return &Orchestrator{
		draftRepo:     cfg.DraftRepo,
		characterRepo: cfg.CharacterRepo,
		rulebook:      cfg.Rulebook,
		roller:        cfg.Roller,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		steps:         steps,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// Draft lifecycle methods

// CreateDraft creates a new character draft for a player. A player has
// at most one draft; creating another replaces it.
func (o *Orchestrator) CreateDraft(ctx context.Context, input *character.CreateDraftInput) (*character.CreateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("playerID", input.PlayerID, vb)
	errors.ValidateMaxLength("name", input.Name, 100, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	draft := &entities.CharacterDraft{
		ID:        o.idGen.Generate(),
		PlayerID:  input.PlayerID,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now + DraftTTLSeconds,
	}

	if input.Name != "" {
		draft.Name = input.Name
		draft.Progress.SetStep(entities.ProgressStepName, true)
	}
	o.recalculateProgress(draft)

	out, err := o.draftRepo.Create(ctx, draftrepo.CreateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create draft")
	}

	slog.InfoContext(ctx, "draft created",
		"draft_id", draft.ID,
		"player_id", draft.PlayerID,
	)

	return &character.CreateDraftOutput{Draft: out.Draft}, nil
}

// GetDraft retrieves a character draft by ID
func (o *Orchestrator) GetDraft(ctx context.Context, input *character.GetDraftInput) (*character.GetDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	out, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: input.DraftID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get draft").
			WithMeta("draft_id", input.DraftID)
	}

	return &character.GetDraftOutput{Draft: out.Draft}, nil
}

// GetDraftByPlayer retrieves the player's single draft
func (o *Orchestrator) GetDraftByPlayer(ctx context.Context, input *character.GetDraftByPlayerInput) (*character.GetDraftByPlayerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.draftRepo.GetByPlayerID(ctx, draftrepo.GetByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get draft for player").
			WithMeta("player_id", input.PlayerID)
	}

	return &character.GetDraftByPlayerOutput{Draft: out.Draft}, nil
}

// DeleteDraft deletes a character draft
func (o *Orchestrator) DeleteDraft(ctx context.Context, input *character.DeleteDraftInput) (*character.DeleteDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.DraftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}

	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: input.DraftID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete draft")
	}

	return &character.DeleteDraftOutput{
		Message: fmt.Sprintf("Draft %s deleted successfully", input.DraftID),
	}, nil
}

// Completed character methods

// GetCharacter retrieves a finalized character by ID
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character").
			WithMeta("character_id", input.CharacterID)
	}

	return &character.GetCharacterOutput{Character: out.Character}, nil
}

// ListCharacters lists a player's finalized characters
func (o *Orchestrator) ListCharacters(ctx context.Context, input *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := o.characterRepo.ListByPlayerID(ctx, characterrepo.ListByPlayerIDInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter deletes a finalized character
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete character")
	}

	return &character.DeleteCharacterOutput{
		Message: fmt.Sprintf("Character %s deleted successfully", input.CharacterID),
	}, nil
}

// RenderCharacterSheet renders the printable sheet for a character
func (o *Orchestrator) RenderCharacterSheet(ctx context.Context, input *character.RenderCharacterSheetInput) (*character.RenderCharacterSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character").
			WithMeta("character_id", input.CharacterID)
	}

	rendered, err := sheet.Render(out.Character, o.rulebook)
	if err != nil {
		slog.ErrorContext(ctx, "sheet render failed",
			"character_id", input.CharacterID,
			"error", err,
		)
		return nil, errors.Wrap(err, "failed to render character sheet")
	}

	return &character.RenderCharacterSheetOutput{Sheet: rendered}, nil
}

// getDraftForUpdate loads a draft for a section update.
func (o *Orchestrator) getDraftForUpdate(ctx context.Context, draftID string) (*entities.CharacterDraft, error) {
	if draftID == "" {
		return nil, errors.InvalidArgument("draft ID is required")
	}
	out, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: draftID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get draft").
			WithMeta("draft_id", draftID)
	}
	return out.Draft, nil
}

// saveDraft persists a mutated draft and refreshes its timestamps.
func (o *Orchestrator) saveDraft(ctx context.Context, draft *entities.CharacterDraft) (*entities.CharacterDraft, error) {
	draft.UpdatedAt = o.clock.Now().Unix()
	o.recalculateProgress(draft)

	out, err := o.draftRepo.Update(ctx, draftrepo.UpdateInput{Draft: draft})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save draft").
			WithMeta("draft_id", draft.ID)
	}
	return out.Draft, nil
}
