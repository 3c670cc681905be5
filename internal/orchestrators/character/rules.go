package character

import (
	"context"

	"github.com/KirkDiggler/character-builder/internal/errors"
	"github.com/KirkDiggler/character-builder/internal/rulebook"
	"github.com/KirkDiggler/character-builder/internal/services/character"
)

// Rule data listing methods. Clients use these to present the options
// behind each creation step.

// ListRaces lists all playable races
func (o *Orchestrator) ListRaces(ctx context.Context, input *character.ListRacesInput) (*character.ListRacesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &character.ListRacesOutput{Races: o.rulebook.Races()}, nil
}

// ListClasses lists all playable classes
func (o *Orchestrator) ListClasses(ctx context.Context, input *character.ListClassesInput) (*character.ListClassesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &character.ListClassesOutput{Classes: o.rulebook.Classes()}, nil
}

// ListSkills lists all skills
func (o *Orchestrator) ListSkills(ctx context.Context, input *character.ListSkillsInput) (*character.ListSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &character.ListSkillsOutput{Skills: o.rulebook.Skills()}, nil
}

// ListEquipment lists the purchasable equipment catalog
func (o *Orchestrator) ListEquipment(ctx context.Context, input *character.ListEquipmentInput) (*character.ListEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return &character.ListEquipmentOutput{Items: o.rulebook.Items()}, nil
}

// ListClassSpells lists the spell options for a class. Non-caster
// classes get an empty list.
func (o *Orchestrator) ListClassSpells(ctx context.Context, input *character.ListClassSpellsInput) (*character.ListClassSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ClassID == "" {
		return nil, errors.InvalidArgument("class ID is required")
	}

	if _, err := o.rulebook.Class(input.ClassID); err != nil {
		return nil, err
	}

	spells := o.rulebook.ClassSpells(input.ClassID)
	if spells == nil {
		spells = []*rulebook.Spell{}
	}
	return &character.ListClassSpellsOutput{Spells: spells}, nil
}
