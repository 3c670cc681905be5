package character

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
	"github.com/KirkDiggler/character-builder/internal/rulebook"
	"github.com/KirkDiggler/character-builder/internal/services/character"
)

// RollAbilityScores rolls a fresh score pool onto the draft. Rolling
// revisits the ability step, so any assigned scores and everything
// downstream of them are invalidated.
func (o *Orchestrator) RollAbilityScores(ctx context.Context, input *character.RollAbilityScoresInput) (*character.RollAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraftForUpdate(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	scores, err := o.roller.RollAbilityScores(input.Method)
	if err != nil {
		return nil, err
	}

	if err := o.invalidateDependents(draft, entities.StepAbilityScores); err != nil {
		return nil, err
	}
	draft.AbilityScores = nil
	draft.Progress.SetStep(entities.ProgressStepAbilityScores, false)
	draft.RollMethod = input.Method
	draft.RolledScores = scores

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "ability scores rolled",
		"draft_id", draft.ID,
		"method", input.Method,
	)

	return &character.RollAbilityScoresOutput{Draft: saved, Scores: scores}, nil
}

// UpdateName sets the character's name
func (o *Orchestrator) UpdateName(ctx context.Context, input *character.UpdateNameInput) (*character.UpdateNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, 100, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	draft, err := o.getDraftForUpdate(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	draft.Name = input.Name
	draft.Progress.SetStep(entities.ProgressStepName, true)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateNameOutput{Draft: saved}, nil
}

// UpdateAbilityScores assigns the rolled pool to abilities. The
// assignment must cover all six abilities and consume the rolled
// values exactly.
func (o *Orchestrator) UpdateAbilityScores(ctx context.Context, input *character.UpdateAbilityScoresInput) (*character.UpdateAbilityScoresOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraftForUpdate(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if len(draft.RolledScores) == 0 {
		return nil, errors.FailedPrecondition("no rolled scores to assign; roll ability scores first")
	}

	scores, err := applyAssignments(draft.RolledScores, input.Assignments)
	if err != nil {
		return nil, err
	}

	if err := o.invalidateDependents(draft, entities.StepAbilityScores); err != nil {
		return nil, err
	}
	draft.AbilityScores = scores
	draft.Progress.SetStep(entities.ProgressStepAbilityScores, true)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateAbilityScoresOutput{Draft: saved}, nil
}

// applyAssignments validates an ability assignment against the rolled
// pool and returns the resulting scores.
func applyAssignments(pool []int32, assignments map[string]int32) (*entities.AbilityScores, error) {
	if len(assignments) != len(entities.AbilityOrder) {
		return nil, errors.InvalidArgument("incomplete assignment")
	}

	// The multiset of assigned values must match the pool exactly.
	remaining := make(map[int32]int, len(pool))
	for _, v := range pool {
		remaining[v]++
	}

	scores := &entities.AbilityScores{}
	for _, ability := range entities.AbilityOrder {
		value, ok := assignments[ability]
		if !ok {
			return nil, errors.InvalidArgument("incomplete assignment")
		}
		if remaining[value] == 0 {
			return nil, errors.InvalidArgumentf("incomplete assignment: value %d not available in rolled pool", value)
		}
		remaining[value]--
		scores.Set(ability, value)
	}

	return scores, nil
}

// UpdateRace chooses a race. Revisiting invalidates everything
// downstream of the race step.
func (o *Orchestrator) UpdateRace(ctx context.Context, input *character.UpdateRaceInput) (*character.UpdateRaceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraftForUpdate(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if _, err := o.rulebook.Race(input.RaceID); err != nil {
		return nil, err
	}

	if err := o.invalidateDependents(draft, entities.StepRace); err != nil {
		return nil, err
	}
	draft.RaceID = input.RaceID
	draft.Progress.SetStep(entities.ProgressStepRace, true)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateRaceOutput{Draft: saved}, nil
}

// UpdateClass chooses a class and, for classes that offer one, a
// fighting style. Revisiting invalidates skills, equipment, and
// spells.
func (o *Orchestrator) UpdateClass(ctx context.Context, input *character.UpdateClassInput) (*character.UpdateClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraftForUpdate(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	class, err := o.rulebook.Class(input.ClassID)
	if err != nil {
		return nil, err
	}

	if err := validateFightingStyle(class, input.FightingStyle); err != nil {
		return nil, err
	}

	if err := o.invalidateDependents(draft, entities.StepClass); err != nil {
		return nil, err
	}
	draft.ClassID = input.ClassID
	draft.FightingStyle = input.FightingStyle
	draft.Progress.SetStep(entities.ProgressStepClass, true)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateClassOutput{Draft: saved}, nil
}

func validateFightingStyle(class *rulebook.Class, style string) error {
	if len(class.FightingStyles) == 0 {
		if style != "" {
			return errors.InvalidArgumentf("class %s does not choose a fighting style", class.ID)
		}
		return nil
	}
	if style == "" {
		return errors.InvalidArgumentf("class %s requires a fighting style", class.ID)
	}
	for _, s := range class.FightingStyles {
		if s == style {
			return nil
		}
	}
	return errors.InvalidArgumentf("unknown fighting style %q", style)
}

// UpdateSkills chooses skill proficiencies and, for classes that
// grant it, expertise picks.
func (o *Orchestrator) UpdateSkills(ctx context.Context, input *character.UpdateSkillsInput) (*character.UpdateSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraftForUpdate(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if draft.ClassID == "" {
		return nil, errors.FailedPrecondition("class must be chosen before skills")
	}
	class, err := o.rulebook.Class(draft.ClassID)
	if err != nil {
		return nil, err
	}

	if err := validateSkills(class, input.SkillIDs, input.ExpertiseSkillIDs); err != nil {
		return nil, err
	}

	draft.SkillIDs = input.SkillIDs
	draft.ExpertiseSkillIDs = input.ExpertiseSkillIDs
	draft.Progress.SetStep(entities.ProgressStepSkills, true)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateSkillsOutput{Draft: saved}, nil
}

func validateSkills(class *rulebook.Class, skillIDs, expertiseIDs []string) error {
	seen := make(map[string]bool, len(skillIDs))
	for _, id := range skillIDs {
		if seen[id] {
			return errors.InvalidArgumentf("duplicate skill: %s", id)
		}
		seen[id] = true
		if !contains(class.SkillIDs, id) {
			return errors.InvalidArgumentf("skill %s is not available to class %s", id, class.ID)
		}
	}
	if int32(len(skillIDs)) > class.SkillCount {
		return errors.InvalidArgument("skill limit exceeded")
	}
	if int32(len(skillIDs)) < class.SkillCount {
		return errors.InvalidArgumentf("class %s chooses exactly %d skills", class.ID, class.SkillCount)
	}

	if class.ExpertiseCount == 0 {
		if len(expertiseIDs) > 0 {
			return errors.InvalidArgumentf("class %s does not grant expertise", class.ID)
		}
		return nil
	}

	expSeen := make(map[string]bool, len(expertiseIDs))
	for _, id := range expertiseIDs {
		if expSeen[id] {
			return errors.InvalidArgumentf("duplicate skill: %s", id)
		}
		expSeen[id] = true
		if !seen[id] {
			return errors.InvalidArgumentf("expertise skill %s must be among chosen skills", id)
		}
	}
	if int32(len(expertiseIDs)) != class.ExpertiseCount {
		return errors.InvalidArgumentf("class %s chooses exactly %d expertise skills", class.ID, class.ExpertiseCount)
	}
	return nil
}

// UpdateEquipment purchases equipment against the class starting gold
// budget. Proficiency gaps produce warnings, never failures.
func (o *Orchestrator) UpdateEquipment(ctx context.Context, input *character.UpdateEquipmentInput) (*character.UpdateEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraftForUpdate(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if draft.ClassID == "" {
		return nil, errors.FailedPrecondition("class must be chosen before equipment")
	}
	class, err := o.rulebook.Class(draft.ClassID)
	if err != nil {
		return nil, err
	}

	warnings, remaining, err := o.validateEquipment(class, input.Selections)
	if err != nil {
		return nil, err
	}

	draft.Equipment = input.Selections
	draft.Progress.SetStep(entities.ProgressStepEquipment, true)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}

	return &character.UpdateEquipmentOutput{
		Draft:          saved,
		Warnings:       warnings,
		RemainingCoins: remaining,
	}, nil
}

func (o *Orchestrator) validateEquipment(class *rulebook.Class, selections []entities.EquipmentSelection) ([]string, entities.Coins, error) {
	budget := int64(class.StartingGold) * entities.CopperPerGold

	var total int64
	var warnings []string
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			return nil, entities.Coins{}, errors.InvalidArgumentf("quantity for item %s must be positive", sel.ItemID)
		}
		item, err := o.rulebook.Item(sel.ItemID)
		if err != nil {
			return nil, entities.Coins{}, err
		}
		total += item.CostCopper * int64(sel.Quantity)

		if w := proficiencyWarning(o.rulebook, class, item); w != "" {
			warnings = append(warnings, w)
		}
	}

	if total > budget {
		return nil, entities.Coins{}, errors.InvalidArgument("budget exceeded")
	}

	return warnings, entities.CoinsFromCopper(budget - total), nil
}

func proficiencyWarning(rb *rulebook.Rulebook, class *rulebook.Class, item *rulebook.Item) string {
	switch item.Category {
	case entities.EquipmentCategoryWeapon:
		if !rb.HasWeaponProficiency(class, item) {
			return fmt.Sprintf("%s is not proficient with %s", class.Name, item.Name)
		}
	case entities.EquipmentCategoryArmor:
		if !rb.HasArmorProficiency(class, item.ArmorType) {
			return fmt.Sprintf("%s is not proficient with %s armor", class.Name, item.ArmorType)
		}
	case entities.EquipmentCategoryShield:
		if !rb.HasArmorProficiency(class, entities.EquipmentCategoryShield) {
			return fmt.Sprintf("%s is not proficient with shields", class.Name)
		}
	}
	return ""
}

// UpdateSpells chooses cantrips and level-1 spells. Non-casters pass
// with empty selections; any spell choice for them is an error.
func (o *Orchestrator) UpdateSpells(ctx context.Context, input *character.UpdateSpellsInput) (*character.UpdateSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	draft, err := o.getDraftForUpdate(ctx, input.DraftID)
	if err != nil {
		return nil, err
	}

	if draft.ClassID == "" {
		return nil, errors.FailedPrecondition("class must be chosen before spells")
	}
	class, err := o.rulebook.Class(draft.ClassID)
	if err != nil {
		return nil, err
	}

	if err := o.validateSpells(class, input.CantripIDs, input.SpellIDs); err != nil {
		return nil, err
	}

	draft.CantripIDs = input.CantripIDs
	draft.SpellIDs = input.SpellIDs
	draft.Progress.SetStep(entities.ProgressStepSpells, true)

	saved, err := o.saveDraft(ctx, draft)
	if err != nil {
		return nil, err
	}
	return &character.UpdateSpellsOutput{Draft: saved}, nil
}

func (o *Orchestrator) validateSpells(class *rulebook.Class, cantripIDs, spellIDs []string) error {
	if !class.IsCaster() {
		if len(cantripIDs) > 0 || len(spellIDs) > 0 {
			return errors.InvalidArgumentf("class %s cannot cast spells", class.ID)
		}
		return nil
	}

	if int32(len(cantripIDs)) > class.CantripCount || int32(len(spellIDs)) > class.SpellCount {
		return errors.InvalidArgument("slot limit exceeded")
	}
	if int32(len(cantripIDs)) < class.CantripCount {
		return errors.InvalidArgumentf("class %s chooses exactly %d cantrips", class.ID, class.CantripCount)
	}
	if int32(len(spellIDs)) < class.SpellCount {
		return errors.InvalidArgumentf("class %s chooses exactly %d level-1 spells", class.ID, class.SpellCount)
	}

	if err := checkSpellPicks(o.rulebook, class, cantripIDs, 0); err != nil {
		return err
	}
	return checkSpellPicks(o.rulebook, class, spellIDs, 1)
}

func checkSpellPicks(rb *rulebook.Rulebook, class *rulebook.Class, ids []string, level int32) error {
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return errors.InvalidArgumentf("duplicate spell: %s", id)
		}
		seen[id] = true
		spell, ok := rb.ClassSpell(class.ID, id)
		if !ok || spell.Level != level {
			return errors.InvalidArgument("spell unavailable to class")
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
