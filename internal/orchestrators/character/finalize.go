package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
	characterrepo "github.com/KirkDiggler/character-builder/internal/repositories/character"
	draftrepo "github.com/KirkDiggler/character-builder/internal/repositories/draft"
	"github.com/KirkDiggler/character-builder/internal/rulebook"
	"github.com/KirkDiggler/character-builder/internal/services/character"
)

// ValidateDraft reports per-step completeness without mutating the
// draft.
func (o *Orchestrator) ValidateDraft(ctx context.Context, input *character.ValidateDraftInput) (*character.ValidateDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: input.DraftID})
	if err != nil {
		return nil, err
	}
	draft := out.Draft

	required := make(map[string]bool, len(wizardOrder))
	for _, step := range o.requiredSteps(draft) {
		required[step] = true
	}

	steps := make([]character.StepStatus, 0, len(wizardOrder))
	canFinalize := true
	missing := ""
	for _, step := range wizardOrder {
		status := character.StepStatus{
			Step:     step,
			Complete: stepComplete(draft, step),
			Required: required[step],
		}
		steps = append(steps, status)
		if status.Required && !status.Complete && missing == "" {
			canFinalize = false
			missing = step
		}
	}

	return &character.ValidateDraftOutput{
		Draft:       draft,
		Steps:       steps,
		CanFinalize: canFinalize,
		MissingStep: missing,
	}, nil
}

// FinalizeDraft turns a complete draft into an immutable character
// with derived stats, persists it, and deletes the draft.
func (o *Orchestrator) FinalizeDraft(ctx context.Context, input *character.FinalizeDraftInput) (*character.FinalizeDraftOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.draftRepo.Get(ctx, draftrepo.GetInput{ID: input.DraftID})
	if err != nil {
		return nil, err
	}
	draft := out.Draft

	for _, step := range o.requiredSteps(draft) {
		if !stepComplete(draft, step) {
			return nil, errors.FailedPreconditionf("missing required step %s", step)
		}
	}

	char, err := o.buildCharacter(draft)
	if err != nil {
		return nil, err
	}

	if _, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: char}); err != nil {
		return nil, err
	}

	// The draft has served its purpose. Failing to delete it leaves a
	// stale draft behind but the character is already saved, so log
	// and move on.
	if _, err := o.draftRepo.Delete(ctx, draftrepo.DeleteInput{ID: draft.ID}); err != nil {
		slog.ErrorContext(ctx, "failed to delete finalized draft",
			"draft_id", draft.ID,
			"character_id", char.ID,
			"error", err,
		)
	}

	slog.InfoContext(ctx, "character finalized",
		"character_id", char.ID,
		"player_id", char.PlayerID,
		"race_id", char.RaceID,
		"class_id", char.ClassID,
	)

	return &character.FinalizeDraftOutput{Character: char}, nil
}

// buildCharacter computes every derived stat from the draft's choices.
func (o *Orchestrator) buildCharacter(draft *entities.CharacterDraft) (*entities.Character, error) {
	race, err := o.rulebook.Race(draft.RaceID)
	if err != nil {
		return nil, err
	}
	class, err := o.rulebook.Class(draft.ClassID)
	if err != nil {
		return nil, err
	}
	if draft.AbilityScores == nil {
		return nil, errors.FailedPreconditionf("missing required step %s", entities.StepAbilityScores)
	}

	base := *draft.AbilityScores
	final := base
	for ability, bonus := range race.AbilityBonuses {
		final.Set(ability, final.Get(ability)+bonus)
	}

	conMod := entities.AbilityModifier(final.Constitution)
	dexMod := entities.AbilityModifier(final.Dexterity)
	wisMod := entities.AbilityModifier(final.Wisdom)

	maxHP := class.HitDie + conMod
	if maxHP < 1 {
		maxHP = 1
	}

	ac, speedPenalty, err := o.computeArmor(draft.Equipment, dexMod, final.Strength)
	if err != nil {
		return nil, err
	}

	passive := 10 + wisMod
	if contains(draft.SkillIDs, entities.SkillPerception) {
		passive += rulebook.ProficiencyBonus
		if contains(draft.ExpertiseSkillIDs, entities.SkillPerception) {
			passive += rulebook.ProficiencyBonus
		}
	}

	var saveDC, attackBonus int32
	if class.IsCaster() {
		castMod := entities.AbilityModifier(final.Get(class.CastingAbility))
		saveDC = 8 + rulebook.ProficiencyBonus + castMod
		attackBonus = rulebook.ProficiencyBonus + castMod
	}

	remaining, err := o.remainingCoins(class, draft.Equipment)
	if err != nil {
		return nil, err
	}

	now := o.clock.Now().Unix()
	return &entities.Character{
		ID:                o.idGen.Generate(),
		PlayerID:          draft.PlayerID,
		Name:              draft.Name,
		Level:             rulebook.CharacterLevel,
		RaceID:            draft.RaceID,
		ClassID:           draft.ClassID,
		BaseAbilities:     base,
		Abilities:         final,
		SkillIDs:          draft.SkillIDs,
		ExpertiseSkillIDs: draft.ExpertiseSkillIDs,
		FightingStyle:     draft.FightingStyle,
		Equipment:         draft.Equipment,
		CantripIDs:        draft.CantripIDs,
		SpellIDs:          draft.SpellIDs,
		MaxHP:             maxHP,
		CurrentHP:         maxHP,
		ArmorClass:        ac,
		Initiative:        dexMod,
		Speed:             race.Speed - speedPenalty,
		ProficiencyBonus:  rulebook.ProficiencyBonus,
		PassivePerception: passive,
		SpellSaveDC:       saveDC,
		SpellAttackBonus:  attackBonus,
		CoinsRemaining:    remaining,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// computeArmor returns the best armor class the purchased equipment
// allows and any speed penalty from heavy armor worn below its
// strength requirement. Unarmored AC is 10 plus the dexterity
// modifier.
func (o *Orchestrator) computeArmor(selections []entities.EquipmentSelection, dexMod, strength int32) (ac int32, speedPenalty int32, err error) {
	ac = 10 + dexMod

	var hasShield bool
	var bestArmor *rulebook.Item
	var bestArmorAC int32
	for _, sel := range selections {
		item, err := o.rulebook.Item(sel.ItemID)
		if err != nil {
			return 0, 0, err
		}
		switch item.Category {
		case entities.EquipmentCategoryShield:
			hasShield = true
		case entities.EquipmentCategoryArmor:
			candidate := armoredAC(item, dexMod)
			if bestArmor == nil || candidate > bestArmorAC {
				bestArmor = item
				bestArmorAC = candidate
			}
		}
	}

	if bestArmor != nil {
		ac = bestArmorAC
		if bestArmor.StrengthRequirement > 0 && strength < bestArmor.StrengthRequirement {
			speedPenalty = 10
		}
	}
	if hasShield {
		ac += 2
	}
	return ac, speedPenalty, nil
}

// armoredAC applies an armor's dexterity cap. MaxDexBonus of -1 means
// the full modifier applies; 0 means none does.
func armoredAC(item *rulebook.Item, dexMod int32) int32 {
	switch {
	case item.MaxDexBonus < 0:
		return item.BaseAC + dexMod
	case item.MaxDexBonus == 0:
		return item.BaseAC
	case dexMod > item.MaxDexBonus:
		return item.BaseAC + item.MaxDexBonus
	default:
		return item.BaseAC + dexMod
	}
}

func (o *Orchestrator) remainingCoins(class *rulebook.Class, selections []entities.EquipmentSelection) (entities.Coins, error) {
	budget := int64(class.StartingGold) * entities.CopperPerGold
	var total int64
	for _, sel := range selections {
		item, err := o.rulebook.Item(sel.ItemID)
		if err != nil {
			return entities.Coins{}, err
		}
		total += item.CostCopper * int64(sel.Quantity)
	}
	return entities.CoinsFromCopper(budget - total), nil
}
