package character

import (
	"github.com/lvlath/go/bfs"
	"github.com/lvlath/go/core"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
)

// wizardOrder is the canonical step sequence presented to players.
var wizardOrder = []string{
	entities.StepName,
	entities.StepAbilityScores,
	entities.StepRace,
	entities.StepClass,
	entities.StepSkills,
	entities.StepEquipment,
	entities.StepSpells,
}

// stepGraph models which steps depend on which. Revisiting a step
// invalidates its dependents transitively, found by BFS from the
// revisited step.
type stepGraph struct {
	g *core.Graph
}

// Edges run from a step to the steps that depend on it. Ability
// scores sit upstream of everything that reads them; the class choice
// gates skills, equipment, and spells. The name step has no
// dependents.
func newStepGraph() (*stepGraph, error) {
	g, err := core.NewGraph(core.WithDirected(true))
	if err != nil {
		return nil, err
	}

	for _, step := range wizardOrder {
		if err := g.AddVertex(step); err != nil {
			return nil, err
		}
	}

	edges := [][2]string{
		{entities.StepAbilityScores, entities.StepRace},
		{entities.StepRace, entities.StepClass},
		{entities.StepClass, entities.StepSkills},
		{entities.StepClass, entities.StepEquipment},
		{entities.StepClass, entities.StepSpells},
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1], 0); err != nil {
			return nil, err
		}
	}

	return &stepGraph{g: g}, nil
}

// dependents returns every step downstream of the given step, the
// step itself excluded.
func (sg *stepGraph) dependents(step string) ([]string, error) {
	res, err := bfs.BFS(sg.g, step)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to traverse step graph from %s", step)
	}
	out := make([]string, 0, len(res.Order))
	for _, id := range res.Order {
		if id != step {
			out = append(out, id)
		}
	}
	return out, nil
}

// invalidateDependents clears the results of every step downstream of
// the revisited step, so stale choices never survive an upstream edit.
func (o *Orchestrator) invalidateDependents(draft *entities.CharacterDraft, revisited string) error {
	downstream, err := o.steps.dependents(revisited)
	if err != nil {
		return err
	}
	for _, step := range downstream {
		clearStep(draft, step)
	}
	return nil
}

// clearStep wipes one step's stored result and progress bit.
func clearStep(draft *entities.CharacterDraft, step string) {
	if flag, ok := entities.StepFlag(step); ok {
		draft.Progress.SetStep(flag, false)
	}
	switch step {
	case entities.StepName:
		draft.Name = ""
	case entities.StepAbilityScores:
		draft.AbilityScores = nil
	case entities.StepRace:
		draft.RaceID = ""
	case entities.StepClass:
		draft.ClassID = ""
		draft.FightingStyle = ""
	case entities.StepSkills:
		draft.SkillIDs = nil
		draft.ExpertiseSkillIDs = nil
	case entities.StepEquipment:
		draft.Equipment = nil
	case entities.StepSpells:
		draft.CantripIDs = nil
		draft.SpellIDs = nil
	}
}

// requiredSteps lists the steps a draft must complete before
// finalization. The spells step only binds casters; until a class is
// chosen it is assumed required.
func (o *Orchestrator) requiredSteps(draft *entities.CharacterDraft) []string {
	steps := make([]string, 0, len(wizardOrder))
	for _, step := range wizardOrder {
		if step == entities.StepSpells && draft.ClassID != "" {
			if class, err := o.rulebook.Class(draft.ClassID); err == nil && !class.IsCaster() {
				continue
			}
		}
		steps = append(steps, step)
	}
	return steps
}

// stepComplete reports whether a step's progress bit is set.
func stepComplete(draft *entities.CharacterDraft, step string) bool {
	flag, ok := entities.StepFlag(step)
	if !ok {
		return false
	}
	return draft.Progress.HasStep(flag)
}

// recalculateProgress refreshes the completion percentage and the
// current step pointer after any mutation.
func (o *Orchestrator) recalculateProgress(draft *entities.CharacterDraft) {
	required := o.requiredSteps(draft)

	var done int
	current := entities.StepReview
	for _, step := range required {
		if stepComplete(draft, step) {
			done++
		} else if current == entities.StepReview {
			current = step
		}
	}

	draft.Progress.CompletionPercentage = int32(done * 100 / len(required))
	draft.Progress.CurrentStep = current
}
