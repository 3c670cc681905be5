// Package sheet renders a finalized character as a printable plain
// text sheet. Rendering the same character always produces identical
// bytes, so sheets can be cached or diffed.
package sheet

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
	"github.com/KirkDiggler/character-builder/internal/rulebook"
)

const lineWidth = 60

// Render produces the printable sheet for a character. It fails with
// an internal error when the character references rule entries the
// rulebook does not know, which indicates corrupt stored data.
func Render(char *entities.Character, rb *rulebook.Rulebook) ([]byte, error) {
	if char == nil {
		return nil, errors.Internal("cannot render nil character")
	}

	race, err := rb.Race(char.RaceID)
	if err != nil {
		return nil, errors.Internalf("character %s references unknown race %q", char.ID, char.RaceID)
	}
	class, err := rb.Class(char.ClassID)
	if err != nil {
		return nil, errors.Internalf("character %s references unknown class %q", char.ID, char.ClassID)
	}

	var b bytes.Buffer

	writeHeader(&b, char, race, class)
	writeAbilities(&b, char)
	writeCombat(&b, char, class)
	writeSkills(&b, char, rb)
	if err := writeEquipment(&b, char, rb); err != nil {
		return nil, err
	}
	if class.IsCaster() {
		if err := writeSpells(&b, char, rb, class); err != nil {
			return nil, err
		}
	}

	return b.Bytes(), nil
}

func writeHeader(b *bytes.Buffer, char *entities.Character, race *rulebook.Race, class *rulebook.Class) {
	rule(b)
	fmt.Fprintf(b, "%s\n", center(strings.ToUpper(char.Name)))
	fmt.Fprintf(b, "%s\n", center(fmt.Sprintf("Level %d %s %s", char.Level, race.Name, class.Name)))
	rule(b)
}

func writeAbilities(b *bytes.Buffer, char *entities.Character) {
	section(b, "ABILITY SCORES")
	for _, ability := range entities.AbilityOrder {
		score := char.Abilities.Get(ability)
		base := char.BaseAbilities.Get(ability)
		line := fmt.Sprintf("  %-14s %2d (%s)", titleID(ability), score, signed(entities.AbilityModifier(score)))
		if score != base {
			line += fmt.Sprintf("  [base %d]", base)
		}
		fmt.Fprintf(b, "%s\n", line)
	}
}

func writeCombat(b *bytes.Buffer, char *entities.Character, class *rulebook.Class) {
	section(b, "COMBAT")
	fmt.Fprintf(b, "  Armor Class        %d\n", char.ArmorClass)
	fmt.Fprintf(b, "  Hit Points         %d / %d (hit die d%d)\n", char.CurrentHP, char.MaxHP, class.HitDie)
	fmt.Fprintf(b, "  Initiative         %s\n", signed(char.Initiative))
	fmt.Fprintf(b, "  Speed              %d ft.\n", char.Speed)
	fmt.Fprintf(b, "  Proficiency Bonus  %s\n", signed(char.ProficiencyBonus))
	fmt.Fprintf(b, "  Passive Perception %d\n", char.PassivePerception)
	if char.FightingStyle != "" {
		fmt.Fprintf(b, "  Fighting Style     %s\n", titleID(char.FightingStyle))
	}
}

func writeSkills(b *bytes.Buffer, char *entities.Character, rb *rulebook.Rulebook) {
	section(b, "SKILLS")
	for _, skill := range rb.Skills() {
		mark := " "
		switch {
		case char.HasExpertise(skill.ID):
			mark = "E"
		case char.HasSkill(skill.ID):
			mark = "*"
		}
		mod := char.SkillModifier(skill.ID, skill.Ability)
		fmt.Fprintf(b, "  [%s] %-16s %s (%s)\n", mark, skill.Name, signed(mod), strings.ToUpper(skill.Ability[:3]))
	}
	fmt.Fprintf(b, "  * proficient   E expertise\n")
}

func writeEquipment(b *bytes.Buffer, char *entities.Character, rb *rulebook.Rulebook) error {
	section(b, "EQUIPMENT")
	var total int64
	for _, sel := range char.Equipment {
		item, err := rb.Item(sel.ItemID)
		if err != nil {
			return errors.Internalf("character %s references unknown item %q", char.ID, sel.ItemID)
		}
		cost := item.CostCopper * int64(sel.Quantity)
		total += cost
		fmt.Fprintf(b, "  %dx %-22s %s\n", sel.Quantity, item.Name, entities.CoinsFromCopper(cost))
	}
	if len(char.Equipment) == 0 {
		fmt.Fprintf(b, "  (none)\n")
	}
	fmt.Fprintf(b, "  %-25s %s\n", "Total spent:", entities.CoinsFromCopper(total))
	fmt.Fprintf(b, "  %-25s %s\n", "Coins remaining:", char.CoinsRemaining.String())
	return nil
}

func writeSpells(b *bytes.Buffer, char *entities.Character, rb *rulebook.Rulebook, class *rulebook.Class) error {
	section(b, "SPELLCASTING")
	fmt.Fprintf(b, "  Ability       %s\n", titleID(class.CastingAbility))
	fmt.Fprintf(b, "  Save DC       %d\n", char.SpellSaveDC)
	fmt.Fprintf(b, "  Attack Bonus  %s\n", signed(char.SpellAttackBonus))

	fmt.Fprintf(b, "  Cantrips:\n")
	if err := writeSpellList(b, char, rb, class, char.CantripIDs); err != nil {
		return err
	}
	fmt.Fprintf(b, "  Level 1 Spells:\n")
	return writeSpellList(b, char, rb, class, char.SpellIDs)
}

func writeSpellList(b *bytes.Buffer, char *entities.Character, rb *rulebook.Rulebook, class *rulebook.Class, ids []string) error {
	for _, id := range ids {
		spell, ok := rb.ClassSpell(class.ID, id)
		if !ok {
			return errors.Internalf("character %s references unknown spell %q", char.ID, id)
		}
		suffix := ""
		if spell.Concentration {
			suffix = " (concentration)"
		}
		fmt.Fprintf(b, "    - %s%s\n", spell.Name, suffix)
	}
	if len(ids) == 0 {
		fmt.Fprintf(b, "    (none)\n")
	}
	return nil
}

func section(b *bytes.Buffer, title string) {
	fmt.Fprintf(b, "\n%s\n", title)
	fmt.Fprintf(b, "%s\n", strings.Repeat("-", lineWidth))
}

func rule(b *bytes.Buffer) {
	fmt.Fprintf(b, "%s\n", strings.Repeat("=", lineWidth))
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	pad := (lineWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func signed(v int32) string {
	if v >= 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

// titleID turns a snake_case identifier into a display label.
func titleID(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
