// Package rulebook holds the immutable rule tables character creation
// draws from: races, classes, skills, the equipment catalog, and spell
// lists. A Rulebook is built once at startup and shared; lookups return
// pointers into its tables, which callers must treat as read-only.
package rulebook

import (
	"sort"

	"github.com/KirkDiggler/character-builder/internal/entities"
	"github.com/KirkDiggler/character-builder/internal/errors"
)

// ProficiencyBonus at level 1.
const ProficiencyBonus int32 = 2

// CharacterLevel is the only level the builder produces.
const CharacterLevel int32 = 1

// Race describes a playable race.
type Race struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	AbilityBonuses map[string]int32 `json:"ability_bonuses"`
	Speed          int32            `json:"speed"`
}

// Class describes a playable class and the choices it opens up.
type Class struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	HitDie       int32    `json:"hit_die"`
	SkillCount   int32    `json:"skill_count"`
	SkillIDs     []string `json:"skill_ids"`
	StartingGold int32    `json:"starting_gold"`

	// CastingAbility is empty for non-casters. Casters choose
	// CantripCount cantrips and SpellCount level-1 spells.
	CastingAbility string `json:"casting_ability,omitempty"`
	CantripCount   int32  `json:"cantrip_count,omitempty"`
	SpellCount     int32  `json:"spell_count,omitempty"`

	// ExpertiseCount is nonzero only for classes that grant expertise.
	ExpertiseCount int32 `json:"expertise_count,omitempty"`

	// FightingStyles is nonempty only for classes that choose one.
	FightingStyles []string `json:"fighting_styles,omitempty"`

	// PrimaryAbilityChoices lists abilities the class treats as primary
	// when one must be picked at creation.
	PrimaryAbilityChoices []string `json:"primary_ability_choices"`

	// ArmorProficiencies holds armor weight classes plus "shields".
	// WeaponProficiencies holds weapon category identifiers (such as
	// "simple_melee") and individual item identifiers.
	ArmorProficiencies  []string `json:"armor_proficiencies"`
	WeaponProficiencies []string `json:"weapon_proficiencies"`

	Features []string `json:"features"`
}

// IsCaster reports whether the class chooses spells at creation.
func (c *Class) IsCaster() bool {
	return c.CastingAbility != ""
}

// Skill describes one of the eighteen skills.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Ability     string `json:"ability"`
	Description string `json:"description"`
}

// Spell is a cantrip or level-1 spell on a class list.
type Spell struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Level         int32  `json:"level"`
	Concentration bool   `json:"concentration,omitempty"`
}

// Item is a purchasable catalog entry. Category determines which of
// the stat fields are meaningful.
type Item struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	CostCopper int64   `json:"cost_copper"`
	Weight     float64 `json:"weight"`

	// Weapon fields.
	WeaponCategory  string   `json:"weapon_category,omitempty"`
	Damage          string   `json:"damage,omitempty"`
	DamageType      string   `json:"damage_type,omitempty"`
	VersatileDamage string   `json:"versatile_damage,omitempty"`
	Properties      []string `json:"properties,omitempty"`
	Range           string   `json:"range,omitempty"`

	// Armor fields. MaxDexBonus is -1 when the full dexterity
	// modifier applies.
	ArmorType           string `json:"armor_type,omitempty"`
	BaseAC              int32  `json:"base_ac,omitempty"`
	MaxDexBonus         int32  `json:"max_dex_bonus"`
	StealthDisadvantage bool   `json:"stealth_disadvantage,omitempty"`
	StrengthRequirement int32  `json:"strength_requirement,omitempty"`

	// Shield field.
	ACBonus int32 `json:"ac_bonus,omitempty"`
}

// Rulebook is the assembled rule tables.
type Rulebook struct {
	races   map[string]*Race
	classes map[string]*Class
	skills  map[string]*Skill
	items   map[string]*Item

	// spells maps class ID to its full list, cantrips and level 1.
	spells map[string][]*Spell
}

// New assembles the standard rulebook.
func New() *Rulebook {
	rb := &Rulebook{
		races:   make(map[string]*Race),
		classes: make(map[string]*Class),
		skills:  make(map[string]*Skill),
		items:   make(map[string]*Item),
		spells:  make(map[string][]*Spell),
	}
	for _, r := range raceTable {
		rb.races[r.ID] = r
	}
	for _, c := range classTable {
		rb.classes[c.ID] = c
	}
	for _, s := range skillTable {
		rb.skills[s.ID] = s
	}
	for _, i := range itemTable() {
		rb.items[i.ID] = i
	}
	rb.spells[entities.ClassWizard] = wizardSpellTable
	rb.spells[entities.ClassCleric] = clericSpellTable
	return rb
}

// Race looks up a race by ID.
func (rb *Rulebook) Race(id string) (*Race, error) {
	r, ok := rb.races[id]
	if !ok {
		return nil, errors.NotFoundf("race %q not found", id)
	}
	return r, nil
}

// Races returns all races sorted by ID.
func (rb *Rulebook) Races() []*Race {
	out := make([]*Race, 0, len(rb.races))
	for _, r := range rb.races {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Class looks up a class by ID.
func (rb *Rulebook) Class(id string) (*Class, error) {
	c, ok := rb.classes[id]
	if !ok {
		return nil, errors.NotFoundf("class %q not found", id)
	}
	return c, nil
}

// Classes returns all classes sorted by ID.
func (rb *Rulebook) Classes() []*Class {
	out := make([]*Class, 0, len(rb.classes))
	for _, c := range rb.classes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Skill looks up a skill by ID.
func (rb *Rulebook) Skill(id string) (*Skill, error) {
	s, ok := rb.skills[id]
	if !ok {
		return nil, errors.NotFoundf("skill %q not found", id)
	}
	return s, nil
}

// Skills returns all skills sorted by ID.
func (rb *Rulebook) Skills() []*Skill {
	out := make([]*Skill, 0, len(rb.skills))
	for _, s := range rb.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Item looks up a catalog item by ID.
func (rb *Rulebook) Item(id string) (*Item, error) {
	i, ok := rb.items[id]
	if !ok {
		return nil, errors.NotFoundf("item %q not found", id)
	}
	return i, nil
}

// Items returns the full catalog sorted by ID.
func (rb *Rulebook) Items() []*Item {
	out := make([]*Item, 0, len(rb.items))
	for _, i := range rb.items {
		out = append(out, i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ClassSpells returns the spell list for a class, cantrips included.
// Non-caster classes get an empty list.
func (rb *Rulebook) ClassSpells(classID string) []*Spell {
	return rb.spells[classID]
}

// ClassSpell looks up a single spell on a class list.
func (rb *Rulebook) ClassSpell(classID, spellID string) (*Spell, bool) {
	for _, s := range rb.spells[classID] {
		if s.ID == spellID {
			return s, true
		}
	}
	return nil, false
}

// HasArmorProficiency reports whether a class is proficient with an
// armor weight class or with shields.
func (rb *Rulebook) HasArmorProficiency(class *Class, armorType string) bool {
	if class == nil {
		return false
	}
	if armorType == entities.EquipmentCategoryShield {
		armorType = "shields"
	}
	for _, p := range class.ArmorProficiencies {
		if p == armorType {
			return true
		}
	}
	return false
}

// HasWeaponProficiency reports whether a class is proficient with a
// weapon, either through its category or an individual proficiency.
func (rb *Rulebook) HasWeaponProficiency(class *Class, item *Item) bool {
	if class == nil || item == nil {
		return false
	}
	for _, p := range class.WeaponProficiencies {
		if p == item.WeaponCategory || p == item.ID {
			return true
		}
	}
	return false
}

// StandardArray returns the fixed score array for the "array" roll
// method. The returned slice is a fresh copy.
func StandardArray() []int32 {
	return []int32{15, 14, 13, 12, 10, 8}
}
