package rulebook

import "github.com/KirkDiggler/character-builder/internal/entities"

func gp(n int64) int64 { return n * entities.CopperPerGold }
func sp(n int64) int64 { return n * entities.CopperPerSilver }

func weapon(id, name, category string, cost int64, damage, damageType string, weight float64, properties ...string) *Item {
	return &Item{
		ID:             id,
		Name:           name,
		Category:       entities.EquipmentCategoryWeapon,
		WeaponCategory: category,
		CostCopper:     cost,
		Damage:         damage,
		DamageType:     damageType,
		Weight:         weight,
		Properties:     properties,
	}
}

func armor(id, name, armorType string, cost int64, baseAC, maxDex int32, stealthDisadvantage bool, weight float64) *Item {
	return &Item{
		ID:                  id,
		Name:                name,
		Category:            entities.EquipmentCategoryArmor,
		ArmorType:           armorType,
		CostCopper:          cost,
		BaseAC:              baseAC,
		MaxDexBonus:         maxDex,
		StealthDisadvantage: stealthDisadvantage,
		Weight:              weight,
	}
}

func gear(id, name string, cost int64) *Item {
	return &Item{
		ID:         id,
		Name:       name,
		Category:   entities.EquipmentCategoryGear,
		CostCopper: cost,
	}
}

func ranged(it *Item, rng string) *Item {
	it.Range = rng
	return it
}

func versatile(it *Item, damage string) *Item {
	it.VersatileDamage = damage
	return it
}

func strengthReq(it *Item, minimum int32) *Item {
	it.StrengthRequirement = minimum
	return it
}

// fullDex marks armor that applies the whole dexterity modifier.
const fullDex int32 = -1

func itemTable() []*Item {
	items := []*Item{
		// Simple melee weapons
		weapon("club", "Club", "simple_melee", sp(1), "1d4", "bludgeoning", 2, "light"),
		ranged(weapon("dagger", "Dagger", "simple_melee", gp(2), "1d4", "piercing", 1, "finesse", "light", "thrown"), "20/60"),
		weapon("greatclub", "Greatclub", "simple_melee", sp(2), "1d8", "bludgeoning", 10, "two-handed"),
		ranged(weapon("handaxe", "Handaxe", "simple_melee", gp(5), "1d6", "slashing", 2, "light", "thrown"), "20/60"),
		ranged(weapon("light_hammer", "Light Hammer", "simple_melee", gp(2), "1d4", "bludgeoning", 2, "light", "thrown"), "20/60"),
		weapon("mace", "Mace", "simple_melee", gp(5), "1d6", "bludgeoning", 4),
		versatile(weapon("quarterstaff", "Quarterstaff", "simple_melee", sp(2), "1d6", "bludgeoning", 4, "versatile"), "1d8"),
		weapon("sickle", "Sickle", "simple_melee", gp(1), "1d4", "slashing", 2, "light"),
		versatile(ranged(weapon("spear", "Spear", "simple_melee", gp(1), "1d6", "piercing", 3, "thrown", "versatile"), "20/60"), "1d8"),

		// Simple ranged weapons
		ranged(weapon("light_crossbow", "Light Crossbow", "simple_ranged", gp(25), "1d8", "piercing", 5, "ammunition", "loading", "two-handed"), "80/320"),
		ranged(weapon("dart", "Dart", "simple_ranged", 5, "1d4", "piercing", 0.25, "finesse", "thrown"), "20/60"),
		ranged(weapon("shortbow", "Shortbow", "simple_ranged", gp(25), "1d6", "piercing", 2, "ammunition", "two-handed"), "80/320"),
		ranged(weapon("sling", "Sling", "simple_ranged", sp(1), "1d4", "bludgeoning", 0, "ammunition"), "30/120"),

		// Martial melee weapons
		versatile(weapon("battleaxe", "Battleaxe", "martial_melee", gp(10), "1d8", "slashing", 4, "versatile"), "1d10"),
		weapon("flail", "Flail", "martial_melee", gp(10), "1d8", "bludgeoning", 2),
		weapon("glaive", "Glaive", "martial_melee", gp(20), "1d10", "slashing", 6, "heavy", "reach", "two-handed"),
		weapon("greataxe", "Greataxe", "martial_melee", gp(30), "1d12", "slashing", 7, "heavy", "two-handed"),
		weapon("greatsword", "Greatsword", "martial_melee", gp(50), "2d6", "slashing", 6, "heavy", "two-handed"),
		weapon("halberd", "Halberd", "martial_melee", gp(20), "1d10", "slashing", 6, "heavy", "reach", "two-handed"),
		weapon("lance", "Lance", "martial_melee", gp(10), "1d12", "piercing", 6, "reach", "special"),
		versatile(weapon("longsword", "Longsword", "martial_melee", gp(15), "1d8", "slashing", 3, "versatile"), "1d10"),
		weapon("maul", "Maul", "martial_melee", gp(10), "2d6", "bludgeoning", 10, "heavy", "two-handed"),
		weapon("morningstar", "Morningstar", "martial_melee", gp(15), "1d8", "piercing", 4),
		weapon("pike", "Pike", "martial_melee", gp(5), "1d10", "piercing", 18, "heavy", "reach", "two-handed"),
		weapon("rapier", "Rapier", "martial_melee", gp(25), "1d8", "piercing", 2, "finesse"),
		weapon("scimitar", "Scimitar", "martial_melee", gp(25), "1d6", "slashing", 3, "finesse", "light"),
		weapon("shortsword", "Shortsword", "martial_melee", gp(10), "1d6", "piercing", 2, "finesse", "light"),
		versatile(ranged(weapon("trident", "Trident", "martial_melee", gp(5), "1d8", "piercing", 4, "thrown", "versatile"), "20/60"), "1d10"),
		versatile(weapon("war_pick", "War Pick", "martial_melee", gp(5), "1d8", "piercing", 2, "versatile"), "1d10"),
		versatile(weapon("warhammer", "Warhammer", "martial_melee", gp(15), "1d8", "bludgeoning", 5, "versatile"), "1d10"),
		weapon("whip", "Whip", "martial_melee", gp(2), "1d4", "slashing", 3, "finesse", "reach"),

		// Martial ranged weapons
		ranged(weapon("blowgun", "Blowgun", "martial_ranged", gp(10), "1", "piercing", 1, "ammunition", "loading"), "25/100"),
		ranged(weapon("hand_crossbow", "Hand Crossbow", "martial_ranged", gp(75), "1d6", "piercing", 3, "ammunition", "light", "loading"), "30/120"),
		ranged(weapon("heavy_crossbow", "Heavy Crossbow", "martial_ranged", gp(50), "1d10", "piercing", 18, "ammunition", "heavy", "loading", "two-handed"), "100/400"),
		ranged(weapon("longbow", "Longbow", "martial_ranged", gp(50), "1d8", "piercing", 2, "ammunition", "heavy", "two-handed"), "150/600"),

		// Light armor
		armor("padded", "Padded", entities.ArmorClassLight, gp(5), 11, fullDex, true, 8),
		armor("leather", "Leather", entities.ArmorClassLight, gp(10), 11, fullDex, false, 10),
		armor("studded_leather", "Studded Leather", entities.ArmorClassLight, gp(45), 12, fullDex, false, 13),

		// Medium armor
		armor("hide", "Hide", entities.ArmorClassMedium, gp(10), 12, 2, false, 12),
		armor("chain_shirt", "Chain Shirt", entities.ArmorClassMedium, gp(50), 13, 2, false, 20),
		armor("scale_mail", "Scale Mail", entities.ArmorClassMedium, gp(50), 14, 2, true, 45),
		armor("breastplate", "Breastplate", entities.ArmorClassMedium, gp(400), 14, 2, false, 20),
		armor("half_plate", "Half Plate", entities.ArmorClassMedium, gp(750), 15, 2, true, 40),

		// Heavy armor
		armor("ring_mail", "Ring Mail", entities.ArmorClassHeavy, gp(30), 14, 0, true, 40),
		strengthReq(armor("chain_mail", "Chain Mail", entities.ArmorClassHeavy, gp(75), 16, 0, true, 55), 13),
		strengthReq(armor("splint", "Splint", entities.ArmorClassHeavy, gp(200), 17, 0, true, 60), 15),
		strengthReq(armor("plate", "Plate", entities.ArmorClassHeavy, gp(1500), 18, 0, true, 65), 15),

		// Shield
		{
			ID:         "shield",
			Name:       "Shield",
			Category:   entities.EquipmentCategoryShield,
			CostCopper: gp(10),
			ACBonus:    2,
			Weight:     6,
		},

		// Ammunition
		gear("arrows", "Arrows (20)", gp(1)),
		gear("bolts", "Crossbow Bolts (20)", gp(1)),
		gear("needles", "Blowgun Needles (50)", gp(1)),

		// Arcane foci
		gear("focus_crystal", "Crystal", gp(10)),
		gear("focus_orb", "Orb", gp(20)),
		gear("focus_rod", "Rod", gp(10)),
		gear("focus_staff", "Staff", gp(5)),
		gear("focus_wand", "Wand", gp(10)),

		// Holy symbols
		gear("holy_amulet", "Amulet", gp(5)),
		gear("holy_emblem", "Emblem", gp(5)),
		gear("holy_reliquary", "Reliquary", gp(5)),
	}
	return append(items, adventuringGear()...)
}

func adventuringGear() []*Item {
	return []*Item{
		gear("acid", "Acid", gp(25)),
		gear("alchemists_fire", "Alchemist's Fire", gp(50)),
		gear("antitoxin", "Antitoxin", gp(50)),
		gear("backpack", "Backpack", gp(2)),
		gear("ball_bearings", "Ball Bearings (bag of 1000)", gp(1)),
		gear("barrel", "Barrel", gp(2)),
		gear("basket", "Basket", sp(4)),
		gear("bedroll", "Bedroll", gp(1)),
		gear("bell", "Bell", gp(1)),
		gear("blanket", "Blanket", sp(5)),
		gear("block_and_tackle", "Block and Tackle", gp(1)),
		gear("book", "Book", gp(25)),
		gear("glass_bottle", "Glass Bottle", gp(2)),
		gear("bucket", "Bucket", 5),
		gear("burglars_pack", "Burglar's Pack", gp(16)),
		gear("caltrops", "Caltrops (bag of 20)", gp(1)),
		gear("candle", "Candle", 1),
		gear("crossbow_bolt_case", "Crossbow Bolt Case", gp(1)),
		gear("map_case", "Map or Scroll Case", gp(1)),
		gear("chain", "Chain (10 feet)", gp(5)),
		gear("chest", "Chest", gp(5)),
		gear("climbers_kit", "Climber's Kit", gp(25)),
		gear("clothes_fine", "Fine Clothes", gp(15)),
		gear("clothes_travelers", "Traveler's Clothes", gp(2)),
		gear("component_pouch", "Component Pouch", gp(25)),
		gear("costume", "Costume", gp(5)),
		gear("crowbar", "Crowbar", gp(2)),
		gear("diplomats_pack", "Diplomat's Pack", gp(39)),
		gear("dungeoneers_pack", "Dungeoneer's Pack", gp(12)),
		gear("entertainers_pack", "Entertainer's Pack", gp(40)),
		gear("explorers_pack", "Explorer's Pack", gp(10)),
		gear("flask", "Flask", 2),
		gear("grappling_hook", "Grappling Hook", gp(2)),
		gear("healers_kit", "Healer's Kit", gp(5)),
		gear("holy_water", "Holy Water (flask)", gp(25)),
		gear("hunting_trap", "Hunting Trap", gp(5)),
		gear("ink", "Ink (1 ounce bottle)", gp(10)),
		gear("ink_pen", "Ink Pen", 2),
		gear("jug", "Jug", 2),
		gear("ladder", "Ladder (10-foot)", sp(1)),
		gear("lamp", "Lamp", sp(5)),
		gear("lantern_bullseye", "Bullseye Lantern", gp(10)),
		gear("lantern_hooded", "Hooded Lantern", gp(5)),
		gear("lock", "Lock", gp(10)),
		gear("magnifying_glass", "Magnifying Glass", gp(100)),
		gear("manacles", "Manacles", gp(2)),
		gear("map", "Map", gp(1)),
		gear("mirror", "Mirror, Steel", gp(5)),
		gear("net", "Net", gp(1)),
		gear("oil", "Oil (flask)", sp(1)),
		gear("paper", "Paper (one sheet)", sp(2)),
		gear("parchment", "Parchment (one sheet)", sp(1)),
		gear("perfume", "Perfume (vial)", gp(5)),
		gear("basic_poison", "Basic Poison (vial)", gp(100)),
		gear("pole", "Pole (10-foot)", 5),
		gear("iron_pot", "Iron Pot", gp(2)),
		gear("potion_of_healing", "Potion of Healing", gp(50)),
		gear("pouch", "Pouch", sp(5)),
		gear("priests_pack", "Priest's Pack", gp(33)),
		gear("quiver", "Quiver", gp(1)),
		gear("portable_ram", "Portable Ram", gp(4)),
		gear("rations", "Rations (1 day)", sp(5)),
		gear("robe", "Robes", gp(1)),
		gear("rope_hemp", "Rope, Hemp (50 feet)", gp(1)),
		gear("sack", "Sack", 1),
		gear("scholars_pack", "Scholar's Pack", gp(40)),
		gear("shovel", "Shovel", gp(2)),
		gear("signal_whistle", "Signal Whistle", 5),
		gear("iron_spikes", "Iron Spikes (10)", gp(1)),
		gear("spellbook", "Spellbook", gp(50)),
		gear("string", "String (10 feet)", sp(1)),
		gear("tent", "Tent, Two-person", gp(2)),
		gear("thieves_tools", "Thieves' Tools", gp(25)),
		gear("tinderbox", "Tinderbox", sp(5)),
		gear("torch", "Torch", 1),
		gear("vial", "Vial", gp(1)),
		gear("waterskin", "Waterskin", sp(2)),
	}
}
