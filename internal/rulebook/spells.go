package rulebook

func cantrip(id, name string, concentration bool) *Spell {
	return &Spell{ID: id, Name: name, Level: 0, Concentration: concentration}
}

func spell1(id, name string) *Spell {
	return &Spell{ID: id, Name: name, Level: 1}
}

var wizardSpellTable = []*Spell{
	// Cantrips
	cantrip("acid_splash", "Acid Splash", false),
	cantrip("blade_ward", "Blade Ward", true),
	cantrip("chill_touch", "Chill Touch", false),
	cantrip("dancing_lights", "Dancing Lights", true),
	cantrip("elementalism", "Elementalism", false),
	cantrip("fire_bolt", "Fire Bolt", false),
	cantrip("friends", "Friends", true),
	cantrip("light", "Light", false),
	cantrip("mage_hand", "Mage Hand", false),
	cantrip("mending", "Mending", false),
	cantrip("message", "Message", false),
	cantrip("mind_sliver", "Mind Sliver", false),
	cantrip("minor_illusion", "Minor Illusion", false),
	cantrip("poison_spray", "Poison Spray", false),
	cantrip("prestidigitation", "Prestidigitation", false),
	cantrip("ray_of_frost", "Ray of Frost", false),
	cantrip("shocking_grasp", "Shocking Grasp", false),
	cantrip("thunderclap", "Thunderclap", false),
	cantrip("toll_the_dead", "Toll the Dead", false),
	cantrip("true_strike", "True Strike", false),

	// Level 1
	spell1("alarm", "Alarm"),
	spell1("burning_hands", "Burning Hands"),
	spell1("charm_person", "Charm Person"),
	spell1("chromatic_orb", "Chromatic Orb"),
	spell1("color_spray", "Color Spray"),
	spell1("comprehend_languages", "Comprehend Languages"),
	spell1("detect_magic", "Detect Magic"),
	spell1("disguise_self", "Disguise Self"),
	spell1("expeditious_retreat", "Expeditious Retreat"),
	spell1("false_life", "False Life"),
	spell1("feather_fall", "Feather Fall"),
	spell1("find_familiar", "Find Familiar"),
	spell1("fog_cloud", "Fog Cloud"),
	spell1("grease", "Grease"),
	spell1("ice_knife", "Ice Knife"),
	spell1("identify", "Identify"),
	spell1("illusory_script", "Illusory Script"),
	spell1("jump", "Jump"),
	spell1("longstrider", "Longstrider"),
	spell1("mage_armor", "Mage Armor"),
	spell1("magic_missile", "Magic Missile"),
	spell1("protection_from_evil_and_good", "Protection from Evil and Good"),
	spell1("ray_of_sickness", "Ray of Sickness"),
	spell1("shield", "Shield"),
	spell1("silent_image", "Silent Image"),
	spell1("sleep", "Sleep"),
	spell1("tashas_hideous_laughter", "Tasha's Hideous Laughter"),
	spell1("tensers_floating_disk", "Tenser's Floating Disk"),
	spell1("thunderwave", "Thunderwave"),
	spell1("unseen_servant", "Unseen Servant"),
	spell1("witch_bolt", "Witch Bolt"),
}

var clericSpellTable = []*Spell{
	// Cantrips
	cantrip("guidance", "Guidance", true),
	cantrip("light", "Light", false),
	cantrip("mending", "Mending", false),
	cantrip("resistance", "Resistance", true),
	cantrip("sacred_flame", "Sacred Flame", false),
	cantrip("spare_the_dying", "Spare the Dying", false),
	cantrip("thaumaturgy", "Thaumaturgy", false),
	cantrip("toll_the_dead", "Toll the Dead", false),
	cantrip("word_of_radiance", "Word of Radiance", false),

	// Level 1
	spell1("bane", "Bane"),
	spell1("bless", "Bless"),
	spell1("command", "Command"),
	spell1("create_or_destroy_water", "Create or Destroy Water"),
	spell1("cure_wounds", "Cure Wounds"),
	spell1("detect_evil_and_good", "Detect Evil and Good"),
	spell1("detect_magic", "Detect Magic"),
	spell1("detect_poison_and_disease", "Detect Poison and Disease"),
	spell1("guiding_bolt", "Guiding Bolt"),
	spell1("healing_word", "Healing Word"),
	spell1("inflict_wounds", "Inflict Wounds"),
	spell1("protection_from_evil_and_good", "Protection from Evil and Good"),
	spell1("purify_food_and_drink", "Purify Food and Drink"),
	spell1("sanctuary", "Sanctuary"),
	spell1("shield_of_faith", "Shield of Faith"),
}
