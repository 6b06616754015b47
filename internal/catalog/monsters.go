package catalog

var monsters = []Monster{
	{
		ID: "igris", Name: "Igris, Knight of Shadows",
		Description: "The loyal shadow knight who once served as a marshal of the demons. His unwavering loyalty makes him one of Sung Jin-Woo's most trusted shadows.",
		Rank:        RankA, Level: 32, Difficulty: DifficultyHard,
		Rewards:  []string{"shadow-knight-blade", "marshal-insignia"},
		XPReward: 1500, Title: "Knight Commander", RequiredLevel: 15,
		Origin: "Demon Castle", Abilities: []string{"Shadow Slash", "Commander's Aura", "Loyalty Bond"},
	},
	{
		ID: "tusk", Name: "Tusk, Demon of Blades",
		Description: "A fearsome demon with countless blades sprouting from its body. His strikes can penetrate even the strongest armors.",
		Rank:        RankB, Level: 21, Difficulty: DifficultyMedium,
		Rewards:  []string{"tusk-blade", "demon-essence"},
		XPReward: 800, Title: "Blade Master", RequiredLevel: 8,
		Origin: "Demon Tower", Abilities: []string{"Blade Storm", "Cutting Aura", "Iron Body"},
	},
	{
		ID: "beru", Name: "Beru, Ant King",
		Description: "The mighty ruler of the ant colony from Jeju Island. After becoming a shadow, his loyalty to the Shadow Monarch is absolute.",
		Rank:        RankS, Level: 45, Difficulty: DifficultyExtreme,
		Rewards:  []string{"ant-king-carapace", "royal-stinger"},
		XPReward: 2500, Title: "Sovereign of Plagues", RequiredLevel: 25,
		Origin: "Jeju Island", Abilities: []string{"Acid Spray", "Colony Command", "Chitin Armor", "Telepathy"},
	},
	{
		ID: "tank", Name: "Tank, Stone Golem",
		Description: "A massive stone golem with impenetrable defenses. His body is formed from ancient magical stone that absorbs damage.",
		Rank:        RankC, Level: 18, Difficulty: DifficultyEasy,
		Rewards:  []string{"golem-core", "stone-fragment"},
		XPReward: 500, Title: "Stone Defender", RequiredLevel: 5,
		Origin: "Ancient Ruins", Abilities: []string{"Rock Throw", "Earthquake", "Stone Skin"},
	},
	{
		ID: "kamish", Name: "Kamish, Dragon of Destruction",
		Description: "One of the most powerful dragons and a disaster-level threat. His destructive breath can melt entire cities.",
		Rank:        RankS, Level: 50, Difficulty: DifficultyExtreme,
		Rewards:  []string{"dragon-heart", "destruction-scale"},
		XPReward: 3000, Title: "Dragon Slayer", RequiredLevel: 30,
		Origin: "Dragon's Lair", Abilities: []string{"Destruction Breath", "Dragon's Roar", "Scale Armor", "Flight"},
	},
	{
		ID: "iron-body", Name: "Iron Body, Knight of Demons",
		Description: "A knight with an iron body that can withstand tremendous damage. His armor is forged in hellfire.",
		Rank:        RankA, Level: 30, Difficulty: DifficultyHard,
		Rewards:  []string{"hellfire-plate", "demon-iron"},
		XPReward: 1200, Title: "Iron-Willed", RequiredLevel: 12,
		Origin: "Demon Castle", Abilities: []string{"Iron Strike", "Hellfire Shield", "Unbreakable Will"},
	},
	{
		ID: "frost-monarch", Name: "Frost Monarch",
		Description: "One of the rulers of the demon world who controls ice and frost. His presence alone freezes the surroundings.",
		Rank:        RankS, Level: 48, Difficulty: DifficultyExtreme,
		Rewards:  []string{"frost-crystal", "monarch-crown"},
		XPReward: 2800, Title: "Winter's Herald", RequiredLevel: 28,
		Origin: "Frozen Realm", Abilities: []string{"Blizzard", "Ice Spikes", "Frost Armor", "Winter's Grip"},
	},
	{
		ID: "cerberus", Name: "Cerberus, Hound of Hell",
		Description: "A three-headed beast that guards the gates of the demon realm. Each head possesses a different elemental power.",
		Rank:        RankB, Level: 25, Difficulty: DifficultyMedium,
		Rewards:  []string{"hellhound-fang", "guardian-collar"},
		XPReward: 1000, Title: "Gate Guardian", RequiredLevel: 10,
		Origin: "Hell's Gate", Abilities: []string{"Triple Howl", "Fire Breath", "Ice Breath", "Lightning Breath"},
	},
	{
		ID: "architect", Name: "The Architect",
		Description: "The creator of the system who tests hunters with intricate dungeons. His knowledge of the system is unparalleled.",
		Rank:        RankS, Level: 55, Difficulty: DifficultyExtreme,
		Rewards:  []string{"system-key", "architect-staff"},
		XPReward: 3500, Title: "System Administrator", RequiredLevel: 35,
		Origin: "The System", Abilities: []string{"Reality Manipulation", "Dungeon Creation", "Gate Formation", "Memory Access"},
	},
	{
		ID: "antares", Name: "Antares, King of Dragons",
		Description: "The absolute ruler of all dragons and the most powerful of the monarchs. His existence threatens the balance of the world.",
		Rank:        RankS, Level: 60, Difficulty: DifficultyExtreme,
		Rewards:  []string{"monarch-heart", "destruction-essence"},
		XPReward: 4000, Title: "Dragon Emperor", RequiredLevel: 40,
		Origin: "Dragon Realm", Abilities: []string{"Dragon's Breath", "Monarch's Authority", "Destruction Aura", "World Ender"},
	},
	{
		ID: "shadow-sovereign", Name: "Ashborn, Shadow Sovereign",
		Description: "The original Shadow Monarch whose powers were passed to Sung Jin-Woo. His control over shadows is absolute.",
		Rank:        RankS, Level: 65, Difficulty: DifficultyExtreme,
		Rewards:  []string{"shadow-heart", "sovereign-dagger"},
		XPReward: 4500, Title: "Lord of Shadows", RequiredLevel: 45,
		Origin: "Shadow Realm", Abilities: []string{"Shadow Extraction", "Army of Darkness", "Domain Expansion", "Eternal Slumber"},
	},
}

// Monsters returns a copy of the monster catalog.
func Monsters() []Monster {
	out := make([]Monster, len(monsters))
	copy(out, monsters)
	return out
}

func MonsterByID(id string) (Monster, bool) {
	for _, m := range monsters {
		if m.ID == id {
			return m, true
		}
	}
	return Monster{}, false
}

func MonstersByRank(r Rank) []Monster {
	var out []Monster
	for _, m := range monsters {
		if m.Rank == r {
			out = append(out, m)
		}
	}
	return out
}

// MonstersByLevel returns monsters a hunter of the given level may challenge.
func MonstersByLevel(level int) []Monster {
	var out []Monster
	for _, m := range monsters {
		if m.RequiredLevel <= level {
			out = append(out, m)
		}
	}
	return out
}
