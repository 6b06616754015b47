package catalog

import "math/rand/v2"

// baseItems are the drop-eligible rewards, in catalog order. The first
// three form the starter inventory.
var baseItems = []RewardItem{
	{ID: "weapon-1", Name: "Kamish's Wrath", Description: "A dagger crafted from the fang of Kamish, the Demon of Disaster. It deals extra damage to sleeping enemies.", Rarity: RarityUncommon, Type: ItemDagger, Stats: ItemStats{Power: 25, Agility: 15}, Ability: "Shadow Strike: 30% chance to deal double damage on first strike", RequiredLevel: 2},
	{ID: "weapon-2", Name: "Frost Monarch's Staff", Description: "A staff containing the essence of the Frost Monarch, one of the rulers of the ice domain.", Rarity: RarityRare, Type: ItemStaff, Stats: ItemStats{Power: 35, Intelligence: 40}, Ability: "Winter's Embrace: 15% chance to freeze targets for 2 seconds", RequiredLevel: 5},
	{ID: "weapon-3", Name: "Knight Commander's Shield", Description: "Shield once wielded by Knight Commander Gre. Provides divine protection against all forms of attack.", Rarity: RarityEpic, Type: ItemShield, Stats: ItemStats{Defense: 75, Intelligence: 20}, Ability: "Divine Protection: Reduces damage taken by 20% when below 30% health", RequiredLevel: 8},
	{ID: "weapon-4", Name: "Baruka's Longbow", Description: "A legendary bow used by the High Orc Chieftain Baruka. Its arrows pierce through the toughest defenses.", Rarity: RarityLegendary, Type: ItemBow, Stats: ItemStats{Power: 85, Agility: 55}, Ability: "Piercing Shot: Deals 50% more damage to elite monsters", RequiredLevel: 12},
	{ID: "weapon-5", Name: "Shadow Monarch's Sword", Description: "The signature blade of the Shadow Monarch himself. Contains unimaginable power.", Rarity: RarityMythic, Type: ItemSword, Stats: ItemStats{Power: 120, Defense: 40, Intelligence: 30}, Ability: "Army of Shadows: Summons shadow soldiers to fight alongside you when completing difficult tasks", RequiredLevel: 20},
	{ID: "armor-1", Name: "Hunter Association Outfit", Description: "Basic armor issued to E-Rank Hunters. Provides minimal protection but great mobility.", Rarity: RarityCommon, Type: ItemArmor, Stats: ItemStats{Defense: 15, Agility: 10}, RequiredLevel: 1},
	{ID: "armor-2", Name: "Beru's Carapace", Description: "Armor forged from the carapace of Beru, the Ant King. Preferred by those who favor stealth.", Rarity: RarityRare, Type: ItemArmor, Stats: ItemStats{Defense: 35, Agility: 45}, Ability: "Shadow Step: 10% chance to avoid attacks entirely", RequiredLevel: 7},
	{ID: "accessory-1", Name: "Igris' Red Orb", Description: "A mysterious pendant that contains the essence of the Marshal, the Shadow Monarch's most loyal knight.", Rarity: RarityEpic, Type: ItemAccessory, Stats: ItemStats{Power: 15, Intelligence: 35}, Ability: "Soul Drain: Gain 5% of task value as bonus XP", RequiredLevel: 10},
	{ID: "potion-1", Name: "Giant's Elixir", Description: "A rare potion extracted from a Giant's dungeon. Permanently increases your attributes.", Rarity: RarityLegendary, Type: ItemPotion, Stats: ItemStats{Power: 10, Defense: 10, Agility: 10, Intelligence: 10}, Ability: "Permanent stat increase when consumed", RequiredLevel: 15},
	{ID: "weapon-6", Name: "Tusk of Cerberus", Description: "A weapon crafted from the fang of Cerberus, the guardian of the gates of hell.", Rarity: RarityEpic, Type: ItemDagger, Stats: ItemStats{Power: 65, Agility: 40}, Ability: "Triple Threat: 15% chance to strike three times in rapid succession", RequiredLevel: 15},
	{ID: "accessory-2", Name: "Essence of Baran", Description: "A fragment containing the power of the Demon King Baran. Pulsates with destructive energy.", Rarity: RarityMythic, Type: ItemAccessory, Stats: ItemStats{Power: 40, Intelligence: 25}, Ability: "Ruler's Authority: Increases all rewards by 10%", RequiredLevel: 18},
	{ID: "weapon-7", Name: "Iron Heart's Warhammer", Description: "The massive hammer wielded by Iron Heart, one of the strongest hunters in the world. Few can lift it, even fewer can wield it effectively.", Rarity: RarityLegendary, Type: ItemSword, Stats: ItemStats{Power: 95, Defense: 30}, Ability: "Earth Shatter: 20% chance to stun enemies when completing consecutive tasks", RequiredLevel: 14},
	{ID: "weapon-8", Name: "Charyeok Blade", Description: "A mystical blade that can channel the power of divine beings. Used by National Level Hunters to slay S-rank threats.", Rarity: RarityLegendary, Type: ItemSword, Stats: ItemStats{Power: 90, Intelligence: 45}, Ability: "Divine Channel: Bonus XP for completing tasks above your level", RequiredLevel: 15},
	{ID: "weapon-9", Name: "Tusk's Dagger", Description: "A lightweight dagger used by the assassin-ranked hunter Tusk. Perfect for swift, precise strikes.", Rarity: RarityRare, Type: ItemDagger, Stats: ItemStats{Power: 40, Agility: 70}, Ability: "Vital Strike: 25% chance to gain double XP on quick tasks", RequiredLevel: 8},
	{ID: "armor-3", Name: "Go Gun-Hee's Battlesuit", Description: "Special armor worn by the Chairman of the Hunter Association. Offers exceptional protection without sacrificing mobility.", Rarity: RarityEpic, Type: ItemArmor, Stats: ItemStats{Defense: 65, Agility: 25, Power: 15}, Ability: "Authority: Boosts task completion efficiency by 15%", RequiredLevel: 12},
	{ID: "armor-4", Name: "Thomas Andre's Plate", Description: "Heavy armor used by the National Level Hunter Thomas Andre. Nearly impenetrable to physical attacks.", Rarity: RarityLegendary, Type: ItemArmor, Stats: ItemStats{Defense: 100, Power: 30}, Ability: "Unyielding: Prevents streak loss once per week", RequiredLevel: 16},
	{ID: "armor-5", Name: "Shadow Monarch's Attire", Description: "The iconic black armor of the Shadow Monarch. Empowers the wearer with shadow manipulation abilities.", Rarity: RarityMythic, Type: ItemArmor, Stats: ItemStats{Defense: 85, Power: 50, Intelligence: 50}, Ability: "Arise: Recover from failed tasks with reduced penalties", RequiredLevel: 22},
	{ID: "accessory-3", Name: "Ashborn's Fragment", Description: "A fragment containing the power of the Shadow Monarch's original power. Pulses with dark energy.", Rarity: RarityMythic, Type: ItemAccessory, Stats: ItemStats{Power: 35, Intelligence: 55}, Ability: "Shadow Extraction: Convert streak days into bonus XP", RequiredLevel: 20},
	{ID: "accessory-4", Name: "Jin-Woo's Watch", Description: "The watch worn by Sung Jin-Woo throughout his journey. Keeps perfect time and seems to grant awareness of danger.", Rarity: RarityRare, Type: ItemAccessory, Stats: ItemStats{Agility: 30, Intelligence: 20}, Ability: "Time Perception: 15% chance to extend quest deadlines", RequiredLevel: 6},
	{ID: "accessory-5", Name: "Ruler's Bracelet", Description: "A bracelet worn by the Rulers, the mortal enemies of the Monarchs. Glows with holy light.", Rarity: RarityLegendary, Type: ItemAccessory, Stats: ItemStats{Defense: 40, Intelligence: 60}, Ability: "Divine Protection: 20% chance to automatically complete a random daily habit", RequiredLevel: 18},
	{ID: "accessory-6", Name: "Architect's Monocle", Description: "The eyepiece used by the Architect of the System. Allows the wearer to see hidden patterns.", Rarity: RarityEpic, Type: ItemAccessory, Stats: ItemStats{Intelligence: 75}, Ability: "Pattern Recognition: Shows optimal task completion order for maximum XP", RequiredLevel: 12},
	{ID: "potion-2", Name: "Demon King's Blood", Description: "A vial containing the blood of a Demon King. Drinking it permanently enhances combat abilities.", Rarity: RarityLegendary, Type: ItemPotion, Stats: ItemStats{Power: 25, Agility: 15}, Ability: "Demonic Power: Permanently increases XP gain from combat-related tasks", RequiredLevel: 16},
	{ID: "potion-3", Name: "Divine Water of Life", Description: "Blessed water from the Rulers' domain. Restores vitality and enhances natural abilities.", Rarity: RarityEpic, Type: ItemPotion, Stats: ItemStats{Defense: 20, Intelligence: 20}, Ability: "Rejuvenation: Reset all failed streaks once", RequiredLevel: 10},
	{ID: "weapon-10", Name: "Esil Radiru's Spear", Description: "The spear wielded by Esil, the demon princess. Can pierce even the toughest defenses.", Rarity: RarityEpic, Type: ItemBow, Stats: ItemStats{Power: 60, Agility: 45}, Ability: "Demon Pierce: 30% extra XP from difficult tasks", RequiredLevel: 12},
	{ID: "weapon-11", Name: "Kahng Taeshik's Greatsword", Description: "The massive sword used by S-rank hunter Kahng Taeshik. Requires tremendous strength to wield.", Rarity: RarityEpic, Type: ItemSword, Stats: ItemStats{Power: 80, Defense: 20}, Ability: "Overwhelming Force: Complete streak-based tasks more efficiently", RequiredLevel: 14},
	{ID: "accessory-7", Name: "Black Heart", Description: "A mysterious artifact that beats like a heart. Contains the essence of a powerful shadow.", Rarity: RarityLegendary, Type: ItemAccessory, Stats: ItemStats{Power: 45, Intelligence: 40}, Ability: "Shadow Pulse: Tasks completed at night give 25% more XP", RequiredLevel: 15},
}

// monsterItems drop only from defeating the matching monster.
var monsterItems = []RewardItem{
	{ID: "shadow-knight-blade", Name: "Shadow Knight's Blade", Description: "A sword forged from the shadows of Igris. It can cut through spiritual entities.", Rarity: RarityEpic, Type: ItemSword, Stats: ItemStats{Power: 45}, Ability: "Shadow Strike: 15% chance to deal double damage to spiritual entities"},
	{ID: "marshal-insignia", Name: "Marshal's Insignia", Description: "The badge of office worn by Igris when he served as Marshal of the demons.", Rarity: RarityRare, Type: ItemAccessory, Stats: ItemStats{Power: 10, Defense: 15}, Ability: "Commander's Aura: Increases party defense by 10%"},
	{ID: "tusk-blade", Name: "Tusk's Cleaver", Description: "One of the countless blades torn from Tusk's body.", Rarity: RarityRare, Type: ItemDagger, Stats: ItemStats{Power: 35, Agility: 20}},
	{ID: "demon-essence", Name: "Demon Essence", Description: "A swirling vial of condensed demonic mana.", Rarity: RarityUncommon, Type: ItemPotion, Stats: ItemStats{Power: 10, Intelligence: 10}},
	{ID: "ant-king-carapace", Name: "Ant King's Carapace", Description: "Chitin plates shed by Beru, harder than any forged steel.", Rarity: RarityMythic, Type: ItemArmor, Stats: ItemStats{Defense: 90, Agility: 40}},
	{ID: "royal-stinger", Name: "Royal Stinger", Description: "The venomous stinger of the Ant King.", Rarity: RarityLegendary, Type: ItemDagger, Stats: ItemStats{Power: 80, Agility: 50}},
	{ID: "golem-core", Name: "Golem Core", Description: "The humming heart stone that animated Tank.", Rarity: RarityUncommon, Type: ItemAccessory, Stats: ItemStats{Defense: 20}},
	{ID: "stone-fragment", Name: "Stone Fragment", Description: "A shard of ancient magical stone that absorbs blows.", Rarity: RarityCommon, Type: ItemShield, Stats: ItemStats{Defense: 15}},
	{ID: "dragon-heart", Name: "Dragon Heart", Description: "Still warm, it pulses with the fury of Kamish.", Rarity: RarityMythic, Type: ItemAccessory, Stats: ItemStats{Power: 60, Intelligence: 40}},
	{ID: "destruction-scale", Name: "Scale of Destruction", Description: "A scale from Kamish's hide, proof against dragonfire.", Rarity: RarityLegendary, Type: ItemShield, Stats: ItemStats{Defense: 85}},
	{ID: "hellfire-plate", Name: "Hellfire Plate", Description: "Armor forged in the same flames as Iron Body's own.", Rarity: RarityEpic, Type: ItemArmor, Stats: ItemStats{Defense: 70, Power: 10}},
	{ID: "demon-iron", Name: "Demon Iron", Description: "An ingot of iron tempered in the Demon Castle.", Rarity: RarityRare, Type: ItemSword, Stats: ItemStats{Power: 40, Defense: 10}},
	{ID: "frost-crystal", Name: "Frost Crystal", Description: "A crystal of never-melting ice from the Frozen Realm.", Rarity: RarityLegendary, Type: ItemStaff, Stats: ItemStats{Power: 50, Intelligence: 60}},
	{ID: "monarch-crown", Name: "Crown of the Frost Monarch", Description: "Cold radiates from this crown even in summer.", Rarity: RarityMythic, Type: ItemAccessory, Stats: ItemStats{Defense: 30, Intelligence: 80}},
	{ID: "hellhound-fang", Name: "Hellhound Fang", Description: "A fang from one of Cerberus' three heads.", Rarity: RarityRare, Type: ItemDagger, Stats: ItemStats{Power: 45, Agility: 30}},
	{ID: "guardian-collar", Name: "Guardian's Collar", Description: "The spiked collar that bound Cerberus to the gate.", Rarity: RarityEpic, Type: ItemAccessory, Stats: ItemStats{Defense: 40, Agility: 20}},
	{ID: "system-key", Name: "System Key", Description: "An access key to the Architect's inner workings.", Rarity: RarityMythic, Type: ItemAccessory, Stats: ItemStats{Intelligence: 100}},
	{ID: "architect-staff", Name: "Architect's Staff", Description: "The staff that shaped countless dungeons.", Rarity: RarityMythic, Type: ItemStaff, Stats: ItemStats{Power: 70, Intelligence: 90}},
	{ID: "monarch-heart", Name: "Heart of the Dragon Emperor", Description: "The heart of Antares, King of Dragons.", Rarity: RarityMythic, Type: ItemAccessory, Stats: ItemStats{Power: 90, Defense: 50}},
	{ID: "destruction-essence", Name: "Essence of Destruction", Description: "Distilled destructive will of the strongest monarch.", Rarity: RarityMythic, Type: ItemPotion, Stats: ItemStats{Power: 40, Intelligence: 40}},
	{ID: "shadow-heart", Name: "Shadow Heart", Description: "The core of the original Shadow Monarch's power.", Rarity: RarityMythic, Type: ItemAccessory, Stats: ItemStats{Power: 80, Intelligence: 80}},
	{ID: "sovereign-dagger", Name: "Sovereign's Dagger", Description: "Ashborn's own blade, black as the void.", Rarity: RarityMythic, Type: ItemDagger, Stats: ItemStats{Power: 110, Agility: 70}},
}

// Items returns a copy of the drop-eligible catalog.
func Items() []RewardItem {
	out := make([]RewardItem, len(baseItems))
	copy(out, baseItems)
	return out
}

// StarterItems returns the items granted when a profile is initialized.
func StarterItems() []RewardItem {
	return Items()[:3]
}

// ItemByID searches base and monster-exclusive items.
func ItemByID(id string) (RewardItem, bool) {
	for _, it := range baseItems {
		if it.ID == id {
			return it, true
		}
	}
	for _, it := range monsterItems {
		if it.ID == id {
			return it, true
		}
	}
	return RewardItem{}, false
}

// ItemsByLevel returns base items whose required level is at most level.
func ItemsByLevel(level int) []RewardItem {
	var out []RewardItem
	for _, it := range baseItems {
		if it.MinLevel() <= level {
			out = append(out, it)
		}
	}
	return out
}

// ItemsByRarity returns base items of the given rarity.
func ItemsByRarity(r Rarity) []RewardItem {
	var out []RewardItem
	for _, it := range baseItems {
		if it.Rarity == r {
			out = append(out, it)
		}
	}
	return out
}

// RandomReward picks uniformly among level-eligible base items not in owned.
// It returns false when nothing is eligible.
func RandomReward(level int, owned map[string]bool, rng *rand.Rand) (RewardItem, bool) {
	var pool []RewardItem
	for _, it := range ItemsByLevel(level) {
		if owned[it.ID] {
			continue
		}
		pool = append(pool, it)
	}
	if len(pool) == 0 {
		return RewardItem{}, false
	}
	return pool[rng.IntN(len(pool))], true
}
