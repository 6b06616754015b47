// Package catalog holds the static reward items and monsters.
package catalog

import (
	"fmt"
	"strings"
	"time"
)

type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

var rankOrder = map[Rank]int{RankE: 0, RankD: 1, RankC: 2, RankB: 3, RankA: 4, RankS: 5}

func (r Rank) IsValid() bool {
	_, ok := rankOrder[r]
	return ok
}

// Ord returns the position of r in E..S, or -1 when invalid.
func (r Rank) Ord() int {
	if o, ok := rankOrder[r]; ok {
		return o
	}
	return -1
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
)

var rarityOrder = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityEpic:      3,
	RarityLegendary: 4,
	RarityMythic:    5,
}

func (r Rarity) IsValid() bool {
	_, ok := rarityOrder[r]
	return ok
}

// Ord returns the position of r in common..mythic, or -1 when invalid.
func (r Rarity) Ord() int {
	if o, ok := rarityOrder[r]; ok {
		return o
	}
	return -1
}

type ItemType string

const (
	ItemSword     ItemType = "sword"
	ItemDagger    ItemType = "dagger"
	ItemStaff     ItemType = "staff"
	ItemBow       ItemType = "bow"
	ItemShield    ItemType = "shield"
	ItemArmor     ItemType = "armor"
	ItemAccessory ItemType = "accessory"
	ItemPotion    ItemType = "potion"
)

// ItemTypes lists every equipment slot in display order.
var ItemTypes = []ItemType{ItemSword, ItemDagger, ItemStaff, ItemBow, ItemShield, ItemArmor, ItemAccessory, ItemPotion}

func (t ItemType) IsValid() bool {
	for _, it := range ItemTypes {
		if it == t {
			return true
		}
	}
	return false
}

func ParseItemType(input string) (ItemType, error) {
	t := ItemType(strings.TrimSpace(strings.ToLower(input)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid item type: %q", input)
	}
	return t, nil
}

type ItemStats struct {
	Power        int `json:"power,omitempty"`
	Defense      int `json:"defense,omitempty"`
	Agility      int `json:"agility,omitempty"`
	Intelligence int `json:"intelligence,omitempty"`
}

type RewardItem struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Rarity        Rarity     `json:"rarity"`
	Type          ItemType   `json:"type"`
	Stats         ItemStats  `json:"stats"`
	Ability       string     `json:"ability,omitempty"`
	RequiredLevel int        `json:"requiredLevel,omitempty"`
	UnlockedAt    *time.Time `json:"unlockedAt,omitempty"`
}

// MinLevel is the level needed to receive or equip the item; unset means 1.
func (i RewardItem) MinLevel() int {
	if i.RequiredLevel <= 0 {
		return 1
	}
	return i.RequiredLevel
}

type Difficulty string

const (
	DifficultyEasy    Difficulty = "easy"
	DifficultyMedium  Difficulty = "medium"
	DifficultyHard    Difficulty = "hard"
	DifficultyExtreme Difficulty = "extreme"
)

type Monster struct {
	ID            string
	Name          string
	Description   string
	Rank          Rank
	Level         int
	Difficulty    Difficulty
	Rewards       []string
	XPReward      int
	Title         string
	RequiredLevel int
	Origin        string
	Abilities     []string
}
