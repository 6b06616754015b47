package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunterlog/internal/random"
)

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, it := range append(Items(), monsterItems...) {
		require.False(t, seen[it.ID], "duplicate item id %s", it.ID)
		seen[it.ID] = true
		assert.True(t, it.Rarity.IsValid(), "item %s rarity", it.ID)
		assert.True(t, it.Type.IsValid(), "item %s type", it.ID)
	}
}

func TestEveryMonsterRewardResolves(t *testing.T) {
	for _, m := range Monsters() {
		assert.True(t, m.Rank.IsValid(), "monster %s rank", m.ID)
		for _, id := range m.Rewards {
			_, ok := ItemByID(id)
			assert.True(t, ok, "monster %s reward %s", m.ID, id)
		}
	}
}

func TestStarterItems(t *testing.T) {
	got := StarterItems()
	require.Len(t, got, 3)
	assert.Equal(t, "weapon-1", got[0].ID)
	assert.Equal(t, "weapon-3", got[2].ID)
}

func TestItemsByLevelUsesDefaultRequiredLevel(t *testing.T) {
	lvl1 := ItemsByLevel(1)
	require.Len(t, lvl1, 1)
	assert.Equal(t, "armor-1", lvl1[0].ID)
	assert.Empty(t, ItemsByLevel(0))
}

func TestRandomRewardSkipsOwnedAndLocked(t *testing.T) {
	rng := random.Fixed(7)

	for i := 0; i < 50; i++ {
		it, ok := RandomReward(5, map[string]bool{"weapon-1": true}, rng)
		require.True(t, ok)
		assert.NotEqual(t, "weapon-1", it.ID)
		assert.LessOrEqual(t, it.MinLevel(), 5)
	}

	_, ok := RandomReward(1, map[string]bool{"armor-1": true}, rng)
	assert.False(t, ok)
}

func TestRarityOrdering(t *testing.T) {
	order := []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary, RarityMythic}
	for i := 1; i < len(order); i++ {
		assert.Less(t, order[i-1].Ord(), order[i].Ord())
	}
	assert.Equal(t, -1, Rarity("junk").Ord())
}

func TestMonsterLookups(t *testing.T) {
	m, ok := MonsterByID("tank")
	require.True(t, ok)
	assert.Equal(t, "Stone Defender", m.Title)

	_, ok = MonsterByID("slime")
	assert.False(t, ok)

	for _, m := range MonstersByLevel(10) {
		assert.LessOrEqual(t, m.RequiredLevel, 10)
	}
	assert.Len(t, MonstersByRank(RankB), 2)
}
