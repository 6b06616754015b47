package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"hunterlog/internal/catalog"
	"hunterlog/internal/engine"
)

func TestXPBarWidth(t *testing.T) {
	for _, tc := range []struct{ xp, threshold int }{{0, 100}, {50, 100}, {99, 100}, {500, 100}, {5, 0}} {
		bar := XPBar(tc.xp, tc.threshold, 10)
		assert.Equal(t, 10, lipgloss.Width(bar), "xp=%d threshold=%d", tc.xp, tc.threshold)
	}
}

func TestEventLineIncludesItemName(t *testing.T) {
	item := catalog.RewardItem{Name: "Kamish's Wrath", Rarity: catalog.RarityUncommon}
	line := EventLine(engine.Event{Kind: engine.EventItemGranted, Item: &item})
	assert.True(t, strings.Contains(line, "Kamish's Wrath"))
}

func TestRankBadge(t *testing.T) {
	assert.Contains(t, RankBadge(catalog.RankS), "[S]")
}
