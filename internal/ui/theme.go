package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hunterlog/internal/catalog"
	"hunterlog/internal/engine"
)

// hunterlog theme (CLI + TUI).

const (
	IconQuest   = "🗺️"
	IconSparkle = "✨"
	IconPlus    = "➕"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconBox     = "📦"
	IconLoop    = "🔁"
	IconScroll  = "📜"
	IconSword   = "⚔️"
	IconSkull   = "💀"
	IconBell    = "🔔"
	IconFire    = "🔥"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cPurple  = lipgloss.Color("135")
	cCyan    = lipgloss.Color("45")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

var rarityColor = map[catalog.Rarity]lipgloss.Color{
	catalog.RarityCommon:    cMuted,
	catalog.RarityUncommon:  cGood,
	catalog.RarityRare:      cCyan,
	catalog.RarityEpic:      cPurple,
	catalog.RarityLegendary: cGold,
	catalog.RarityMythic:    cBad,
}

var rankColor = map[catalog.Rank]lipgloss.Color{
	catalog.RankE: cMuted,
	catalog.RankD: cGood,
	catalog.RankC: cCyan,
	catalog.RankB: cPrimary,
	catalog.RankA: cPurple,
	catalog.RankS: cGold,
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RankBadge renders a rank like "[S]".
func RankBadge(r catalog.Rank) string {
	c, ok := rankColor[r]
	if !ok {
		c = cMuted
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render("[" + string(r) + "]")
}

func RarityText(r catalog.Rarity) string {
	c, ok := rarityColor[r]
	if !ok {
		c = cMuted
	}
	return lipgloss.NewStyle().Foreground(c).Render(string(r))
}

// ItemName renders an item name in its rarity color.
func ItemName(it catalog.RewardItem) string {
	c, ok := rarityColor[it.Rarity]
	if !ok {
		c = cMuted
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Render(it.Name)
}

func MissionStatusText(s engine.MissionStatus) string {
	switch s {
	case engine.MissionCompleted:
		return Good.Render("completed")
	case engine.MissionInProgress:
		return H2.Render("in progress")
	case engine.MissionFailed:
		return Bad.Render("failed")
	default:
		return Muted.Render("not started")
	}
}

func StepStatusText(s engine.StepStatus) string {
	switch s {
	case engine.StepCompleted:
		return Good.Render("done")
	case engine.StepInProgress:
		return Warn.Render("active")
	default:
		return Muted.Render("waiting")
	}
}

func MonsterStatusText(s engine.MonsterStatus) string {
	switch s {
	case engine.MonsterAvailable:
		return Good.Render("available")
	case engine.MonsterActive:
		return H2.Render("active")
	case engine.MonsterDefeated:
		return Gold.Render("defeated")
	default:
		return Muted.Render("locked")
	}
}

func CategoryIcon(c engine.HabitCategory) string {
	switch c {
	case engine.CategorySleep:
		return "😴"
	case engine.CategoryWorkout:
		return "💪"
	case engine.CategoryHygiene:
		return "🚿"
	case engine.CategorySkincare:
		return "🧴"
	default:
		return IconLoop
	}
}

func NotificationIcon(t engine.NotificationType) string {
	switch t {
	case engine.NotifyAchievement:
		return IconTrophy
	case engine.NotifyLevelUp:
		return IconSparkle
	case engine.NotifyStreak:
		return IconFire
	case engine.NotifyQuest:
		return IconScroll
	case engine.NotifyPenalty:
		return IconSkull
	default:
		return IconInfo
	}
}

// EventLine renders one engine event as a single styled line.
func EventLine(e engine.Event) string {
	switch e.Kind {
	case engine.EventLevelUp:
		return BadgeLevelUp + " " + Gold.Render(e.Message)
	case engine.EventRankUp:
		return Gold.Render(IconTrophy+" "+e.Message) + " " + RankBadge(e.Rank)
	case engine.EventItemGranted:
		if e.Item != nil {
			return Good.Render(IconBox+" Obtained ") + ItemName(*e.Item) + " " + Muted.Render("("+string(e.Item.Rarity)+")")
		}
		return Good.Render(IconBox + " " + e.Message)
	case engine.EventHabitCompleted, engine.EventQuestCompleted, engine.EventStepCompleted:
		return Good.Render(IconDone + " " + e.Message)
	case engine.EventQuestReady:
		return H2.Render(IconScroll + " " + e.Message)
	case engine.EventAchievementUnlocked, engine.EventTitleEarned:
		return Gold.Render(IconTrophy + " " + e.Message)
	case engine.EventMissionStarted, engine.EventStepProgress:
		return H2.Render(IconSword + " " + e.Message)
	case engine.EventMissionCompleted:
		return Gold.Render(IconSword + " " + e.Message)
	case engine.EventMissionFailed, engine.EventPenalty:
		return Bad.Render(IconSkull + " " + e.Message)
	case engine.EventHabitPartial:
		return Warn.Render(IconBolt + " " + e.Message)
	default:
		return e.Message
	}
}

// XPBar renders xp/threshold as a fixed-width bar.
func XPBar(xp, threshold, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := 0
	if threshold > 0 {
		filled = xp * width / threshold
	}
	filled = max(0, min(filled, width))
	return Good.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}
