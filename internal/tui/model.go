package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hunterlog/internal/engine"
	"hunterlog/internal/ui"
)

type pane int

const (
	paneHabits pane = iota
	paneQuests
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	profile *engine.UserProfile
	habits  []engine.Habit
	quests  []engine.Quest
	today   string

	focus    pane
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile engine.UserProfile
	habits  []engine.Habit
	quests  []engine.Quest
	today   string
	err     error
}

type habitDoneMsg struct {
	res *engine.HabitResult
	err error
}

type questDoneMsg struct {
	res *engine.QuestResult
	err error
}

type sweptMsg struct {
	res *engine.SweepResult
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.svc.Profile()
		if err != nil {
			return loadedMsg{err: err}
		}
		habits, err := m.svc.ActiveHabits()
		if err != nil {
			return loadedMsg{err: err}
		}
		quests, err := m.svc.Quests()
		if err != nil {
			return loadedMsg{err: err}
		}
		open := quests[:0]
		for _, q := range quests {
			if !q.Completed {
				open = append(open, q)
			}
		}
		return loadedMsg{profile: p, habits: habits, quests: open, today: m.svc.Today()}
	}
}

func (m boardModel) completeHabitCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteHabit(m.ctx, id, nil)
		return habitDoneMsg{res: res, err: err}
	}
}

func (m boardModel) completeQuestCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteQuest(m.ctx, id)
		return questDoneMsg{res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = &msg.profile
		m.habits = msg.habits
		m.quests = msg.quests
		m.today = msg.today
		m.clampSelection()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case habitDoneMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		switch {
		case msg.res.AlreadyCompleted:
			m.lastLog = "Already done today."
		case msg.res.Partial:
			m.lastLog = fmt.Sprintf("Partial progress toward goal %d.", msg.res.Goal)
		default:
			m.lastLog = summarize(msg.res.Events)
		}
		return m, m.loadCmd()
	case questDoneMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = summarize(msg.res.Events)
		return m, m.loadCmd()
	case sweptMsg:
		if msg.res != nil && !msg.res.Skipped {
			m.lastLog = fmt.Sprintf("Daily check: %d missed, -%d XP.", len(msg.res.MissedHabits), msg.res.XPDeducted)
			return m, m.loadCmd()
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "tab":
			if m.focus == paneHabits {
				m.focus = paneQuests
			} else {
				m.focus = paneHabits
			}
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.rowCount()-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			return m.completeSelected()
		}
	}
	return m, nil
}

func (m boardModel) completeSelected() (tea.Model, tea.Cmd) {
	if m.selected < 0 || m.selected >= m.rowCount() {
		return m, nil
	}
	if m.focus == paneHabits {
		h := m.habits[m.selected]
		if h.CompletedOn(m.today) {
			m.lastLog = "Already done today."
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completing %s…", h.Name)
		return m, m.completeHabitCmd(h.ID)
	}
	q := m.quests[m.selected]
	if !q.Completable() {
		m.lastLog = fmt.Sprintf("%s needs %d/%d progress.", q.Title, q.Progress, q.RequiredProgress)
		return m, nil
	}
	m.lastLog = fmt.Sprintf("Completing %s…", q.Title)
	return m, m.completeQuestCmd(q.ID)
}

func (m boardModel) rowCount() int {
	if m.focus == paneHabits {
		return len(m.habits)
	}
	return len(m.quests)
}

func (m *boardModel) clampSelection() {
	if m.selected >= m.rowCount() {
		m.selected = m.rowCount() - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// summarize keeps the most notable event for the footer.
func summarize(events []engine.Event) string {
	if len(events) == 0 {
		return "Done."
	}
	parts := make([]string, 0, len(events))
	for _, e := range events {
		parts = append(parts, e.Message)
	}
	return strings.Join(parts, " · ")
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 30
	if m.width > 0 {
		leftW = max(18, min(leftW, m.width/2))
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.profile == nil {
		return "hunterlog: loading…"
	}
	st := m.profile.Stats
	return fmt.Sprintf("hunterlog | %s %s | Level %d | XP %d/%d %s",
		m.profile.Username, ui.RankBadge(m.profile.Rank), st.Level, st.XP, st.XPToNextLevel,
		ui.XPBar(st.XP, st.XPToNextLevel, 24))
}

func (m boardModel) renderSidebar() string {
	if m.profile == nil {
		return "Stats\n\nLoading…"
	}
	st := m.profile.Stats
	lines := []string{"Categories"}
	for _, c := range engine.Categories {
		lines = append(lines, fmt.Sprintf("- %-8s %s", c, progressBar(st.CategoriesProgress[c], engine.CategoryProgressMax, 12)))
	}
	lines = append(lines, "", fmt.Sprintf("Day streak: %d (best %d)", st.DayStreak, st.StreakRecord))
	if am := m.profile.ActiveMission; am != nil {
		lines = append(lines, "", "Mission", "- "+am.Title,
			fmt.Sprintf("- steps %d/%d", am.CompletedSteps(), len(am.Steps)))
	}
	lines = append(lines, "", "Keys",
		"- ↑/↓ or j/k: move",
		"- tab: habits/quests",
		"- c/space: complete",
		"- r: refresh",
		"- q: quit",
	)
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, m.paneTitle("Today's Habits", paneHabits))
	if len(m.habits) == 0 {
		out = append(out, "(no habits scheduled today)")
	}
	for i, h := range m.habits {
		mark := "[ ]"
		if h.CompletedOn(m.today) {
			mark = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s (streak %d, +%d XP)", m.cursor(paneHabits, i), mark, h.Name, h.Streak, h.XPReward))
	}

	out = append(out, "", m.paneTitle("Open Quests", paneQuests))
	if len(m.quests) == 0 {
		out = append(out, "(no open quests)")
	}
	for i, q := range m.quests {
		out = append(out, fmt.Sprintf("%s%s %s (+%d XP)", m.cursor(paneQuests, i), progressBar(q.Progress, q.RequiredProgress, 6), q.Title, q.XPReward))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) paneTitle(title string, p pane) string {
	if m.focus == p {
		return "▸ " + title
	}
	return "  " + title
}

func (m boardModel) cursor(p pane, i int) string {
	if m.focus == p && m.selected == i {
		return "> "
	}
	return "  "
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	value = max(0, min(value, total))
	filled := min(value*width/total, width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
