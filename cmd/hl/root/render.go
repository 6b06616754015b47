package root

import (
	"fmt"
	"io"

	"hunterlog/internal/engine"
	"hunterlog/internal/ui"
)

func printEvents(w io.Writer, events []engine.Event) {
	for _, e := range events {
		fmt.Fprintln(w, ui.EventLine(e))
	}
}

func printHabit(w io.Writer, h engine.Habit, today string) {
	mark := "[ ]"
	if h.CompletedOn(today) {
		mark = ui.Good.Render("[x]")
	}
	goal := ""
	if h.CompletionGoal != nil {
		goal = fmt.Sprintf(", goal %d", *h.CompletionGoal)
	}
	fmt.Fprintf(w, "%s %s %s %s %s\n",
		mark,
		ui.Muted.Render(shortID(h.ID)),
		ui.CategoryIcon(h.Category),
		h.Name,
		ui.Muted.Render(fmt.Sprintf("(%s, streak %d, +%d XP%s)", h.Frequency.Type, h.Streak, h.XPReward, goal)),
	)
}

func printQuest(w io.Writer, q engine.Quest) {
	state := ui.Muted.Render(fmt.Sprintf("%d/%d", q.Progress, q.RequiredProgress))
	switch {
	case q.Completed:
		state = ui.Good.Render("done")
	case q.Completable():
		state = ui.H2.Render("ready")
	}
	extra := ""
	if q.ExpiresAt != nil {
		extra = " expires " + q.ExpiresAt.Format("2006-01-02 15:04")
	}
	fmt.Fprintf(w, "%s %s %s %s\n",
		ui.Muted.Render(shortID(q.ID)),
		state,
		q.Title,
		ui.Muted.Render(fmt.Sprintf("(%s, +%d XP%s)", q.Type, q.XPReward, extra)),
	)
}

func printMission(w io.Writer, m engine.DungeonMission) {
	fmt.Fprintf(w, "%s %s %s\n", ui.Heading(ui.IconSword, m.Title), ui.Muted.Render(shortID(m.ID)), ui.MissionStatusText(m.Status))
	if m.Description != "" {
		fmt.Fprintln(w, ui.Muted.Render(m.Description))
	}
	fmt.Fprintln(w, ui.LabelValue("Monster", m.MonsterID))
	fmt.Fprintln(w, ui.LabelValue("Reward", fmt.Sprintf("%d XP", m.XPReward)))
	if m.DeadlineAt != nil {
		fmt.Fprintln(w, ui.LabelValue("Deadline", m.DeadlineAt.Format("2006-01-02 15:04")))
	}
	for i, st := range m.Steps {
		fmt.Fprintf(w, "  %d. %s %s %s %s\n", i+1,
			ui.StepStatusText(st.Status),
			ui.Muted.Render(shortID(st.ID)),
			st.Description,
			ui.Muted.Render(fmt.Sprintf("(%d/%d days)", st.CurrentProgress, st.RequiredDays)),
		)
	}
}
