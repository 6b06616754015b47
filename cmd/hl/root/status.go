package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"hunterlog/internal/engine"
	"hunterlog/internal/ui"
)

func newStatusCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show hunter stats, rank and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Profile()
			if err != nil {
				return err
			}
			st := p.Stats
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Hunter Status"))
			fmt.Fprintln(out, ui.LabelValue("Hunter", p.Username+" "+ui.RankBadge(p.Rank)))
			fmt.Fprintln(out, ui.LabelValue("Level", st.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d/%d %s", st.XP, st.XPToNextLevel, ui.XPBar(st.XP, st.XPToNextLevel, 20))))
			if next := engine.NextRankLevel(st.Level); next > 0 {
				fmt.Fprintln(out, ui.LabelValue("Next rank", fmt.Sprintf("%s at level %d", engine.RankForLevel(next), next)))
			}
			fmt.Fprintln(out, ui.LabelValue("Day streak", fmt.Sprintf("%d (best habit streak %d)", st.DayStreak, st.StreakRecord)))
			fmt.Fprintln(out, ui.LabelValue("Completions", st.TotalCompletions))
			fmt.Fprintln(out, ui.LabelValue("Completion rate", fmt.Sprintf("%d%%", st.CompletionRate)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Categories"))
			for _, c := range engine.Categories {
				fmt.Fprintf(out, "- %s %-9s %s %d%%\n", ui.CategoryIcon(c), c, ui.XPBar(st.CategoriesProgress[c], engine.CategoryProgressMax, 10), st.CategoriesProgress[c])
			}
			fmt.Fprintln(out, "")

			unlocked := 0
			for _, a := range p.Achievements {
				if a.UnlockedAt != nil {
					unlocked++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			fmt.Fprintf(out, "- %d/%d unlocked\n", unlocked, len(p.Achievements))
			for _, a := range p.Achievements {
				if a.UnlockedAt == nil {
					fmt.Fprintf(out, "- next: %s %s %s\n", a.Icon, a.Title, ui.Muted.Render(fmt.Sprintf("(%d/%d)", a.Progress, a.RequiredProgress)))
					break
				}
			}
			if len(p.Titles) > 0 {
				fmt.Fprintln(out, ui.H2.Render("🎖️ Titles"))
				for _, t := range p.Titles {
					fmt.Fprintf(out, "- %s %s\n", t.Name, ui.RankBadge(t.Rank))
				}
			}
			fmt.Fprintln(out, "")

			if m := p.ActiveMission; m != nil {
				fmt.Fprintln(out, ui.LabelValue("Active mission", fmt.Sprintf("%s (%d/%d steps)", m.Title, m.CompletedSteps(), len(m.Steps))))
			}
			unread, err := svc.UnreadCount()
			if err != nil {
				return err
			}
			if unread > 0 {
				fmt.Fprintln(out, ui.LabelValue(ui.IconBell+" Unread", unread))
			}
			return nil
		},
	}
	return cmd
}
