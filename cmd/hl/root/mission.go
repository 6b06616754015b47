package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"hunterlog/internal/catalog"
	"hunterlog/internal/engine"
	"hunterlog/internal/ui"
)

func newMissionCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "mission",
		Aliases: []string{"dungeon", "m"},
		Short:   "Hunt monsters through multi-step dungeon missions",
	}
	cmd.AddCommand(
		newMonstersCmd(opts),
		newMissionStartCmd(opts),
		newMissionShowCmd(opts),
		newMissionStepCmd(opts),
		newMissionFailCmd(opts),
		newMissionHistoryCmd(opts),
	)
	return cmd
}

func newMonstersCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "monsters",
		Short: "List monsters and whether you can hunt them",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			monsters, err := svc.Monsters()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSkull, "Monsters"))
			for _, m := range monsters {
				fmt.Fprintf(out, "%s %-16s %s %s %s\n",
					ui.RankBadge(m.Rank),
					m.ID,
					m.Name,
					ui.MonsterStatusText(m.Status),
					ui.Muted.Render(fmt.Sprintf("(lvl %d, %d XP)", m.RequiredLevel, m.XPReward)),
				)
			}
			return nil
		},
	}
}

// parseStepSpec reads "description|days|habit,ids|quest,ids"; every field
// after the description is optional.
func parseStepSpec(svc *engine.Service, raw string) (engine.StepPlan, error) {
	parts := strings.Split(raw, "|")
	sp := engine.StepPlan{Description: strings.TrimSpace(parts[0])}
	if sp.Description == "" {
		return sp, fmt.Errorf("step %q: description is required", raw)
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || n <= 0 {
			return sp, fmt.Errorf("step %q: days must be a positive number", raw)
		}
		sp.RequiredDays = n
	}
	if len(parts) > 2 {
		for _, h := range splitList(parts[2]) {
			id, err := resolveHabit(svc, h)
			if err != nil {
				return sp, err
			}
			sp.HabitIDs = append(sp.HabitIDs, id)
		}
	}
	if len(parts) > 3 {
		quests, err := svc.Quests()
		if err != nil {
			return sp, err
		}
		ids := make([]string, len(quests))
		for i, q := range quests {
			ids[i] = q.ID
		}
		for _, q := range splitList(parts[3]) {
			id, err := resolveID("quest", ids, q)
			if err != nil {
				return sp, err
			}
			sp.QuestIDs = append(sp.QuestIDs, id)
		}
	}
	return sp, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func newMissionStartCmd(opts *globalOptions) *cobra.Command {
	var (
		steps []string
		title string
		desc  string
	)
	cmd := &cobra.Command{
		Use:   "start <monster-id>",
		Short: "Plan and start a dungeon mission",
		Example: `  hl mission start tank --step "Run 3 mornings|3|<habit-id>" --step "Rest day"
  hl mission start cerberus --step "Clear the gate|2||<quest-id>"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(steps) == 0 {
				return errors.New("at least one --step is required")
			}
			if _, ok := catalog.MonsterByID(args[0]); !ok {
				return fmt.Errorf("%w: %s", engine.ErrMonsterNotFound, args[0])
			}
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			plan := engine.MissionPlan{MonsterID: args[0], Title: title, Description: desc}
			for _, s := range steps {
				sp, err := parseStepSpec(svc, s)
				if err != nil {
					return err
				}
				plan.Steps = append(plan.Steps, sp)
			}
			m, err := svc.PlanMission(plan)
			if err != nil {
				return err
			}
			res, err := svc.StartDungeonMission(cmd.Context(), m)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printMission(out, res.Mission)
			printEvents(out, res.Events)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&steps, "step", nil, `Mission step as "description|days|habit ids|quest ids" (repeatable)`)
	cmd.Flags().StringVar(&title, "title", "", "Mission title")
	cmd.Flags().StringVar(&desc, "desc", "", "Mission description")
	return cmd
}

func newMissionShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active mission",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			m, err := svc.ActiveMission()
			if err != nil {
				return err
			}
			if m == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No active mission. Start one with: hl mission start <monster>"))
				return nil
			}
			printMission(cmd.OutOrStdout(), *m)
			return nil
		},
	}
}

func newMissionStepCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "step <step-id>",
		Short: "Record a day of progress on the active mission step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			m, err := svc.ActiveMission()
			if err != nil {
				return err
			}
			if m == nil {
				return engine.ErrNoActiveMission
			}
			ids := make([]string, len(m.Steps))
			for i, st := range m.Steps {
				ids[i] = st.ID
			}
			stepID, err := resolveID("step", ids, args[0])
			if err != nil {
				return err
			}
			res, err := svc.CompleteMissionStep(cmd.Context(), m.ID, stepID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printMission(out, res.Mission)
			printEvents(out, res.Events)
			return nil
		},
	}
}

func newMissionFailCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "fail",
		Aliases: []string{"abandon"},
		Short:   "Abandon the active mission",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			m, err := svc.ActiveMission()
			if err != nil {
				return err
			}
			if m == nil {
				return engine.ErrNoActiveMission
			}
			res, err := svc.FailDungeonMission(cmd.Context(), m.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Bad.Render(ui.IconSkull+" Mission failed:"), res.Mission.Title)
			printEvents(out, res.Events)
			return nil
		},
	}
}

func newMissionHistoryCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List finished missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			missions, err := svc.MissionHistory()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Mission history"))
			if len(missions) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No missions finished yet."))
			}
			for _, m := range missions {
				fmt.Fprintf(out, "%s %s %s\n", ui.MissionStatusText(m.Status), m.Title, ui.Muted.Render("("+m.MonsterID+")"))
			}
			return nil
		},
	}
}
