package root

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hunterlog/internal/engine"
	"hunterlog/internal/ui"
)

func newQuestCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quest",
		Aliases: []string{"quests", "q"},
		Short:   "Manage quests built from habits",
	}
	cmd.AddCommand(
		newQuestAddCmd(opts),
		newQuestListCmd(opts),
		newQuestDoneCmd(opts),
	)
	return cmd
}

func newQuestAddCmd(opts *globalOptions) *cobra.Command {
	var (
		desc     string
		habits   []string
		xp       int
		required int
		typ      string
		expires  string
		penalty  string
	)
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a quest",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("quest title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			qt, err := engine.ParseQuestType(typ)
			if err != nil {
				return err
			}
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.NewQuest{
				Title:            strings.Join(args, " "),
				Description:      desc,
				XPReward:         xp,
				Type:             qt,
				RequiredProgress: required,
				Penalty:          penalty,
			}
			for _, h := range habits {
				id, err := resolveHabit(svc, h)
				if err != nil {
					return err
				}
				in.HabitIDs = append(in.HabitIDs, id)
			}
			if expires != "" {
				at, err := parseExpiry(expires, time.Now().In(svc.Location()))
				if err != nil {
					return err
				}
				in.ExpiresAt = &at
			}
			q, err := svc.AddQuest(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconPlus+" Added quest"), q.Title, ui.Muted.Render("("+shortID(q.ID)+")"))
			return nil
		},
	}
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringSliceVar(&habits, "habits", nil, "Habit ids that advance this quest")
	cmd.Flags().IntVar(&xp, "xp", 0, "XP reward (default 3)")
	cmd.Flags().IntVar(&required, "required", 0, "Habit completions needed (default 1)")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "daily|weekly|achievement")
	cmd.Flags().StringVar(&expires, "expires", "", "Expiry as a duration (48h) or date (2006-01-02)")
	cmd.Flags().StringVar(&penalty, "penalty", "", "Penalty text shown when the quest fails")
	return cmd
}

// parseExpiry accepts a Go duration, a date or a date and time.
func parseExpiry(s string, now time.Time) (time.Time, error) {
	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 {
			return time.Time{}, fmt.Errorf("expiry must be in the future: %q", s)
		}
		return now.Add(d), nil
	}
	for _, layout := range []string{time.DateOnly, "2006-01-02 15:04", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
			if layout == time.DateOnly {
				t = t.Add(24*time.Hour - time.Second)
			}
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid expiry %q (use 48h or 2006-01-02)", s)
}

func newQuestListCmd(opts *globalOptions) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List open quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			quests, err := svc.Quests()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quests"))
			shown := 0
			for _, q := range quests {
				if q.Completed && !all {
					continue
				}
				printQuest(out, q)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No open quests."))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed quests")
	return cmd
}

func newQuestDoneCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <quest-id>",
		Short: "Complete a quest that has reached its required progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			quests, err := svc.Quests()
			if err != nil {
				return err
			}
			ids := make([]string, len(quests))
			for i, q := range quests {
				ids[i] = q.ID
			}
			id, err := resolveID("quest", ids, args[0])
			if err != nil {
				return err
			}
			res, err := svc.CompleteQuest(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Good.Render(ui.IconTrophy+" Quest complete"))
			printEvents(out, res.Events)
			return nil
		},
	}
}
