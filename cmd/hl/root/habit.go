package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hunterlog/internal/engine"
	"hunterlog/internal/ui"
)

func newHabitCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "habit",
		Aliases: []string{"habits", "h"},
		Short:   "Manage daily habits",
	}
	cmd.AddCommand(
		newHabitAddCmd(opts),
		newHabitListCmd(opts),
		newHabitDoneCmd(opts),
		newHabitEditCmd(opts),
		newHabitRmCmd(opts),
	)
	return cmd
}

type habitFlags struct {
	desc      string
	category  string
	frequency string
	days      string
	active    string
	xp        int
	goal      int
}

func (f *habitFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.desc, "desc", "", "Description")
	cmd.Flags().StringVarP(&f.category, "category", "c", "", "sleep|workout|hygiene|skincare|custom")
	cmd.Flags().StringVarP(&f.frequency, "frequency", "f", "", "daily|weekly|monthly|custom")
	cmd.Flags().StringVar(&f.days, "days", "", "Days of week for custom frequency (e.g. mon,wed,fri)")
	cmd.Flags().StringVar(&f.active, "active-days", "", "Only show the habit on these weekdays")
	cmd.Flags().IntVar(&f.xp, "xp", 0, "XP reward (default 50)")
	cmd.Flags().IntVar(&f.goal, "goal", 0, "Completion goal per day (value required to count)")
}

func newHabitAddCmd(opts *globalOptions) *cobra.Command {
	var f habitFlags
	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("habit name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			freq, err := engine.ParseFrequency(f.frequency)
			if err != nil {
				return err
			}
			days, err := engine.ParseWeekdays(f.days)
			if err != nil {
				return err
			}
			active, err := engine.ParseWeekdays(f.active)
			if err != nil {
				return err
			}
			in := engine.NewHabit{
				Name:        strings.Join(args, " "),
				Description: f.desc,
				Category:    engine.ParseCategory(f.category),
				Frequency:   engine.Frequency{Type: freq, Value: 1, DaysOfWeek: days},
				XPReward:    f.xp,
				ActiveDays:  active,
			}
			if cmd.Flags().Changed("goal") {
				in.CompletionGoal = &f.goal
			}

			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.AddHabit(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconPlus+" Added habit"), h.Name, ui.Muted.Render("("+shortID(h.ID)+")"))
			return nil
		},
	}
	f.bind(cmd)
	return cmd
}

func newHabitListCmd(opts *globalOptions) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List today's habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			list := svc.ActiveHabits
			heading := "Today's habits"
			if all {
				list = svc.Habits
				heading = "All habits"
			}
			habits, err := list()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconLoop, heading))
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No habits. Add one with: hl habit add <name>"))
				return nil
			}
			today := svc.Today()
			for _, h := range habits {
				printHabit(out, h, today)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include habits not scheduled today")
	return cmd
}

func newHabitDoneCmd(opts *globalOptions) *cobra.Command {
	var value int
	cmd := &cobra.Command{
		Use:   "done <habit-id>",
		Short: "Mark a habit complete for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveHabit(svc, args[0])
			if err != nil {
				return err
			}
			var v *int
			if cmd.Flags().Changed("value") {
				v = &value
			}
			res, err := svc.CompleteHabit(cmd.Context(), id, v)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case res.AlreadyCompleted:
				fmt.Fprintln(out, ui.Muted.Render(ui.IconInfo+" Already completed today"))
				return nil
			case res.Partial:
				logged := 0
				if res.Value != nil {
					logged = *res.Value
				}
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s Logged %d of %d, goal not reached", ui.IconInfo, logged, res.Goal)))
				return nil
			}
			fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Completed"), ui.Muted.Render(fmt.Sprintf("(streak %d)", res.Streak)))
			printEvents(out, res.Events)
			return nil
		},
	}
	cmd.Flags().IntVar(&value, "value", 0, "Value logged toward the habit's completion goal")
	return cmd
}

func newHabitEditCmd(opts *globalOptions) *cobra.Command {
	var (
		f        habitFlags
		name     string
		inactive bool
	)
	cmd := &cobra.Command{
		Use:   "edit <habit-id>",
		Short: "Edit a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveHabit(svc, args[0])
			if err != nil {
				return err
			}
			h, err := svc.Habit(id)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				h.Name = name
			}
			if flags.Changed("desc") {
				h.Description = f.desc
			}
			if flags.Changed("category") {
				h.Category = engine.ParseCategory(f.category)
			}
			if flags.Changed("frequency") {
				if h.Frequency.Type, err = engine.ParseFrequency(f.frequency); err != nil {
					return err
				}
			}
			if flags.Changed("days") {
				if h.Frequency.DaysOfWeek, err = engine.ParseWeekdays(f.days); err != nil {
					return err
				}
			}
			if flags.Changed("active-days") {
				if h.ActiveDays, err = engine.ParseWeekdays(f.active); err != nil {
					return err
				}
			}
			if flags.Changed("xp") {
				h.XPReward = f.xp
			}
			if flags.Changed("goal") {
				if f.goal == 0 {
					h.CompletionGoal = nil
				} else {
					h.CompletionGoal = &f.goal
				}
			}
			if flags.Changed("inactive") {
				h.IsActive = !inactive
			}
			h, err = svc.UpdateHabit(cmd.Context(), h)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated"), h.Name)
			return nil
		},
	}
	f.bind(cmd)
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Mark the habit inactive")
	return cmd
}

func newHabitRmCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <habit-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a habit and its history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveHabit(svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteHabit(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted"), shortID(id))
			return nil
		},
	}
}

func resolveHabit(svc *engine.Service, input string) (string, error) {
	habits, err := svc.Habits()
	if err != nil {
		return "", err
	}
	ids := make([]string, len(habits))
	for i, h := range habits {
		ids[i] = h.ID
	}
	return resolveID("habit", ids, input)
}
