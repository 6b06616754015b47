package root

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hunterlog/internal/engine"
	"hunterlog/internal/logging"
	"hunterlog/internal/scheduler"
	"hunterlog/internal/ui"
)

func newSweepCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Run today's penalty check for missed habits, expired quests and missions",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CheckIncompleteItems(cmd.Context())
			if err != nil {
				return err
			}
			printSweep(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func printSweep(w io.Writer, res *engine.SweepResult) {
	if res.Skipped {
		fmt.Fprintln(w, ui.Muted.Render(ui.IconInfo+" Already checked "+res.Date))
		return
	}
	fmt.Fprintln(w, ui.Heading(ui.IconWarn, "Penalty check "+res.Date))
	fmt.Fprintln(w, ui.LabelValue("Active habits", res.ActiveHabits))
	fmt.Fprintln(w, ui.LabelValue("Missed", len(res.MissedHabits)))
	if res.XPDeducted > 0 {
		fmt.Fprintln(w, ui.LabelValue("XP lost", ui.Bad.Render(fmt.Sprintf("-%d", res.XPDeducted))))
	}
	if n := len(res.ExpiredQuests); n > 0 {
		fmt.Fprintln(w, ui.LabelValue("Expired quests", n))
	}
	printEvents(w, res.Events)
}

func newWatchCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Stay running and sweep at every local midnight",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			daily := scheduler.NewDaily("penalty-sweep", svc.Location(), func(ctx context.Context) error {
				res, err := svc.CheckIncompleteItems(ctx)
				if err != nil {
					return err
				}
				printSweep(out, res)
				return nil
			})
			daily.Start(ctx)
			logging.FromContext(ctx).Infow("Watching for midnight", "location", svc.Location().String())
			<-daily.Done()
			return nil
		},
	}
}
