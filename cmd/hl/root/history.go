package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"hunterlog/internal/engine"
	"hunterlog/internal/ui"
)

func newHistoryCmd(opts *globalOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent progression events",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			done, err := svc.CompletionsSince(cmd.Context(), svc.Today())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "History"))
			fmt.Fprintln(out, ui.LabelValue("Completed today", done))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing recorded yet."))
				return nil
			}
			loc := svc.Location()
			for _, e := range entries {
				line := ui.EventLine(engine.Event{Kind: engine.EventKind(e.Kind), Message: e.Message, XP: e.XP, RefID: e.RefID})
				fmt.Fprintf(out, "%s %s\n", ui.Muted.Render(e.At.In(loc).Format("01-02 15:04")), line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", engine.DefaultHistoryLimit, "Number of events to show")
	return cmd
}
