package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"hunterlog/internal/engine"
	"hunterlog/internal/ui"
)

func newNotificationsCmd(opts *globalOptions) *cobra.Command {
	var (
		all      bool
		markRead bool
	)
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"inbox", "n"},
		Short:   "Show notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.Notifications()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBell, "Notifications"))
			shown := 0
			for _, n := range list {
				if n.Read && !all {
					continue
				}
				printNotification(cmd, n)
				shown++
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing new."))
			}
			if markRead {
				return svc.MarkAllNotificationsRead(cmd.Context())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include read notifications")
	cmd.Flags().BoolVar(&markRead, "mark-read", false, "Mark everything read after listing")
	return cmd
}

func printNotification(cmd *cobra.Command, n engine.Notification) {
	title := ui.H2.Render(n.Title)
	if n.Read {
		title = ui.Muted.Render(n.Title)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n  %s\n",
		ui.NotificationIcon(n.Type),
		ui.Muted.Render(shortID(n.ID)),
		title,
		ui.Muted.Render(n.CreatedAt.Format("2006-01-02 15:04")),
		n.Message,
	)
}

func newDismissCmd(opts *globalOptions) *cobra.Command {
	var read bool
	cmd := &cobra.Command{
		Use:   "dismiss <notification-id>",
		Short: "Dismiss (or only mark read) a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := svc.Notifications()
			if err != nil {
				return err
			}
			ids := make([]string, len(list))
			for i, n := range list {
				ids[i] = n.ID
			}
			id, err := resolveID("notification", ids, args[0])
			if err != nil {
				return err
			}
			if read {
				err = svc.MarkNotificationRead(cmd.Context(), id)
			} else {
				err = svc.DismissNotification(cmd.Context(), id)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone), shortID(id))
			return nil
		},
	}
	cmd.Flags().BoolVar(&read, "read", false, "Mark read instead of removing")
	return cmd
}
