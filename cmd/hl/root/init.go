package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hunterlog/internal/ui"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init <username>",
		Short: "Create your hunter profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("username is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			isNew, err := svc.IsNewUser()
			if err != nil {
				return err
			}
			if !isNew && !force {
				return errors.New("profile already initialized (use --force to start over)")
			}
			p, err := svc.InitializeUserProfile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Welcome, "+p.Username))
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.RankBadge(p.Rank)))
			fmt.Fprintln(out, ui.H2.Render("Starter items:"))
			for _, it := range p.Inventory {
				fmt.Fprintf(out, "- %s %s\n", ui.ItemName(it), ui.Muted.Render("("+it.ID+")"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Reinitialize an existing profile")
	return cmd
}
