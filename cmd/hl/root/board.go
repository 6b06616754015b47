package root

import (
	"github.com/spf13/cobra"

	"hunterlog/internal/tui"
)

func newBoardCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := openService(cmd, opts)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(cmd.Context(), svc, cmd.OutOrStdout())
		},
	}
}
