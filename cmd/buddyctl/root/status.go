package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vytor/studybuddy/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the buddy, level, coins and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Status(svc.State(ctx)))
			if cur := svc.CurrentSession(ctx); cur.Active {
				fmt.Fprintln(out, ui.SessionLine(*cur.Session, *cur.Pomodoro))
			}
			return nil
		},
	}
}
