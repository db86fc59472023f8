package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vytor/studybuddy/internal/ui"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <subject>",
		Short: "Start a study session",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sess, err := svc.StartSession(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconClock, "Studying "+sess.Subject))
			for i, q := range sess.Questions {
				fmt.Fprintf(out, "%d. %s\n", i+1, q)
			}
			return nil
		},
	}
}

func newStopCmd() *cobra.Command {
	var upload bool
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Finish the open study session and collect rewards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sum, err := svc.StopSession(ctx, upload)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SessionSummary(sum))
			return nil
		},
	}
	cmd.Flags().BoolVar(&upload, "upload", false, "count the session as finished with a screenshot upload")
	return cmd
}
