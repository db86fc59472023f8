package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vytor/studybuddy/internal/ui"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the game state with a JSON export, legacy browser exports included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Import(ctx, raw); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" imported "+args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Status(svc.State(ctx)))
			return nil
		},
	}
}
