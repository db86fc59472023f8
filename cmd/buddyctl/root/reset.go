package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vytor/studybuddy/internal/errors"
	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/repository/sqlite"
	"github.com/vytor/studybuddy/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe the stored game state and start over as a new player",
		Long:  "reset deletes the stored snapshot and seeds a fresh one. Session and reward history is kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.NewBadRequestError("reset wipes all progress, pass --yes to confirm")
			}

			ctx := context.Background()
			cfg, database, err := openDB()
			if err != nil {
				return err
			}
			name := cfg.StoreName
			if name == "" {
				name = game.DefaultStoreName
			}
			if err := sqlite.NewStateRepository(database.DB).Delete(ctx, name); err != nil {
				database.Close()
				return err
			}

			svc, cleanup, err := newService(ctx, cfg, database.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), ui.IconDone+" progress wiped")
			fmt.Fprintln(cmd.OutOrStdout(), ui.Status(svc.State(ctx)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
