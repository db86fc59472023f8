package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vytor/studybuddy/internal/ui"
)

const Version = "0.1.0"

var dbPath string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "buddyctl",
		Short:         "StudyBuddy from the terminal",
		Long:          "buddyctl drives the StudyBuddy game state stored in the local SQLite database.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (defaults to DB_PATH)")

	cmd.AddCommand(
		newStatusCmd(),
		newStartCmd(),
		newStopCmd(),
		newQuestsCmd(),
		newClaimCmd(),
		newShopCmd(),
		newBuyCmd(),
		newEquipCmd(),
		newAgendaCmd(),
		newImportCmd(),
		newResetCmd(),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
