package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vytor/studybuddy/internal/agenda"
	"github.com/vytor/studybuddy/internal/ui"
)

func newAgendaCmd() *cobra.Command {
	var view string
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show the study agenda",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch view {
			case agenda.ViewAll, agenda.ViewToday, agenda.ViewUpcoming:
			default:
				return fmt.Errorf("unknown view %q (want all, today or upcoming)", view)
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconAgenda, "Agenda ("+view+")"))
			items := svc.Agenda(ctx, view)
			if len(items) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("nothing planned"))
			}
			for _, it := range items {
				fmt.Fprintln(out, ui.AgendaLine(it, time.Local))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&view, "view", agenda.ViewUpcoming, "all, today or upcoming")
	return cmd
}
