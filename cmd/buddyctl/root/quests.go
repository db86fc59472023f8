package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quests",
		Short: "List today's quests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Daily quests"))
			for _, q := range svc.Quests(ctx) {
				fmt.Fprintln(out, ui.QuestLine(q))
			}
			return nil
		},
	}
}

func newClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim <quest-id>",
		Short: "Claim the reward of a finished quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			claim, err := svc.ClaimQuest(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if claim.Outcome == game.OutcomeUnchanged {
				fmt.Fprintln(out, ui.Muted.Render("already claimed: "+claim.Quest.Title))
				return nil
			}
			fmt.Fprintf(out, "%s %s +%d xp, +%d coins\n", ui.IconTrophy, ui.Key.Render(claim.Quest.Title), claim.Reward.XP, claim.Reward.Coins)
			if claim.Level.Up() {
				fmt.Fprintf(out, "%s %d → %d\n", ui.BadgeLevelUp, claim.Level.From, claim.Level.To)
			}
			return nil
		},
	}
}
