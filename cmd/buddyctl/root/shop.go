package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vytor/studybuddy/internal/game"
	"github.com/vytor/studybuddy/internal/ui"
)

func newShopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "List the shop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconShop, "Shop"))
			fmt.Fprintln(out, ui.LabelValue("Balance", fmt.Sprintf("%s %d", ui.IconCoin, svc.State(ctx).Progress.Currency)))
			for _, l := range svc.Shop(ctx) {
				fmt.Fprintln(out, ui.ShopLine(l))
			}
			return nil
		},
	}
}

func newBuyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a shop item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.BuyItem(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s bought %s %s, %s %d left\n",
				ui.IconDone, p.Item.Emoji, ui.Key.Render(p.Item.Name), ui.IconCoin, p.Balance)
			return nil
		},
	}
}

func newEquipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equip <item-id>",
		Short: "Put an owned accessory, pet or theme on the buddy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			outcome, err := svc.EquipItem(ctx, args[0])
			if err != nil {
				return err
			}
			if outcome == game.OutcomeUnchanged {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("already equipped: "+args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconSparkle+" equipped "+ui.Key.Render(args[0]))
			return nil
		},
	}
}
