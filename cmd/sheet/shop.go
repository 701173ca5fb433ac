package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the shop and buy equipment",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the shop catalog",
	RunE:  runShopList,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <key>",
	Short: "Buy an item for the --file character",
	Args:  cobra.ExactArgs(1),
	RunE:  runShopBuy,
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
}

func runShopList(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tKIND\tPRICE\tSIZE\tEFFECT")
	for _, item := range ryuutama.ShopCatalog() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			item.Key, item.Name, item.Kind, item.Price, item.Size, item.Effect)
	}
	return w.Flush()
}

func runShopBuy(cmd *cobra.Command, args []string) error {
	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		out, err := svc.Buy(ctx, &sheet.BuyInput{ShopKey: args[0]})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Bought %s for %d gold, %d gold left\n",
			out.Item.Name, out.Item.Price, out.GoldRemaining)
		if out.Item.Kind == ryuutama.KindItem {
			warnOverloaded(cmd, svc.Current())
		}
		return nil
	})
}
