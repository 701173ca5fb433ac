package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
)

var abilityCmd = &cobra.Command{
	Use:   "ability <level> <text...>",
	Short: "Record the ability gained at a level",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAbility,
}

var recalculateInitiative bool

var initiativeCmd = &cobra.Command{
	Use:   "initiative",
	Short: "Show or recalculate initiative",
	Long: `Initiative defaults to DEX + INT when a character is created and is kept as
stored afterwards. Pass --recalc to overwrite it with the current formula value.`,
	Args: cobra.NoArgs,
	RunE: runInitiative,
}

func init() {
	initiativeCmd.Flags().BoolVar(&recalculateInitiative, "recalc", false, "Overwrite the stored value with DEX + INT")
}

func runAbility(cmd *cobra.Command, args []string) error {
	level, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.InvalidArgumentf("ability level %q is not a number", args[0])
	}
	text := strings.Join(args[1:], " ")

	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		if err := svc.Edit(ctx, func(c *ryuutama.Character) error {
			return c.SetAbility(level, text)
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Level %d: %s\n", level, text)
		return nil
	})
}

func runInitiative(cmd *cobra.Command, _ []string) error {
	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		if recalculateInitiative {
			if err := svc.Edit(ctx, func(c *ryuutama.Character) error {
				c.RecalculateInitiative()
				return nil
			}); err != nil {
				return err
			}
		}

		c := svc.Current()
		fmt.Fprintf(cmd.OutOrStdout(), "Initiative %d (DEX + INT = %d)\n", c.Initiative, c.ComputeInitiative())
		return nil
	})
}
