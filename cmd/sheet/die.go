package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
)

var dieCmd = &cobra.Command{
	Use:   "die <str|dex|int|spi> <up|down>",
	Short: "Step an attribute die up or down",
	Long: `Move an attribute die one size along d4, d6, d8, d10, d12, d20. The attribute
value becomes the new die's average, rounded half up. Stepping past either end
does nothing.`,
	Args: cobra.ExactArgs(2),
	RunE: runDie,
}

func runDie(cmd *cobra.Command, args []string) error {
	stat, err := parseStat(args[0])
	if err != nil {
		return err
	}
	dir, err := parseDirection(args[1])
	if err != nil {
		return err
	}

	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		stepped, err := svc.StepDie(ctx, stat, dir)
		if err != nil {
			return err
		}

		block, err := svc.Current().Stat(stat)
		if err != nil {
			return err
		}
		if !stepped {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is already %s\n", strings.ToUpper(string(stat)), block.DieSize)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s (%d)\n", strings.ToUpper(string(stat)), block.DieSize, block.Value)
		return nil
	})
}

func parseStat(arg string) (ryuutama.StatKey, error) {
	stat := ryuutama.StatKey(strings.ToLower(arg))
	if !stat.Valid() {
		return "", errors.InvalidArgumentf("unknown attribute %q, expected str, dex, int or spi", arg)
	}
	return stat, nil
}

func parseDirection(arg string) (ryuutama.Direction, error) {
	switch strings.ToLower(arg) {
	case "up":
		return ryuutama.StepUp, nil
	case "down":
		return ryuutama.StepDown, nil
	default:
		return 0, errors.InvalidArgumentf("unknown direction %q, expected up or down", arg)
	}
}
