package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
)

var checkCmd = &cobra.Command{
	Use:   "check <str|dex|int|spi>",
	Short: "Roll a condition check",
	Long: `Roll the attribute's die, add its value and record the result. Every active
status effect recovered with that attribute is cured when the result is higher
than its recovery value.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	stat, err := parseStat(args[0])
	if err != nil {
		return err
	}

	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		out, err := svc.RollConditionCheck(ctx, &sheet.RollConditionCheckInput{Stat: stat})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s check: rolled %d, total %d\n",
			strings.ToUpper(string(out.Stat)), out.Roll, out.Total)
		for _, key := range out.Cured {
			fmt.Fprintf(cmd.OutOrStdout(), "%s has been cured\n", ryuutama.DisplayName(string(key)))
		}
		return nil
	})
}
