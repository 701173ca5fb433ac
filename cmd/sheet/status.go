package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
)

var statusCmd = &cobra.Command{
	Use:   "status [<effect> <on|off>]",
	Short: "Show or toggle status effects",
	Long: `Without arguments, print the status effect table. With an effect and on or
off, toggle that effect on the --file character.`,
	Args: cobra.MatchAll(cobra.MaximumNArgs(2), func(_ *cobra.Command, args []string) error {
		if len(args) == 1 {
			return errors.InvalidArgument("expected an effect and on or off")
		}
		return nil
	}),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return printStatusTable(cmd)
	}

	key := ryuutama.StatusKey(strings.ToLower(args[0]))
	var active bool
	switch strings.ToLower(args[1]) {
	case "on":
		active = true
	case "off":
		active = false
	default:
		return errors.InvalidArgumentf("expected on or off, got %q", args[1])
	}

	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		if err := svc.SetStatus(ctx, key, active); err != nil {
			return err
		}
		state := "off"
		if active {
			state = "on"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is %s\n", ryuutama.DisplayName(string(key)), state)
		return nil
	})
}

func printStatusTable(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tTYPE\tCHECK\tRECOVERY\tEFFECT")
	for _, key := range ryuutama.StatusKeys() {
		e, _ := ryuutama.LookupStatusEffect(key)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			key, e.Category, strings.ToUpper(string(e.CheckStat)), e.RecoveryValue, e.Effect)
	}
	return w.Flush()
}
