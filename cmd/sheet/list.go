package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved characters, newest first",
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of characters (default from RYUUTAMA_RECENT_LIMIT)")
}

func runList(cmd *cobra.Command, _ []string) error {
	svc, err := session(cmd)
	if err != nil {
		return err
	}

	out, err := svc.ListRecent(cmd.Context(), &sheet.ListRecentInput{Limit: listLimit})
	if err != nil {
		return err
	}

	if len(out.Previews) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved characters")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLEVEL\tCLASS\tTYPE\tMODIFIED\tPATH")
	for _, p := range out.Previews {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
			p.Name, p.Level, p.Class, p.Type, p.LastModified.Format("2006-01-02 15:04"), p.Path)
	}
	return w.Flush()
}
