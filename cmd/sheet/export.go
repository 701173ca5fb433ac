package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
)

var exportPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a character to PDF",
	Long: `Render the --file character to a PDF summary. Without --out the file is
written as <name>_<YYYYMMDD>.pdf in the save directory.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "", "PDF destination")
}

func runExport(cmd *cobra.Command, _ []string) error {
	svc, err := loadSession(cmd)
	if err != nil {
		return err
	}

	out, err := svc.Export(cmd.Context(), &sheet.ExportInput{Path: exportPath})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", svc.Current().DisplayTitle(), out.Path)
	return nil
}
