// Package main is the entry point for the ryuutama-sheet command line
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/config"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
)

var (
	characterFile string
	cfg           *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ryuutama-sheet",
	Short: "Ryuutama character sheet editor",
	Long: `Create, edit and export Ryuutama character sheets stored as JSON documents.
Settings come from RYUUTAMA_* environment variables or a .env file.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load() // nolint:errcheck // a missing .env is fine

	err := rootCmd.ExecuteContext(context.Background())
	closeSession()
	if err != nil {
		slog.Debug("command failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", describe(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&characterFile, "file", "f", "", "Character document path")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dieCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(abilityCmd)
	rootCmd.AddCommand(initiativeCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(classesCmd)
}

func setup(_ *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Debug("configuration loaded",
		"store", cfg.Store,
		"save_dir", cfg.SaveDir)
	return nil
}

// describe turns a command failure into the text shown to the user
func describe(err error) string {
	var coded *errors.Error
	if errors.As(err, &coded) {
		return errors.UserMessage(err)
	}
	return err.Error()
}
