package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
)

var (
	envTerrain string
	envWeather string
	envClear   bool
	envList    bool
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Select the current terrain and weather",
	Long: `Select the terrain and weather the character travels through and print the
combined attribute effects. --clear removes both selections; --list prints the
terrain and weather tables.`,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().StringVar(&envTerrain, "terrain", "", "Terrain key, e.g. deep_forest")
	envCmd.Flags().StringVar(&envWeather, "weather", "", "Weather key, e.g. rain")
	envCmd.Flags().BoolVar(&envClear, "clear", false, "Clear terrain and weather")
	envCmd.Flags().BoolVar(&envList, "list", false, "List terrain and weather types")
}

func runEnv(cmd *cobra.Command, _ []string) error {
	if envList {
		return printEnvironmentTables(cmd)
	}

	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		if envClear {
			if err := svc.SelectTerrain(ctx, ""); err != nil {
				return err
			}
			if err := svc.SelectWeather(ctx, ""); err != nil {
				return err
			}
		}
		if envTerrain != "" {
			if err := svc.SelectTerrain(ctx, ryuutama.TerrainKey(envTerrain)); err != nil {
				return err
			}
		}
		if envWeather != "" {
			if err := svc.SelectWeather(ctx, ryuutama.WeatherKey(envWeather)); err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		printTravel(w, svc.Current())
		return w.Flush()
	})
}

func printEnvironmentTables(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(w, "TERRAIN\tTARGET\tDESCRIPTION")
	for _, key := range ryuutama.Terrains() {
		t := ryuutama.TerrainInfo(key)
		fmt.Fprintf(w, "%s\t%d\t%s\n", key, t.TargetNumber, t.Description)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "WEATHER\tMODIFIER\tDESCRIPTION")
	for _, key := range ryuutama.WeatherTypes() {
		weather := ryuutama.WeatherInfo(key)
		fmt.Fprintf(w, "%s\t%+d\t%s\n", key, weather.TargetModifier, weather.Description)
	}
	return w.Flush()
}
