package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a character sheet",
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, _ []string) error {
	svc, err := loadSession(cmd)
	if err != nil {
		return err
	}
	return printSheet(cmd.OutOrStdout(), svc.Current())
}

func printSheet(out io.Writer, c *ryuutama.Character) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "%s\n", c.DisplayTitle())
	fmt.Fprintf(w, "Player:\t%s\tLevel:\t%d\tExp:\t%d\n", c.PlayerName, c.Level, c.Exp)
	fmt.Fprintf(w, "Class:\t%s\tType:\t%s\tGold:\t%d\n", c.CharacterClass, c.Type, c.Gold)
	if c.ClassSkill != "" {
		fmt.Fprintf(w, "Class skills:\t%s\n", c.ClassSkill)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "STR\t%s (%d)\tmax %d\tcurrent %d\n", c.Str.DieSize, c.Str.Value, c.Str.Max, c.Str.Current)
	fmt.Fprintf(w, "DEX\t%s (%d)\n", c.Dex.DieSize, c.Dex.Value)
	fmt.Fprintf(w, "INT\t%s (%d)\n", c.Int.DieSize, c.Int.Value)
	fmt.Fprintf(w, "SPI\t%s (%d)\tmax %d\tcurrent %d\n", c.Spi.DieSize, c.Spi.Value, c.Spi.Max, c.Spi.Current)
	fmt.Fprintf(w, "HP\t%d/%d\tMP\t%d/%d\n", c.HP.Current, c.HP.Max, c.MP.Current, c.MP.Max)
	fmt.Fprintf(w, "Initiative\t%d\tFumble points\t%d\n", c.Initiative, c.FumblePoints)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Equipment")
	for _, weapon := range c.Weapons {
		fmt.Fprintf(w, "  weapon\t%s\t%s\taccuracy %+d\tdamage %+d\n", weapon.ID, weapon.Name, weapon.Accuracy, weapon.Damage)
	}
	if c.Shield != nil {
		fmt.Fprintf(w, "  shield\t%s\t%s\tdefense %d\n", c.Shield.ID, c.Shield.Name, c.Shield.Defense)
	}
	if c.Armor != nil {
		fmt.Fprintf(w, "  armor\t%s\t%s\tdefense %d\tpenalty %d\n", c.Armor.ID, c.Armor.Name, c.Armor.DefensePoints, c.Armor.Penalty)
	}
	for _, item := range c.TravelersOutfit {
		fmt.Fprintf(w, "  item\t%s\t%s\tsize %d\n", item.ID, item.Name, item.Size)
	}
	overloaded := ""
	if c.Overloaded() {
		overloaded = " (overloaded)"
	}
	fmt.Fprintf(w, "  carrying\t%d/%d%s\n", c.TotalOutfitSize(), c.CarryingCapacity(), overloaded)
	fmt.Fprintln(w)

	printTravel(w, c)

	statuses := make([]string, 0, len(c.StatusEffects))
	for _, key := range c.ActiveStatuses() {
		statuses = append(statuses, ryuutama.DisplayName(string(key)))
	}
	if len(statuses) == 0 {
		statuses = append(statuses, "none")
	}
	fmt.Fprintf(w, "Status effects:\t%s\n", strings.Join(statuses, ", "))

	return w.Flush()
}

func printTravel(w io.Writer, c *ryuutama.Character) {
	terrain, weather := "none", "none"
	if c.CurrentTerrain != "" {
		terrain = ryuutama.DisplayName(string(c.CurrentTerrain))
	}
	if c.CurrentWeather != "" {
		weather = ryuutama.DisplayName(string(c.CurrentWeather))
	}
	fmt.Fprintf(w, "Terrain:\t%s\tWeather:\t%s\n", terrain, weather)
	if target := c.TopographyTarget(); target > 0 {
		fmt.Fprintf(w, "Journey target:\t%d\n", target)
	}

	effects := c.Effects()
	parts := make([]string, 0, len(effects))
	for _, key := range ryuutama.StatKeys() {
		if effects[key] != 0 {
			parts = append(parts, fmt.Sprintf("%s %+d", strings.ToUpper(string(key)), effects[key]))
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "Environment effects:\t%s\n", strings.Join(parts, ", "))
	}
	fmt.Fprintf(w, "Travel checks:\tmovement %d\tdirection %d\tcamp %d\n",
		c.TravelCheckBonus(ryuutama.CheckMovement),
		c.TravelCheckBonus(ryuutama.CheckDirection),
		c.TravelCheckBonus(ryuutama.CheckCamp))
}
