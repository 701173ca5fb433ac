package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
)

var (
	newName       string
	newPlayer     string
	newClass      string
	newType       string
	newHometown   string
	newTravelGoal string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a character",
	Long: `Create a level 1 character and save it. Without --file the character is
saved as <name>.json in the save directory.`,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newName, "name", "", "Character name (required)")
	newCmd.Flags().StringVar(&newPlayer, "player", "", "Player name")
	newCmd.Flags().StringVar(&newClass, "class", "", "Class, e.g. Minstrel")
	newCmd.Flags().StringVar(&newType, "type", "", "Type: Attack, Technical or Magic")
	newCmd.Flags().StringVar(&newHometown, "hometown", "", "Hometown")
	newCmd.Flags().StringVar(&newTravelGoal, "reason", "", "Reason for travel")
	_ = newCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
}

func runNew(cmd *cobra.Command, _ []string) error {
	svc, err := session(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	svc.NewCharacter(ctx)
	if err := svc.Edit(ctx, applyNewFlags); err != nil {
		return err
	}

	out, err := svc.Save(ctx, &sheet.SaveInput{Path: characterFile})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\nSaved to %s\n", svc.Current().DisplayTitle(), out.Path)
	return nil
}

func applyNewFlags(c *ryuutama.Character) error {
	c.Name = newName
	c.PlayerName = newPlayer
	c.Hometown = newHometown
	c.ReasonForTravel = newTravelGoal

	if newClass != "" {
		class, ok := ryuutama.LookupClass(newClass)
		if !ok {
			return errors.InvalidArgumentf("unknown class %q", newClass)
		}
		c.CharacterClass = class.Name
		c.ApplyClassSkills()
	}
	if newType != "" {
		t, ok := ryuutama.LookupCharacterType(newType)
		if !ok {
			return errors.InvalidArgumentf("unknown type %q", newType)
		}
		c.Type = t.Name
		c.ApplyTypeAbilities()
	}
	return nil
}

