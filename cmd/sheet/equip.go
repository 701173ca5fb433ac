package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	"github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet"
)

var (
	equipName       string
	equipEffect     string
	equipDurability int
	equipAccuracy   int
	equipDamage     int
	equipDefense    int
	equipPenalty    int
	equipSize       int
)

var equipCmd = &cobra.Command{
	Use:   "equip",
	Short: "Manage weapons, shield, armor and traveler's outfit",
}

var equipWeaponCmd = &cobra.Command{
	Use:   "weapon",
	Short: "Add a weapon",
	RunE:  runEquipWeapon,
}

var equipItemCmd = &cobra.Command{
	Use:   "item",
	Short: "Add an item to the traveler's outfit",
	RunE:  runEquipItem,
}

var equipShieldCmd = &cobra.Command{
	Use:   "shield",
	Short: "Equip a shield, replacing the current one",
	RunE:  runEquipShield,
}

var equipArmorCmd = &cobra.Command{
	Use:   "armor",
	Short: "Equip armor, replacing the current one",
	RunE:  runEquipArmor,
}

var equipRemoveCmd = &cobra.Command{
	Use:   "remove <id|shield|armor>",
	Short: "Remove equipment by ID, or empty the shield or armor slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runEquipRemove,
}

func init() {
	for _, cmd := range []*cobra.Command{equipWeaponCmd, equipItemCmd, equipShieldCmd, equipArmorCmd} {
		cmd.Flags().StringVar(&equipName, "name", "", "Equipment name (required)")
		cmd.Flags().StringVar(&equipEffect, "effect", "", "Effect text")
		cmd.Flags().IntVar(&equipDurability, "durability", 0, "Durability")
		_ = cmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init
	}
	equipWeaponCmd.Flags().IntVar(&equipAccuracy, "accuracy", 0, "Accuracy modifier")
	equipWeaponCmd.Flags().IntVar(&equipDamage, "damage", 0, "Damage modifier")
	equipShieldCmd.Flags().IntVar(&equipDefense, "defense", 0, "Defense")
	equipArmorCmd.Flags().IntVar(&equipDefense, "defense", 0, "Defense points")
	equipArmorCmd.Flags().IntVar(&equipPenalty, "penalty", 0, "Penalty")
	equipItemCmd.Flags().IntVar(&equipSize, "size", 1, "Size")

	equipCmd.AddCommand(equipWeaponCmd)
	equipCmd.AddCommand(equipItemCmd)
	equipCmd.AddCommand(equipShieldCmd)
	equipCmd.AddCommand(equipArmorCmd)
	equipCmd.AddCommand(equipRemoveCmd)
}

func equipmentFromFlags() ryuutama.Equipment {
	return ryuutama.Equipment{
		Name:       equipName,
		Effect:     equipEffect,
		Durability: equipDurability,
	}
}

func runEquipWeapon(cmd *cobra.Command, _ []string) error {
	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		weapon, err := svc.AddWeapon(ctx, ryuutama.Weapon{
			Equipment: equipmentFromFlags(),
			Accuracy:  equipAccuracy,
			Damage:    equipDamage,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added weapon %s (%s)\n", weapon.Name, weapon.ID)
		return nil
	})
}

func runEquipItem(cmd *cobra.Command, _ []string) error {
	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		item, err := svc.AddItem(ctx, ryuutama.Item{
			Equipment: equipmentFromFlags(),
			Size:      equipSize,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added item %s (%s)\n", item.Name, item.ID)
		warnOverloaded(cmd, svc.Current())
		return nil
	})
}

func runEquipShield(cmd *cobra.Command, _ []string) error {
	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		if err := svc.SetShield(ctx, &ryuutama.Shield{
			Equipment: equipmentFromFlags(),
			Defense:   equipDefense,
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Equipped shield %s\n", equipName)
		return nil
	})
}

func runEquipArmor(cmd *cobra.Command, _ []string) error {
	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		if err := svc.SetArmor(ctx, &ryuutama.Armor{
			Equipment:     equipmentFromFlags(),
			DefensePoints: equipDefense,
			Penalty:       equipPenalty,
		}); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Equipped armor %s\n", equipName)
		return nil
	})
}

func runEquipRemove(cmd *cobra.Command, args []string) error {
	target := args[0]
	return editSession(cmd, func(ctx context.Context, svc sheet.Service) error {
		current := svc.Current()
		switch {
		case target == ryuutama.KindShield || (current.Shield != nil && current.Shield.ID == target):
			if err := svc.SetShield(ctx, nil); err != nil {
				return err
			}
		case target == ryuutama.KindArmor || (current.Armor != nil && current.Armor.ID == target):
			if err := svc.SetArmor(ctx, nil); err != nil {
				return err
			}
		default:
			err := svc.RemoveWeapon(ctx, target)
			if errors.IsNotFound(err) {
				err = svc.RemoveItem(ctx, target)
			}
			if err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", target)
		return nil
	})
}

func warnOverloaded(cmd *cobra.Command, c *ryuutama.Character) {
	if c.Overloaded() {
		fmt.Fprintf(cmd.OutOrStdout(), "Warning: outfit size %d exceeds carrying capacity %d\n",
			c.TotalOutfitSize(), c.CarryingCapacity())
	}
}
