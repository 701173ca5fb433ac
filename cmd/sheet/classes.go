package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
)

var classesCmd = &cobra.Command{
	Use:   "classes [class]",
	Short: "List classes and types, or show one class's skills",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClasses,
}

func runClasses(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		class, ok := ryuutama.LookupClass(args[0])
		if !ok {
			return errors.NotFoundf("class %q not found", args[0])
		}
		fmt.Fprintf(out, "%s\n", class.Name)
		for _, skill := range class.Skills {
			fmt.Fprintf(out, "\n  %s\n", skill.Name)
			fmt.Fprintf(out, "    %s\n", skill.Description)
			if skill.Effect != "" {
				fmt.Fprintf(out, "    Effect: %s\n", skill.Effect)
			}
			if skill.StatUsed != "" {
				fmt.Fprintf(out, "    Check: %s, target %s\n", skill.StatUsed, skill.TargetNumber)
			}
			if skill.Usable != "" {
				fmt.Fprintf(out, "    Usable: %s\n", skill.Usable)
			}
		}
		return nil
	}

	fmt.Fprintln(out, "Classes")
	for _, name := range ryuutama.ClassNames() {
		class, _ := ryuutama.LookupClass(name)
		fmt.Fprintf(out, "  %-10s %s\n", class.Name, strings.Join(class.SkillNames(), ", "))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Types")
	for _, name := range ryuutama.CharacterTypeNames() {
		t, _ := ryuutama.LookupCharacterType(name)
		fmt.Fprintf(out, "  %s\n", t.Name)
		for _, line := range strings.Split(t.Abilities, "\n") {
			fmt.Fprintf(out, "    %s\n", line)
		}
	}
	return nil
}
