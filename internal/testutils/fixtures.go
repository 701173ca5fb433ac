package testutils

import (
	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
)

// Character fixture stages
const (
	StageBlank    = "blank"
	StageNamed    = "named"
	StageEquipped = "equipped"
	StageTraveled = "traveled"

	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Kaede of the Reeds"
)

// CreateTestCharacter creates a named level 1 minstrel with default attributes
func CreateTestCharacter() *ryuutama.Character {
	c := ryuutama.NewCharacter()
	c.Name = TestCharacterName
	c.PlayerName = "Test Player"
	c.CharacterClass = ryuutama.ClassMinstrel
	c.Type = ryuutama.TypeTechnical
	return c
}

// CreateTestCharacterAtStage creates a character filled in up to the given stage
func CreateTestCharacterAtStage(stage string) *ryuutama.Character {
	if stage == StageBlank {
		return ryuutama.NewCharacter()
	}

	c := CreateTestCharacter()
	if stage == StageNamed {
		return c
	}

	c.AddWeapon(ryuutama.Weapon{
		Equipment: ryuutama.Equipment{ID: "weapon_1", Name: "Light Blade", Durability: 5},
		Accuracy:  1,
	})
	c.EquipArmor(&ryuutama.Armor{
		Equipment:     ryuutama.Equipment{ID: "armor_1", Name: "Cloth Armor", Durability: 3},
		DefensePoints: 1,
	})
	c.AddItem(ryuutama.Item{Equipment: ryuutama.Equipment{ID: "item_1", Name: "Rope (10m)", Durability: 3}, Size: 3})
	c.AddItem(ryuutama.Item{Equipment: ryuutama.Equipment{ID: "item_2", Name: "Cape", Durability: 3}, Size: 1})
	if stage == StageEquipped {
		return c
	}

	c.CurrentTerrain = "mountain"
	c.CurrentWeather = "cold"
	c.StatusEffects[ryuutama.StatusTired] = true
	c.ConditionChecks[ryuutama.StatStr] = 5
	return c
}
