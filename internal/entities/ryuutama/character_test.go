package ryuutama_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
)

type CharacterTestSuite struct {
	suite.Suite
	character *ryuutama.Character
}

func TestCharacterSuite(t *testing.T) {
	suite.Run(t, new(CharacterTestSuite))
}

func (s *CharacterTestSuite) SetupTest() {
	s.character = ryuutama.NewCharacter()
}

func (s *CharacterTestSuite) TestNewCharacterDefaults() {
	c := s.character
	s.Equal(1, c.Level)
	s.Equal(0, c.Exp)
	s.Equal(1000, c.Gold)
	s.Equal(12, c.Initiative)
	s.Equal(ryuutama.Pool{Max: 12, Current: 12}, c.HP)
	s.Equal(ryuutama.Pool{Max: 12, Current: 12}, c.MP)
	s.Equal(ryuutama.D6, c.Str.DieSize)
	s.Equal(6, c.Spi.Max)
	s.NotNil(c.Weapons)
	s.Empty(c.Weapons)
	s.Nil(c.Shield)
	s.Nil(c.Armor)
	s.Len(c.ConditionChecks, 4)
	s.Len(c.StatusEffects, 6)
	s.Len(c.Abilities, 5)
	s.Equal(ryuutama.TerrainKey(""), c.CurrentTerrain)
}

func (s *CharacterTestSuite) TestStepDie() {
	changed, err := s.character.StepDie(ryuutama.StatDex, ryuutama.StepUp)
	s.Require().NoError(err)
	s.True(changed)
	s.Equal(5, s.character.Dex.Value)
	s.Equal(ryuutama.D8, s.character.Dex.DieSize)

	// stored initiative is a cache and is not recomputed
	s.Equal(12, s.character.Initiative)
	s.Equal(11, s.character.ComputeInitiative())
	s.Equal(11, s.character.RecalculateInitiative())

	_, err = s.character.StepDie("luck", ryuutama.StepUp)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CharacterTestSuite) TestStat() {
	block, err := s.character.Stat(ryuutama.StatSpi)
	s.Require().NoError(err)
	s.Equal(ryuutama.NewStatBlock(), block)

	_, err = s.character.Stat("cha")
	s.Error(err)
}

func (s *CharacterTestSuite) TestTravelCheckBonus() {
	s.character.Str.Value = 4
	s.character.Dex.Value = 6
	s.character.Int.Value = 8

	s.Equal(10, s.character.TravelCheckBonus(ryuutama.CheckMovement))
	s.Equal(16, s.character.TravelCheckBonus(ryuutama.CheckDirection))
	s.Equal(14, s.character.TravelCheckBonus(ryuutama.CheckCamp))
	s.Equal(0, s.character.TravelCheckBonus("swim"))
}

func (s *CharacterTestSuite) TestOutfitSize() {
	s.Equal(0, s.character.TotalOutfitSize())

	s.character.AddItem(ryuutama.Item{Equipment: ryuutama.Equipment{ID: "a"}, Size: 2})
	s.character.AddItem(ryuutama.Item{Equipment: ryuutama.Equipment{ID: "b"}, Size: 3})
	s.Equal(5, s.character.TotalOutfitSize())
}

func (s *CharacterTestSuite) TestCarryingCapacity() {
	s.Equal(9, s.character.CarryingCapacity())

	s.character.Type = ryuutama.TypeTechnical
	s.Equal(12, s.character.CarryingCapacity())

	s.character.CharacterClass = ryuutama.ClassFarmer
	s.Equal(15, s.character.CarryingCapacity())

	s.character.AddItem(ryuutama.Item{Size: 16})
	s.True(s.character.Overloaded())
}

func (s *CharacterTestSuite) TestRecordConditionCheck() {
	s.Require().NoError(s.character.SetStatus(ryuutama.StatusInjury, true))
	s.Require().NoError(s.character.SetStatus(ryuutama.StatusPoison, true))
	s.Require().NoError(s.character.SetStatus(ryuutama.StatusShock, true))

	s.Run("cures only effects below the check on the same stat", func() {
		cured, err := s.character.RecordConditionCheck(ryuutama.StatStr, 6)
		s.Require().NoError(err)
		s.Equal([]ryuutama.StatusKey{ryuutama.StatusInjury}, cured)
		s.Equal(6, s.character.ConditionChecks[ryuutama.StatStr])
		s.Equal([]ryuutama.StatusKey{ryuutama.StatusPoison, ryuutama.StatusShock}, s.character.ActiveStatuses())
	})

	s.Run("equal to the recovery value does not cure", func() {
		cured, err := s.character.RecordConditionCheck(ryuutama.StatSpi, 7)
		s.Require().NoError(err)
		s.Empty(cured)
		s.True(s.character.StatusEffects[ryuutama.StatusShock])
	})

	s.Run("unknown stat", func() {
		_, err := s.character.RecordConditionCheck("luck", 10)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown status", func() {
		s.Error(s.character.SetStatus("cursed", true))
	})
}

func (s *CharacterTestSuite) TestSelectEnvironment() {
	s.Require().NoError(s.character.SelectTerrain("mountain"))
	s.Require().NoError(s.character.SelectWeather("cold"))
	s.Equal(1, s.character.Effects()[ryuutama.StatSpi])
	s.Equal(11, s.character.TopographyTarget())

	s.Error(s.character.SelectTerrain("moon"))
	s.Equal(ryuutama.TerrainKey("mountain"), s.character.CurrentTerrain)

	s.Require().NoError(s.character.SelectWeather(""))
	s.Equal(ryuutama.WeatherKey(""), s.character.CurrentWeather)
}

func (s *CharacterTestSuite) TestEquipmentByID() {
	s.character.AddWeapon(ryuutama.Weapon{Equipment: ryuutama.Equipment{ID: "w1", Name: "Blade"}})
	s.character.AddWeapon(ryuutama.Weapon{Equipment: ryuutama.Equipment{ID: "w2", Name: "Bow"}})
	s.character.AddWeapon(ryuutama.Weapon{Equipment: ryuutama.Equipment{ID: "w3", Name: "Axe"}})

	s.Require().NoError(s.character.UpdateWeapon(ryuutama.Weapon{Equipment: ryuutama.Equipment{ID: "w2", Name: "Longbow"}}))
	s.Require().NoError(s.character.RemoveWeapon("w1"))

	s.Require().Len(s.character.Weapons, 2)
	s.Equal("Longbow", s.character.Weapons[0].Name)
	s.Equal("Axe", s.character.Weapons[1].Name)

	s.True(errors.IsNotFound(s.character.RemoveWeapon("w1")))
	s.True(errors.IsNotFound(s.character.UpdateItem(ryuutama.Item{Equipment: ryuutama.Equipment{ID: "nope"}})))
}

func (s *CharacterTestSuite) TestPurchase() {
	rope, ok := ryuutama.LookupShopItem("rope")
	s.Require().True(ok)

	s.Require().NoError(s.character.Purchase(rope, "item_1"))
	s.Equal(1000-rope.Price, s.character.Gold)
	s.Require().Len(s.character.TravelersOutfit, 1)
	s.Equal("item_1", s.character.TravelersOutfit[0].ID)
	s.Equal(rope.Size, s.character.TravelersOutfit[0].Size)

	chain, ok := ryuutama.LookupShopItem("chain_mail")
	s.Require().True(ok)
	s.character.Gold = chain.Price - 1

	err := s.character.Purchase(chain, "armor_1")
	s.True(errors.IsFailedPrecondition(err))
	s.Nil(s.character.Armor)
	s.Equal(chain.Price-1, s.character.Gold)

	s.character.Gold = chain.Price
	s.Require().NoError(s.character.Purchase(chain, "armor_1"))
	s.Require().NotNil(s.character.Armor)
	s.Equal(3, s.character.Armor.DefensePoints)
	s.Equal(0, s.character.Gold)
}

func (s *CharacterTestSuite) TestAbilities() {
	s.Require().NoError(s.character.SetAbility(3, "Fireball"))
	s.Equal("Fireball", s.character.Abilities[3])
	s.Error(s.character.SetAbility(6, "Meteor"))

	s.character.Type = ryuutama.TypeMagic
	s.True(s.character.ApplyTypeAbilities())
	s.Contains(s.character.Abilities[1], "Will: Max MP +4")
	s.False(s.character.ApplyTypeAbilities())

	s.character.CharacterClass = "healer"
	s.True(s.character.ApplyClassSkills())
	s.Equal("Healing, First Aid, Herb Gathering", s.character.ClassSkill)
}

func (s *CharacterTestSuite) TestAssignMissingIDs() {
	s.character.AddWeapon(ryuutama.Weapon{Equipment: ryuutama.Equipment{ID: "keep"}})
	s.character.AddWeapon(ryuutama.Weapon{})
	s.character.EquipShield(&ryuutama.Shield{})
	s.character.AddItem(ryuutama.Item{})

	n := 0
	assigned := s.character.AssignMissingIDs(func() string {
		n++
		return fmt.Sprintf("id_%d", n)
	})

	s.Equal(3, assigned)
	s.Equal("keep", s.character.Weapons[0].ID)
	s.Equal("id_1", s.character.Weapons[1].ID)
	s.Equal("id_2", s.character.Shield.ID)
	s.Equal("id_3", s.character.TravelersOutfit[0].ID)
}

func (s *CharacterTestSuite) TestCloneIsDeep() {
	s.character.AddWeapon(ryuutama.Weapon{Equipment: ryuutama.Equipment{ID: "w1", Name: "Blade"}})
	s.character.EquipShield(&ryuutama.Shield{Equipment: ryuutama.Equipment{ID: "s1"}, Defense: 1})

	clone := s.character.Clone()
	s.Equal(s.character, clone)

	clone.Weapons[0].Name = "Changed"
	clone.Shield.Defense = 5
	clone.StatusEffects[ryuutama.StatusTired] = true
	clone.Abilities[2] = "changed"

	s.Equal("Blade", s.character.Weapons[0].Name)
	s.Equal(1, s.character.Shield.Defense)
	s.False(s.character.StatusEffects[ryuutama.StatusTired])
	s.Equal("", s.character.Abilities[2])
}

func (s *CharacterTestSuite) TestValidate() {
	err := s.character.Validate()
	s.True(errors.IsInvalidArgument(err))

	s.character.Name = "Rin"
	s.NoError(s.character.Validate())
	s.Equal("Rin", s.character.DisplayTitle())
}
