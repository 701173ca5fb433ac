package ryuutama_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
)

func TestClasses(t *testing.T) {
	assert.Equal(t, []string{"Minstrel", "Merchant", "Hunter", "Healer", "Farmer", "Artisan", "Noble"}, ryuutama.ClassNames())

	hunter, ok := ryuutama.LookupClass("hunter")
	require.True(t, ok)
	assert.Equal(t, []string{"Animal Tracking", "Trapping", "Hunting"}, hunter.SkillNames())

	skill, ok := hunter.Skill("hunting")
	require.True(t, ok)
	assert.Equal(t, "[DEX + INT]", skill.StatUsed)
	assert.Equal(t, "Topography", skill.TargetNumber)

	_, ok = ryuutama.LookupClass("Wizard")
	assert.False(t, ok)

	for _, name := range ryuutama.ClassNames() {
		class, _ := ryuutama.LookupClass(name)
		assert.Len(t, class.Skills, 3, name)
	}
}

func TestCharacterTypes(t *testing.T) {
	assert.Equal(t, []string{"Attack", "Technical", "Magic"}, ryuutama.CharacterTypeNames())

	technical, ok := ryuutama.LookupCharacterType("Technical")
	require.True(t, ok)
	assert.Contains(t, technical.Abilities, "Pocket: Your Carrying Capacity is increased +3")
}

func TestStatusEffects(t *testing.T) {
	assert.Equal(t, []ryuutama.StatusKey{
		ryuutama.StatusInjury, ryuutama.StatusTired, ryuutama.StatusPoison,
		ryuutama.StatusMuddled, ryuutama.StatusSick, ryuutama.StatusShock,
	}, ryuutama.StatusKeys())

	muddled, ok := ryuutama.LookupStatusEffect(ryuutama.StatusMuddled)
	require.True(t, ok)
	assert.Equal(t, ryuutama.CategoryMind, muddled.Category)
	assert.Equal(t, ryuutama.StatInt, muddled.CheckStat)
	assert.Equal(t, 6, muddled.RecoveryValue)

	_, ok = ryuutama.LookupStatusEffect("cursed")
	assert.False(t, ok)
}

func TestShopCatalog(t *testing.T) {
	catalog := ryuutama.ShopCatalog()
	require.NotEmpty(t, catalog)
	assert.Equal(t, ryuutama.KindWeapon, catalog[0].Kind)
	assert.Equal(t, ryuutama.KindItem, catalog[len(catalog)-1].Kind)

	for i := 1; i < len(catalog); i++ {
		if catalog[i].Kind == catalog[i-1].Kind {
			assert.LessOrEqual(t, catalog[i-1].Price, catalog[i].Price)
		}
		got, ok := ryuutama.LookupShopItem(catalog[i].Key)
		assert.True(t, ok)
		assert.Equal(t, catalog[i], got)
	}

	_, ok := ryuutama.LookupShopItem("dragon")
	assert.False(t, ok)

	shield, _ := ryuutama.LookupShopItem("wooden_shield")
	built := shield.NewShield("shield_9")
	assert.Equal(t, "shield_9", built.ID)
	assert.Equal(t, "Wooden Shield", built.Name)
	assert.Equal(t, 1, built.Defense)
}
