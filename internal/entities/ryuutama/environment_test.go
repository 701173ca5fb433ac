package ryuutama_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
)

func TestCombinedEffects(t *testing.T) {
	testCases := []struct {
		name     string
		terrain  ryuutama.TerrainKey
		weather  ryuutama.WeatherKey
		expected ryuutama.StatModifiers
	}{
		{
			name:     "mountain and cold",
			terrain:  "mountain",
			weather:  "cold",
			expected: ryuutama.StatModifiers{ryuutama.StatStr: 0, ryuutama.StatDex: 0, ryuutama.StatInt: 0, ryuutama.StatSpi: 1},
		},
		{
			name:     "nothing selected",
			expected: ryuutama.StatModifiers{ryuutama.StatStr: 0, ryuutama.StatDex: 0, ryuutama.StatInt: 0, ryuutama.StatSpi: 0},
		},
		{
			name:     "alpine touches every stat",
			terrain:  "alpine",
			expected: ryuutama.StatModifiers{ryuutama.StatStr: 1, ryuutama.StatDex: 1, ryuutama.StatInt: 1, ryuutama.StatSpi: 1},
		},
		{
			name:     "alpine and blizzard cancel",
			terrain:  "alpine",
			weather:  "blizzard",
			expected: ryuutama.StatModifiers{ryuutama.StatStr: 0, ryuutama.StatDex: 0, ryuutama.StatInt: 0, ryuutama.StatSpi: 0},
		},
		{
			name:     "weather only",
			weather:  "hurricane",
			expected: ryuutama.StatModifiers{ryuutama.StatStr: 0, ryuutama.StatDex: -2, ryuutama.StatInt: -1, ryuutama.StatSpi: 0},
		},
		{
			name:     "unknown keys contribute nothing",
			terrain:  "moon",
			weather:  "meteor",
			expected: ryuutama.StatModifiers{ryuutama.StatStr: 0, ryuutama.StatDex: 0, ryuutama.StatInt: 0, ryuutama.StatSpi: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ryuutama.CombinedEffects(tc.terrain, tc.weather))
		})
	}
}

func TestEnvironmentTables(t *testing.T) {
	assert.Len(t, ryuutama.Terrains(), 11)
	assert.Len(t, ryuutama.WeatherTypes(), 11)
	assert.Equal(t, ryuutama.TerrainKey("grassland"), ryuutama.Terrains()[0])
	assert.Equal(t, ryuutama.WeatherKey("blizzard"), ryuutama.WeatherTypes()[10])

	swamp, ok := ryuutama.LookupTerrain("swamp")
	assert.True(t, ok)
	assert.Equal(t, "Boggy, wet terrain", swamp.Description)
	assert.Equal(t, 10, swamp.TargetNumber)

	unknown := ryuutama.TerrainInfo("moon")
	assert.Equal(t, "", unknown.Description)
	assert.Empty(t, unknown.Effects)

	assert.True(t, ryuutama.TerrainKey("").Valid())
	assert.False(t, ryuutama.WeatherKey("meteor").Valid())
}

func TestLookupReturnsCopies(t *testing.T) {
	first := ryuutama.TerrainInfo("grassland")
	first.Effects["dex"] = 99

	assert.Equal(t, 1, ryuutama.TerrainInfo("grassland").Effects["dex"])
}

func TestTopographyTarget(t *testing.T) {
	assert.Equal(t, 6, ryuutama.TopographyTarget("grassland", ""))
	assert.Equal(t, 15, ryuutama.TopographyTarget("alpine", "rain"))
	assert.Equal(t, 15, ryuutama.TopographyTarget("desert", "snow"))
	assert.Equal(t, 0, ryuutama.TopographyTarget("", "hurricane"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Deep Forest", ryuutama.DisplayName("deep_forest"))
	assert.Equal(t, "Hardrain", ryuutama.DisplayName("hardrain"))
	assert.Equal(t, "Grassland", ryuutama.DisplayName("grassland"))
}
