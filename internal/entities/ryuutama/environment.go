package ryuutama

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AllStats is the effect key that applies a modifier to every tracked attribute
const AllStats = "all"

// TerrainKey selects a terrain; the empty key means no terrain is selected
type TerrainKey string

// WeatherKey selects a weather; the empty key means no weather is selected
type WeatherKey string

// Terrain describes a terrain type and its attribute modifiers.
// TargetNumber is the base topography target number for journey checks.
type Terrain struct {
	Key          TerrainKey
	Description  string
	Effects      map[string]int
	TargetNumber int
}

// Weather describes a weather type and its attribute modifiers.
// TargetModifier is added to the terrain's topography target number.
type Weather struct {
	Key            WeatherKey
	Description    string
	Effects        map[string]int
	TargetModifier int
}

var terrains = []Terrain{
	{Key: "grassland", Description: "Open fields and gentle hills", Effects: map[string]int{"dex": 1}, TargetNumber: 6},
	{Key: "wasteland", Description: "Barren, difficult terrain", Effects: map[string]int{"str": 1}, TargetNumber: 6},
	{Key: "woods", Description: "Light forest and brush", Effects: map[string]int{"int": 1}, TargetNumber: 8},
	{Key: "highlands", Description: "High plateaus and hills", Effects: map[string]int{"spi": 1}, TargetNumber: 8},
	{Key: "rocky_terrain", Description: "Difficult, rocky ground", Effects: map[string]int{"str": 1, "dex": 1}, TargetNumber: 8},
	{Key: "deep_forest", Description: "Dense, thick forest", Effects: map[string]int{"int": 1, "dex": 1}, TargetNumber: 10},
	{Key: "swamp", Description: "Boggy, wet terrain", Effects: map[string]int{"str": 1, "dex": 1}, TargetNumber: 10},
	{Key: "mountain", Description: "High, steep mountains", Effects: map[string]int{"str": 1, "spi": 1}, TargetNumber: 10},
	{Key: "desert", Description: "Hot, dry wasteland", Effects: map[string]int{"str": 1, "spi": 1}, TargetNumber: 12},
	{Key: "jungle", Description: "Dense, tropical forest", Effects: map[string]int{"int": 1, "str": 1}, TargetNumber: 12},
	{Key: "alpine", Description: "High mountains above treeline", Effects: map[string]int{AllStats: 1}, TargetNumber: 14},
}

var weathers = []Weather{
	{Key: "rain", Description: "Light rain", Effects: map[string]int{"dex": -1}, TargetModifier: 1},
	{Key: "strong_wind", Description: "High winds", Effects: map[string]int{"dex": -1}, TargetModifier: 1},
	{Key: "fog", Description: "Misty conditions", Effects: map[string]int{"int": -1}, TargetModifier: 1},
	{Key: "hot", Description: "Excessive heat", Effects: map[string]int{"str": -1}, TargetModifier: 1},
	{Key: "cold", Description: "Frigid conditions", Effects: map[string]int{"str": -1}, TargetModifier: 1},
	{Key: "hardrain", Description: "Heavy downpour", Effects: map[string]int{"dex": -1, "int": -1}, TargetModifier: 3},
	{Key: "snow", Description: "Light snowfall", Effects: map[string]int{"dex": -1, "str": -1}, TargetModifier: 3},
	{Key: "deep_fog", Description: "Thick, opaque fog", Effects: map[string]int{"int": -2}, TargetModifier: 3},
	{Key: "dark", Description: "Nighttime or darkness", Effects: map[string]int{"int": -2}, TargetModifier: 3},
	{Key: "hurricane", Description: "Severe storm", Effects: map[string]int{"dex": -2, "int": -1}, TargetModifier: 5},
	{Key: "blizzard", Description: "Heavy snow and wind", Effects: map[string]int{AllStats: -1}, TargetModifier: 5},
}

// Terrains returns the terrain keys in table order
func Terrains() []TerrainKey {
	keys := make([]TerrainKey, len(terrains))
	for i, t := range terrains {
		keys[i] = t.Key
	}
	return keys
}

// WeatherTypes returns the weather keys in table order
func WeatherTypes() []WeatherKey {
	keys := make([]WeatherKey, len(weathers))
	for i, w := range weathers {
		keys[i] = w.Key
	}
	return keys
}

// LookupTerrain returns the terrain for key and whether it exists
func LookupTerrain(key TerrainKey) (Terrain, bool) {
	for _, t := range terrains {
		if t.Key == key {
			t.Effects = copyEffects(t.Effects)
			return t, true
		}
	}
	return Terrain{Effects: map[string]int{}}, false
}

// TerrainInfo returns the terrain for key, or an empty record when unknown
func TerrainInfo(key TerrainKey) Terrain {
	t, _ := LookupTerrain(key)
	return t
}

// LookupWeather returns the weather for key and whether it exists
func LookupWeather(key WeatherKey) (Weather, bool) {
	for _, w := range weathers {
		if w.Key == key {
			w.Effects = copyEffects(w.Effects)
			return w, true
		}
	}
	return Weather{Effects: map[string]int{}}, false
}

// WeatherInfo returns the weather for key, or an empty record when unknown
func WeatherInfo(key WeatherKey) Weather {
	w, _ := LookupWeather(key)
	return w
}

// Valid reports whether the key is empty or present in the terrain table
func (k TerrainKey) Valid() bool {
	if k == "" {
		return true
	}
	_, ok := LookupTerrain(k)
	return ok
}

// Valid reports whether the key is empty or present in the weather table
func (k WeatherKey) Valid() bool {
	if k == "" {
		return true
	}
	_, ok := LookupWeather(k)
	return ok
}

// StatModifiers holds one modifier per tracked attribute
type StatModifiers map[StatKey]int

func newStatModifiers() StatModifiers {
	m := make(StatModifiers, len(statKeys))
	for _, key := range statKeys {
		m[key] = 0
	}
	return m
}

func (m StatModifiers) add(effects map[string]int) {
	for stat, bonus := range effects {
		if stat == AllStats {
			for _, key := range statKeys {
				m[key] += bonus
			}
			continue
		}
		key := StatKey(stat)
		if key.Valid() {
			m[key] += bonus
		}
	}
}

// CombinedEffects sums the terrain and weather modifiers for each tracked
// attribute. Either key may be empty or unknown, contributing nothing.
func CombinedEffects(terrain TerrainKey, weather WeatherKey) StatModifiers {
	m := newStatModifiers()
	m.add(TerrainInfo(terrain).Effects)
	m.add(WeatherInfo(weather).Effects)
	return m
}

// TopographyTarget returns the journey-check target number for the selection,
// or 0 when no terrain is selected.
func TopographyTarget(terrain TerrainKey, weather WeatherKey) int {
	t, ok := LookupTerrain(terrain)
	if !ok {
		return 0
	}
	return t.TargetNumber + WeatherInfo(weather).TargetModifier
}

var titleCaser = cases.Title(language.English)

// DisplayName turns a table key such as "deep_forest" into "Deep Forest"
func DisplayName(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

func copyEffects(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
