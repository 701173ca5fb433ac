package ryuutama

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
)

// UnnamedPreview is listed for documents without a name
const UnnamedPreview = "Unnamed"

// Preview is the metadata shown in a character listing
type Preview struct {
	Name         string    `json:"name"`
	Level        int       `json:"level"`
	Class        string    `json:"character_class"`
	Type         string    `json:"type"`
	Path         string    `json:"path,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Marshal renders the character as an indented UTF-8 JSON document with every field present
func Marshal(c *Character) ([]byte, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fillEmpty(c.Clone())); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeSaveFailed, "failed to encode character")
	}
	return buf.Bytes(), nil
}

// fillEmpty replaces nil collections so the document never carries null lists or maps
func fillEmpty(c *Character) *Character {
	if c.Weapons == nil {
		c.Weapons = []Weapon{}
	}
	if c.TravelersOutfit == nil {
		c.TravelersOutfit = []Item{}
	}
	if c.ConditionChecks == nil {
		c.ConditionChecks = blankConditionChecks()
	}
	if c.StatusEffects == nil {
		c.StatusEffects = blankStatusEffects()
	}
	if c.Abilities == nil {
		c.Abilities = blankAbilities()
	}
	return c
}

// Unmarshal builds a fresh character from a document. Known keys are applied
// one at a time over a blank character; unknown keys are ignored and keys of
// the wrong shape are skipped. Missing derived values are filled from the
// loaded attributes. Data that is not a JSON object fails with LOAD_FAILED
// and no character is returned.
func Unmarshal(data []byte) (*Character, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeLoadFailed, "character document is not a JSON object")
	}
	if raw == nil {
		return nil, errors.LoadFailed("character document is empty")
	}

	c := NewCharacter()
	applied := make(map[string]bool, len(raw))

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		decode, ok := fieldDecoders[key]
		if !ok {
			slog.Debug("ignoring unknown character field", "field", key)
			continue
		}
		if isNull(value) {
			continue
		}
		if err := decode(c, value); err != nil {
			slog.Warn("skipping malformed character field", "field", key, "error", err)
			continue
		}
		applied[key] = true
	}

	fillDerived(c, raw, applied)
	normalize(c)
	return c, nil
}

// PeekPreview reads only the listing metadata from a document
func PeekPreview(data []byte) (Preview, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Preview{}, errors.WrapWithCode(err, errors.CodeLoadFailed, "character document is not a JSON object")
	}
	if raw == nil {
		return Preview{}, errors.LoadFailed("character document is empty")
	}

	p := Preview{Name: UnnamedPreview, Level: DefaultLevel}
	if v, err := decodeString(raw["name"]); err == nil && strings.TrimSpace(v) != "" {
		p.Name = v
	}
	if v, err := decodeInt(raw["level"]); err == nil && v >= DefaultLevel {
		p.Level = v
	}
	if v, err := decodeString(raw["character_class"]); err == nil {
		p.Class = v
	}
	if v, err := decodeString(raw["type"]); err == nil {
		p.Type = v
	}
	return p, nil
}

type fieldDecoder func(c *Character, raw json.RawMessage) error

var fieldDecoders = map[string]fieldDecoder{
	"name":                stringField(func(c *Character) *string { return &c.Name }),
	"player_name":         stringField(func(c *Character) *string { return &c.PlayerName }),
	"gender":              stringField(func(c *Character) *string { return &c.Gender }),
	"age":                 stringField(func(c *Character) *string { return &c.Age }),
	"character_class":     stringField(func(c *Character) *string { return &c.CharacterClass }),
	"type":                stringField(func(c *Character) *string { return &c.Type }),
	"class_skill":         stringField(func(c *Character) *string { return &c.ClassSkill }),
	"stats_used":          stringField(func(c *Character) *string { return &c.StatsUsed }),
	"effect":              stringField(func(c *Character) *string { return &c.Effect }),
	"mastered_weapon":     stringField(func(c *Character) *string { return &c.MasteredWeapon }),
	"specialized_terrain": stringField(func(c *Character) *string { return &c.SpecializedTerrain }),
	"personal_item":       stringField(func(c *Character) *string { return &c.PersonalItem }),
	"image_path":          stringField(func(c *Character) *string { return &c.ImagePath }),
	"appearance":          stringField(func(c *Character) *string { return &c.Appearance }),
	"hometown":            stringField(func(c *Character) *string { return &c.Hometown }),
	"reason_for_travel":   stringField(func(c *Character) *string { return &c.ReasonForTravel }),
	"notes":               stringField(func(c *Character) *string { return &c.Notes }),

	"level":         intField(func(c *Character) *int { return &c.Level }),
	"exp":           intField(func(c *Character) *int { return &c.Exp }),
	"initiative":    intField(func(c *Character) *int { return &c.Initiative }),
	"fumble_points": intField(func(c *Character) *int { return &c.FumblePoints }),
	"gold":          intField(func(c *Character) *int { return &c.Gold }),

	"str": jsonField(func(c *Character) *ReducibleStat { return &c.Str }),
	"spi": jsonField(func(c *Character) *ReducibleStat { return &c.Spi }),
	"dex": jsonField(func(c *Character) *StatBlock { return &c.Dex }),
	"int": jsonField(func(c *Character) *StatBlock { return &c.Int }),
	"hp":  jsonField(func(c *Character) *Pool { return &c.HP }),
	"mp":  jsonField(func(c *Character) *Pool { return &c.MP }),

	"weapons":          listField(func(c *Character) *[]Weapon { return &c.Weapons }),
	"shield":           jsonField(func(c *Character) **Shield { return &c.Shield }),
	"armor":            jsonField(func(c *Character) **Armor { return &c.Armor }),
	"travelers_outfit": listField(func(c *Character) *[]Item { return &c.TravelersOutfit }),

	"condition_checks": decodeConditionChecks,
	"status_effects":   decodeStatusEffects,
	"abilities":        decodeAbilities,
	"current_terrain": func(c *Character, raw json.RawMessage) error {
		v, err := decodeString(raw)
		if err != nil {
			return err
		}
		c.CurrentTerrain = TerrainKey(v)
		return nil
	},
	"current_weather": func(c *Character, raw json.RawMessage) error {
		v, err := decodeString(raw)
		if err != nil {
			return err
		}
		c.CurrentWeather = WeatherKey(v)
		return nil
	},
}

func stringField(dst func(*Character) *string) fieldDecoder {
	return func(c *Character, raw json.RawMessage) error {
		v, err := decodeString(raw)
		if err != nil {
			return err
		}
		*dst(c) = v
		return nil
	}
}

func intField(dst func(*Character) *int) fieldDecoder {
	return func(c *Character, raw json.RawMessage) error {
		v, err := decodeInt(raw)
		if err != nil {
			return err
		}
		*dst(c) = v
		return nil
	}
}

// jsonField decodes over a copy of the current value and assigns only on success
func jsonField[T any](dst func(*Character) *T) fieldDecoder {
	return func(c *Character, raw json.RawMessage) error {
		v := *dst(c)
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		*dst(c) = v
		return nil
	}
}

// listField decodes a list entry by entry, skipping entries of the wrong shape
func listField[T any](dst func(*Character) *[]T) fieldDecoder {
	return func(c *Character, raw json.RawMessage) error {
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return err
		}
		list := make([]T, 0, len(entries))
		for i, entry := range entries {
			if kindOf(entry) != "object" {
				slog.Warn("skipping malformed list entry", "index", i, "kind", kindOf(entry))
				continue
			}
			var v T
			if err := json.Unmarshal(entry, &v); err != nil {
				slog.Warn("skipping malformed list entry", "index", i, "error", err)
				continue
			}
			list = append(list, v)
		}
		*dst(c) = list
		return nil
	}
}

func decodeConditionChecks(c *Character, raw json.RawMessage) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	checks := blankConditionChecks()
	for key, value := range m {
		stat := StatKey(key)
		if !stat.Valid() {
			slog.Warn("dropping unknown condition check", "stat", key)
			continue
		}
		v, err := decodeInt(value)
		if err != nil {
			slog.Warn("skipping malformed condition check", "stat", key, "error", err)
			continue
		}
		checks[stat] = v
	}
	c.ConditionChecks = checks
	return nil
}

func decodeStatusEffects(c *Character, raw json.RawMessage) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	statuses := blankStatusEffects()
	for key, value := range m {
		status := StatusKey(key)
		if !status.Valid() {
			slog.Warn("dropping unknown status effect", "status", key)
			continue
		}
		var active bool
		if err := json.Unmarshal(value, &active); err != nil {
			slog.Warn("skipping malformed status effect", "status", key, "error", err)
			continue
		}
		statuses[status] = active
	}
	c.StatusEffects = statuses
	return nil
}

// decodeAbilities accepts text values and older list values, which are joined with newlines
func decodeAbilities(c *Character, raw json.RawMessage) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	abilities := blankAbilities()
	for key, value := range m {
		level, err := strconv.Atoi(key)
		if err != nil || level < 1 || level > MaxAbilityLevel {
			slog.Warn("dropping ability level out of range", "level", key)
			continue
		}
		if isNull(value) {
			continue
		}
		text, err := decodeAbilityText(value)
		if err != nil {
			slog.Warn("skipping malformed ability", "level", key, "error", err)
			continue
		}
		abilities[level] = text
	}
	c.Abilities = abilities
	return nil
}

func decodeAbilityText(raw json.RawMessage) (string, error) {
	if text, err := decodeString(raw); err == nil {
		return text, nil
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return "", fmt.Errorf("expected text or list, got %s", kindOf(raw))
	}
	lines := make([]string, 0, len(list))
	for _, entry := range list {
		line, err := decodeString(entry)
		if err != nil {
			return "", err
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// decodeString accepts strings, and numbers rendered as text
func decodeString(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("missing value")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("expected string, got %s", kindOf(raw))
}

// decodeInt accepts integral numbers, including ones written with a fraction of zero
func decodeInt(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing value")
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, fmt.Errorf("expected integer, got %s", kindOf(raw))
	}
	n, ok := intFromFloat(f)
	if !ok {
		return 0, fmt.Errorf("expected integer in range, got %v", f)
	}
	return n, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func kindOf(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "nothing"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "bool"
	case 'n':
		return "null"
	default:
		return "number"
	}
}

// fillDerived computes defaults for derived values absent from the document
func fillDerived(c *Character, raw map[string]json.RawMessage, applied map[string]bool) {
	if !applied["initiative"] {
		c.Initiative = c.ComputeInitiative()
	}
	c.HP = fillPool(c.HP, raw["hp"], applied["hp"], c.DefaultMaxHP())
	c.MP = fillPool(c.MP, raw["mp"], applied["mp"], c.DefaultMaxMP())
}

// fillPool defaults a pool's max when the document left it out. A stored
// current is kept within the defaulted max.
func fillPool(p Pool, raw json.RawMessage, applied bool, defaultMax int) Pool {
	if !applied {
		return NewPool(defaultMax)
	}
	present := presentKeys(raw)
	if present["max"] {
		return p
	}
	if !present["current"] {
		return NewPool(defaultMax)
	}
	p.Max = defaultMax
	p.SetCurrent(p.Current)
	return p
}

// presentKeys lists the non-null keys of an object
func presentKeys(raw json.RawMessage) map[string]bool {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	present := make(map[string]bool, len(m))
	for key, value := range m {
		if !isNull(value) {
			present[key] = true
		}
	}
	return present
}

// normalize repairs values that break the document invariants, logging each repair
func normalize(c *Character) {
	if c.Level < DefaultLevel {
		slog.Warn("clamping character level", "level", c.Level)
		c.Level = DefaultLevel
	}
	if c.Exp < 0 {
		slog.Warn("clamping negative experience", "exp", c.Exp)
		c.Exp = 0
	}

	for _, key := range statKeys {
		block := c.statBlock(key)
		if !block.DieSize.Valid() {
			slog.Warn("resetting unknown die size", "stat", key, "die_size", block.DieSize)
			block.DieSize = D6
		}
	}

	if !c.CurrentTerrain.Valid() {
		slog.Warn("clearing unknown terrain", "terrain", c.CurrentTerrain)
		c.CurrentTerrain = ""
	}
	if !c.CurrentWeather.Valid() {
		slog.Warn("clearing unknown weather", "weather", c.CurrentWeather)
		c.CurrentWeather = ""
	}

	fillEmpty(c)
}
