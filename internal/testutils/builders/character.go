// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *ryuutama.Character
}

// NewCharacterBuilder creates a new builder starting from a blank character
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{character: ryuutama.NewCharacter()}
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithClass sets the class and fills its skills
func (b *CharacterBuilder) WithClass(class string) *CharacterBuilder {
	b.character.CharacterClass = class
	b.character.ApplyClassSkills()
	return b
}

// WithType sets the type and fills its level 1 abilities
func (b *CharacterBuilder) WithType(characterType string) *CharacterBuilder {
	b.character.Type = characterType
	b.character.ApplyTypeAbilities()
	return b
}

// WithLevel sets the level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithStat sets an attribute's die and value
func (b *CharacterBuilder) WithStat(key ryuutama.StatKey, die ryuutama.DieSize, value int) *CharacterBuilder {
	block := ryuutama.StatBlock{Value: value, DieSize: die}
	switch key {
	case ryuutama.StatStr:
		b.character.Str = ryuutama.ReducibleStat{StatBlock: block, Max: value, Current: value}
	case ryuutama.StatDex:
		b.character.Dex = block
	case ryuutama.StatInt:
		b.character.Int = block
	case ryuutama.StatSpi:
		b.character.Spi = ryuutama.ReducibleStat{StatBlock: block, Max: value, Current: value}
	}
	return b
}

// WithGold sets the purse
func (b *CharacterBuilder) WithGold(gold int) *CharacterBuilder {
	b.character.Gold = gold
	return b
}

// WithWeapon appends a weapon
func (b *CharacterBuilder) WithWeapon(id, name string) *CharacterBuilder {
	b.character.AddWeapon(ryuutama.Weapon{Equipment: ryuutama.Equipment{ID: id, Name: name}})
	return b
}

// WithItem appends an outfit item
func (b *CharacterBuilder) WithItem(id, name string, size int) *CharacterBuilder {
	b.character.AddItem(ryuutama.Item{Equipment: ryuutama.Equipment{ID: id, Name: name}, Size: size})
	return b
}

// WithStatus turns a status effect on
func (b *CharacterBuilder) WithStatus(key ryuutama.StatusKey) *CharacterBuilder {
	b.character.StatusEffects[key] = true
	return b
}

// WithEnvironment selects the terrain and weather without validation
func (b *CharacterBuilder) WithEnvironment(terrain ryuutama.TerrainKey, weather ryuutama.WeatherKey) *CharacterBuilder {
	b.character.CurrentTerrain = terrain
	b.character.CurrentWeather = weather
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *ryuutama.Character {
	return b.character
}
