package ryuutama

import (
	"encoding/json"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Equipment kinds, also used as the rpg-toolkit entity type
const (
	KindWeapon = "weapon"
	KindShield = "shield"
	KindArmor  = "armor"
	KindItem   = "item"
)

// Equipment holds the fields every piece of gear shares
type Equipment struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Effect     string `json:"effect"`
	Durability int    `json:"durability"`
}

// GetID returns the stable identifier of the entry
func (e *Equipment) GetID() string {
	return e.ID
}

func (e *Equipment) portable() map[string]any {
	return map[string]any{
		"id":         e.ID,
		"name":       e.Name,
		"effect":     e.Effect,
		"durability": e.Durability,
	}
}

func (e *Equipment) targets() map[string]any {
	return map[string]any{
		"id":         &e.ID,
		"name":       &e.Name,
		"effect":     &e.Effect,
		"durability": &e.Durability,
	}
}

// Weapon is an entry in the weapons list
type Weapon struct {
	Equipment
	Accuracy int `json:"accuracy"`
	Damage   int `json:"damage"`
}

// GetType implements core.Entity
func (w *Weapon) GetType() string { return KindWeapon }

// ToPortable returns every field as a flat map
func (w *Weapon) ToPortable() map[string]any {
	m := w.portable()
	m["accuracy"] = w.Accuracy
	m["damage"] = w.Damage
	return m
}

// WeaponFromPortable builds a weapon from a flat map, keeping defaults for absent keys
func WeaponFromPortable(data map[string]any) Weapon {
	var w Weapon
	targets := w.targets()
	targets["accuracy"] = &w.Accuracy
	targets["damage"] = &w.Damage
	applyPortable(data, targets)
	return w
}

// UnmarshalJSON decodes through the tolerant portable path
func (w *Weapon) UnmarshalJSON(data []byte) error {
	m, err := decodePortable(data)
	if err != nil {
		return err
	}
	*w = WeaponFromPortable(m)
	return nil
}

// Shield is the optional shield slot
type Shield struct {
	Equipment
	Defense int `json:"defense"`
}

// GetType implements core.Entity
func (s *Shield) GetType() string { return KindShield }

// ToPortable returns every field as a flat map
func (s *Shield) ToPortable() map[string]any {
	m := s.portable()
	m["defense"] = s.Defense
	return m
}

// ShieldFromPortable builds a shield from a flat map, keeping defaults for absent keys
func ShieldFromPortable(data map[string]any) Shield {
	var s Shield
	targets := s.targets()
	targets["defense"] = &s.Defense
	applyPortable(data, targets)
	return s
}

// UnmarshalJSON decodes through the tolerant portable path
func (s *Shield) UnmarshalJSON(data []byte) error {
	m, err := decodePortable(data)
	if err != nil {
		return err
	}
	*s = ShieldFromPortable(m)
	return nil
}

// Armor is the optional armor slot
type Armor struct {
	Equipment
	DefensePoints int `json:"defense_points"`
	Penalty       int `json:"penalty"`
}

// GetType implements core.Entity
func (a *Armor) GetType() string { return KindArmor }

// ToPortable returns every field as a flat map
func (a *Armor) ToPortable() map[string]any {
	m := a.portable()
	m["defense_points"] = a.DefensePoints
	m["penalty"] = a.Penalty
	return m
}

// ArmorFromPortable builds armor from a flat map, keeping defaults for absent keys
func ArmorFromPortable(data map[string]any) Armor {
	var a Armor
	targets := a.targets()
	targets["defense_points"] = &a.DefensePoints
	targets["penalty"] = &a.Penalty
	applyPortable(data, targets)
	return a
}

// UnmarshalJSON decodes through the tolerant portable path
func (a *Armor) UnmarshalJSON(data []byte) error {
	m, err := decodePortable(data)
	if err != nil {
		return err
	}
	*a = ArmorFromPortable(m)
	return nil
}

// Item is an entry in the traveler's outfit
type Item struct {
	Equipment
	Size int `json:"size"`
}

// GetType implements core.Entity
func (i *Item) GetType() string { return KindItem }

// ToPortable returns every field as a flat map
func (i *Item) ToPortable() map[string]any {
	m := i.portable()
	m["size"] = i.Size
	return m
}

// ItemFromPortable builds an item from a flat map, keeping defaults for absent keys
func ItemFromPortable(data map[string]any) Item {
	var i Item
	targets := i.targets()
	targets["size"] = &i.Size
	applyPortable(data, targets)
	return i
}

// UnmarshalJSON decodes through the tolerant portable path
func (i *Item) UnmarshalJSON(data []byte) error {
	m, err := decodePortable(data)
	if err != nil {
		return err
	}
	*i = ItemFromPortable(m)
	return nil
}

var (
	_ core.Entity = (*Weapon)(nil)
	_ core.Entity = (*Shield)(nil)
	_ core.Entity = (*Armor)(nil)
	_ core.Entity = (*Item)(nil)
)

func decodePortable(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// applyPortable copies every recognised key onto its target. Unknown keys and
// values of the wrong shape are ignored.
func applyPortable(data map[string]any, targets map[string]any) {
	for key, value := range data {
		target, ok := targets[key]
		if !ok {
			continue
		}
		switch dst := target.(type) {
		case *string:
			if v, ok := value.(string); ok {
				*dst = v
			}
		case *int:
			if v, ok := toInt(value); ok {
				*dst = v
			}
		}
	}
}

// intFromFloat converts integral values that fit in an int
func intFromFloat(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
		return 0, false
	}
	return int(f), true
}

func toInt(value any) (int, bool) {
	switch n := value.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return intFromFloat(n)
	case json.Number:
		v, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}
