package ryuutama

import (
	"strings"

	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
)

// MaxAbilityLevel is the highest level with its own abilities entry
const MaxAbilityLevel = 5

// Defaults for a fresh character
const (
	DefaultGold                 = 1000
	DefaultLevel                = 1
	BaseCarryingCapacityBonus   = 3
	PocketCarryingCapacityBonus = 3
	RobustCarryingCapacityBonus = 3
)

// Travel check kinds
const (
	CheckMovement  = "movement"
	CheckDirection = "direction"
	CheckCamp      = "camp"
)

// Character is the persisted character sheet. Derived values such as
// Initiative, HP and MP are defaults filled once; stored values win.
type Character struct {
	Name           string `json:"name"`
	PlayerName     string `json:"player_name"`
	Level          int    `json:"level"`
	Exp            int    `json:"exp"`
	Gender         string `json:"gender"`
	Age            string `json:"age"`
	CharacterClass string `json:"character_class"`
	Type           string `json:"type"`

	ClassSkill         string `json:"class_skill"`
	StatsUsed          string `json:"stats_used"`
	Effect             string `json:"effect"`
	MasteredWeapon     string `json:"mastered_weapon"`
	SpecializedTerrain string `json:"specialized_terrain"`
	PersonalItem       string `json:"personal_item"`

	Str ReducibleStat `json:"str"`
	Dex StatBlock     `json:"dex"`
	Int StatBlock     `json:"int"`
	Spi ReducibleStat `json:"spi"`

	Initiative   int  `json:"initiative"`
	FumblePoints int  `json:"fumble_points"`
	HP           Pool `json:"hp"`
	MP           Pool `json:"mp"`
	Gold         int  `json:"gold"`

	Weapons         []Weapon `json:"weapons"`
	Shield          *Shield  `json:"shield"`
	Armor           *Armor   `json:"armor"`
	TravelersOutfit []Item   `json:"travelers_outfit"`

	ConditionChecks map[StatKey]int    `json:"condition_checks"`
	StatusEffects   map[StatusKey]bool `json:"status_effects"`
	CurrentTerrain  TerrainKey         `json:"current_terrain"`
	CurrentWeather  WeatherKey         `json:"current_weather"`

	ImagePath       string `json:"image_path"`
	Appearance      string `json:"appearance"`
	Hometown        string `json:"hometown"`
	ReasonForTravel string `json:"reason_for_travel"`
	Notes           string `json:"notes"`

	Abilities map[int]string `json:"abilities"`
}

// NewCharacter returns a blank level 1 character with every key present
func NewCharacter() *Character {
	c := &Character{
		Level:           DefaultLevel,
		Str:             NewReducibleStat(),
		Dex:             NewStatBlock(),
		Int:             NewStatBlock(),
		Spi:             NewReducibleStat(),
		Gold:            DefaultGold,
		Weapons:         []Weapon{},
		TravelersOutfit: []Item{},
		ConditionChecks: blankConditionChecks(),
		StatusEffects:   blankStatusEffects(),
		Abilities:       blankAbilities(),
	}
	c.Initiative = c.ComputeInitiative()
	c.HP = NewPool(c.DefaultMaxHP())
	c.MP = NewPool(c.DefaultMaxMP())
	return c
}

func blankConditionChecks() map[StatKey]int {
	m := make(map[StatKey]int, len(statKeys))
	for _, key := range statKeys {
		m[key] = 0
	}
	return m
}

func blankStatusEffects() map[StatusKey]bool {
	m := make(map[StatusKey]bool, len(statusEffects))
	for _, e := range statusEffects {
		m[e.Key] = false
	}
	return m
}

func blankAbilities() map[int]string {
	m := make(map[int]string, MaxAbilityLevel)
	for level := 1; level <= MaxAbilityLevel; level++ {
		m[level] = ""
	}
	return m
}

func (c *Character) statBlock(key StatKey) *StatBlock {
	switch key {
	case StatStr:
		return &c.Str.StatBlock
	case StatDex:
		return &c.Dex
	case StatInt:
		return &c.Int
	case StatSpi:
		return &c.Spi.StatBlock
	default:
		return nil
	}
}

// Stat returns the attribute for key
func (c *Character) Stat(key StatKey) (StatBlock, error) {
	block := c.statBlock(key)
	if block == nil {
		return StatBlock{}, errors.InvalidArgumentf("unknown stat %q", key)
	}
	return *block, nil
}

// StepDie moves the attribute's die one step and reports whether it changed
func (c *Character) StepDie(key StatKey, dir Direction) (bool, error) {
	block := c.statBlock(key)
	if block == nil {
		return false, errors.InvalidArgumentf("unknown stat %q", key)
	}
	return block.StepDie(dir), nil
}

// ComputeInitiative returns DEX + INT. The stored Initiative is not touched.
func (c *Character) ComputeInitiative() int {
	return c.Dex.Value + c.Int.Value
}

// RecalculateInitiative overwrites the stored Initiative with the formula value
func (c *Character) RecalculateInitiative() int {
	c.Initiative = c.ComputeInitiative()
	return c.Initiative
}

// DefaultMaxHP is twice the STR value
func (c *Character) DefaultMaxHP() int {
	return c.Str.Value * 2
}

// DefaultMaxMP is twice the SPI value
func (c *Character) DefaultMaxMP() int {
	return c.Spi.Value * 2
}

// TravelCheckBonus returns the attribute sum for a journey check kind:
// movement STR+DEX, direction INT+INT, camp DEX+INT. Unknown kinds give 0.
func (c *Character) TravelCheckBonus(kind string) int {
	switch kind {
	case CheckMovement:
		return c.Str.Value + c.Dex.Value
	case CheckDirection:
		return c.Int.Value + c.Int.Value
	case CheckCamp:
		return c.Dex.Value + c.Int.Value
	default:
		return 0
	}
}

// TotalOutfitSize sums the size of every outfit item
func (c *Character) TotalOutfitSize() int {
	total := 0
	for _, item := range c.TravelersOutfit {
		total += item.Size
	}
	return total
}

// CarryingCapacity is STR + 3, raised by the Technical type and the Farmer class
func (c *Character) CarryingCapacity() int {
	capacity := c.Str.Value + BaseCarryingCapacityBonus
	if strings.EqualFold(c.Type, TypeTechnical) {
		capacity += PocketCarryingCapacityBonus
	}
	if strings.EqualFold(c.CharacterClass, ClassFarmer) {
		capacity += RobustCarryingCapacityBonus
	}
	return capacity
}

// Overloaded reports whether the outfit exceeds the carrying capacity
func (c *Character) Overloaded() bool {
	return c.TotalOutfitSize() > c.CarryingCapacity()
}

// SetStatus turns a status effect on or off
func (c *Character) SetStatus(key StatusKey, active bool) error {
	if !key.Valid() {
		return errors.InvalidArgumentf("unknown status effect %q", key)
	}
	c.StatusEffects[key] = active
	return nil
}

// ActiveStatuses returns the active status effects in sheet order
func (c *Character) ActiveStatuses() []StatusKey {
	var active []StatusKey
	for _, e := range statusEffects {
		if c.StatusEffects[e.Key] {
			active = append(active, e.Key)
		}
	}
	return active
}

// RecordConditionCheck stores a check result and cures every active status
// effect recovered with that attribute whose recovery value is below the
// result. It returns the cured effects.
func (c *Character) RecordConditionCheck(stat StatKey, value int) ([]StatusKey, error) {
	if !stat.Valid() {
		return nil, errors.InvalidArgumentf("unknown stat %q", stat)
	}
	c.ConditionChecks[stat] = value

	var cured []StatusKey
	for _, e := range statusEffects {
		if !c.StatusEffects[e.Key] || e.CheckStat != stat {
			continue
		}
		if value > e.RecoveryValue {
			c.StatusEffects[e.Key] = false
			cured = append(cured, e.Key)
		}
	}
	return cured, nil
}

// SelectTerrain sets the current terrain; the empty key clears it
func (c *Character) SelectTerrain(key TerrainKey) error {
	if !key.Valid() {
		return errors.InvalidArgumentf("unknown terrain %q", key)
	}
	c.CurrentTerrain = key
	return nil
}

// SelectWeather sets the current weather; the empty key clears it
func (c *Character) SelectWeather(key WeatherKey) error {
	if !key.Valid() {
		return errors.InvalidArgumentf("unknown weather %q", key)
	}
	c.CurrentWeather = key
	return nil
}

// Effects returns the combined modifiers of the current terrain and weather
func (c *Character) Effects() StatModifiers {
	return CombinedEffects(c.CurrentTerrain, c.CurrentWeather)
}

// TopographyTarget returns the journey-check target number for the current selection
func (c *Character) TopographyTarget() int {
	return TopographyTarget(c.CurrentTerrain, c.CurrentWeather)
}

// SetAbility stores the ability text for a level between 1 and 5
func (c *Character) SetAbility(level int, text string) error {
	if level < 1 || level > MaxAbilityLevel {
		return errors.InvalidArgumentf("ability level %d out of range 1-%d", level, MaxAbilityLevel)
	}
	c.Abilities[level] = text
	return nil
}

// ApplyTypeAbilities writes the type's abilities to level 1 unless that text
// is already there. It reports whether anything changed.
func (c *Character) ApplyTypeAbilities() bool {
	t, ok := LookupCharacterType(c.Type)
	if !ok {
		return false
	}
	if strings.Contains(c.Abilities[1], t.Abilities) {
		return false
	}
	c.Abilities[1] = t.Abilities
	return true
}

// ApplyClassSkills fills the class skill field from the class table and
// reports whether the class was found.
func (c *Character) ApplyClassSkills() bool {
	class, ok := LookupClass(c.CharacterClass)
	if !ok {
		return false
	}
	c.ClassSkill = strings.Join(class.SkillNames(), ", ")
	return true
}

// AddWeapon appends a weapon, keeping list order
func (c *Character) AddWeapon(w Weapon) {
	c.Weapons = append(c.Weapons, w)
}

// UpdateWeapon replaces the weapon with the same ID
func (c *Character) UpdateWeapon(w Weapon) error {
	for i := range c.Weapons {
		if c.Weapons[i].ID == w.ID {
			c.Weapons[i] = w
			return nil
		}
	}
	return errors.NotFoundf("weapon %q not found", w.ID)
}

// RemoveWeapon deletes the weapon with the given ID
func (c *Character) RemoveWeapon(id string) error {
	for i := range c.Weapons {
		if c.Weapons[i].ID == id {
			c.Weapons = append(c.Weapons[:i], c.Weapons[i+1:]...)
			return nil
		}
	}
	return errors.NotFoundf("weapon %q not found", id)
}

// AddItem appends an outfit item, keeping list order
func (c *Character) AddItem(item Item) {
	c.TravelersOutfit = append(c.TravelersOutfit, item)
}

// UpdateItem replaces the outfit item with the same ID
func (c *Character) UpdateItem(item Item) error {
	for i := range c.TravelersOutfit {
		if c.TravelersOutfit[i].ID == item.ID {
			c.TravelersOutfit[i] = item
			return nil
		}
	}
	return errors.NotFoundf("item %q not found", item.ID)
}

// RemoveItem deletes the outfit item with the given ID
func (c *Character) RemoveItem(id string) error {
	for i := range c.TravelersOutfit {
		if c.TravelersOutfit[i].ID == id {
			c.TravelersOutfit = append(c.TravelersOutfit[:i], c.TravelersOutfit[i+1:]...)
			return nil
		}
	}
	return errors.NotFoundf("item %q not found", id)
}

// EquipShield fills the shield slot; nil empties it
func (c *Character) EquipShield(s *Shield) {
	c.Shield = s
}

// EquipArmor fills the armor slot; nil empties it
func (c *Character) EquipArmor(a *Armor) {
	c.Armor = a
}

// Purchase pays for a catalog entry and places it in the matching slot with
// the given ID. A shield or armor replaces whatever was equipped.
func (c *Character) Purchase(item ShopItem, id string) error {
	if item.Price > c.Gold {
		return errors.FailedPreconditionf("%s costs %d gold, only %d available", item.Name, item.Price, c.Gold).
			WithMeta("price", item.Price).
			WithMeta("gold", c.Gold)
	}

	switch item.Kind {
	case KindWeapon:
		c.AddWeapon(item.NewWeapon(id))
	case KindShield:
		s := item.NewShield(id)
		c.EquipShield(&s)
	case KindArmor:
		a := item.NewArmor(id)
		c.EquipArmor(&a)
	case KindItem:
		c.AddItem(item.NewItem(id))
	default:
		return errors.InvalidArgumentf("unknown equipment kind %q", item.Kind)
	}

	c.Gold -= item.Price
	return nil
}

// AssignMissingIDs gives every equipment entry without an ID a fresh one
// and reports how many were assigned.
func (c *Character) AssignMissingIDs(next func() string) int {
	assigned := 0
	assign := func(id *string) {
		if *id == "" {
			*id = next()
			assigned++
		}
	}
	for i := range c.Weapons {
		assign(&c.Weapons[i].ID)
	}
	if c.Shield != nil {
		assign(&c.Shield.ID)
	}
	if c.Armor != nil {
		assign(&c.Armor.ID)
	}
	for i := range c.TravelersOutfit {
		assign(&c.TravelersOutfit[i].ID)
	}
	return assigned
}

// Validate checks the presence rules required before export
func (c *Character) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", strings.TrimSpace(c.Name), vb)
	return vb.Build()
}

// Clone returns a deep copy
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	clone := *c

	clone.Weapons = make([]Weapon, len(c.Weapons))
	copy(clone.Weapons, c.Weapons)
	clone.TravelersOutfit = make([]Item, len(c.TravelersOutfit))
	copy(clone.TravelersOutfit, c.TravelersOutfit)

	if c.Shield != nil {
		s := *c.Shield
		clone.Shield = &s
	}
	if c.Armor != nil {
		a := *c.Armor
		clone.Armor = &a
	}

	clone.ConditionChecks = make(map[StatKey]int, len(c.ConditionChecks))
	for k, v := range c.ConditionChecks {
		clone.ConditionChecks[k] = v
	}
	clone.StatusEffects = make(map[StatusKey]bool, len(c.StatusEffects))
	for k, v := range c.StatusEffects {
		clone.StatusEffects[k] = v
	}
	clone.Abilities = make(map[int]string, len(c.Abilities))
	for k, v := range c.Abilities {
		clone.Abilities[k] = v
	}
	return &clone
}

// DisplayTitle returns the name or a placeholder for an unnamed character
func (c *Character) DisplayTitle() string {
	if strings.TrimSpace(c.Name) == "" {
		return "Unnamed Character"
	}
	return c.Name
}
