// Package sheet owns the character being edited in a session: the in-memory
// sheet, its file path and unsaved state, and the listeners watching it.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/ryuutama-sheet/internal/orchestrators/sheet Service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	"github.com/KirkDiggler/ryuutama-sheet/internal/export/pdf"
	"github.com/KirkDiggler/ryuutama-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/ryuutama-sheet/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/ryuutama-sheet/internal/repositories/character"
)

const (
	// DefaultRecentLimit caps ListRecent when neither the input nor the config sets a limit
	DefaultRecentLimit = 5

	// WindowTitle prefixes the session title
	WindowTitle = "Ryuutama Character Sheet"

	// EventCharacterChanged is published on the session bus after every change.
	// The event context carries the Change under ContextChange.
	EventCharacterChanged = "sheet.character_changed"

	// ContextChange is the event context key holding the Change
	ContextChange = "change"

	unnamedFile  = "unnamed"
	exportLayout = "20060102"
)

// Service defines the editing session for one character.
// It is single-threaded; callers must not use it from several goroutines.
type Service interface {
	// Session state
	NewCharacter(ctx context.Context) *ryuutama.Character
	Current() *ryuutama.Character
	CurrentPath() string
	Title() string
	Unsaved() bool
	Edit(ctx context.Context, fn func(c *ryuutama.Character) error) error

	// Persistence and export
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	Export(ctx context.Context, input *ExportInput) (*ExportOutput, error)
	ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error)
	Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error)

	// Rules
	RollConditionCheck(ctx context.Context, input *RollConditionCheckInput) (*RollConditionCheckOutput, error)
	StepDie(ctx context.Context, stat ryuutama.StatKey, dir ryuutama.Direction) (bool, error)
	SetStatus(ctx context.Context, key ryuutama.StatusKey, active bool) error
	SelectTerrain(ctx context.Context, key ryuutama.TerrainKey) error
	SelectWeather(ctx context.Context, key ryuutama.WeatherKey) error
	Effects() ryuutama.StatModifiers

	// Equipment
	AddWeapon(ctx context.Context, weapon ryuutama.Weapon) (ryuutama.Weapon, error)
	UpdateWeapon(ctx context.Context, weapon ryuutama.Weapon) error
	RemoveWeapon(ctx context.Context, id string) error
	AddItem(ctx context.Context, item ryuutama.Item) (ryuutama.Item, error)
	UpdateItem(ctx context.Context, item ryuutama.Item) error
	RemoveItem(ctx context.Context, id string) error
	SetShield(ctx context.Context, shield *ryuutama.Shield) error
	SetArmor(ctx context.Context, armor *ryuutama.Armor) error
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)

	// Subscribe registers a listener under a name, replacing any listener
	// already registered with that name. The returned func unsubscribes.
	Subscribe(name string, listener Listener) func()
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	Repository  characterrepo.Repository
	Exporter    pdf.Exporter
	Roller      dice.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock
	SaveDir     string
	RecentLimit int

	// EventBus delivers changes to listeners. A private bus is created when nil.
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Exporter == nil {
		vb.RequiredField("Exporter")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	errors.ValidateRequired("SaveDir", c.SaveDir, vb)
	if c.RecentLimit < 0 {
		vb.Field("RecentLimit", "cannot be negative")
	}

	return vb.Build()
}

// subscription tracks a named listener on the bus. Priority fixes the
// delivery order and is reused when a listener is replaced.
type subscription struct {
	id       string
	priority int
}

type orchestrator struct {
	repo        characterrepo.Repository
	exporter    pdf.Exporter
	roller      dice.Roller
	idGen       idgen.Generator
	clock       clock.Clock
	saveDir     string
	recentLimit int

	character *ryuutama.Character
	path      string
	unsaved   bool

	bus          events.EventBus
	subs         map[string]subscription
	nextPriority int
}

// NewOrchestrator creates a session holding a blank character
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	recentLimit := cfg.RecentLimit
	if recentLimit == 0 {
		recentLimit = DefaultRecentLimit
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	return &orchestrator{
		repo:        cfg.Repository,
		exporter:    cfg.Exporter,
		roller:      cfg.Roller,
		idGen:       cfg.IDGenerator,
		clock:       cfg.Clock,
		saveDir:     cfg.SaveDir,
		recentLimit: recentLimit,
		character:   ryuutama.NewCharacter(),
		bus:         bus,
		subs:        make(map[string]subscription),
	}, nil
}

// NewCharacter discards the session character and starts a blank one
func (o *orchestrator) NewCharacter(ctx context.Context) *ryuutama.Character {
	o.character = ryuutama.NewCharacter()
	o.path = ""
	o.unsaved = false

	slog.DebugContext(ctx, "started new character")
	o.notify(ctx, ChangeNew)
	return o.character.Clone()
}

// Current returns a snapshot of the session character
func (o *orchestrator) Current() *ryuutama.Character {
	return o.character.Clone()
}

// CurrentPath returns the path the character was last loaded from or saved to
func (o *orchestrator) CurrentPath() string {
	return o.path
}

// Title returns the character name with a trailing * while there are unsaved changes
func (o *orchestrator) Title() string {
	marker := ""
	if o.unsaved {
		marker = "*"
	}
	return fmt.Sprintf("%s - %s%s", WindowTitle, o.character.DisplayTitle(), marker)
}

// Unsaved reports whether the character changed since the last new, load or save
func (o *orchestrator) Unsaved() bool {
	return o.unsaved
}

// Edit applies fn to a draft of the character. The draft replaces the
// session character only when fn succeeds.
func (o *orchestrator) Edit(ctx context.Context, fn func(c *ryuutama.Character) error) error {
	if fn == nil {
		return errors.InvalidArgument("edit function is required")
	}
	return o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		return true, fn(c)
	})
}

// mutate runs fn against a clone and commits it when fn reports a change
func (o *orchestrator) mutate(ctx context.Context, fn func(c *ryuutama.Character) (bool, error)) error {
	draft := o.character.Clone()
	changed, err := fn(draft)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	o.character = draft
	o.unsaved = true
	slog.DebugContext(ctx, "character edited", "name", draft.Name)
	o.notify(ctx, ChangeEdited)
	return nil
}

// Save writes the character. The current path only moves on success.
func (o *orchestrator) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	path := input.Path
	if path == "" {
		path = o.path
	}
	if path == "" {
		path = filepath.Join(o.saveDir, fileStem(o.character.Name)+".json")
	}

	out, err := o.repo.Save(ctx, characterrepo.SaveInput{
		Path:      path,
		Character: o.character.Clone(),
	})
	if err != nil {
		slog.WarnContext(ctx, "save failed", "path", path, "error", err)
		return nil, errors.Wrapf(err, "failed to save %s", o.character.DisplayTitle())
	}

	o.path = out.Path
	o.unsaved = false
	slog.InfoContext(ctx, "character saved", "path", out.Path)
	o.notify(ctx, ChangeSaved)

	return &SaveOutput{Path: out.Path}, nil
}

// Load reads a character and replaces the session character only after the
// document was read and decoded in full.
func (o *orchestrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Path == "" {
		return nil, errors.InvalidArgument("path is required")
	}

	out, err := o.repo.Load(ctx, characterrepo.LoadInput{Path: input.Path})
	if err != nil {
		slog.WarnContext(ctx, "load failed", "path", input.Path, "error", err)
		return nil, errors.Wrapf(err, "failed to load %s", input.Path)
	}
	if out.Character == nil {
		return nil, errors.LoadFailedf("no character in %s", input.Path)
	}

	loaded := out.Character
	assigned := loaded.AssignMissingIDs(o.idGen.Generate)

	o.character = loaded
	o.path = out.Path
	o.unsaved = false
	slog.InfoContext(ctx, "character loaded",
		"path", out.Path,
		"name", loaded.Name,
		"ids_assigned", assigned)
	o.notify(ctx, ChangeLoaded)

	return &LoadOutput{
		Path:        out.Path,
		Character:   loaded.Clone(),
		IDsAssigned: assigned,
	}, nil
}

// Export renders the character to PDF. A name is required.
func (o *orchestrator) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.character.Validate(); err != nil {
		return nil, errors.Wrap(err, "character cannot be exported")
	}

	path := input.Path
	if path == "" {
		filename := fmt.Sprintf("%s_%s%s", fileStem(o.character.Name), o.clock.Now().Format(exportLayout), pdf.Extension)
		path = filepath.Join(o.saveDir, filename)
	}

	out, err := o.exporter.Export(ctx, pdf.ExportInput{
		Character: o.character.Clone(),
		Path:      path,
	})
	if err != nil {
		slog.WarnContext(ctx, "export failed", "path", path, "error", err)
		return nil, errors.Wrapf(err, "failed to export %s", o.character.Name)
	}

	slog.InfoContext(ctx, "character exported", "path", out.Path)
	return &ExportOutput{Path: out.Path}, nil
}

// ListRecent returns previews of saved characters, newest first
func (o *orchestrator) ListRecent(ctx context.Context, input *ListRecentInput) (*ListRecentOutput, error) {
	limit := o.recentLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	out, err := o.repo.List(ctx, characterrepo.ListInput{
		Dir:   o.saveDir,
		Limit: limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved characters")
	}

	return &ListRecentOutput{Previews: out.Previews}, nil
}

// Preview returns listing metadata for one saved character
func (o *orchestrator) Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error) {
	if input == nil || input.Path == "" {
		return nil, errors.InvalidArgument("path is required")
	}

	out, err := o.repo.Preview(ctx, characterrepo.PreviewInput{Path: input.Path})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to preview %s", input.Path)
	}

	return &PreviewOutput{Preview: out.Preview}, nil
}

// RollConditionCheck rolls the stat's die, adds the stat value, records the
// total and cures the matching statuses it beats.
func (o *orchestrator) RollConditionCheck(ctx context.Context, input *RollConditionCheckInput) (*RollConditionCheckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	block, err := o.character.Stat(input.Stat)
	if err != nil {
		return nil, err
	}

	roll, err := o.roller.Roll(block.DieSize.Sides())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", block.DieSize)
	}

	output := &RollConditionCheckOutput{
		Stat:  input.Stat,
		Roll:  roll,
		Total: roll + block.Value,
	}

	err = o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		cured, err := c.RecordConditionCheck(input.Stat, output.Total)
		output.Cured = cured
		return true, err
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "condition check rolled",
		"stat", input.Stat,
		"roll", roll,
		"total", output.Total,
		"cured", output.Cured)
	return output, nil
}

// StepDie moves a stat's die one size; false means the die was at its bound
func (o *orchestrator) StepDie(ctx context.Context, stat ryuutama.StatKey, dir ryuutama.Direction) (bool, error) {
	var stepped bool
	err := o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		var err error
		stepped, err = c.StepDie(stat, dir)
		return stepped, err
	})
	return stepped, err
}

// SetStatus toggles a status effect
func (o *orchestrator) SetStatus(ctx context.Context, key ryuutama.StatusKey, active bool) error {
	return o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		return true, c.SetStatus(key, active)
	})
}

// SelectTerrain sets or clears the current terrain
func (o *orchestrator) SelectTerrain(ctx context.Context, key ryuutama.TerrainKey) error {
	return o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		return true, c.SelectTerrain(key)
	})
}

// SelectWeather sets or clears the current weather
func (o *orchestrator) SelectWeather(ctx context.Context, key ryuutama.WeatherKey) error {
	return o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		return true, c.SelectWeather(key)
	})
}

// Effects returns the stat modifiers of the selected terrain and weather
func (o *orchestrator) Effects() ryuutama.StatModifiers {
	return o.character.Effects()
}

// AddWeapon appends a weapon, giving it an ID when it has none
func (o *orchestrator) AddWeapon(ctx context.Context, weapon ryuutama.Weapon) (ryuutama.Weapon, error) {
	if weapon.ID == "" {
		weapon.ID = o.idGen.Generate()
	}
	err := o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		c.AddWeapon(weapon)
		return true, nil
	})
	return weapon, err
}

// UpdateWeapon replaces the weapon with the same ID
func (o *orchestrator) UpdateWeapon(ctx context.Context, weapon ryuutama.Weapon) error {
	return o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		return true, c.UpdateWeapon(weapon)
	})
}

// RemoveWeapon drops the weapon with the ID
func (o *orchestrator) RemoveWeapon(ctx context.Context, id string) error {
	return o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		return true, c.RemoveWeapon(id)
	})
}

// AddItem appends an outfit item, giving it an ID when it has none
func (o *orchestrator) AddItem(ctx context.Context, item ryuutama.Item) (ryuutama.Item, error) {
	if item.ID == "" {
		item.ID = o.idGen.Generate()
	}
	err := o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		c.AddItem(item)
		return true, nil
	})
	return item, err
}

// UpdateItem replaces the outfit item with the same ID
func (o *orchestrator) UpdateItem(ctx context.Context, item ryuutama.Item) error {
	return o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		return true, c.UpdateItem(item)
	})
}

// RemoveItem drops the outfit item with the ID
func (o *orchestrator) RemoveItem(ctx context.Context, id string) error {
	return o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		return true, c.RemoveItem(id)
	})
}

// SetShield equips a shield, or empties the slot when nil
func (o *orchestrator) SetShield(ctx context.Context, shield *ryuutama.Shield) error {
	if shield != nil {
		s := *shield
		if s.ID == "" {
			s.ID = o.idGen.Generate()
		}
		shield = &s
	}
	return o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		c.EquipShield(shield)
		return true, nil
	})
}

// SetArmor equips armor, or empties the slot when nil
func (o *orchestrator) SetArmor(ctx context.Context, armor *ryuutama.Armor) error {
	if armor != nil {
		a := *armor
		if a.ID == "" {
			a.ID = o.idGen.Generate()
		}
		armor = &a
	}
	return o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		c.EquipArmor(armor)
		return true, nil
	})
}

// Buy pays for a shop item and places it in its slot
func (o *orchestrator) Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error) {
	if input == nil || input.ShopKey == "" {
		return nil, errors.InvalidArgument("shop key is required")
	}

	item, ok := ryuutama.LookupShopItem(input.ShopKey)
	if !ok {
		return nil, errors.NotFoundf("shop item %q not found", input.ShopKey)
	}

	id := o.idGen.Generate()
	var gold int
	err := o.mutate(ctx, func(c *ryuutama.Character) (bool, error) {
		if err := c.Purchase(item, id); err != nil {
			return false, err
		}
		gold = c.Gold
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "bought item", "item", item.Key, "price", item.Price, "gold", gold)
	return &BuyOutput{
		Item:          item,
		EquipmentID:   id,
		GoldRemaining: gold,
	}, nil
}

// Subscribe registers a listener on the session bus
func (o *orchestrator) Subscribe(name string, listener Listener) func() {
	if listener == nil {
		return func() {}
	}

	priority := o.nextPriority
	if old, ok := o.subs[name]; ok {
		priority = old.priority
		if err := o.bus.Unsubscribe(old.id); err != nil {
			slog.Warn("failed to drop replaced listener", "name", name, "error", err)
		}
	} else {
		o.nextPriority++
	}

	id := o.bus.SubscribeFunc(EventCharacterChanged, priority, func(_ context.Context, event events.Event) error {
		value, ok := event.Context().Get(ContextChange)
		if !ok {
			return nil
		}
		change, ok := value.(Change)
		if !ok {
			return nil
		}
		change.Character = change.Character.Clone()
		listener(change)
		return nil
	})
	o.subs[name] = subscription{id: id, priority: priority}

	return func() {
		current, ok := o.subs[name]
		if !ok || current.id != id {
			return
		}
		delete(o.subs, name)
		if err := o.bus.Unsubscribe(id); err != nil {
			slog.Warn("failed to unsubscribe listener", "name", name, "error", err)
		}
	}
}

// notify publishes the change; each listener clones its own snapshot
func (o *orchestrator) notify(ctx context.Context, kind ChangeKind) {
	event := events.NewGameEvent(EventCharacterChanged, nil, nil)
	event.Context().Set(ContextChange, Change{
		Kind:      kind,
		Character: o.character,
		Path:      o.path,
		Unsaved:   o.unsaved,
	})
	if err := o.bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish change", "kind", kind, "error", err)
	}
}

// fileStem turns a character name into a file name without separators
func fileStem(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return unnamedFile
	}
	return strings.NewReplacer("/", "_", `\`, "_").Replace(name)
}
