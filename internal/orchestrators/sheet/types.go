package sheet

import (
	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
)

// ChangeKind names what happened to the session character
type ChangeKind string

// Change kinds delivered to listeners
const (
	ChangeNew    ChangeKind = "new"
	ChangeLoaded ChangeKind = "loaded"
	ChangeEdited ChangeKind = "edited"
	ChangeSaved  ChangeKind = "saved"
)

// Change is the notification passed to every listener. Character is a
// snapshot; listeners may keep or modify it freely.
type Change struct {
	Kind      ChangeKind
	Character *ryuutama.Character
	Path      string
	Unsaved   bool
}

// Listener receives session changes
type Listener func(change Change)

// SaveInput defines the request for saving the session character.
// An empty Path falls back to the current path, then to the save directory.
type SaveInput struct {
	Path string
}

// SaveOutput defines the response for saving the session character
type SaveOutput struct {
	Path string
}

// LoadInput defines the request for loading a character into the session
type LoadInput struct {
	Path string
}

// LoadOutput defines the response for loading a character into the session
type LoadOutput struct {
	Path      string
	Character *ryuutama.Character
	// IDsAssigned counts equipment entries that arrived without an ID
	IDsAssigned int
}

// ExportInput defines the request for exporting the session character.
// An empty Path becomes <save_dir>/<name>_<YYYYMMDD>.pdf.
type ExportInput struct {
	Path string
}

// ExportOutput defines the response for exporting the session character
type ExportOutput struct {
	Path string
}

// ListRecentInput defines the request for listing saved characters.
// Limit <= 0 uses the configured default.
type ListRecentInput struct {
	Limit int
}

// ListRecentOutput defines the response for listing saved characters
type ListRecentOutput struct {
	Previews []ryuutama.Preview
}

// PreviewInput defines the request for previewing a saved character
type PreviewInput struct {
	Path string
}

// PreviewOutput defines the response for previewing a saved character
type PreviewOutput struct {
	Preview ryuutama.Preview
}

// RollConditionCheckInput defines the request for a condition check roll
type RollConditionCheckInput struct {
	Stat ryuutama.StatKey
}

// RollConditionCheckOutput defines the response for a condition check roll
type RollConditionCheckOutput struct {
	Stat  ryuutama.StatKey
	Roll  int
	Total int
	Cured []ryuutama.StatusKey
}

// BuyInput defines the request for buying from the shop
type BuyInput struct {
	ShopKey string
}

// BuyOutput defines the response for buying from the shop
type BuyOutput struct {
	Item          ryuutama.ShopItem
	EquipmentID   string
	GoldRemaining int
}
