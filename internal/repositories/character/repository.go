// Package character persists character documents and lists saved characters
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/ryuutama-sheet/internal/repositories/character Repository

import (
	"context"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
)

// DefaultDirName is the folder under the user's home directory holding saved characters
const DefaultDirName = "RyuutamaCharacters"

// Repository stores one JSON document per character, addressed by path
type Repository interface {
	// Save writes the character document to the path
	// Returns errors.InvalidArgument for a nil character or empty path
	// Returns errors.SaveFailed when the document cannot be written
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Load reads the character document at the path
	// Returns errors.InvalidArgument for an empty path
	// Returns errors.LoadFailed when the document is missing, unreadable or malformed
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// List returns previews of the saved characters in a directory, newest first
	// Documents that cannot be read are skipped
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Preview returns the listing metadata for one saved character
	// Returns errors.LoadFailed when the document cannot be read
	Preview(ctx context.Context, input PreviewInput) (*PreviewOutput, error)
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Path      string
	Character *ryuutama.Character
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	Path string
}

// LoadInput defines the input for loading a character
type LoadInput struct {
	Path string
}

// LoadOutput defines the output for loading a character
type LoadOutput struct {
	Path      string
	Character *ryuutama.Character
}

// ListInput defines the input for listing saved characters.
// An empty Dir lists the store's default directory; Limit <= 0 means no limit.
type ListInput struct {
	Dir   string
	Limit int
}

// ListOutput defines the output for listing saved characters
type ListOutput struct {
	Previews []ryuutama.Preview
}

// PreviewInput defines the input for previewing a saved character
type PreviewInput struct {
	Path string
}

// PreviewOutput defines the output for previewing a saved character
type PreviewOutput struct {
	Preview ryuutama.Preview
}

// DefaultDir returns ~/RyuutamaCharacters, or a relative folder when the home
// directory cannot be resolved.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}
