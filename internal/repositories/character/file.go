package character

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
)

const (
	documentExt = ".json"

	// Error messages
	errCharacterNil = "character cannot be nil"
	errPathEmpty    = "path cannot be empty"
)

type fileRepository struct {
	dir string
}

// FileConfig contains configuration for the file-backed character repository.
type FileConfig struct {
	// Dir is the default directory for List; created before List and Preview
	Dir string
}

// Validate validates the FileConfig.
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("dir", cfg.Dir, vb)
	return vb.Build()
}

// NewFileStore creates a character repository keeping one JSON file per character
func NewFileStore(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &fileRepository{dir: cfg.Dir}, nil
}

func (r *fileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	data, err := ryuutama.Marshal(input.Character)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeSaveFailed, "failed to encode character").
			WithMeta("path", input.Path)
	}

	dir := filepath.Dir(input.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeSaveFailed, "failed to create save directory").
			WithMeta("path", input.Path)
	}

	if err := writeAtomic(dir, input.Path, data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeSaveFailed, "failed to write character file").
			WithMeta("path", input.Path)
	}

	slog.Debug("saved character", "path", input.Path, "bytes", len(data))
	return &SaveOutput{Path: input.Path}, nil
}

// writeAtomic writes to a temp file beside the destination and renames it
// over the destination, so a failed write leaves no partial file behind.
func writeAtomic(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func (r *fileRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeLoadFailed, "failed to read character file").
			WithMeta("path", input.Path)
	}

	character, err := ryuutama.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", filepath.Base(input.Path)).
			WithMeta("path", input.Path)
	}

	return &LoadOutput{Path: input.Path, Character: character}, nil
}

func (r *fileRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	dir := input.Dir
	if dir == "" {
		dir = r.dir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create save directory %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read save directory %s", dir)
	}

	previews := make([]ryuutama.Preview, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), documentExt) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		preview, err := previewFile(path)
		if err != nil {
			slog.Warn("skipping unreadable character file", "path", path, "error", err)
			continue
		}
		previews = append(previews, preview)
	}

	sortNewestFirst(previews)
	return &ListOutput{Previews: limit(previews, input.Limit)}, nil
}

func (r *fileRepository) Preview(_ context.Context, input PreviewInput) (*PreviewOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create save directory %s", r.dir)
	}

	preview, err := previewFile(input.Path)
	if err != nil {
		return nil, err
	}
	return &PreviewOutput{Preview: preview}, nil
}

func previewFile(path string) (ryuutama.Preview, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ryuutama.Preview{}, errors.WrapWithCode(err, errors.CodeLoadFailed, "failed to stat character file").
			WithMeta("path", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ryuutama.Preview{}, errors.WrapWithCode(err, errors.CodeLoadFailed, "failed to read character file").
			WithMeta("path", path)
	}

	preview, err := ryuutama.PeekPreview(data)
	if err != nil {
		return ryuutama.Preview{}, err
	}
	preview.Path = path
	preview.LastModified = info.ModTime()
	return preview, nil
}

func sortNewestFirst(previews []ryuutama.Preview) {
	sort.SliceStable(previews, func(i, j int) bool {
		if previews[i].LastModified.Equal(previews[j].LastModified) {
			return previews[i].Path < previews[j].Path
		}
		return previews[i].LastModified.After(previews[j].LastModified)
	})
}

func limit(previews []ryuutama.Preview, n int) []ryuutama.Preview {
	if n > 0 && len(previews) > n {
		return previews[:n]
	}
	return previews
}
