package character

import (
	"context"
	"log/slog"
	"path/filepath"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/ryuutama-sheet/internal/entities/ryuutama"
	"github.com/KirkDiggler/ryuutama-sheet/internal/errors"
	"github.com/KirkDiggler/ryuutama-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/ryuutama-sheet/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	dirIndexPrefix     = "character:dir:"

	fieldDocument = "document"
	fieldModified = "modified"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	dir    string
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// Dir is the directory listed when ListInput.Dir is empty
	Dir string
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed character repository. Documents live in a
// hash per path and every directory keeps a set of the paths saved under it.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		dir:    cfg.Dir,
	}, nil
}

func documentKey(path string) string {
	return characterKeyPrefix + filepath.Clean(path)
}

func dirKey(dir string) string {
	return dirIndexPrefix + filepath.Clean(dir)
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
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

	path := filepath.Clean(input.Path)

	// Start transaction
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, documentKey(path),
		fieldDocument, data,
		fieldModified, r.clock.Now().UnixNano(),
	)
	pipe.SAdd(ctx, dirKey(filepath.Dir(path)), path)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeSaveFailed, "failed to store character").
			WithMeta("path", input.Path)
	}

	slog.DebugContext(ctx, "saved character", "path", path, "bytes", len(data))
	return &SaveOutput{Path: input.Path}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	result, err := r.client.HGet(ctx, documentKey(input.Path), fieldDocument).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.LoadFailedf("no character stored at %s", input.Path).
				WithMeta("path", input.Path)
		}
		return nil, errors.WrapWithCode(err, errors.CodeLoadFailed, "failed to read character").
			WithMeta("path", input.Path)
	}

	character, err := ryuutama.Unmarshal([]byte(result))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", filepath.Base(input.Path)).
			WithMeta("path", input.Path)
	}

	return &LoadOutput{Path: input.Path, Character: character}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	dir := input.Dir
	if dir == "" {
		dir = r.dir
	}

	paths, err := r.client.SMembers(ctx, dirKey(dir)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters in %s", dir)
	}

	previews := make([]ryuutama.Preview, 0, len(paths))
	for _, path := range paths {
		preview, err := r.preview(ctx, path)
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable character", "path", path, "error", err)
			continue
		}
		previews = append(previews, preview)
	}

	sortNewestFirst(previews)
	return &ListOutput{Previews: limit(previews, input.Limit)}, nil
}

func (r *redisRepository) Preview(ctx context.Context, input PreviewInput) (*PreviewOutput, error) {
	if input.Path == "" {
		return nil, errors.InvalidArgument(errPathEmpty)
	}

	preview, err := r.preview(ctx, input.Path)
	if err != nil {
		return nil, err
	}
	return &PreviewOutput{Preview: preview}, nil
}

func (r *redisRepository) preview(ctx context.Context, path string) (ryuutama.Preview, error) {
	fields, err := r.client.HGetAll(ctx, documentKey(path)).Result()
	if err != nil {
		return ryuutama.Preview{}, errors.WrapWithCode(err, errors.CodeLoadFailed, "failed to read character").
			WithMeta("path", path)
	}
	document, ok := fields[fieldDocument]
	if !ok {
		return ryuutama.Preview{}, errors.LoadFailedf("no character stored at %s", path).
			WithMeta("path", path)
	}

	preview, err := ryuutama.PeekPreview([]byte(document))
	if err != nil {
		return ryuutama.Preview{}, err
	}
	preview.Path = path
	if nanos, err := strconv.ParseInt(fields[fieldModified], 10, 64); err == nil {
		preview.LastModified = time.Unix(0, nanos)
	}
	return preview, nil
}
