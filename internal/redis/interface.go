package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so stores can be handed a
// miniredis-backed client in tests
type Client interface {
	redis.UniversalClient
}
