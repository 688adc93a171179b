package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis every store here needs. Both the
// single-node and cluster clients satisfy it, as does one pointed at
// miniredis in tests.
type Client interface {
	redis.UniversalClient
}
