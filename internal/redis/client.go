// Package redis wraps the go-redis client used for the change feed, the
// account directory and the character-sheet collaborator.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/fight-tracker/internal/errors"
)

// Options tunes the connection pool. The zero value uses go-redis defaults.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

func (o *Options) universal(endpoints []string) *redis.UniversalOptions {
	u := &redis.UniversalOptions{
		Addrs:           endpoints,
		PoolSize:        o.PoolSize,
		MinIdleConns:    o.MinIdleConns,
		ConnMaxIdleTime: o.ConnMaxIdleTime,
		MaxRetries:      o.MaxRetries,
	}
	if o.UseTLS {
		u.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 self-signed certs in dev
		}
	}
	return u
}

// NewClient connects to a single node.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis: endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}
	return redis.NewClient(opts.universal([]string{endpoint}).Simple()), nil
}

// Connect returns a single-node client for one endpoint and a cluster client
// for several. Pub/sub on a cluster is broadcast to every node, which is fine
// at roster volume.
func Connect(endpoints []string, opts *Options) (Client, error) {
	if len(endpoints) == 0 {
		return nil, errors.InvalidArgument("redis: at least one endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}
	if len(endpoints) == 1 {
		return NewClient(endpoints[0], opts)
	}
	return redis.NewClusterClient(opts.universal(endpoints).Cluster()), nil
}
