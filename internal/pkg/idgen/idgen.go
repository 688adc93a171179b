// Package idgen hands out row identifiers for fights and participants.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator returns a new identifier on every call. Implementations must be
// safe for concurrent use.
type Generator interface {
	Generate() string
}

// UUID issues random v4 UUIDs, optionally namespaced as "<prefix>_<uuid>".
type UUID struct {
	prefix string
}

// NewUUID returns the production generator.
func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

func (g *UUID) Generate() string {
	return join(g.prefix, uuid.NewString())
}

// Sequential issues "<prefix>_1", "<prefix>_2", ... so tests can assert on ids.
type Sequential struct {
	prefix string
	next   atomic.Uint64
}

func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

func (g *Sequential) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
