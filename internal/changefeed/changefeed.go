// Package changefeed carries row-change notifications for a fight's roster.
// Events are invalidation triggers only: consumers re-read the store and never
// trust an event for row content.
package changefeed

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Table names a store table an event refers to
type Table string

// Tables that emit events
const (
	TableFights       Table = "fights"
	TableParticipants Table = "fight_participants"
)

// Op is the kind of row change
type Op string

// Row operations
const (
	OpInsert Op = "insert"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Event reports that a row affecting a fight changed. It is itself a
// core.Entity naming the changed row, so it can ride a game event bus.
type Event struct {
	FightID string    `json:"fight_id"`
	Table   Table     `json:"table"`
	Op      Op        `json:"op"`
	RowID   string    `json:"row_id,omitempty"`
	Kind    string    `json:"kind,omitempty"`
	At      time.Time `json:"at"`
}

// RowChanged builds the event for a write to row. Kind is the row's entity
// type, so consumers can tell a player change from an enemy change.
func RowChanged(fightID string, table Table, op Op, row core.Entity, at time.Time) Event {
	return Event{
		FightID: fightID,
		Table:   table,
		Op:      op,
		RowID:   row.GetID(),
		Kind:    row.GetType(),
		At:      at,
	}
}

func (e Event) GetID() string { return e.RowID }

func (e Event) GetType() string { return e.Kind }

var _ core.Entity = Event{}

// DefaultBuffer is the per-subscription event buffer
const DefaultBuffer = 16

//go:generate mockgen -destination=mock/mock_feed.go -package=changefeedmock github.com/KirkDiggler/fight-tracker/internal/changefeed Publisher

// Publisher emits events after a committed write
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Subscriber opens a subscription scoped to one fight
type Subscriber interface {
	// Subscribe returns once the subscription is live; events published after
	// it returns are delivered
	Subscribe(ctx context.Context, fightID string) (Subscription, error)
}

// Subscription is a live stream of events for one fight. When the buffer is
// full new events are dropped: a pending event already forces a refetch.
type Subscription interface {
	Events() <-chan Event
	Close() error
}

// Feed publishes and subscribes
type Feed interface {
	Publisher
	Subscriber
}

// Channel returns the pub/sub channel name for a fight
func Channel(fightID string) string {
	return string(TableParticipants) + ":" + fightID
}

func offer(ch chan Event, e Event) bool {
	select {
	case ch <- e:
		return true
	default:
		return false
	}
}
