// Package entities provides core data structures for the fight tracker.
package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// FightStatus is the lifecycle state of a fight row
type FightStatus string

// Fight statuses. There is no "none" row: the absence of an active fight is NONE.
const (
	FightStatusActive   FightStatus = "active"
	FightStatusFinished FightStatus = "finished"
)

// Fight is one combat encounter
type Fight struct {
	ID         string      `json:"id"`
	DMID       string      `json:"dm_id"`
	Status     FightStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	FinishedAt *time.Time  `json:"finished_at,omitempty"`
}

// FightType is the core.Entity type of a fight row
const FightType = "fight"

func (f *Fight) GetID() string { return f.ID }

func (f *Fight) GetType() string { return FightType }

var _ core.Entity = (*Fight)(nil)

// IsActive reports whether the fight accepts joins and mutations
func (f *Fight) IsActive() bool {
	return f != nil && f.Status == FightStatusActive
}
