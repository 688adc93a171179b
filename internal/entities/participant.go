package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Participant entity types reported through core.Entity
const (
	ParticipantTypePlayer = "player"
	ParticipantTypeEnemy  = "enemy"
)

// Participant is a combatant row in a fight: a player linked to an account or
// a DM-controlled enemy
type Participant struct {
	ID         string    `json:"id"`
	FightID    string    `json:"fight_id"`
	IsEnemy    bool      `json:"is_enemy"`
	AccountID  string    `json:"account_id,omitempty"`
	Name       string    `json:"name"`
	CurrentHP  int32     `json:"current_hp"`
	MaxHP      int32     `json:"max_hp"`
	ArmorClass int32     `json:"armor_class"`
	Initiative int32     `json:"initiative"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// StatsHidden is set on roster copies where HP and AC were withheld from
	// the viewer. It is never persisted.
	StatsHidden bool `json:"stats_hidden,omitempty"`
}

// GetID implements core.Entity
func (p *Participant) GetID() string {
	return p.ID
}

// GetType implements core.Entity
func (p *Participant) GetType() string {
	if p.IsEnemy {
		return ParticipantTypeEnemy
	}
	return ParticipantTypePlayer
}

var _ core.Entity = (*Participant)(nil)

// EnemyAttributes is the full attribute set required to add an enemy
type EnemyAttributes struct {
	Name       string
	CurrentHP  int32
	MaxHP      int32
	ArmorClass int32
	Initiative int32
}

// ParticipantPatch is a partial update; nil fields are left unchanged
type ParticipantPatch struct {
	Name       *string
	CurrentHP  *int32
	MaxHP      *int32
	ArmorClass *int32
	Initiative *int32
}

// IsEmpty reports whether the patch changes nothing
func (p ParticipantPatch) IsEmpty() bool {
	return p.Name == nil && p.CurrentHP == nil && p.MaxHP == nil &&
		p.ArmorClass == nil && p.Initiative == nil
}
