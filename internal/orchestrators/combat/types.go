package combat

import (
	"github.com/KirkDiggler/fight-tracker/internal/entities"
)

// GetActiveFightInput defines the request for the current fight
type GetActiveFightInput struct{}

// GetActiveFightOutput holds the active fight; Fight is nil when none is active
type GetActiveFightOutput struct {
	Fight *entities.Fight
}

// ListParticipantsInput defines the request for a roster
type ListParticipantsInput struct {
	FightID string
	// ViewerAccountID decides redaction; empty views as a player
	ViewerAccountID string
}

// ListParticipantsOutput holds the ordered roster as the viewer may see it
type ListParticipantsOutput struct {
	Participants []*entities.Participant
	ViewerIsDM   bool
}

// StartFightInput defines the request to start a fight
type StartFightInput struct {
	AccountID string
}

// StartFightOutput holds the new fight and the fights it replaced
type StartFightOutput struct {
	Fight            *entities.Fight
	FinishedFightIDs []string
}

// FinishFightInput defines the request to finish a fight
type FinishFightInput struct {
	AccountID string
	FightID   string
}

// FinishFightOutput holds the finished fight
type FinishFightOutput struct {
	Fight              *entities.Fight
	ParticipantsPurged int64
}

// JoinFightInput defines the request for a player to join or re-join
type JoinFightInput struct {
	AccountID  string
	FightID    string
	Initiative int32
}

// JoinFightOutput holds the player's participant row
type JoinFightOutput struct {
	Participant *entities.Participant
	Created     bool
}

// SetOwnHPInput sets the caller's absolute current HP
type SetOwnHPInput struct {
	AccountID string
	FightID   string
	HP        int32
}

// SetOwnHPOutput holds the updated row
type SetOwnHPOutput struct {
	Participant *entities.Participant
}

// SetParticipantHPInput lets the DM set any participant's current HP
type SetParticipantHPInput struct {
	AccountID     string
	ParticipantID string
	HP            int32
}

// SetParticipantHPOutput holds the updated row
type SetParticipantHPOutput struct {
	Participant *entities.Participant
}

// AddEnemyInput defines the request to add an enemy
type AddEnemyInput struct {
	AccountID string
	FightID   string
	Enemy     entities.EnemyAttributes
}

// AddEnemyOutput holds the created enemy
type AddEnemyOutput struct {
	Participant *entities.Participant
}

// AddMonsterInput adds an enemy from a bestiary stat block
type AddMonsterInput struct {
	AccountID  string
	FightID    string
	MonsterKey string
	// Name overrides the stat block name, e.g. "Goblin 2"
	Name string
	// Initiative is rolled as 1d20 + DEX modifier when nil
	Initiative *int32
}

// AddMonsterOutput holds the created enemy and how its initiative was set
type AddMonsterOutput struct {
	Participant    *entities.Participant
	InitiativeRoll *InitiativeRoll
}

// InitiativeRoll describes a rolled initiative; nil when supplied by the caller
type InitiativeRoll struct {
	Die      int32
	Modifier int32
	Total    int32
}

// EditEnemyInput applies a partial update to an enemy
type EditEnemyInput struct {
	AccountID     string
	ParticipantID string
	Patch         entities.ParticipantPatch
}

// EditEnemyOutput holds the updated enemy
type EditEnemyOutput struct {
	Participant *entities.Participant
}

// DeleteEnemyInput removes an enemy
type DeleteEnemyInput struct {
	AccountID     string
	ParticipantID string
}

// DeleteEnemyOutput names the fight the enemy was removed from
type DeleteEnemyOutput struct {
	FightID string
}

// ResyncStatsInput re-snapshots the caller's HP and AC from the sheet
type ResyncStatsInput struct {
	AccountID string
	FightID   string
}

// ResyncStatsOutput holds the refreshed row
type ResyncStatsOutput struct {
	Participant *entities.Participant
}
