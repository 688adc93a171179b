// Package fight provides persistence for fights and their participants
package fight

//go:generate mockgen -destination=mock/mock_repository.go -package=fightmock github.com/KirkDiggler/fight-tracker/internal/repositories/fight Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/fight-tracker/internal/entities"
)

// Repository defines the interface for fight and participant persistence
type Repository interface {
	// GetActiveFight returns the most recently created active fight.
	// Output.Fight is nil when no fight is active.
	// Returns errors.Internal for storage failures
	GetActiveFight(ctx context.Context, input GetActiveFightInput) (*GetActiveFightOutput, error)

	// GetFight retrieves a fight by ID in any status
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound (FIGHT_NOT_FOUND) if the fight doesn't exist
	GetFight(ctx context.Context, input GetFightInput) (*GetFightOutput, error)

	// ListParticipants returns a fight's roster ordered by initiative
	// descending, then insertion order
	// Returns errors.InvalidArgument for empty fight IDs
	ListParticipants(ctx context.Context, input ListParticipantsInput) (*ListParticipantsOutput, error)

	// GetParticipant retrieves a participant by ID
	// Returns errors.NotFound (PARTICIPANT_NOT_FOUND) if the row doesn't exist
	GetParticipant(ctx context.Context, input GetParticipantInput) (*GetParticipantOutput, error)

	// GetPlayerParticipant retrieves the row for an account in a fight
	// Returns errors.NotFound (PARTICIPANT_NOT_FOUND) if the account hasn't joined
	GetPlayerParticipant(ctx context.Context, input GetPlayerParticipantInput) (*GetPlayerParticipantOutput, error)

	// StartFight finishes every active fight, purges their participants and
	// inserts the new active fight in one transaction
	// Returns errors.AlreadyExists if a concurrent start won the active slot
	StartFight(ctx context.Context, input StartFightInput) (*StartFightOutput, error)

	// FinishFight marks an active fight finished and deletes its participants
	// in one transaction
	// Returns errors.NotFound (FIGHT_NOT_FOUND) if the fight is missing or not active
	FinishFight(ctx context.Context, input FinishFightInput) (*FinishFightOutput, error)

	// UpsertPlayerParticipant inserts or replaces the snapshot row keyed by
	// (fight_id, account_id)
	// Returns errors.NotFound (FIGHT_NOT_FOUND) if the fight is not active
	UpsertPlayerParticipant(ctx context.Context, input UpsertPlayerParticipantInput) (*UpsertPlayerParticipantOutput, error)

	// UpdatePlayerStats overwrites HP, max HP and AC of a participant
	// Returns errors.NotFound (PARTICIPANT_NOT_FOUND) if the row doesn't exist
	UpdatePlayerStats(ctx context.Context, input UpdatePlayerStatsInput) (*UpdatePlayerStatsOutput, error)

	// CreateEnemy inserts an enemy row into an active fight
	// Returns errors.NotFound (FIGHT_NOT_FOUND) if the fight is not active
	CreateEnemy(ctx context.Context, input CreateEnemyInput) (*CreateEnemyOutput, error)

	// UpdateParticipant applies a partial update
	// Returns errors.NotFound (PARTICIPANT_NOT_FOUND) if the row doesn't exist
	UpdateParticipant(ctx context.Context, input UpdateParticipantInput) (*UpdateParticipantOutput, error)

	// DeleteParticipant removes a participant row
	// Returns errors.NotFound (PARTICIPANT_NOT_FOUND) if the row doesn't exist
	DeleteParticipant(ctx context.Context, input DeleteParticipantInput) (*DeleteParticipantOutput, error)
}

// GetActiveFightInput defines the input for getting the active fight
type GetActiveFightInput struct{}

// GetActiveFightOutput defines the output for getting the active fight
type GetActiveFightOutput struct {
	Fight *entities.Fight
}

// GetFightInput defines the input for getting a fight
type GetFightInput struct {
	ID string
}

// GetFightOutput defines the output for getting a fight
type GetFightOutput struct {
	Fight *entities.Fight
}

// ListParticipantsInput defines the input for listing a roster
type ListParticipantsInput struct {
	FightID string
}

// ListParticipantsOutput defines the output for listing a roster
type ListParticipantsOutput struct {
	Participants []*entities.Participant
}

// GetParticipantInput defines the input for getting a participant
type GetParticipantInput struct {
	ID string
}

// GetParticipantOutput defines the output for getting a participant
type GetParticipantOutput struct {
	Participant *entities.Participant
}

// GetPlayerParticipantInput defines the input for finding a player's row
type GetPlayerParticipantInput struct {
	FightID   string
	AccountID string
}

// GetPlayerParticipantOutput defines the output for finding a player's row
type GetPlayerParticipantOutput struct {
	Participant *entities.Participant
}

// StartFightInput defines the input for starting a fight
type StartFightInput struct {
	Fight *entities.Fight
}

// StartFightOutput defines the output for starting a fight
type StartFightOutput struct {
	Fight            *entities.Fight
	FinishedFightIDs []string
}

// FinishFightInput defines the input for finishing a fight
type FinishFightInput struct {
	ID         string
	FinishedAt time.Time
}

// FinishFightOutput defines the output for finishing a fight
type FinishFightOutput struct {
	Fight              *entities.Fight
	ParticipantsPurged int64
}

// UpsertPlayerParticipantInput defines the input for a join snapshot.
// Participant.ID is used only when the row is created.
type UpsertPlayerParticipantInput struct {
	Participant *entities.Participant
}

// UpsertPlayerParticipantOutput defines the output for a join snapshot
type UpsertPlayerParticipantOutput struct {
	Participant *entities.Participant
	Created     bool
}

// UpdatePlayerStatsInput defines the input for re-snapshotting stats
type UpdatePlayerStatsInput struct {
	ID         string
	CurrentHP  int32
	MaxHP      int32
	ArmorClass int32
	UpdatedAt  time.Time
}

// UpdatePlayerStatsOutput defines the output for re-snapshotting stats
type UpdatePlayerStatsOutput struct {
	Participant *entities.Participant
}

// CreateEnemyInput defines the input for adding an enemy
type CreateEnemyInput struct {
	Participant *entities.Participant
}

// CreateEnemyOutput defines the output for adding an enemy
type CreateEnemyOutput struct {
	Participant *entities.Participant
}

// UpdateParticipantInput defines the input for a partial update
type UpdateParticipantInput struct {
	ID        string
	Patch     entities.ParticipantPatch
	UpdatedAt time.Time
}

// UpdateParticipantOutput defines the output for a partial update
type UpdateParticipantOutput struct {
	Participant *entities.Participant
}

// DeleteParticipantInput defines the input for deleting a participant
type DeleteParticipantInput struct {
	ID string
}

// DeleteParticipantOutput defines the output for deleting a participant
type DeleteParticipantOutput struct {
	// FightID of the deleted row, for change publication
	FightID string
}
