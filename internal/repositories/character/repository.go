// Package character provides read access to the character sheet a player
// joins a fight with
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/fight-tracker/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/fight-tracker/internal/entities"
)

// Repository defines the interface for character-sheet persistence. Combat
// only reads through it; the Save methods back seeding and admin tools.
type Repository interface {
	// GetByAccount retrieves the character owned by an account
	// Returns errors.InvalidArgument for empty account IDs
	// Returns errors.NotFound if the account has no character
	// Returns errors.Internal for storage failures
	GetByAccount(ctx context.Context, input GetByAccountInput) (*GetByAccountOutput, error)

	// GetCombatStats retrieves the combat block of a character
	// Returns errors.InvalidArgument for empty character IDs
	// Returns errors.NotFound if no combat stats record exists
	// Returns errors.Internal for storage failures
	GetCombatStats(ctx context.Context, input GetCombatStatsInput) (*GetCombatStatsOutput, error)

	// SaveCharacter creates or replaces a character and its account index
	// Returns errors.InvalidArgument for validation failures
	SaveCharacter(ctx context.Context, input SaveCharacterInput) (*SaveCharacterOutput, error)

	// SaveCombatStats creates or replaces a combat stats record
	// Returns errors.InvalidArgument for validation failures
	SaveCombatStats(ctx context.Context, input SaveCombatStatsInput) (*SaveCombatStatsOutput, error)
}

// GetByAccountInput defines the input for looking up an account's character
type GetByAccountInput struct {
	AccountID string
}

// GetByAccountOutput defines the output for looking up an account's character
type GetByAccountOutput struct {
	Character *entities.Character
}

// GetCombatStatsInput defines the input for reading combat stats
type GetCombatStatsInput struct {
	CharacterID string
}

// GetCombatStatsOutput defines the output for reading combat stats
type GetCombatStatsOutput struct {
	Stats *entities.CombatStats
}

// SaveCharacterInput defines the input for saving a character
type SaveCharacterInput struct {
	Character *entities.Character
}

// SaveCharacterOutput defines the output for saving a character
type SaveCharacterOutput struct {
	Character *entities.Character
}

// SaveCombatStatsInput defines the input for saving combat stats
type SaveCombatStatsInput struct {
	Stats *entities.CombatStats
}

// SaveCombatStatsOutput defines the output for saving combat stats
type SaveCombatStatsOutput struct {
	Stats *entities.CombatStats
}
