// Package account provides the account directory that carries combat roles
package account

//go:generate mockgen -destination=mock/mock_repository.go -package=accountmock github.com/KirkDiggler/fight-tracker/internal/repositories/account Repository

import (
	"context"

	"github.com/KirkDiggler/fight-tracker/internal/entities"
)

// Repository defines the interface for account persistence
type Repository interface {
	// Get retrieves an account by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the account doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces an account
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// List returns every account ordered by ID
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting an account
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an account
type GetOutput struct {
	Account *entities.Account
}

// SaveInput defines the input for saving an account
type SaveInput struct {
	Account *entities.Account
}

// SaveOutput defines the output for saving an account
type SaveOutput struct {
	Account *entities.Account
}

// ListInput defines the input for listing accounts
type ListInput struct{}

// ListOutput defines the output for listing accounts
type ListOutput struct {
	Accounts []*entities.Account
}
