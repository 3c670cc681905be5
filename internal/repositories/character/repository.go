// Package character defines the interface for finalized character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/character-builder/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/character-builder/internal/entities"
)

// Repository defines the interface for finalized character persistence.
// Characters are immutable once created; there is no update operation.
type Repository interface {
	// Create stores a finalized character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the ID is taken
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByPlayerID lists a player's characters, newest first
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)

	// Delete removes a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for storing a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for storing a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// ListByPlayerIDInput defines the input for listing a player's characters
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's characters
type ListByPlayerIDOutput struct {
	Characters []*entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}
