// Package games provides the interface for saved-game persistence
package games

//go:generate mockgen -destination=mock/mock_repository.go -package=gamesmock github.com/KirkDiggler/rpg-tactics/internal/repositories/games Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

// Repository defines the interface for saved-game persistence.
// Saving an existing ID overwrites it; there is no versioning.
type Repository interface {
	// Save stores a game, replacing any previous save with the same ID
	// Returns errors.InvalidArgument for missing data or ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a saved game by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the game doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every saved game, most recently saved first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a saved game
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the game doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GameData is the persisted form of a match
type GameData struct {
	ID         string     `json:"id"`
	BoardSize  int        `json:"board_size"`
	Units      []UnitData `json:"units"`
	ActiveSide string     `json:"active_side"`
	Phase      string     `json:"phase"`
	Winner     string     `json:"winner,omitempty"`
	Turn       int        `json:"turn"`
	Theme      string     `json:"theme"`
	SavedAt    time.Time  `json:"saved_at"`
}

// UnitData is one placed unit in a save
type UnitData struct {
	ID          string  `json:"id"`
	Kind        string  `json:"kind"`
	Level       int     `json:"level"`
	Attack      float64 `json:"attack"`
	Defence     float64 `json:"defence"`
	Health      float64 `json:"health"`
	AttackRange int     `json:"attack_range"`
	MoveRange   int     `json:"move_range"`
	Position    int     `json:"position"`
}

// SaveInput defines the input for saving a game
type SaveInput struct {
	Data *GameData
}

// SaveOutput defines the output for saving a game
type SaveOutput struct {
	Data *GameData
}

// GetInput defines the input for getting a game
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a game
type GetOutput struct {
	Data *GameData
}

// ListInput defines the input for listing games
type ListInput struct {
	// Limit caps the result; zero means no limit
	Limit int
}

// ListOutput defines the output for listing games
type ListOutput struct {
	Games []*GameData
}

// DeleteInput defines the input for deleting a game
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a game
type DeleteOutput struct{}

const (
	errDataNil  = "game data cannot be nil"
	errIDEmpty  = "game ID cannot be empty"
	errNotFound = "game %s not found"
)

func validateSave(input SaveInput) error {
	if input.Data == nil {
		return errors.InvalidArgument(errDataNil)
	}
	if input.Data.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	return nil
}
