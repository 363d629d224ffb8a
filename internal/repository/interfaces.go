package repository

import (
	"context"

	"github.com/mpetrov/chathub/internal/domain"
)

// ServerRepository defines read operations over the server collection.
type ServerRepository interface {
	// Snapshot returns one consistent read view of every server, ordered by
	// primary key, with category names and membership rows attached.
	Snapshot(ctx context.Context) ([]domain.Server, error)
}

// CategoryRepository defines read operations over server categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
}
