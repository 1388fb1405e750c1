package ports

import (
	"context"

	"github.com/food-planner/seeder/internal/core/domain"
)

// RoleRepository persists role documents.
type RoleRepository interface {
	// CreateCollection explicitly creates the roles collection. It fails with
	// domain.ErrCollectionExists when the collection is already there.
	CreateCollection(ctx context.Context) error
	InsertMany(ctx context.Context, roles []domain.Role) error
	// FindAll returns every stored role ordered by id.
	FindAll(ctx context.Context) ([]domain.Role, error)
}

// UserRepository persists user documents with their embedded menus.
type UserRepository interface {
	CreateCollection(ctx context.Context) error
	Insert(ctx context.Context, user *domain.User) error
	FindAll(ctx context.Context) ([]domain.User, error)
}
