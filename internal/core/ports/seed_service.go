package ports

import (
	"context"

	"github.com/food-planner/seeder/internal/core/domain"
)

// SeedService writes the fixture set into an empty database and checks it back.
type SeedService interface {
	Seed(ctx context.Context) (*domain.SeedReport, error)
	Verify(ctx context.Context) (*domain.VerifyReport, error)
}

// SeedLock keeps concurrent seeding runs apart. Release is a no-op if the
// lock has already expired or was taken over by another holder.
type SeedLock interface {
	Acquire(ctx context.Context) error
	Release(ctx context.Context) error
	MarkCompleted(ctx context.Context) error
}
