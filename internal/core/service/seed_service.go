package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/food-planner/seeder/internal/api/metrics"
	"github.com/food-planner/seeder/internal/core/domain"
	"github.com/food-planner/seeder/internal/core/ports"
)

// SeedService writes a fixed SeedSet into the Roles and Users collections.
//
// Seed is not idempotent: it creates both collections
// explicitly and inserts with fixed ids, so a second run against the same
// database fails on the store. Nothing is rolled back on failure.
type SeedService struct {
	database string
	set      *domain.SeedSet
	roles    ports.RoleRepository
	users    ports.UserRepository
	lock     ports.SeedLock
	log      zerolog.Logger
}

// NewSeedService returns a SeedService. lock may be nil.
func NewSeedService(
	database string,
	set *domain.SeedSet,
	roles ports.RoleRepository,
	users ports.UserRepository,
	lock ports.SeedLock,
	log zerolog.Logger,
) *SeedService {
	return &SeedService{
		database: database,
		set:      set,
		roles:    roles,
		users:    users,
		lock:     lock,
		log:      log.With().Str("database", database).Logger(),
	}
}

// Seed runs the seeding sequence once: create Roles, insert roles, create
// Users, insert users. The first failure aborts the run.
func (s *SeedService) Seed(ctx context.Context) (*domain.SeedReport, error) {
	start := time.Now()

	report, err := s.seed(ctx)
	elapsed := time.Since(start)
	metrics.SeedRunDuration.Observe(elapsed.Seconds())

	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues(resultLabel(err)).Inc()
		s.log.Error().Err(err).Dur("elapsed", elapsed).Msg("seeding failed")
		return nil, err
	}

	metrics.SeedRunsTotal.WithLabelValues("success").Inc()
	report.Duration = elapsed
	s.log.Info().
		Int("roles", report.RolesInserted).
		Int("users", report.UsersInserted).
		Dur("elapsed", elapsed).
		Msg("seeding completed")
	return report, nil
}

func (s *SeedService) seed(ctx context.Context) (*domain.SeedReport, error) {
	if s.lock != nil {
		if err := s.lock.Acquire(ctx); err != nil {
			return nil, err
		}
		defer func() {
			if err := s.lock.Release(context.WithoutCancel(ctx)); err != nil {
				s.log.Warn().Err(err).Msg("failed to release seed lock")
			}
		}()
	}

	report := &domain.SeedReport{Database: s.database}

	if err := s.roles.CreateCollection(ctx); err != nil {
		return nil, fmt.Errorf("seed roles: %w", err)
	}
	if err := s.roles.InsertMany(ctx, s.set.Roles); err != nil {
		return nil, fmt.Errorf("seed roles: %w", err)
	}
	report.RolesInserted = len(s.set.Roles)
	metrics.DocumentsInsertedTotal.WithLabelValues("Roles").Add(float64(len(s.set.Roles)))
	s.log.Debug().Int("count", len(s.set.Roles)).Msg("roles inserted")

	if err := s.users.CreateCollection(ctx); err != nil {
		return nil, fmt.Errorf("seed users: %w", err)
	}
	for i := range s.set.Users {
		u := &s.set.Users[i]
		if err := s.users.Insert(ctx, u); err != nil {
			return nil, fmt.Errorf("seed users: %w", err)
		}
		report.UsersInserted++
		metrics.DocumentsInsertedTotal.WithLabelValues("Users").Inc()
		s.log.Debug().Str("username", u.Username).Int("menu_items", len(u.Menu)).Msg("user inserted")
	}

	if s.lock != nil {
		if err := s.lock.MarkCompleted(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to record seed completion")
		}
	}

	return report, nil
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrCollectionExists):
		return "collection_exists"
	case errors.Is(err, domain.ErrDuplicateKey):
		return "duplicate_key"
	case errors.Is(err, domain.ErrSeedInProgress):
		return "locked"
	default:
		return "error"
	}
}
