package main

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/food-planner/seeder/internal/core/ports"
	"github.com/food-planner/seeder/internal/core/service"
	"github.com/food-planner/seeder/internal/fixtures"
	"github.com/food-planner/seeder/internal/infrastructure/config"
	mongoinfra "github.com/food-planner/seeder/internal/infrastructure/db/mongo"
	redisinfra "github.com/food-planner/seeder/internal/infrastructure/db/redis"
	"github.com/food-planner/seeder/pkg/logger"
)

// app holds the wired dependencies shared by all commands.
type app struct {
	cfg   *config.Config
	log   zerolog.Logger
	mongo *mongo.Client
	db    *mongo.Database
	redis *goredis.Client
	lock  *redisinfra.SeedLock
	seed  ports.SeedService
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.Init(loggerOptions(cfg))

	set, err := fixtures.Load()
	if err != nil {
		return nil, err
	}

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, log: log, mongo: client, db: db}

	rcfg := redisinfra.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	if rcfg.Enabled() {
		rdb, err := redisinfra.Connect(ctx, rcfg)
		if err != nil {
			a.close()
			return nil, err
		}
		a.redis = rdb
		a.lock = redisinfra.NewSeedLock(rdb, cfg.Mongo.Database, cfg.Seed.LockTTL)
	}

	// A nil *SeedLock must not reach the service as a non-nil interface.
	var lock ports.SeedLock
	if a.lock != nil {
		lock = a.lock
	}
	a.seed = service.NewSeedService(
		cfg.Mongo.Database,
		set,
		mongoinfra.NewRoleRepository(db),
		mongoinfra.NewUserRepository(db),
		lock,
		log,
	)

	log.Debug().
		Str("database", cfg.Mongo.Database).
		Bool("lock", a.lock != nil).
		Msg("dependencies ready")
	return a, nil
}

// loggerOptions maps config onto logger settings. Production always logs
// JSON, whatever LOG_PRETTY says.
func loggerOptions(cfg *config.Config) logger.Options {
	return logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty && !cfg.IsProduction(),
		Service: "food-planner-seeder",
	}
}

func (a *app) close() {
	ctx := context.Background()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn().Err(err).Msg("redis close")
		}
	}
	if a.mongo != nil {
		if err := a.mongo.Disconnect(ctx); err != nil {
			a.log.Warn().Err(err).Msg("mongo disconnect")
		}
	}
}
