package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/food-planner/seeder/internal/core/domain"
)

const (
	defaultTimeout    = 10 * time.Second
	disconnectTimeout = 5 * time.Second
	appName           = "food-planner-seeder"

	// namespaceExistsCode is returned by createCollection for an existing namespace.
	namespaceExistsCode = 48
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		dctx, dcancel := disconnectContext(ctx)
		defer dcancel()
		_ = client.Disconnect(dctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// disconnectContext returns a short-lived context for cleanup that survives
// cancellation or expiry of parent.
func disconnectContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(parent), disconnectTimeout)
}

// createCollection issues an explicit createCollection. The store's own error
// is kept in the chain next to the domain sentinel.
func createCollection(ctx context.Context, db *mongo.Database, name string) error {
	if err := db.CreateCollection(ctx, name); err != nil {
		var ce mongo.CommandError
		if errors.As(err, &ce) && ce.Code == namespaceExistsCode {
			return fmt.Errorf("create %s: %w: %w", name, domain.ErrCollectionExists, err)
		}
		return fmt.Errorf("create %s: %w", name, err)
	}
	return nil
}

func writeError(op, collection string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s %s: %w: %w", op, collection, domain.ErrDuplicateKey, err)
	}
	return fmt.Errorf("%s %s: %w", op, collection, err)
}
