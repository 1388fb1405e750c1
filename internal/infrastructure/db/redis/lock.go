package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/food-planner/seeder/internal/core/domain"
)

const defaultLockTTL = time.Minute

// releaseScript deletes the lock only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SeedLock keeps two seeder processes from writing the same database at once.
// Key format: seed:lock:<database>. Completed runs are recorded under
// seed:last:<database>.
type SeedLock struct {
	client   *redis.Client
	database string
	ttl      time.Duration
	token    string
	now      func() time.Time
}

// NewSeedLock creates a SeedLock for database. A non-positive ttl falls back
// to defaultLockTTL.
func NewSeedLock(client *redis.Client, database string, ttl time.Duration) *SeedLock {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &SeedLock{client: client, database: database, ttl: ttl, now: time.Now}
}

// Acquire takes the lock or fails with domain.ErrSeedInProgress.
func (l *SeedLock) Acquire(ctx context.Context) error {
	token, err := newToken()
	if err != nil {
		return fmt.Errorf("seed lock token: %w", err)
	}

	ok, err := l.client.SetNX(ctx, l.lockKey(), token, l.ttl).Result()
	if err != nil {
		return fmt.Errorf("seed lock acquire: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s is locked", domain.ErrSeedInProgress, l.database)
	}
	l.token = token
	return nil
}

// Release drops the lock if this holder still owns it.
func (l *SeedLock) Release(ctx context.Context) error {
	if l.token == "" {
		return nil
	}
	if err := releaseScript.Run(ctx, l.client, []string{l.lockKey()}, l.token).Err(); err != nil {
		return fmt.Errorf("seed lock release: %w", err)
	}
	l.token = ""
	return nil
}

// MarkCompleted stores the completion time of a successful run.
func (l *SeedLock) MarkCompleted(ctx context.Context) error {
	return l.client.Set(ctx, l.lastKey(), l.now().UTC().Format(time.RFC3339), 0).Err()
}

// LastCompleted returns when the database was last seeded successfully, or
// the zero time if it never was.
func (l *SeedLock) LastCompleted(ctx context.Context) (time.Time, error) {
	v, err := l.client.Get(ctx, l.lastKey()).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("seed last run: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("seed last run: %w", err)
	}
	return ts, nil
}

func (l *SeedLock) lockKey() string {
	return "seed:lock:" + l.database
}

func (l *SeedLock) lastKey() string {
	return "seed:last:" + l.database
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
