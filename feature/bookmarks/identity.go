package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookmark-sync/feature/bookmarks/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	// identityKeyPrefix namespaces cached google_id -> user id entries.
	identityKeyPrefix = "bookmarks:identity:"
	// lookupTimeout bounds a shared lookup, which no single caller owns.
	lookupTimeout = 5 * time.Second
)

// IdentityResolver maps an external user id to the internal user key.
type IdentityResolver interface {
	// Resolve returns ErrUserNotFound when the id is unknown.
	Resolve(ctx context.Context, googleID string) (int64, error)
}

// DBResolver resolves identities from the users table.
type DBResolver struct {
	db *gorm.DB
}

// NewDBResolver creates a resolver reading from the given database.
func NewDBResolver(db *gorm.DB) *DBResolver {
	return &DBResolver{db: db}
}

// Resolve looks up the user id for googleID.
func (r *DBResolver) Resolve(ctx context.Context, googleID string) (int64, error) {
	if googleID == "" {
		return 0, ErrUserNotFound
	}

	var user models.User
	err := r.db.WithContext(ctx).
		Select("id").
		Where("google_id = ?", googleID).
		Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrUserNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve user: %w", err)
	}
	return user.ID, nil
}

// CachedResolver is a read-through Redis cache in front of another resolver.
// Unknown users are never cached, and Redis failures fall back to the
// wrapped resolver.
type CachedResolver struct {
	next   IdentityResolver
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
	group  singleflight.Group
}

// NewCachedResolver wraps next with a Redis cache.
func NewCachedResolver(next IdentityResolver, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedResolver {
	return &CachedResolver{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Resolve returns the cached user id or resolves and caches it.
func (r *CachedResolver) Resolve(ctx context.Context, googleID string) (int64, error) {
	key := identityKeyPrefix + googleID

	id, err := r.client.Get(ctx, key).Int64()
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, redis.Nil) {
		r.logger.Warn("Identity cache read failed", zap.String("google_id", googleID), zap.Error(err))
	}

	// Concurrent misses for the same id share one lookup. It runs on a context
	// detached from the caller that started it so a cancelled caller cannot
	// fail the others waiting on the same flight.
	ch := r.group.DoChan(googleID, func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lookupTimeout)
		defer cancel()

		id, err := r.next.Resolve(lookupCtx, googleID)
		if err != nil {
			return nil, err
		}
		if err := r.client.Set(lookupCtx, key, id, r.ttl).Err(); err != nil {
			r.logger.Warn("Identity cache write failed", zap.String("google_id", googleID), zap.Error(err))
		}
		return id, nil
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(int64), nil
	}
}
