package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/fooddelivery-service/internal/config"
	"github.com/spec-kit/fooddelivery-service/internal/domain"
)

const profileCacheTTL = 5 * time.Minute

// Redis wraps the go-redis client and the profile read cache built on it.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects to Redis using the provided configuration.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &Redis{Client: client}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

func profileKey(userID int64) string {
	return fmt.Sprintf("profile:%d", userID)
}

// GetProfile returns a cached profile, or nil on miss or cache trouble.
func (r *Redis) GetProfile(ctx context.Context, userID int64) *domain.UserProfile {
	if r == nil || r.Client == nil {
		return nil
	}
	raw, err := r.Client.Get(ctx, profileKey(userID)).Bytes()
	if err != nil {
		return nil
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil
	}
	return &profile
}

// SetProfile caches a profile with a short TTL. Failures are ignored; the
// cache is best effort.
func (r *Redis) SetProfile(ctx context.Context, profile *domain.UserProfile) {
	if r == nil || r.Client == nil || profile == nil {
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	_ = r.Client.Set(ctx, profileKey(profile.UserID), raw, profileCacheTTL).Err()
}

// InvalidateProfile drops the cached copy after any profile mutation.
func (r *Redis) InvalidateProfile(ctx context.Context, userID int64) {
	if r == nil || r.Client == nil {
		return
	}
	_ = r.Client.Del(ctx, profileKey(userID)).Err()
}
