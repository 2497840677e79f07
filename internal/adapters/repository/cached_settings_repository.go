package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

var _ domain.SettingsRepository = (*CachedSettingsRepository)(nil)

// CachedSettingsRepository fronts the settings store with Redis.
// Settings are read on every intake adjustment, so this keeps the hot
// path off Postgres; cache failures fall through to the next layer.
type CachedSettingsRepository struct {
	next  domain.SettingsRepository
	cache *redis.Client
}

func NewCachedSettingsRepository(next domain.SettingsRepository, cache *redis.Client) *CachedSettingsRepository {
	return &CachedSettingsRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedSettingsRepository) cacheKey(userID string) string {
	return fmt.Sprintf("settings:%s", userID)
}

func (r *CachedSettingsRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate settings for user %s: %v", userID, err)
	}
}

func (r *CachedSettingsRepository) Get(ctx context.Context, userID string) (*domain.Settings, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var settings domain.Settings
		if err := json.Unmarshal([]byte(val), &settings); err == nil {
			return &settings, nil
		}

		log.Printf("[CACHE] Corrupted settings for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	settings, err := r.next.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(settings); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return settings, nil
}

func (r *CachedSettingsRepository) Upsert(ctx context.Context, settings *domain.Settings) error {
	if err := r.next.Upsert(ctx, settings); err != nil {
		return err
	}
	r.invalidate(ctx, settings.UserID)
	return nil
}

func (r *CachedSettingsRepository) Delete(ctx context.Context, userID string) error {
	if err := r.next.Delete(ctx, userID); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}
