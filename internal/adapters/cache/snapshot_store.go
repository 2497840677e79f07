package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

var _ domain.SnapshotStore = (*RedisSnapshotStore)(nil)

// RedisSnapshotStore keeps one JSON blob per user with the widget-facing
// state. Snapshots are rebuilt from Postgres on a miss, so no TTL: they
// live until overwritten or the user erases their data.
type RedisSnapshotStore struct {
	rdb *redis.Client
}

func NewRedisSnapshotStore(rdb *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{rdb: rdb}
}

func (s *RedisSnapshotStore) key(userID string) string {
	return fmt.Sprintf("snapshot:%s", userID)
}

func (s *RedisSnapshotStore) Save(ctx context.Context, userID string, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("cache: marshal snapshot failed: %w", err)
	}

	if err := s.rdb.Set(ctx, s.key(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("cache: save snapshot failed: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Load(ctx context.Context, userID string) (*domain.Snapshot, error) {
	val, err := s.rdb.Get(ctx, s.key(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("cache: load snapshot failed: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		// Corrupted blob: drop it and report a miss so the caller rebuilds.
		s.rdb.Del(ctx, s.key(userID))
		return nil, domain.ErrSnapshotNotFound
	}

	return &snap, nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, userID string) error {
	if err := s.rdb.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("cache: delete snapshot failed: %w", err)
	}
	return nil
}
