package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/brirusapps/waterpic-core/internal/core/domain"
)

var _ domain.RefreshPublisher = (*RedisRefreshPublisher)(nil)

// RedisRefreshPublisher notifies widget hosts over pub/sub that a user's
// data changed and the widget timeline should reload.
type RedisRefreshPublisher struct {
	rdb *redis.Client
}

func NewRedisRefreshPublisher(rdb *redis.Client) *RedisRefreshPublisher {
	return &RedisRefreshPublisher{rdb: rdb}
}

func (p *RedisRefreshPublisher) channel(userID string) string {
	return fmt.Sprintf("refresh:%s", userID)
}

func (p *RedisRefreshPublisher) PublishRefresh(ctx context.Context, userID string) error {
	if err := p.rdb.Publish(ctx, p.channel(userID), "reload").Err(); err != nil {
		return fmt.Errorf("cache: publish refresh failed: %w", err)
	}
	return nil
}
