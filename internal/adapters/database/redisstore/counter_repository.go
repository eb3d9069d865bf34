// Package redisstore keeps voucher sequence counters in Redis.
package redisstore

import (
	"context"
	"net/http"

	"github.com/SscSPs/voucher_management_app/internal/apperrors"
	portsrepo "github.com/SscSPs/voucher_management_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "counters:"

// CounterRepository maps each counter to a Redis integer key bumped with INCR.
type CounterRepository struct {
	client *redis.Client
}

// NewCounterRepository wraps an existing client.
func NewCounterRepository(client *redis.Client) *CounterRepository {
	return &CounterRepository{client: client}
}

var _ portsrepo.CounterRepository = (*CounterRepository)(nil)

// Increment runs INCR, which Redis creates at zero when the key is absent.
func (r *CounterRepository) Increment(ctx context.Context, key string) (int64, error) {
	value, err := r.client.Incr(ctx, keyPrefix+key).Result()
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to increment counter "+key, err)
	}
	return value, nil
}
