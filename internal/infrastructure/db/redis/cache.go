package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/credibank/credit-system/internal/api/metrics"
	"github.com/credibank/credit-system/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// CreditCache is a TTL read cache for credit-by-code lookups backed by Redis.
// Credits are immutable after creation, so cached entries cannot go stale
// within their TTL. Key format: credit:code:<credit_code>
type CreditCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCreditCache creates a CreditCache wrapping the given Redis client.
// If ttl <= 0, defaultCacheTTL is used.
func NewCreditCache(client *redis.Client, ttl time.Duration) *CreditCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CreditCache{client: client, ttl: ttl}
}

// Get returns the cached credit for the code, or (nil, nil) on a miss.
func (c *CreditCache) Get(ctx context.Context, creditCode string) (*domain.Credit, error) {
	data, err := c.client.Get(ctx, c.key(creditCode)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CreditLookupCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var credit domain.Credit
	if err := json.Unmarshal(data, &credit); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}

	metrics.CreditLookupCacheTotal.WithLabelValues("hit").Inc()
	return &credit, nil
}

// Set stores the credit under its code (expires after the configured TTL).
func (c *CreditCache) Set(ctx context.Context, credit *domain.Credit) error {
	data, err := json.Marshal(credit)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(credit.CreditCode), data, c.ttl).Err()
}

func (c *CreditCache) key(creditCode string) string {
	return "credit:code:" + creditCode
}
