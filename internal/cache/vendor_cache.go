package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fixera/marketplace-api/internal/dto"
)

const vendorListKey = "vendors:public"

// VendorCache is a redis-backed TTL cache for the public vendor
// listing. It is never consulted for authorization lookups; those
// always hit the vendor registry. A nil *VendorCache is a no-op, so
// callers don't branch on whether redis is configured.
type VendorCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewVendorCache(rdb *redis.Client, ttl time.Duration, logger *zerolog.Logger) *VendorCache {
	return &VendorCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *VendorCache) Get(ctx context.Context) ([]dto.PublicVendorDTO, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, vendorListKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("vendor cache read failed")
		}
		return nil, false
	}

	var vendors []dto.PublicVendorDTO
	if err := json.Unmarshal(raw, &vendors); err != nil {
		c.logger.Warn().Err(err).Msg("vendor cache payload corrupt, dropping")
		c.rdb.Del(ctx, vendorListKey)
		return nil, false
	}
	return vendors, true
}

func (c *VendorCache) Set(ctx context.Context, vendors []dto.PublicVendorDTO) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(vendors)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, vendorListKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("vendor cache write failed")
	}
}

// Invalidate drops the cached listing, called after profile writes.
func (c *VendorCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, vendorListKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("vendor cache invalidation failed")
	}
}
