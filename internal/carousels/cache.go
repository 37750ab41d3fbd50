package carousels

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gracemeadow/meadowlane-backend/pkg/enums"
	"github.com/gracemeadow/meadowlane-backend/pkg/logger"
	"github.com/gracemeadow/meadowlane-backend/pkg/metrics"
	"github.com/gracemeadow/meadowlane-backend/pkg/redis"
)

// RenderCache keeps rendered carousel payloads in Redis so page renderers skip
// the store round-trips. A nil cache degrades to cache-off behavior; cache
// failures never fail the read path.
type RenderCache struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.CarouselMetrics
	logg    *logger.Logger
}

// NewRenderCache wires the cache. Client may be nil in tests or cache-off deploys.
func NewRenderCache(client *redis.Client, ttl time.Duration, m *metrics.CarouselMetrics, logg *logger.Logger) *RenderCache {
	return &RenderCache{client: client, ttl: ttl, metrics: m, logg: logg}
}

// Get returns the cached render payload, or nil on miss/error.
func (c *RenderCache) Get(ctx context.Context, page enums.Page, slug string) *RenderedCarouselDTO {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := c.client.Get(ctx, c.client.RenderKey(page.String(), slug))
	if err != nil {
		if !redis.IsMiss(err) && c.logg != nil {
			c.logg.Warn(ctx, "render cache read failed")
		}
		c.metrics.IncCache("miss")
		return nil
	}
	var payload RenderedCarouselDTO
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		c.metrics.IncCache("miss")
		return nil
	}
	c.metrics.IncCache("hit")
	return &payload
}

// Put stores the render payload with the configured TTL.
func (c *RenderCache) Put(ctx context.Context, page enums.Page, slug string, payload *RenderedCarouselDTO) {
	if c == nil || c.client == nil || payload == nil {
		return
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.client.RenderKey(page.String(), slug), raw, c.ttl); err != nil && c.logg != nil {
		c.logg.Warn(ctx, "render cache write failed")
	}
}

// Invalidate drops the cached payload for a slot.
func (c *RenderCache) Invalidate(ctx context.Context, page enums.Page, slug string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, c.client.RenderKey(page.String(), slug)); err != nil && c.logg != nil {
		c.logg.Warn(ctx, "render cache invalidation failed")
	}
}
