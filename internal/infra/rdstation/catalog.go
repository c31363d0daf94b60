package rdstation

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"sinistro-sync/internal/domain/pipeline"
	"sinistro-sync/internal/infra/cache"
)

const pipelinesKey = "rd:deal_pipelines"

type PipelineLister interface {
	ListPipelines(ctx context.Context) ([]pipeline.Pipeline, error)
}

// Catalog serves pipelines from the cache and falls back to the API. Cache
// failures only degrade to a direct fetch.
type Catalog struct {
	lister PipelineLister
	store  cache.Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewCatalog(lister PipelineLister, store cache.Store, ttl time.Duration, logger *slog.Logger) *Catalog {
	return &Catalog{lister: lister, store: store, ttl: ttl, logger: logger}
}

func (c *Catalog) Pipelines(ctx context.Context) ([]pipeline.Pipeline, error) {
	data, ok, err := c.store.Get(ctx, pipelinesKey)
	if err != nil {
		c.logger.Warn("pipeline cache read failed", "error", err.Error())
	}
	if ok {
		var cached []pipeline.Pipeline
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		c.logger.Warn("discarding undecodable pipeline cache entry")
	}

	pipelines, err := c.lister.ListPipelines(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(pipelines); err == nil {
		if err := c.store.Set(ctx, pipelinesKey, data, c.ttl); err != nil {
			c.logger.Warn("pipeline cache write failed", "error", err.Error())
		}
	}
	return pipelines, nil
}

func (c *Catalog) Invalidate(ctx context.Context) error {
	return c.store.Delete(ctx, pipelinesKey)
}
