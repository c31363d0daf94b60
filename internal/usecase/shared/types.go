package shared

import (
	"context"

	"sinistro-sync/internal/domain/crm"
	"sinistro-sync/internal/domain/pipeline"
)

// CRMClient is the outbound RD Station CRM API.
type CRMClient interface {
	ListPipelines(ctx context.Context) ([]pipeline.Pipeline, error)
	CreateDeal(ctx context.Context, in crm.DealInput) (*crm.Deal, error)
	UpdateDeal(ctx context.Context, dealID string, in crm.DealInput) (*crm.Deal, error)
}

// PipelineCatalog serves the CRM pipelines, possibly from a cache.
type PipelineCatalog interface {
	Pipelines(ctx context.Context) ([]pipeline.Pipeline, error)
	// Invalidate drops cached pipelines so the next call refetches.
	Invalidate(ctx context.Context) error
}
