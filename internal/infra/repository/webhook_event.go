package repository

import (
	"context"
	"time"

	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/infra/repository/converter"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"
	"sinistro-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

type WebhookEventWriteQueries interface {
	ClaimWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimWebhookEventParams) (sqlc.WebhookEvents, error)
	MarkWebhookEventProcessed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkWebhookEventProcessedParams) (int64, error)
	ReleaseStaleWebhookEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseStaleWebhookEventsParams) (int64, error)
	GetWebhookEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.GetWebhookEventParams) (sqlc.WebhookEvents, error)
}

type WebhookEventRepository struct {
	queries WebhookEventWriteQueries
	db      sqlc.DBTX
}

func NewWebhookEventRepository(queries WebhookEventWriteQueries, db sqlc.DBTX) *WebhookEventRepository {
	return &WebhookEventRepository{
		queries: queries,
		db:      db,
	}
}

// Claim is a single upsert; no returned row means the event belongs to
// another delivery or is already final.
func (r *WebhookEventRepository) Claim(ctx context.Context, tx sqlc.DBTX, p shared.ClaimParams) (*webhook.Event, bool, error) {
	params := sqlc.ClaimWebhookEventParams{
		Provider:    p.Provider,
		EventID:     p.EventID,
		EventType:   p.EventType,
		Payload:     p.Payload,
		Now:         pgconv.TimeToPgtype(p.Now),
		StaleBefore: pgconv.TimeToPgtype(p.StaleBefore),
	}

	row, err := r.queries.ClaimWebhookEvent(ctx, tx, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, false, nil
		}
		return nil, false, infra.WrapRepoErr("failed to claim webhook event", err)
	}

	return converter.WebhookEventFromRow(row), true, nil
}

// MarkProcessed only moves rows still in processing under the same claim
// attempt; false means the sweeper or a redelivery took the row over.
func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, attempts int, status webhook.Status, lastError *string, now time.Time) (bool, error) {
	params := sqlc.MarkWebhookEventProcessedParams{
		ID:        id,
		Attempts:  int32(attempts),
		Status:    string(status),
		LastError: pgconv.StringPtrToPgtype(lastError),
		Now:       pgconv.TimeToPgtype(now),
	}

	n, err := r.queries.MarkWebhookEventProcessed(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark webhook event processed", err)
	}

	return n > 0, nil
}

func (r *WebhookEventRepository) ReleaseStale(ctx context.Context, tx sqlc.DBTX, staleBefore, now time.Time, reason string) (int64, error) {
	params := sqlc.ReleaseStaleWebhookEventsParams{
		LastError:   pgconv.EmptyAsNull(reason),
		Now:         pgconv.TimeToPgtype(now),
		StaleBefore: pgconv.TimeToPgtype(staleBefore),
	}

	n, err := r.queries.ReleaseStaleWebhookEvents(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to release stale webhook events", err)
	}

	return n, nil
}

func (r *WebhookEventRepository) Get(ctx context.Context, tx sqlc.DBTX, provider, eventID string) (*webhook.Event, error) {
	row, err := r.queries.GetWebhookEvent(ctx, tx, sqlc.GetWebhookEventParams{Provider: provider, EventID: eventID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("webhook event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get webhook event", err)
	}

	return converter.WebhookEventFromRow(row), nil
}
