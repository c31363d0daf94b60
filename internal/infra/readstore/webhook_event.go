package readstore

import (
	"context"

	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/infra"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"
	"sinistro-sync/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type WebhookEventReadQueries interface {
	ListWebhookEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ListWebhookEventsParams) ([]sqlc.WebhookEvents, error)
	ListWebhookEventsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListWebhookEventsKeysetParams) ([]sqlc.WebhookEvents, error)
}

type WebhookEventReadStore struct {
	queries WebhookEventReadQueries
	db      sqlc.DBTX
}

func NewWebhookEventReadStore(queries WebhookEventReadQueries, db sqlc.DBTX) *WebhookEventReadStore {
	return &WebhookEventReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *WebhookEventReadStore) FirstPage(ctx context.Context, status *webhook.Status, limit int32) ([]*queries.WebhookEventView, error) {
	rows, err := r.queries.ListWebhookEvents(ctx, r.db, sqlc.ListWebhookEventsParams{
		Status:   statusFilter(status),
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list webhook events", err)
	}
	return webhookEventViews(rows), nil
}

func (r *WebhookEventReadStore) Keyset(ctx context.Context, status *webhook.Status, after queries.Keyset, limit int32) ([]*queries.WebhookEventView, error) {
	rows, err := r.queries.ListWebhookEventsKeyset(ctx, r.db, sqlc.ListWebhookEventsKeysetParams{
		Status:          statusFilter(status),
		AfterReceivedAt: pgconv.TimeToPgtype(after.At),
		AfterID:         after.ID,
		RowLimit:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list webhook events with keyset", err)
	}
	return webhookEventViews(rows), nil
}

func statusFilter(status *webhook.Status) pgtype.Text {
	if status == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: string(*status), Valid: true}
}

func webhookEventViews(rows []sqlc.WebhookEvents) []*queries.WebhookEventView {
	views := make([]*queries.WebhookEventView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.WebhookEventView{
			ID:          row.ID,
			Provider:    row.Provider,
			EventID:     row.EventID,
			EventType:   row.EventType,
			Status:      row.Status,
			Attempts:    int(row.Attempts),
			LastError:   pgconv.StringPtrFromPgtype(row.LastError),
			ReceivedAt:  pgconv.TimeFromPgtype(row.ReceivedAt),
			UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
			ProcessedAt: pgconv.TimePtrFromPgtype(row.ProcessedAt),
		})
	}
	return views
}
