package queries

import (
	"context"
	"time"

	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidEventStatus = errs.Mark(errs.New("invalid webhook event status"), errs.ErrValidation)

type WebhookEventView struct {
	ID          uuid.UUID
	Provider    string
	EventID     string
	EventType   string
	Status      string
	Attempts    int
	LastError   *string
	ReceivedAt  time.Time
	UpdatedAt   time.Time
	ProcessedAt *time.Time
}

type WebhookEventFilter struct {
	Status *webhook.Status
}

type WebhookEventReadStore interface {
	FirstPage(ctx context.Context, status *webhook.Status, limit int32) ([]*WebhookEventView, error)
	Keyset(ctx context.Context, status *webhook.Status, after Keyset, limit int32) ([]*WebhookEventView, error)
}

type WebhookEventQueries interface {
	// List returns ledger rows newest first.
	List(ctx context.Context, filter WebhookEventFilter, cursor *Cursor, limit int) ([]*WebhookEventView, *Cursor, error)
}

type webhookEventQueriesImpl struct {
	store WebhookEventReadStore
}

func NewWebhookEventQueries(store WebhookEventReadStore) WebhookEventQueries {
	return &webhookEventQueriesImpl{store: store}
}

func (q *webhookEventQueriesImpl) List(ctx context.Context, filter WebhookEventFilter, cursor *Cursor, limit int) ([]*WebhookEventView, *Cursor, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, nil, ErrInvalidEventStatus
	}

	after, err := DecodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*WebhookEventView
	if after == nil {
		rows, err = q.store.FirstPage(ctx, filter.Status, int32(limit+1))
	} else {
		rows, err = q.store.Keyset(ctx, filter.Status, *after, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, func(v *WebhookEventView) (time.Time, uuid.UUID) { return v.ReceivedAt, v.ID })
	return rows, next, nil
}
