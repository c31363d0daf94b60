package shared

import (
	"context"
	"time"

	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/domain/timeline"
	"sinistro-sync/internal/domain/webhook"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// Direct: Repositories bound to the pool, each statement in its own implicit transaction
	Direct() Tx
}

type Tx interface {
	WebhookEvents() WebhookEventRepository
	Sinistros() SinistroRepository
	Timeline() TimelineRepository
	DB() sqlc.DBTX
}

type ClaimParams struct {
	Provider    string
	EventID     string
	EventType   string
	Payload     []byte
	Now         time.Time
	StaleBefore time.Time
}

type WebhookEventRepository interface {
	// Claim returns claimed=false when another delivery owns or finished the event.
	Claim(ctx context.Context, tx sqlc.DBTX, p ClaimParams) (ev *webhook.Event, claimed bool, err error)
	// MarkProcessed finalizes the row only while the given claim attempt still holds it.
	MarkProcessed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, attempts int, status webhook.Status, lastError *string, now time.Time) (bool, error)
	ReleaseStale(ctx context.Context, tx sqlc.DBTX, staleBefore, now time.Time, reason string) (int64, error)
	Get(ctx context.Context, tx sqlc.DBTX, provider, eventID string) (*webhook.Event, error)
}

type SinistroRepository interface {
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*sinistro.Sinistro, error)
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*sinistro.Sinistro, error)
	FindByRDDealIDForUpdate(ctx context.Context, tx sqlc.DBTX, dealID string) (*sinistro.Sinistro, error)
	SaveSyncState(ctx context.Context, tx sqlc.DBTX, s *sinistro.Sinistro) error
	RecordSyncError(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, msg string, now time.Time) error
}

type TimelineRepository interface {
	// Insert reports inserted=false when an entry with the same hash exists.
	Insert(ctx context.Context, tx sqlc.DBTX, e *timeline.Entry) (inserted bool, err error)
}
