package queries

import (
	"context"
	"time"

	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrSinistroNotFound = errs.Mark(errs.New("sinistro not found"), errs.ErrNotFound)

type SinistroView struct {
	ID                    uuid.UUID
	Numero                string
	Titulo                string
	ClienteNome           string
	Status                string
	StatusLabel           string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	ConcludedAt           *time.Time
	TempoConclusaoMinutos *int64
	RDDealID              *string
	RDStageID             *string
	RDPipelineID          *string
	RDOwnerName           *string
	SyncStatus            string
	LastSyncAt            *time.Time
	LastSyncError         *string
}

type TimelineItem struct {
	ID             uuid.UUID
	TipoEvento     string
	Descricao      string
	StatusAnterior *string
	StatusNovo     *string
	Source         string
	ActorName      string
	TempoDecorrido string
	RDEventID      *string
	CreatedAt      time.Time
}

type SinistroReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SinistroView, error)
	TimelineFirstPage(ctx context.Context, sinistroID uuid.UUID, limit int32) ([]*TimelineItem, error)
	TimelineKeyset(ctx context.Context, sinistroID uuid.UUID, after Keyset, limit int32) ([]*TimelineItem, error)
}

type SinistroQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SinistroView, error)
	// ListTimeline returns entries newest first.
	ListTimeline(ctx context.Context, sinistroID uuid.UUID, cursor *Cursor, limit int) ([]*TimelineItem, *Cursor, error)
}

type sinistroQueriesImpl struct {
	store SinistroReadStore
}

func NewSinistroQueries(store SinistroReadStore) SinistroQueries {
	return &sinistroQueriesImpl{store: store}
}

func (q *sinistroQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SinistroView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSinistroNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *sinistroQueriesImpl) ListTimeline(ctx context.Context, sinistroID uuid.UUID, cursor *Cursor, limit int) ([]*TimelineItem, *Cursor, error) {
	if _, err := q.GetByID(ctx, sinistroID); err != nil {
		return nil, nil, err
	}

	after, err := DecodeCursor(cursor)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*TimelineItem
	if after == nil {
		rows, err = q.store.TimelineFirstPage(ctx, sinistroID, int32(limit+1))
	} else {
		rows, err = q.store.TimelineKeyset(ctx, sinistroID, *after, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, func(it *TimelineItem) (time.Time, uuid.UUID) { return it.CreatedAt, it.ID })
	return rows, next, nil
}
