package readstore

import (
	"context"

	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/infra"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"
	"sinistro-sync/internal/usecase/queries"

	"github.com/google/uuid"
)

type SinistroReadQueries interface {
	GetSinistroByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Sinistros, error)
	ListTimelineBySinistro(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTimelineBySinistroParams) ([]sqlc.SinistroTimeline, error)
	ListTimelineBySinistroKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTimelineBySinistroKeysetParams) ([]sqlc.SinistroTimeline, error)
}

type SinistroReadStore struct {
	queries SinistroReadQueries
	db      sqlc.DBTX
}

func NewSinistroReadStore(queries SinistroReadQueries, db sqlc.DBTX) *SinistroReadStore {
	return &SinistroReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SinistroReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SinistroView, error) {
	row, err := r.queries.GetSinistroByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sinistro not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get sinistro view by id", err)
	}

	return &queries.SinistroView{
		ID:                    row.ID,
		Numero:                row.Numero,
		Titulo:                row.Titulo,
		ClienteNome:           row.ClienteNome,
		Status:                row.Status,
		StatusLabel:           sinistro.Status(row.Status).Label(),
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
		ConcludedAt:           pgconv.TimePtrFromPgtype(row.ConcludedAt),
		TempoConclusaoMinutos: pgconv.Int64PtrFromPgtype(row.TempoConclusaoMinutos),
		RDDealID:              pgconv.StringPtrFromPgtype(row.RdDealID),
		RDStageID:             pgconv.StringPtrFromPgtype(row.RdStageID),
		RDPipelineID:          pgconv.StringPtrFromPgtype(row.RdPipelineID),
		RDOwnerName:           pgconv.StringPtrFromPgtype(row.RdOwnerName),
		SyncStatus:            row.SyncStatus,
		LastSyncAt:            pgconv.TimePtrFromPgtype(row.LastSyncAt),
		LastSyncError:         pgconv.StringPtrFromPgtype(row.LastSyncError),
	}, nil
}

func (r *SinistroReadStore) TimelineFirstPage(ctx context.Context, sinistroID uuid.UUID, limit int32) ([]*queries.TimelineItem, error) {
	rows, err := r.queries.ListTimelineBySinistro(ctx, r.db, sqlc.ListTimelineBySinistroParams{
		SinistroID: sinistroID,
		Limit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list timeline", err)
	}
	return timelineItems(rows), nil
}

func (r *SinistroReadStore) TimelineKeyset(ctx context.Context, sinistroID uuid.UUID, after queries.Keyset, limit int32) ([]*queries.TimelineItem, error) {
	rows, err := r.queries.ListTimelineBySinistroKeyset(ctx, r.db, sqlc.ListTimelineBySinistroKeysetParams{
		SinistroID:     sinistroID,
		AfterCreatedAt: pgconv.TimeToPgtype(after.At),
		AfterID:        after.ID,
		RowLimit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list timeline with keyset", err)
	}
	return timelineItems(rows), nil
}

func timelineItems(rows []sqlc.SinistroTimeline) []*queries.TimelineItem {
	items := make([]*queries.TimelineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.TimelineItem{
			ID:             row.ID,
			TipoEvento:     row.TipoEvento,
			Descricao:      row.Descricao,
			StatusAnterior: pgconv.StringPtrFromPgtype(row.StatusAnterior),
			StatusNovo:     pgconv.StringPtrFromPgtype(row.StatusNovo),
			Source:         row.Source,
			ActorName:      row.ActorName,
			TempoDecorrido: row.TempoDecorrido,
			RDEventID:      pgconv.StringPtrFromPgtype(row.RdEventID),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items
}
