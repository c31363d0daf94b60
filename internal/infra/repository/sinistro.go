package repository

import (
	"context"
	"time"

	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/infra/repository/converter"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SinistroWriteQueries interface {
	GetSinistroByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Sinistros, error)
	GetSinistroByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Sinistros, error)
	GetSinistroByRDDealIDForUpdate(ctx context.Context, db sqlc.DBTX, rdDealID pgtype.Text) (sqlc.Sinistros, error)
	UpdateSinistroSyncState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSinistroSyncStateParams) (int64, error)
	UpdateSinistroSyncError(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateSinistroSyncErrorParams) (int64, error)
}

type SinistroRepository struct {
	queries SinistroWriteQueries
	db      sqlc.DBTX
}

func NewSinistroRepository(queries SinistroWriteQueries, db sqlc.DBTX) *SinistroRepository {
	return &SinistroRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SinistroRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*sinistro.Sinistro, error) {
	row, err := r.queries.GetSinistroByID(ctx, tx, id)
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return converter.SinistroFromRow(row), nil
}

func (r *SinistroRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*sinistro.Sinistro, error) {
	row, err := r.queries.GetSinistroByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return converter.SinistroFromRow(row), nil
}

func (r *SinistroRepository) FindByRDDealIDForUpdate(ctx context.Context, tx sqlc.DBTX, dealID string) (*sinistro.Sinistro, error) {
	row, err := r.queries.GetSinistroByRDDealIDForUpdate(ctx, tx, pgconv.EmptyAsNull(dealID))
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return converter.SinistroFromRow(row), nil
}

// SaveSyncState writes every column the sync path owns and nothing else.
func (r *SinistroRepository) SaveSyncState(ctx context.Context, tx sqlc.DBTX, s *sinistro.Sinistro) error {
	n, err := r.queries.UpdateSinistroSyncState(ctx, tx, converter.SinistroToSyncStateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update sinistro sync state", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("sinistro not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SinistroRepository) RecordSyncError(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, msg string, now time.Time) error {
	params := sqlc.UpdateSinistroSyncErrorParams{
		ID:            id,
		Now:           pgconv.TimeToPgtype(now),
		LastSyncError: pgtype.Text{String: msg, Valid: true},
	}

	n, err := r.queries.UpdateSinistroSyncError(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to record sinistro sync error", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("sinistro not found", nil, infra.KindNotFound)
	}
	return nil
}

func wrapFindErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("sinistro not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to get sinistro", err)
}
