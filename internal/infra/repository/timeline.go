package repository

import (
	"context"

	"sinistro-sync/internal/domain/timeline"
	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/infra/repository/converter"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
)

type TimelineWriteQueries interface {
	InsertTimelineEntry(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertTimelineEntryParams) (int64, error)
}

type TimelineRepository struct {
	queries TimelineWriteQueries
	db      sqlc.DBTX
}

func NewTimelineRepository(queries TimelineWriteQueries, db sqlc.DBTX) *TimelineRepository {
	return &TimelineRepository{
		queries: queries,
		db:      db,
	}
}

// Insert is ON CONFLICT (event_hash) DO NOTHING, so a replay reports
// inserted=false instead of failing.
func (r *TimelineRepository) Insert(ctx context.Context, tx sqlc.DBTX, e *timeline.Entry) (bool, error) {
	n, err := r.queries.InsertTimelineEntry(ctx, tx, converter.TimelineEntryToInsertParams(e))
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert timeline entry", err)
	}
	return n > 0, nil
}
