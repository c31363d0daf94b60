package converter

import (
	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/domain/timeline"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func TimelineEntryToInsertParams(e *timeline.Entry) sqlc.InsertTimelineEntryParams {
	return sqlc.InsertTimelineEntryParams{
		ID:             e.ID,
		SinistroID:     e.SinistroID,
		TipoEvento:     e.TipoEvento,
		Descricao:      e.Descricao,
		StatusAnterior: statusToPgtype(e.StatusAnterior),
		StatusNovo:     statusToPgtype(e.StatusNovo),
		Source:         string(e.Source),
		ActorName:      e.ActorName,
		TempoDecorrido: e.TempoDecorrido,
		EventHash:      e.EventHash,
		RdEventID:      pgconv.StringPtrToPgtype(e.RDEventID),
		CreatedAt:      pgconv.TimeToPgtype(e.CreatedAt),
	}
}

func statusToPgtype(s *sinistro.Status) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s.String(), Valid: true}
}
