package commands

import (
	"context"
	"log/slog"

	"sinistro-sync/internal/domain/timeline"
	"sinistro-sync/internal/usecase/shared"
)

type TimelineWriter struct {
	logger *slog.Logger
}

func NewTimelineWriter(logger *slog.Logger) *TimelineWriter {
	return &TimelineWriter{logger: logger}
}

// Append inserts e unless an entry with the same hash exists. The duplicate
// case is a success.
func (w *TimelineWriter) Append(ctx context.Context, tx shared.Tx, e *timeline.Entry) (bool, error) {
	inserted, err := tx.Timeline().Insert(ctx, tx.DB(), e)
	if err != nil {
		return false, err
	}
	if !inserted {
		w.logger.Debug("timeline entry already recorded",
			"sinistro_id", e.SinistroID,
			"tipo_evento", e.TipoEvento,
			"event_hash", e.EventHash)
	}
	return inserted, nil
}
