package converter

import (
	"sinistro-sync/internal/domain/webhook"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"
)

func WebhookEventFromRow(row sqlc.WebhookEvents) *webhook.Event {
	return &webhook.Event{
		ID:          row.ID,
		Provider:    row.Provider,
		EventID:     row.EventID,
		EventType:   row.EventType,
		Payload:     row.Payload,
		Status:      webhook.Status(row.Status),
		Attempts:    int(row.Attempts),
		LastError:   pgconv.StringPtrFromPgtype(row.LastError),
		ReceivedAt:  pgconv.TimeFromPgtype(row.ReceivedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
		ProcessedAt: pgconv.TimePtrFromPgtype(row.ProcessedAt),
	}
}
