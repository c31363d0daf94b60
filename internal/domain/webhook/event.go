package webhook

import (
	"time"

	"github.com/google/uuid"
)

// Status of a ledger row. ok and ignored are final.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusOK         Status = "ok"
	StatusIgnored    Status = "ignored"
	StatusError      Status = "error"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusOK, StatusIgnored, StatusError:
		return true
	default:
		return false
	}
}

func (s Status) IsFinal() bool {
	return s == StatusOK || s == StatusIgnored
}

// Reasons reported when an event is finalized as ignored.
const (
	ReasonNoSinistro       = "no_sinistro"
	ReasonUnsupportedEvent = "unsupported_event"
	ReasonUnmappedStage    = "unmapped_stage"
)

// Event is one row of the processed-event ledger.
type Event struct {
	ID          uuid.UUID
	Provider    string
	EventID     string
	EventType   string
	Payload     []byte
	Status      Status
	Attempts    int
	LastError   *string
	ReceivedAt  time.Time
	UpdatedAt   time.Time
	ProcessedAt *time.Time
}
