package sinistro

import (
	"time"

	"github.com/google/uuid"
)

type SyncStatus string

const (
	SyncStatusNone  SyncStatus = ""
	SyncStatusOK    SyncStatus = "ok"
	SyncStatusError SyncStatus = "error"
)

// Sinistro is the local claim record linked to at most one RD Station deal.
// Only the fields the sync path owns are modelled here.
type Sinistro struct {
	ID          uuid.UUID
	Numero      string
	Titulo      string
	ClienteNome string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Set once on the first entry into a terminal status.
	ConcludedAt           *time.Time
	TempoConclusaoMinutos *int64

	RDDealID     *string
	RDStageID    *string
	RDPipelineID *string
	RDOwnerName  *string

	SyncStatus    SyncStatus
	LastSyncAt    *time.Time
	LastSyncError *string
}

func (s *Sinistro) IsLinked() bool {
	return s.RDDealID != nil && *s.RDDealID != ""
}

// DealName is the title used for the RD deal mirroring this sinistro.
func (s *Sinistro) DealName() string {
	if s.Titulo != "" {
		return s.Numero + " - " + s.Titulo
	}
	return s.Numero
}
