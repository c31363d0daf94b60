//go:build unit || e2e

package builder

import (
	"time"

	"sinistro-sync/internal/domain/sinistro"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"
	"sinistro-sync/internal/usecase/queries"

	"github.com/google/uuid"
)

type SinistroBuilder struct {
	ID          uuid.UUID
	Numero      string
	Titulo      string
	ClienteNome string
	Status      sinistro.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConcludedAt *time.Time
	RDDealID    *string
	RDStageID   *string
	SyncStatus  sinistro.SyncStatus
}

func NewSinistroBuilder() *SinistroBuilder {
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return &SinistroBuilder{
		ID:          uuid.New(),
		Numero:      "SIN-2025-0001",
		Titulo:      "Reembolso consulta",
		ClienteNome: "Maria Souza",
		Status:      sinistro.StatusEmAnalise,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func (b *SinistroBuilder) With(mutate func(*SinistroBuilder)) *SinistroBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *SinistroBuilder) BuildDomain() *sinistro.Sinistro {
	return &sinistro.Sinistro{
		ID:          b.ID,
		Numero:      b.Numero,
		Titulo:      b.Titulo,
		ClienteNome: b.ClienteNome,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		ConcludedAt: b.ConcludedAt,
		RDDealID:    b.RDDealID,
		RDStageID:   b.RDStageID,
		SyncStatus:  b.SyncStatus,
	}
}

func (b *SinistroBuilder) BuildInfra() sqlc.Sinistros {
	return sqlc.Sinistros{
		ID:          b.ID,
		Numero:      b.Numero,
		Titulo:      b.Titulo,
		ClienteNome: b.ClienteNome,
		Status:      b.Status.String(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.UpdatedAt),
		ConcludedAt: pgconv.TimePtrToPgtype(b.ConcludedAt),
		RdDealID:    pgconv.StringPtrToPgtype(b.RDDealID),
		RdStageID:   pgconv.StringPtrToPgtype(b.RDStageID),
		SyncStatus:  string(b.SyncStatus),
	}
}

func (b *SinistroBuilder) BuildView() *queries.SinistroView {
	return &queries.SinistroView{
		ID:          b.ID,
		Numero:      b.Numero,
		Titulo:      b.Titulo,
		ClienteNome: b.ClienteNome,
		Status:      b.Status.String(),
		StatusLabel: b.Status.Label(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		ConcludedAt: b.ConcludedAt,
		RDDealID:    b.RDDealID,
		RDStageID:   b.RDStageID,
		SyncStatus:  string(b.SyncStatus),
	}
}

// Fluent builder methods
func (b *SinistroBuilder) WithID(id uuid.UUID) *SinistroBuilder {
	b.ID = id
	return b
}

func (b *SinistroBuilder) WithNumero(numero string) *SinistroBuilder {
	b.Numero = numero
	return b
}

func (b *SinistroBuilder) WithStatus(status sinistro.Status) *SinistroBuilder {
	b.Status = status
	return b
}

func (b *SinistroBuilder) WithCreatedAt(t time.Time) *SinistroBuilder {
	b.CreatedAt = t
	b.UpdatedAt = t
	return b
}

func (b *SinistroBuilder) LinkedTo(dealID, stageID string) *SinistroBuilder {
	b.RDDealID = &dealID
	b.RDStageID = &stageID
	b.SyncStatus = sinistro.SyncStatusOK
	return b
}
