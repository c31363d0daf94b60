package converter

import (
	"sinistro-sync/internal/domain/sinistro"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/pkg/pgconv"
)

func SinistroFromRow(row sqlc.Sinistros) *sinistro.Sinistro {
	return &sinistro.Sinistro{
		ID:                    row.ID,
		Numero:                row.Numero,
		Titulo:                row.Titulo,
		ClienteNome:           row.ClienteNome,
		Status:                sinistro.Status(row.Status),
		CreatedAt:             pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:             pgconv.TimeFromPgtype(row.UpdatedAt),
		ConcludedAt:           pgconv.TimePtrFromPgtype(row.ConcludedAt),
		TempoConclusaoMinutos: pgconv.Int64PtrFromPgtype(row.TempoConclusaoMinutos),
		RDDealID:              pgconv.StringPtrFromPgtype(row.RdDealID),
		RDStageID:             pgconv.StringPtrFromPgtype(row.RdStageID),
		RDPipelineID:          pgconv.StringPtrFromPgtype(row.RdPipelineID),
		RDOwnerName:           pgconv.StringPtrFromPgtype(row.RdOwnerName),
		SyncStatus:            sinistro.SyncStatus(row.SyncStatus),
		LastSyncAt:            pgconv.TimePtrFromPgtype(row.LastSyncAt),
		LastSyncError:         pgconv.StringPtrFromPgtype(row.LastSyncError),
	}
}

func SinistroToSyncStateParams(s *sinistro.Sinistro) sqlc.UpdateSinistroSyncStateParams {
	return sqlc.UpdateSinistroSyncStateParams{
		ID:                    s.ID,
		Status:                s.Status.String(),
		UpdatedAt:             pgconv.TimeToPgtype(s.UpdatedAt),
		ConcludedAt:           pgconv.TimePtrToPgtype(s.ConcludedAt),
		TempoConclusaoMinutos: pgconv.Int64PtrToPgtype(s.TempoConclusaoMinutos),
		RdDealID:              pgconv.StringPtrToPgtype(s.RDDealID),
		RdStageID:             pgconv.StringPtrToPgtype(s.RDStageID),
		RdPipelineID:          pgconv.StringPtrToPgtype(s.RDPipelineID),
		RdOwnerName:           pgconv.StringPtrToPgtype(s.RDOwnerName),
		SyncStatus:            string(s.SyncStatus),
		LastSyncAt:            pgconv.TimePtrToPgtype(s.LastSyncAt),
		LastSyncError:         pgconv.StringPtrToPgtype(s.LastSyncError),
	}
}
