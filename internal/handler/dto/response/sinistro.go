package response

import (
	"time"

	"sinistro-sync/internal/usecase/commands"
	"sinistro-sync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SinistroResponse struct {
	ID                    uuid.UUID  `json:"id"`
	Numero                string     `json:"numero"`
	Titulo                string     `json:"titulo"`
	ClienteNome           string     `json:"cliente_nome"`
	Status                string     `json:"status"`
	StatusLabel           string     `json:"status_label"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
	ConcludedAt           *time.Time `json:"concluded_at,omitempty"`
	TempoConclusaoMinutos *int64     `json:"tempo_conclusao_minutos,omitempty"`
	RDDealID              *string    `json:"rd_deal_id,omitempty"`
	RDStageID             *string    `json:"rd_stage_id,omitempty"`
	RDPipelineID          *string    `json:"rd_pipeline_id,omitempty"`
	RDOwnerName           *string    `json:"rd_owner_name,omitempty"`
	SyncStatus            string     `json:"sync_status"`
	LastSyncAt            *time.Time `json:"last_sync_at,omitempty"`
	LastSyncError         *string    `json:"last_sync_error,omitempty"`
}

func FromSinistroView(v *queries.SinistroView) (*SinistroResponse, error) {
	var res SinistroResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type TimelineItemResponse struct {
	ID             uuid.UUID `json:"id"`
	TipoEvento     string    `json:"tipo_evento"`
	Descricao      string    `json:"descricao"`
	StatusAnterior *string   `json:"status_anterior,omitempty"`
	StatusNovo     *string   `json:"status_novo,omitempty"`
	Source         string    `json:"source"`
	ActorName      string    `json:"actor_name"`
	TempoDecorrido string    `json:"tempo_decorrido"`
	RDEventID      *string   `json:"rd_event_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromTimeline(items []*queries.TimelineItem) ([]*TimelineItemResponse, error) {
	res := make([]*TimelineItemResponse, 0, len(items))
	if err := copier.Copy(&res, &items); err != nil {
		return nil, err
	}
	return res, nil
}

type SyncResponse struct {
	Success    bool   `json:"success"`
	SinistroID string `json:"sinistro_id"`
	Action     string `json:"action"`
	DealID     string `json:"rd_deal_id"`
	StageID    string `json:"rd_stage_id"`
	PipelineID string `json:"rd_pipeline_id"`
	Linked     bool   `json:"linked"`
}

func FromSyncResult(r *commands.SyncResult) *SyncResponse {
	return &SyncResponse{
		Success:    true,
		SinistroID: r.SinistroID.String(),
		Action:     string(r.Action),
		DealID:     r.DealID,
		StageID:    r.StageID,
		PipelineID: r.PipelineID,
		Linked:     r.Linked,
	}
}

type StatusChangeResponse struct {
	SinistroID     string `json:"sinistro_id"`
	StatusChanged  bool   `json:"status_changed"`
	StatusAnterior string `json:"status_anterior"`
	StatusNovo     string `json:"status_novo"`
	Pushed         bool   `json:"rd_pushed"`
	SyncError      string `json:"sync_error,omitempty"`
}

func FromStatusChange(r *commands.StatusChangeResult) *StatusChangeResponse {
	return &StatusChangeResponse{
		SinistroID:     r.SinistroID.String(),
		StatusChanged:  r.StatusChanged,
		StatusAnterior: r.PreviousStatus.String(),
		StatusNovo:     r.NewStatus.String(),
		Pushed:         r.Pushed,
		SyncError:      r.SyncError,
	}
}
