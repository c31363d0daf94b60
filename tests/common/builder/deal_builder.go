//go:build unit || e2e

package builder

import (
	"encoding/json"

	"sinistro-sync/internal/domain/crm"
	"sinistro-sync/internal/domain/pipeline"
	"sinistro-sync/internal/domain/webhook"

	"github.com/google/uuid"
)

// Stage ids of DefaultPipeline, in workflow order.
const (
	StageTriagem      = "stg-triagem"
	StageDocumentos   = "stg-documentos"
	StageAndamento    = "stg-andamento"
	StageOperadora    = "stg-operadora"
	StageAprovado     = "stg-aprovado"
	StageNegado       = "stg-negado"
	StagePago         = "stg-pago"
	StageConcluido    = "stg-concluido"
	DefaultPipelineID = "pl-sinistros"
)

// DefaultPipeline mirrors the CRM funnel the default mapping rules expect.
func DefaultPipeline() pipeline.Pipeline {
	return pipeline.Pipeline{
		ID:   DefaultPipelineID,
		Name: "Sinistros",
		Stages: []pipeline.Stage{
			{ID: StageTriagem, Name: "Triagem", Order: 1},
			{ID: StageDocumentos, Name: "Pendente de documentos", Order: 2},
			{ID: StageAndamento, Name: "Em andamento", Order: 3},
			{ID: StageOperadora, Name: "Enviado à operadora", Order: 4},
			{ID: StageAprovado, Name: "Aprovado", Order: 5},
			{ID: StageNegado, Name: "Negado", Order: 6},
			{ID: StagePago, Name: "Pago", Order: 7},
			{ID: StageConcluido, Name: "Concluído", Order: 8},
		},
	}
}

// DealEventBuilder produces RD Station webhook bodies.
type DealEventBuilder struct {
	EventUUID      string
	EventType      string
	EventTimestamp string
	Deal           crm.Deal
	OmitData       bool
}

func NewDealEventBuilder() *DealEventBuilder {
	return &DealEventBuilder{
		EventUUID:      uuid.NewString(),
		EventType:      webhook.EventDealUpdated,
		EventTimestamp: "2025-03-12T14:00:00-03:00",
		Deal: crm.Deal{
			ID:        "deal-1001",
			Name:      "SIN-2025-0001 - Reembolso consulta",
			Stage:     crm.DealStage{ID: StageDocumentos, Name: "Pendente de documentos"},
			User:      &crm.DealUser{ID: "u-1", Name: "Ana Lima"},
			UpdatedAt: "2025-03-12T14:00:00-03:00",
		},
	}
}

func (b *DealEventBuilder) With(mutate func(*DealEventBuilder)) *DealEventBuilder {
	mutate(b)
	return b
}

func (b *DealEventBuilder) WithEventUUID(id string) *DealEventBuilder {
	b.EventUUID = id
	return b
}

func (b *DealEventBuilder) WithEventType(t string) *DealEventBuilder {
	b.EventType = t
	return b
}

func (b *DealEventBuilder) WithDealID(id string) *DealEventBuilder {
	b.Deal.ID = id
	return b
}

func (b *DealEventBuilder) WithStage(id, name string) *DealEventBuilder {
	b.Deal.Stage = crm.DealStage{ID: id, Name: name}
	return b
}

func (b *DealEventBuilder) WithUpdatedAt(at string) *DealEventBuilder {
	b.Deal.UpdatedAt = at
	return b
}

func (b *DealEventBuilder) WithCustomField(fieldID string, value any) *DealEventBuilder {
	b.Deal.CustomFields = append(b.Deal.CustomFields, crm.CustomField{CustomFieldID: fieldID, Value: value})
	return b
}

func (b *DealEventBuilder) BuildEnvelope() webhook.Envelope {
	env := webhook.Envelope{
		EventUUID:      b.EventUUID,
		EventType:      b.EventType,
		EventTimestamp: b.EventTimestamp,
		Entity:         "deal",
		EntityID:       b.Deal.ID,
	}
	if !b.OmitData {
		data, _ := json.Marshal(map[string]any{"deal": b.Deal})
		env.Data = data
	}
	return env
}

func (b *DealEventBuilder) BuildBody() []byte {
	body, _ := json.Marshal(b.BuildEnvelope())
	return body
}
