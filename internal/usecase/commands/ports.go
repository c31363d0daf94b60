package commands

import (
	"time"

	"sinistro-sync/internal/domain/crm"
	"sinistro-sync/internal/domain/sinistro"
)

// WebhookSettings parameterize the ingestion path per provider.
type WebhookSettings struct {
	Provider string
	// Claims in processing for longer than this are considered abandoned.
	ClaimTTL time.Duration
	// RD custom field holding the local sinistro id, used when a deal is not
	// linked yet.
	SinistroIDField string
}

// CustomFieldIDs maps local attributes to RD deal custom field ids. Empty ids
// are left out of the payload.
type CustomFieldIDs struct {
	SinistroID string
	Numero     string
	Status     string
	Cliente    string
}

type SyncSettings struct {
	PipelineID   string
	CustomFields CustomFieldIDs
}

func (c CustomFieldIDs) build(s *sinistro.Sinistro) []crm.CustomField {
	var out []crm.CustomField
	add := func(id, value string) {
		if id != "" {
			out = append(out, crm.CustomField{CustomFieldID: id, Value: value})
		}
	}
	add(c.SinistroID, s.ID.String())
	add(c.Numero, s.Numero)
	add(c.Status, s.Status.Label())
	add(c.Cliente, s.ClienteNome)
	return out
}
