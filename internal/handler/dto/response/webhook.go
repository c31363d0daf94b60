package response

import (
	"sinistro-sync/internal/usecase/commands"
)

// WebhookResponse is always returned with HTTP 200 so RD Station stops
// redelivering; only failures after the claim produce a 5xx.
type WebhookResponse struct {
	Success        bool    `json:"success"`
	Duplicate      bool    `json:"duplicate,omitempty"`
	Ignored        bool    `json:"ignored,omitempty"`
	Reason         string  `json:"reason,omitempty"`
	SinistroID     *string `json:"sinistro_id,omitempty"`
	StatusChanged  *bool   `json:"status_changed,omitempty"`
	StatusAnterior *string `json:"status_anterior,omitempty"`
	StatusNovo     *string `json:"status_novo,omitempty"`
}

func FromWebhookResult(r *commands.WebhookResult) *WebhookResponse {
	switch {
	case r.Duplicate:
		return &WebhookResponse{Success: true, Duplicate: true}
	case r.Ignored:
		return &WebhookResponse{Success: true, Ignored: true, Reason: r.Reason}
	}

	id := r.SinistroID.String()
	changed := r.StatusChanged
	resp := &WebhookResponse{Success: true, SinistroID: &id, StatusChanged: &changed}
	if r.StatusChanged {
		prev, next := r.PreviousStatus.String(), r.NewStatus.String()
		resp.StatusAnterior = &prev
		resp.StatusNovo = &next
	}
	return resp
}
