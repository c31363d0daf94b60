package webhook

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"

	"sinistro-sync/internal/domain/crm"
	"sinistro-sync/internal/pkg/errs"
)

const (
	EventDealCreated = "crm_deal_created"
	EventDealUpdated = "crm_deal_updated"
)

var validate = validator.New()

// Envelope carries the fields common to every RD Station delivery.
type Envelope struct {
	EventUUID      string          `json:"event_uuid" validate:"required"`
	EventType      string          `json:"event_type" validate:"required"`
	EventTimestamp string          `json:"event_timestamp"`
	Entity         string          `json:"entity,omitempty"`
	EntityID       string          `json:"entity_id,omitempty"`
	Data           json.RawMessage `json:"data,omitempty"`
}

// Payload is either a DealPayload or an UnsupportedPayload.
type Payload interface {
	Meta() Envelope
}

type DealPayload struct {
	Envelope
	Deal     crm.Deal
	Previous *crm.Deal
}

// UnsupportedPayload is a delivery whose event type the service does not act on.
type UnsupportedPayload struct {
	Envelope
}

func (p DealPayload) Meta() Envelope        { return p.Envelope }
func (p UnsupportedPayload) Meta() Envelope { return p.Envelope }

// ExternalUpdatedAt is the deal's update stamp, falling back to the delivery time.
func (p DealPayload) ExternalUpdatedAt() string {
	if p.Deal.UpdatedAt != "" {
		return p.Deal.UpdatedAt
	}
	return p.EventTimestamp
}

// TransitionStamp tells repeated transitions of one deal apart. Without any
// timestamp the delivery's own uuid stands in.
func (p DealPayload) TransitionStamp() string {
	if at := p.ExternalUpdatedAt(); at != "" {
		return at
	}
	return "event:" + p.EventUUID
}

type dealData struct {
	Deal     *crm.Deal `json:"deal" validate:"required"`
	Previous *crm.Deal `json:"previous_data,omitempty"`
}

// PeekEnvelope extracts only the envelope, so a ledger row can be claimed
// before the event-specific data is validated.
func PeekEnvelope(body []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Envelope{}, errs.Mark(errs.Wrap(err, "malformed webhook body"), errs.ErrValidation)
	}
	env.EventUUID = strings.TrimSpace(env.EventUUID)
	env.EventType = strings.TrimSpace(env.EventType)
	if err := validate.Struct(env); err != nil {
		return Envelope{}, errs.Mark(errs.Wrap(err, "invalid webhook envelope"), errs.ErrValidation)
	}
	return env, nil
}

// ParsePayload decodes and validates a delivery into its variant.
func ParsePayload(body []byte) (Payload, error) {
	env, err := PeekEnvelope(body)
	if err != nil {
		return nil, err
	}

	switch env.EventType {
	case EventDealCreated, EventDealUpdated:
		return parseDeal(env)
	default:
		return UnsupportedPayload{Envelope: env}, nil
	}
}

func parseDeal(env Envelope) (Payload, error) {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, errs.Mark(errs.New("deal event without data"), errs.ErrValidation)
	}
	var data dealData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "malformed deal data"), errs.ErrValidation)
	}
	if err := validate.Struct(data); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid deal data"), errs.ErrValidation)
	}
	return DealPayload{Envelope: env, Deal: *data.Deal, Previous: data.Previous}, nil
}
