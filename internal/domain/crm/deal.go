package crm

import "strings"

// Deal is the subset of an RD Station CRM deal the sync path reads or writes.
type Deal struct {
	ID           string        `json:"_id" validate:"required"`
	Name         string        `json:"name,omitempty"`
	Stage        DealStage     `json:"deal_stage"`
	User         *DealUser     `json:"user,omitempty"`
	CreatedAt    string        `json:"created_at,omitempty"`
	UpdatedAt    string        `json:"updated_at,omitempty"`
	CustomFields []CustomField `json:"deal_custom_fields,omitempty"`
}

type DealStage struct {
	ID       string `json:"_id" validate:"required"`
	Name     string `json:"name,omitempty"`
	Nickname string `json:"nickname,omitempty"`
}

type DealUser struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type CustomField struct {
	CustomFieldID string `json:"custom_field_id"`
	Value         any    `json:"value"`
}

// StageLabel prefers the stage name and falls back to its nickname.
func (d Deal) StageLabel() string {
	if d.Stage.Name != "" {
		return d.Stage.Name
	}
	return d.Stage.Nickname
}

func (d Deal) OwnerName() string {
	if d.User == nil {
		return ""
	}
	return strings.TrimSpace(d.User.Name)
}

// CustomFieldString returns the string value of the given custom field.
func (d Deal) CustomFieldString(fieldID string) (string, bool) {
	if fieldID == "" {
		return "", false
	}
	for _, cf := range d.CustomFields {
		if cf.CustomFieldID != fieldID {
			continue
		}
		if s, ok := cf.Value.(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s), true
		}
	}
	return "", false
}

// DealInput is the body sent when creating or updating a deal.
type DealInput struct {
	Name         string        `json:"name,omitempty"`
	StageID      string        `json:"deal_stage_id,omitempty"`
	CustomFields []CustomField `json:"deal_custom_fields,omitempty"`
}
