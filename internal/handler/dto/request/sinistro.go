package request

import (
	"sinistro-sync/internal/domain/user"
	"sinistro-sync/internal/pkg/errs"
	"sinistro-sync/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrSinistroIDMismatch = errs.Mark(errs.New("sinistroId does not match path id"), errs.ErrValidation)

type SyncRequest struct {
	Action string `json:"action" binding:"required,oneof=create update sync"`
	// SinistroID is accepted for older portal clients and must match the path.
	SinistroID *uuid.UUID `json:"sinistroId"`
}

func (r *SyncRequest) ToCommand(pathID uuid.UUID, actor user.Actor) (commands.SyncRequest, error) {
	if r.SinistroID != nil && *r.SinistroID != pathID {
		return commands.SyncRequest{}, ErrSinistroIDMismatch
	}
	action, err := commands.ParseSyncAction(r.Action)
	if err != nil {
		return commands.SyncRequest{}, err
	}
	return commands.SyncRequest{SinistroID: pathID, Action: action, Actor: actor}, nil
}

type ChangeStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	Observacao string `json:"observacao" binding:"max=1000"`
}

func (r *ChangeStatusRequest) ToCommand(actor user.Actor) commands.StatusChangeRequest {
	return commands.StatusChangeRequest{Status: r.Status, Observacao: r.Observacao, Actor: actor}
}
