package commands

import (
	"context"
	"log/slog"

	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/domain/timeline"
	"sinistro-sync/internal/domain/user"
	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/pkg/errs"
	"sinistro-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errs.Mark(errs.New("status transition not allowed"), errs.ErrInvalidTransition)

type StatusChangeRequest struct {
	Status     string
	Observacao string
	Actor      user.Actor
}

type StatusChangeResult struct {
	SinistroID     uuid.UUID
	PreviousStatus sinistro.Status
	NewStatus      sinistro.Status
	StatusChanged  bool
	// Pushed is true when the linked RD deal was updated afterwards.
	Pushed    bool
	SyncError string
}

type StatusCommands interface {
	ChangeStatus(ctx context.Context, id uuid.UUID, req StatusChangeRequest) (*StatusChangeResult, error)
}

type statusUseCaseImpl struct {
	uow        shared.UnitOfWork
	reconciler *Reconciler
	sync       SyncCommands
	logger     *slog.Logger
}

func NewStatusUseCase(uow shared.UnitOfWork, reconciler *Reconciler, sync SyncCommands, logger *slog.Logger) StatusCommands {
	return &statusUseCaseImpl{uow: uow, reconciler: reconciler, sync: sync, logger: logger}
}

func (uc *statusUseCaseImpl) ChangeStatus(ctx context.Context, id uuid.UUID, req StatusChangeRequest) (*StatusChangeResult, error) {
	next, err := sinistro.ParseStatus(req.Status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var result *StatusChangeResult
	var linked bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sinistros().FindByIDForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSinistroNotFound
			}
			return err
		}
		if !sinistro.CanTransition(s.Status, next) {
			return errs.Wrapf(ErrInvalidTransition, "%s -> %s", s.Status, next)
		}

		rec, err := uc.reconciler.ApplyLocal(ctx, tx, s, sinistro.Update{Status: &next}, ChangeMeta{
			Source:    timeline.SourceSistema,
			ActorName: req.Actor.DisplayName(),
			Note:      req.Observacao,
		})
		if err != nil {
			return err
		}

		linked = s.IsLinked()
		result = &StatusChangeResult{
			SinistroID:     s.ID,
			PreviousStatus: rec.Changes.PreviousStatus,
			NewStatus:      rec.Changes.NewStatus,
			StatusChanged:  rec.Changes.StatusChanged,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.StatusChanged && linked {
		if _, err := uc.sync.Sync(ctx, SyncRequest{SinistroID: id, Action: SyncActionUpdate, Actor: req.Actor}); err != nil {
			result.SyncError = errs.Message(err)
		} else {
			result.Pushed = true
		}
	}

	return result, nil
}
