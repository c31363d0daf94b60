package commands

import (
	"context"
	"log/slog"

	"sinistro-sync/internal/domain/crm"
	"sinistro-sync/internal/domain/pipeline"
	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/domain/timeline"
	"sinistro-sync/internal/domain/user"
	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/pkg/clock"
	"sinistro-sync/internal/pkg/errs"
	"sinistro-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSinistroNotFound    = errs.Mark(errs.New("sinistro not found"), errs.ErrNotFound)
	ErrNotLinked           = errs.Mark(errs.New("sinistro is not linked to an RD deal"), errs.ErrValidation)
	ErrInvalidSyncAction   = errs.Mark(errs.New("invalid sync action"), errs.ErrValidation)
	ErrPipelineUnavailable = errs.Mark(errs.New("configured RD pipeline not available"), errs.ErrUpstream)
)

type SyncAction string

const (
	SyncActionCreate SyncAction = "create"
	SyncActionUpdate SyncAction = "update"
	// SyncActionSync creates the deal when unlinked and updates it otherwise.
	SyncActionSync SyncAction = "sync"
)

func ParseSyncAction(s string) (SyncAction, error) {
	switch a := SyncAction(s); a {
	case SyncActionCreate, SyncActionUpdate, SyncActionSync:
		return a, nil
	default:
		return "", ErrInvalidSyncAction
	}
}

type SyncRequest struct {
	SinistroID uuid.UUID
	Action     SyncAction
	Actor      user.Actor
}

type SyncResult struct {
	SinistroID uuid.UUID
	// Action is what was done upstream: create or update.
	Action     SyncAction
	DealID     string
	StageID    string
	PipelineID string
	// Linked is true when this call linked the sinistro for the first time.
	Linked bool
}

type SyncCommands interface {
	// Sync pushes the local state of a sinistro to its RD deal.
	Sync(ctx context.Context, req SyncRequest) (*SyncResult, error)
}

type syncUseCaseImpl struct {
	uow        shared.UnitOfWork
	crm        shared.CRMClient
	catalog    shared.PipelineCatalog
	mapper     *pipeline.Mapper
	reconciler *Reconciler
	clock      clock.Clock
	settings   SyncSettings
	logger     *slog.Logger
}

func NewSyncUseCase(
	uow shared.UnitOfWork,
	crmClient shared.CRMClient,
	catalog shared.PipelineCatalog,
	mapper *pipeline.Mapper,
	reconciler *Reconciler,
	clk clock.Clock,
	settings SyncSettings,
	logger *slog.Logger,
) SyncCommands {
	return &syncUseCaseImpl{
		uow:        uow,
		crm:        crmClient,
		catalog:    catalog,
		mapper:     mapper,
		reconciler: reconciler,
		clock:      clk,
		settings:   settings,
		logger:     logger,
	}
}

func (uc *syncUseCaseImpl) Sync(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	direct := uc.uow.Direct()
	s, err := direct.Sinistros().FindByID(ctx, direct.DB(), req.SinistroID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSinistroNotFound
		}
		return nil, err
	}

	action, err := effectiveAction(req.Action, s)
	if err != nil {
		return nil, err
	}

	deal, p, stage, err := uc.push(ctx, s, action)
	if err != nil {
		uc.recordFailure(ctx, s, err)
		return nil, err
	}

	dealID := deal.ID
	if dealID == "" && s.IsLinked() {
		dealID = *s.RDDealID
	}

	result := &SyncResult{
		SinistroID: s.ID,
		Action:     action,
		DealID:     dealID,
		StageID:    stage.ID,
		PipelineID: p.ID,
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Sinistros().FindByIDForUpdate(ctx, tx.DB(), s.ID)
		if err != nil {
			return err
		}

		u := sinistro.Update{
			RDDealID:     &result.DealID,
			RDStageID:    &result.StageID,
			RDPipelineID: &result.PipelineID,
		}
		if owner := deal.OwnerName(); owner != "" {
			u.RDOwnerName = &owner
		}

		rec, err := uc.reconciler.Reconcile(ctx, tx, current, u, ChangeMeta{
			Source:    timeline.SourceSistema,
			ActorName: req.Actor.DisplayName(),
		})
		if err != nil {
			return err
		}
		result.Linked = rec.Changes.Linked
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("sinistro synced to rd station",
		"sinistro_id", s.ID,
		"action", action,
		"deal_id", result.DealID,
		"stage_id", result.StageID,
		"linked", result.Linked)
	return result, nil
}

func effectiveAction(requested SyncAction, s *sinistro.Sinistro) (SyncAction, error) {
	switch requested {
	case SyncActionCreate:
		// A second create would duplicate the deal upstream.
		if s.IsLinked() {
			return SyncActionUpdate, nil
		}
		return SyncActionCreate, nil
	case SyncActionUpdate:
		if !s.IsLinked() {
			return "", ErrNotLinked
		}
		return SyncActionUpdate, nil
	case SyncActionSync:
		if s.IsLinked() {
			return SyncActionUpdate, nil
		}
		return SyncActionCreate, nil
	default:
		return "", ErrInvalidSyncAction
	}
}

func (uc *syncUseCaseImpl) push(ctx context.Context, s *sinistro.Sinistro, action SyncAction) (*crm.Deal, pipeline.Pipeline, pipeline.Stage, error) {
	pipelines, err := uc.catalog.Pipelines(ctx)
	if err != nil {
		return nil, pipeline.Pipeline{}, pipeline.Stage{}, err
	}
	p, ok := pipeline.Select(pipelines, uc.settings.PipelineID)
	if !ok {
		return nil, pipeline.Pipeline{}, pipeline.Stage{}, errs.Wrapf(ErrPipelineUnavailable, "pipeline %q", uc.settings.PipelineID)
	}
	stage, ok := uc.mapper.StageFor(s.Status, p)
	if !ok {
		return nil, pipeline.Pipeline{}, pipeline.Stage{}, errs.Wrapf(ErrPipelineUnavailable, "pipeline %s has no stages", p.ID)
	}

	in := crm.DealInput{
		Name:         s.DealName(),
		StageID:      stage.ID,
		CustomFields: uc.settings.CustomFields.build(s),
	}

	var deal *crm.Deal
	if action == SyncActionCreate {
		deal, err = uc.crm.CreateDeal(ctx, in)
	} else {
		deal, err = uc.crm.UpdateDeal(ctx, *s.RDDealID, in)
	}
	if err != nil {
		return nil, pipeline.Pipeline{}, pipeline.Stage{}, err
	}
	return deal, p, stage, nil
}

func (uc *syncUseCaseImpl) recordFailure(ctx context.Context, s *sinistro.Sinistro, cause error) {
	msg := errs.Message(cause)
	uc.logger.Warn("rd station sync failed", "sinistro_id", s.ID, "error", msg)

	s.RecordSyncFailure(msg, uc.clock.Now())
	direct := uc.uow.Direct()
	if err := direct.Sinistros().RecordSyncError(context.WithoutCancel(ctx), direct.DB(), s.ID, msg, *s.LastSyncAt); err != nil {
		uc.logger.Error("failed to record sync failure", "sinistro_id", s.ID, "error", err.Error())
	}
}
