package commands

import (
	"context"
	"log/slog"

	"sinistro-sync/internal/domain/crm"
	"sinistro-sync/internal/domain/pipeline"
	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/domain/timeline"
	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/infra"
	"sinistro-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

type WebhookResult struct {
	EventID        string
	Duplicate      bool
	Ignored        bool
	Reason         string
	SinistroID     uuid.UUID
	StatusChanged  bool
	PreviousStatus sinistro.Status
	NewStatus      sinistro.Status
}

type WebhookCommands interface {
	// ProcessRDWebhook handles one authenticated delivery. Validation errors
	// happen before any write; any error after the claim leaves the ledger
	// row in error so a redelivery can retry.
	ProcessRDWebhook(ctx context.Context, body []byte) (*WebhookResult, error)
}

type webhookUseCaseImpl struct {
	uow        shared.UnitOfWork
	ledger     *Ledger
	reconciler *Reconciler
	catalog    shared.PipelineCatalog
	mapper     *pipeline.Mapper
	settings   WebhookSettings
	logger     *slog.Logger
}

func NewWebhookUseCase(
	uow shared.UnitOfWork,
	ledger *Ledger,
	reconciler *Reconciler,
	catalog shared.PipelineCatalog,
	mapper *pipeline.Mapper,
	settings WebhookSettings,
	logger *slog.Logger,
) WebhookCommands {
	return &webhookUseCaseImpl{
		uow:        uow,
		ledger:     ledger,
		reconciler: reconciler,
		catalog:    catalog,
		mapper:     mapper,
		settings:   settings,
		logger:     logger,
	}
}

// stageResolution is the local reading of the deal's current stage.
type stageResolution struct {
	status     sinistro.Status
	mapped     bool
	pipelineID string
	// catalogErr is kept so an unmapped stage can be retried when the
	// pipeline listing was unavailable.
	catalogErr error
}

func (uc *webhookUseCaseImpl) ProcessRDWebhook(ctx context.Context, body []byte) (result *WebhookResult, err error) {
	payload, err := webhook.ParsePayload(body)
	if err != nil {
		return nil, err
	}
	env := payload.Meta()

	claim, err := uc.ledger.TryClaim(ctx, env.EventUUID, env.EventType, body)
	if err != nil {
		return nil, err
	}
	if claim.Duplicate {
		return &WebhookResult{EventID: env.EventUUID, Duplicate: true}, nil
	}

	ev := claim.Event
	finalized := false
	defer func() {
		if err != nil && !finalized {
			uc.ledger.MarkFailed(context.WithoutCancel(ctx), ev, err)
		}
	}()

	switch p := payload.(type) {
	case webhook.DealPayload:
		result, err = uc.processDeal(ctx, ev, p)
		if err == nil {
			finalized = true
		}
		return result, err
	default:
		if err = uc.ledger.MarkProcessed(ctx, uc.uow.Direct(), ev, webhook.StatusIgnored, webhook.ReasonUnsupportedEvent); err != nil {
			return nil, err
		}
		finalized = true
		uc.logger.Info("ignored unsupported webhook event", "event_id", env.EventUUID, "event_type", env.EventType)
		return ignored(env.EventUUID, webhook.ReasonUnsupportedEvent), nil
	}
}

func (uc *webhookUseCaseImpl) processDeal(ctx context.Context, ev *webhook.Event, p webhook.DealPayload) (*WebhookResult, error) {
	deal := p.Deal
	res := uc.resolveStage(ctx, deal)

	var result *WebhookResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := uc.findSinistro(ctx, tx, deal)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			result = ignored(p.EventUUID, webhook.ReasonNoSinistro)
			return uc.ledger.MarkProcessed(ctx, tx, ev, webhook.StatusIgnored, webhook.ReasonNoSinistro)
		}

		if !res.mapped {
			if res.catalogErr != nil {
				return res.catalogErr
			}
			result = ignored(p.EventUUID, webhook.ReasonUnmappedStage)
			return uc.ledger.MarkProcessed(ctx, tx, ev, webhook.StatusIgnored, webhook.ReasonUnmappedStage)
		}

		if !sinistro.CanTransition(s.Status, res.status) {
			uc.logger.Warn("crm reported a transition outside the local state machine",
				"sinistro_id", s.ID,
				"from", s.Status,
				"to", res.status,
				"stage_id", deal.Stage.ID)
		}

		rec, err := uc.reconciler.Reconcile(ctx, tx, s, dealUpdate(deal, res), ChangeMeta{
			Source:    timeline.SourceRDStation,
			ActorName: deal.OwnerName(),
			EventHash: timeline.EventHash(p.EventType, deal.ID, deal.Stage.ID, p.TransitionStamp()),
			RDEventID: &p.EventUUID,
		})
		if err != nil {
			return err
		}

		result = &WebhookResult{
			EventID:        p.EventUUID,
			SinistroID:     s.ID,
			StatusChanged:  rec.Changes.StatusChanged,
			PreviousStatus: rec.Changes.PreviousStatus,
			NewStatus:      rec.Changes.NewStatus,
		}
		return uc.ledger.MarkProcessed(ctx, tx, ev, webhook.StatusOK, "")
	})
	if err != nil {
		return nil, err
	}

	if result.Ignored {
		uc.logger.Info("ignored webhook event", "event_id", p.EventUUID, "reason", result.Reason, "deal_id", deal.ID)
	} else {
		uc.logger.Info("webhook event processed",
			"event_id", p.EventUUID,
			"sinistro_id", result.SinistroID,
			"status_changed", result.StatusChanged,
			"status", result.NewStatus)
	}
	return result, nil
}

// resolveStage maps the deal stage to a status. The pipeline listing is only
// needed for the ordinal; the label alone may be enough.
func (uc *webhookUseCaseImpl) resolveStage(ctx context.Context, deal crm.Deal) stageResolution {
	ordinal := -1
	var res stageResolution

	p, ok, err := uc.pipelineOf(ctx, deal.Stage.ID)
	if err != nil {
		uc.logger.Warn("pipeline catalog unavailable, mapping by stage label only",
			"deal_id", deal.ID,
			"error", err.Error())
		res.catalogErr = err
	} else if ok {
		ordinal, _ = p.Ordinal(deal.Stage.ID)
		res.pipelineID = p.ID
	}

	res.status, res.mapped = uc.mapper.StatusFor(ordinal, deal.StageLabel())
	return res
}

// pipelineOf refetches once when the stage is missing, since a cached
// listing predates stages added in the CRM.
func (uc *webhookUseCaseImpl) pipelineOf(ctx context.Context, stageID string) (pipeline.Pipeline, bool, error) {
	pipelines, err := uc.catalog.Pipelines(ctx)
	if err != nil {
		return pipeline.Pipeline{}, false, err
	}
	if p, ok := pipeline.FindByStage(pipelines, stageID); ok {
		return p, true, nil
	}

	if err := uc.catalog.Invalidate(ctx); err != nil {
		uc.logger.Warn("pipeline cache invalidation failed", "error", err.Error())
		return pipeline.Pipeline{}, false, nil
	}
	pipelines, err = uc.catalog.Pipelines(ctx)
	if err != nil {
		return pipeline.Pipeline{}, false, err
	}
	p, ok := pipeline.FindByStage(pipelines, stageID)
	return p, ok, nil
}

// findSinistro looks the deal up by link first, then by the sinistro id
// custom field for deals created before the link existed.
func (uc *webhookUseCaseImpl) findSinistro(ctx context.Context, tx shared.Tx, deal crm.Deal) (*sinistro.Sinistro, error) {
	s, err := tx.Sinistros().FindByRDDealIDForUpdate(ctx, tx.DB(), deal.ID)
	if err == nil || !infra.IsKind(err, infra.KindNotFound) {
		return s, err
	}

	raw, ok := deal.CustomFieldString(uc.settings.SinistroIDField)
	if !ok {
		return nil, err
	}
	id, perr := uuid.Parse(raw)
	if perr != nil {
		uc.logger.Warn("deal carries a malformed sinistro id", "deal_id", deal.ID, "value", raw)
		return nil, err
	}

	s, ferr := tx.Sinistros().FindByIDForUpdate(ctx, tx.DB(), id)
	if ferr != nil {
		return nil, ferr
	}
	if s.IsLinked() && *s.RDDealID != deal.ID {
		uc.logger.Warn("sinistro already linked to another deal",
			"sinistro_id", s.ID,
			"linked_deal_id", *s.RDDealID,
			"deal_id", deal.ID)
		return nil, infra.WrapRepoErr("sinistro linked to another deal", nil, infra.KindNotFound)
	}
	return s, nil
}

func dealUpdate(deal crm.Deal, res stageResolution) sinistro.Update {
	status := res.status
	dealID := deal.ID
	stageID := deal.Stage.ID
	u := sinistro.Update{
		Status:    &status,
		RDDealID:  &dealID,
		RDStageID: &stageID,
	}
	if res.pipelineID != "" {
		u.RDPipelineID = &res.pipelineID
	}
	if owner := deal.OwnerName(); owner != "" {
		u.RDOwnerName = &owner
	}
	return u
}

func ignored(eventID, reason string) *WebhookResult {
	return &WebhookResult{EventID: eventID, Ignored: true, Reason: reason}
}
