package commands

import (
	"context"
	"log/slog"
	"time"

	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/domain/timeline"
	"sinistro-sync/internal/pkg/clock"
	"sinistro-sync/internal/usecase/shared"
)

// ChangeMeta describes who or what caused a change, for the audit trail.
type ChangeMeta struct {
	Source    timeline.Source
	ActorName string
	Note      string
	// EventHash identifies an external change; empty for local changes.
	EventHash string
	RDEventID *string
}

type ReconcileResult struct {
	Changes sinistro.Changes
	// TimelineRecorded is false when the status entry was a replay.
	TimelineRecorded bool
}

// Reconciler persists entity changes and their timeline entries. Webhook,
// sync and local status changes all go through it.
type Reconciler struct {
	timeline *TimelineWriter
	clock    clock.Clock
	logger   *slog.Logger
}

func NewReconciler(tw *TimelineWriter, clk clock.Clock, logger *slog.Logger) *Reconciler {
	return &Reconciler{timeline: tw, clock: clk, logger: logger}
}

// Reconcile applies a change coming from the CRM and refreshes the sync
// fields even when nothing else changed.
func (r *Reconciler) Reconcile(ctx context.Context, tx shared.Tx, s *sinistro.Sinistro, u sinistro.Update, meta ChangeMeta) (ReconcileResult, error) {
	now := r.clock.Now()
	ch, err := s.Reconcile(u, now)
	if err != nil {
		return ReconcileResult{}, err
	}
	return r.persist(ctx, tx, s, ch, meta, now)
}

// ApplyLocal applies a change made in the portal. Sync fields are untouched.
func (r *Reconciler) ApplyLocal(ctx context.Context, tx shared.Tx, s *sinistro.Sinistro, u sinistro.Update, meta ChangeMeta) (ReconcileResult, error) {
	now := r.clock.Now()
	ch, err := s.ApplyLocal(u, now)
	if err != nil {
		return ReconcileResult{}, err
	}
	if !ch.BusinessChanged() {
		return ReconcileResult{Changes: ch}, nil
	}
	return r.persist(ctx, tx, s, ch, meta, now)
}

func (r *Reconciler) persist(ctx context.Context, tx shared.Tx, s *sinistro.Sinistro, ch sinistro.Changes, meta ChangeMeta, now time.Time) (ReconcileResult, error) {
	if err := tx.Sinistros().SaveSyncState(ctx, tx.DB(), s); err != nil {
		return ReconcileResult{}, err
	}

	res := ReconcileResult{Changes: ch}

	if ch.Linked {
		if _, err := r.timeline.Append(ctx, tx, timeline.NewLinked(s, *s.RDDealID, meta.ActorName, now)); err != nil {
			return ReconcileResult{}, err
		}
	}

	if ch.StatusChanged {
		entry := timeline.NewStatusChange(timeline.StatusChangeParams{
			Sinistro:  s,
			Previous:  ch.PreviousStatus,
			New:       ch.NewStatus,
			Source:    meta.Source,
			ActorName: meta.ActorName,
			Note:      meta.Note,
			EventHash: meta.EventHash,
			RDEventID: meta.RDEventID,
			Now:       now,
		})
		inserted, err := r.timeline.Append(ctx, tx, entry)
		if err != nil {
			return ReconcileResult{}, err
		}
		res.TimelineRecorded = inserted
	}

	if ch.Concluded {
		r.logger.Info("sinistro concluded",
			"sinistro_id", s.ID,
			"status", s.Status,
			"tempo_conclusao_minutos", *s.TempoConclusaoMinutos)
	}

	return res, nil
}
