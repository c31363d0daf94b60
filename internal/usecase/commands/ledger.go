package commands

import (
	"context"
	"log/slog"

	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/pkg/clock"
	"sinistro-sync/internal/pkg/errs"
	"sinistro-sync/internal/usecase/shared"
)

const staleClaimReason = "stale claim released"

var ErrClaimLost = errs.New("webhook claim no longer held")

type ClaimResult struct {
	Event     *webhook.Event
	Duplicate bool
}

// Ledger is the processed-event store guarding against duplicate delivery.
type Ledger struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	logger   *slog.Logger
	settings WebhookSettings
}

func NewLedger(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger, settings WebhookSettings) *Ledger {
	return &Ledger{uow: uow, clock: clk, logger: logger, settings: settings}
}

// TryClaim records the event as processing. Duplicate means another delivery
// already owns or finished it and the caller must not write anything.
func (l *Ledger) TryClaim(ctx context.Context, eventID, eventType string, payload []byte) (ClaimResult, error) {
	now := l.clock.Now()
	ev, claimed, err := l.uow.Direct().WebhookEvents().Claim(ctx, l.uow.Direct().DB(), shared.ClaimParams{
		Provider:    l.settings.Provider,
		EventID:     eventID,
		EventType:   eventType,
		Payload:     payload,
		Now:         now,
		StaleBefore: now.Add(-l.settings.ClaimTTL),
	})
	if err != nil {
		return ClaimResult{}, err
	}
	if !claimed {
		l.logger.Info("duplicate webhook event", "provider", l.settings.Provider, "event_id", eventID)
		return ClaimResult{Duplicate: true}, nil
	}
	if ev.Attempts > 1 {
		l.logger.Info("reclaimed webhook event", "event_id", eventID, "attempts", ev.Attempts)
	}
	return ClaimResult{Event: ev}, nil
}

// MarkProcessed finalizes a claimed event within tx. A row finalized or
// reclaimed elsewhere yields ErrClaimLost so the surrounding transaction rolls back.
func (l *Ledger) MarkProcessed(ctx context.Context, tx shared.Tx, ev *webhook.Event, status webhook.Status, msg string) error {
	var lastError *string
	if msg != "" {
		lastError = &msg
	}
	ok, err := tx.WebhookEvents().MarkProcessed(ctx, tx.DB(), ev.ID, ev.Attempts, status, lastError, l.clock.Now())
	if err != nil {
		return err
	}
	if !ok {
		return errs.Wrapf(ErrClaimLost, "event %s", ev.EventID)
	}
	ev.Status = status
	ev.LastError = lastError
	return nil
}

// MarkFailed finalizes the event as error outside of any transaction. It is
// the last resort of a failed processing attempt and only logs its own errors.
func (l *Ledger) MarkFailed(ctx context.Context, ev *webhook.Event, cause error) {
	msg := errs.Message(cause)
	if err := l.MarkProcessed(ctx, l.uow.Direct(), ev, webhook.StatusError, msg); err != nil {
		l.logger.Error("failed to mark webhook event as error",
			"event_id", ev.EventID,
			"cause", msg,
			"error", err.Error())
	}
}

// ReleaseStale turns abandoned processing claims into retriable errors.
func (l *Ledger) ReleaseStale(ctx context.Context) (int64, error) {
	now := l.clock.Now()
	n, err := l.uow.Direct().WebhookEvents().ReleaseStale(ctx, l.uow.Direct().DB(), now.Add(-l.settings.ClaimTTL), now, staleClaimReason)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		l.logger.Warn("released stale webhook claims", "count", n)
	}
	return n, nil
}
