//go:build unit || e2e

package fake

import (
	"context"
	"sync"
	"time"

	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/domain/timeline"
	"sinistro-sync/internal/domain/webhook"
	"sinistro-sync/internal/infra"
	sqlc "sinistro-sync/internal/infra/sqlc/generated"
	"sinistro-sync/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is an in-memory stand-in for the three tables. A failed Within
// restores sinistros and timeline; ledger rows are only written through
// Direct or as the last statement of a transaction, so they are left alone.
type Store struct {
	mu        sync.Mutex
	events    map[string]*webhook.Event
	sinistros map[uuid.UUID]*sinistro.Sinistro
	timeline  []*timeline.Entry

	// SinistroWrites counts successful SaveSyncState calls.
	SinistroWrites int
	// FailSave makes every SaveSyncState fail with this error.
	FailSave error
}

func NewStore() *Store {
	return &Store{
		events:    map[string]*webhook.Event{},
		sinistros: map[uuid.UUID]*sinistro.Sinistro{},
	}
}

func (s *Store) PutSinistro(v *sinistro.Sinistro) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *v
	s.sinistros[v.ID] = &c
}

func (s *Store) Sinistro(id uuid.UUID) (*sinistro.Sinistro, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.sinistros[id]
	if !ok {
		return nil, false
	}
	c := *v
	return &c, true
}

func (s *Store) Event(provider, eventID string) (*webhook.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.events[provider+"|"+eventID]
	if !ok {
		return nil, false
	}
	c := *v
	return &c, true
}

func (s *Store) Events() []*webhook.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*webhook.Event, 0, len(s.events))
	for _, v := range s.events {
		c := *v
		out = append(out, &c)
	}
	return out
}

// Timeline returns the entries of a sinistro in insertion order.
func (s *Store) Timeline(sinistroID uuid.UUID) []*timeline.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*timeline.Entry
	for _, e := range s.timeline {
		if e.SinistroID == sinistroID {
			c := *e
			out = append(out, &c)
		}
	}
	return out
}

type snapshot struct {
	sinistros map[uuid.UUID]*sinistro.Sinistro
	timeline  []*timeline.Entry
	writes    int
}

func (s *Store) snapshot() snapshot {
	snap := snapshot{
		sinistros: make(map[uuid.UUID]*sinistro.Sinistro, len(s.sinistros)),
		timeline:  append([]*timeline.Entry(nil), s.timeline...),
		writes:    s.SinistroWrites,
	}
	for k, v := range s.sinistros {
		c := *v
		snap.sinistros[k] = &c
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.sinistros = snap.sinistros
	s.timeline = snap.timeline
	s.SinistroWrites = snap.writes
}

// UnitOfWork serializes transactions; the store is not meant for load.
type UnitOfWork struct {
	store *Store
	txMu  sync.Mutex
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.txMu.Lock()
	defer u.txMu.Unlock()

	u.store.mu.Lock()
	snap := u.store.snapshot()
	u.store.mu.Unlock()

	if err := fn(ctx, &tx{store: u.store}); err != nil {
		u.store.mu.Lock()
		u.store.restore(snap)
		u.store.mu.Unlock()
		return err
	}
	return nil
}

func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) Direct() shared.Tx {
	return &tx{store: u.store}
}

type tx struct {
	store *Store
}

func (t *tx) WebhookEvents() shared.WebhookEventRepository { return &eventRepo{store: t.store} }
func (t *tx) Sinistros() shared.SinistroRepository         { return &sinistroRepo{store: t.store} }
func (t *tx) Timeline() shared.TimelineRepository          { return &timelineRepo{store: t.store} }
func (t *tx) DB() sqlc.DBTX                                { return nil }

type eventRepo struct {
	store *Store
}

func (r *eventRepo) Claim(_ context.Context, _ sqlc.DBTX, p shared.ClaimParams) (*webhook.Event, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := p.Provider + "|" + p.EventID
	ev, ok := r.store.events[key]
	if !ok {
		ev = &webhook.Event{
			ID:         uuid.New(),
			Provider:   p.Provider,
			EventID:    p.EventID,
			EventType:  p.EventType,
			Payload:    p.Payload,
			Status:     webhook.StatusProcessing,
			Attempts:   1,
			ReceivedAt: p.Now,
			UpdatedAt:  p.Now,
		}
		r.store.events[key] = ev
		c := *ev
		return &c, true, nil
	}

	stale := ev.Status == webhook.StatusProcessing && ev.UpdatedAt.Before(p.StaleBefore)
	if ev.Status != webhook.StatusError && !stale {
		return nil, false, nil
	}
	ev.Status = webhook.StatusProcessing
	ev.Attempts++
	ev.Payload = p.Payload
	ev.LastError = nil
	ev.ProcessedAt = nil
	ev.UpdatedAt = p.Now
	c := *ev
	return &c, true, nil
}

func (r *eventRepo) MarkProcessed(_ context.Context, _ sqlc.DBTX, id uuid.UUID, attempts int, status webhook.Status, lastError *string, now time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, ev := range r.store.events {
		if ev.ID != id {
			continue
		}
		if ev.Status != webhook.StatusProcessing || ev.Attempts != attempts {
			return false, nil
		}
		processed := now
		ev.Status = status
		ev.LastError = lastError
		ev.UpdatedAt = now
		ev.ProcessedAt = &processed
		return true, nil
	}
	return false, nil
}

func (r *eventRepo) ReleaseStale(_ context.Context, _ sqlc.DBTX, staleBefore, now time.Time, reason string) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var n int64
	for _, ev := range r.store.events {
		if ev.Status == webhook.StatusProcessing && ev.UpdatedAt.Before(staleBefore) {
			msg := reason
			ev.Status = webhook.StatusError
			ev.LastError = &msg
			ev.UpdatedAt = now
			n++
		}
	}
	return n, nil
}

func (r *eventRepo) Get(_ context.Context, _ sqlc.DBTX, provider, eventID string) (*webhook.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ev, ok := r.store.events[provider+"|"+eventID]
	if !ok {
		return nil, infra.WrapRepoErr("webhook event not found", nil, infra.KindNotFound)
	}
	c := *ev
	return &c, nil
}

type sinistroRepo struct {
	store *Store
}

func (r *sinistroRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*sinistro.Sinistro, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.sinistros[id]
	if !ok {
		return nil, infra.WrapRepoErr("sinistro not found", nil, infra.KindNotFound)
	}
	c := *s
	return &c, nil
}

func (r *sinistroRepo) FindByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*sinistro.Sinistro, error) {
	return r.FindByID(ctx, db, id)
}

func (r *sinistroRepo) FindByRDDealIDForUpdate(_ context.Context, _ sqlc.DBTX, dealID string) (*sinistro.Sinistro, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, s := range r.store.sinistros {
		if s.RDDealID != nil && *s.RDDealID == dealID {
			c := *s
			return &c, nil
		}
	}
	return nil, infra.WrapRepoErr("sinistro not found", nil, infra.KindNotFound)
}

func (r *sinistroRepo) SaveSyncState(_ context.Context, _ sqlc.DBTX, s *sinistro.Sinistro) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.FailSave != nil {
		return r.store.FailSave
	}
	if _, ok := r.store.sinistros[s.ID]; !ok {
		return infra.WrapRepoErr("sinistro not found", nil, infra.KindNotFound)
	}
	c := *s
	r.store.sinistros[s.ID] = &c
	r.store.SinistroWrites++
	return nil
}

func (r *sinistroRepo) RecordSyncError(_ context.Context, _ sqlc.DBTX, id uuid.UUID, msg string, now time.Time) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.sinistros[id]
	if !ok {
		return infra.WrapRepoErr("sinistro not found", nil, infra.KindNotFound)
	}
	s.RecordSyncFailure(msg, now)
	return nil
}

type timelineRepo struct {
	store *Store
}

func (r *timelineRepo) Insert(_ context.Context, _ sqlc.DBTX, e *timeline.Entry) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.timeline {
		if existing.EventHash == e.EventHash {
			return false, nil
		}
	}
	c := *e
	r.store.timeline = append(r.store.timeline, &c)
	return true, nil
}
