package sinistro

import (
	"time"

	"sinistro-sync/internal/pkg/patch"
)

// Update is a partial change proposed by the sync path. Nil fields are left
// untouched.
type Update struct {
	Status       *Status
	RDDealID     *string
	RDStageID    *string
	RDPipelineID *string
	RDOwnerName  *string
}

// Changes describes what Reconcile did to the record.
type Changes struct {
	PreviousStatus Status
	NewStatus      Status
	StatusChanged  bool
	// RDDealID went from unset to set.
	Linked bool
	// ConcludedAt was set by this reconciliation.
	Concluded     bool
	FieldsChanged []string
}

// BusinessChanged is true when any column other than the sync bookkeeping
// fields has to be written.
func (c Changes) BusinessChanged() bool {
	return len(c.FieldsChanged) > 0
}

// Reconcile applies an external change to s. Only differing fields are
// written; the sync bookkeeping fields are refreshed unconditionally so
// staleness is observable even when nothing else changed.
func (s *Sinistro) Reconcile(u Update, now time.Time) (Changes, error) {
	ch, err := s.apply(u, now)
	if err != nil {
		return Changes{}, err
	}
	s.markSynced(now)
	return ch, nil
}

// ApplyLocal applies a change made by a portal user. Same rules as Reconcile
// but the sync bookkeeping fields are left alone.
func (s *Sinistro) ApplyLocal(u Update, now time.Time) (Changes, error) {
	return s.apply(u, now)
}

// ConcludedAt is never overwritten once set.
func (s *Sinistro) apply(u Update, now time.Time) (Changes, error) {
	ch := Changes{PreviousStatus: s.Status, NewStatus: s.Status}

	if u.Status != nil {
		if !u.Status.IsValid() {
			return Changes{}, ErrInvalidStatus
		}
		if *u.Status != s.Status {
			s.Status = *u.Status
			ch.NewStatus = s.Status
			ch.StatusChanged = true
			ch.FieldsChanged = append(ch.FieldsChanged, "status")

			if s.Status.IsTerminal() && s.ConcludedAt == nil {
				concluded := now
				minutes := int64(now.Sub(s.CreatedAt) / time.Minute)
				if minutes < 0 {
					minutes = 0
				}
				s.ConcludedAt = &concluded
				s.TempoConclusaoMinutos = &minutes
				ch.Concluded = true
				ch.FieldsChanged = append(ch.FieldsChanged, "concluded_at", "tempo_conclusao_minutos")
			}
		}
	}

	if patch.Differs(s.RDDealID, u.RDDealID) {
		ch.Linked = !s.IsLinked()
		s.RDDealID = u.RDDealID
		ch.FieldsChanged = append(ch.FieldsChanged, "rd_deal_id")
	}
	if patch.Differs(s.RDStageID, u.RDStageID) {
		s.RDStageID = u.RDStageID
		ch.FieldsChanged = append(ch.FieldsChanged, "rd_stage_id")
	}
	if patch.Differs(s.RDPipelineID, u.RDPipelineID) {
		s.RDPipelineID = u.RDPipelineID
		ch.FieldsChanged = append(ch.FieldsChanged, "rd_pipeline_id")
	}
	if patch.Differs(s.RDOwnerName, u.RDOwnerName) {
		s.RDOwnerName = u.RDOwnerName
		ch.FieldsChanged = append(ch.FieldsChanged, "rd_owner_name")
	}

	if ch.BusinessChanged() {
		s.UpdatedAt = now
	}

	return ch, nil
}

// RecordSyncFailure keeps the business state and stores the failure so it can
// be inspected later.
func (s *Sinistro) RecordSyncFailure(msg string, now time.Time) {
	synced := now
	s.SyncStatus = SyncStatusError
	s.LastSyncAt = &synced
	s.LastSyncError = &msg
}

func (s *Sinistro) markSynced(now time.Time) {
	synced := now
	s.SyncStatus = SyncStatusOK
	s.LastSyncAt = &synced
	s.LastSyncError = nil
}
