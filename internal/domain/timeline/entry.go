package timeline

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"sinistro-sync/internal/domain/sinistro"

	"github.com/google/uuid"
)

type Source string

const (
	SourceSistema   Source = "sistema"
	SourceRDStation Source = "rd_station"
)

const (
	TipoStatusAlterado = "status_alterado"
	TipoVinculadoRD    = "vinculado_rd"
)

// Entry is one append-only audit row. ActorName and TempoDecorrido are
// computed when the row is written and never recomputed.
type Entry struct {
	ID             uuid.UUID
	SinistroID     uuid.UUID
	TipoEvento     string
	Descricao      string
	StatusAnterior *sinistro.Status
	StatusNovo     *sinistro.Status
	Source         Source
	ActorName      string
	TempoDecorrido string
	EventHash      string
	RDEventID      *string
	CreatedAt      time.Time
}

// EventHash derives the idempotency key of an external change. It uses the
// stage id, not the status derived from the stage label, so two stages whose
// labels fold to the same status still produce distinct rows.
// externalUpdatedAt is hashed verbatim as the CRM sent it.
func EventHash(eventType, externalID, externalStageID, externalUpdatedAt string) string {
	return hashParts(eventType, externalID, externalStageID, externalUpdatedAt)
}

func hashParts(parts ...string) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(h.Sum(nil))
}

// StatusChangeParams describes a status transition to record.
type StatusChangeParams struct {
	Sinistro  *sinistro.Sinistro
	Previous  sinistro.Status
	New       sinistro.Status
	Source    Source
	ActorName string
	Note      string
	// EventHash is required for external changes; local changes derive one.
	EventHash string
	RDEventID *string
	Now       time.Time
}

func NewStatusChange(p StatusChangeParams) *Entry {
	prev, next := p.Previous, p.New
	hash := p.EventHash
	if hash == "" {
		hash = hashParts(TipoStatusAlterado, p.Sinistro.ID.String(), string(prev), string(next), p.Now.UTC().Format(time.RFC3339Nano))
	}

	desc := "Status alterado de " + prev.Label() + " para " + next.Label()
	if p.Source == SourceRDStation {
		desc += " via RD Station"
	}
	if note := strings.TrimSpace(p.Note); note != "" {
		desc += ": " + note
	}

	return &Entry{
		ID:             uuid.New(),
		SinistroID:     p.Sinistro.ID,
		TipoEvento:     TipoStatusAlterado,
		Descricao:      desc,
		StatusAnterior: &prev,
		StatusNovo:     &next,
		Source:         p.Source,
		ActorName:      actorOrDefault(p.ActorName, p.Source),
		TempoDecorrido: FormatElapsed(p.Now.Sub(p.Sinistro.CreatedAt)),
		EventHash:      hash,
		RDEventID:      p.RDEventID,
		CreatedAt:      p.Now,
	}
}

// NewLinked records the first link of a sinistro to an RD deal.
func NewLinked(s *sinistro.Sinistro, dealID, actorName string, now time.Time) *Entry {
	return &Entry{
		ID:             uuid.New(),
		SinistroID:     s.ID,
		TipoEvento:     TipoVinculadoRD,
		Descricao:      "Sinistro vinculado à negociação " + dealID + " no RD Station",
		Source:         SourceSistema,
		ActorName:      actorOrDefault(actorName, SourceSistema),
		TempoDecorrido: FormatElapsed(now.Sub(s.CreatedAt)),
		EventHash:      hashParts(TipoVinculadoRD, s.ID.String(), dealID),
		CreatedAt:      now,
	}
}

func actorOrDefault(name string, src Source) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	if src == SourceRDStation {
		return "RD Station"
	}
	return "Sistema"
}
