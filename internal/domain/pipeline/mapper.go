package pipeline

import (
	"strings"
	"unicode"

	"sinistro-sync/internal/domain/sinistro"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type compiledRule struct {
	fragments []string
	status    sinistro.Status
}

// Mapper translates between local statuses and pipeline stage ordinals.
// It is pure and safe for concurrent use.
type Mapper struct {
	ordinals []sinistro.Status
	index    map[sinistro.Status]int
	labels   []compiledRule
}

func NewMapper(r Rules) (*Mapper, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	m := &Mapper{
		ordinals: append([]sinistro.Status(nil), r.Ordinals...),
		index:    make(map[sinistro.Status]int, len(r.Ordinals)),
	}
	for i, st := range r.Ordinals {
		m.index[st] = i
	}
	for _, lr := range r.Labels {
		cr := compiledRule{status: lr.Status}
		for _, f := range lr.Contains {
			if nf := Normalize(f); nf != "" {
				cr.fragments = append(cr.fragments, nf)
			}
		}
		m.labels = append(m.labels, cr)
	}
	return m, nil
}

// StageIndex maps status to a stage ordinal, clamped to [0, stageCount-1] so
// pipelines with fewer stages than statuses never index out of bounds.
func (m *Mapper) StageIndex(status sinistro.Status, stageCount int) (int, bool) {
	idx, ok := m.index[status]
	if !ok || stageCount <= 0 {
		return 0, false
	}
	if idx > stageCount-1 {
		idx = stageCount - 1
	}
	return idx, true
}

// StageFor picks the stage of p that represents status.
func (m *Mapper) StageFor(status sinistro.Status, p Pipeline) (Stage, bool) {
	idx, ok := m.StageIndex(status, len(p.Stages))
	if !ok {
		return Stage{}, false
	}
	return p.StageAt(idx)
}

// StatusFor maps a stage back to a local status. A label match wins over the
// ordinal because pipelines are user-editable and ordinals drift. Pass a
// negative ordinal when the position is unknown.
func (m *Mapper) StatusFor(ordinal int, label string) (sinistro.Status, bool) {
	if st, ok := m.StatusForLabel(label); ok {
		return st, true
	}
	if ordinal >= 0 && ordinal < len(m.ordinals) {
		return m.ordinals[ordinal], true
	}
	return "", false
}

func (m *Mapper) StatusForLabel(label string) (sinistro.Status, bool) {
	nl := Normalize(label)
	if nl == "" {
		return "", false
	}
	for _, r := range m.labels {
		for _, f := range r.fragments {
			if strings.Contains(nl, f) {
				return r.status, true
			}
		}
	}
	return "", false
}

// Normalize folds case and strips diacritics so "Concluído" matches "conclu".
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(cases.Fold().String(out))
}
