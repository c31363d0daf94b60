package pipeline

import (
	"fmt"
	"os"

	"sinistro-sync/internal/domain/sinistro"

	"gopkg.in/yaml.v3"
)

// LabelRule forces Status when the normalized stage label contains any of
// the given fragments.
type LabelRule struct {
	Contains []string        `yaml:"contains"`
	Status   sinistro.Status `yaml:"status"`
}

// Rules is the mapping table between local statuses and pipeline stages.
// Ordinals[i] is the status represented by the i-th stage. Label rules are
// evaluated in order and win over the ordinal.
type Rules struct {
	Ordinals []sinistro.Status `yaml:"ordinals"`
	Labels   []LabelRule       `yaml:"labels"`
}

func DefaultRules() Rules {
	return Rules{
		Ordinals: append([]sinistro.Status(nil), sinistro.AllStatuses...),
		Labels: []LabelRule{
			// terminal statuses first so "Pago" or "Negado" can never be shadowed
			{Contains: []string{"pago"}, Status: sinistro.StatusPago},
			{Contains: []string{"negad", "recusad"}, Status: sinistro.StatusNegado},
			{Contains: []string{"conclu"}, Status: sinistro.StatusConcluido},
			{Contains: []string{"aprovad"}, Status: sinistro.StatusAprovado},
			{Contains: []string{"enviado", "operadora"}, Status: sinistro.StatusEnviadoOperadora},
			{Contains: []string{"pendente", "document"}, Status: sinistro.StatusPendenteDocumentos},
			{Contains: []string{"andamento"}, Status: sinistro.StatusEmAndamento},
			{Contains: []string{"analise"}, Status: sinistro.StatusEmAnalise},
		},
	}
}

// LoadRules reads rules from a YAML file. An empty path yields the defaults.
func LoadRules(path string) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read stage mapping %s: %w", path, err)
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parse stage mapping %s: %w", path, err)
	}
	if len(r.Labels) == 0 {
		r.Labels = DefaultRules().Labels
	}
	if err := r.Validate(); err != nil {
		return Rules{}, fmt.Errorf("stage mapping %s: %w", path, err)
	}
	return r, nil
}

// Validate requires every status to appear exactly once in Ordinals and every
// label rule to target a known status.
func (r Rules) Validate() error {
	seen := make(map[sinistro.Status]bool, len(r.Ordinals))
	for _, st := range r.Ordinals {
		if !st.IsValid() {
			return fmt.Errorf("unknown status %q in ordinals", st)
		}
		if seen[st] {
			return fmt.Errorf("status %q listed twice in ordinals", st)
		}
		seen[st] = true
	}
	for _, st := range sinistro.AllStatuses {
		if !seen[st] {
			return fmt.Errorf("status %q missing from ordinals", st)
		}
	}
	for i, lr := range r.Labels {
		if !lr.Status.IsValid() {
			return fmt.Errorf("label rule %d: unknown status %q", i, lr.Status)
		}
		if len(lr.Contains) == 0 {
			return fmt.Errorf("label rule %d: no fragments", i)
		}
	}
	return nil
}
