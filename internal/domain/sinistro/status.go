package sinistro

import "sinistro-sync/internal/pkg/errs"

type Status string

const (
	StatusEmAnalise          Status = "em_analise"
	StatusPendenteDocumentos Status = "pendente_documentos"
	StatusEmAndamento        Status = "em_andamento"
	StatusEnviadoOperadora   Status = "enviado_operadora"
	StatusAprovado           Status = "aprovado"
	StatusNegado             Status = "negado"
	StatusPago               Status = "pago"
	StatusConcluido          Status = "concluido"
)

// AllStatuses lists every status in workflow order.
var AllStatuses = []Status{
	StatusEmAnalise,
	StatusPendenteDocumentos,
	StatusEmAndamento,
	StatusEnviadoOperadora,
	StatusAprovado,
	StatusNegado,
	StatusPago,
	StatusConcluido,
}

var ErrInvalidStatus = errs.New("invalid sinistro status")

// Allowed single-step transitions. Terminal statuses have no outgoing edges.
var transitions = map[Status][]Status{
	StatusEmAnalise:          {StatusPendenteDocumentos},
	StatusPendenteDocumentos: {StatusEmAndamento},
	StatusEmAndamento:        {StatusEnviadoOperadora},
	StatusEnviadoOperadora:   {StatusAprovado, StatusNegado},
	StatusAprovado:           {StatusPago, StatusConcluido},
}

var labels = map[Status]string{
	StatusEmAnalise:          "Em análise",
	StatusPendenteDocumentos: "Pendente de documentos",
	StatusEmAndamento:        "Em andamento",
	StatusEnviadoOperadora:   "Enviado à operadora",
	StatusAprovado:           "Aprovado",
	StatusNegado:             "Negado",
	StatusPago:               "Pago",
	StatusConcluido:          "Concluído",
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := labels[s]
	return ok
}

// Label is the human-readable name used in timeline descriptions.
func (s Status) Label() string {
	if l, ok := labels[s]; ok {
		return l
	}
	return string(s)
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusNegado, StatusPago, StatusConcluido:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", errs.Mark(errs.Newf("unknown status %q", s), ErrInvalidStatus)
	}
	return st, nil
}

// CanTransition reports whether to is reachable from from by following the
// workflow graph forward. Skipping intermediate steps is allowed; leaving a
// terminal status or moving backwards is not.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	seen := map[Status]bool{from: true}
	queue := []Status{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range transitions[cur] {
			if next == to {
				return true
			}
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
