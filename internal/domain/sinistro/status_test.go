//go:build unit

package sinistro_test

import (
	"testing"

	"sinistro-sync/internal/domain/sinistro"
	"sinistro-sync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to sinistro.Status
		want     bool
	}{
		{sinistro.StatusEmAnalise, sinistro.StatusPendenteDocumentos, true},
		{sinistro.StatusEmAnalise, sinistro.StatusEnviadoOperadora, true},
		{sinistro.StatusEnviadoOperadora, sinistro.StatusNegado, true},
		{sinistro.StatusAprovado, sinistro.StatusConcluido, true},
		{sinistro.StatusEmAnalise, sinistro.StatusPago, true},
		{sinistro.StatusEmAndamento, sinistro.StatusEmAnalise, false},
		{sinistro.StatusNegado, sinistro.StatusAprovado, false},
		{sinistro.StatusPago, sinistro.StatusConcluido, false},
		{sinistro.StatusNegado, sinistro.StatusPago, false},
		{sinistro.StatusPago, sinistro.StatusPago, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, sinistro.CanTransition(tc.from, tc.to))
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, st := range sinistro.AllStatuses {
		got, err := sinistro.ParseStatus(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
		assert.NotEqual(t, string(st), st.Label())
	}

	_, err := sinistro.ParseStatus("EM_ANALISE")
	assert.True(t, errs.Is(err, sinistro.ErrInvalidStatus))
}

func TestIsTerminal(t *testing.T) {
	terminal := map[sinistro.Status]bool{
		sinistro.StatusNegado:    true,
		sinistro.StatusPago:      true,
		sinistro.StatusConcluido: true,
	}
	for _, st := range sinistro.AllStatuses {
		assert.Equal(t, terminal[st], st.IsTerminal(), st)
	}
}
