//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Body renders a request DTO as the JSON object a client would send and
// applies muts to it, so tests can break one field at a time.
func Body(t *testing.T, dto any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(dto)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

func Set(key string, value any) func(map[string]any) {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) func(map[string]any) {
	return func(m map[string]any) { delete(m, key) }
}
