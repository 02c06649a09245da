package cel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluator_Match(t *testing.T) {
	e := NewEvaluator()
	ctx := context.Background()

	tests := []struct {
		name  string
		expr  string
		query string
		want  bool
	}{
		{"literal contains", `query.contains('saldo')`, "consultar mi saldo", true},
		{"regex unanchored", `query.matches(r'cu[aá]nto.*dinero')`, "¿cuánto dinero tengo?", true},
		{"regex digits", `query.matches(r'v-\d{7,8}')`, "balance v-1234567", true},
		{"regex no match", `query.matches(r'v-\d{7,8}')`, "balance v-12", false},
		{"boolean logic", `size(query) > 3 && !query.startsWith('hola')`, "hola amigo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Match(ctx, tt.expr, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluator_NonBooleanCondition(t *testing.T) {
	e := NewEvaluator()

	_, err := e.Match(context.Background(), `size(query)`, "hola")
	assert.Error(t, err)
	assert.Error(t, e.ValidateExpression(`size(query)`))
}

func TestEvaluator_CompileError(t *testing.T) {
	e := NewEvaluator()

	_, err := e.Match(context.Background(), `query.matches(`, "hola")
	assert.Error(t, err)
	assert.Error(t, e.ValidateExpression(`unknown_var == 1`))
	assert.NoError(t, e.ValidateExpression(`query.contains('hola')`))
}

func TestEvaluator_CachesPrograms(t *testing.T) {
	e := NewEvaluator()
	ctx := context.Background()

	_, err := e.Match(ctx, `query.contains('a')`, "a")
	require.NoError(t, err)
	assert.Len(t, e.cache, 1)

	_, err = e.Match(ctx, `query.contains('a')`, "b")
	require.NoError(t, err)
	assert.Len(t, e.cache, 1)

	e.ClearCache()
	assert.Empty(t, e.cache)
}
