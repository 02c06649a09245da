package router

import (
	"context"
	"errors"
	"testing"

	"github.com/aescanero/dago-bank-assistant/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeLLM records prompts and answers with a fixed reply or error
type fakeLLM struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func newTestRouter(t *testing.T, completer llm.Completer) *Router {
	t.Helper()
	r, err := NewRouter(completer, zap.NewNop())
	require.NoError(t, err)
	return r
}

func TestRuleClassifier_DefaultRules(t *testing.T) {
	c, err := NewRuleClassifier(DefaultRules(), zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		text   string
		want   Category
		wantOK bool
	}{
		{"¿Cuál es el balance de la cédula V-12345678?", Balance, true},
		{"Consultar saldo V-87654321", Balance, true},
		{"Balance de cuenta V-11111111", Balance, true},
		{"¿Cuánto dinero tengo en mi cuenta?", Balance, true},
		{"Consultar mi saldo", Balance, true},
		{"Estado de cuenta", Balance, true},
		{"¿Cómo abrir una cuenta de ahorros en el banco?", Knowledge, true},
		{"¿Cómo puedo obtener una tarjeta de crédito?", Knowledge, true},
		{"¿Cómo hacer una transferencia bancaria?", Knowledge, true},
		{"Requisitos para abrir cuenta", Knowledge, true},
		{"Información sobre cuentas de ahorro", Knowledge, true},
		{"procedimiento de reclamos", Knowledge, true},
		{"v-12345678", Balance, true},
		{"Hola, buenos días", "", false},
		{"¿Qué hora es?", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, _, ok := c.Classify(ctx, tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRuleClassifier_KnowledgePhraseBeatsBareCedula(t *testing.T) {
	c, err := NewRuleClassifier(DefaultRules(), zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	got, _, ok := c.Classify(ctx, "¿Cómo abrir una cuenta? V-12345678")
	require.True(t, ok)
	assert.Equal(t, Knowledge, got)

	got, _, ok = c.Classify(ctx, "Balance V-12345678")
	require.True(t, ok)
	assert.Equal(t, Balance, got)
}

func TestRuleClassifier_BalanceKeywordBeatsKnowledge(t *testing.T) {
	c, err := NewRuleClassifier(DefaultRules(), zap.NewNop())
	require.NoError(t, err)

	got, _, ok := c.Classify(context.Background(), "requisitos para consultar el saldo")
	require.True(t, ok)
	assert.Equal(t, Balance, got)
}

func TestNewRuleClassifier_RejectsBadRules(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule
	}{
		{"empty condition", []Rule{{Condition: "", Target: Balance}}},
		{"unknown target", []Rule{{Condition: `query.contains('x')`, Target: "error"}}},
		{"non boolean", []Rule{{Condition: `size(query)`, Target: General}}},
		{"syntax error", []Rule{{Condition: `query.contains(`, Target: General}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRuleClassifier(tt.rules, zap.NewNop())
			assert.Error(t, err)
		})
	}
}

func TestRouter_FastPathSkipsLLM(t *testing.T) {
	fake := &fakeLLM{reply: "general"}
	r := newTestRouter(t, fake)

	result := r.Route(context.Background(), "Balance V-12345678")
	assert.Equal(t, Balance, result.Category)
	assert.Equal(t, PathFast, result.PathTaken)
	assert.Empty(t, fake.prompts)
}

func TestRouter_LLMFallback(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  Category
	}{
		{"balance word", "balance", Balance},
		{"knowledge with noise", "  Knowledge.\n", Knowledge},
		{"general", "general", General},
		{"both words prefers balance", "knowledge or balance", Balance},
		{"unexpected reply", "no sé", General},
		{"empty reply", "", General},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeLLM{reply: tt.reply}
			r := newTestRouter(t, fake)

			result := r.Route(context.Background(), "¿Qué servicios ofrecen?")
			assert.Equal(t, tt.want, result.Category)
			assert.Equal(t, PathSlow, result.PathTaken)
			require.Len(t, fake.prompts, 1)
			assert.Contains(t, fake.prompts[0], `Consulta del cliente: "¿Qué servicios ofrecen?"`)
		})
	}
}

func TestRouter_LLMFailureDegradesToGeneral(t *testing.T) {
	r := newTestRouter(t, &fakeLLM{err: errors.New("quota exceeded")})

	result := r.Route(context.Background(), "Hola")
	assert.Equal(t, General, result.Category)
	assert.Equal(t, PathFallback, result.PathTaken)
	assert.Contains(t, result.Reasoning, "quota exceeded")
}

func TestRouter_NoLLMConfigured(t *testing.T) {
	r := newTestRouter(t, nil)

	assert.Equal(t, General, r.ClassifyQuery(context.Background(), "Hola"))
	assert.Equal(t, Knowledge, r.ClassifyQuery(context.Background(), "pasos para transferir"))
}

func TestRouter_NotConfiguredClientDegrades(t *testing.T) {
	r := newTestRouter(t, llm.NewClient(nil, llm.Options{}, zap.NewNop()))

	assert.Equal(t, General, r.ClassifyQuery(context.Background(), "Gracias"))
}

func TestRouter_ExtractCedula(t *testing.T) {
	r := newTestRouter(t, nil)

	got, ok := r.ExtractCedula("Balance de la cédula V-99999999")
	assert.True(t, ok)
	assert.Equal(t, "V-99999999", got)

	_, ok = r.ExtractCedula("mi saldo")
	assert.False(t, ok)
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, Balance.Valid())
	assert.True(t, Knowledge.Valid())
	assert.True(t, General.Valid())
	assert.False(t, Category("error").Valid())
	assert.False(t, Category("").Valid())
}
