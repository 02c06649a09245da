package knowledge

import (
	"context"
	"errors"
	"testing"

	"github.com/aescanero/dago-bank-assistant/internal/apperrors"
	"github.com/aescanero/dago-bank-assistant/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRetriever struct {
	docs []Document
	err  error
	k    int
}

func (s *stubRetriever) Retrieve(ctx context.Context, query string, k int) ([]Document, error) {
	s.k = k
	return s.docs, s.err
}

func TestQA_RetrieveAndGenerate(t *testing.T) {
	retriever := &stubRetriever{docs: []Document{
		{Content: "  Requisito: cédula vigente.  ", Source: "cuentas.txt"},
		{Content: "Depósito mínimo: 50 dólares.", Source: "cuentas.txt"},
	}}

	var prompt string
	completer := llm.CompleterFunc(func(ctx context.Context, p string) (string, error) {
		prompt = p
		return "  Necesita su cédula vigente.  ", nil
	})

	qa := NewQA(retriever, completer, 3, zap.NewNop())
	answer, err := qa.RetrieveAndGenerate(context.Background(), "¿Qué necesito para abrir una cuenta?")
	require.NoError(t, err)

	assert.Equal(t, 3, retriever.k)
	assert.Equal(t, "Necesita su cédula vigente.", answer.Text)
	assert.Len(t, answer.Sources, 2)
	assert.Contains(t, prompt, "Requisito: cédula vigente.")
	assert.Contains(t, prompt, "Depósito mínimo: 50 dólares.")
	assert.Contains(t, prompt, "Pregunta del cliente: ¿Qué necesito para abrir una cuenta?")
}

func TestQA_RetrievalFailure(t *testing.T) {
	retriever := &stubRetriever{err: errors.New("index unavailable")}
	qa := NewQA(retriever, llm.CompleterFunc(func(ctx context.Context, p string) (string, error) {
		t.Fatal("completer must not be called")
		return "", nil
	}), 3, zap.NewNop())

	_, err := qa.RetrieveAndGenerate(context.Background(), "tarjeta")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCollaborator))
	assert.Contains(t, err.Error(), "index unavailable")
}

func TestQA_GenerationFailure(t *testing.T) {
	retriever := &stubRetriever{docs: []Document{{Content: "x", Source: "a.txt"}}}
	qa := NewQA(retriever, llm.CompleterFunc(func(ctx context.Context, p string) (string, error) {
		return "", errors.New("quota exceeded")
	}), 3, zap.NewNop())

	_, err := qa.RetrieveAndGenerate(context.Background(), "tarjeta")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCollaborator))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestQA_NoCompleter(t *testing.T) {
	qa := NewQA(&stubRetriever{}, nil, 0, zap.NewNop())

	_, err := qa.RetrieveAndGenerate(context.Background(), "tarjeta")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestQA_Retrieve(t *testing.T) {
	retriever := &stubRetriever{docs: []Document{{Content: "x"}}}
	qa := NewQA(retriever, nil, 3, zap.NewNop())

	docs, err := qa.Retrieve(context.Background(), "x", 5)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Equal(t, 5, retriever.k)
}

func TestFormatKnowledgeResponse(t *testing.T) {
	out := FormatKnowledgeResponse([]Document{
		{Content: " Primer párrafo ", Source: "productos/tarjetas.md"},
		{Content: "Segundo"},
	}, "tarjetas")

	assert.Contains(t, out, "Información encontrada sobre: tarjetas")
	assert.Contains(t, out, "Fuente 1: tarjetas.md\nPrimer párrafo\n")
	assert.Contains(t, out, "Fuente 2: Unknown\nSegundo\n")

	assert.Equal(t, NoResultsMessage, FormatKnowledgeResponse(nil, "x"))
}
