package llm

import (
	"context"
	"testing"

	"github.com/aescanero/dago-bank-assistant/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(nil, Options{Model: "test"}, zap.NewNop())

	_, err := c.Complete(context.Background(), "hola")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.True(t, apperrors.IsKind(err, apperrors.KindCollaborator))
}

func TestCompleterFunc(t *testing.T) {
	var got string
	f := CompleterFunc(func(ctx context.Context, prompt string) (string, error) {
		got = prompt
		return "general", nil
	})

	out, err := f.Complete(context.Background(), "¿Qué hora es?")
	require.NoError(t, err)
	assert.Equal(t, "general", out)
	assert.Equal(t, "¿Qué hora es?", got)
}
