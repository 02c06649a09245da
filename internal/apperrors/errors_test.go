package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"invalid argument", InvalidArgument("accounts.GetBalance", "empty id"), KindInvalidArgument},
		{"wrapped collaborator", fmt.Errorf("classify: %w", Collaborator("llm.Complete", base)), KindCollaborator},
		{"startup", Startup("accounts.Load", base), KindStartup},
		{"plain error", base, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_UnwrapsCause(t *testing.T) {
	base := errors.New("quota exceeded")
	err := Collaborator("llm.Complete", base)

	assert.ErrorIs(t, err, base)
	assert.True(t, IsKind(err, KindCollaborator))
	assert.False(t, IsKind(err, KindStartup))
	assert.Equal(t, "llm.Complete: collaborator call failed: quota exceeded", err.Error())
}
