package accounts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aescanero/dago-bank-assistant/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const fixtureCSV = `ID_Cedula,Nombre,Balance
V-12345678,Juan Pérez,1250.50
V-87654321,María Gómez,6820.75
V-91827364,Luis Méndez,2580.00
V-12345678,Duplicado,1.00
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "saldos.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadFixture(t *testing.T) *Store {
	t.Helper()
	store, err := Load(writeFixture(t, fixtureCSV), zap.NewNop())
	require.NoError(t, err)
	return store
}

func TestLoad(t *testing.T) {
	store := loadFixture(t)
	assert.Equal(t, 4, store.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), zap.NewNop())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindStartup))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"empty", "", "empty accounts file"},
		{"missing column", "ID_Cedula,Nombre\nV-1,A\n", "missing column"},
		{"bad balance", "ID_Cedula,Nombre,Balance\nV-12345678,A,abc\n", "invalid balance"},
		{"negative balance", "ID_Cedula,Nombre,Balance\nV-12345678,A,-5\n", "negative balance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse_ReorderedColumnsAndBOM(t *testing.T) {
	content := "\ufeffBalance,ID_Cedula,Nombre\n10.5, v-11111111 ,Ana\n"
	accounts, err := Parse(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	assert.Equal(t, "V-11111111", accounts[0].ID)
	assert.Equal(t, "Ana", accounts[0].Name)
	assert.True(t, decimal.RequireFromString("10.5").Equal(accounts[0].Balance))
}

func TestGetBalance_Found(t *testing.T) {
	store := loadFixture(t)

	info, err := store.GetBalance("V-12345678")
	require.NoError(t, err)

	assert.True(t, info.Found)
	assert.Equal(t, "V-12345678", info.Cedula)
	assert.Equal(t, "Juan Pérez", info.Name)
	require.NotNil(t, info.Balance)
	assert.Equal(t, "1250.50", info.Balance.StringFixed(2))
	assert.Equal(t, "El balance de la cuenta de Juan Pérez (Cédula: V-12345678) es: $1250.50", info.Message)
}

func TestGetBalance_NormalizesInput(t *testing.T) {
	store := loadFixture(t)

	upper, err := store.GetBalance("V-12345678")
	require.NoError(t, err)
	lower, err := store.GetBalance("  v-12345678 ")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
}

func TestGetBalance_FirstRowWins(t *testing.T) {
	store := loadFixture(t)

	info, err := store.GetBalance("V-12345678")
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", info.Name)
}

func TestGetBalance_NotFound(t *testing.T) {
	store := loadFixture(t)

	info, err := store.GetBalance("V-99999999")
	require.NoError(t, err)

	assert.False(t, info.Found)
	assert.Nil(t, info.Balance)
	assert.Equal(t, "No se encontró ninguna cuenta con la cédula V-99999999", info.Message)
}

func TestGetBalance_Empty(t *testing.T) {
	store := loadFixture(t)

	for _, id := range []string{"", "   "} {
		_, err := store.GetBalance(id)
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindInvalidArgument))
	}
}

func TestSearchByName(t *testing.T) {
	store := loadFixture(t)

	results := store.SearchByName("pérez")
	require.Len(t, results, 1)
	assert.Equal(t, "V-12345678", results[0].ID)

	assert.Len(t, store.SearchByName("M"), 2)
	assert.Empty(t, store.SearchByName("nadie"))
}

func TestAll_ReturnsCopy(t *testing.T) {
	store := loadFixture(t)

	all := store.All()
	require.Len(t, all, 4)
	all[0].Name = "changed"

	info, err := store.GetBalance("V-12345678")
	require.NoError(t, err)
	assert.Equal(t, "Juan Pérez", info.Name)
}
