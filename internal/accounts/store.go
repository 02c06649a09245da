package accounts

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aescanero/dago-bank-assistant/internal/apperrors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Column names of the balance source
const (
	ColumnID      = "ID_Cedula"
	ColumnName    = "Nombre"
	ColumnBalance = "Balance"
)

// Account is one row of the balance source
type Account struct {
	ID      string          `json:"cedula"`
	Name    string          `json:"nombre"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceInfo is the outcome of a point lookup. Found false is a normal result.
type BalanceInfo struct {
	Found   bool             `json:"found"`
	Cedula  string           `json:"cedula,omitempty"`
	Name    string           `json:"nombre,omitempty"`
	Balance *decimal.Decimal `json:"balance,omitempty"`
	Message string           `json:"message"`
}

// Store is a read-only, in-memory view of the balance source
type Store struct {
	accounts []Account
	byID     map[string]int
	logger   *zap.Logger
}

// Load reads the CSV file at path. A missing or malformed file is a startup failure.
func Load(path string, logger *zap.Logger) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		logger.Error("accounts file not found", zap.String("path", path), zap.Error(err))
		return nil, apperrors.Startup("accounts.Load", err)
	}
	defer f.Close()

	accounts, err := Parse(f)
	if err != nil {
		logger.Error("failed to load accounts", zap.String("path", path), zap.Error(err))
		return nil, apperrors.Startup("accounts.Load", fmt.Errorf("%s: %w", path, err))
	}

	logger.Info("accounts loaded", zap.String("path", path), zap.Int("records", len(accounts)))
	return NewStore(accounts, logger), nil
}

// Parse decodes the balance source. Columns are located by header name.
func Parse(r io.Reader) ([]Account, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty accounts file")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}
	for _, col := range []string{ColumnID, ColumnName, ColumnBalance} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	var accounts []Account
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		balance, err := decimal.NewFromString(strings.TrimSpace(record[idx[ColumnBalance]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid balance: %w", line, err)
		}
		if balance.IsNegative() {
			return nil, fmt.Errorf("line %d: negative balance %s", line, balance)
		}

		accounts = append(accounts, Account{
			ID:      strings.ToUpper(strings.TrimSpace(record[idx[ColumnID]])),
			Name:    strings.TrimSpace(record[idx[ColumnName]]),
			Balance: balance,
		})
	}

	return accounts, nil
}

// NewStore indexes accounts by id. When an id repeats, the first row wins.
func NewStore(accounts []Account, logger *zap.Logger) *Store {
	s := &Store{
		accounts: append([]Account(nil), accounts...),
		byID:     make(map[string]int, len(accounts)),
		logger:   logger,
	}

	for i, a := range s.accounts {
		if _, dup := s.byID[a.ID]; dup {
			logger.Warn("duplicate account id, keeping first", zap.String("cedula", a.ID))
			continue
		}
		s.byID[a.ID] = i
	}

	return s
}

// GetBalance looks up an account by cédula, ignoring case and surrounding space
func (s *Store) GetBalance(id string) (*BalanceInfo, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return nil, apperrors.InvalidArgument("accounts.GetBalance", "ID de cédula no puede estar vacío")
	}

	i, ok := s.byID[id]
	if !ok {
		s.logger.Warn("cedula not found", zap.String("cedula", id))
		return &BalanceInfo{
			Found:   false,
			Message: fmt.Sprintf("No se encontró ninguna cuenta con la cédula %s", id),
		}, nil
	}

	a := s.accounts[i]
	balance := a.Balance
	s.logger.Info("balance looked up", zap.String("cedula", id))

	return &BalanceInfo{
		Found:   true,
		Cedula:  a.ID,
		Name:    a.Name,
		Balance: &balance,
		Message: fmt.Sprintf("El balance de la cuenta de %s (Cédula: %s) es: $%s", a.Name, a.ID, a.Balance.StringFixed(2)),
	}, nil
}

// SearchByName returns every account whose name contains name, ignoring case
func (s *Store) SearchByName(name string) []Account {
	needle := strings.ToLower(name)

	results := []Account{}
	for _, a := range s.accounts {
		if strings.Contains(strings.ToLower(a.Name), needle) {
			results = append(results, a)
		}
	}

	s.logger.Debug("name search", zap.String("name", name), zap.Int("results", len(results)))
	return results
}

// All returns a copy of every loaded account, in source order
func (s *Store) All() []Account {
	return append([]Account(nil), s.accounts...)
}

// Len returns the number of loaded rows
func (s *Store) Len() int {
	return len(s.accounts)
}
