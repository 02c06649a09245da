package agent

import (
	"github.com/aescanero/dago-bank-assistant/internal/accounts"
	"github.com/aescanero/dago-bank-assistant/internal/knowledge"
	"github.com/aescanero/dago-bank-assistant/internal/router"
)

// QueryTypeError marks a result produced by the top-level recovery
const QueryTypeError = "error"

// QueryResult is the outcome of one processed query
type QueryResult struct {
	Success            bool                  `json:"success"`
	QueryType          string                `json:"query_type"`
	Response           string                `json:"response"`
	Data               *accounts.BalanceInfo `json:"data,omitempty"`
	Cedula             string                `json:"cedula,omitempty"`
	Sources            []knowledge.Document  `json:"source_documents,omitempty"`
	NeedsClarification bool                  `json:"needs_clarification,omitempty"`
	Error              string                `json:"error,omitempty"`
	Routing            *router.RoutingResult `json:"routing,omitempty"`
}

func failure(category string, prefix string, err error) QueryResult {
	return QueryResult{
		Success:   false,
		QueryType: category,
		Response:  prefix + err.Error(),
		Error:     err.Error(),
	}
}
