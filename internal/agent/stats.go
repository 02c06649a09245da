package agent

import (
	"github.com/aescanero/dago-bank-assistant/internal/router"
	"go.uber.org/atomic"
)

// Stats counts processed queries. Safe for concurrent use.
type Stats struct {
	total     atomic.Int64
	balance   atomic.Int64
	knowledge atomic.Int64
	general   atomic.Int64
	errors    atomic.Int64
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	TotalQueries     int64   `json:"total_queries"`
	BalanceQueries   int64   `json:"balance_queries"`
	KnowledgeQueries int64   `json:"knowledge_queries"`
	GeneralQueries   int64   `json:"general_queries"`
	Errors           int64   `json:"errors"`
	SuccessRate      float64 `json:"success_rate"`
}

func (s *Stats) recordCategory(c router.Category) {
	switch c {
	case router.Balance:
		s.balance.Inc()
	case router.Knowledge:
		s.knowledge.Inc()
	case router.General:
		s.general.Inc()
	}
}

// Snapshot returns the current counters. SuccessRate is a percentage, 0 when nothing was processed.
func (s *Stats) Snapshot() Snapshot {
	snap := Snapshot{
		TotalQueries:     s.total.Load(),
		BalanceQueries:   s.balance.Load(),
		KnowledgeQueries: s.knowledge.Load(),
		GeneralQueries:   s.general.Load(),
		Errors:           s.errors.Load(),
	}
	if snap.TotalQueries > 0 {
		snap.SuccessRate = float64(snap.TotalQueries-snap.Errors) / float64(snap.TotalQueries) * 100
	}
	return snap
}

// Reset zeroes every counter
func (s *Stats) Reset() {
	s.total.Store(0)
	s.balance.Store(0)
	s.knowledge.Store(0)
	s.general.Store(0)
	s.errors.Store(0)
}
