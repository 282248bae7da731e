package domain

import "time"

// EstimateSession is one visitor's estimate-building state: the date
// selection cursor and the per-item quantity ledger. The session lives
// until the visitor discards it; totals derived from it are never stored.
type EstimateSession struct {
	ID        string
	UserID    int64
	Selection Selection
	Ledger    QuantityLedger

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasConfirmedRange reports whether the session's range spans at least
// one night and can therefore be applied to the ledger.
func (s *EstimateSession) HasConfirmedRange() bool {
	return ComputeNightsDays(s.Selection.Range) != nil
}
