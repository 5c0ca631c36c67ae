package domain

import "github.com/shopspring/decimal"

// Phase tags a PathPoint with which part of the plan it belongs to.
type Phase string

const (
	PhaseAccum  Phase = "accum"
	PhaseBridge Phase = "bridge"
	PhaseRetire Phase = "retire"
)

// PathPoint is one end-of-year balance snapshot, after that year's flows,
// withdrawals and growth have been applied.
type PathPoint struct {
	Age     int             `json:"age"`
	Outside decimal.Decimal `json:"outside"`
	Super   decimal.Decimal `json:"super"`
	Total   decimal.Decimal `json:"total"`
	Phase   Phase           `json:"phase"`
}

// Balances is the (outside, super) pair carried between simulation steps.
type Balances struct {
	Outside decimal.Decimal
	Super   decimal.Decimal
}

// Total returns the combined outside+super balance.
func (b Balances) Total() decimal.Decimal {
	return b.Outside.Add(b.Super)
}
