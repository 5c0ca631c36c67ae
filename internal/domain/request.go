package domain

import "github.com/shopspring/decimal"

// ComputeDecisionRequest is the compute-decision operation's input (spec.md
// §6): a household snapshot plus an optional forced retirement age.
type ComputeDecisionRequest struct {
	Household      Household `json:"household" validate:"required"`
	ForceRetireAge *int      `json:"forceRetireAge,omitempty"`
	People         []Person  `json:"people,omitempty"`
}

// OptimizeSavingsSplitRequest is optimize-savings-split's input.
type OptimizeSavingsSplitRequest struct {
	Household Household   `json:"household" validate:"required"`
	Policy    SplitPolicy `json:"policy" validate:"required"`
	Opts      SplitOpts   `json:"opts"`
}

// EarliestAgeForPlanRequest is earliest-age-for-plan's input.
type EarliestAgeForPlanRequest struct {
	Household Household       `json:"household" validate:"required"`
	Plan      decimal.Decimal `json:"plan" validate:"required"`
}

// OptimizeSplitForPlanRequest is optimize-split-for-plan's input.
type OptimizeSplitForPlanRequest struct {
	Household Household       `json:"household" validate:"required"`
	Plan      decimal.Decimal `json:"plan" validate:"required"`
	Policy    SplitPolicy     `json:"policy" validate:"required"`
	Opts      SplitOpts       `json:"opts"`
}

// AllocateConcessionalByMTRRequest is allocate-concessional-by-mtr's input.
type AllocateConcessionalByMTRRequest struct {
	TotalGross decimal.Decimal `json:"totalGross" validate:"required"`
	People     []Person        `json:"people" validate:"required,dive"`
}

// Envelope is the message-boundary response shape of spec.md §6: every
// operation returns either a result or an error, never both, keyed by the
// caller-supplied opaque id.
type Envelope struct {
	ID     string `json:"id"`
	OK     bool   `json:"ok"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}
