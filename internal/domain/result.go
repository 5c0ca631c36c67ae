package domain

import "github.com/shopspring/decimal"

// EarliestAges bundles the two earliest-age notions compute-decision
// reports: the bridge-feasible viable age and the theoretical age ignoring
// bridge feasibility (the forced age itself when forceRetireAge is set).
type EarliestAges struct {
	Theoretical *int `json:"theoretical"`
	Viable      *int `json:"viable"`
}

// BridgeStatus is the human-facing classification of a BridgeReport.
type BridgeStatus string

const (
	BridgeStatusCovered BridgeStatus = "covered"
	BridgeStatusShort   BridgeStatus = "short"
)

// DecisionBridge is the bridge section of a DecisionResult.
type DecisionBridge struct {
	Status BridgeStatus    `json:"status"`
	Years  int             `json:"years"`
	Need   decimal.Decimal `json:"need"`
	Have   decimal.Decimal `json:"have"`
}

// RecommendedSplit is the per-person concessional allocation recommended
// alongside a decision, produced by allocateConcessionalByMTR when the
// request carries per-person MTR data and the household has a
// PreFireSavingsSplit; nil otherwise.
type RecommendedSplit struct {
	ToSuperPct decimal.Decimal    `json:"toSuperPct"`
	PerPerson  []PersonAllocation `json:"perPerson,omitempty"`
}

// DecisionResult is the result of the compute-decision operation.
type DecisionResult struct {
	SustainableAnnual decimal.Decimal   `json:"sustainableAnnual"`
	Earliest          EarliestAges      `json:"earliest"`
	Bridge            DecisionBridge    `json:"bridge"`
	Path              []PathPoint       `json:"path"`
	RecommendedSplit  *RecommendedSplit `json:"recommendedSplit,omitempty"`
	Depleted          bool              `json:"depleted"`
}

// PlanResult is the result of earliest-age-for-plan.
type PlanResult struct {
	EarliestAge *int            `json:"earliestAge"`
	AtAgeSpend  decimal.Decimal `json:"atAgeSpend,omitempty"`
	Evaluations int             `json:"evaluations"`
}

// SensitivityPoint is one evaluated split percentage and its outcome,
// adapted from the teacher's SensitivityParameter sweep-point shape
// (domain/sensitivity_analysis.go) to the split optimizer's single free
// variable (alpha, the fraction of savings directed to super).
type SensitivityPoint struct {
	Pct         decimal.Decimal `json:"pct"`
	EarliestAge *int            `json:"earliestAge"`
	SBase       decimal.Decimal `json:"sBase"`
}

// SplitConstraints reports the effective caps the optimizer ran against.
type SplitConstraints struct {
	EffectiveCapPerPerson decimal.Decimal `json:"effectiveCapPerPerson"`
	CapBinding            bool            `json:"capBinding"`
}

// SplitResult is the result shared by optimize-savings-split and
// optimize-split-for-plan.
type SplitResult struct {
	RecommendedPct decimal.Decimal    `json:"recommendedPct"`
	EarliestAge    *int               `json:"earliestAge"`
	DWZSpend       decimal.Decimal    `json:"dwzSpend"`
	Sensitivity    []SensitivityPoint `json:"sensitivity"`
	Constraints    SplitConstraints   `json:"constraints"`
	Evaluations    int                `json:"evaluations"`
	Explanation    string             `json:"explanation"`
}
