package domain

import "github.com/shopspring/decimal"

// Person is one household member's concessional-contribution headroom and
// marginal tax rate, as consumed by allocateConcessionalByMTR.
type Person struct {
	ID       string          `json:"id"`
	Headroom decimal.Decimal `json:"headroom"`
	MTR      decimal.Decimal `json:"mtr"`
}

// PersonAllocation is one person's share of an MTR-aware concessional
// allocation.
type PersonAllocation struct {
	ID      string          `json:"id"`
	SSGross decimal.Decimal `json:"ssGross"`
}

// AllocationResult is the result of allocateConcessionalByMTR.
type AllocationResult struct {
	PerPerson      []PersonAllocation `json:"perPerson"`
	TotalAllocated decimal.Decimal    `json:"totalAllocated"`
}
