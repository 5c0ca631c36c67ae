package calculation

import (
	"sort"

	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// mtrTolerance is the 1-basis-point tolerance spec.md §4.E uses to group
// people with "the same" marginal tax rate.
var mtrTolerance = decimal.NewFromFloat(0.0001)

// AllocateConcessionalByMTR splits a household's aggregate concessional
// allocation across members, filling higher-MTR headroom first and
// splitting pro-rata by headroom within an MTR group (spec.md §4.E).
// Grounded on the teacher's bracket-walking idiom (taxes.go's
// CalculateFederalTax loop) adapted from "walk brackets, accumulate tax"
// to "walk MTR groups, accumulate allocation".
func (ce *CalculationEngine) AllocateConcessionalByMTR(totalGross decimal.Decimal, people []domain.Person) domain.AllocationResult {
	ordered := make([]domain.Person, len(people))
	copy(ordered, people)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].MTR.GreaterThan(ordered[j].MTR)
	})

	groups := groupByMTR(ordered)

	allocations := make(map[string]decimal.Decimal, len(people))
	remaining := totalGross

	for _, g := range groups {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		groupHeadroom := decimal.Zero
		for _, p := range g {
			groupHeadroom = groupHeadroom.Add(p.Headroom)
		}
		if groupHeadroom.LessThanOrEqual(decimal.Zero) {
			continue
		}
		toAllocate := decimal.Min(remaining, groupHeadroom)

		for _, p := range g {
			share := toAllocate.Mul(p.Headroom).Div(groupHeadroom)
			rounded := share.Round(0)
			allocations[p.ID] = allocations[p.ID].Add(rounded)
			remaining = remaining.Sub(share) // reduce against the unrounded amount to avoid drift
		}
	}

	perPerson := make([]domain.PersonAllocation, 0, len(people))
	total := decimal.Zero
	for _, p := range people {
		amt := allocations[p.ID]
		perPerson = append(perPerson, domain.PersonAllocation{ID: p.ID, SSGross: amt})
		total = total.Add(amt)
	}

	return domain.AllocationResult{PerPerson: perPerson, TotalAllocated: total}
}

// groupByMTR partitions an MTR-descending-sorted slice into contiguous
// groups whose members are all within mtrTolerance of the group's first
// (highest) rate.
func groupByMTR(sorted []domain.Person) [][]domain.Person {
	var groups [][]domain.Person
	for _, p := range sorted {
		if len(groups) > 0 {
			last := groups[len(groups)-1]
			anchor := last[0].MTR
			if anchor.Sub(p.MTR).Abs().LessThanOrEqual(mtrTolerance) {
				groups[len(groups)-1] = append(last, p)
				continue
			}
		}
		groups = append(groups, []domain.Person{p})
	}
	return groups
}
