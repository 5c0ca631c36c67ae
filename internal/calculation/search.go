package calculation

import (
	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// maxAgeSearchSpan bounds the unconstrained and plan-first linear/binary
// searches, matching spec.md §4.D's "currentAge+60" cap.
const maxAgeSearchSpan = 60

func searchCeiling(h *domain.Household, hiAgeHint *int) int {
	ceiling := h.CurrentAge + maxAgeSearchSpan
	if h.LifeExp-1 < ceiling {
		ceiling = h.LifeExp - 1
	}
	if hiAgeHint != nil && *hiAgeHint < ceiling {
		ceiling = *hiAgeHint
	}
	return ceiling
}

// ViableAge is the result of findEarliestViable: the first retirement age
// whose solved spend is positive, bridge-feasible and non-depleting, with
// its full accumulation+retirement path.
type ViableAge struct {
	Age    *int
	SBase  decimal.Decimal
	Path   []domain.PathPoint
	Bridge domain.BridgeReport
}

// FindEarliestViable performs the unconstrained linear scan of spec.md
// §4.D1: the smallest retirement age R for which the solved base spend is
// positive, the bridge period is fully funded and the retirement path
// does not deplete before lifeExp.
func (ce *CalculationEngine) FindEarliestViable(h *domain.Household) ViableAge {
	ceiling := searchCeiling(h, nil)

	for r := h.CurrentAge; r <= ceiling; r++ {
		sol := ce.SolveSBaseForAge(h, r)
		if sol.SBase.LessThanOrEqual(decimal.Zero) || sol.Depleted {
			continue
		}
		bridge := ce.ComputeBridgePV(h, r, sol.SBase, sol.BalancesAtR)
		if !bridge.Covered {
			continue
		}

		_, accumPath := ce.AccumulateUntil(h, r-1)
		path := append(accumPath, sol.PathRetire...)
		age := r
		return ViableAge{Age: &age, SBase: sol.SBase, Path: path, Bridge: bridge}
	}
	return ViableAge{}
}

// FindEarliestTheoretical is findEarliestViable's bridge-blind sibling: the
// smallest retirement age whose solved spend is positive and
// non-depleting, without requiring the bridge period to be covered. It is
// the "theoretical" age reported alongside the bridge-feasible "viable"
// age in a compute-decision result, so a household can see how much the
// bridge constraint alone is costing them.
func (ce *CalculationEngine) FindEarliestTheoretical(h *domain.Household) *int {
	ceiling := searchCeiling(h, nil)
	for r := h.CurrentAge; r <= ceiling; r++ {
		sol := ce.SolveSBaseForAge(h, r)
		if sol.SBase.LessThanOrEqual(decimal.Zero) || sol.Depleted {
			continue
		}
		age := r
		return &age
	}
	return nil
}

// joinPath stitches the accumulation path (currentAge..R-1) to the
// retirement path (R..lifeExp) for the given retirement age, under the
// end-of-year convention - the two segments share no duplicate age, so no
// discontinuity is introduced at the seam.
func (ce *CalculationEngine) joinPath(h *domain.Household, retireAge int) []domain.PathPoint {
	_, accumPath := ce.AccumulateUntil(h, retireAge-1)
	sol := ce.SolveSBaseForAge(h, retireAge)
	return append(accumPath, sol.PathRetire...)
}

// FindEarliestAgeForPlan performs the plan-first binary search of spec.md
// §4.D2: the smallest retirement age R whose solved spend is at least
// plan, relying on S(R) being non-decreasing in R.
func (ce *CalculationEngine) FindEarliestAgeForPlan(h *domain.Household, plan decimal.Decimal, hiAgeHint *int) domain.PlanResult {
	lo := h.CurrentAge
	hi := searchCeiling(h, hiAgeHint)
	evaluations := 0

	solveAt := func(r int) decimal.Decimal {
		evaluations++
		return ce.SolveSBaseForAge(h, r).SBase
	}

	sAtHi := solveAt(hi)
	if sAtHi.LessThan(plan) {
		return domain.PlanResult{EarliestAge: nil, Evaluations: evaluations}
	}

	for i := 0; i < maxPlanSearchIter && lo < hi; i++ {
		mid := lo + (hi-lo)/2
		if solveAt(mid).GreaterThanOrEqual(plan) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	age := hi
	atAgeSpend := ce.SolveSBaseForAge(h, age).SBase
	evaluations++
	return domain.PlanResult{EarliestAge: &age, AtAgeSpend: atAgeSpend, Evaluations: evaluations}
}
