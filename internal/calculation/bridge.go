package calculation

import (
	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeBridgePV is the single source of truth for bridge feasibility
// (spec.md §4.C): can the outside balance at retirement age R, plus any
// outside-destined inflows still to land before preservation age P, fund
// spending from R to P?
//
// Grounded on the PV discounting helpers in dgallion1/simpleBudget's
// retirement calculator (PresentValue/PresentValueAnnuity), adapted from
// a monthly annuity formula to a per-age sum over the household's own
// spending schedule (spec.md §4.C's needPV formula uses the band
// multipliers, not a flat annuity).
func (ce *CalculationEngine) ComputeBridgePV(h *domain.Household, retireAge int, sBase decimal.Decimal, balancesAtR domain.Balances) domain.BridgeReport {
	preserveAge := preservationAgeOrDefault(h)
	years := preserveAge - retireAge
	if years < 0 {
		years = 0
	}

	growth := one.Add(h.RealReturn)

	needPV := decimal.Zero
	for age := retireAge; age < preserveAge; age++ {
		spend := sBase.Mul(h.Multiplier(age))
		discount := growth.Pow(decimal.NewFromInt(int64(age - retireAge)))
		needPV = needPV.Add(spend.Div(discount))
	}

	havePV := balancesAtR.Outside
	for age := retireAge; age < preserveAge; age++ {
		for _, inflow := range h.InflowsAt(age) {
			if inflow.Destination() != domain.DestinationSuper {
				discount := growth.Pow(decimal.NewFromInt(int64(age - retireAge)))
				havePV = havePV.Add(inflow.Amount.Div(discount))
			}
		}
	}

	covered := havePV.GreaterThanOrEqual(needPV.Sub(bridgeEpsilon))

	return domain.BridgeReport{
		Years:   years,
		NeedPV:  needPV,
		HavePV:  havePV,
		Covered: covered,
	}
}
