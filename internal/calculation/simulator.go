package calculation

import (
	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// one = 1 as a decimal.Decimal, used throughout for "(1 + rate)" growth
// factors, the same idiom the teacher uses in tsp.go's inflation factor.
var one = decimal.NewFromInt(1)

// AccumulateUntil forward-rolls (outside, super) year by year from
// h.CurrentAge through targetAge under deterministic accumulation rules
// (spec.md §4.A, steps 1-4 for x < R). It returns the balances at
// end-of-year targetAge and one PathPoint per integer age visited,
// starting with h.CurrentAge itself.
func (ce *CalculationEngine) AccumulateUntil(h *domain.Household, targetAge int) (domain.Balances, []domain.PathPoint) {
	bal := domain.Balances{Outside: h.Outside0, Super: h.Super0}
	path := []domain.PathPoint{pointOf(h.CurrentAge, bal, domain.PhaseAccum)}

	for age := h.CurrentAge; age < targetAge; age++ {
		nextAge := age + 1
		bal = ce.applyAccumulationYear(h, bal, nextAge)
		path = append(path, pointOf(nextAge, bal, domain.PhaseAccum))
	}
	return bal, path
}

// applyAccumulationYear applies one accumulation-phase year's inflow,
// contribution and growth (spec.md §4.A steps 1-3).
func (ce *CalculationEngine) applyAccumulationYear(h *domain.Household, bal domain.Balances, nextAge int) domain.Balances {
	for _, inflow := range h.InflowsAt(nextAge) {
		if inflow.Destination() == domain.DestinationSuper {
			bal.Super = bal.Super.Add(inflow.Amount)
		} else {
			bal.Outside = bal.Outside.Add(inflow.Amount)
		}
	}

	toOutside, toSuper := ce.yearContribution(h)
	bal.Outside = bal.Outside.Add(toOutside)
	bal.Super = bal.Super.Add(toSuper)

	growth := one.Add(h.RealReturn)
	bal.Outside = bal.Outside.Mul(growth)
	bal.Super = bal.Super.Mul(growth)
	return bal
}

// yearContribution splits one year's AnnualSavings between outside and
// super per spec.md §4.A step 2. Without a PreFireSavingsSplit, everything
// goes outside. With one, the super-bound share is capped at the
// household's remaining concessional headroom and any overflow spills to
// outside. In netFixed mode outsideLanding is AnnualSavings minus whatever
// actually landed in super; in grossDeferral mode it is the gross not
// deferred to super, taxed at OutsideTaxRate.
func (ce *CalculationEngine) yearContribution(h *domain.Household) (toOutside, toSuper decimal.Decimal) {
	savings := h.AnnualSavings
	if h.Split == nil {
		return savings, decimal.Zero
	}
	sp := h.Split

	contribTaxRate := sp.ContribTaxRate
	if contribTaxRate.IsZero() {
		contribTaxRate = domain.DefaultContribTaxRate
	}

	capTotal := sp.CapPerPerson.Mul(decimal.NewFromInt(int64(sp.EligiblePeople)))
	headroom := capTotal.Sub(h.EmployerSGGross)
	if headroom.LessThan(decimal.Zero) {
		headroom = decimal.Zero
	}

	switch sp.Mode {
	case domain.SplitModeGrossDeferral:
		grossShare := savings.Mul(sp.ToSuperPct)
		grossCapped := decimal.Min(grossShare, headroom)
		if grossCapped.LessThan(decimal.Zero) {
			grossCapped = decimal.Zero
		}
		superLanding := grossCapped.Mul(one.Sub(contribTaxRate))
		outsideGross := savings.Sub(grossCapped)
		outsideLanding := outsideGross.Mul(one.Sub(sp.OutsideTaxRate))
		return outsideLanding, superLanding
	default: // netFixed
		netShare := savings.Mul(sp.ToSuperPct)
		grossShare := netShare.Div(one.Sub(contribTaxRate))
		grossCapped := decimal.Min(grossShare, headroom)
		if grossCapped.LessThan(decimal.Zero) {
			grossCapped = decimal.Zero
		}
		superLanding := grossCapped.Mul(one.Sub(contribTaxRate))
		outsideLanding := savings.Sub(superLanding)
		return outsideLanding, superLanding
	}
}

// RollToLifeExp forward-rolls (outside, super) from end-of-year fromAge
// (the balances at retirement age R, R = fromAge+1) through lifeExp under
// the retirement-phase rules (spec.md §4.A, steps for x >= R): the bridge
// period (age < preserveAge) draws from outside only, post-preservation
// draws from a single commingled pool depleting outside first. A
// withdrawal that exceeds available funds clamps to zero and records the
// depletion age (the first one only).
func (ce *CalculationEngine) RollToLifeExp(h *domain.Household, bal domain.Balances, fromAge, lifeExp, preserveAge int, sBase decimal.Decimal) (domain.Balances, []domain.PathPoint, bool, int) {
	depleted := false
	depletedAge := 0
	var path []domain.PathPoint

	for age := fromAge; age < lifeExp; age++ {
		nextAge := age + 1

		for _, inflow := range h.InflowsAt(nextAge) {
			if inflow.Destination() == domain.DestinationSuper {
				bal.Super = bal.Super.Add(inflow.Amount)
			} else {
				bal.Outside = bal.Outside.Add(inflow.Amount)
			}
		}

		need := sBase.Mul(h.Multiplier(nextAge))
		var phase domain.Phase
		if nextAge < preserveAge {
			phase = domain.PhaseBridge
			if bal.Outside.LessThan(need) {
				if !depleted {
					depleted = true
					depletedAge = nextAge
				}
				bal.Outside = decimal.Zero
			} else {
				bal.Outside = bal.Outside.Sub(need)
			}
		} else {
			phase = domain.PhaseRetire
			total := bal.Outside.Add(bal.Super)
			if total.LessThan(need) {
				if !depleted {
					depleted = true
					depletedAge = nextAge
				}
				bal.Outside = decimal.Zero
				bal.Super = decimal.Zero
			} else if bal.Outside.GreaterThanOrEqual(need) {
				bal.Outside = bal.Outside.Sub(need)
			} else {
				remainder := need.Sub(bal.Outside)
				bal.Outside = decimal.Zero
				bal.Super = bal.Super.Sub(remainder)
			}
		}

		growth := one.Add(h.RealReturn)
		bal.Outside = bal.Outside.Mul(growth)
		bal.Super = bal.Super.Mul(growth)

		path = append(path, pointOf(nextAge, bal, phase))
	}
	return bal, path, depleted, depletedAge
}

func pointOf(age int, bal domain.Balances, phase domain.Phase) domain.PathPoint {
	return domain.PathPoint{Age: age, Outside: bal.Outside, Super: bal.Super, Total: bal.Total(), Phase: phase}
}
