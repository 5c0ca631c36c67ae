package calculation

import (
	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// SustainableSpend is the result of solveSBaseForAge: the sustainable base
// spend at retirement age R, the retirement-phase path it implies, and
// whether that path depletes before reaching lifeExp.
type SustainableSpend struct {
	SBase           decimal.Decimal
	PathRetire      []domain.PathPoint
	BalancesAtR     domain.Balances
	TerminalBalance domain.Balances
	Depleted        bool
	DepletedAge     int
}

// SolveSBaseForAge finds, by monotone bisection, the base spend S such
// that terminal wealth at h.LifeExp equals h.Bequest (spec.md §4.B). It
// stops once terminal wealth is within $1 of the bequest or the bracket on
// S is narrower than $1, so the returned S's terminal wealth can differ
// from the bequest by more than $1. Terminal wealth is strictly (weakly, once depletion clamps in)
// decreasing in S, so bisection is well-founded.
func (ce *CalculationEngine) SolveSBaseForAge(h *domain.Household, retireAge int) SustainableSpend {
	preserveAge := preservationAgeOrDefault(h)
	balancesAtR, _ := ce.AccumulateUntil(h, retireAge-1)

	if retireAge >= h.LifeExp {
		sBase := balancesAtR.Total().Sub(h.Bequest)
		finalBal, path, depleted, depletedAge := ce.RollToLifeExp(h, balancesAtR, retireAge-1, h.LifeExp, preserveAge, sBase)
		return SustainableSpend{
			SBase: sBase, PathRetire: path, BalancesAtR: balancesAtR, TerminalBalance: finalBal,
			Depleted: depleted, DepletedAge: depletedAge,
		}
	}

	terminal := func(s decimal.Decimal) decimal.Decimal {
		finalBal, _, _, _ := ce.RollToLifeExp(h, balancesAtR, retireAge-1, h.LifeExp, preserveAge, s)
		return finalBal.Total()
	}

	if terminal(decimal.Zero).LessThan(h.Bequest) {
		finalBal, path, _, depletedAge := ce.RollToLifeExp(h, balancesAtR, retireAge-1, h.LifeExp, preserveAge, decimal.Zero)
		return SustainableSpend{
			SBase: decimal.Zero, PathRetire: path, BalancesAtR: balancesAtR, TerminalBalance: finalBal,
			Depleted: true, DepletedAge: depletedAge,
		}
	}

	smax := decimal.NewFromInt(1)
	for smax.LessThan(sMaxCeiling) && terminal(smax).GreaterThanOrEqual(h.Bequest) {
		smax = smax.Mul(decimal.NewFromInt(2))
	}
	if smax.GreaterThan(sMaxCeiling) {
		smax = sMaxCeiling
	}

	lo, hi := decimal.Zero, smax
	for i := 0; i < maxBisectionIter && hi.Sub(lo).GreaterThan(sBaseTolerance); i++ {
		mid := lo.Add(hi).Div(decimal.NewFromInt(2))
		t := terminal(mid)
		diff := t.Sub(h.Bequest)
		if diff.Abs().LessThanOrEqual(bequestEpsilon) {
			lo, hi = mid, mid
			break
		}
		if diff.GreaterThan(decimal.Zero) {
			// terminal still above target: spend more
			lo = mid
		} else {
			hi = mid
		}
	}

	sBase := lo.Add(hi).Div(decimal.NewFromInt(2))
	finalBal, path, depleted, depletedAge := ce.RollToLifeExp(h, balancesAtR, retireAge-1, h.LifeExp, preserveAge, sBase)
	return SustainableSpend{
		SBase: sBase, PathRetire: path, BalancesAtR: balancesAtR, TerminalBalance: finalBal,
		Depleted: depleted, DepletedAge: depletedAge,
	}
}
