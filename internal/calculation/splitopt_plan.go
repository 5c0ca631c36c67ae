package calculation

import (
	"fmt"

	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// OptimizeSavingsSplitForPlan is the plan-first savings-split optimizer of
// spec.md §4.E2: minimize earliest retirement age subject to S(R) >= plan,
// tie-breaking toward the larger alpha (more tax-advantaged accumulation)
// when two alphas achieve the same best age. bestAgeHint tightens the
// upper bound passed to each findEarliestAgeForPlan call as better
// candidates are found, the way a monotonic best-age improves across a
// sweep.
func (ce *CalculationEngine) OptimizeSavingsSplitForPlan(h *domain.Household, plan decimal.Decimal, policy domain.SplitPolicy, opts domain.SplitOpts) domain.SplitResult {
	opts = normalizeOpts(opts)
	maxPct := normalizeMaxPct(policy)
	cache := memo{}
	evaluations := 0
	var bestAgeHint *int
	if opts.HiAgeHint != nil {
		hint := *opts.HiAgeHint
		bestAgeHint = &hint
	}

	eval := func(alpha decimal.Decimal) splitEval {
		key := memoKey(alpha)
		if e, ok := cache[key]; ok {
			return e
		}
		evaluations++
		h2 := splitWithAlpha(h, alpha, policy)
		pr := ce.FindEarliestAgeForPlan(h2, plan, bestAgeHint)
		e := splitEval{age: pr.EarliestAge, sBase: pr.AtAgeSpend}
		if e.age != nil && (bestAgeHint == nil || *e.age < *bestAgeHint) {
			age := *e.age
			bestAgeHint = &age
		}
		cache[key] = e
		return e
	}

	// better, for the plan-first variant, prefers an earlier age; among
	// equal ages it prefers the LARGER alpha (spec.md §4.E2's tie-break).
	// candidate pairs each evaluation with its own alpha so better can
	// compare it against the incumbent's.
	type candidate struct {
		alpha decimal.Decimal
		eval  splitEval
	}
	better := func(a, b candidate) bool {
		if ageLess(a.eval.age, b.eval.age) {
			return true
		}
		if ageLess(b.eval.age, a.eval.age) {
			return false
		}
		if a.eval.age == nil {
			return false
		}
		return a.alpha.GreaterThan(b.alpha)
	}

	best := candidate{alpha: decimal.Zero, eval: eval(decimal.Zero)}
	step := maxPct.Div(decimal.NewFromInt(int64(opts.GridPoints)))
	for i := 1; i <= opts.GridPoints; i++ {
		alpha := step.Mul(decimal.NewFromInt(int64(i)))
		if alpha.GreaterThan(maxPct) {
			alpha = maxPct
		}
		c := candidate{alpha: alpha, eval: eval(alpha)}
		if better(c, best) {
			best = c
		}
	}

	lo := clamp(best.alpha.Sub(opts.Window), decimal.Zero, maxPct)
	hi := clamp(best.alpha.Add(opts.Window), decimal.Zero, maxPct)
	for i := 0; i < opts.RefineIters; i++ {
		third := hi.Sub(lo).Div(decimal.NewFromInt(3))
		m1 := lo.Add(third)
		m2 := hi.Sub(third)
		c1 := candidate{alpha: m1, eval: eval(m1)}
		c2 := candidate{alpha: m2, eval: eval(m2)}
		if better(c1, c2) {
			hi = m2
		} else {
			lo = m1
		}
		if better(c1, best) {
			best = c1
		}
		if better(c2, best) {
			best = c2
		}
	}

	sensEval := func(alpha decimal.Decimal) splitEval { return eval(alpha) }
	sensitivity := ce.sensitivityBand(best.alpha, maxPct, sensEval)
	constraints := capConstraints(h, policy, best.alpha)

	return domain.SplitResult{
		RecommendedPct: best.alpha,
		EarliestAge:    best.eval.age,
		DWZSpend:       best.eval.sBase,
		Sensitivity:    sensitivity,
		Constraints:    constraints,
		Evaluations:    evaluations,
		Explanation:    explainSplitForPlan(best.alpha, best.eval.age, constraints),
	}
}

func explainSplitForPlan(alpha decimal.Decimal, age *int, c domain.SplitConstraints) string {
	switch {
	case age == nil:
		return "Plan not achievable under current assumptions for any split percentage."
	case c.CapBinding:
		return fmt.Sprintf("Maxed salary-sacrifice to cap without delaying retirement (age %d).", *age)
	case alpha.IsZero():
		return "Bridge binding: allocated savings outside; no super without delaying retirement."
	default:
		pct := alpha.Mul(decimal.NewFromInt(100))
		return fmt.Sprintf("Optimal split %s%%→super achieves earliest age %d.", pct.StringFixed(1), *age)
	}
}
