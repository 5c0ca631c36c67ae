package calculation

import (
	"fmt"

	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// defaultGridPoints, defaultRefineIters and defaultWindow are spec.md
// §4.E1's tuning defaults, applied whenever SplitOpts leaves them zero.
// The grid evaluates GridPoints+1 alphas, so the default is 21 points.
const (
	defaultGridPoints  = 20
	defaultRefineIters = 2
)

var defaultWindow = decimal.NewFromFloat(0.15)

func normalizeOpts(o domain.SplitOpts) domain.SplitOpts {
	if o.GridPoints <= 0 {
		o.GridPoints = defaultGridPoints
	}
	if o.RefineIters <= 0 {
		o.RefineIters = defaultRefineIters
	}
	if o.Window.IsZero() {
		o.Window = defaultWindow
	}
	return o
}

func normalizeMaxPct(p domain.SplitPolicy) decimal.Decimal {
	if p.MaxPct.IsZero() {
		return decimal.NewFromInt(1)
	}
	return p.MaxPct
}

// splitEval is one evaluated alpha (share of savings to super) and its
// outcome, keyed in the memoization cache by round(alpha, 4).
type splitEval struct {
	age   *int
	sBase decimal.Decimal
}

// splitWithAlpha returns a household clone with a PreFireSavingsSplit at
// the given alpha, policy applied.
func splitWithAlpha(h *domain.Household, alpha decimal.Decimal, p domain.SplitPolicy) *domain.Household {
	h2 := h.Clone()
	h2.Split = &domain.PreFireSavingsSplit{
		ToSuperPct:     alpha,
		CapPerPerson:   p.CapPerPerson,
		EligiblePeople: p.EligiblePeople,
		ContribTaxRate: p.ContribTaxRate,
		OutsideTaxRate: p.OutsideTaxRate,
		Mode:           p.Mode,
	}
	return h2
}

// memo is a request-scoped evaluation cache, never shared across calls
// (spec.md §5, §9: "must not share mutable memo caches").
type memo map[string]splitEval

func memoKey(alpha decimal.Decimal) string {
	return alpha.Round(4).String()
}

// OptimizeSavingsSplit is the generic savings-split optimizer of spec.md
// §4.E1: minimize earliest retirement age over alpha in [0, maxPct] via a
// coarse grid plus ternary-search local refinement, grounded on the
// teacher's SensitivityParameter sweep shape (now domain.SensitivityPoint)
// for the reported band and on breakeven.go's bisection idiom for the
// refinement step.
func (ce *CalculationEngine) OptimizeSavingsSplit(h *domain.Household, policy domain.SplitPolicy, opts domain.SplitOpts) domain.SplitResult {
	opts = normalizeOpts(opts)
	maxPct := normalizeMaxPct(policy)
	cache := memo{}
	evaluations := 0

	eval := func(alpha decimal.Decimal) splitEval {
		key := memoKey(alpha)
		if e, ok := cache[key]; ok {
			return e
		}
		evaluations++
		h2 := splitWithAlpha(h, alpha, policy)
		v := ce.FindEarliestViable(h2)
		e := splitEval{age: v.Age, sBase: v.SBase}
		cache[key] = e
		return e
	}

	better := func(a, b splitEval) bool {
		return ageLess(a.age, b.age)
	}

	bestAlpha := decimal.Zero
	best := eval(bestAlpha)
	step := maxPct.Div(decimal.NewFromInt(int64(opts.GridPoints)))
	for i := 1; i <= opts.GridPoints; i++ {
		alpha := step.Mul(decimal.NewFromInt(int64(i)))
		if alpha.GreaterThan(maxPct) {
			alpha = maxPct
		}
		e := eval(alpha)
		if better(e, best) {
			best, bestAlpha = e, alpha
		}
	}

	bestAlpha = ce.ternaryRefine(bestAlpha, maxPct, opts, eval, better, &best)

	sensitivity := ce.sensitivityBand(bestAlpha, maxPct, eval)
	constraints := capConstraints(h, policy, bestAlpha)

	return domain.SplitResult{
		RecommendedPct: bestAlpha,
		EarliestAge:    best.age,
		DWZSpend:       best.sBase,
		Sensitivity:    sensitivity,
		Constraints:    constraints,
		Evaluations:    evaluations,
		Explanation:    explainSplit(h, bestAlpha, best.age, constraints),
	}
}

// ternaryRefine narrows a window around bestAlpha via ternary search,
// assuming (per spec.md §4.E1) the objective is unimodal enough nearby for
// this to help; the caller's grid already bounds the error when it isn't.
func (ce *CalculationEngine) ternaryRefine(bestAlpha, maxPct decimal.Decimal, opts domain.SplitOpts, eval func(decimal.Decimal) splitEval, better func(a, b splitEval) bool, best *splitEval) decimal.Decimal {
	lo := clamp(bestAlpha.Sub(opts.Window), decimal.Zero, maxPct)
	hi := clamp(bestAlpha.Add(opts.Window), decimal.Zero, maxPct)

	for i := 0; i < opts.RefineIters; i++ {
		third := hi.Sub(lo).Div(decimal.NewFromInt(3))
		m1 := lo.Add(third)
		m2 := hi.Sub(third)
		e1 := eval(m1)
		e2 := eval(m2)
		if better(e1, e2) {
			hi = m2
		} else {
			lo = m1
		}
		if better(e1, *best) {
			*best, bestAlpha = e1, m1
		}
		if better(e2, *best) {
			*best, bestAlpha = e2, m2
		}
	}
	return bestAlpha
}

// sensitivityBand evaluates five alpha values clustered around the
// optimum, clamped to [0, maxPct] and padded by midpoint insertion if
// clamping collapses points (spec.md §4.E1 step 4).
func (ce *CalculationEngine) sensitivityBand(bestAlpha, maxPct decimal.Decimal, eval func(decimal.Decimal) splitEval) []domain.SensitivityPoint {
	offsets := []decimal.Decimal{
		decimal.NewFromFloat(-0.10),
		decimal.NewFromFloat(-0.05),
		decimal.Zero,
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(0.10),
	}
	seen := map[string]bool{}
	var pcts []decimal.Decimal
	for _, off := range offsets {
		p := clamp(bestAlpha.Add(off), decimal.Zero, maxPct)
		key := memoKey(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		pcts = append(pcts, p)
	}
	for len(pcts) < 5 && len(pcts) >= 2 {
		a, b := pcts[0], pcts[len(pcts)-1]
		mid := a.Add(b).Div(decimal.NewFromInt(2))
		key := memoKey(mid)
		if seen[key] {
			break
		}
		seen[key] = true
		pcts = append(pcts, mid)
	}

	points := make([]domain.SensitivityPoint, 0, len(pcts))
	for _, p := range pcts {
		e := eval(p)
		points = append(points, domain.SensitivityPoint{Pct: p, EarliestAge: e.age, SBase: e.sBase})
	}
	return points
}

func capConstraints(h *domain.Household, policy domain.SplitPolicy, alpha decimal.Decimal) domain.SplitConstraints {
	effectiveCap := policy.CapPerPerson.Mul(decimal.NewFromInt(int64(policy.EligiblePeople))).Sub(h.EmployerSGGross)
	superDirected := h.AnnualSavings.Mul(alpha)
	return domain.SplitConstraints{
		EffectiveCapPerPerson: effectiveCap,
		CapBinding:            superDirected.GreaterThan(effectiveCap),
	}
}

func explainSplit(h *domain.Household, alpha decimal.Decimal, age *int, c domain.SplitConstraints) string {
	switch {
	case c.CapBinding && age != nil:
		return fmt.Sprintf("Maxed salary-sacrifice to cap without delaying retirement (age %d).", *age)
	case alpha.IsZero() && age != nil:
		return "Bridge binding: allocated savings outside; no super without delaying retirement."
	case age != nil:
		pct := alpha.Mul(decimal.NewFromInt(100))
		return fmt.Sprintf("Optimal split %s%%→super achieves earliest age %d.", pct.StringFixed(1), *age)
	default:
		return "No viable retirement age found for any split percentage."
	}
}

// ageLess reports whether a is a strictly better (earlier, or present
// where b is absent) earliest age than b. Infeasible (nil) ages sort last.
func ageLess(a, b *int) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}
