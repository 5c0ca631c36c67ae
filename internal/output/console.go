// Package output renders engine results for the CLI driver. It is
// deliberately thin - the full UI layer is out of scope (spec.md §1) - but
// a human-readable rendering of the five operations' results is ambient
// CLI tooling, modeled section-by-section on the teacher's
// console_verbose_formatter.go.
package output

import (
	"fmt"
	"io"

	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// WriteDecision renders a compute-decision result.
func WriteDecision(w io.Writer, r domain.DecisionResult) {
	fmt.Fprintf(w, "Sustainable annual spend: $%s\n", r.SustainableAnnual.StringFixed(2))
	fmt.Fprintf(w, "Earliest age (theoretical): %s\n", ageString(r.Earliest.Theoretical))
	fmt.Fprintf(w, "Earliest age (viable):      %s\n", ageString(r.Earliest.Viable))
	fmt.Fprintf(w, "Bridge: %s (years=%d, need=$%s, have=$%s)\n",
		r.Bridge.Status, r.Bridge.Years, r.Bridge.Need.StringFixed(2), r.Bridge.Have.StringFixed(2))
	if r.Depleted {
		fmt.Fprintln(w, "WARNING: plan depletes before life expectancy")
	}
	if r.RecommendedSplit != nil {
		fmt.Fprintf(w, "Recommended split: %s%% to super\n", r.RecommendedSplit.ToSuperPct.Mul(hundred).StringFixed(1))
		for _, p := range r.RecommendedSplit.PerPerson {
			fmt.Fprintf(w, "  %s: $%s\n", p.ID, p.SSGross.StringFixed(2))
		}
	}
	fmt.Fprintf(w, "Path: %d points (age %d .. %d)\n", len(r.Path), firstAge(r.Path), lastAge(r.Path))
}

// WriteSplitResult renders an optimize-savings-split /
// optimize-split-for-plan result.
func WriteSplitResult(w io.Writer, r domain.SplitResult) {
	fmt.Fprintf(w, "Recommended split: %s%% to super\n", r.RecommendedPct.Mul(hundred).StringFixed(1))
	fmt.Fprintf(w, "Earliest age: %s, sustainable spend: $%s\n", ageString(r.EarliestAge), r.DWZSpend.StringFixed(2))
	fmt.Fprintf(w, "Cap binding: %v (effective cap $%s)\n", r.Constraints.CapBinding, r.Constraints.EffectiveCapPerPerson.StringFixed(2))
	fmt.Fprintf(w, "Evaluations: %d\n", r.Evaluations)
	fmt.Fprintln(w, r.Explanation)
	fmt.Fprintln(w, "Sensitivity:")
	for _, s := range r.Sensitivity {
		fmt.Fprintf(w, "  %s%% -> age %s, spend $%s\n", s.Pct.Mul(hundred).StringFixed(1), ageString(s.EarliestAge), s.SBase.StringFixed(2))
	}
}

// WritePlanResult renders an earliest-age-for-plan result.
func WritePlanResult(w io.Writer, r domain.PlanResult) {
	fmt.Fprintf(w, "Earliest age: %s (evaluations: %d)\n", ageString(r.EarliestAge), r.Evaluations)
	if r.EarliestAge != nil {
		fmt.Fprintf(w, "Spend at that age: $%s\n", r.AtAgeSpend.StringFixed(2))
	}
}

// WriteAllocation renders an allocate-concessional-by-mtr result.
func WriteAllocation(w io.Writer, r domain.AllocationResult) {
	fmt.Fprintf(w, "Total allocated: $%s\n", r.TotalAllocated.StringFixed(2))
	for _, p := range r.PerPerson {
		fmt.Fprintf(w, "  %s: $%s\n", p.ID, p.SSGross.StringFixed(2))
	}
}

func ageString(age *int) string {
	if age == nil {
		return "not achievable"
	}
	return fmt.Sprintf("%d", *age)
}

func firstAge(path []domain.PathPoint) int {
	if len(path) == 0 {
		return 0
	}
	return path[0].Age
}

func lastAge(path []domain.PathPoint) int {
	if len(path) == 0 {
		return 0
	}
	return path[len(path)-1].Age
}
