// Package calculation implements the Die-With-Zero retirement engine: the
// balance simulator, sustainable-spending solver, bridge assessor,
// earliest-viable-age searches and savings-split optimizer described in
// the household-planning specification. It is a pure, synchronous,
// CPU-bound library — no I/O, no clocks, no randomness.
package calculation

import (
	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Tolerances and iteration caps shared across components (spec.md §4.B,
// §4.D, §4.E).
var (
	sBaseTolerance    = decimal.NewFromInt(1)         // $1 on S
	bequestEpsilon    = decimal.NewFromInt(1)         // $1 on terminal wealth
	bridgeEpsilon     = decimal.NewFromInt(1)         // $1 on bridge PV comparison
	sMaxCeiling       = decimal.NewFromInt(1_000_000) // hard ceiling, $/yr
	maxBisectionIter  = 50
	maxPlanSearchIter = 20
)

// CalculationEngine orchestrates the five operations over a single
// Household snapshot. It carries only a Logger — no other mutable state —
// so concurrent top-level calls on distinct engines never interfere.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates an engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger installs a custom logger; passing nil restores the no-op
// logger rather than leaving the engine without one.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
}

// preservationAgeOrDefault returns h.PreserveAge, defaulting to 60 when
// unset, matching spec.md §3's "typically 60".
func preservationAgeOrDefault(h *domain.Household) int {
	if h.PreserveAge == 0 {
		return 60
	}
	return h.PreserveAge
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
