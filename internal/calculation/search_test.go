package calculation

import (
	"testing"

	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFindEarliestViableCouplesBase is scenario S1 of spec.md §8.
func TestFindEarliestViableCouplesBase(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()

	viable := ce.FindEarliestViable(h)

	require.NotNil(t, viable.Age, "S1 household should find a viable retirement age")
	assert.GreaterOrEqual(t, *viable.Age, 40)
	assert.LessOrEqual(t, *viable.Age, 56)
	assert.True(t, viable.Bridge.Covered)

	terminal := viable.Path[len(viable.Path)-1].Total
	assert.True(t, terminal.Abs().LessThanOrEqual(decimal.NewFromInt(1000)),
		"terminal wealth should land within $1,000 of the zero bequest: got %s", terminal)
}

// TestFindEarliestAgeForPlanFeasible is scenario S2.
func TestFindEarliestAgeForPlanFeasible(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()
	plan := decimal.NewFromInt(65000)

	result := ce.FindEarliestAgeForPlan(h, plan, nil)
	require.NotNil(t, result.EarliestAge, "plan of $65,000 should be achievable for S1")
	assert.True(t, result.AtAgeSpend.GreaterThanOrEqual(plan))

	nextResult := ce.FindEarliestAgeForPlan(h, plan.Add(decimal.NewFromInt(1)), nil)
	require.NotNil(t, nextResult.EarliestAge)
	assert.True(t, *nextResult.EarliestAge == *result.EarliestAge || *nextResult.EarliestAge == *result.EarliestAge+1,
		"a $1 higher plan should need the same or one more year: got %d for plan+$1 vs R=%d", *nextResult.EarliestAge, *result.EarliestAge)
}

// TestFindEarliestAgeForPlanInfeasible is scenario S3.
func TestFindEarliestAgeForPlanInfeasible(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()

	result := ce.FindEarliestAgeForPlan(h, decimal.NewFromInt(500000), nil)
	assert.Nil(t, result.EarliestAge)
}

// TestFindEarliestViableInflowIdempotence verifies invariant 5: adding an
// inflow of zero amount leaves all outputs unchanged.
func TestFindEarliestViableInflowIdempotence(t *testing.T) {
	ce := NewCalculationEngine()
	base := couplesBaseHousehold()
	withZeroInflow := couplesBaseHousehold()
	withZeroInflow.FutureInflows = []domain.FutureInflow{
		{AgeYou: 55, Amount: decimal.Zero, To: domain.DestinationOutside},
	}

	v1 := ce.FindEarliestViable(base)
	v2 := ce.FindEarliestViable(withZeroInflow)

	require.NotNil(t, v1.Age)
	require.NotNil(t, v2.Age)
	assert.Equal(t, *v1.Age, *v2.Age)
	assert.True(t, v1.SBase.Equal(v2.SBase))
}

// TestFindEarliestViableFutureInflowLowersEarliestAge is scenario S5.
func TestFindEarliestViableFutureInflowLowersEarliestAge(t *testing.T) {
	ce := NewCalculationEngine()
	base := couplesBaseHousehold()
	withInflow := couplesBaseHousehold()
	withInflow.FutureInflows = []domain.FutureInflow{
		{AgeYou: 55, Amount: decimal.NewFromInt(600000), To: domain.DestinationOutside},
	}

	baseViable := ce.FindEarliestViable(base)
	inflowViable := ce.FindEarliestViable(withInflow)

	require.NotNil(t, baseViable.Age)
	require.NotNil(t, inflowViable.Age)
	assert.LessOrEqual(t, *inflowViable.Age, *baseViable.Age, "a future cash windfall should never delay retirement")

	// removing the inflow must recover the base scenario exactly.
	withInflow.FutureInflows = nil
	recovered := ce.FindEarliestViable(withInflow)
	assert.Equal(t, *baseViable.Age, *recovered.Age)
}

// TestFindEarliestViableScaleInvariance verifies invariant 8: scaling all
// balances and annualSavings by k leaves earliestAge unchanged and scales
// S by k.
func TestFindEarliestViableScaleInvariance(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()
	k := decimal.NewFromInt(2)

	scaled := couplesBaseHousehold()
	scaled.Outside0 = scaled.Outside0.Mul(k)
	scaled.Super0 = scaled.Super0.Mul(k)
	scaled.AnnualSavings = scaled.AnnualSavings.Mul(k)
	scaled.EmployerSGGross = scaled.EmployerSGGross.Mul(k)
	scaled.Bequest = scaled.Bequest.Mul(k)

	original := ce.FindEarliestViable(h)
	doubled := ce.FindEarliestViable(scaled)

	require.NotNil(t, original.Age)
	require.NotNil(t, doubled.Age)
	assert.Equal(t, *original.Age, *doubled.Age)
	assert.True(t, doubled.SBase.Sub(original.SBase.Mul(k)).Abs().LessThanOrEqual(decimal.NewFromInt(10)),
		"S should scale by k: got %s want ~%s", doubled.SBase, original.SBase.Mul(k))
}

func TestSearchCeilingRespectsHiAgeHint(t *testing.T) {
	h := couplesBaseHousehold()
	hint := 45
	got := searchCeiling(h, &hint)
	assert.Equal(t, hint, got)
}

func TestSearchCeilingCappedByLifeExp(t *testing.T) {
	h := couplesBaseHousehold()
	h.LifeExp = h.CurrentAge + 5
	got := searchCeiling(h, nil)
	assert.Equal(t, h.LifeExp-1, got)
}
