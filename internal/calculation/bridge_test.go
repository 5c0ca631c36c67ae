package calculation

import (
	"testing"

	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestComputeBridgePVIdentity verifies invariant 4 of spec.md §8: needPV
// computed by the assessor equals the PV of the retirement schedule over
// [R, P) at realReturn, computed independently here.
func TestComputeBridgePVIdentity(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()
	retireAge := 50
	sBase := decimal.NewFromInt(60000)
	balancesAtR := domain.Balances{Outside: decimal.NewFromInt(300000), Super: decimal.NewFromInt(400000)}

	report := ce.ComputeBridgePV(h, retireAge, sBase, balancesAtR)

	growth := decimal.NewFromInt(1).Add(h.RealReturn)
	var wantNeedPV decimal.Decimal
	for age := retireAge; age < h.PreserveAge; age++ {
		spend := sBase.Mul(h.Multiplier(age))
		discount := growth.Pow(decimal.NewFromInt(int64(age - retireAge)))
		wantNeedPV = wantNeedPV.Add(spend.Div(discount))
	}

	assert.True(t, report.NeedPV.Sub(wantNeedPV).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"needPV mismatch: got %s want %s", report.NeedPV, wantNeedPV)
	assert.Equal(t, h.PreserveAge-retireAge, report.Years)
}

func TestComputeBridgePVCoveredWhenHaveExceedsNeed(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()
	balancesAtR := domain.Balances{Outside: decimal.NewFromInt(10000000), Super: decimal.Zero}

	report := ce.ComputeBridgePV(h, 50, decimal.NewFromInt(50000), balancesAtR)
	assert.True(t, report.Covered)
}

func TestComputeBridgePVShortWhenOutsideInsufficient(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()
	balancesAtR := domain.Balances{Outside: decimal.NewFromInt(1000), Super: decimal.NewFromInt(10000000)}

	report := ce.ComputeBridgePV(h, 50, decimal.NewFromInt(80000), balancesAtR)
	assert.False(t, report.Covered, "super balance must not count toward bridge coverage")
}

func TestComputeBridgePVIncludesOutsideDestinedInflowsBeforePreservation(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()
	h.FutureInflows = []domain.FutureInflow{
		{AgeYou: 55, Amount: decimal.NewFromInt(600000), To: domain.DestinationOutside},
	}
	balancesAtR := domain.Balances{Outside: decimal.NewFromInt(10000), Super: decimal.Zero}

	withInflow := ce.ComputeBridgePV(h, 50, decimal.NewFromInt(40000), balancesAtR)

	h.FutureInflows = nil
	withoutInflow := ce.ComputeBridgePV(h, 50, decimal.NewFromInt(40000), balancesAtR)

	assert.True(t, withInflow.HavePV.GreaterThan(withoutInflow.HavePV))
}
