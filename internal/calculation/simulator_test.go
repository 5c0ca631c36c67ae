package calculation

import (
	"testing"

	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulateUntilStartsAtCurrentAge(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()

	bal, path := ce.AccumulateUntil(h, h.CurrentAge+5)

	require.NotEmpty(t, path)
	assert.Equal(t, h.CurrentAge, path[0].Age)
	assert.Equal(t, h.CurrentAge+5, path[len(path)-1].Age)
	assert.True(t, bal.Total().GreaterThan(h.Outside0.Add(h.Super0)), "balances should have grown over 5 years of savings and returns")
}

func TestAccumulateUntilPathHasNoDuplicateAges(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()

	_, path := ce.AccumulateUntil(h, h.CurrentAge+10)

	seen := map[int]bool{}
	for _, p := range path {
		assert.False(t, seen[p.Age], "age %d appears twice in path", p.Age)
		seen[p.Age] = true
	}
}

func TestYearContributionNoSplitGoesFullyOutside(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()
	h.Split = nil

	toOutside, toSuper := ce.yearContribution(h)
	assert.True(t, toOutside.Equal(h.AnnualSavings))
	assert.True(t, toSuper.IsZero())
}

func TestYearContributionNetFixedGrossesUpSuperShare(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()
	h.AnnualSavings = decimal.NewFromInt(10000)
	h.EmployerSGGross = decimal.Zero
	h.Split = &domain.PreFireSavingsSplit{
		ToSuperPct:     decimal.NewFromFloat(0.5),
		CapPerPerson:   decimal.NewFromInt(27500),
		EligiblePeople: 2,
		ContribTaxRate: decimal.NewFromFloat(0.15),
		Mode:           domain.SplitModeNetFixed,
	}

	toOutside, toSuper := ce.yearContribution(h)

	// net share to super is 5,000; grossed up at 15% tax is 5,000/0.85.
	wantGross := decimal.NewFromInt(5000).Div(decimal.NewFromFloat(0.85))
	wantSuperLanding := wantGross.Mul(decimal.NewFromFloat(0.85))
	assert.True(t, toSuper.Equal(wantSuperLanding), "want %s got %s", wantSuperLanding, toSuper)
	assert.True(t, toOutside.Equal(h.AnnualSavings.Sub(wantSuperLanding)), "outside landing must equal savings minus whatever actually landed in super")
}

func TestYearContributionGrossDeferralSpillsOverflowToOutside(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()
	h.AnnualSavings = decimal.NewFromInt(60000)
	h.EmployerSGGross = decimal.Zero
	h.Split = &domain.PreFireSavingsSplit{
		ToSuperPct:     decimal.NewFromFloat(1), // try to direct everything to super
		CapPerPerson:   decimal.NewFromInt(27500),
		EligiblePeople: 1, // total headroom 27,500, well under AnnualSavings
		ContribTaxRate: decimal.NewFromFloat(0.15),
		Mode:           domain.SplitModeGrossDeferral,
	}

	toOutside, toSuper := ce.yearContribution(h)

	wantSuperLanding := decimal.NewFromInt(27500).Mul(decimal.NewFromFloat(0.85))
	assert.True(t, toSuper.Equal(wantSuperLanding), "super share must clamp at headroom: want %s got %s", wantSuperLanding, toSuper)
	assert.True(t, toOutside.GreaterThan(decimal.Zero), "the overflow above the cap must spill to outside")
}

func TestRollToLifeExpDepletionClampsAndRecordsFirstAge(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()

	bal := domain.Balances{Outside: decimal.NewFromInt(1000), Super: decimal.Zero}
	finalBal, path, depleted, depletedAge := ce.RollToLifeExp(h, bal, 59, 65, 60, decimal.NewFromInt(100000))

	require.True(t, depleted)
	assert.Greater(t, depletedAge, 0)
	assert.True(t, finalBal.Outside.IsZero() || finalBal.Super.IsZero())
	assert.NotEmpty(t, path)
}

func TestRollToLifeExpBridgePeriodDrawsOutsideOnly(t *testing.T) {
	ce := NewCalculationEngine()
	h := couplesBaseHousehold()

	bal := domain.Balances{Outside: decimal.NewFromInt(500000), Super: decimal.NewFromInt(500000)}
	_, path, depleted, _ := ce.RollToLifeExp(h, bal, 49, 55, 60, decimal.NewFromInt(10000))

	require.False(t, depleted)
	require.True(t, len(path) >= 2)
	for i, p := range path {
		assert.Equal(t, domain.PhaseBridge, p.Phase)
		if i > 0 {
			// super balance should only grow (never drawn down) during the bridge.
			assert.True(t, p.Super.GreaterThanOrEqual(path[i-1].Super), "super must not decrease during bridge period")
		}
	}
}
