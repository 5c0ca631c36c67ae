package domain

import (
	"github.com/shopspring/decimal"
)

// SplitMode is the closed enum for how a PreFireSavingsSplit interprets
// AnnualSavings.
type SplitMode string

const (
	// SplitModeNetFixed treats AnnualSavings as net take-home being
	// allocated; the super share is grossed up at ContribTaxRate.
	SplitModeNetFixed SplitMode = "netFixed"
	// SplitModeGrossDeferral treats AnnualSavings as pre-tax salary being
	// directed; each share is taxed on entry to its destination account.
	SplitModeGrossDeferral SplitMode = "grossDeferral"
)

// PreFireSavingsSplit describes how AnnualSavings is divided between the
// outside and super accounts before retirement.
type PreFireSavingsSplit struct {
	ToSuperPct      decimal.Decimal `yaml:"to_super_pct" json:"toSuperPct"`
	CapPerPerson    decimal.Decimal `yaml:"cap_per_person" json:"capPerPerson"`
	EligiblePeople  int             `yaml:"eligible_people" json:"eligiblePeople"`
	ContribTaxRate  decimal.Decimal `yaml:"contrib_tax_rate" json:"contribTaxRate"`
	OutsideTaxRate  decimal.Decimal `yaml:"outside_tax_rate" json:"outsideTaxRate"`
	Mode            SplitMode       `yaml:"mode" json:"mode"`
}

// DefaultContribTaxRate is used when a PreFireSavingsSplit omits ContribTaxRate.
var DefaultContribTaxRate = decimal.NewFromFloat(0.15)

// AccountDestination is the closed enum for where a FutureInflow lands.
type AccountDestination string

const (
	DestinationOutside AccountDestination = "outside"
	DestinationSuper   AccountDestination = "super"
)

// FutureInflow is a one-off lump sum landing in the year the household
// reaches AgeYou, before that year's growth is applied.
type FutureInflow struct {
	AgeYou int                `yaml:"age_you" json:"ageYou"`
	Amount decimal.Decimal    `yaml:"amount" json:"amount"`
	To     AccountDestination `yaml:"to" json:"to"`
}

// SpendingBand is one segment of the age-dependent spending multiplier
// schedule. EndAgeIncl is inclusive; the band list must be ordered by
// strictly increasing EndAgeIncl and the final band must cover LifeExp.
type SpendingBand struct {
	EndAgeIncl int             `yaml:"end_age_incl" json:"endAgeIncl"`
	Multiplier decimal.Decimal `yaml:"multiplier" json:"multiplier"`
}

// Household is the normalized, request-scoped snapshot the engine operates
// on. All monetary fields are real (today's) dollars.
type Household struct {
	CurrentAge      int             `yaml:"current_age" json:"currentAge"`
	PreserveAge     int             `yaml:"preserve_age" json:"preserveAge"`
	LifeExp         int             `yaml:"life_exp" json:"lifeExp"`
	Outside0        decimal.Decimal `yaml:"outside0" json:"outside0"`
	Super0          decimal.Decimal `yaml:"super0" json:"super0"`
	AnnualSavings   decimal.Decimal `yaml:"annual_savings" json:"annualSavings"`
	EmployerSGGross decimal.Decimal `yaml:"employer_sg_gross" json:"employerSGGross"`
	RealReturn      decimal.Decimal `yaml:"real_return" json:"realReturn"`
	Bequest         decimal.Decimal `yaml:"bequest" json:"bequest"`

	Bands         []SpendingBand       `yaml:"bands" json:"bands"`
	FutureInflows []FutureInflow       `yaml:"future_inflows" json:"futureInflows"`
	Split         *PreFireSavingsSplit `yaml:"pre_fire_savings_split" json:"preFireSavingsSplit,omitempty"`
}

// Multiplier returns the spending multiplier in effect at age x: the first
// band whose EndAgeIncl is >= x.
func (h *Household) Multiplier(age int) decimal.Decimal {
	for _, b := range h.Bands {
		if age <= b.EndAgeIncl {
			return b.Multiplier
		}
	}
	if len(h.Bands) > 0 {
		return h.Bands[len(h.Bands)-1].Multiplier
	}
	return decimal.NewFromInt(1)
}

// InflowsAt returns, in list order, the future inflows landing when the
// household reaches the given age.
func (h *Household) InflowsAt(age int) []FutureInflow {
	var out []FutureInflow
	for _, f := range h.FutureInflows {
		if f.AgeYou == age {
			out = append(out, f)
		}
	}
	return out
}

// Destination returns the inflow's target account, defaulting to outside
// per spec.md §3.
func (f FutureInflow) Destination() AccountDestination {
	if f.To == "" {
		return DestinationOutside
	}
	return f.To
}

// Clone returns a deep-enough copy of the household for use as scratch
// state inside a single engine call; the Bands and FutureInflows slices are
// never mutated in place, matching the resource policy that inputs are
// immutable.
func (h *Household) Clone() *Household {
	c := *h
	c.Bands = append([]SpendingBand(nil), h.Bands...)
	c.FutureInflows = append([]FutureInflow(nil), h.FutureInflows...)
	if h.Split != nil {
		s := *h.Split
		c.Split = &s
	}
	return &c
}
