package domain

import "github.com/shopspring/decimal"

// SplitPolicy carries the concessional-cap policy and search tuning knobs
// shared by both savings-split optimizer entry points (spec.md §4.E).
type SplitPolicy struct {
	CapPerPerson   decimal.Decimal `yaml:"cap_per_person" json:"capPerPerson"`
	EligiblePeople int             `yaml:"eligible_people" json:"eligiblePeople"`
	ContribTaxRate decimal.Decimal `yaml:"contrib_tax_rate" json:"contribTaxRate"`
	OutsideTaxRate decimal.Decimal `yaml:"outside_tax_rate" json:"outsideTaxRate"`
	Mode           SplitMode       `yaml:"mode" json:"mode"`
	MaxPct         decimal.Decimal `yaml:"max_pct" json:"maxPct"`
}

// SplitOpts tunes the optimizer search; zero values fall back to spec
// defaults (applied by calculation.normalizeOpts).
type SplitOpts struct {
	GridPoints  int             `yaml:"grid_points" json:"gridPoints"`
	RefineIters int             `yaml:"refine_iters" json:"refineIters"`
	Window      decimal.Decimal `yaml:"window" json:"window"`
	HiAgeHint   *int            `yaml:"hi_age_hint" json:"hiAgeHint,omitempty"`
}
