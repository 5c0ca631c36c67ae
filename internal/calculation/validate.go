package calculation

import (
	"github.com/go-playground/validator/v10"
	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// structValidate is a single shared validator instance, the way ferex_cli
// keeps one *validator.Validate for its config package rather than
// constructing one per call.
var structValidate = validator.New()

// ValidateHousehold fails fast on the "Input invalid" cases spec.md §7
// names explicitly: negative balances, non-monotonic bands, life
// expectancy not after current age, and non-positive multipliers. Every
// violation is collected, not just the first, so a caller sees the whole
// picture in one round trip.
func ValidateHousehold(h *domain.Household) error {
	var errs domain.ValidationErrors

	if h.CurrentAge < 0 {
		errs.Add("currentAge", "must be non-negative")
	}
	if h.LifeExp <= h.CurrentAge {
		errs.Add("lifeExp", "must be greater than currentAge")
	}
	if h.Outside0.LessThan(decimal.Zero) {
		errs.Add("outside0", "must be non-negative")
	}
	if h.Super0.LessThan(decimal.Zero) {
		errs.Add("super0", "must be non-negative")
	}
	if h.AnnualSavings.LessThan(decimal.Zero) {
		errs.Add("annualSavings", "must be non-negative")
	}
	if h.EmployerSGGross.LessThan(decimal.Zero) {
		errs.Add("employerSGGross", "must be non-negative")
	}
	if h.Bequest.LessThan(decimal.Zero) {
		errs.Add("bequest", "must be non-negative")
	}

	validateBands(h.Bands, h.LifeExp, &errs)

	if h.Split != nil {
		switch h.Split.Mode {
		case domain.SplitModeNetFixed, domain.SplitModeGrossDeferral, "":
		default:
			errs.Add("preFireSavingsSplit.mode", "must be netFixed or grossDeferral")
		}
		if h.Split.ToSuperPct.LessThan(decimal.Zero) || h.Split.ToSuperPct.GreaterThan(decimal.NewFromInt(1)) {
			errs.Add("preFireSavingsSplit.toSuperPct", "must be within [0,1]")
		}
	}

	return errs.Err()
}

func validateBands(bands []domain.SpendingBand, lifeExp int, errs *domain.ValidationErrors) {
	if len(bands) == 0 {
		errs.Add("bands", "must cover the horizon")
		return
	}
	prevEnd := -1
	for _, b := range bands {
		if b.EndAgeIncl <= prevEnd {
			errs.Add("bands", "endAgeIncl must be strictly increasing")
		}
		prevEnd = b.EndAgeIncl
		if b.Multiplier.LessThanOrEqual(decimal.Zero) {
			errs.Add("bands", "multiplier must be positive")
		}
	}
	if bands[len(bands)-1].EndAgeIncl < lifeExp {
		errs.Add("bands", "last band must cover lifeExp")
	}
}

// ValidateRequest runs declarative struct-tag validation (required
// fields) via validator/v10, the way ferex_cli wires validator against its
// config models, before the semantic ValidateHousehold checks run.
func ValidateRequest(req any) error {
	if err := structValidate.Struct(req); err != nil {
		return err
	}
	return nil
}
