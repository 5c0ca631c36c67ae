package domain

import "github.com/shopspring/decimal"

// TaxBracket is one progressive-tax-bracket row of a jurisdiction's rate
// table, mirroring the teacher's federal TaxBracket shape (Min/Max/Rate)
// but keyed the way the external rate-table contract (spec.md §6) presents
// it: an upper threshold and the rate applying up to it.
type TaxBracket struct {
	// UpTo is the top of this bracket; nil means "and above".
	UpTo *decimal.Decimal `yaml:"up_to,omitempty" json:"upTo,omitempty"`
	Rate decimal.Decimal  `yaml:"rate" json:"rate"`
}

// RateTable is the jurisdiction-specific rate table the engine consumes as
// plain data — it never derives these numbers itself (spec.md §1, §6).
type RateTable struct {
	FinancialYear      string          `yaml:"financial_year" json:"financialYear"`
	ConcessionalCap    decimal.Decimal `yaml:"concessional_cap" json:"concessionalCap"`
	SuperGuaranteeRate decimal.Decimal `yaml:"super_guarantee_rate" json:"superGuaranteeRate"`
	TaxBrackets        []TaxBracket    `yaml:"tax_brackets" json:"taxBrackets"`
}

// MarginalRate walks the bracket table, teacher-style (taxes.go's
// CalculateFederalTax bracket loop), to find the rate applying to the last
// dollar of the given taxable income. It is a convenience for hosts that
// only have raw income and want an MTR to pass into
// allocateConcessionalByMTR; the engine's own operations never call it.
func (rt RateTable) MarginalRate(taxableIncome decimal.Decimal) decimal.Decimal {
	for _, b := range rt.TaxBrackets {
		if b.UpTo == nil || taxableIncome.LessThanOrEqual(*b.UpTo) {
			return b.Rate
		}
	}
	if len(rt.TaxBrackets) > 0 {
		return rt.TaxBrackets[len(rt.TaxBrackets)-1].Rate
	}
	return decimal.Zero
}
