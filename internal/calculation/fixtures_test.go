package calculation

import (
	"github.com/jtor014/aussie-fire-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// couplesBaseHousehold builds the S1 scenario: a 30-year-old couple with
// combined balances, retiring with a bridge period before preservation
// age 60 and a declining spending schedule in later retirement.
func couplesBaseHousehold() *domain.Household {
	return &domain.Household{
		CurrentAge:      30,
		PreserveAge:     60,
		LifeExp:         90,
		Outside0:        decimal.NewFromInt(100000),
		Super0:          decimal.NewFromInt(200000),
		AnnualSavings:   decimal.NewFromInt(50000),
		EmployerSGGross: decimal.NewFromInt(26400),
		RealReturn:      decimal.NewFromFloat(0.059),
		Bequest:         decimal.Zero,
		Bands: []domain.SpendingBand{
			{EndAgeIncl: 60, Multiplier: decimal.NewFromFloat(1.10)},
			{EndAgeIncl: 75, Multiplier: decimal.NewFromFloat(1.00)},
			{EndAgeIncl: 200, Multiplier: decimal.NewFromFloat(0.85)},
		},
	}
}

func singleHighIncomeHousehold() *domain.Household {
	return &domain.Household{
		CurrentAge:      35,
		PreserveAge:     60,
		LifeExp:         90,
		Outside0:        decimal.NewFromInt(200000),
		Super0:          decimal.NewFromInt(150000),
		AnnualSavings:   decimal.NewFromInt(60000),
		EmployerSGGross: decimal.NewFromInt(20700), // 180,000 * 11.5%
		RealReturn:      decimal.NewFromFloat(0.059),
		Bequest:         decimal.Zero,
		Bands: []domain.SpendingBand{
			{EndAgeIncl: 200, Multiplier: decimal.NewFromFloat(1.0)},
		},
	}
}
