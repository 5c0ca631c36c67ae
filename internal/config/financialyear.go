package config

import "fmt"

// FinancialYearLabel returns the Australian financial year label
// ("FY2025-26") containing the given calendar (year, month). The
// Australian financial year runs July 1 - June 30, so January-June belong
// to the FY that started the previous July (spec.md §6: "a pure
// (year, month) -> label helper").
func FinancialYearLabel(year, month int) string {
	startYear := year
	if month < 7 {
		startYear--
	}
	endYY := (startYear + 1) % 100
	return fmt.Sprintf("FY%d-%02d", startYear, endYY)
}
