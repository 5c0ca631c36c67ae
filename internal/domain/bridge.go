package domain

import "github.com/shopspring/decimal"

// BridgeReport is the single source of truth for bridge-period feasibility:
// can outside wealth at retirement age R fund spending until preservation
// age P?
type BridgeReport struct {
	Years   int             `json:"years"`
	NeedPV  decimal.Decimal `json:"needPV"`
	HavePV  decimal.Decimal `json:"havePV"`
	Covered bool            `json:"covered"`
}
