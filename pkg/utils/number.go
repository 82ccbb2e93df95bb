package utils

import "github.com/shopspring/decimal"

// RoundMoney arredonda um valor monetário para duas casas, metade para o par
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}
