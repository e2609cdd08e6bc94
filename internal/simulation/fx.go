package simulation

import "github.com/shopspring/decimal"

// usdToINR is the fixed exchange rate used for display conversion.
var usdToINR = decimal.RequireFromString("83.5")

// ConvertUSDToINR converts a USD amount to INR at the fixed rate.
func ConvertUSDToINR(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(usdToINR)
}

// ConvertINRToUSD converts an INR amount to USD at the fixed rate.
func ConvertINRToUSD(inr decimal.Decimal) decimal.Decimal {
	return inr.DivRound(usdToINR, 8)
}
