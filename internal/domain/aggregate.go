package domain

import (
	"github.com/shopspring/decimal"
)

// CreditBalance is what remains of a credit after the payments recorded against it.
func CreditBalance(originalAmount, paid decimal.Decimal) decimal.Decimal {
	return originalAmount.Sub(paid)
}

// PropertyTotals are the raw sums a property summary is derived from.
type PropertyTotals struct {
	Income          decimal.Decimal
	Expenses        decimal.Decimal
	CreditPrincipal decimal.Decimal
	CreditPayments  decimal.Decimal
	DocumentCount   int64
}

type PropertySummary struct {
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	Balance            decimal.Decimal
	TotalCreditBalance decimal.Decimal
	DocumentCount      int64
}

func Summarize(t PropertyTotals) PropertySummary {
	return PropertySummary{
		TotalIncome:        t.Income,
		TotalExpenses:      t.Expenses,
		Balance:            t.Income.Sub(t.Expenses),
		TotalCreditBalance: t.CreditPrincipal.Sub(t.CreditPayments),
		DocumentCount:      t.DocumentCount,
	}
}
