package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreditBalance(t *testing.T) {
	original := decimal.RequireFromString("1000.00")

	assert.True(t, CreditBalance(original, decimal.Zero).Equal(original))
	assert.Equal(t, "900.00", CreditBalance(original, decimal.RequireFromString("100")).StringFixed(2))
	assert.Equal(t, "-50.00", CreditBalance(original, decimal.RequireFromString("1050")).StringFixed(2))
}

func TestSummarize(t *testing.T) {
	summary := Summarize(PropertyTotals{
		Income:          decimal.RequireFromString("2400.00"),
		Expenses:        decimal.RequireFromString("650.50"),
		CreditPrincipal: decimal.RequireFromString("150000.00"),
		CreditPayments:  decimal.RequireFromString("1200.00"),
		DocumentCount:   4,
	})

	assert.Equal(t, "2400.00", summary.TotalIncome.StringFixed(2))
	assert.Equal(t, "650.50", summary.TotalExpenses.StringFixed(2))
	assert.Equal(t, "1749.50", summary.Balance.StringFixed(2))
	assert.Equal(t, "148800.00", summary.TotalCreditBalance.StringFixed(2))
	assert.Equal(t, int64(4), summary.DocumentCount)
}

func TestSummarize_EmptyPropertyIsZero(t *testing.T) {
	summary := Summarize(PropertyTotals{})

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpenses.IsZero())
	assert.True(t, summary.Balance.IsZero())
	assert.True(t, summary.TotalCreditBalance.IsZero())
	assert.Equal(t, "0.00", summary.Balance.StringFixed(2))
}
