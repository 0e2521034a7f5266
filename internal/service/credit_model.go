package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/storage/credit"
)

// Credit represents a credit in the service layer. CurrentBalance is derived from the linked payments.
type Credit struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	Name           string
	OriginalAmount decimal.Decimal
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
	StartDate      time.Time
	EndDate        *time.Time
	CurrentBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type NewCredit struct {
	PropertyID     uuid.UUID
	Name           string
	OriginalAmount decimal.Decimal
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
	StartDate      time.Time
	EndDate        *time.Time
}

type CreditChanges = credit.CreditUpdate

func creditFromStorage(row *credit.Credit, paid decimal.Decimal) Credit {
	return Credit{
		ID:             row.ID,
		PropertyID:     row.PropertyID,
		Name:           row.Name,
		OriginalAmount: row.OriginalAmount,
		InterestRate:   row.InterestRate,
		MonthlyPayment: row.MonthlyPayment,
		StartDate:      row.StartDate,
		EndDate:        row.EndDate,
		CurrentBalance: domain.CreditBalance(row.OriginalAmount, paid),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
