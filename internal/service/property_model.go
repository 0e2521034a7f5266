package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/storage/property"
)

// Property represents a property in the service layer.
type Property struct {
	ID            uuid.UUID
	Name          string
	Address       string
	PurchaseDate  *time.Time
	PurchasePrice *decimal.Decimal
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PropertyDetail is a property together with everything recorded against it.
type PropertyDetail struct {
	Property
	Credits      []Credit
	Transactions []Transaction
	Documents    []Document
}

type PropertySummary struct {
	PropertyID         uuid.UUID
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	Balance            decimal.Decimal
	TotalCreditBalance decimal.Decimal
	DocumentCount      int64
}

type NewProperty struct {
	Name          string
	Address       string
	PurchaseDate  *time.Time
	PurchasePrice *decimal.Decimal
	Notes         *string
}

// PropertyChanges lists the fields to change. Unset fields keep their value.
type PropertyChanges = property.PropertyUpdate

func propertyFromStorage(row *property.Property) Property {
	return Property{
		ID:            row.ID,
		Name:          row.Name,
		Address:       row.Address,
		PurchaseDate:  row.PurchaseDate,
		PurchasePrice: row.PurchasePrice,
		Notes:         row.Notes,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
