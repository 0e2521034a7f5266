package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	CreditID    *uuid.UUID
	Date        time.Time
	Type        domain.TransactionType
	Category    domain.TransactionCategory
	Amount      decimal.Decimal
	Description *string
	Recurring   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewTransaction struct {
	PropertyID  uuid.UUID
	CreditID    *uuid.UUID
	Date        time.Time
	Type        domain.TransactionType
	Category    domain.TransactionCategory
	Amount      decimal.Decimal
	Description *string
	Recurring   bool
}

type TransactionChanges = transaction.TransactionUpdate

// TransactionQuery filters a transaction list. Zero values do not filter.
type TransactionQuery struct {
	PropertyID *uuid.UUID
	CreditID   *uuid.UUID
	Type       *domain.TransactionType
	Category   *domain.TransactionCategory
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       sqlconfig.Page
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		PropertyID:  row.PropertyID,
		CreditID:    row.CreditID,
		Date:        row.Date,
		Type:        row.Type,
		Category:    row.Category,
		Amount:      row.Amount,
		Description: row.Description,
		Recurring:   row.Recurring,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func transactionsFromStorage(rows []*transaction.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row)
	}
	return converted
}
