package transaction

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

// Transaction represents a transactions row.
type Transaction struct {
	ID          uuid.UUID                  `db:"id"`
	PropertyID  uuid.UUID                  `db:"property_id"`
	CreditID    *uuid.UUID                 `db:"credit_id"`
	Date        time.Time                  `db:"date"`
	Type        domain.TransactionType     `db:"type"`
	Category    domain.TransactionCategory `db:"category"`
	Amount      decimal.Decimal            `db:"amount"`
	Description *string                    `db:"description"`
	Recurring   bool                       `db:"recurring"`
	CreatedAt   time.Time                  `db:"created_at"`
	UpdatedAt   time.Time                  `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	ID          uuid.UUID
	PropertyID  uuid.UUID
	CreditID    *uuid.UUID
	Date        time.Time
	Type        domain.TransactionType
	Category    domain.TransactionCategory
	Amount      decimal.Decimal
	Description *string
	Recurring   bool
}

// TransactionUpdate holds the columns to change. The owning property never changes.
type TransactionUpdate struct {
	CreditID    omitnull.Val[uuid.UUID]
	Date        omit.Val[time.Time]
	Type        omit.Val[domain.TransactionType]
	Category    omit.Val[domain.TransactionCategory]
	Amount      omit.Val[decimal.Decimal]
	Description omitnull.Val[string]
	Recurring   omit.Val[bool]
}

// TransactionFilter specifies filters for listing transactions. DateFrom and DateTo are inclusive.
type TransactionFilter struct {
	PropertyID *uuid.UUID
	CreditID   *uuid.UUID
	Type       *domain.TransactionType
	Category   *domain.TransactionCategory
	DateFrom   *time.Time
	DateTo     *time.Time
	Page       sqlconfig.Page
}

// ITransactionReader defines the read operations on the transactions table.
type ITransactionReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
	CountByCredit(ctx context.Context, creditID uuid.UUID) (int64, error)
	SumByType(ctx context.Context, propertyID uuid.UUID, transactionType domain.TransactionType) (decimal.Decimal, error)
	SumCreditPayments(ctx context.Context, propertyID uuid.UUID) (decimal.Decimal, error)
	SumByCredit(ctx context.Context, creditIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
}

// ITransactionWriter defines the operations available inside a write transaction.
type ITransactionWriter interface {
	ITransactionReader
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

var columns = []any{
	"id", "property_id", "credit_id", "date", "type", "category", "amount",
	"description", "recurring", "created_at", "updated_at",
}

type creditPayments struct {
	CreditID uuid.UUID       `db:"credit_id"`
	Paid     decimal.Decimal `db:"paid"`
}
