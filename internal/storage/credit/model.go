package credit

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Credit represents a credits row.
type Credit struct {
	ID             uuid.UUID       `db:"id"`
	PropertyID     uuid.UUID       `db:"property_id"`
	Name           string          `db:"name"`
	OriginalAmount decimal.Decimal `db:"original_amount"`
	InterestRate   decimal.Decimal `db:"interest_rate"`
	MonthlyPayment decimal.Decimal `db:"monthly_payment"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        *time.Time      `db:"end_date"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// CreditCreate is the input for creating a new credit.
type CreditCreate struct {
	ID             uuid.UUID
	PropertyID     uuid.UUID
	Name           string
	OriginalAmount decimal.Decimal
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
	StartDate      time.Time
	EndDate        *time.Time
}

// CreditUpdate holds the columns to change. The owning property never changes.
type CreditUpdate struct {
	Name           omit.Val[string]
	OriginalAmount omit.Val[decimal.Decimal]
	InterestRate   omit.Val[decimal.Decimal]
	MonthlyPayment omit.Val[decimal.Decimal]
	StartDate      omit.Val[time.Time]
	EndDate        omitnull.Val[time.Time]
}

// CreditFilter specifies filters for listing credits.
type CreditFilter struct {
	PropertyID *uuid.UUID
}

// ICreditReader defines the read operations on the credits table.
type ICreditReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Credit, error)
	List(ctx context.Context, filter *CreditFilter) ([]*Credit, error)
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
	SumOriginalAmount(ctx context.Context, propertyID uuid.UUID) (decimal.Decimal, error)
}

// ICreditWriter defines the operations available inside a write transaction.
type ICreditWriter interface {
	ICreditReader
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Credit, error)
	Insert(ctx context.Context, create *CreditCreate) (*Credit, error)
	Update(ctx context.Context, id uuid.UUID, update *CreditUpdate) (*Credit, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

var columns = []any{
	"id", "property_id", "name", "original_amount", "interest_rate", "monthly_payment",
	"start_date", "end_date", "created_at", "updated_at",
}
