package property

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

// Property represents a properties row.
type Property struct {
	ID            uuid.UUID        `db:"id"`
	Name          string           `db:"name"`
	Address       string           `db:"address"`
	PurchaseDate  *time.Time       `db:"purchase_date"`
	PurchasePrice *decimal.Decimal `db:"purchase_price"`
	Notes         *string          `db:"notes"`
	CreatedAt     time.Time        `db:"created_at"`
	UpdatedAt     time.Time        `db:"updated_at"`
}

// PropertyCreate is the input for creating a new property.
type PropertyCreate struct {
	ID            uuid.UUID
	Name          string
	Address       string
	PurchaseDate  *time.Time
	PurchasePrice *decimal.Decimal
	Notes         *string
}

// PropertyUpdate holds the columns to change. Unset values are left alone.
type PropertyUpdate struct {
	Name          omit.Val[string]
	Address       omit.Val[string]
	PurchaseDate  omitnull.Val[time.Time]
	PurchasePrice omitnull.Val[decimal.Decimal]
	Notes         omitnull.Val[string]
}

// IPropertyReader defines the read operations on the properties table.
type IPropertyReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Property, error)
	List(ctx context.Context, page sqlconfig.Page) ([]*Property, error)
}

// IPropertyWriter defines the operations available inside a write transaction.
type IPropertyWriter interface {
	IPropertyReader
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Property, error)
	Insert(ctx context.Context, create *PropertyCreate) (*Property, error)
	Update(ctx context.Context, id uuid.UUID, update *PropertyUpdate) (*Property, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

var columns = []any{"id", "name", "address", "purchase_date", "purchase_price", "notes", "created_at", "updated_at"}
