package document

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

// Document represents a documents row. Filepath is the location reported by the file store.
type Document struct {
	ID            uuid.UUID               `db:"id"`
	PropertyID    uuid.UUID               `db:"property_id"`
	TransactionID *uuid.UUID              `db:"transaction_id"`
	CreditID      *uuid.UUID              `db:"credit_id"`
	Filename      string                  `db:"filename"`
	Filepath      string                  `db:"filepath"`
	UploadDate    time.Time               `db:"upload_date"`
	DocumentDate  *time.Time              `db:"document_date"`
	Category      domain.DocumentCategory `db:"category"`
	Description   *string                 `db:"description"`
	CreatedAt     time.Time               `db:"created_at"`
	UpdatedAt     time.Time               `db:"updated_at"`
}

type DocumentCreate struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	TransactionID *uuid.UUID
	CreditID      *uuid.UUID
	Filename      string
	Filepath      string
	DocumentDate  *time.Time
	Category      domain.DocumentCategory
	Description   *string
}

// DocumentUpdate holds the metadata columns to change. The stored file is never replaced.
type DocumentUpdate struct {
	TransactionID omit.Val[uuid.UUID]
	CreditID      omit.Val[uuid.UUID]
	DocumentDate  omit.Val[time.Time]
	Category      omit.Val[domain.DocumentCategory]
	Description   omit.Val[string]
}

type DocumentFilter struct {
	PropertyID    *uuid.UUID
	TransactionID *uuid.UUID
	CreditID      *uuid.UUID
	Category      *domain.DocumentCategory
	Page          sqlconfig.Page
}

// IDocumentReader defines the read operations on the documents table.
type IDocumentReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)
	List(ctx context.Context, filter *DocumentFilter) ([]*Document, error)
	CountByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)
}

// IDocumentWriter defines the operations available inside a write transaction.
type IDocumentWriter interface {
	IDocumentReader
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Document, error)
	Insert(ctx context.Context, create *DocumentCreate) (*Document, error)
	Update(ctx context.Context, id uuid.UUID, update *DocumentUpdate) (*Document, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ClearTransactionLink(ctx context.Context, transactionID uuid.UUID) (int64, error)
	ClearCreditLink(ctx context.Context, creditID uuid.UUID) (int64, error)
}

var columns = []any{
	"id", "property_id", "transaction_id", "credit_id", "filename", "filepath", "upload_date",
	"document_date", "category", "description", "created_at", "updated_at",
}
