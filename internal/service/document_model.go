package service

import (
	"io"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/storage/document"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

// Document represents document metadata in the service layer.
type Document struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	TransactionID *uuid.UUID
	CreditID      *uuid.UUID
	Filename      string
	Filepath      string
	UploadDate    time.Time
	DocumentDate  *time.Time
	Category      domain.DocumentCategory
	Description   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewDocument is an upload. Size is the size announced by the client; the store enforces the real one.
type NewDocument struct {
	PropertyID    uuid.UUID
	TransactionID *uuid.UUID
	CreditID      *uuid.UUID
	Category      domain.DocumentCategory
	DocumentDate  *time.Time
	Description   *string
	Filename      string
	Size          int64
	Content       io.Reader
}

type DocumentChanges = document.DocumentUpdate

type DocumentQuery struct {
	PropertyID    *uuid.UUID
	TransactionID *uuid.UUID
	CreditID      *uuid.UUID
	Category      *domain.DocumentCategory
	Page          sqlconfig.Page
}

func documentFromStorage(row *document.Document) Document {
	return Document{
		ID:            row.ID,
		PropertyID:    row.PropertyID,
		TransactionID: row.TransactionID,
		CreditID:      row.CreditID,
		Filename:      row.Filename,
		Filepath:      row.Filepath,
		UploadDate:    row.UploadDate,
		DocumentDate:  row.DocumentDate,
		Category:      row.Category,
		Description:   row.Description,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func documentsFromStorage(rows []*document.Document) []Document {
	converted := make([]Document, len(rows))
	for i, row := range rows {
		converted[i] = documentFromStorage(row)
	}
	return converted
}
