package actions

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/filestore"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/storage"
	"github.com/carson-networks/property-ledger/internal/storage/document"
)

// UploadDocument validates the metadata and the file before anything is written, then stores the file
// and inserts the row. Compensate removes the stored file when the insert or the commit fails.
type UploadDocument struct {
	PropertyID    uuid.UUID
	TransactionID *uuid.UUID
	CreditID      *uuid.UUID
	Category      domain.DocumentCategory
	DocumentDate  *time.Time
	Description   *string
	Filename      string
	Size          int64
	Content       io.Reader
	Files         filestore.Store
	MaxBytes      int64

	Created    *document.Document
	storedPath string
}

func (a *UploadDocument) Perform(ctx context.Context, writer *storage.Writer) error {
	fields := domain.DocumentFields{
		PropertyID:    a.PropertyID,
		TransactionID: a.TransactionID,
		CreditID:      a.CreditID,
		Category:      a.Category,
	}
	if err := checkDocumentLinks(ctx, writer, fields, &domain.Upload{Filename: a.Filename, Size: a.Size}, a.MaxBytes); err != nil {
		return err
	}

	path, size, err := a.Files.Save(ctx, a.PropertyID, a.Filename, a.Content)
	if errors.Is(err, filestore.ErrTooLarge) {
		return domain.CheckUpload(domain.Upload{Filename: a.Filename, Size: size}, a.MaxBytes)
	}
	if err != nil {
		return apperr.FileOperation("Failed to save file", "", err)
	}
	a.storedPath = path
	logging.AddData(ctx, "storedPath", path)

	id, err := uuid.NewV4()
	if err != nil {
		return apperr.Internal(err)
	}

	created, err := writer.Documents.Insert(ctx, &document.DocumentCreate{
		ID:            id,
		PropertyID:    a.PropertyID,
		TransactionID: a.TransactionID,
		CreditID:      a.CreditID,
		Filename:      a.Filename,
		Filepath:      path,
		DocumentDate:  dayPtr(a.DocumentDate),
		Category:      a.Category,
		Description:   a.Description,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}

func (a *UploadDocument) Compensate(ctx context.Context) error {
	if a.storedPath == "" {
		return nil
	}
	err := a.Files.Delete(ctx, a.storedPath)
	if err != nil && !errors.Is(err, filestore.ErrNotFound) {
		return apperr.FileOperation("Failed to delete file", a.storedPath, err)
	}
	a.storedPath = ""
	return nil
}

// UpdateDocument changes metadata only. Links can be set but not cleared.
type UpdateDocument struct {
	ID     uuid.UUID
	Update document.DocumentUpdate

	Updated *document.Document
}

func (a *UpdateDocument) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Documents.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Document", a.ID)
	}

	if v, ok := a.Update.DocumentDate.Get(); ok {
		a.Update.DocumentDate = omit.From(domain.Day(v))
	}

	fields := domain.DocumentFields{
		PropertyID:    existing.PropertyID,
		TransactionID: existing.TransactionID,
		CreditID:      existing.CreditID,
		Category:      a.Update.Category.GetOr(existing.Category),
	}
	if v, ok := a.Update.TransactionID.Get(); ok {
		fields.TransactionID = &v
	}
	if v, ok := a.Update.CreditID.Get(); ok {
		fields.CreditID = &v
	}
	if err := checkDocumentLinks(ctx, writer, fields, nil, 0); err != nil {
		return err
	}

	updated, err := writer.Documents.Update(ctx, a.ID, &a.Update)
	if err != nil {
		return err
	}
	if updated == nil {
		return apperr.NotFound("Document", a.ID)
	}

	a.Updated = updated
	return nil
}

// DeleteDocument removes the stored file first. A file that cannot be removed is logged and the row is
// deleted anyway.
type DeleteDocument struct {
	ID    uuid.UUID
	Files filestore.Store
}

func (a *DeleteDocument) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Documents.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Document", a.ID)
	}

	if err := a.Files.Delete(ctx, existing.Filepath); err != nil {
		logging.AddData(ctx, "fileDeleteFailed", existing.Filepath)
		logging.AddData(ctx, "fileDeleteError", err.Error())
	}

	deleted, err := writer.Documents.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Document", a.ID)
	}
	return nil
}

func checkDocumentLinks(ctx context.Context, writer *storage.Writer, fields domain.DocumentFields, upload *domain.Upload, maxBytes int64) error {
	prop, err := writer.Properties.FindByID(ctx, fields.PropertyID)
	if err != nil {
		return err
	}
	transactionLink, err := findTransactionLink(ctx, writer, fields.TransactionID)
	if err != nil {
		return err
	}
	creditLink, err := findCreditLink(ctx, writer, fields.CreditID)
	if err != nil {
		return err
	}
	return domain.CheckDocument(fields, prop != nil, transactionLink, creditLink, upload, maxBytes)
}
