package service

import (
	"context"
	"errors"
	"io"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/filestore"
	"github.com/carson-networks/property-ledger/internal/operator/actions"
	"github.com/carson-networks/property-ledger/internal/storage/document"
)

// DocumentService handles document metadata and the stored files.
type DocumentService struct {
	deps
	files          filestore.Store
	maxUploadBytes int64
}

// MaxUploadBytes is the configured upload limit.
func (s *DocumentService) MaxUploadBytes() int64 {
	return s.maxUploadBytes
}

func (s *DocumentService) List(ctx context.Context, query DocumentQuery) ([]Document, error) {
	rows, err := s.storage.Read().Documents.List(ctx, &document.DocumentFilter{
		PropertyID:    query.PropertyID,
		TransactionID: query.TransactionID,
		CreditID:      query.CreditID,
		Category:      query.Category,
		Page:          query.Page.Normalize(),
	})
	if err != nil {
		return nil, err
	}
	return documentsFromStorage(rows), nil
}

func (s *DocumentService) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	row, err := s.storage.Read().Documents.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound("Document", id)
	}

	converted := documentFromStorage(row)
	return &converted, nil
}

// Upload validates the document, stores the file and records it. No file is left behind on failure.
func (s *DocumentService) Upload(ctx context.Context, d NewDocument) (*Document, error) {
	action := &actions.UploadDocument{
		PropertyID:    d.PropertyID,
		TransactionID: d.TransactionID,
		CreditID:      d.CreditID,
		Category:      d.Category,
		DocumentDate:  d.DocumentDate,
		Description:   d.Description,
		Filename:      d.Filename,
		Size:          d.Size,
		Content:       d.Content,
		Files:         s.files,
		MaxBytes:      s.maxUploadBytes,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	created := documentFromStorage(action.Created)
	return &created, nil
}

func (s *DocumentService) Update(ctx context.Context, id uuid.UUID, changes DocumentChanges) (*Document, error) {
	action := &actions.UpdateDocument{ID: id, Update: changes}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	updated := documentFromStorage(action.Updated)
	return &updated, nil
}

func (s *DocumentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteDocument{ID: id, Files: s.files})
}

// Open returns the document and its content. The caller closes the reader.
func (s *DocumentService) Open(ctx context.Context, id uuid.UUID) (*Document, io.ReadCloser, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	content, err := s.files.Open(ctx, doc.Filepath)
	if errors.Is(err, filestore.ErrNotFound) {
		return nil, nil, apperr.FileOperation("File not found on disk", doc.Filepath, err)
	}
	if err != nil {
		return nil, nil, apperr.FileOperation("Failed to read file", doc.Filepath, err)
	}
	return doc, content, nil
}
