package actions

import (
	"errors"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/filestore"
	"github.com/carson-networks/property-ledger/internal/storage/credit"
	"github.com/carson-networks/property-ledger/internal/storage/document"
	"github.com/carson-networks/property-ledger/internal/storage/property"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

func TestUploadDocument_Success(t *testing.T) {
	w, m := newTestWriter(t)
	files := new(mockStore)
	propertyID := newID()
	stored := &document.Document{ID: newID(), PropertyID: propertyID}
	m.properties.On("FindByID", mock.Anything, propertyID).Return(&property.Property{ID: propertyID}, nil)
	files.On("Save", mock.Anything, propertyID, "lease.PDF", mock.Anything).Return("documents/p/x.pdf", int64(8), nil)
	m.documents.On("Insert", mock.Anything, mock.MatchedBy(func(c *document.DocumentCreate) bool {
		return c.Filename == "lease.PDF" && c.Filepath == "documents/p/x.pdf" && c.Category == domain.DocumentRentalContract
	})).Return(stored, nil)

	action := &UploadDocument{
		PropertyID: propertyID,
		Category:   domain.DocumentRentalContract,
		Filename:   "lease.PDF",
		Size:       8,
		Content:    fileContent(),
		Files:      files,
		MaxBytes:   1024,
	}
	require.NoError(t, action.Perform(ctx, w))
	assert.Same(t, stored, action.Created)

	files.AssertExpectations(t)
}

func TestUploadDocument_BothLinksWritesNoFile(t *testing.T) {
	w, m := newTestWriter(t)
	files := new(mockStore)
	propertyID, transactionID, creditID := newID(), newID(), newID()
	m.properties.On("FindByID", mock.Anything, propertyID).Return(&property.Property{ID: propertyID}, nil)
	m.transactions.On("FindByID", mock.Anything, transactionID).Return(&transaction.Transaction{ID: transactionID, PropertyID: propertyID}, nil)
	m.credits.On("FindByID", mock.Anything, creditID).Return(&credit.Credit{ID: creditID, PropertyID: propertyID}, nil)

	action := &UploadDocument{
		PropertyID:    propertyID,
		TransactionID: &transactionID,
		CreditID:      &creditID,
		Category:      domain.DocumentInvoice,
		Filename:      "invoice.pdf",
		Size:          8,
		Content:       fileContent(),
		Files:         files,
		MaxBytes:      1024,
	}
	err := action.Perform(ctx, w)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Document cannot be linked to both transaction and credit", appErr.Message)
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.NoError(t, action.Compensate(ctx))
	files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUploadDocument_RejectedExtension(t *testing.T) {
	w, m := newTestWriter(t)
	files := new(mockStore)
	propertyID := newID()
	m.properties.On("FindByID", mock.Anything, propertyID).Return(&property.Property{ID: propertyID}, nil)

	err := (&UploadDocument{
		PropertyID: propertyID,
		Category:   domain.DocumentOther,
		Filename:   "script.exe",
		Size:       8,
		Content:    fileContent(),
		Files:      files,
		MaxBytes:   1024,
	}).Perform(ctx, w)

	assert.True(t, apperr.Is(err, apperr.KindBusinessRule))
	files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadDocument_ContentLargerThanDeclared(t *testing.T) {
	w, m := newTestWriter(t)
	files := new(mockStore)
	propertyID := newID()
	m.properties.On("FindByID", mock.Anything, propertyID).Return(&property.Property{ID: propertyID}, nil)
	files.On("Save", mock.Anything, propertyID, "scan.png", mock.Anything).Return("", int64(1025), filestore.ErrTooLarge)

	err := (&UploadDocument{
		PropertyID: propertyID,
		Category:   domain.DocumentOther,
		Filename:   "scan.png",
		Size:       10,
		Content:    fileContent(),
		Files:      files,
		MaxBytes:   1024,
	}).Perform(ctx, w)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "File size exceeds maximum allowed size", appErr.Message)
}

func TestUploadDocument_InsertFailureIsCompensated(t *testing.T) {
	w, m := newTestWriter(t)
	files := new(mockStore)
	propertyID := newID()
	m.properties.On("FindByID", mock.Anything, propertyID).Return(&property.Property{ID: propertyID}, nil)
	files.On("Save", mock.Anything, propertyID, "tax.pdf", mock.Anything).Return("documents/p/y.pdf", int64(8), nil)
	m.documents.On("Insert", mock.Anything, mock.Anything).Return(nil, errDB)
	files.On("Delete", mock.Anything, "documents/p/y.pdf").Return(nil).Once()

	action := &UploadDocument{
		PropertyID: propertyID,
		Category:   domain.DocumentTax,
		Filename:   "tax.pdf",
		Size:       8,
		Content:    fileContent(),
		Files:      files,
		MaxBytes:   1024,
	}
	assert.ErrorIs(t, action.Perform(ctx, w), errDB)
	assert.NoError(t, action.Compensate(ctx))
	assert.NoError(t, action.Compensate(ctx))
	files.AssertExpectations(t)
}

func TestUploadDocument_SaveFailure(t *testing.T) {
	w, m := newTestWriter(t)
	files := new(mockStore)
	propertyID := newID()
	m.properties.On("FindByID", mock.Anything, propertyID).Return(&property.Property{ID: propertyID}, nil)
	files.On("Save", mock.Anything, propertyID, "tax.pdf", mock.Anything).Return("", int64(0), errors.New("disk full"))

	err := (&UploadDocument{
		PropertyID: propertyID,
		Category:   domain.DocumentTax,
		Filename:   "tax.pdf",
		Size:       8,
		Content:    fileContent(),
		Files:      files,
		MaxBytes:   1024,
	}).Perform(ctx, w)

	assert.True(t, apperr.Is(err, apperr.KindFileOperation))
}

func TestUpdateDocument_CannotAddSecondLink(t *testing.T) {
	w, m := newTestWriter(t)
	id, propertyID, transactionID, creditID := newID(), newID(), newID(), newID()
	m.documents.On("FindByIDForUpdate", mock.Anything, id).Return(&document.Document{
		ID:            id,
		PropertyID:    propertyID,
		TransactionID: &transactionID,
		Category:      domain.DocumentInvoice,
	}, nil)
	m.properties.On("FindByID", mock.Anything, propertyID).Return(&property.Property{ID: propertyID}, nil)
	m.transactions.On("FindByID", mock.Anything, transactionID).Return(&transaction.Transaction{ID: transactionID, PropertyID: propertyID}, nil)
	m.credits.On("FindByID", mock.Anything, creditID).Return(&credit.Credit{ID: creditID, PropertyID: propertyID}, nil)

	err := (&UpdateDocument{ID: id, Update: document.DocumentUpdate{CreditID: omit.From(creditID)}}).Perform(ctx, w)

	assert.True(t, apperr.Is(err, apperr.KindBusinessRule))
	m.documents.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateDocument_InvalidCategory(t *testing.T) {
	w, m := newTestWriter(t)
	id, propertyID := newID(), newID()
	m.documents.On("FindByIDForUpdate", mock.Anything, id).Return(&document.Document{
		ID:         id,
		PropertyID: propertyID,
		Category:   domain.DocumentInvoice,
	}, nil)
	m.properties.On("FindByID", mock.Anything, propertyID).Return(&property.Property{ID: propertyID}, nil)

	err := (&UpdateDocument{ID: id, Update: document.DocumentUpdate{Category: omit.From(domain.DocumentCategory("receipt"))}}).Perform(ctx, w)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid category: receipt", appErr.Text())
}

func TestDeleteDocument_FileFailureStillDeletesRow(t *testing.T) {
	w, m := newTestWriter(t)
	files := new(mockStore)
	id := newID()
	m.documents.On("FindByIDForUpdate", mock.Anything, id).Return(&document.Document{ID: id, Filepath: "documents/p/z.pdf"}, nil)
	files.On("Delete", mock.Anything, "documents/p/z.pdf").Return(filestore.ErrNotFound)
	m.documents.On("Delete", mock.Anything, id).Return(true, nil)

	assert.NoError(t, (&DeleteDocument{ID: id, Files: files}).Perform(ctx, w))
	files.AssertExpectations(t)
}
