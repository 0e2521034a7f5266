package document

import (
	"mime/multipart"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/service"
)

// Document is the API response model for document metadata.
type Document struct {
	ID            string  `json:"id" doc:"Document UUID"`
	PropertyID    string  `json:"property_id" doc:"Owning property UUID"`
	TransactionID *string `json:"transaction_id" doc:"Linked transaction"`
	CreditID      *string `json:"credit_id" doc:"Linked credit"`
	Filename      string  `json:"filename" doc:"Original file name"`
	Filepath      string  `json:"filepath" doc:"Storage location of the file"`
	UploadDate    string  `json:"upload_date" doc:"RFC3339 upload time"`
	DocumentDate  *string `json:"document_date" doc:"Date of the document, YYYY-MM-DD"`
	Category      string  `json:"category" doc:"Document category"`
	Description   *string `json:"description" doc:"Free-form description"`
	CreatedAt     string  `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt     string  `json:"updated_at" doc:"RFC3339 time of the last change"`
}

type DocumentOutput struct {
	Body Document
}

// FromService renders service document metadata.
func FromService(d service.Document) Document {
	return Document{
		ID:            d.ID.String(),
		PropertyID:    d.PropertyID.String(),
		TransactionID: params.FormatOptionalID(d.TransactionID),
		CreditID:      params.FormatOptionalID(d.CreditID),
		Filename:      d.Filename,
		Filepath:      d.Filepath,
		UploadDate:    d.UploadDate.Format(time.RFC3339),
		DocumentDate:  params.FormatOptionalDate(d.DocumentDate),
		Category:      string(d.Category),
		Description:   d.Description,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339),
	}
}

func FromServiceList(documents []service.Document) []Document {
	converted := make([]Document, len(documents))
	for i, d := range documents {
		converted[i] = FromService(d)
	}
	return converted
}

const (
	maxDescriptionLength = 500
	maxFilenameLength    = 255
)

// formFields are the metadata fields shared by upload and update. Absent and blank fields stay nil.
type formFields struct {
	TransactionID *uuid.UUID
	CreditID      *uuid.UUID
	DocumentDate  *time.Time
	Category      *domain.DocumentCategory
	Description   *string
}

// parseFormFields reads the metadata fields. The category is not checked here: an unknown value is
// a business rule violation reported by the document rules.
func parseFormFields(form *multipart.Form) (formFields, error) {
	var f formFields
	var err error

	if f.TransactionID, err = params.OptionalID("transaction_id", formValue(form, "transaction_id")); err != nil {
		return f, err
	}
	if f.CreditID, err = params.OptionalID("credit_id", formValue(form, "credit_id")); err != nil {
		return f, err
	}
	documentDate := formValue(form, "document_date")
	if f.DocumentDate, err = params.OptionalDate("document_date", &documentDate); err != nil {
		return f, err
	}
	if category := formValue(form, "category"); category != "" {
		converted := domain.DocumentCategory(category)
		f.Category = &converted
	}
	if description := formValue(form, "description"); description != "" {
		if utf8.RuneCountInString(description) > maxDescriptionLength {
			return f, httperr.Invalid("body.description", "expected length <= "+strconv.Itoa(maxDescriptionLength), description)
		}
		f.Description = &description
	}
	return f, nil
}

// formValue returns the trimmed first value of key, "" when the field is absent.
func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}
