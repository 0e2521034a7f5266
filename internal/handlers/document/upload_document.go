package document

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/service"
)

// multipartOverhead is allowed on top of the upload limit for boundaries and the other form fields.
const multipartOverhead = 1 << 20

// UploadDocumentInput is a multipart form with a file part and the metadata fields
// property_id, transaction_id, credit_id, category, document_date and description.
type UploadDocumentInput struct {
	RawBody multipart.Form
}

type documentUploader interface {
	Upload(ctx context.Context, d service.NewDocument) (*service.Document, error)
	MaxUploadBytes() int64
}

// UploadDocumentHandler handles POST /documents.
type UploadDocumentHandler struct {
	DocumentService documentUploader
}

func NewUploadDocumentHandler(svc documentUploader) *UploadDocumentHandler {
	return &UploadDocumentHandler{DocumentService: svc}
}

func (h *UploadDocumentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "upload-document",
		Method:        http.MethodPost,
		Path:          "/documents",
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  h.DocumentService.MaxUploadBytes() + multipartOverhead,
		Summary:       "Upload document",
		Description:   "Stores a file for a property, optionally linked to one transaction or one credit.",
		Tags:          []string{"Documents"},
	}, h.handle)
}

// parseUploadDocumentInput returns the upload and the opened file part, which the caller closes.
// A missing file part is a validation error, an empty file name is left to the upload rules.
func parseUploadDocumentInput(input *UploadDocumentInput) (service.NewDocument, multipart.File, error) {
	var d service.NewDocument
	form := &input.RawBody

	propertyID := formValue(form, "property_id")
	if propertyID == "" {
		return d, nil, httperr.Invalid("body.property_id", "expected required property property_id to be present", nil)
	}
	if formValue(form, "category") == "" {
		return d, nil, httperr.Invalid("body.category", "expected required property category to be present", nil)
	}
	files := form.File["file"]
	if len(files) == 0 {
		return d, nil, httperr.Invalid("body.file", "expected required property file to be present", nil)
	}

	var err error
	if d.PropertyID, err = params.ID("property_id", propertyID); err != nil {
		return d, nil, err
	}
	fields, err := parseFormFields(form)
	if err != nil {
		return d, nil, err
	}

	header := files[0]
	if utf8.RuneCountInString(header.Filename) > maxFilenameLength {
		return d, nil, httperr.Invalid("body.file", "expected file name length <= "+strconv.Itoa(maxFilenameLength), header.Filename)
	}
	file, err := header.Open()
	if err != nil {
		return d, nil, apperr.FileOperation("Failed to read uploaded file", "", err)
	}

	d.TransactionID = fields.TransactionID
	d.CreditID = fields.CreditID
	d.Category = *fields.Category
	d.DocumentDate = fields.DocumentDate
	d.Description = fields.Description
	d.Filename = header.Filename
	d.Size = header.Size
	d.Content = file
	return d, file, nil
}

func (h *UploadDocumentHandler) handle(ctx context.Context, input *UploadDocumentInput) (*DocumentOutput, error) {
	upload, file, err := parseUploadDocumentInput(input)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	defer file.Close()

	logging.AddData(ctx, "uploadBytes", upload.Size)
	stopTimer := logging.StartTiming(ctx, "uploadDocumentMs")
	created, err := h.DocumentService.Upload(ctx, upload)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}

	logging.AddData(ctx, "documentID", created.ID.String())
	return &DocumentOutput{Body: FromService(*created)}, nil
}

