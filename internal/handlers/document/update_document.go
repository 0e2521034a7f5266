package document

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/service"
)

// UpdateDocumentInput is a multipart form with any of transaction_id, credit_id, category,
// document_date and description. Absent and blank fields keep their value.
type UpdateDocumentInput struct {
	DocumentPath
	RawBody multipart.Form
}

type documentUpdater interface {
	Update(ctx context.Context, id uuid.UUID, changes service.DocumentChanges) (*service.Document, error)
}

// UpdateDocumentHandler handles PUT /documents/{id}.
type UpdateDocumentHandler struct {
	DocumentService documentUpdater
}

func NewUpdateDocumentHandler(svc documentUpdater) *UpdateDocumentHandler {
	return &UpdateDocumentHandler{DocumentService: svc}
}

func (h *UpdateDocumentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-document",
		Method:      http.MethodPut,
		Path:        "/documents/{id}",
		Summary:     "Update document metadata",
		Description: "Changes the given metadata fields. The file itself cannot be replaced.",
		Tags:        []string{"Documents"},
	}, h.handle)
}

func parseUpdateDocumentInput(input *UpdateDocumentInput) (uuid.UUID, service.DocumentChanges, error) {
	var changes service.DocumentChanges

	id, err := params.ID("id", input.ID)
	if err != nil {
		return uuid.Nil, changes, err
	}
	fields, err := parseFormFields(&input.RawBody)
	if err != nil {
		return uuid.Nil, changes, err
	}

	changes.TransactionID = params.Omit(fields.TransactionID)
	changes.CreditID = params.Omit(fields.CreditID)
	changes.DocumentDate = params.Omit(fields.DocumentDate)
	changes.Category = params.Omit(fields.Category)
	changes.Description = params.Omit(fields.Description)
	return id, changes, nil
}

func (h *UpdateDocumentHandler) handle(ctx context.Context, input *UpdateDocumentInput) (*DocumentOutput, error) {
	id, changes, err := parseUpdateDocumentInput(input)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	logging.AddData(ctx, "documentID", id.String())

	stopTimer := logging.StartTiming(ctx, "updateDocumentMs")
	updated, err := h.DocumentService.Update(ctx, id, changes)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}
	return &DocumentOutput{Body: FromService(*updated)}, nil
}
