package document

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/service"
)

type DocumentPath struct {
	ID string `path:"id" format:"uuid" doc:"Document UUID"`
}

type documentGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*service.Document, error)
}

// GetDocumentHandler handles GET /documents/{id}.
type GetDocumentHandler struct {
	DocumentService documentGetter
}

func NewGetDocumentHandler(svc documentGetter) *GetDocumentHandler {
	return &GetDocumentHandler{DocumentService: svc}
}

func (h *GetDocumentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-document",
		Method:      http.MethodGet,
		Path:        "/documents/{id}",
		Summary:     "Get document metadata",
		Tags:        []string{"Documents"},
	}, h.handle)
}

func (h *GetDocumentHandler) handle(ctx context.Context, input *DocumentPath) (*DocumentOutput, error) {
	id, err := params.ID("id", input.ID)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	found, err := h.DocumentService.Get(ctx, id)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	return &DocumentOutput{Body: FromService(*found)}, nil
}
