package document

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
)

type documentDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteDocumentHandler handles DELETE /documents/{id}.
type DeleteDocumentHandler struct {
	DocumentService documentDeleter
}

func NewDeleteDocumentHandler(svc documentDeleter) *DeleteDocumentHandler {
	return &DeleteDocumentHandler{DocumentService: svc}
}

func (h *DeleteDocumentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-document",
		Method:        http.MethodDelete,
		Path:          "/documents/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Delete document",
		Description:   "Removes the stored file, then the metadata.",
		Tags:          []string{"Documents"},
	}, h.handle)
}

func (h *DeleteDocumentHandler) handle(ctx context.Context, input *DocumentPath) (*struct{}, error) {
	id, err := params.ID("id", input.ID)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	logging.AddData(ctx, "documentID", id.String())

	if err := h.DocumentService.Delete(ctx, id); err != nil {
		return nil, httperr.FromError(err)
	}
	return &struct{}{}, nil
}
