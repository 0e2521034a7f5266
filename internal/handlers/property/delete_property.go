package property

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
)

type propertyDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeletePropertyHandler handles DELETE /properties/{id}.
type DeletePropertyHandler struct {
	PropertyService propertyDeleter
}

func NewDeletePropertyHandler(svc propertyDeleter) *DeletePropertyHandler {
	return &DeletePropertyHandler{PropertyService: svc}
}

func (h *DeletePropertyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-property",
		Method:        http.MethodDelete,
		Path:          "/properties/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Delete property",
		Description:   "Deletes a property that has no credits, transactions or documents.",
		Tags:          []string{"Properties"},
	}, h.handle)
}

func (h *DeletePropertyHandler) handle(ctx context.Context, input *PropertyPath) (*struct{}, error) {
	id, err := params.ID("id", input.ID)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	logging.AddData(ctx, "propertyID", id.String())

	if err := h.PropertyService.Delete(ctx, id); err != nil {
		return nil, httperr.FromError(err)
	}
	return &struct{}{}, nil
}
