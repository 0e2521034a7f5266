package property

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/service"
)

type PropertyPath struct {
	ID string `path:"id" format:"uuid" doc:"Property UUID"`
}

type PropertyDetailOutput struct {
	Body PropertyDetail
}

type propertyGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*service.PropertyDetail, error)
}

// GetPropertyHandler handles GET /properties/{id}.
type GetPropertyHandler struct {
	PropertyService propertyGetter
}

func NewGetPropertyHandler(svc propertyGetter) *GetPropertyHandler {
	return &GetPropertyHandler{PropertyService: svc}
}

func (h *GetPropertyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-property",
		Method:      http.MethodGet,
		Path:        "/properties/{id}",
		Summary:     "Get property",
		Description: "Returns the property with its credits, transactions and documents.",
		Tags:        []string{"Properties"},
	}, h.handle)
}

func (h *GetPropertyHandler) handle(ctx context.Context, input *PropertyPath) (*PropertyDetailOutput, error) {
	id, err := params.ID("id", input.ID)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	stopTimer := logging.StartTiming(ctx, "getPropertyMs")
	detail, err := h.PropertyService.Get(ctx, id)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}
	return &PropertyDetailOutput{Body: detailFromService(*detail)}, nil
}
