package property

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/service"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

type ListPropertiesInput struct {
	params.Page
}

type ListPropertiesOutput struct {
	Body []Property
}

type propertyLister interface {
	List(ctx context.Context, page sqlconfig.Page) ([]service.Property, error)
}

// ListPropertiesHandler handles GET /properties.
type ListPropertiesHandler struct {
	PropertyService propertyLister
}

func NewListPropertiesHandler(svc propertyLister) *ListPropertiesHandler {
	return &ListPropertiesHandler{PropertyService: svc}
}

func (h *ListPropertiesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-properties",
		Method:      http.MethodGet,
		Path:        "/properties",
		Summary:     "List properties",
		Description: "Returns a page of properties ordered by name.",
		Tags:        []string{"Properties"},
	}, h.handle)
}

func (h *ListPropertiesHandler) handle(ctx context.Context, input *ListPropertiesInput) (*ListPropertiesOutput, error) {
	stopTimer := logging.StartTiming(ctx, "listPropertiesMs")
	properties, err := h.PropertyService.List(ctx, input.Page.Storage())
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}

	logging.AddData(ctx, "propertyCount", len(properties))
	resp := make([]Property, len(properties))
	for i, p := range properties {
		resp[i] = FromService(p)
	}
	return &ListPropertiesOutput{Body: resp}, nil
}
