package credit

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

type ListCreditsInput struct {
	PropertyID string `query:"property_id" format:"uuid" doc:"Only credits of this property"`
}

type ListCreditsOutput struct {
	Body []Credit
}

type creditLister interface {
	List(ctx context.Context, propertyID *uuid.UUID) ([]service.Credit, error)
}

// ListCreditsHandler handles GET /credits.
type ListCreditsHandler struct {
	CreditService creditLister
}

func NewListCreditsHandler(svc creditLister) *ListCreditsHandler {
	return &ListCreditsHandler{CreditService: svc}
}

func (h *ListCreditsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-credits",
		Method:      http.MethodGet,
		Path:        "/credits",
		Summary:     "List credits",
		Description: "Returns credits with their current balance, newest start date first.",
		Tags:        []string{"Credits"},
	}, h.handle)
}

func (h *ListCreditsHandler) handle(ctx context.Context, input *ListCreditsInput) (*ListCreditsOutput, error) {
	propertyID, err := params.OptionalID("property_id", input.PropertyID)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	stopTimer := logging.StartTiming(ctx, "listCreditsMs")
	credits, err := h.CreditService.List(ctx, propertyID)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}

	logging.AddData(ctx, "creditCount", len(credits))
	return &ListCreditsOutput{Body: FromServiceList(credits)}, nil
}
