package credit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/service"
)

// CreditPath addresses a single credit.
type CreditPath struct {
	ID string `path:"id" format:"uuid" doc:"Credit UUID"`
}

type creditGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*service.Credit, error)
}

// GetCreditHandler handles GET /credits/{id}.
type GetCreditHandler struct {
	CreditService creditGetter
}

func NewGetCreditHandler(svc creditGetter) *GetCreditHandler {
	return &GetCreditHandler{CreditService: svc}
}

func (h *GetCreditHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-credit",
		Method:      http.MethodGet,
		Path:        "/credits/{id}",
		Summary:     "Get credit",
		Tags:        []string{"Credits"},
	}, h.handle)
}

func (h *GetCreditHandler) handle(ctx context.Context, input *CreditPath) (*CreditOutput, error) {
	id, err := params.ID("id", input.ID)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	found, err := h.CreditService.Get(ctx, id)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	return &CreditOutput{Body: FromService(*found)}, nil
}
