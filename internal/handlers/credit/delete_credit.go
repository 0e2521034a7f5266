package credit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
)

type creditDeleter interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

// DeleteCreditHandler handles DELETE /credits/{id}.
type DeleteCreditHandler struct {
	CreditService creditDeleter
}

func NewDeleteCreditHandler(svc creditDeleter) *DeleteCreditHandler {
	return &DeleteCreditHandler{CreditService: svc}
}

func (h *DeleteCreditHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-credit",
		Method:        http.MethodDelete,
		Path:          "/credits/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Delete credit",
		Description:   "Deletes a credit that no transaction references. Linked documents lose the link.",
		Tags:          []string{"Credits"},
	}, h.handle)
}

func (h *DeleteCreditHandler) handle(ctx context.Context, input *CreditPath) (*struct{}, error) {
	id, err := params.ID("id", input.ID)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	logging.AddData(ctx, "creditID", id.String())

	if err := h.CreditService.Delete(ctx, id); err != nil {
		return nil, httperr.FromError(err)
	}
	return &struct{}{}, nil
}
