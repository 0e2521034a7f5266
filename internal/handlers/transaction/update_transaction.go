package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/service"
)

// UpdateTransactionBody lists the fields to change. Absent fields keep their value.
// Null clears credit_id and description and keeps every other field.
type UpdateTransactionBody struct {
	CreditID    params.Nullable[string] `json:"credit_id,omitempty" format:"uuid"`
	Date        *string                 `json:"date,omitempty" format:"date" nullable:"true"`
	Type        *string                 `json:"type,omitempty" enum:"income,expense" nullable:"true"`
	Category    *string                 `json:"category,omitempty" enum:"rent,operating_costs,repair,loan_payment,tax,other" nullable:"true"`
	Amount      *string                 `json:"amount,omitempty" pattern:"^-?[0-9]{1,8}(\\.[0-9]+)?$" nullable:"true"`
	Description params.Nullable[string] `json:"description,omitempty" maxLength:"500"`
	Recurring   *bool                   `json:"recurring,omitempty" nullable:"true"`
}

type UpdateTransactionInput struct {
	TransactionPath
	Body UpdateTransactionBody
}

type transactionUpdater interface {
	Update(ctx context.Context, id uuid.UUID, changes service.TransactionChanges) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Changes the given fields. The rules are checked against the merged transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (uuid.UUID, service.TransactionChanges, error) {
	var changes service.TransactionChanges

	id, err := params.ID("id", input.ID)
	if err != nil {
		return uuid.Nil, changes, err
	}
	changes.CreditID, err = params.NullableID("credit_id", input.Body.CreditID)
	if err != nil {
		return uuid.Nil, changes, err
	}
	date, err := params.OptionalDate("date", input.Body.Date)
	if err != nil {
		return uuid.Nil, changes, err
	}
	amount, err := params.OptionalMoney("amount", input.Body.Amount)
	if err != nil {
		return uuid.Nil, changes, err
	}
	if input.Body.Type != nil {
		changes.Type = params.Omit((*domain.TransactionType)(input.Body.Type))
	}
	if input.Body.Category != nil {
		changes.Category = params.Omit((*domain.TransactionCategory)(input.Body.Category))
	}

	changes.Date = params.Omit(date)
	changes.Amount = params.Omit(amount)
	changes.Description = input.Body.Description.Val
	changes.Recurring = params.Omit(input.Body.Recurring)
	return id, changes, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	id, changes, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	logging.AddData(ctx, "transactionID", id.String())

	stopTimer := logging.StartTiming(ctx, "updateTransactionMs")
	updated, err := h.TransactionService.Update(ctx, id, changes)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}
	return &TransactionOutput{Body: FromService(*updated)}, nil
}
