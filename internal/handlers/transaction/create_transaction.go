package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	PropertyID  string  `json:"property_id" format:"uuid" doc:"Owning property UUID"`
	CreditID    *string `json:"credit_id,omitempty" format:"uuid" nullable:"true" doc:"Credit this payment belongs to, requires category loan_payment"`
	Date        string  `json:"date" format:"date" doc:"Booking date, at most 365 days ahead"`
	Type        string  `json:"type" enum:"income,expense" doc:"Direction"`
	Category    string  `json:"category" enum:"rent,operating_costs,repair,loan_payment,tax,other" doc:"Category"`
	Amount      string  `json:"amount" pattern:"^-?[0-9]{1,8}(\\.[0-9]+)?$" doc:"Amount, greater than zero"`
	Description *string `json:"description,omitempty" maxLength:"500" nullable:"true" doc:"Free-form description"`
	Recurring   bool    `json:"recurring,omitempty" doc:"Whether the transaction repeats monthly"`
}

type CreateTransactionInput struct {
	Body CreateTransactionBody
}

type transactionCreator interface {
	Create(ctx context.Context, t service.NewTransaction) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/transactions",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create transaction",
		Description:   "Records an income or expense of a property.",
		Tags:          []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput converts the body. Enumerations were already checked by the schema.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.NewTransaction, error) {
	t := service.NewTransaction{
		Type:        domain.TransactionType(input.Body.Type),
		Category:    domain.TransactionCategory(input.Body.Category),
		Description: input.Body.Description,
		Recurring:   input.Body.Recurring,
	}
	var err error

	if t.PropertyID, err = params.ID("property_id", input.Body.PropertyID); err != nil {
		return t, err
	}
	if input.Body.CreditID != nil {
		if t.CreditID, err = params.OptionalID("credit_id", *input.Body.CreditID); err != nil {
			return t, err
		}
	}
	if t.Date, err = params.Date("date", input.Body.Date); err != nil {
		return t, err
	}
	if t.Amount, err = params.Money("amount", input.Body.Amount); err != nil {
		return t, err
	}
	return t, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*TransactionOutput, error) {
	newTransaction, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	stopTimer := logging.StartTiming(ctx, "createTransactionMs")
	created, err := h.TransactionService.Create(ctx, newTransaction)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}

	logging.AddData(ctx, "transactionID", created.ID.String())
	return &TransactionOutput{Body: FromService(*created)}, nil
}
