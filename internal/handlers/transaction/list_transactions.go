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

// ListTransactionsInput filters the transaction list. Empty filters match everything.
type ListTransactionsInput struct {
	params.Page
	PropertyID string `query:"property_id" format:"uuid" doc:"Only transactions of this property"`
	CreditID   string `query:"credit_id" format:"uuid" doc:"Only payments of this credit"`
	Type       string `query:"type" enum:"income,expense" doc:"Only this direction"`
	Category   string `query:"category" enum:"rent,operating_costs,repair,loan_payment,tax,other" doc:"Only this category"`
	DateFrom   string `query:"date_from" format:"date" doc:"Earliest date, inclusive"`
	DateTo     string `query:"date_to" format:"date" doc:"Latest date, inclusive"`
}

type ListTransactionsOutput struct {
	Body []Transaction
}

type transactionLister interface {
	List(ctx context.Context, query service.TransactionQuery) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns a page of transactions, newest date first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionQuery, error) {
	query := service.TransactionQuery{Page: input.Page.Storage()}
	var err error

	if query.PropertyID, err = params.OptionalID("property_id", input.PropertyID); err != nil {
		return query, err
	}
	if query.CreditID, err = params.OptionalID("credit_id", input.CreditID); err != nil {
		return query, err
	}
	if query.DateFrom, err = params.OptionalDate("date_from", &input.DateFrom); err != nil {
		return query, err
	}
	if query.DateTo, err = params.OptionalDate("date_to", &input.DateTo); err != nil {
		return query, err
	}
	if input.Type != "" {
		transactionType := domain.TransactionType(input.Type)
		query.Type = &transactionType
	}
	if input.Category != "" {
		category := domain.TransactionCategory(input.Category)
		query.Category = &category
	}
	return query, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	stopTimer := logging.StartTiming(ctx, "listTransactionsMs")
	transactions, err := h.TransactionService.List(ctx, query)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}

	logging.AddData(ctx, "transactionCount", len(transactions))
	return &ListTransactionsOutput{Body: FromServiceList(transactions)}, nil
}
