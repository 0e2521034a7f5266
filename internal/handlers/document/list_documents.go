package document

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

type ListDocumentsInput struct {
	params.Page
	PropertyID    string `query:"property_id" format:"uuid" doc:"Only documents of this property"`
	TransactionID string `query:"transaction_id" format:"uuid" doc:"Only documents linked to this transaction"`
	CreditID      string `query:"credit_id" format:"uuid" doc:"Only documents linked to this credit"`
	Category      string `query:"category" enum:"rental_contract,invoice,tax,property_management,loan,other" doc:"Only this category"`
}

type ListDocumentsOutput struct {
	Body []Document
}

type documentLister interface {
	List(ctx context.Context, query service.DocumentQuery) ([]service.Document, error)
}

// ListDocumentsHandler handles GET /documents.
type ListDocumentsHandler struct {
	DocumentService documentLister
}

func NewListDocumentsHandler(svc documentLister) *ListDocumentsHandler {
	return &ListDocumentsHandler{DocumentService: svc}
}

func (h *ListDocumentsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-documents",
		Method:      http.MethodGet,
		Path:        "/documents",
		Summary:     "List documents",
		Description: "Returns a page of document metadata, newest upload first.",
		Tags:        []string{"Documents"},
	}, h.handle)
}

func parseListDocumentsInput(input *ListDocumentsInput) (service.DocumentQuery, error) {
	query := service.DocumentQuery{Page: input.Page.Storage()}
	var err error

	if query.PropertyID, err = params.OptionalID("property_id", input.PropertyID); err != nil {
		return query, err
	}
	if query.TransactionID, err = params.OptionalID("transaction_id", input.TransactionID); err != nil {
		return query, err
	}
	if query.CreditID, err = params.OptionalID("credit_id", input.CreditID); err != nil {
		return query, err
	}
	if input.Category != "" {
		category := domain.DocumentCategory(input.Category)
		query.Category = &category
	}
	return query, nil
}

func (h *ListDocumentsHandler) handle(ctx context.Context, input *ListDocumentsInput) (*ListDocumentsOutput, error) {
	query, err := parseListDocumentsInput(input)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	stopTimer := logging.StartTiming(ctx, "listDocumentsMs")
	documents, err := h.DocumentService.List(ctx, query)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}

	logging.AddData(ctx, "documentCount", len(documents))
	return &ListDocumentsOutput{Body: FromServiceList(documents)}, nil
}
