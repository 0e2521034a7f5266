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

// Summary is the financial overview of a property.
type Summary struct {
	PropertyID         string `json:"property_id" doc:"Property UUID"`
	TotalIncome        string `json:"total_income" doc:"Sum of income transactions"`
	TotalExpenses      string `json:"total_expenses" doc:"Sum of expense transactions"`
	Balance            string `json:"balance" doc:"Income minus expenses"`
	TotalCreditBalance string `json:"total_credit_balance" doc:"Outstanding principal over all credits"`
	DocumentCount      int64  `json:"document_count" doc:"Number of documents"`
}

type SummaryOutput struct {
	Body Summary
}

type propertySummarizer interface {
	Summary(ctx context.Context, id uuid.UUID) (*service.PropertySummary, error)
}

// PropertySummaryHandler handles GET /properties/{id}/summary.
type PropertySummaryHandler struct {
	PropertyService propertySummarizer
}

func NewPropertySummaryHandler(svc propertySummarizer) *PropertySummaryHandler {
	return &PropertySummaryHandler{PropertyService: svc}
}

func (h *PropertySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-property-summary",
		Method:      http.MethodGet,
		Path:        "/properties/{id}/summary",
		Summary:     "Get property summary",
		Description: "Totals income, expenses and the outstanding credit balance of a property.",
		Tags:        []string{"Properties"},
	}, h.handle)
}

func (h *PropertySummaryHandler) handle(ctx context.Context, input *PropertyPath) (*SummaryOutput, error) {
	id, err := params.ID("id", input.ID)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	stopTimer := logging.StartTiming(ctx, "propertySummaryMs")
	summary, err := h.PropertyService.Summary(ctx, id)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}

	return &SummaryOutput{Body: Summary{
		PropertyID:         summary.PropertyID.String(),
		TotalIncome:        params.FormatMoney(summary.TotalIncome),
		TotalExpenses:      params.FormatMoney(summary.TotalExpenses),
		Balance:            params.FormatMoney(summary.Balance),
		TotalCreditBalance: params.FormatMoney(summary.TotalCreditBalance),
		DocumentCount:      summary.DocumentCount,
	}}, nil
}
