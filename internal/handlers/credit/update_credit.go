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

// UpdateCreditBody lists the fields to change. Absent fields keep their value.
// Null clears end_date and keeps every other field.
type UpdateCreditBody struct {
	Name           *string                 `json:"name,omitempty" minLength:"1" maxLength:"100" nullable:"true"`
	OriginalAmount *string                 `json:"original_amount,omitempty" pattern:"^-?[0-9]{1,10}(\\.[0-9]+)?$" nullable:"true"`
	InterestRate   *string                 `json:"interest_rate,omitempty" pattern:"^-?[0-9]{1,3}(\\.[0-9]+)?$" nullable:"true"`
	MonthlyPayment *string                 `json:"monthly_payment,omitempty" pattern:"^-?[0-9]{1,8}(\\.[0-9]+)?$" nullable:"true"`
	StartDate      *string                 `json:"start_date,omitempty" format:"date" nullable:"true"`
	EndDate        params.Nullable[string] `json:"end_date,omitempty" format:"date"`
}

type UpdateCreditInput struct {
	CreditPath
	Body UpdateCreditBody
}

type creditUpdater interface {
	Update(ctx context.Context, id uuid.UUID, changes service.CreditChanges) (*service.Credit, error)
}

// UpdateCreditHandler handles PUT /credits/{id}.
type UpdateCreditHandler struct {
	CreditService creditUpdater
}

func NewUpdateCreditHandler(svc creditUpdater) *UpdateCreditHandler {
	return &UpdateCreditHandler{CreditService: svc}
}

func (h *UpdateCreditHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-credit",
		Method:      http.MethodPut,
		Path:        "/credits/{id}",
		Summary:     "Update credit",
		Description: "Changes the given fields. The rules are checked against the merged credit.",
		Tags:        []string{"Credits"},
	}, h.handle)
}

func parseUpdateCreditInput(input *UpdateCreditInput) (uuid.UUID, service.CreditChanges, error) {
	var changes service.CreditChanges

	id, err := params.ID("id", input.ID)
	if err != nil {
		return uuid.Nil, changes, err
	}
	originalAmount, err := params.OptionalMoney("original_amount", input.Body.OriginalAmount)
	if err != nil {
		return uuid.Nil, changes, err
	}
	interestRate, err := params.OptionalMoney("interest_rate", input.Body.InterestRate)
	if err != nil {
		return uuid.Nil, changes, err
	}
	monthlyPayment, err := params.OptionalMoney("monthly_payment", input.Body.MonthlyPayment)
	if err != nil {
		return uuid.Nil, changes, err
	}
	startDate, err := params.OptionalDate("start_date", input.Body.StartDate)
	if err != nil {
		return uuid.Nil, changes, err
	}
	changes.EndDate, err = params.NullableDate("end_date", input.Body.EndDate)
	if err != nil {
		return uuid.Nil, changes, err
	}

	changes.Name = params.Omit(input.Body.Name)
	changes.OriginalAmount = params.Omit(originalAmount)
	changes.InterestRate = params.Omit(interestRate)
	changes.MonthlyPayment = params.Omit(monthlyPayment)
	changes.StartDate = params.Omit(startDate)
	return id, changes, nil
}

func (h *UpdateCreditHandler) handle(ctx context.Context, input *UpdateCreditInput) (*CreditOutput, error) {
	id, changes, err := parseUpdateCreditInput(input)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	logging.AddData(ctx, "creditID", id.String())

	stopTimer := logging.StartTiming(ctx, "updateCreditMs")
	updated, err := h.CreditService.Update(ctx, id, changes)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}
	return &CreditOutput{Body: FromService(*updated)}, nil
}
