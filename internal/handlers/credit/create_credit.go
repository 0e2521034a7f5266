package credit

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/service"
)

// CreateCreditBody is the request body for creating a credit.
type CreateCreditBody struct {
	PropertyID     string  `json:"property_id" format:"uuid" doc:"Owning property UUID"`
	Name           string  `json:"name" minLength:"1" maxLength:"100" doc:"Credit name"`
	OriginalAmount string  `json:"original_amount" pattern:"^-?[0-9]{1,10}(\\.[0-9]+)?$" doc:"Loan principal, greater than zero"`
	InterestRate   string  `json:"interest_rate" pattern:"^-?[0-9]{1,3}(\\.[0-9]+)?$" doc:"Yearly interest rate in percent, 0 to 100"`
	MonthlyPayment string  `json:"monthly_payment" pattern:"^-?[0-9]{1,8}(\\.[0-9]+)?$" doc:"Monthly payment, at most the original amount"`
	StartDate      string  `json:"start_date" format:"date" doc:"Start date, not in the future"`
	EndDate        *string `json:"end_date,omitempty" format:"date" nullable:"true" doc:"End date, after the start date"`
}

type CreateCreditInput struct {
	Body CreateCreditBody
}

type creditCreator interface {
	Create(ctx context.Context, c service.NewCredit) (*service.Credit, error)
}

// CreateCreditHandler handles POST /credits.
type CreateCreditHandler struct {
	CreditService creditCreator
}

func NewCreateCreditHandler(svc creditCreator) *CreateCreditHandler {
	return &CreateCreditHandler{CreditService: svc}
}

func (h *CreateCreditHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-credit",
		Method:        http.MethodPost,
		Path:          "/credits",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create credit",
		Description:   "Creates a credit against a property.",
		Tags:          []string{"Credits"},
	}, h.handle)
}

func parseCreateCreditInput(input *CreateCreditInput) (service.NewCredit, error) {
	var c service.NewCredit
	var err error

	if c.PropertyID, err = params.ID("property_id", input.Body.PropertyID); err != nil {
		return c, err
	}
	if c.OriginalAmount, err = params.Money("original_amount", input.Body.OriginalAmount); err != nil {
		return c, err
	}
	if c.InterestRate, err = params.Money("interest_rate", input.Body.InterestRate); err != nil {
		return c, err
	}
	if c.MonthlyPayment, err = params.Money("monthly_payment", input.Body.MonthlyPayment); err != nil {
		return c, err
	}
	if c.StartDate, err = params.Date("start_date", input.Body.StartDate); err != nil {
		return c, err
	}
	if c.EndDate, err = params.OptionalDate("end_date", input.Body.EndDate); err != nil {
		return c, err
	}
	c.Name = input.Body.Name
	return c, nil
}

func (h *CreateCreditHandler) handle(ctx context.Context, input *CreateCreditInput) (*CreditOutput, error) {
	newCredit, err := parseCreateCreditInput(input)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	stopTimer := logging.StartTiming(ctx, "createCreditMs")
	created, err := h.CreditService.Create(ctx, newCredit)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}

	logging.AddData(ctx, "creditID", created.ID.String())
	return &CreditOutput{Body: FromService(*created)}, nil
}
