package credit

import (
	"time"

	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/service"
)

// Credit is the API response model for a credit.
type Credit struct {
	ID             string  `json:"id" doc:"Credit UUID"`
	PropertyID     string  `json:"property_id" doc:"Owning property UUID"`
	Name           string  `json:"name" doc:"Credit name"`
	OriginalAmount string  `json:"original_amount" doc:"Loan principal"`
	InterestRate   string  `json:"interest_rate" doc:"Yearly interest rate in percent"`
	MonthlyPayment string  `json:"monthly_payment" doc:"Monthly payment"`
	StartDate      string  `json:"start_date" doc:"Start date, YYYY-MM-DD"`
	EndDate        *string `json:"end_date" doc:"End date, YYYY-MM-DD"`
	CurrentBalance string  `json:"current_balance" doc:"Original amount minus the linked payments"`
	CreatedAt      string  `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt      string  `json:"updated_at" doc:"RFC3339 time of the last change"`
}

type CreditOutput struct {
	Body Credit
}

// FromService renders a service credit.
func FromService(c service.Credit) Credit {
	return Credit{
		ID:             c.ID.String(),
		PropertyID:     c.PropertyID.String(),
		Name:           c.Name,
		OriginalAmount: params.FormatMoney(c.OriginalAmount),
		InterestRate:   params.FormatMoney(c.InterestRate),
		MonthlyPayment: params.FormatMoney(c.MonthlyPayment),
		StartDate:      params.FormatDate(c.StartDate),
		EndDate:        params.FormatOptionalDate(c.EndDate),
		CurrentBalance: params.FormatMoney(c.CurrentBalance),
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      c.UpdatedAt.Format(time.RFC3339),
	}
}

func FromServiceList(credits []service.Credit) []Credit {
	converted := make([]Credit, len(credits))
	for i, c := range credits {
		converted[i] = FromService(c)
	}
	return converted
}
