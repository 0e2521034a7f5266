package transaction

import (
	"time"

	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string  `json:"id" doc:"Transaction UUID"`
	PropertyID  string  `json:"property_id" doc:"Owning property UUID"`
	CreditID    *string `json:"credit_id" doc:"Credit this payment belongs to"`
	Date        string  `json:"date" doc:"Booking date, YYYY-MM-DD"`
	Type        string  `json:"type" enum:"income,expense" doc:"Direction"`
	Category    string  `json:"category" enum:"rent,operating_costs,repair,loan_payment,tax,other" doc:"Category"`
	Amount      string  `json:"amount" doc:"Positive amount"`
	Description *string `json:"description" doc:"Free-form description"`
	Recurring   bool    `json:"recurring" doc:"Whether the transaction repeats monthly"`
	CreatedAt   string  `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt   string  `json:"updated_at" doc:"RFC3339 time of the last change"`
}

type TransactionOutput struct {
	Body Transaction
}

// FromService renders a service transaction.
func FromService(t service.Transaction) Transaction {
	return Transaction{
		ID:          t.ID.String(),
		PropertyID:  t.PropertyID.String(),
		CreditID:    params.FormatOptionalID(t.CreditID),
		Date:        params.FormatDate(t.Date),
		Type:        string(t.Type),
		Category:    string(t.Category),
		Amount:      params.FormatMoney(t.Amount),
		Description: t.Description,
		Recurring:   t.Recurring,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

func FromServiceList(transactions []service.Transaction) []Transaction {
	converted := make([]Transaction, len(transactions))
	for i, t := range transactions {
		converted[i] = FromService(t)
	}
	return converted
}
