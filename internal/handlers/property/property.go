package property

import (
	"time"

	"github.com/carson-networks/property-ledger/internal/handlers/credit"
	"github.com/carson-networks/property-ledger/internal/handlers/document"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/handlers/transaction"
	"github.com/carson-networks/property-ledger/internal/service"
)

// Property is the API response model for a property.
type Property struct {
	ID            string  `json:"id" doc:"Property UUID"`
	Name          string  `json:"name" doc:"Property name"`
	Address       string  `json:"address" doc:"Street address"`
	PurchaseDate  *string `json:"purchase_date" doc:"Purchase date, YYYY-MM-DD"`
	PurchasePrice *string `json:"purchase_price" doc:"Purchase price"`
	Notes         *string `json:"notes" doc:"Free-form notes"`
	CreatedAt     string  `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt     string  `json:"updated_at" doc:"RFC3339 time of the last change"`
}

// PropertyDetail is a property with everything recorded against it.
type PropertyDetail struct {
	Property
	Credits      []credit.Credit           `json:"credits" doc:"Credits with their current balance"`
	Transactions []transaction.Transaction `json:"transactions" doc:"Transactions, newest date first"`
	Documents    []document.Document       `json:"documents" doc:"Documents, newest upload first"`
}

type PropertyOutput struct {
	Body Property
}

func FromService(p service.Property) Property {
	return Property{
		ID:            p.ID.String(),
		Name:          p.Name,
		Address:       p.Address,
		PurchaseDate:  params.FormatOptionalDate(p.PurchaseDate),
		PurchasePrice: params.FormatOptionalMoney(p.PurchasePrice),
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

func detailFromService(d service.PropertyDetail) PropertyDetail {
	return PropertyDetail{
		Property:     FromService(d.Property),
		Credits:      credit.FromServiceList(d.Credits),
		Transactions: transaction.FromServiceList(d.Transactions),
		Documents:    document.FromServiceList(d.Documents),
	}
}
