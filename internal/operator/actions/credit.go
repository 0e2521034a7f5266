package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/storage"
	"github.com/carson-networks/property-ledger/internal/storage/credit"
)

type CreateCredit struct {
	PropertyID     uuid.UUID
	Name           string
	OriginalAmount decimal.Decimal
	InterestRate   decimal.Decimal
	MonthlyPayment decimal.Decimal
	StartDate      time.Time
	EndDate        *time.Time
	Today          time.Time

	Created *credit.Credit
}

func (a *CreateCredit) Perform(ctx context.Context, writer *storage.Writer) error {
	prop, err := writer.Properties.FindByID(ctx, a.PropertyID)
	if err != nil {
		return err
	}

	terms := domain.CreditTerms{
		PropertyID:     a.PropertyID,
		OriginalAmount: domain.Money(a.OriginalAmount),
		InterestRate:   domain.Money(a.InterestRate),
		MonthlyPayment: domain.Money(a.MonthlyPayment),
		StartDate:      domain.Day(a.StartDate),
		EndDate:        dayPtr(a.EndDate),
	}
	if err := domain.CheckCredit(terms, prop != nil, true, a.Today); err != nil {
		return err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return apperr.Internal(err)
	}

	created, err := writer.Credits.Insert(ctx, &credit.CreditCreate{
		ID:             id,
		PropertyID:     terms.PropertyID,
		Name:           a.Name,
		OriginalAmount: terms.OriginalAmount,
		InterestRate:   terms.InterestRate,
		MonthlyPayment: terms.MonthlyPayment,
		StartDate:      terms.StartDate,
		EndDate:        terms.EndDate,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}

// UpdateCredit validates the stored credit merged with the update. The start date may lie in the future.
type UpdateCredit struct {
	ID     uuid.UUID
	Update credit.CreditUpdate
	Today  time.Time

	Updated *credit.Credit
}

func (a *UpdateCredit) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Credits.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Credit", a.ID)
	}

	a.normalize()
	terms := domain.CreditTerms{
		PropertyID:     existing.PropertyID,
		OriginalAmount: a.Update.OriginalAmount.GetOr(existing.OriginalAmount),
		InterestRate:   a.Update.InterestRate.GetOr(existing.InterestRate),
		MonthlyPayment: a.Update.MonthlyPayment.GetOr(existing.MonthlyPayment),
		StartDate:      a.Update.StartDate.GetOr(existing.StartDate),
		EndDate:        existing.EndDate,
	}
	if end, ok := a.Update.EndDate.Get(); ok {
		terms.EndDate = &end
	} else if a.Update.EndDate.IsNull() {
		terms.EndDate = nil
	}
	if err := domain.CheckCredit(terms, true, false, a.Today); err != nil {
		return err
	}

	updated, err := writer.Credits.Update(ctx, a.ID, &a.Update)
	if err != nil {
		return err
	}
	if updated == nil {
		return apperr.NotFound("Credit", a.ID)
	}

	a.Updated = updated
	return nil
}

func (a *UpdateCredit) normalize() {
	if v, ok := a.Update.OriginalAmount.Get(); ok {
		a.Update.OriginalAmount = omit.From(domain.Money(v))
	}
	if v, ok := a.Update.InterestRate.Get(); ok {
		a.Update.InterestRate = omit.From(domain.Money(v))
	}
	if v, ok := a.Update.MonthlyPayment.Get(); ok {
		a.Update.MonthlyPayment = omit.From(domain.Money(v))
	}
	if v, ok := a.Update.StartDate.Get(); ok {
		a.Update.StartDate = omit.From(domain.Day(v))
	}
	if v, ok := a.Update.EndDate.Get(); ok {
		a.Update.EndDate = omitnull.From(domain.Day(v))
	}
}

// DeleteCredit refuses while transactions reference the credit. Linked documents lose their link.
type DeleteCredit struct {
	ID uuid.UUID
}

func (a *DeleteCredit) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Credits.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Credit", a.ID)
	}

	transactions, err := writer.Transactions.CountByCredit(ctx, a.ID)
	if err != nil {
		return err
	}
	if transactions > 0 {
		return apperr.ForeignKey("Credit", "transactions",
			"Cannot delete credit with %d linked transactions", transactions).
			WithDetail("transactions", transactions)
	}

	if _, err := writer.Documents.ClearCreditLink(ctx, a.ID); err != nil {
		return err
	}

	deleted, err := writer.Credits.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Credit", a.ID)
	}
	return nil
}
