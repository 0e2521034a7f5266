package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/storage"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

type CreateTransaction struct {
	PropertyID  uuid.UUID
	CreditID    *uuid.UUID
	Date        time.Time
	Type        domain.TransactionType
	Category    domain.TransactionCategory
	Amount      decimal.Decimal
	Description *string
	Recurring   bool
	Today       time.Time

	Created *transaction.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	prop, err := writer.Properties.FindByID(ctx, a.PropertyID)
	if err != nil {
		return err
	}
	creditLink, err := findCreditLink(ctx, writer, a.CreditID)
	if err != nil {
		return err
	}

	fields := domain.TransactionFields{
		PropertyID: a.PropertyID,
		CreditID:   a.CreditID,
		Date:       domain.Day(a.Date),
		Type:       a.Type,
		Category:   a.Category,
		Amount:     domain.Money(a.Amount),
	}
	if err := domain.CheckTransaction(fields, prop != nil, creditLink, a.Today); err != nil {
		return err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return apperr.Internal(err)
	}

	created, err := writer.Transactions.Insert(ctx, &transaction.TransactionCreate{
		ID:          id,
		PropertyID:  fields.PropertyID,
		CreditID:    fields.CreditID,
		Date:        fields.Date,
		Type:        fields.Type,
		Category:    fields.Category,
		Amount:      fields.Amount,
		Description: a.Description,
		Recurring:   a.Recurring,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}

type UpdateTransaction struct {
	ID     uuid.UUID
	Update transaction.TransactionUpdate
	Today  time.Time

	Updated *transaction.Transaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Transaction", a.ID)
	}

	if v, ok := a.Update.Amount.Get(); ok {
		a.Update.Amount = omit.From(domain.Money(v))
	}
	if v, ok := a.Update.Date.Get(); ok {
		a.Update.Date = omit.From(domain.Day(v))
	}

	fields := domain.TransactionFields{
		PropertyID: existing.PropertyID,
		CreditID:   existing.CreditID,
		Date:       a.Update.Date.GetOr(existing.Date),
		Type:       a.Update.Type.GetOr(existing.Type),
		Category:   a.Update.Category.GetOr(existing.Category),
		Amount:     a.Update.Amount.GetOr(existing.Amount),
	}
	if creditID, ok := a.Update.CreditID.Get(); ok {
		fields.CreditID = &creditID
	} else if a.Update.CreditID.IsNull() {
		fields.CreditID = nil
	}

	creditLink, err := findCreditLink(ctx, writer, fields.CreditID)
	if err != nil {
		return err
	}
	if err := domain.CheckTransaction(fields, true, creditLink, a.Today); err != nil {
		return err
	}

	updated, err := writer.Transactions.Update(ctx, a.ID, &a.Update)
	if err != nil {
		return err
	}
	if updated == nil {
		return apperr.NotFound("Transaction", a.ID)
	}

	a.Updated = updated
	return nil
}

// DeleteTransaction always succeeds for an existing transaction. Linked documents lose their link.
type DeleteTransaction struct {
	ID uuid.UUID
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Transaction", a.ID)
	}

	if _, err := writer.Documents.ClearTransactionLink(ctx, a.ID); err != nil {
		return err
	}

	deleted, err := writer.Transactions.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Transaction", a.ID)
	}
	return nil
}

func findCreditLink(ctx context.Context, writer *storage.Writer, id *uuid.UUID) (*domain.Link, error) {
	if id == nil {
		return nil, nil
	}
	row, err := writer.Credits.FindByID(ctx, *id)
	if err != nil || row == nil {
		return nil, err
	}
	return &domain.Link{ID: row.ID, PropertyID: row.PropertyID}, nil
}

func findTransactionLink(ctx context.Context, writer *storage.Writer, id *uuid.UUID) (*domain.Link, error) {
	if id == nil {
		return nil, nil
	}
	row, err := writer.Transactions.FindByID(ctx, *id)
	if err != nil || row == nil {
		return nil, err
	}
	return &domain.Link{ID: row.ID, PropertyID: row.PropertyID}, nil
}
