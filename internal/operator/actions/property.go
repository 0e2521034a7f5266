package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/storage"
	"github.com/carson-networks/property-ledger/internal/storage/property"
)

type CreateProperty struct {
	Name          string
	Address       string
	PurchaseDate  *time.Time
	PurchasePrice *decimal.Decimal
	Notes         *string

	Created *property.Property
}

func (a *CreateProperty) Perform(ctx context.Context, writer *storage.Writer) error {
	a.PurchasePrice = moneyPtr(a.PurchasePrice)
	if err := domain.CheckProperty(a.PurchasePrice); err != nil {
		return err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return apperr.Internal(err)
	}

	created, err := writer.Properties.Insert(ctx, &property.PropertyCreate{
		ID:            id,
		Name:          a.Name,
		Address:       a.Address,
		PurchaseDate:  dayPtr(a.PurchaseDate),
		PurchasePrice: a.PurchasePrice,
		Notes:         a.Notes,
	})
	if err != nil {
		return err
	}

	a.Created = created
	return nil
}

type UpdateProperty struct {
	ID     uuid.UUID
	Update property.PropertyUpdate

	Updated *property.Property
}

func (a *UpdateProperty) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Properties.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Property", a.ID)
	}

	if price, ok := a.Update.PurchasePrice.Get(); ok {
		price = domain.Money(price)
		if err := domain.CheckProperty(&price); err != nil {
			return err
		}
		a.Update.PurchasePrice = omitnull.From(price)
	}
	if date, ok := a.Update.PurchaseDate.Get(); ok {
		a.Update.PurchaseDate = omitnull.From(domain.Day(date))
	}

	updated, err := writer.Properties.Update(ctx, a.ID, &a.Update)
	if err != nil {
		return err
	}
	if updated == nil {
		return apperr.NotFound("Property", a.ID)
	}

	a.Updated = updated
	return nil
}

// DeleteProperty refuses while credits, transactions or documents still reference the property.
type DeleteProperty struct {
	ID uuid.UUID
}

func (a *DeleteProperty) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Properties.FindByIDForUpdate(ctx, a.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperr.NotFound("Property", a.ID)
	}

	credits, err := writer.Credits.CountByProperty(ctx, a.ID)
	if err != nil {
		return err
	}
	transactions, err := writer.Transactions.CountByProperty(ctx, a.ID)
	if err != nil {
		return err
	}
	documents, err := writer.Documents.CountByProperty(ctx, a.ID)
	if err != nil {
		return err
	}

	if credits+transactions+documents > 0 {
		return apperr.ForeignKey("Property", "credits, transactions, documents",
			"Cannot delete property with %d credits, %d transactions and %d documents",
			credits, transactions, documents).
			WithDetail("credits", credits).
			WithDetail("transactions", transactions).
			WithDetail("documents", documents)
	}

	deleted, err := writer.Properties.Delete(ctx, a.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("Property", a.ID)
	}
	return nil
}

func dayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	day := domain.Day(*t)
	return &day
}

func moneyPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	rounded := domain.Money(*d)
	return &rounded
}
