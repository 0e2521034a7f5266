package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/operator/actions"
	"github.com/carson-networks/property-ledger/internal/storage/credit"
	"github.com/carson-networks/property-ledger/internal/storage/document"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

// detailPage bounds each list embedded in a property detail.
var detailPage = sqlconfig.Page{Limit: sqlconfig.MaxLimit}

// PropertyService handles property business logic.
type PropertyService struct {
	deps
}

func (s *PropertyService) List(ctx context.Context, page sqlconfig.Page) ([]Property, error) {
	rows, err := s.storage.Read().Properties.List(ctx, page.Normalize())
	if err != nil {
		return nil, err
	}

	properties := make([]Property, len(rows))
	for i, row := range rows {
		properties[i] = propertyFromStorage(row)
	}
	return properties, nil
}

// Get returns the property with its credits, transactions and documents.
func (s *PropertyService) Get(ctx context.Context, id uuid.UUID) (*PropertyDetail, error) {
	reader := s.storage.Read()

	row, err := reader.Properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound("Property", id)
	}

	detail := &PropertyDetail{Property: propertyFromStorage(row)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		credits, err := listCredits(gctx, reader.Credits, reader.Transactions, &credit.CreditFilter{PropertyID: &id})
		detail.Credits = credits
		return err
	})
	g.Go(func() error {
		rows, err := reader.Transactions.List(gctx, &transaction.TransactionFilter{PropertyID: &id, Page: detailPage})
		detail.Transactions = transactionsFromStorage(rows)
		return err
	})
	g.Go(func() error {
		rows, err := reader.Documents.List(gctx, &document.DocumentFilter{PropertyID: &id, Page: detailPage})
		detail.Documents = documentsFromStorage(rows)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// Summary computes the property's totals. The sums run concurrently, each in its own read.
func (s *PropertyService) Summary(ctx context.Context, id uuid.UUID) (*PropertySummary, error) {
	reader := s.storage.Read()

	row, err := reader.Properties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperr.NotFound("Property", id)
	}

	var totals domain.PropertyTotals
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals.Income, err = reader.Transactions.SumByType(gctx, id, domain.TransactionTypeIncome)
		return err
	})
	g.Go(func() (err error) {
		totals.Expenses, err = reader.Transactions.SumByType(gctx, id, domain.TransactionTypeExpense)
		return err
	})
	g.Go(func() (err error) {
		totals.CreditPrincipal, err = reader.Credits.SumOriginalAmount(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		totals.CreditPayments, err = reader.Transactions.SumCreditPayments(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		totals.DocumentCount, err = reader.Documents.CountByProperty(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := domain.Summarize(totals)
	return &PropertySummary{
		PropertyID:         id,
		TotalIncome:        summary.TotalIncome,
		TotalExpenses:      summary.TotalExpenses,
		Balance:            summary.Balance,
		TotalCreditBalance: summary.TotalCreditBalance,
		DocumentCount:      summary.DocumentCount,
	}, nil
}

func (s *PropertyService) Create(ctx context.Context, p NewProperty) (*Property, error) {
	action := &actions.CreateProperty{
		Name:          p.Name,
		Address:       p.Address,
		PurchaseDate:  p.PurchaseDate,
		PurchasePrice: p.PurchasePrice,
		Notes:         p.Notes,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	created := propertyFromStorage(action.Created)
	return &created, nil
}

func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, changes PropertyChanges) (*Property, error) {
	action := &actions.UpdateProperty{ID: id, Update: changes}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	updated := propertyFromStorage(action.Updated)
	return &updated, nil
}

func (s *PropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteProperty{ID: id})
}
