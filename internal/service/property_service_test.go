package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/operator/actions"
	"github.com/carson-networks/property-ledger/internal/storage/credit"
	"github.com/carson-networks/property-ledger/internal/storage/document"
	"github.com/carson-networks/property-ledger/internal/storage/property"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
	"github.com/carson-networks/property-ledger/internal/storage/transaction"
)

func TestPropertySummary(t *testing.T) {
	svc, r, _, _ := newTestService(t)
	id := newID()
	r.properties.On("FindByID", mock.Anything, id).Return(&property.Property{ID: id}, nil)
	r.transactions.On("SumByType", mock.Anything, id, domain.TransactionTypeIncome).Return(dec("1500"), nil)
	r.transactions.On("SumByType", mock.Anything, id, domain.TransactionTypeExpense).Return(dec("300"), nil)
	r.credits.On("SumOriginalAmount", mock.Anything, id).Return(dec("1000"), nil)
	r.transactions.On("SumCreditPayments", mock.Anything, id).Return(dec("100"), nil)
	r.documents.On("CountByProperty", mock.Anything, id).Return(int64(2), nil)

	summary, err := svc.Properties.Summary(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, summary.PropertyID)
	assert.True(t, summary.TotalIncome.Equal(dec("1500")))
	assert.True(t, summary.TotalExpenses.Equal(dec("300")))
	assert.True(t, summary.Balance.Equal(dec("1200")))
	assert.True(t, summary.TotalCreditBalance.Equal(dec("900")))
	assert.Equal(t, int64(2), summary.DocumentCount)
}

func TestPropertySummary_NotFound(t *testing.T) {
	svc, r, _, _ := newTestService(t)
	id := newID()
	r.properties.On("FindByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.Properties.Summary(context.Background(), id)

	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestPropertySummary_ReadFailure(t *testing.T) {
	svc, r, _, _ := newTestService(t)
	id := newID()
	failure := apperr.Persistence("sum transactions.amount", errors.New("timeout"))
	r.properties.On("FindByID", mock.Anything, id).Return(&property.Property{ID: id}, nil)
	r.transactions.On("SumByType", mock.Anything, id, mock.Anything).Return(dec("0"), failure).Maybe()
	r.credits.On("SumOriginalAmount", mock.Anything, id).Return(dec("0"), nil).Maybe()
	r.transactions.On("SumCreditPayments", mock.Anything, id).Return(dec("0"), nil).Maybe()
	r.documents.On("CountByProperty", mock.Anything, id).Return(int64(0), nil).Maybe()

	_, err := svc.Properties.Summary(context.Background(), id)

	assert.True(t, apperr.Is(err, apperr.KindPersistence))
}

func TestPropertyGet_Detail(t *testing.T) {
	svc, r, _, _ := newTestService(t)
	id, creditID := newID(), newID()
	r.properties.On("FindByID", mock.Anything, id).Return(&property.Property{ID: id, Name: "Altbau"}, nil)
	r.credits.On("List", mock.Anything, &credit.CreditFilter{PropertyID: &id}).
		Return([]*credit.Credit{{ID: creditID, PropertyID: id, OriginalAmount: dec("1000")}}, nil)
	r.transactions.On("SumByCredit", mock.Anything, []uuid.UUID{creditID}).
		Return(map[uuid.UUID]decimal.Decimal{creditID: dec("100")}, nil)
	r.transactions.On("List", mock.Anything, mock.MatchedBy(func(f *transaction.TransactionFilter) bool {
		return *f.PropertyID == id && f.Page.Limit == sqlconfig.MaxLimit
	})).Return([]*transaction.Transaction{{ID: newID(), PropertyID: id}}, nil)
	r.documents.On("List", mock.Anything, mock.MatchedBy(func(f *document.DocumentFilter) bool {
		return *f.PropertyID == id
	})).Return([]*document.Document{}, nil)

	detail, err := svc.Properties.Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "Altbau", detail.Name)
	require.Len(t, detail.Credits, 1)
	assert.True(t, detail.Credits[0].CurrentBalance.Equal(dec("900")))
	assert.Len(t, detail.Transactions, 1)
	assert.NotNil(t, detail.Documents)
	assert.Empty(t, detail.Documents)
}

func TestPropertyList_NormalizesPage(t *testing.T) {
	svc, r, _, _ := newTestService(t)
	r.properties.On("List", mock.Anything, sqlconfig.Page{Skip: 0, Limit: sqlconfig.MaxLimit}).
		Return([]*property.Property{{ID: newID()}, {ID: newID()}}, nil)

	properties, err := svc.Properties.List(context.Background(), sqlconfig.Page{Skip: -3, Limit: 10000})

	require.NoError(t, err)
	assert.Len(t, properties, 2)
}

func TestPropertyCreate(t *testing.T) {
	svc, _, op, _ := newTestService(t)
	created := &property.Property{ID: newID(), Name: "Neubau", Address: "Hauptstraße 1"}
	op.On("Process", mock.Anything, mock.AnythingOfType("*actions.CreateProperty")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.CreateProperty)
			assert.Equal(t, "Neubau", action.Name)
			action.Created = created
		}).
		Return(nil)

	got, err := svc.Properties.Create(context.Background(), NewProperty{Name: "Neubau", Address: "Hauptstraße 1"})

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestPropertyDelete_PassesError(t *testing.T) {
	svc, _, op, _ := newTestService(t)
	id := newID()
	refused := apperr.ForeignKey("Property", "credits, transactions, documents", "Cannot delete property with %d credits, %d transactions and %d documents", 1, 0, 0)
	op.On("Process", mock.Anything, &actions.DeleteProperty{ID: id}).Return(refused)

	err := svc.Properties.Delete(context.Background(), id)

	assert.Same(t, refused, err)
}
