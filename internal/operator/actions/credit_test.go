package actions

import (
	"testing"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/storage/credit"
	"github.com/carson-networks/property-ledger/internal/storage/property"
)

func validCreateCredit(propertyID uuid.UUID) *CreateCredit {
	return &CreateCredit{
		PropertyID:     propertyID,
		Name:           "Sparkasse",
		OriginalAmount: dec("1000"),
		InterestRate:   dec("3.5"),
		MonthlyPayment: dec("1000"),
		StartDate:      date("2025-01-01"),
		Today:          today,
	}
}

func TestCreateCredit_MonthlyPaymentEqualToOriginal(t *testing.T) {
	w, m := newTestWriter(t)
	propertyID := newID()
	stored := &credit.Credit{ID: newID(), PropertyID: propertyID}
	m.properties.On("FindByID", mock.Anything, propertyID).Return(&property.Property{ID: propertyID}, nil)
	m.credits.On("Insert", mock.Anything, mock.MatchedBy(func(c *credit.CreditCreate) bool {
		return c.PropertyID == propertyID && c.MonthlyPayment.Equal(c.OriginalAmount)
	})).Return(stored, nil)

	action := validCreateCredit(propertyID)
	require.NoError(t, action.Perform(ctx, w))
	assert.Same(t, stored, action.Created)
}

func TestCreateCredit_PropertyMissing(t *testing.T) {
	w, m := newTestWriter(t)
	propertyID := newID()
	m.properties.On("FindByID", mock.Anything, propertyID).Return(nil, nil)

	err := validCreateCredit(propertyID).Perform(ctx, w)

	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	m.credits.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateCredit_StartDateInFuture(t *testing.T) {
	w, m := newTestWriter(t)
	propertyID := newID()
	m.properties.On("FindByID", mock.Anything, propertyID).Return(&property.Property{ID: propertyID}, nil)

	action := validCreateCredit(propertyID)
	action.StartDate = today.AddDate(0, 0, 1)

	assert.True(t, apperr.Is(action.Perform(ctx, w), apperr.KindBusinessRule))
}

func TestUpdateCredit_ValidatesMergedValues(t *testing.T) {
	w, m := newTestWriter(t)
	id := newID()
	m.credits.On("FindByIDForUpdate", mock.Anything, id).Return(&credit.Credit{
		ID:             id,
		PropertyID:     newID(),
		OriginalAmount: dec("1000"),
		InterestRate:   dec("2"),
		MonthlyPayment: dec("100"),
		StartDate:      date("2024-01-01"),
	}, nil)

	err := (&UpdateCredit{ID: id, Today: today, Update: credit.CreditUpdate{
		MonthlyPayment: omit.From(dec("1000.01")),
	}}).Perform(ctx, w)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "Monthly payment must not exceed the original amount", appErr.Message)
	m.credits.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateCredit_FutureStartDateAllowed(t *testing.T) {
	w, m := newTestWriter(t)
	id := newID()
	m.credits.On("FindByIDForUpdate", mock.Anything, id).Return(&credit.Credit{
		ID:             id,
		PropertyID:     newID(),
		OriginalAmount: dec("1000"),
		InterestRate:   dec("2"),
		MonthlyPayment: dec("100"),
		StartDate:      date("2024-01-01"),
	}, nil)
	m.credits.On("Update", mock.Anything, id, mock.Anything).Return(&credit.Credit{ID: id}, nil)

	err := (&UpdateCredit{ID: id, Today: today, Update: credit.CreditUpdate{
		StartDate: omit.From(today.AddDate(0, 1, 0)),
	}}).Perform(ctx, w)

	assert.NoError(t, err)
}

func TestUpdateCredit_ClearEndDate(t *testing.T) {
	w, m := newTestWriter(t)
	id := newID()
	m.credits.On("FindByIDForUpdate", mock.Anything, id).Return(&credit.Credit{
		ID:             id,
		PropertyID:     newID(),
		OriginalAmount: dec("1000"),
		InterestRate:   dec("2"),
		MonthlyPayment: dec("100"),
		StartDate:      date("2024-01-01"),
		EndDate:        ptr(date("2024-06-01")),
	}, nil)
	m.credits.On("Update", mock.Anything, id, mock.MatchedBy(func(u *credit.CreditUpdate) bool {
		return u.EndDate.IsNull()
	})).Return(&credit.Credit{ID: id}, nil)

	err := (&UpdateCredit{ID: id, Today: today, Update: credit.CreditUpdate{
		StartDate: omit.From(date("2024-09-01")),
		EndDate:   omitnull.FromPtr[time.Time](nil),
	}}).Perform(ctx, w)

	assert.NoError(t, err)
}

func TestDeleteCredit_RefusedWithTransactions(t *testing.T) {
	w, m := newTestWriter(t)
	id := newID()
	m.credits.On("FindByIDForUpdate", mock.Anything, id).Return(&credit.Credit{ID: id}, nil)
	m.transactions.On("CountByCredit", mock.Anything, id).Return(int64(4), nil)

	err := (&DeleteCredit{ID: id}).Perform(ctx, w)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindForeignKey, appErr.Kind)
	assert.Equal(t, "Cannot delete credit with 4 linked transactions", appErr.Text())
	m.credits.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	m.documents.AssertNotCalled(t, "ClearCreditLink", mock.Anything, mock.Anything)
}

func TestDeleteCredit_ClearsDocumentLinks(t *testing.T) {
	w, m := newTestWriter(t)
	id := newID()
	m.credits.On("FindByIDForUpdate", mock.Anything, id).Return(&credit.Credit{ID: id}, nil)
	m.transactions.On("CountByCredit", mock.Anything, id).Return(int64(0), nil)
	m.documents.On("ClearCreditLink", mock.Anything, id).Return(int64(2), nil)
	m.credits.On("Delete", mock.Anything, id).Return(true, nil)

	assert.NoError(t, (&DeleteCredit{ID: id}).Perform(ctx, w))
}
