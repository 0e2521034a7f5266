package property

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aarondl/opt/omitnull"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/domain"
	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/i18n"
	"github.com/carson-networks/property-ledger/internal/service"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

type mockPropertyService struct {
	mock.Mock
}

func (m *mockPropertyService) List(ctx context.Context, page sqlconfig.Page) ([]service.Property, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Property), args.Error(1)
}

func (m *mockPropertyService) Get(ctx context.Context, id uuid.UUID) (*service.PropertyDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PropertyDetail), args.Error(1)
}

func (m *mockPropertyService) Summary(ctx context.Context, id uuid.UUID) (*service.PropertySummary, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PropertySummary), args.Error(1)
}

func (m *mockPropertyService) Create(ctx context.Context, p service.NewProperty) (*service.Property, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Property), args.Error(1)
}

func (m *mockPropertyService) Update(ctx context.Context, id uuid.UUID, changes service.PropertyChanges) (*service.Property, error) {
	args := m.Called(ctx, id, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Property), args.Error(1)
}

func (m *mockPropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newTestAPI(t *testing.T, svc *mockPropertyService) humatest.TestAPI {
	t.Helper()
	config := huma.DefaultConfig("test", "1.0.0")
	httperr.Configure(&config, i18n.NewTranslator("en"))
	_, api := humatest.New(t, config)

	NewListPropertiesHandler(svc).Register(api)
	NewGetPropertyHandler(svc).Register(api)
	NewPropertySummaryHandler(svc).Register(api)
	NewCreatePropertyHandler(svc).Register(api)
	NewUpdatePropertyHandler(svc).Register(api)
	NewDeletePropertyHandler(svc).Register(api)
	return api
}

func sampleProperty() *service.Property {
	purchased := time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(350000)
	return &service.Property{
		ID:            uuid.Must(uuid.NewV4()),
		Name:          "Haus am See",
		Address:       "Seestraße 1, 14467 Potsdam",
		PurchaseDate:  &purchased,
		PurchasePrice: &price,
		CreatedAt:     time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func decodeMap(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHTTP_CreateProperty(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)
	created := sampleProperty()

	svc.On("Create", mock.Anything, mock.MatchedBy(func(p service.NewProperty) bool {
		return p.Name == "Haus am See" &&
			p.PurchaseDate != nil && p.PurchaseDate.Equal(*created.PurchaseDate) &&
			p.PurchasePrice != nil && p.PurchasePrice.Equal(decimal.NewFromInt(350000)) &&
			p.Notes == nil
	})).Return(created, nil)

	resp := api.Post("/properties", map[string]any{
		"name":           "Haus am See",
		"address":        "Seestraße 1, 14467 Potsdam",
		"purchase_date":  "2019-05-01",
		"purchase_price": "350000",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	body := decodeMap(t, resp.Body.Bytes())
	assert.Equal(t, created.ID.String(), body["id"])
	assert.Equal(t, "350000.00", body["purchase_price"])
	assert.Equal(t, "2019-05-01", body["purchase_date"])
	assert.Nil(t, body["notes"])
	assert.Equal(t, "2024-03-01T08:00:00Z", body["created_at"])
	svc.AssertExpectations(t)
}

func TestHTTP_CreateProperty_SchemaValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "empty name", body: map[string]any{"name": "", "address": "Seestraße 1"}},
		{name: "missing address", body: map[string]any{"name": "Haus am See"}},
		{name: "malformed price", body: map[string]any{"name": "Haus", "address": "Seestraße 1", "purchase_price": "1.000,00"}},
		{name: "malformed date", body: map[string]any{"name": "Haus", "address": "Seestraße 1", "purchase_date": "01.05.2019"}},
		{name: "price above column range", body: map[string]any{"name": "Haus", "address": "Seestraße 1", "purchase_price": "12345678901"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockPropertyService)
			api := newTestAPI(t, svc)

			resp := api.Post("/properties", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			assert.Equal(t, "ValidationFailure", decodeMap(t, resp.Body.Bytes())["error_type"])
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestHTTP_CreateProperty_NegativePrice(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)

	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, apperr.BusinessRule("Purchase price must not be negative").WithDetail("field", "purchase_price"))

	resp := api.Post("/properties", map[string]any{
		"name":           "Haus am See",
		"address":        "Seestraße 1",
		"purchase_price": "-1",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "BusinessRuleViolation", decodeMap(t, resp.Body.Bytes())["error_type"])
}

func TestHTTP_ListProperties_Paging(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)
	p := sampleProperty()

	svc.On("List", mock.Anything, sqlconfig.Page{Skip: 10, Limit: 5}).Return([]service.Property{*p}, nil)

	resp := api.Get("/properties?skip=10&limit=5")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Haus am See", body[0]["name"])
	svc.AssertExpectations(t)
}

func TestHTTP_ListProperties_Defaults(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)

	svc.On("List", mock.Anything, sqlconfig.Page{Skip: 0, Limit: 100}).Return([]service.Property{}, nil)

	resp := api.Get("/properties")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_ListProperties_LimitTooLarge(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)

	resp := api.Get("/properties?limit=501")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestHTTP_GetProperty_Detail(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)
	p := sampleProperty()
	creditID := uuid.Must(uuid.NewV4())

	svc.On("Get", mock.Anything, p.ID).Return(&service.PropertyDetail{
		Property: *p,
		Credits: []service.Credit{{
			ID:             creditID,
			PropertyID:     p.ID,
			Name:           "Sparkasse",
			OriginalAmount: decimal.NewFromInt(1000),
			InterestRate:   decimal.RequireFromString("3.5"),
			MonthlyPayment: decimal.NewFromInt(100),
			StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CurrentBalance: decimal.NewFromInt(900),
		}},
		Transactions: []service.Transaction{{
			ID:         uuid.Must(uuid.NewV4()),
			PropertyID: p.ID,
			CreditID:   &creditID,
			Date:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			Type:       domain.TransactionTypeExpense,
			Category:   domain.CategoryLoanPayment,
			Amount:     decimal.NewFromInt(100),
		}},
		Documents: []service.Document{},
	}, nil)

	resp := api.Get("/properties/" + p.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	body := decodeMap(t, resp.Body.Bytes())
	assert.Equal(t, p.ID.String(), body["id"])
	credits := body["credits"].([]any)
	require.Len(t, credits, 1)
	assert.Equal(t, "900.00", credits[0].(map[string]any)["current_balance"])
	transactions := body["transactions"].([]any)
	require.Len(t, transactions, 1)
	assert.Equal(t, creditID.String(), transactions[0].(map[string]any)["credit_id"])
	assert.Empty(t, body["documents"])
}

func TestHTTP_GetProperty_NotFound(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)
	id := uuid.Must(uuid.NewV4())

	svc.On("Get", mock.Anything, id).Return(nil, apperr.NotFound("Property", id))

	resp := api.Get("/properties/"+id.String(), "Accept-Language: de-DE")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	body := decodeMap(t, resp.Body.Bytes())
	assert.Equal(t, "Immobilie nicht gefunden", body["detail"])
	assert.Equal(t, "ResourceNotFound", body["error_type"])
}

func TestHTTP_PropertySummary(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)
	id := uuid.Must(uuid.NewV4())

	svc.On("Summary", mock.Anything, id).Return(&service.PropertySummary{
		PropertyID:         id,
		TotalIncome:        decimal.NewFromInt(1200),
		TotalExpenses:      decimal.RequireFromString("450.5"),
		Balance:            decimal.RequireFromString("749.5"),
		TotalCreditBalance: decimal.NewFromInt(900),
		DocumentCount:      2,
	}, nil)

	resp := api.Get("/properties/" + id.String() + "/summary")

	assert.Equal(t, http.StatusOK, resp.Code)
	body := decodeMap(t, resp.Body.Bytes())
	assert.Equal(t, id.String(), body["property_id"])
	assert.Equal(t, "1200.00", body["total_income"])
	assert.Equal(t, "450.50", body["total_expenses"])
	assert.Equal(t, "749.50", body["balance"])
	assert.Equal(t, "900.00", body["total_credit_balance"])
	assert.Equal(t, float64(2), body["document_count"])
}

func TestHTTP_UpdateProperty(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)
	updated := sampleProperty()
	updated.Name = "Haus am Wald"

	svc.On("Update", mock.Anything, updated.ID, mock.MatchedBy(func(c service.PropertyChanges) bool {
		name, ok := c.Name.Get()
		return ok && name == "Haus am Wald" &&
			c.Address.IsUnset() &&
			c.PurchasePrice.IsNull() &&
			c.PurchaseDate.IsUnset() &&
			c.Notes.IsNull()
	})).Return(updated, nil)

	resp := api.Put("/properties/"+updated.ID.String(), map[string]any{
		"name":           "Haus am Wald",
		"address":        nil,
		"purchase_price": nil,
		"notes":          nil,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Haus am Wald", decodeMap(t, resp.Body.Bytes())["name"])
	svc.AssertExpectations(t)
}

func TestParseUpdatePropertyInput(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	date := "2020-10-01"
	price := "199999.99"

	gotID, changes, err := parseUpdatePropertyInput(&UpdatePropertyInput{
		PropertyPath: PropertyPath{ID: id.String()},
		Body: UpdatePropertyBody{
			PurchaseDate:  params.Nullable[string]{Val: omitnull.From(date)},
			PurchasePrice: params.Nullable[string]{Val: omitnull.From(price)},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	purchased, ok := changes.PurchaseDate.Get()
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, 10, 1, 0, 0, 0, 0, time.UTC), purchased)
	amount, ok := changes.PurchasePrice.Get()
	require.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("199999.99")))
	assert.False(t, changes.Name.IsValue())
	assert.True(t, changes.Notes.IsUnset())

	_, changes, err = parseUpdatePropertyInput(&UpdatePropertyInput{
		PropertyPath: PropertyPath{ID: id.String()},
		Body:         UpdatePropertyBody{PurchaseDate: params.Nullable[string]{Val: omitnull.FromPtr[string](nil)}},
	})
	require.NoError(t, err)
	assert.True(t, changes.PurchaseDate.IsNull())
	assert.True(t, changes.PurchasePrice.IsUnset())

	_, _, err = parseUpdatePropertyInput(&UpdatePropertyInput{PropertyPath: PropertyPath{ID: "42"}})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestHTTP_DeleteProperty(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)
	id := uuid.Must(uuid.NewV4())

	svc.On("Delete", mock.Anything, id).Return(nil)

	resp := api.Delete("/properties/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_DeleteProperty_HasDependents(t *testing.T) {
	svc := new(mockPropertyService)
	api := newTestAPI(t, svc)
	id := uuid.Must(uuid.NewV4())

	svc.On("Delete", mock.Anything, id).Return(apperr.ForeignKey("Property", "credits, transactions, documents",
		"Cannot delete property with %d credits, %d transactions and %d documents", 1, 2, 0))

	resp := api.Delete("/properties/" + id.String())

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	body := decodeMap(t, resp.Body.Bytes())
	assert.Equal(t, "ForeignKeyConstraint", body["error_type"])
	assert.Equal(t, "Cannot delete property with 1 credits, 2 transactions and 0 documents", body["detail"])
}
