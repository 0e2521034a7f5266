package property

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/service"
)

// CreatePropertyBody is the request body for creating a property.
type CreatePropertyBody struct {
	Name          string  `json:"name" minLength:"1" maxLength:"100" doc:"Property name"`
	Address       string  `json:"address" minLength:"1" maxLength:"255" doc:"Street address"`
	PurchaseDate  *string `json:"purchase_date,omitempty" format:"date" nullable:"true" doc:"Purchase date"`
	PurchasePrice *string `json:"purchase_price,omitempty" pattern:"^-?[0-9]{1,10}(\\.[0-9]+)?$" nullable:"true" doc:"Purchase price, not negative"`
	Notes         *string `json:"notes,omitempty" maxLength:"1000" nullable:"true" doc:"Free-form notes"`
}

type CreatePropertyInput struct {
	Body CreatePropertyBody
}

type propertyCreator interface {
	Create(ctx context.Context, p service.NewProperty) (*service.Property, error)
}

// CreatePropertyHandler handles POST /properties.
type CreatePropertyHandler struct {
	PropertyService propertyCreator
}

func NewCreatePropertyHandler(svc propertyCreator) *CreatePropertyHandler {
	return &CreatePropertyHandler{PropertyService: svc}
}

func (h *CreatePropertyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-property",
		Method:        http.MethodPost,
		Path:          "/properties",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create property",
		Tags:          []string{"Properties"},
	}, h.handle)
}

func parseCreatePropertyInput(input *CreatePropertyInput) (service.NewProperty, error) {
	p := service.NewProperty{
		Name:    input.Body.Name,
		Address: input.Body.Address,
		Notes:   input.Body.Notes,
	}
	var err error

	if p.PurchaseDate, err = params.OptionalDate("purchase_date", input.Body.PurchaseDate); err != nil {
		return p, err
	}
	if p.PurchasePrice, err = params.OptionalMoney("purchase_price", input.Body.PurchasePrice); err != nil {
		return p, err
	}
	return p, nil
}

func (h *CreatePropertyHandler) handle(ctx context.Context, input *CreatePropertyInput) (*PropertyOutput, error) {
	newProperty, err := parseCreatePropertyInput(input)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	stopTimer := logging.StartTiming(ctx, "createPropertyMs")
	created, err := h.PropertyService.Create(ctx, newProperty)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}

	logging.AddData(ctx, "propertyID", created.ID.String())
	return &PropertyOutput{Body: FromService(*created)}, nil
}
