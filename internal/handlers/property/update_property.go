package property

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/service"
)

// UpdatePropertyBody lists the fields to change. Absent fields keep their value.
// Null clears purchase_date, purchase_price and notes. It keeps name and address.
type UpdatePropertyBody struct {
	Name          *string                 `json:"name,omitempty" minLength:"1" maxLength:"100" nullable:"true"`
	Address       *string                 `json:"address,omitempty" minLength:"1" maxLength:"255" nullable:"true"`
	PurchaseDate  params.Nullable[string] `json:"purchase_date,omitempty" format:"date"`
	PurchasePrice params.Nullable[string] `json:"purchase_price,omitempty" pattern:"^-?[0-9]{1,10}(\\.[0-9]+)?$"`
	Notes         params.Nullable[string] `json:"notes,omitempty" maxLength:"1000"`
}

type UpdatePropertyInput struct {
	PropertyPath
	Body UpdatePropertyBody
}

type propertyUpdater interface {
	Update(ctx context.Context, id uuid.UUID, changes service.PropertyChanges) (*service.Property, error)
}

// UpdatePropertyHandler handles PUT /properties/{id}.
type UpdatePropertyHandler struct {
	PropertyService propertyUpdater
}

func NewUpdatePropertyHandler(svc propertyUpdater) *UpdatePropertyHandler {
	return &UpdatePropertyHandler{PropertyService: svc}
}

func (h *UpdatePropertyHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-property",
		Method:      http.MethodPut,
		Path:        "/properties/{id}",
		Summary:     "Update property",
		Tags:        []string{"Properties"},
	}, h.handle)
}

func parseUpdatePropertyInput(input *UpdatePropertyInput) (uuid.UUID, service.PropertyChanges, error) {
	var changes service.PropertyChanges

	id, err := params.ID("id", input.ID)
	if err != nil {
		return uuid.Nil, changes, err
	}
	changes.PurchaseDate, err = params.NullableDate("purchase_date", input.Body.PurchaseDate)
	if err != nil {
		return uuid.Nil, changes, err
	}
	changes.PurchasePrice, err = params.NullableMoney("purchase_price", input.Body.PurchasePrice)
	if err != nil {
		return uuid.Nil, changes, err
	}

	changes.Name = params.Omit(input.Body.Name)
	changes.Address = params.Omit(input.Body.Address)
	changes.Notes = input.Body.Notes.Val
	return id, changes, nil
}

func (h *UpdatePropertyHandler) handle(ctx context.Context, input *UpdatePropertyInput) (*PropertyOutput, error) {
	id, changes, err := parseUpdatePropertyInput(input)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	logging.AddData(ctx, "propertyID", id.String())

	stopTimer := logging.StartTiming(ctx, "updatePropertyMs")
	updated, err := h.PropertyService.Update(ctx, id, changes)
	stopTimer()
	if err != nil {
		return nil, httperr.FromError(err)
	}
	return &PropertyOutput{Body: FromService(*updated)}, nil
}
