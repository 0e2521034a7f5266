// Package params converts between the API's string representations and the service types:
// UUID strings, two-decimal money strings and YYYY-MM-DD dates.
package params

import (
	"reflect"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/storage/sqlconfig"
)

const DateLayout = "2006-01-02"

// Page is the skip/limit query pair shared by the list operations.
type Page struct {
	Skip  int `query:"skip" minimum:"0" default:"0" doc:"Number of items to skip"`
	Limit int `query:"limit" minimum:"1" maximum:"500" default:"100" doc:"Maximum number of items to return"`
}

func (p Page) Storage() sqlconfig.Page {
	return sqlconfig.Page{Skip: p.Skip, Limit: p.Limit}
}

func ID(field, value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, apperr.Validation("Invalid identifier").WithDetail("field", field).WithDetail("value", value)
	}
	return id, nil
}

// OptionalID parses value, treating the empty string as absent.
func OptionalID(field, value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := ID(field, value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func Money(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, apperr.Validation("Invalid amount").WithDetail("field", field).WithDetail("value", value)
	}
	return amount, nil
}

func OptionalMoney(field string, value *string) (*decimal.Decimal, error) {
	if value == nil {
		return nil, nil
	}
	amount, err := Money(field, *value)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

func Date(field, value string) (time.Time, error) {
	day, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperr.Validation("Invalid date").WithDetail("field", field).WithDetail("value", value)
	}
	return day, nil
}

// OptionalDate parses value, treating nil and the empty string as absent.
func OptionalDate(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	day, err := Date(field, *value)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

// Omit lifts an optional request field into an update field. Nil leaves the column unchanged.
func Omit[T any](value *T) omit.Val[T] {
	if value == nil {
		return omit.Val[T]{}
	}
	return omit.From(*value)
}

// Nullable is an update field that tells an absent value apart from an explicit null.
// Absent keeps the stored value, null clears it.
type Nullable[T any] struct {
	omitnull.Val[T]
}

// Schema describes the field as its value type. Tags on the field still apply.
func (Nullable[T]) Schema(r huma.Registry) *huma.Schema {
	var zero T
	s := r.Schema(reflect.TypeOf(zero), true, "")
	s.Nullable = true
	return s
}

func NullableID(field string, value Nullable[string]) (omitnull.Val[uuid.UUID], error) {
	return parseNullable(value, func(v string) (uuid.UUID, error) { return ID(field, v) })
}

func NullableMoney(field string, value Nullable[string]) (omitnull.Val[decimal.Decimal], error) {
	return parseNullable(value, func(v string) (decimal.Decimal, error) { return Money(field, v) })
}

func NullableDate(field string, value Nullable[string]) (omitnull.Val[time.Time], error) {
	return parseNullable(value, func(v string) (time.Time, error) { return Date(field, v) })
}

func parseNullable[A, B any](value Nullable[A], parse func(A) (B, error)) (omitnull.Val[B], error) {
	v, ok := value.Get()
	if !ok {
		if value.IsNull() {
			return omitnull.FromPtr[B](nil), nil
		}
		return omitnull.Val[B]{}, nil
	}
	parsed, err := parse(v)
	if err != nil {
		return omitnull.Val[B]{}, err
	}
	return omitnull.From(parsed), nil
}

func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func FormatOptionalMoney(amount *decimal.Decimal) *string {
	if amount == nil {
		return nil
	}
	formatted := FormatMoney(*amount)
	return &formatted
}

func FormatDate(day time.Time) string {
	return day.Format(DateLayout)
}

func FormatOptionalDate(day *time.Time) *string {
	if day == nil {
		return nil
	}
	formatted := FormatDate(*day)
	return &formatted
}

func FormatOptionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	formatted := id.String()
	return &formatted
}
