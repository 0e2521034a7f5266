package sqlconfig

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/carson-networks/property-ledger/internal/apperr"
)

const (
	foreignKeyViolation = pq.ErrorCode("23503")
	uniqueViolation     = pq.ErrorCode("23505")
	notNullViolation    = pq.ErrorCode("23502")
	numericOutOfRange   = pq.ErrorCode("22003")
	integrityClass      = pq.ErrorClass("23")
)

// TranslateError maps a driver error to an *apperr.Error. Constraint violations become client errors;
// anything else is a PersistenceFailure for operation, with the driver error kept only as the cause.
func TranslateError(operation string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return apperr.Persistence(operation, err)
	}

	var translated *apperr.Error
	switch {
	case pqErr.Code == foreignKeyViolation:
		translated = &apperr.Error{Kind: apperr.KindForeignKey, Message: "Referenced resource does not exist"}
	case pqErr.Code == uniqueViolation:
		translated = apperr.BusinessRule("Resource with this identifier already exists")
	case pqErr.Code == notNullViolation:
		translated = apperr.BusinessRule("Required field is missing")
	case pqErr.Code == numericOutOfRange:
		translated = apperr.BusinessRule("Numeric value out of range")
	case pqErr.Code.Class() == integrityClass:
		translated = apperr.BusinessRule("Database constraint violation")
	default:
		return apperr.Persistence(operation, err)
	}

	translated.Err = err
	if pqErr.Table != "" {
		translated.WithDetail("table", pqErr.Table)
	}
	if pqErr.Constraint != "" {
		translated.WithDetail("constraint", pqErr.Constraint)
	}
	return translated
}

// IsNoRows reports whether err means a single-row query matched nothing.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
