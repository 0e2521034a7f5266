// Package httperr renders every failure as the JSON error envelope
// {"detail", "request_id", "error_type", "details"}. Handler errors, huma's own schema and parsing errors
// and recovered panics all end up as an *ErrorBody, which the Localize transformer translates.
package httperr

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/property-ledger/internal/apperr"
)

// ErrorBody is the error response model.
type ErrorBody struct {
	Detail    string              `json:"detail" doc:"Localised error message"`
	RequestID string              `json:"request_id,omitempty" doc:"Id of the failed request, also sent as X-Request-ID"`
	ErrorType string              `json:"error_type" doc:"Error kind, e.g. ResourceNotFound or BusinessRuleViolation"`
	Details   map[string]any      `json:"details,omitempty" doc:"Structured details about the failure"`
	Errors    []*huma.ErrorDetail `json:"errors,omitempty" doc:"Field-level validation errors"`

	status  int
	message string
	args    []any
	cause   error
}

func (e *ErrorBody) Error() string { return e.Detail }

func (e *ErrorBody) GetStatus() int { return e.status }

func (e *ErrorBody) Unwrap() error { return e.cause }

// Message is the untranslated message key.
func (e *ErrorBody) Message() string { return e.message }

// Install makes huma build its own errors as ErrorBody. It is called once while the API is set up.
func Install() {
	huma.NewError = NewError
}

// NewError has the signature of huma.NewError. An *apperr.Error among errs wins over status and msg.
// Server errors never show msg to the client, it is kept as the logged cause instead.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	for _, err := range errs {
		if appErr, ok := apperr.As(err); ok {
			return fromAppError(appErr)
		}
	}

	body := &ErrorBody{
		status:    status,
		message:   msg,
		Detail:    msg,
		ErrorType: string(kindForStatus(status)),
	}

	switch {
	case status >= http.StatusInternalServerError:
		body.message = "Internal server error"
		body.Detail = body.message
		body.cause = errors.Join(append([]error{errors.New(msg)}, errs...)...)
		return body
	case status == http.StatusRequestEntityTooLarge:
		body.message = "File size exceeds maximum allowed size"
		body.Detail = body.message
	case status == http.StatusUnprocessableEntity:
		body.message = "validation failed"
		body.Detail = body.message
	}

	for _, err := range errs {
		if err == nil {
			continue
		}
		var detailer huma.ErrorDetailer
		if errors.As(err, &detailer) {
			body.Errors = append(body.Errors, detailer.ErrorDetail())
			continue
		}
		body.Errors = append(body.Errors, &huma.ErrorDetail{Message: err.Error()})
	}
	return body
}

// FromError converts an error returned by the service layer. Errors that carry no kind become the
// generic internal error. Errors that already carry a status pass through.
func FromError(err error) huma.StatusError {
	if err == nil {
		return nil
	}
	var statusErr huma.StatusError
	if errors.As(err, &statusErr) {
		return statusErr
	}
	appErr, ok := apperr.As(err)
	if !ok {
		appErr = apperr.Internal(err)
	}
	return fromAppError(appErr)
}

// Invalid reports a request value the schema could not check, such as a multipart form field.
func Invalid(location, message string, value any) huma.StatusError {
	return NewError(http.StatusUnprocessableEntity, "validation failed", &huma.ErrorDetail{
		Message:  message,
		Location: location,
		Value:    value,
	})
}

func fromAppError(e *apperr.Error) *ErrorBody {
	return &ErrorBody{
		Detail:    e.Text(),
		ErrorType: string(e.Kind),
		Details:   e.Details,
		status:    e.Status(),
		message:   e.Message,
		args:      e.Args,
		cause:     e,
	}
}

func kindForStatus(status int) apperr.Kind {
	switch {
	case status == http.StatusNotFound:
		return apperr.KindNotFound
	case status == http.StatusRequestEntityTooLarge:
		return apperr.KindBusinessRule
	case status >= http.StatusInternalServerError:
		return apperr.KindInternal
	default:
		return apperr.KindValidation
	}
}
