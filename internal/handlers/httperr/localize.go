package httperr

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/property-ledger/internal/apperr"
	"github.com/carson-networks/property-ledger/internal/i18n"
	"github.com/carson-networks/property-ledger/internal/logging"
)

// Configure installs NewError and puts Localize ahead of the configured transformers, which may
// replace the body with a copy of another type.
func Configure(config *huma.Config, translator *i18n.Translator) {
	Install()
	config.Transformers = append([]huma.Transformer{Localize(translator)}, config.Transformers...)
}

// Localize is a huma transformer that translates error bodies for the request's Accept-Language,
// stamps the request id and hands the cause to the request log.
func Localize(translator *i18n.Translator) huma.Transformer {
	return func(ctx huma.Context, status string, v any) (any, error) {
		body, ok := v.(*ErrorBody)
		if !ok {
			return v, nil
		}
		finish(ctx.Context(), translator, ctx.Header("Accept-Language"), body)
		return body, nil
	}
}

// Recoverer turns a panic below it into the generic internal error response.
func Recoverer(translator *i18n.Translator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logging.AddData(req.Context(), "stack", string(debug.Stack()))
			body := fromAppError(apperr.Internal(fmt.Errorf("panic: %v", rec)))
			finish(req.Context(), translator, req.Header.Get("Accept-Language"), body)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(body.status)
			_ = json.NewEncoder(w).Encode(body)
		}()

		next.ServeHTTP(w, req)
	})
}

func finish(ctx context.Context, translator *i18n.Translator, acceptLanguage string, body *ErrorBody) {
	locale := translator.Locale(acceptLanguage)
	body.Detail = translator.Translate(locale, body.message, body.args...)
	body.RequestID = logging.RequestID(ctx)

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("errorType", body.ErrorType)
		if body.cause != nil {
			logData.AddError(body.cause)
		}
	}
}
