package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/property-ledger/internal/handlers/credit"
	"github.com/carson-networks/property-ledger/internal/handlers/document"
	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/property"
	"github.com/carson-networks/property-ledger/internal/handlers/status"
	"github.com/carson-networks/property-ledger/internal/handlers/transaction"
	"github.com/carson-networks/property-ledger/internal/i18n"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/observability"
	"github.com/carson-networks/property-ledger/internal/service"
)

const Version = "1.0.0"

type registrar interface {
	Register(api huma.API)
}

type Rest struct {
	Logger       *logrus.Logger
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Service      *service.Service
	Translator   *i18n.Translator
}

// Handler builds the API: the huma operations on a ServeMux, wrapped by tracing, panic recovery and
// the request log, outermost last.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	config := huma.DefaultConfig("Property Ledger", Version)
	config.Info.Description = "Ledger for rental properties: credits, transactions and documents."
	httperr.Configure(&config, r.Translator)
	api := humago.New(mux, config)

	svc := r.Service
	handlers := []registrar{
		status.NewHandler(),

		property.NewListPropertiesHandler(svc.Properties),
		property.NewGetPropertyHandler(svc.Properties),
		property.NewPropertySummaryHandler(svc.Properties),
		property.NewCreatePropertyHandler(svc.Properties),
		property.NewUpdatePropertyHandler(svc.Properties),
		property.NewDeletePropertyHandler(svc.Properties),

		credit.NewListCreditsHandler(svc.Credits),
		credit.NewGetCreditHandler(svc.Credits),
		credit.NewCreateCreditHandler(svc.Credits),
		credit.NewUpdateCreditHandler(svc.Credits),
		credit.NewDeleteCreditHandler(svc.Credits),

		transaction.NewListTransactionsHandler(svc.Transactions),
		transaction.NewGetTransactionHandler(svc.Transactions),
		transaction.NewCreateTransactionHandler(svc.Transactions),
		transaction.NewUpdateTransactionHandler(svc.Transactions),
		transaction.NewDeleteTransactionHandler(svc.Transactions),

		document.NewListDocumentsHandler(svc.Documents),
		document.NewGetDocumentHandler(svc.Documents),
		document.NewDownloadDocumentHandler(svc.Documents),
		document.NewUploadDocumentHandler(svc.Documents),
		document.NewUpdateDocumentHandler(svc.Documents),
		document.NewDeleteDocumentHandler(svc.Documents),
	}
	for _, h := range handlers {
		h.Register(api)
	}

	return logging.LoggingWrapper(r.Logger, httperr.Recoverer(r.Translator, observability.Middleware(mux)))
}

func (r *Rest) server() *http.Server {
	return &http.Server{
		Addr:              ":" + strconv.Itoa(r.Port),
		Handler:           r.Handler(),
		ReadTimeout:       r.ReadTimeout,
		WriteTimeout:      r.WriteTimeout,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}
}

// Serve listens until ctx is cancelled, then drains open requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := r.server()

	shutdownDone := make(chan error, 1)
	go func() {
		<-ctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		shutdownDone <- server.Shutdown(shutdownCtx)
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	return <-shutdownDone
}
