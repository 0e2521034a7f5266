package document

import (
	"context"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/property-ledger/internal/handlers/httperr"
	"github.com/carson-networks/property-ledger/internal/handlers/params"
	"github.com/carson-networks/property-ledger/internal/logging"
	"github.com/carson-networks/property-ledger/internal/service"
)

type documentOpener interface {
	Open(ctx context.Context, id uuid.UUID) (*service.Document, io.ReadCloser, error)
}

// DownloadDocumentHandler handles GET /documents/{id}/download.
type DownloadDocumentHandler struct {
	DocumentService documentOpener
}

func NewDownloadDocumentHandler(svc documentOpener) *DownloadDocumentHandler {
	return &DownloadDocumentHandler{DocumentService: svc}
}

func (h *DownloadDocumentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "download-document",
		Method:      http.MethodGet,
		Path:        "/documents/{id}/download",
		Summary:     "Download document",
		Description: "Streams the stored file as an attachment under its original name.",
		Tags:        []string{"Documents"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "The stored file",
				Content: map[string]*huma.MediaType{
					"application/octet-stream": {},
				},
			},
		},
	}, h.handle)
}

// contentType guesses the media type from the file extension.
func contentType(filename string) string {
	if guessed := mime.TypeByExtension(filepath.Ext(filename)); guessed != "" {
		return guessed
	}
	return "application/octet-stream"
}

func (h *DownloadDocumentHandler) handle(ctx context.Context, input *DocumentPath) (*huma.StreamResponse, error) {
	id, err := params.ID("id", input.ID)
	if err != nil {
		return nil, httperr.FromError(err)
	}
	logging.AddData(ctx, "documentID", id.String())

	doc, content, err := h.DocumentService.Open(ctx, id)
	if err != nil {
		return nil, httperr.FromError(err)
	}

	return &huma.StreamResponse{
		Body: func(hctx huma.Context) {
			defer content.Close()

			hctx.SetHeader("Content-Type", contentType(doc.Filename))
			hctx.SetHeader("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
			hctx.SetStatus(http.StatusOK)

			written, err := io.Copy(hctx.BodyWriter(), content)
			logging.AddData(ctx, "downloadBytes", written)
			if err != nil {
				if logData := logging.GetLogData(ctx); logData != nil {
					logData.AddError(err)
				}
			}
		},
	}, nil
}
