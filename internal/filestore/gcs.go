package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gofrs/uuid/v5"
)

// GCS stores files as objects in a Google Cloud Storage bucket. Stored paths look like
// gs://<bucket>/<property id>/<name>.
type GCS struct {
	client   *storage.Client
	bucket   string
	maxBytes int64
}

var _ Store = (*GCS)(nil)

// NewGCS connects with the application default credentials.
func NewGCS(ctx context.Context, bucket string, maxBytes int64) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("filestore: storage client: %w", err)
	}
	return &GCS{client: client, bucket: bucket, maxBytes: maxBytes}, nil
}

func (g *GCS) Close() error {
	return g.client.Close()
}

func (g *GCS) Save(ctx context.Context, propertyID uuid.UUID, originalName string, r io.Reader) (string, int64, error) {
	name, err := objectName(originalName)
	if err != nil {
		return "", 0, err
	}
	key := path.Join(propertyID.String(), name)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := g.client.Bucket(g.bucket).Object(key).NewWriter(ctx)
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		w.ContentType = ct
	}

	written, err := copyLimited(w, r, g.maxBytes)
	if err != nil {
		// cancelling before Close aborts the upload
		cancel()
		_ = w.Close()
		return "", written, err
	}
	if err := w.Close(); err != nil {
		return "", written, fmt.Errorf("filestore: write gs://%s/%s: %w", g.bucket, key, err)
	}

	return "gs://" + g.bucket + "/" + key, written, nil
}

func (g *GCS) Open(ctx context.Context, storedPath string) (io.ReadCloser, error) {
	key, err := g.key(storedPath)
	if err != nil {
		return nil, err
	}
	reader, err := g.client.Bucket(g.bucket).Object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: read %s: %w", storedPath, err)
	}
	return reader, nil
}

func (g *GCS) Delete(ctx context.Context, storedPath string) error {
	key, err := g.key(storedPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err = g.client.Bucket(g.bucket).Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("filestore: delete %s: %w", storedPath, err)
	}
	return nil
}

func (g *GCS) key(storedPath string) (string, error) {
	prefix := "gs://" + g.bucket + "/"
	if !strings.HasPrefix(storedPath, prefix) {
		return "", fmt.Errorf("filestore: %s is not in bucket %s", storedPath, g.bucket)
	}
	return strings.TrimPrefix(storedPath, prefix), nil
}
