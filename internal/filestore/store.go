// Package filestore keeps uploaded document content. Objects are namespaced by property and named
// with a fresh UUID plus the lower-cased extension of the uploaded file.
package filestore

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"
)

var (
	ErrNotFound = errors.New("filestore: file not found")
	ErrTooLarge = errors.New("filestore: file exceeds size limit")
)

type Store interface {
	// Save writes r under the property's namespace and returns the stored path and the bytes written.
	Save(ctx context.Context, propertyID uuid.UUID, originalName string, r io.Reader) (string, int64, error)
	// Open returns ErrNotFound when nothing is stored at path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete returns ErrNotFound when nothing is stored at path.
	Delete(ctx context.Context, path string) error
}

func objectName(originalName string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return id.String() + strings.ToLower(filepath.Ext(originalName)), nil
}

// copyLimited copies at most maxBytes from r into w and reports ErrTooLarge when r holds more.
func copyLimited(w io.Writer, r io.Reader, maxBytes int64) (int64, error) {
	written, err := io.Copy(w, io.LimitReader(r, maxBytes+1))
	if err != nil {
		return written, err
	}
	if written > maxBytes {
		return written, ErrTooLarge
	}
	return written, nil
}
