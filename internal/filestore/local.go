package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
)

// Local stores files below a root directory on the local disk.
type Local struct {
	root     string
	maxBytes int64
}

var _ Store = (*Local)(nil)

func NewLocal(root string, maxBytes int64) *Local {
	return &Local{root: root, maxBytes: maxBytes}
}

func (l *Local) Save(_ context.Context, propertyID uuid.UUID, originalName string, r io.Reader) (string, int64, error) {
	name, err := objectName(originalName)
	if err != nil {
		return "", 0, err
	}

	dir := filepath.Join(l.root, propertyID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("filestore: create %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("filestore: create %s: %w", path, err)
	}

	written, copyErr := copyLimited(file, r, l.maxBytes)
	closeErr := file.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		_ = os.Remove(path)
		return "", written, copyErr
	}

	return path, written, nil
}

func (l *Local) Open(_ context.Context, path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("filestore: open %s: %w", path, err)
	}
	return file, nil
}

func (l *Local) Delete(_ context.Context, path string) error {
	err := os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("filestore: remove %s: %w", path, err)
	}
	return nil
}
