package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	photoPort "socialfeed/internal/ports/photo"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofrs/uuid"
)

// sniffLen is how much of an upload is read before deciding its type.
const sniffLen = 3072

// rasterTypes are the accepted photo formats. Vector and markup image types
// such as SVG can carry script and are served from our own origin.
var rasterTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// PhotoStorageDisk writes photos into a flat directory under random names.
type PhotoStorageDisk struct {
	Root     string
	MaxBytes int64
}

func NewPhotoStorageDisk(root string, maxBytes int64) (*PhotoStorageDisk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("could not create media root: %w", err)
	}
	return &PhotoStorageDisk{Root: root, MaxBytes: maxBytes}, nil
}

// Save stores r if its content sniffs as a raster image and returns the file
// name.
func (s *PhotoStorageDisk) Save(ctx context.Context, r io.Reader) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("could not read photo: %w", err)
	}
	head = head[:n]

	mtype := mimetype.Detect(head)
	if !mimetype.EqualsAny(mtype.String(), rasterTypes...) {
		return "", photoPort.ErrNotAnImage
	}

	name := uuid.Must(uuid.NewV4()).String() + mtype.Extension()
	path := filepath.Join(s.Root, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("could not create photo file: %w", err)
	}

	body := io.MultiReader(bytes.NewReader(head), r)
	if s.MaxBytes > 0 {
		body = io.LimitReader(body, s.MaxBytes+1)
	}
	written, err := io.Copy(f, body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err == nil && s.MaxBytes > 0 && written > s.MaxBytes {
		err = photoPort.ErrPhotoTooLarge
	}
	if err != nil {
		_ = os.Remove(path)
		if errors.Is(err, photoPort.ErrPhotoTooLarge) {
			return "", err
		}
		return "", fmt.Errorf("could not write photo: %w", err)
	}
	return name, nil
}

// Delete removes a stored photo. Missing files are not an error.
func (s *PhotoStorageDisk) Delete(ctx context.Context, name string) error {
	if name == "" || filepath.Base(name) != name {
		return fmt.Errorf("invalid photo name %q", name)
	}
	if err := os.Remove(filepath.Join(s.Root, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
