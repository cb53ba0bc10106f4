package photo

import (
	"context"
	"errors"
	"io"
)

var (
	ErrNotAnImage    = errors.New("photo must be an image")
	ErrPhotoTooLarge = errors.New("photo is too large")
)

// PhotoStorage persists uploaded post photos and returns the name they are
// served under.
type PhotoStorage interface {
	Save(ctx context.Context, r io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}
