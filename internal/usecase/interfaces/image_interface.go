package interfaces

import (
	"context"
	"errors"

	"gera_wallet/internal/domain/entities"
)

// ErrImageLimitExceeded marks a source image refused for its size before any decoding work.
var ErrImageLimitExceeded = errors.New("image exceeds configured limits")

// IImageFetcher downloads a remote image under the configured size and time limits.
type IImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// IThumbnailRenderer turns a source image into the density variants of a named pass image.
type IThumbnailRenderer interface {
	Render(ctx context.Context, name string, source []byte) ([]entities.PassImage, error)
}
