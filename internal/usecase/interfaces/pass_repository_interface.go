package interfaces

import (
	"context"
	"errors"

	"gera_wallet/internal/domain/entities"
)

var ErrPassAlreadyExists = errors.New("pass already exists")

// IPassRepository stores generated passes by serial number.
//
// Create fails with ErrPassAlreadyExists when the serial number is taken.
// GetBySerialNumber returns a zero StoredPass and a nil error when nothing is stored.
// There is no update or delete.

type IPassRepository interface {
	Create(ctx context.Context, p entities.StoredPass) (entities.StoredPass, error)
	GetBySerialNumber(ctx context.Context, serialNumber string) (entities.StoredPass, error)
}
