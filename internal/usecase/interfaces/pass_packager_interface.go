package interfaces

import "gera_wallet/internal/domain/entities"

// IPassPackager renders a pass into its signed, distributable archive.
type IPassPackager interface {
	Package(p *entities.Pass) ([]byte, error)
}
