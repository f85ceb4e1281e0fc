package response

import (
	"fmt"

	"gera_wallet/internal/domain/entities"
)

// PassDownload is what the card routes write back: the signed archive and its headers.
type PassDownload struct {
	ContentType        string
	ContentDisposition string
	Body               []byte
}

func FromStoredPass(p entities.StoredPass) PassDownload {
	return PassDownload{
		ContentType:        entities.PassMIMEType,
		ContentDisposition: fmt.Sprintf(`attachment; filename="%s.pkpass"`, p.SerialNumber),
		Body:               p.Artifact,
	}
}
