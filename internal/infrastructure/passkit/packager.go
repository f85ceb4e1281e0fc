package passkit

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"gera_wallet/internal/domain/entities"
	"gera_wallet/internal/usecase/interfaces"

	"github.com/klauspost/compress/zip"
)

const (
	passFile      = "pass.json"
	manifestFile  = "manifest.json"
	signatureFile = "signature"
)

type ManifestSigner interface {
	Sign(manifest []byte) ([]byte, error)
}

// Packager builds .pkpass archives: pass.json, template assets, the pass's own
// images, manifest.json with the SHA-1 of each of them and the manifest signature.
type Packager struct {
	signer ManifestSigner
	assets map[string][]byte
	now    func() time.Time
}

var _ interfaces.IPassPackager = (*Packager)(nil)

func NewPackager(signer ManifestSigner, assets map[string][]byte) *Packager {
	if assets == nil {
		assets = map[string][]byte{}
	}
	return &Packager{signer: signer, assets: assets, now: time.Now}
}

func (p *Packager) Package(pass *entities.Pass) ([]byte, error) {
	passJSON, err := json.Marshal(pass)
	if err != nil {
		return nil, fmt.Errorf("marshal pass.json: %w", err)
	}

	files := make(map[string][]byte, len(p.assets)+len(pass.Images)+1)
	for name, data := range p.assets {
		files[name] = data
	}
	// Pass images override template images of the same name.
	for _, img := range pass.Images {
		files[img.FileName()] = img.Data
	}
	files[passFile] = passJSON

	manifest, err := buildManifest(files)
	if err != nil {
		return nil, err
	}
	signature, err := p.signer.Sign(manifest)
	if err != nil {
		return nil, fmt.Errorf("sign manifest: %w", err)
	}
	files[manifestFile] = manifest
	files[signatureFile] = signature

	return p.zip(files)
}

func buildManifest(files map[string][]byte) ([]byte, error) {
	manifest := make(map[string]string, len(files))
	for name, data := range files {
		sum := sha1.Sum(data)
		manifest[name] = hex.EncodeToString(sum[:])
	}
	return json.Marshal(manifest)
}

func (p *Packager) zip(files map[string][]byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	modified := p.now()
	for _, name := range sortedNames(files) {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(files[name]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
