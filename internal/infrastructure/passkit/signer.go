package passkit

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/youmark/pkcs8"
	"go.mozilla.org/pkcs7"
)

var (
	ErrNoCertificate = errors.New("no certificate found in PEM data")
	ErrNoPrivateKey  = errors.New("no private key found in PEM data")
)

// Signer produces the detached PKCS#7 signature of a pass manifest.
type Signer struct {
	cert         *x509.Certificate
	key          crypto.PrivateKey
	intermediate *x509.Certificate
}

// NewSigner parses the pass certificate and private key (PEM). The key may be
// an unencrypted PKCS#1/PKCS#8/EC key, a legacy encrypted PEM block or an
// encrypted PKCS#8 key; passphrase unlocks the last two. wwdrPEM is optional.
func NewSigner(certPEM, keyPEM []byte, passphrase string, wwdrPEM []byte) (*Signer, error) {
	cert, err := parseCertificate(certPEM)
	if err != nil {
		return nil, fmt.Errorf("pass certificate: %w", err)
	}
	key, err := parsePrivateKey(keyPEM, passphrase)
	if err != nil {
		return nil, fmt.Errorf("pass private key: %w", err)
	}

	s := &Signer{cert: cert, key: key}
	if len(wwdrPEM) > 0 {
		if s.intermediate, err = parseCertificate(wwdrPEM); err != nil {
			return nil, fmt.Errorf("wwdr certificate: %w", err)
		}
	}
	return s, nil
}

func (s *Signer) Certificate() *x509.Certificate { return s.cert }

func (s *Signer) Sign(manifest []byte) ([]byte, error) {
	sd, err := pkcs7.NewSignedData(manifest)
	if err != nil {
		return nil, err
	}
	sd.SetDigestAlgorithm(pkcs7.OIDDigestAlgorithmSHA256)
	if err := sd.AddSigner(s.cert, s.key, pkcs7.SignerInfoConfig{}); err != nil {
		return nil, err
	}
	if s.intermediate != nil {
		sd.AddCertificate(s.intermediate)
	}
	sd.Detach()
	return sd.Finish()
}

func parseCertificate(data []byte) (*x509.Certificate, error) {
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return nil, ErrNoCertificate
		}
		if block.Type == "CERTIFICATE" {
			return x509.ParseCertificate(block.Bytes)
		}
	}
}

func parsePrivateKey(data []byte, passphrase string) (crypto.PrivateKey, error) {
	for {
		var block *pem.Block
		block, data = pem.Decode(data)
		if block == nil {
			return nil, ErrNoPrivateKey
		}

		switch block.Type {
		case "ENCRYPTED PRIVATE KEY":
			return pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(passphrase))
		case "PRIVATE KEY":
			return x509.ParsePKCS8PrivateKey(block.Bytes)
		case "RSA PRIVATE KEY", "EC PRIVATE KEY":
			der := block.Bytes
			//nolint:staticcheck // legacy "Proc-Type: 4,ENCRYPTED" keys exported by openssl/keychain
			if x509.IsEncryptedPEMBlock(block) {
				var err error
				if der, err = x509.DecryptPEMBlock(block, []byte(passphrase)); err != nil {
					return nil, err
				}
			}
			if block.Type == "EC PRIVATE KEY" {
				return x509.ParseECPrivateKey(der)
			}
			return x509.ParsePKCS1PrivateKey(der)
		}
	}
}
