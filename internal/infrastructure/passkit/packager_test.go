package passkit

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"gera_wallet/internal/domain/entities"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSigner struct {
	signed []byte
	err    error
}

func (f *fakeSigner) Sign(manifest []byte) ([]byte, error) {
	f.signed = manifest
	if f.err != nil {
		return nil, f.err
	}
	return []byte("signature-of-manifest"), nil
}

func unzip(t *testing.T, archive []byte) ([]string, map[string][]byte) {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	var names []string
	files := map[string][]byte{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		names = append(names, f.Name)
		files[f.Name] = data
	}
	return names, files
}

func TestPackager_Package(t *testing.T) {
	signer := &fakeSigner{}
	p := NewPackager(signer, map[string][]byte{
		"icon.png":      []byte("icon"),
		"thumbnail.png": []byte("template thumbnail"),
	})
	p.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	pass := &entities.Pass{FormatVersion: 1, SerialNumber: "serial-1", Description: "Gera"}
	pass.AddImages(
		entities.PassImage{Name: "thumbnail", Density: entities.ImageDensity1x, Data: []byte("t1")},
		entities.PassImage{Name: "thumbnail", Density: entities.ImageDensity2x, Data: []byte("t2")},
	)

	archive, err := p.Package(pass)
	require.NoError(t, err)

	names, files := unzip(t, archive)
	assert.Equal(t, []string{"icon.png", "manifest.json", "pass.json", "signature", "thumbnail.png", "thumbnail@2x.png"}, names)
	assert.Equal(t, "t1", string(files["thumbnail.png"]))
	assert.Equal(t, "signature-of-manifest", string(files["signature"]))
	assert.Equal(t, files["manifest.json"], signer.signed)

	var manifest map[string]string
	require.NoError(t, json.Unmarshal(files["manifest.json"], &manifest))
	assert.Len(t, manifest, 4)
	for name, sum := range manifest {
		want := sha1.Sum(files[name])
		assert.Equal(t, hex.EncodeToString(want[:]), sum, name)
	}

	var passJSON map[string]any
	require.NoError(t, json.Unmarshal(files["pass.json"], &passJSON))
	assert.Equal(t, "serial-1", passJSON["serialNumber"])
	assert.NotContains(t, passJSON, "Images")
}

func TestPackager_Deterministic(t *testing.T) {
	p := NewPackager(&fakeSigner{}, nil)
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	pass := &entities.Pass{FormatVersion: 1, SerialNumber: "same"}
	a, err := p.Package(pass)
	require.NoError(t, err)
	b, err := p.Package(pass)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPackager_SignError(t *testing.T) {
	p := NewPackager(&fakeSigner{err: errors.New("hsm offline")}, nil)

	_, err := p.Package(&entities.Pass{SerialNumber: "x"})
	assert.EqualError(t, err, "sign manifest: hsm offline")
}
