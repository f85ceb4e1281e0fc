package entities

import "time"

const (
	PassFormatVersion = 1
	PassMIMEType      = "application/vnd.apple.pkpass"

	// Barcode text is always iso-8859-1, the only encoding older wallet readers accept.
	BarcodeMessageEncoding = "iso-8859-1"

	TextAlignmentLeft = "PKTextAlignmentLeft"
)

type BarcodeFormat string

const (
	BarcodeFormatQR      BarcodeFormat = "PKBarcodeFormatQR"
	BarcodeFormatCode128 BarcodeFormat = "PKBarcodeFormatCode128"
)

// Field is a label/value pair rendered on the pass.
//
// Value is whatever JSON the pass shows: a raw value copied from the request,
// a string or a json.Number for currency amounts.
type Field struct {
	Key           string `json:"key"`
	Label         string `json:"label,omitempty"`
	Value         any    `json:"value"`
	CurrencyCode  string `json:"currencyCode,omitempty"`
	TextAlignment string `json:"textAlignment,omitempty"`
}

type Barcode struct {
	AltText         string        `json:"altText,omitempty"`
	Message         string        `json:"message"`
	Format          BarcodeFormat `json:"format"`
	MessageEncoding string        `json:"messageEncoding"`
}

type PassStructure struct {
	PrimaryFields   []Field `json:"primaryFields"`
	SecondaryFields []Field `json:"secondaryFields"`
	BackFields      []Field `json:"backFields"`
}

type ImageDensity string

const (
	ImageDensity1x ImageDensity = "1x"
	ImageDensity2x ImageDensity = "2x"
	ImageDensity3x ImageDensity = "3x"
)

// PassImage is one density variant of a named pass image (PNG bytes).
type PassImage struct {
	Name    string       `json:"name"`
	Density ImageDensity `json:"density"`
	Data    []byte       `json:"-"`
}

// FileName is the archive entry name, e.g. thumbnail.png or thumbnail@2x.png.
func (i PassImage) FileName() string {
	if i.Density == "" || i.Density == ImageDensity1x {
		return i.Name + ".png"
	}
	return i.Name + "@" + string(i.Density) + ".png"
}

// Pass is the pass.json document of a generic wallet pass plus its own images.
type Pass struct {
	FormatVersion      int    `json:"formatVersion"`
	PassTypeIdentifier string `json:"passTypeIdentifier"`
	SerialNumber       string `json:"serialNumber"`
	TeamIdentifier     string `json:"teamIdentifier"`
	OrganizationName   string `json:"organizationName"`
	Description        string `json:"description"`
	LogoText           string `json:"logoText,omitempty"`
	SharingProhibited  bool   `json:"sharingProhibited"`

	BackgroundColor string `json:"backgroundColor,omitempty"`
	ForegroundColor string `json:"foregroundColor,omitempty"`

	Barcodes []Barcode `json:"barcodes,omitempty"`
	// Legacy single barcode, read by wallets that predate Barcodes.
	Barcode *Barcode `json:"barcode,omitempty"`

	Generic PassStructure `json:"generic"`

	Images []PassImage `json:"-"`
}

func (p *Pass) SetBarcodes(barcodes []Barcode) {
	p.Barcodes = barcodes
	p.Barcode = nil
	if len(barcodes) > 0 {
		first := barcodes[0]
		p.Barcode = &first
	}
}

func (p *Pass) AddImages(images ...PassImage) {
	p.Images = append(p.Images, images...)
}

// PassTemplate carries the pass.json attributes shared by every generated pass.
type PassTemplate struct {
	PassTypeIdentifier string
	TeamIdentifier     string
	OrganizationName   string
	Description        string
	LogoText           string
	SharingProhibited  bool
}

func (t PassTemplate) NewPass(serialNumber string) *Pass {
	return &Pass{
		FormatVersion:      PassFormatVersion,
		PassTypeIdentifier: t.PassTypeIdentifier,
		SerialNumber:       serialNumber,
		TeamIdentifier:     t.TeamIdentifier,
		OrganizationName:   t.OrganizationName,
		Description:        t.Description,
		LogoText:           t.LogoText,
		SharingProhibited:  t.SharingProhibited,
		Generic: PassStructure{
			PrimaryFields:   []Field{},
			SecondaryFields: []Field{},
			BackFields:      []Field{},
		},
	}
}

// StoredPass is what the pass store keeps per serial number.
//
// Artifact is the signed .pkpass rendered at generation time; serving it as-is
// keeps repeated downloads byte-identical.
type StoredPass struct {
	SerialNumber string    `json:"serial_number"`
	CardType     CardType  `json:"card_type"`
	CreatedAt    time.Time `json:"created_at"`
	Pass         Pass      `json:"pass"`
	Artifact     []byte    `json:"artifact"`
}
