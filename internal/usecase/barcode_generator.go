package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"

	"gera_wallet/internal/domain/entities"
)

const (
	picpayBaseURL       = "https://picpay.me/"
	febrabanBarcodeHint = "Aponte a câmera ⬆️"
)

var nonDigits = regexp.MustCompile(`\D+`)

// GenerateBarcodes returns the barcodes of a card, in display order.
func GenerateBarcodes(card entities.CardRecord) []entities.Barcode {
	g := &barcodeGenerator{}
	card.Accept(g)
	return g.barcodes
}

type barcodeGenerator struct {
	barcodes []entities.Barcode
}

var _ entities.CardVisitor = (*barcodeGenerator)(nil)

func (g *barcodeGenerator) VisitBoleto(c entities.BoletoCard) {
	payload := nonDigits.ReplaceAllString(c.DigitableLine, "")
	g.barcodes = []entities.Barcode{
		barcode(c.DigitableLine, payload, entities.BarcodeFormatCode128),
		barcode(c.DigitableLine, payload, entities.BarcodeFormatQR),
	}
}

func (g *barcodeGenerator) VisitPicPay(c entities.PicPayCard) {
	url := picpayBaseURL + entities.JSONText(c.User)
	if truthy(c.Value) {
		url += "/" + entities.JSONText(c.Value)
	}
	g.barcodes = []entities.Barcode{barcode(url, url, entities.BarcodeFormatQR)}
}

func (g *barcodeGenerator) VisitNubank(c entities.NubankCard) {
	g.barcodes = []entities.Barcode{barcode(c.URL, c.URL, entities.BarcodeFormatQR)}
}

func (g *barcodeGenerator) VisitFebraban(c entities.FebrabanCard) {
	payload := fmt.Sprintf("%s - %s\nAg. %s\nConta %s", c.BankCode, c.BankName, c.AgencyNumber, c.AccountNumber)
	g.barcodes = []entities.Barcode{barcode(febrabanBarcodeHint, payload, entities.BarcodeFormatQR)}
}

func barcode(altText, message string, format entities.BarcodeFormat) entities.Barcode {
	return entities.Barcode{
		AltText:         altText,
		Message:         message,
		Format:          format,
		MessageEncoding: entities.BarcodeMessageEncoding,
	}
}

// truthy reports whether an optional scalar holds something worth printing:
// non-empty strings, non-zero numbers and true.
func truthy(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case '"':
		return entities.JSONText(trimmed) != ""
	case 't':
		return true
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var f float64
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return false
		}
		return f != 0
	}
	return false
}
