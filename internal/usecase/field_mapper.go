package usecase

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gera_wallet/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	DefaultBackgroundColor = "rgb(154, 69, 215)"
	DefaultForegroundColor = "rgb(255, 255, 255)"

	currencyBRL = "BRL"
)

// BackLabels maps record keys to the label they get on the back of the pass.
var BackLabels = map[string]string{
	"picpayUser":           "Usuário do PicPay",
	"bankCode":             "Código do banco",
	"bankName":             "Nome do banco",
	"agencyNumber":         "Número da agência",
	"accountNumber":        "Número da conta",
	"accountType":          "Tipo de conta",
	"recipientName":        "Nome de destinatário",
	"recipientPhoneNumber": "Contato de destinatário",
	"boletoDigitableLine":  "Linha digitável",
	"cpf":                  "CPF",
	"cnpj":                 "CNPJ",
}

// FieldMapper fills the display fields and colors of a pass from a card record.
type FieldMapper struct {
	SupportLabel string
	SupportEmail string
}

func NewFieldMapper(supportEmail string) FieldMapper {
	return FieldMapper{SupportLabel: "Suporte do App Gera", SupportEmail: supportEmail}
}

func (m FieldMapper) Map(p *entities.Pass, card entities.CardRecord) {
	common := card.Common()
	p.Generic.PrimaryFields = []entities.Field{primaryField(card)}
	p.Generic.SecondaryFields = []entities.Field{{
		Key:           "message",
		Label:         "Mensagem",
		Value:         common.Message,
		TextAlignment: entities.TextAlignmentLeft,
	}}
	p.Generic.BackFields = m.backFields(common.Raw)
	p.BackgroundColor = orDefault(common.BackgroundColor, DefaultBackgroundColor)
	p.ForegroundColor = orDefault(common.ForegroundColor, DefaultForegroundColor)
}

// primaryField picks, in order: a non-zero numeric value, the PicPay user,
// the recipient name.
func primaryField(card entities.CardRecord) entities.Field {
	common := card.Common()
	if amount, ok := numericValue(common.Value); ok {
		return entities.Field{
			Key:          "value",
			Label:        "Valor",
			Value:        json.Number(amount.String()),
			CurrencyCode: currencyBRL,
		}
	}
	if picpay, ok := card.(entities.PicPayCard); ok {
		return entities.Field{Key: "value", Label: "Usuário do PicPay", Value: picpay.User}
	}
	return entities.Field{Key: "value", Label: "Destinatário", Value: common.RecipientName}
}

func (m FieldMapper) backFields(raw entities.RawRecord) []entities.Field {
	fields := make([]entities.Field, 0, raw.Len()+1)
	for _, f := range raw.Fields() {
		label, ok := BackLabels[f.Key]
		if !ok {
			continue
		}
		fields = append(fields, entities.Field{Key: f.Key, Label: label, Value: f.Value})
	}
	return append(fields, entities.Field{
		Key:   "supportMail",
		Label: m.SupportLabel,
		Value: m.SupportEmail,
	})
}

// numericValue accepts JSON numbers and numeric strings as float64, so huge
// exponents overflow instead of expanding. Zero, NaN and infinities count as absent.
func numericValue(raw json.RawMessage) (decimal.Decimal, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return decimal.Decimal{}, false
	}
	var text string
	switch trimmed[0] {
	case '"':
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return decimal.Decimal{}, false
		}
		text = strings.TrimSpace(text)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		text = string(trimmed)
	default:
		return decimal.Decimal{}, false
	}
	if text == "" {
		return decimal.Decimal{}, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f == 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(f), true
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
