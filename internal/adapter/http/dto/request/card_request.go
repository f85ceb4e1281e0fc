package request

import (
	"bytes"
	"encoding/json"

	"gera_wallet/internal/domain/entities"
)

// CardRequest documents the POST /card/ body. The handler never binds into it:
// the body is read as an ordered raw record, see ParseCardRecord.
type CardRequest struct {
	Type                 string `json:"type" example:"boleto" enums:"boleto,picpay,nubank,febraban"`
	Message              string `json:"message" example:"Pague"`
	RecipientName        string `json:"recipientName" example:"Ana"`
	RecipientPhoneNumber string `json:"recipientPhoneNumber" example:"+5511999999999"`
	Value                string `json:"value,omitempty" example:"100"`
	BoletoDigitableLine  string `json:"boletoDigitableLine,omitempty" example:"1234 5678 9012"`
	CPF                  string `json:"cpf,omitempty" example:"00000000000"`
	CNPJ                 string `json:"cnpj,omitempty"`
	PicPayUser           string `json:"picpayUser,omitempty"`
	NubankURL            string `json:"nubankUrl,omitempty"`
	BankCode             string `json:"bankCode,omitempty"`
	BankName             string `json:"bankName,omitempty"`
	AgencyNumber         string `json:"agencyNumber,omitempty"`
	AccountNumber        string `json:"accountNumber,omitempty"`
	AccountType          string `json:"accountType,omitempty"`
	ImageURL             string `json:"imageUrl,omitempty"`
	BackgroundColor      string `json:"backgroundColor,omitempty" example:"rgb(154, 69, 215)"`
	ForegroundColor      string `json:"foregroundColor,omitempty" example:"rgb(255, 255, 255)"`
}

// ParseCardRecord decodes a request body keeping key order and raw values.
// An empty body, or one that is valid JSON but not an object, fails with
// entities.ErrRecordNotObject.
func ParseCardRecord(body []byte) (entities.RawRecord, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return entities.RawRecord{}, entities.ErrRecordNotObject
	}
	var raw entities.RawRecord
	if err := json.Unmarshal(body, &raw); err != nil {
		return entities.RawRecord{}, err
	}
	return raw, nil
}
