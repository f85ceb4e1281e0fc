package usecase

import (
	"gera_wallet/internal/domain/entities"
)

const documentField = "cpf/cnpj"

var (
	commonRequiredFields = []string{"type", "message", "recipientName", "recipientPhoneNumber"}

	typeRequiredFields = map[entities.CardType][]string{
		entities.CardTypeBoleto:   {"value", "boletoDigitableLine"},
		entities.CardTypePicPay:   {"picpayUser"},
		entities.CardTypeNubank:   {"nubankUrl"},
		entities.CardTypeFebraban: {"bankCode", "bankName", "agencyNumber", "accountNumber", "accountType", "recipientName"},
	}

	typeRequiresDocument = map[entities.CardType]bool{
		entities.CardTypeBoleto:   true,
		entities.CardTypeFebraban: true,
	}
)

// ClassifyCard checks a raw record against the required fields of its declared
// type and returns the typed record.
//
// Missing common fields win over an unknown type. Every missing field is
// reported, not only the first one.
func ClassifyCard(raw entities.RawRecord) (entities.CardRecord, error) {
	var missing []string
	for _, f := range commonRequiredFields {
		if !raw.Has(f) {
			missing = append(missing, f)
		}
	}

	cardType := entities.CardType(raw.Text("type"))
	if !cardType.IsKnown() {
		if len(missing) > 0 {
			return nil, &MissingFieldsError{Fields: missing}
		}
		return nil, ErrInvalidCardType
	}

	for _, f := range typeRequiredFields[cardType] {
		if !raw.Has(f) && !contains(missing, f) {
			missing = append(missing, f)
		}
	}
	if typeRequiresDocument[cardType] && !raw.Has("cpf") && !raw.Has("cnpj") {
		missing = append(missing, documentField)
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	common := commonFields(raw)
	switch cardType {
	case entities.CardTypeBoleto:
		return entities.BoletoCard{
			CommonFields:  common,
			DigitableLine: raw.Text("boletoDigitableLine"),
			Document:      document(raw),
		}, nil
	case entities.CardTypePicPay:
		user, _ := raw.Get("picpayUser")
		return entities.PicPayCard{CommonFields: common, User: user}, nil
	case entities.CardTypeNubank:
		return entities.NubankCard{CommonFields: common, URL: raw.Text("nubankUrl")}, nil
	case entities.CardTypeFebraban:
		return entities.FebrabanCard{
			CommonFields:  common,
			BankCode:      raw.Text("bankCode"),
			BankName:      raw.Text("bankName"),
			AgencyNumber:  raw.Text("agencyNumber"),
			AccountNumber: raw.Text("accountNumber"),
			AccountType:   raw.Text("accountType"),
			Document:      document(raw),
		}, nil
	}
	return nil, ErrInvalidCardType
}

// CommonRequiredFields lists the keys every card record must carry, whatever its type.
func CommonRequiredFields() []string {
	return append([]string(nil), commonRequiredFields...)
}

func commonFields(raw entities.RawRecord) entities.CommonFields {
	message, _ := raw.Get("message")
	name, _ := raw.Get("recipientName")
	phone, _ := raw.Get("recipientPhoneNumber")
	value, _ := raw.Get("value")
	return entities.CommonFields{
		Message:              message,
		RecipientName:        name,
		RecipientPhoneNumber: phone,
		Value:                value,
		ImageURL:             raw.Text("imageUrl"),
		BackgroundColor:      raw.Text("backgroundColor"),
		ForegroundColor:      raw.Text("foregroundColor"),
		Raw:                  raw,
	}
}

func document(raw entities.RawRecord) entities.Document {
	return entities.Document{CPF: raw.Text("cpf"), CNPJ: raw.Text("cnpj")}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
