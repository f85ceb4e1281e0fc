package entities

import "encoding/json"

// CardType identifies which payment/recipient schema a record follows.
type CardType string

const (
	CardTypePicPay   CardType = "picpay"
	CardTypeBoleto   CardType = "boleto"
	CardTypeNubank   CardType = "nubank"
	CardTypeFebraban CardType = "febraban"
)

func (t CardType) IsKnown() bool {
	switch t {
	case CardTypePicPay, CardTypeBoleto, CardTypeNubank, CardTypeFebraban:
		return true
	}
	return false
}

// CommonFields holds what every card record carries. Values that are shown on the
// pass verbatim stay as raw JSON.
type CommonFields struct {
	Message              json.RawMessage
	RecipientName        json.RawMessage
	RecipientPhoneNumber json.RawMessage

	// Optional. Nil when the key is absent from the body.
	Value           json.RawMessage
	ImageURL        string
	BackgroundColor string
	ForegroundColor string

	Raw RawRecord
}

func (c CommonFields) Common() CommonFields { return c }

// CardRecord is a validated record of one of the four card types.
//
// The set of implementations is closed: downstream code dispatches through
// CardVisitor, so adding a type means adding a visitor method everywhere.
type CardRecord interface {
	Type() CardType
	Common() CommonFields
	Accept(v CardVisitor)
}

type CardVisitor interface {
	VisitBoleto(c BoletoCard)
	VisitPicPay(c PicPayCard)
	VisitNubank(c NubankCard)
	VisitFebraban(c FebrabanCard)
}

// Document is the CPF or CNPJ of the recipient; at least one is set.
type Document struct {
	CPF  string
	CNPJ string
}

type BoletoCard struct {
	CommonFields
	DigitableLine string
	Document      Document
}

func (BoletoCard) Type() CardType         { return CardTypeBoleto }
func (c BoletoCard) Accept(v CardVisitor) { v.VisitBoleto(c) }

type PicPayCard struct {
	CommonFields
	User json.RawMessage
}

func (PicPayCard) Type() CardType         { return CardTypePicPay }
func (c PicPayCard) Accept(v CardVisitor) { v.VisitPicPay(c) }

type NubankCard struct {
	CommonFields
	URL string
}

func (NubankCard) Type() CardType         { return CardTypeNubank }
func (c NubankCard) Accept(v CardVisitor) { v.VisitNubank(c) }

type FebrabanCard struct {
	CommonFields
	BankCode      string
	BankName      string
	AgencyNumber  string
	AccountNumber string
	AccountType   string
	Document      Document
}

func (FebrabanCard) Type() CardType         { return CardTypeFebraban }
func (c FebrabanCard) Accept(v CardVisitor) { v.VisitFebraban(c) }
