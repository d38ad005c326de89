package models

import "github.com/shopspring/decimal"

// CreditNote records a price decrease against a receipt tax invoice.
// Only the price-correction engine creates these.
type CreditNote struct {
	DocumentCore
	OriginalAmount   decimal.Decimal `json:"OriginalAmount"`
	CorrectAmount    decimal.Decimal `json:"CorrectAmount"`
	DifferenceAmount decimal.Decimal `json:"DifferenceAmount"`
}

func (cn *CreditNote) DocumentKind() DocumentKind { return DocumentKindCreditNote }
