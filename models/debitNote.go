package models

import "github.com/shopspring/decimal"

// DebitNote records a price increase against a receipt tax invoice.
type DebitNote struct {
	DocumentCore
	OriginalAmount   decimal.Decimal `json:"OriginalAmount"`
	CorrectAmount    decimal.Decimal `json:"CorrectAmount"`
	DifferenceAmount decimal.Decimal `json:"DifferenceAmount"`
}

func (dn *DebitNote) DocumentKind() DocumentKind { return DocumentKindDebitNote }
