package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/etax_backend/utils"
)

func init() {
	// Fixture files store monetary amounts as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Tax struct {
	Code   string          `json:"Code"`
	Rate   decimal.Decimal `json:"Rate"`
	Amount decimal.Decimal `json:"Amount"`
}

type Taxes struct {
	Tax []Tax `json:"Tax"`
}

type Item struct {
	No          int             `json:"No"`
	Id          int             `json:"Id"`
	Name        string          `json:"Name"`
	Description string          `json:"Description"`
	Quantity    int             `json:"Quantity"`
	Unit        string          `json:"Unit"`
	Price       decimal.Decimal `json:"Price"`
	Allowances  string          `json:"Allowances"`
	Amount      decimal.Decimal `json:"Amount"`
	Tax         Tax             `json:"Tax"`
	TaxAmount   decimal.Decimal `json:"TaxAmount"`
	Total       decimal.Decimal `json:"Total"`
}

type LineItems struct {
	Item []Item `json:"Item"`
}

// Party is the postal/tax identity of a seller or buyer.
type Party struct {
	ID           string `json:"ID"`
	Name         string `json:"Name"`
	TaxID        string `json:"TaxID"`
	TaxIDType    string `json:"TaxIDType"`
	Branch       int    `json:"Branch"`
	BuildingNo   int    `json:"BuildingNo"`
	BuildingName string `json:"BuildingName"`
	Street       string `json:"Street"`
	District     string `json:"District"`
	City         string `json:"City"`
	Province     string `json:"Province"`
	PostalCode   int    `json:"PostalCode"`
	CountryCode  string `json:"CountryCode"`
	CountryName  string `json:"CountryName"`
	Telephone    string `json:"Telephone"`
	Fax          string `json:"Fax"`
	Contact      string `json:"Contact"`
	Department   string `json:"Department"`
	Email        string `json:"Email"`
}

type SummaryLine struct {
	Label  string          `json:"Label"`
	Amount decimal.Decimal `json:"Amount"`
}

type Summary struct {
	Data []SummaryLine `json:"Data"`
}

// Settings flags control how amounts are interpreted downstream. They are
// carried through derivations unchanged, never recomputed.
type Settings struct {
	TaxInclusive        bool `json:"TaxInclusive"`
	InlineTax           bool `json:"InlineTax"`
	InlineAllowance     bool `json:"InlineAllowance"`
	CumulativeAllowance bool `json:"CumulativeAllowance"`
}

// Reference is a back-reference to a prior document.
type Reference struct {
	TypeCode string `json:"TypeCode"`
	No       string `json:"No"`
	Date     string `json:"Date"`
}

// DocumentCore holds the fields every document kind shares. Dates are kept
// as strings: fixtures mix date-only and full timestamps, and the backend
// only ever copies them through.
type DocumentCore struct {
	TypeCode   string `json:"TypeCode" binding:"required"`
	TypeNameTh string `json:"TypeNameTh"`
	TypeNameEn string `json:"TypeNameEn"`
	No         string `json:"No" binding:"required"`
	Date       string `json:"Date" binding:"required"`

	Seller Party `json:"Seller"`
	Buyer  Party `json:"Buyer"`

	DueDate     string     `json:"DueDate"`
	PurposeCode string     `json:"PurposeCode"`
	Purpose     string     `json:"Purpose"`
	References  *Reference `json:"References"`

	CurrencyCode string `json:"CurrencyCode"`
	Currency     string `json:"Currency"`

	LineItems     LineItems `json:"LineItems"`
	TotalQuantity int       `json:"TotalQuantity"`
	Quantity      int       `json:"Quantity"`

	Amount         decimal.Decimal `json:"Amount"`
	ChargeTotal    decimal.Decimal `json:"ChargeTotal"`
	AllowanceTotal decimal.Decimal `json:"AllowanceTotal"`
	TaxBasisAmount decimal.Decimal `json:"TaxBasisAmount"`
	NonVat         decimal.Decimal `json:"NonVat"`
	TaxAmount      decimal.Decimal `json:"TaxAmount"`
	Taxes          Taxes           `json:"Taxes"`
	Total          decimal.Decimal `json:"Total"`

	Summary Summary `json:"Summary"`
	TotalEn string  `json:"TotalEn"`
	TotalTh string  `json:"TotalTh"`

	Settings Settings `json:"Settings"`
	Manager  string   `json:"Manager"`
	Position string   `json:"Position"`
}

func (d *DocumentCore) DocumentNo() string { return d.No }

// FlatTaxRate returns the document's single flat tax rate.
//
// The schema models Taxes.Tax as a list, but derivation math assumes one
// rate per document. That restriction is a firm contract here: zero tax
// lines or differing rates are an error, identical duplicates collapse.
func (d *DocumentCore) FlatTaxRate() (decimal.Decimal, error) {
	if len(d.Taxes.Tax) == 0 {
		return decimal.Zero, fmt.Errorf("document %s carries no tax line", d.No)
	}
	rate := d.Taxes.Tax[0].Rate
	for _, t := range d.Taxes.Tax[1:] {
		if !t.Rate.Equal(rate) {
			return decimal.Zero, fmt.Errorf("%w: document %s", utils.ErrorAmbiguousTaxRate, d.No)
		}
	}
	return rate, nil
}

// MonetaryDocument is the shape shared by all five document kinds.
type MonetaryDocument interface {
	DocumentKind() DocumentKind
	DocumentNo() string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Same tag gin binding reads, so model tags stay uniform.
	v.SetTagName("binding")
	return v
}

// ValidateDocument checks required fields. The store runs this on every
// fixture at load time and on every document before it is persisted.
func ValidateDocument(doc MonetaryDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: nil document", utils.ErrorInvalidArgument)
	}
	if err := validate.Struct(doc); err != nil {
		return fmt.Errorf("%w: %s %v", utils.ErrorInvalidArgument, doc.DocumentKind(), err)
	}
	return nil
}
