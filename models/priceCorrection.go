package models

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/mmdatafocus/etax_backend/utils"
)

const (
	creditNoteTypeCode = "CN"
	creditNoteNameTh   = "ใบลดหนี้"
	creditNoteNameEn   = "Credit Note"
	debitNoteTypeCode  = "DN"
	debitNoteNameTh    = "ใบเพิ่มหนี้"
	debitNoteNameEn    = "Debit Note"
	correctionPurpose  = "Price Adjustment"
	summaryLabelSub    = "sum"
	summaryLabelTotal  = "Total sum"
)

// PriceCorrector derives credit and debit notes from the stored receipt
// tax invoice when a corrected price comes in, and commits the result
// through the store.
type PriceCorrector struct {
	Store  CorrectionStore
	Logger *logrus.Logger
}

func NewPriceCorrector(store CorrectionStore, logger *logrus.Logger) *PriceCorrector {
	return &PriceCorrector{Store: store, Logger: logger}
}

// CreateCreditNoteFromReceipt applies a price reduction. It returns
// (nil, nil) when the correction is not applicable: the receipt number
// does not match, or the corrected price is not below the receipt amount.
// A mismatch is a non-event for the caller, not a failure.
func (pc *PriceCorrector) CreateCreditNoteFromReceipt(ctx context.Context, no string, newPrice decimal.Decimal) (*CreditNote, error) {
	if err := validateCorrectionInput(no, newPrice); err != nil {
		return nil, err
	}
	receipt := pc.Store.ReceiptTaxInvoice()
	if receipt == nil {
		return nil, utils.ErrorRecordNotFound
	}
	if receipt.No != no || !receipt.Amount.GreaterThan(newPrice) {
		return nil, nil
	}

	rate, err := receipt.FlatTaxRate()
	if err != nil {
		return nil, err
	}

	note := &CreditNote{
		DocumentCore:     correctionCore(receipt, newPrice, rate),
		OriginalAmount:   receipt.Amount,
		CorrectAmount:    newPrice,
		DifferenceAmount: receipt.Amount.Sub(newPrice),
	}
	note.TypeCode = creditNoteTypeCode
	note.TypeNameTh = creditNoteNameTh
	note.TypeNameEn = creditNoteNameEn
	note.No = newDocumentNo(creditNoteTypeCode)

	if err := pc.Store.SaveCreditNote(ctx, note); err != nil {
		return nil, err
	}
	pc.logCorrection(ctx, note.DocumentKind(), receipt.No, note.No, note.DifferenceAmount)
	return note, nil
}

// CreateDebitNoteFromReceipt is the symmetric counterpart: it applies a
// price increase, and returns (nil, nil) when the corrected price is not
// above the receipt amount or the number does not match.
func (pc *PriceCorrector) CreateDebitNoteFromReceipt(ctx context.Context, no string, newPrice decimal.Decimal) (*DebitNote, error) {
	if err := validateCorrectionInput(no, newPrice); err != nil {
		return nil, err
	}
	receipt := pc.Store.ReceiptTaxInvoice()
	if receipt == nil {
		return nil, utils.ErrorRecordNotFound
	}
	if receipt.No != no || !receipt.Amount.LessThan(newPrice) {
		return nil, nil
	}

	rate, err := receipt.FlatTaxRate()
	if err != nil {
		return nil, err
	}

	note := &DebitNote{
		DocumentCore:     correctionCore(receipt, newPrice, rate),
		OriginalAmount:   receipt.Amount,
		CorrectAmount:    newPrice,
		DifferenceAmount: newPrice.Sub(receipt.Amount),
	}
	note.TypeCode = debitNoteTypeCode
	note.TypeNameTh = debitNoteNameTh
	note.TypeNameEn = debitNoteNameEn
	note.No = newDocumentNo(debitNoteTypeCode)

	if err := pc.Store.SaveDebitNote(ctx, note); err != nil {
		return nil, err
	}
	pc.logCorrection(ctx, note.DocumentKind(), receipt.No, note.No, note.DifferenceAmount)
	return note, nil
}

func validateCorrectionInput(no string, newPrice decimal.Decimal) error {
	if strings.TrimSpace(no) == "" {
		return fmt.Errorf("%w: document number is required", utils.ErrorInvalidArgument)
	}
	if newPrice.IsNegative() {
		return fmt.Errorf("%w: corrected price must not be negative", utils.ErrorInvalidArgument)
	}
	return nil
}

// correctionCore rebuilds the shared document fields around the corrected
// price. Everything not recomputed is carried from the receipt unchanged,
// including TotalEn/TotalTh: the source system never re-renders the words.
func correctionCore(receipt *ReceiptTaxInvoice, newPrice decimal.Decimal, rate decimal.Decimal) DocumentCore {
	taxAmount := correctionTaxAmount(newPrice, rate)
	total := newPrice.Add(taxAmount)

	core := receipt.DocumentCore
	core.Date = time.Now().UTC().Format(time.RFC3339Nano)
	core.Purpose = correctionPurpose
	core.References = &Reference{
		TypeCode: receipt.TypeCode,
		No:       receipt.No,
		Date:     receipt.Date,
	}
	core.Amount = newPrice
	core.TaxBasisAmount = newPrice
	core.TaxAmount = taxAmount
	core.Total = total
	core.Summary = Summary{Data: []SummaryLine{
		{Label: summaryLabelSub, Amount: newPrice},
		{Label: vatLabel(rate), Amount: taxAmount},
		{Label: summaryLabelTotal, Amount: total},
	}}
	return core
}

// Tax-exclusive: (amount / 100) * rate
func correctionTaxAmount(amount decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return amount.DivRound(decimal.NewFromInt(100), 4).Mul(rate)
}

// vatLabel interpolates the receipt's rate ("VAT 7%" for the standard
// fixtures). Label text only; the rate itself drives the math.
func vatLabel(rate decimal.Decimal) string {
	return fmt.Sprintf("VAT %s%%", rate.String())
}

// newDocumentNo generates a correction document number. ULIDs replace the
// source system's millisecond timestamps, which could collide when two
// corrections landed in the same tick.
func newDocumentNo(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, ulid.Make().String())
}

func (pc *PriceCorrector) logCorrection(ctx context.Context, kind DocumentKind, receiptNo string, noteNo string, difference decimal.Decimal) {
	if pc.Logger == nil {
		return
	}
	cid, _ := utils.GetCorrelationIdFromContext(ctx)
	pc.Logger.WithFields(logrus.Fields{
		"module":         "priceCorrection",
		"kind":           string(kind),
		"receipt_no":     receiptNo,
		"document_no":    noteNo,
		"difference":     difference.String(),
		"correlation_id": cid,
	}).Info("price correction persisted")
}
