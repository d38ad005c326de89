package models

import "context"

// DocumentReader is the read side of the fixture store.
type DocumentReader interface {
	// Document returns the current in-memory document for the kind,
	// or nil when nothing is loaded for it.
	Document(kind DocumentKind) MonetaryDocument
}

// CorrectionStore is what the price-correction engine needs from the
// store: the current receipt, and durable replacement of the derived
// document slots. Save must persist before swapping the in-memory slot,
// or fail without touching either.
type CorrectionStore interface {
	ReceiptTaxInvoice() *ReceiptTaxInvoice
	SaveCreditNote(ctx context.Context, note *CreditNote) error
	SaveDebitNote(ctx context.Context, note *DebitNote) error
}
