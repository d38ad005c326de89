package models

type DocumentKind string

const (
	DocumentKindPurchaseOrder           DocumentKind = "PurchaseOrder"
	DocumentKindCreditNote              DocumentKind = "CreditNote"
	DocumentKindDebitNote               DocumentKind = "DebitNote"
	DocumentKindDeliveryOrderTaxInvoice DocumentKind = "DeliveryOrderTaxInvoice"
	DocumentKindReceiptTaxInvoice       DocumentKind = "ReceiptTaxInvoice"
)

var AllDocumentKinds = []DocumentKind{
	DocumentKindPurchaseOrder,
	DocumentKindCreditNote,
	DocumentKindDebitNote,
	DocumentKindDeliveryOrderTaxInvoice,
	DocumentKindReceiptTaxInvoice,
}

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentKindPurchaseOrder,
		DocumentKindCreditNote,
		DocumentKindDebitNote,
		DocumentKindDeliveryOrderTaxInvoice,
		DocumentKindReceiptTaxInvoice:
		return true
	}
	return false
}

// FileName returns the fixture file the kind is persisted to. The names
// predate this backend; existing data directories keep working.
func (k DocumentKind) FileName() string {
	switch k {
	case DocumentKindPurchaseOrder:
		return "PO.json"
	case DocumentKindCreditNote:
		return "Credit_Note.json"
	case DocumentKindDebitNote:
		return "Debit_Note.json"
	case DocumentKindDeliveryOrderTaxInvoice:
		return "Delivery_OrderTax_Invoice.json"
	case DocumentKindReceiptTaxInvoice:
		return "ReceiptTax_Invoice.json"
	}
	return ""
}

// NewDocument returns an empty document of the kind, for decoding.
func (k DocumentKind) NewDocument() MonetaryDocument {
	switch k {
	case DocumentKindPurchaseOrder:
		return &PurchaseOrder{}
	case DocumentKindCreditNote:
		return &CreditNote{}
	case DocumentKindDebitNote:
		return &DebitNote{}
	case DocumentKindDeliveryOrderTaxInvoice:
		return &DeliveryOrderTaxInvoice{}
	case DocumentKindReceiptTaxInvoice:
		return &ReceiptTaxInvoice{}
	}
	return nil
}
