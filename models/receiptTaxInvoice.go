package models

// ReceiptTaxInvoice is the source document a price correction derives
// a credit note or debit note from.
type ReceiptTaxInvoice struct {
	DocumentCore
	RelatedPurchaseOrder  *Reference `json:"RelatedPurchaseOrder,omitempty"`
	RelatedDeliveryOrders *Reference `json:"RelatedDeliveryOrders,omitempty"`
}

func (r *ReceiptTaxInvoice) DocumentKind() DocumentKind { return DocumentKindReceiptTaxInvoice }
