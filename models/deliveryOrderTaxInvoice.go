package models

type DeliveryOrderTaxInvoice struct {
	DocumentCore
	Remark               string     `json:"Remark"`
	FormOfPayment        string     `json:"FormOfPayment"`
	RelatedReceipt       *Reference `json:"RelatedReceipt,omitempty"`
	RelatedPurchaseOrder *Reference `json:"RelatedPurchaseOrder,omitempty"`
}

func (d *DeliveryOrderTaxInvoice) DocumentKind() DocumentKind {
	return DocumentKindDeliveryOrderTaxInvoice
}
