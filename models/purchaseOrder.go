package models

type PurchaseOrder struct {
	DocumentCore
	IssueToBranch         int        `json:"IssueToBranch"`
	Remark                string     `json:"Remark"`
	RelatedReceipt        *Reference `json:"RelatedReceipt,omitempty"`
	RelatedDeliveryOrders *Reference `json:"RelatedDeliveryOrders,omitempty"`
}

func (po *PurchaseOrder) DocumentKind() DocumentKind { return DocumentKindPurchaseOrder }
