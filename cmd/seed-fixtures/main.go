// seed-fixtures writes a complete sample fixture set (all five document
// kinds) so a fresh checkout can serve documents immediately.
//
// Usage (from backend directory):
//   FIXTURE_DIR=data go run ./cmd/seed-fixtures
//
// Existing fixture files are left alone unless FORCE_SEED=true.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/etax_backend/config"
	"github.com/mmdatafocus/etax_backend/models"
	"github.com/mmdatafocus/etax_backend/store"
)

func main() {
	dir := config.FixtureDir()

	if !forceSeed() {
		for _, kind := range models.AllDocumentKinds {
			if _, err := os.Stat(filepath.Join(dir, kind.FileName())); err == nil {
				fmt.Fprintf(os.Stderr, "%s already exists in %s; set FORCE_SEED=true to overwrite\n", kind.FileName(), dir)
				os.Exit(2)
			}
		}
	}

	if err := store.Seed(dir,
		samplePurchaseOrder(),
		sampleCreditNote(),
		sampleDebitNote(),
		sampleDeliveryOrderTaxInvoice(),
		sampleReceiptTaxInvoice(),
	); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed fixtures: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seeded %d fixture files in %s\n", len(models.AllDocumentKinds), dir)
}

func forceSeed() bool {
	return os.Getenv("FORCE_SEED") == "true"
}

func sampleSeller() models.Party {
	return models.Party{
		ID:           "S-0001",
		Name:         "Siam Office Supply Co., Ltd.",
		TaxID:        "0105551234567",
		TaxIDType:    "TXID",
		Branch:       0,
		BuildingNo:   88,
		BuildingName: "Sathorn Square",
		Street:       "North Sathorn Road",
		District:     "Silom",
		City:         "Bang Rak",
		Province:     "Bangkok",
		PostalCode:   10500,
		CountryCode:  "TH",
		CountryName:  "Thailand",
		Telephone:    "+66-2-123-4567",
		Contact:      "Kanda S.",
		Department:   "Sales",
		Email:        "sales@siamoffice.example",
	}
}

func sampleBuyer() models.Party {
	return models.Party{
		ID:           "B-0001",
		Name:         "Chao Phraya Trading Ltd.",
		TaxID:        "0105557654321",
		TaxIDType:    "TXID",
		Branch:       1,
		BuildingNo:   120,
		BuildingName: "River Tower",
		Street:       "Charoen Krung Road",
		District:     "Bang Kho Laem",
		City:         "Bangkok",
		Province:     "Bangkok",
		PostalCode:   10120,
		CountryCode:  "TH",
		CountryName:  "Thailand",
		Telephone:    "+66-2-765-4321",
		Contact:      "Somchai P.",
		Department:   "Procurement",
		Email:        "purchasing@cptrading.example",
	}
}

func sampleCore(typeCode string, nameTh string, nameEn string, no string, date string) models.DocumentCore {
	amount := decimal.NewFromInt(1000)
	tax := decimal.NewFromInt(70)
	total := amount.Add(tax)
	return models.DocumentCore{
		TypeCode:      typeCode,
		TypeNameTh:    nameTh,
		TypeNameEn:    nameEn,
		No:            no,
		Date:          date,
		Seller:        sampleSeller(),
		Buyer:         sampleBuyer(),
		DueDate:       "2024-02-15T00:00:00Z",
		PurposeCode:   "P01",
		Purpose:       "Standard sale",
		CurrencyCode:  "THB",
		Currency:      "Thai Baht",
		TotalQuantity: 10,
		Quantity:      10,
		LineItems: models.LineItems{Item: []models.Item{
			{
				No:        1,
				Id:        1001,
				Name:      "A4 copy paper",
				Quantity:  10,
				Unit:      "box",
				Price:     decimal.NewFromInt(100),
				Amount:    amount,
				Tax:       models.Tax{Code: "VAT", Rate: decimal.NewFromInt(7), Amount: tax},
				TaxAmount: tax,
				Total:     total,
			},
		}},
		Amount:         amount,
		TaxBasisAmount: amount,
		TaxAmount:      tax,
		Taxes:          models.Taxes{Tax: []models.Tax{{Code: "VAT", Rate: decimal.NewFromInt(7), Amount: tax}}},
		Total:          total,
		Summary: models.Summary{Data: []models.SummaryLine{
			{Label: "sum", Amount: amount},
			{Label: "VAT 7%", Amount: tax},
			{Label: "Total sum", Amount: total},
		}},
		TotalEn:  "One thousand seventy baht",
		TotalTh:  "หนึ่งพันเจ็ดสิบบาทถ้วน",
		Settings: models.Settings{TaxInclusive: false, InlineTax: true},
		Manager:  "Kanda Srisuwan",
		Position: "Managing Director",
	}
}

func samplePurchaseOrder() *models.PurchaseOrder {
	return &models.PurchaseOrder{
		DocumentCore: sampleCore("PO", "ใบสั่งซื้อ", "Purchase Order", "PO-2024-0001", "2024-01-10T09:00:00Z"),
	}
}

func sampleReceiptTaxInvoice() *models.ReceiptTaxInvoice {
	r := &models.ReceiptTaxInvoice{
		DocumentCore: sampleCore("RT", "ใบเสร็จรับเงิน/ใบกำกับภาษี", "Receipt/Tax Invoice", "RT-2024-0001", "2024-01-15T10:30:00Z"),
	}
	r.RelatedPurchaseOrder = &models.Reference{TypeCode: "PO", No: "PO-2024-0001", Date: "2024-01-10T09:00:00Z"}
	return r
}

func sampleDeliveryOrderTaxInvoice() *models.DeliveryOrderTaxInvoice {
	d := &models.DeliveryOrderTaxInvoice{
		DocumentCore:  sampleCore("DO", "ใบส่งของ/ใบกำกับภาษี", "Delivery Order/Tax Invoice", "DO-2024-0001", "2024-01-12T14:00:00Z"),
		FormOfPayment: "Credit 30 days",
	}
	d.RelatedPurchaseOrder = &models.Reference{TypeCode: "PO", No: "PO-2024-0001", Date: "2024-01-10T09:00:00Z"}
	return d
}

// The credit/debit note fixtures exist so the store can open before any
// correction has ever run. They get overwritten by the first correction.
func sampleCreditNote() *models.CreditNote {
	core := sampleCore("CN", "ใบลดหนี้", "Credit Note", "CN-2024-0000", "2024-01-20T08:00:00Z")
	core.Purpose = "Price Adjustment"
	core.References = &models.Reference{TypeCode: "RT", No: "RT-2024-0001", Date: "2024-01-15T10:30:00Z"}
	return &models.CreditNote{
		DocumentCore:     core,
		OriginalAmount:   decimal.NewFromInt(1000),
		CorrectAmount:    decimal.NewFromInt(1000),
		DifferenceAmount: decimal.Zero,
	}
}

func sampleDebitNote() *models.DebitNote {
	core := sampleCore("DN", "ใบเพิ่มหนี้", "Debit Note", "DN-2024-0000", "2024-01-20T08:00:00Z")
	core.Purpose = "Price Adjustment"
	core.References = &models.Reference{TypeCode: "RT", No: "RT-2024-0001", Date: "2024-01-15T10:30:00Z"}
	return &models.DebitNote{
		DocumentCore:     core,
		OriginalAmount:   decimal.NewFromInt(1000),
		CorrectAmount:    decimal.NewFromInt(1000),
		DifferenceAmount: decimal.Zero,
	}
}
