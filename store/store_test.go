package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/etax_backend/models"
	"github.com/mmdatafocus/etax_backend/store"
	"github.com/mmdatafocus/etax_backend/utils"
)

func testCore(typeCode string, no string) models.DocumentCore {
	amount := decimal.NewFromInt(500)
	tax := decimal.NewFromInt(35)
	return models.DocumentCore{
		TypeCode:     typeCode,
		No:           no,
		Date:         "2024-01-15T10:30:00Z",
		CurrencyCode: "THB",
		Amount:       amount,
		TaxAmount:    tax,
		Taxes:        models.Taxes{Tax: []models.Tax{{Code: "VAT", Rate: decimal.NewFromInt(7), Amount: tax}}},
		Total:        amount.Add(tax),
	}
}

func allDocs() []models.MonetaryDocument {
	return []models.MonetaryDocument{
		&models.PurchaseOrder{DocumentCore: testCore("PO", "PO-0001")},
		&models.CreditNote{DocumentCore: testCore("CN", "CN-0001")},
		&models.DebitNote{DocumentCore: testCore("DN", "DN-0001")},
		&models.DeliveryOrderTaxInvoice{DocumentCore: testCore("DO", "DO-0001")},
		&models.ReceiptTaxInvoice{DocumentCore: testCore("RT", "RT-0001")},
	}
}

func seededDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := store.Seed(dir, allDocs()...); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return dir
}

func TestOpen_LoadsAllKinds(t *testing.T) {
	s, err := store.Open(seededDir(t), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, kind := range models.AllDocumentKinds {
		doc := s.Document(kind)
		if doc == nil {
			t.Fatalf("Document(%s) is nil after open", kind)
		}
		if doc.DocumentKind() != kind {
			t.Fatalf("Document(%s) decoded as %s", kind, doc.DocumentKind())
		}
	}
	receipt := s.ReceiptTaxInvoice()
	if receipt == nil || receipt.No != "RT-0001" {
		t.Fatalf("typed receipt accessor: %+v", receipt)
	}
}

func TestOpen_MissingFixtureFails(t *testing.T) {
	dir := seededDir(t)
	if err := os.Remove(filepath.Join(dir, models.DocumentKindDebitNote.FileName())); err != nil {
		t.Fatalf("remove: %v", err)
	}
	_, err := store.Open(dir, nil)
	if err == nil {
		t.Fatal("expected an error for a missing fixture")
	}
	var storageErr *utils.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %T: %v", err, err)
	}
}

func TestOpen_RejectsMalformedFixture(t *testing.T) {
	dir := seededDir(t)
	path := filepath.Join(dir, models.DocumentKindReceiptTaxInvoice.FileName())
	if err := os.WriteFile(path, []byte(`{"GetInvoice":{"TypeCode":"RT"}}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := store.Open(dir, nil); err == nil {
		t.Fatal("expected an error for a fixture missing required fields")
	}

	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var storageErr *utils.StorageError
	if _, err := store.Open(dir, nil); !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError for corrupt JSON, got %v", err)
	}
}

func TestSave_OverwritesSlotAndFile(t *testing.T) {
	dir := seededDir(t)
	s, err := store.Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	note := &models.CreditNote{DocumentCore: testCore("CN", "CN-0002")}
	note.OriginalAmount = decimal.NewFromInt(500)
	note.CorrectAmount = decimal.NewFromInt(400)
	note.DifferenceAmount = decimal.NewFromInt(100)
	if err := s.Save(context.Background(), note); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if got := s.Document(models.DocumentKindCreditNote).DocumentNo(); got != "CN-0002" {
		t.Fatalf("slot expected CN-0002, got %s", got)
	}

	reopened, err := store.Open(dir, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	persisted, ok := reopened.Document(models.DocumentKindCreditNote).(*models.CreditNote)
	if !ok || persisted.No != "CN-0002" {
		t.Fatalf("persisted document mismatch: %+v", persisted)
	}
	if !persisted.DifferenceAmount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("persisted DifferenceAmount expected 100, got %s", persisted.DifferenceAmount)
	}
}

func TestSave_KeepsGetInvoiceWrapper(t *testing.T) {
	dir := seededDir(t)
	s, err := store.Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.Save(context.Background(), &models.DebitNote{DocumentCore: testCore("DN", "DN-0002")}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, models.DocumentKindDebitNote.FileName()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var file map[string]json.RawMessage
	if err := json.Unmarshal(raw, &file); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	payload, ok := file["GetInvoice"]
	if !ok {
		t.Fatal("persisted file lost its GetInvoice wrapper")
	}
	var doc struct {
		No     string          `json:"No"`
		Amount decimal.Decimal `json:"Amount"`
	}
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if doc.No != "DN-0002" {
		t.Fatalf("payload No expected DN-0002, got %s", doc.No)
	}
	// Amounts are stored as plain JSON numbers, not quoted strings.
	if !doc.Amount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("payload Amount expected 500, got %s", doc.Amount)
	}
}

func TestSave_RejectsInvalidDocument(t *testing.T) {
	dir := seededDir(t)
	s, err := store.Open(dir, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	bad := &models.CreditNote{DocumentCore: testCore("CN", "")}
	if err := s.Save(context.Background(), bad); !errors.Is(err, utils.ErrorInvalidArgument) {
		t.Fatalf("expected ErrorInvalidArgument, got %v", err)
	}
	// Neither slot nor file may have changed.
	if got := s.Document(models.DocumentKindCreditNote).DocumentNo(); got != "CN-0001" {
		t.Fatalf("slot mutated by failed save: %s", got)
	}
	reopened, err := store.Open(dir, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := reopened.Document(models.DocumentKindCreditNote).DocumentNo(); got != "CN-0001" {
		t.Fatalf("file mutated by failed save: %s", got)
	}
}

func TestSave_HonorsCancelledContext(t *testing.T) {
	s, err := store.Open(seededDir(t), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Save(ctx, &models.CreditNote{DocumentCore: testCore("CN", "CN-0003")}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := s.Document(models.DocumentKindCreditNote).DocumentNo(); got != "CN-0001" {
		t.Fatalf("slot mutated by cancelled save: %s", got)
	}
}
