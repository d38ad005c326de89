package models_test

import (
	"testing"

	"github.com/mmdatafocus/etax_backend/models"
)

func TestQueryService_GetByKind(t *testing.T) {
	s := openSeededStore(t, testReceipt())
	qs := models.NewQueryService(s)

	for _, kind := range models.AllDocumentKinds {
		doc := qs.GetByKind(kind)
		if doc == nil {
			t.Fatalf("GetByKind(%s) returned nil", kind)
		}
		if doc.DocumentKind() != kind {
			t.Fatalf("GetByKind(%s) returned a %s", kind, doc.DocumentKind())
		}
	}

	if doc := qs.GetByKind(models.DocumentKind("Voucher")); doc != nil {
		t.Fatalf("unknown kind must return nil, got %v", doc)
	}
}

func TestQueryService_GetByKindAndNo(t *testing.T) {
	s := openSeededStore(t, testReceipt())
	qs := models.NewQueryService(s)

	doc := qs.GetByKindAndNo(models.DocumentKindReceiptTaxInvoice, "RT-2024-0001")
	if doc == nil {
		t.Fatal("exact match returned nil")
	}
	if doc.DocumentNo() != "RT-2024-0001" {
		t.Fatalf("unexpected No %s", doc.DocumentNo())
	}

	// The match is exact and case-sensitive.
	for _, no := range []string{"RT-2024-0002", "rt-2024-0001", "RT-2024-0001 ", ""} {
		if doc := qs.GetByKindAndNo(models.DocumentKindReceiptTaxInvoice, no); doc != nil {
			t.Fatalf("lookup %q should miss, got %s", no, doc.DocumentNo())
		}
	}
}
