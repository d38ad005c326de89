package models_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/etax_backend/models"
	"github.com/mmdatafocus/etax_backend/utils"
)

func TestFlatTaxRate(t *testing.T) {
	cases := []struct {
		name     string
		taxes    []models.Tax
		expected string
		wantErr  error
	}{
		{
			name:     "single line",
			taxes:    []models.Tax{{Code: "VAT", Rate: decimal.NewFromInt(7)}},
			expected: "7",
		},
		{
			name: "duplicate lines with one rate collapse",
			taxes: []models.Tax{
				{Code: "VAT", Rate: decimal.NewFromInt(7)},
				{Code: "VAT", Rate: decimal.NewFromInt(7)},
			},
			expected: "7",
		},
		{
			name: "differing rates are rejected",
			taxes: []models.Tax{
				{Code: "VAT", Rate: decimal.NewFromInt(7)},
				{Code: "SBT", Rate: decimal.NewFromInt(3)},
			},
			wantErr: utils.ErrorAmbiguousTaxRate,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := testCore("RT", "RT-2024-0001")
			doc.Taxes = models.Taxes{Tax: tc.taxes}
			rate, err := doc.FlatTaxRate()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FlatTaxRate: %v", err)
			}
			if rate.String() != tc.expected {
				t.Fatalf("rate expected %s, got %s", tc.expected, rate)
			}
		})
	}
}

func TestFlatTaxRate_NoTaxLine(t *testing.T) {
	doc := testCore("RT", "RT-2024-0001")
	doc.Taxes = models.Taxes{}
	if _, err := doc.FlatTaxRate(); err == nil {
		t.Fatal("expected an error for a document without tax lines")
	}
}

func TestValidateDocument(t *testing.T) {
	receipt := testReceipt()
	if err := models.ValidateDocument(receipt); err != nil {
		t.Fatalf("valid receipt rejected: %v", err)
	}

	missingNo := testReceipt()
	missingNo.No = ""
	if err := models.ValidateDocument(missingNo); !errors.Is(err, utils.ErrorInvalidArgument) {
		t.Fatalf("expected ErrorInvalidArgument for missing No, got %v", err)
	}

	missingDate := testReceipt()
	missingDate.Date = ""
	if err := models.ValidateDocument(missingDate); !errors.Is(err, utils.ErrorInvalidArgument) {
		t.Fatalf("expected ErrorInvalidArgument for missing Date, got %v", err)
	}

	if err := models.ValidateDocument(nil); !errors.Is(err, utils.ErrorInvalidArgument) {
		t.Fatalf("expected ErrorInvalidArgument for nil document, got %v", err)
	}
}
