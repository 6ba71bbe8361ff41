package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/DeepakJD1226/Consultancy/internal/model"
)

func reopen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	out, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	t.Cleanup(func() { _ = out.Close() })
	return out
}

func cell(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis)
	if err != nil {
		t.Fatalf("read %s!%s: %v", sheet, axis, err)
	}
	return v
}

func TestBillWorkbook(t *testing.T) {
	bill := model.Bill{
		BillNumber:    "BILL-002",
		BillDate:      time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC),
		TotalAmount:   4250,
		TaxAmount:     4250 * 0.18,
		GrandTotal:    4250 * 1.18,
		PaymentStatus: model.PaymentStatusPending,
	}
	customer := &model.Customer{Name: "Sri Textiles", Phone: "9876543211", Address: "45 Market Street, Salem"}
	order := &model.Order{FabricType: "Polyester Blend", QuantityMeters: 50, RatePerMeter: 85, TotalAmount: 4250}

	f, err := BillWorkbook(bill, customer, order)
	if err != nil {
		t.Fatalf("bill workbook: %v", err)
	}
	got := reopen(t, f)

	checks := map[string]string{
		"B4":  "BILL-002",
		"B5":  "14-02-2025",
		"B8":  "Sri Textiles",
		"A12": "Description",
		"D12": "Amount",
		"A13": "Polyester Blend",
		"B13": "50",
		"C13": "85",
		"D13": "4250",
		"A15": "Subtotal",
		"B15": "4250",
		"B16": "765",
		"A17": "Grand Total",
		"B17": "5015",
	}
	for axis, want := range checks {
		if v := cell(t, got, billSheet, axis); v != want {
			t.Fatalf("%s: expected %q, got %q", axis, want, v)
		}
	}
	if BillFilename(bill) != "BILL-002.xlsx" {
		t.Fatalf("unexpected filename %s", BillFilename(bill))
	}
}

func TestBillWorkbookWithoutCustomerOrOrder(t *testing.T) {
	f, err := BillWorkbook(model.Bill{BillNumber: "BILL-009", TotalAmount: 300}, nil, nil)
	if err != nil {
		t.Fatalf("bill workbook: %v", err)
	}
	got := reopen(t, f)
	if v := cell(t, got, billSheet, "B8"); v != "Unknown" {
		t.Fatalf("expected Unknown customer, got %q", v)
	}
	if v := cell(t, got, billSheet, "A13"); v != "-" {
		t.Fatalf("expected placeholder line item, got %q", v)
	}
	if v := cell(t, got, billSheet, "B13"); v != "" {
		t.Fatalf("expected empty quantity, got %q", v)
	}
	if v := cell(t, got, billSheet, "D13"); v != "300" {
		t.Fatalf("expected line amount 300, got %q", v)
	}
}

func TestSalesWorkbook(t *testing.T) {
	report := model.SalesReport{
		Summary: model.SalesSummary{TotalOrders: 3, TotalRevenue: 2100, AverageOrderValue: 700},
		FabricBreakdown: []model.FabricBreakdown{
			{FabricType: "Cotton", Orders: 2, QuantityMeters: 15, Revenue: 1600},
			{FabricType: "Silk", Orders: 1, QuantityMeters: 2, Revenue: 500},
		},
	}

	f, err := SalesWorkbook(report, "2025-03-01", "")
	if err != nil {
		t.Fatalf("sales workbook: %v", err)
	}
	got := reopen(t, f)

	if v := cell(t, got, salesSheet, "B2"); v != "2025-03-01 to -" {
		t.Fatalf("unexpected period %q", v)
	}
	if v := cell(t, got, salesSheet, "A7"); v != "Fabric Type" {
		t.Fatalf("expected header row, got %q", v)
	}
	if v := cell(t, got, salesSheet, "A8"); v != "Cotton" {
		t.Fatalf("expected Cotton row, got %q", v)
	}
	if v := cell(t, got, salesSheet, "D9"); v != "500" {
		t.Fatalf("expected Silk revenue 500, got %q", v)
	}
}

func TestMoneyRoundsForDisplay(t *testing.T) {
	if got := money(4250 * 1.18); got != 5015 {
		t.Fatalf("expected 5015, got %v", got)
	}
	if got := money(1.0 / 3.0); got != 0.33 {
		t.Fatalf("expected 0.33, got %v", got)
	}
}
