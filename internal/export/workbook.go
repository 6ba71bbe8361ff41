package export

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/DeepakJD1226/Consultancy/internal/model"
)

// ContentType is the MIME type of generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	companyName = "R.K. Textiles"
	dateLayout  = "02-01-2006"
	billSheet   = "Invoice"
	salesSheet  = "Sales"
)

var (
	salesHeaders    = []string{"Fabric Type", "Orders", "Quantity (m)", "Revenue"}
	lineItemHeaders = []string{"Description", "Quantity (m)", "Rate per Meter", "Amount"}
)

// BillFilename returns the attachment name for a bill workbook.
func BillFilename(bill model.Bill) string {
	return bill.BillNumber + ".xlsx"
}

// BillWorkbook renders a tax invoice for the bill. customer and order may be
// nil when the bill references a removed record or was raised manually.
func BillWorkbook(bill model.Bill, customer *model.Customer, order *model.Order) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", billSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	name, phone, address := "Unknown", "N/A", ""
	if customer != nil {
		name, phone, address = customer.Name, customer.Phone, customer.Address
	}

	rows := [][]interface{}{
		{companyName},
		{"TAX INVOICE"},
		{},
		{"Bill Number", bill.BillNumber},
		{"Bill Date", bill.BillDate.Format(dateLayout)},
		{"Payment Status", bill.PaymentStatus},
		{},
		{"Bill To", name},
		{"Phone", phone},
		{"Address", address},
		{},
		toRow(lineItemHeaders),
		lineItem(bill, order),
		{},
		{"Subtotal", money(bill.TotalAmount)},
		{"GST", money(bill.TaxAmount)},
		{"Grand Total", money(bill.GrandTotal)},
	}
	if err := writeRows(f, billSheet, rows); err != nil {
		return nil, err
	}

	headerRow, totalRow := 12, len(rows)
	_ = f.SetCellStyle(billSheet, "A1", "A1", title)
	_ = f.SetCellStyle(billSheet, "A2", "A2", bold)
	_ = f.SetCellStyle(billSheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("D%d", headerRow), bold)
	_ = f.SetCellStyle(billSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("B%d", totalRow), bold)
	_ = f.SetColWidth(billSheet, "A", "A", 18)
	_ = f.SetColWidth(billSheet, "B", "B", 36)
	_ = f.SetColWidth(billSheet, "C", "D", 16)
	return f, nil
}

// lineItem is the invoiced order. A manual bill has no order and is shown as
// a single amount.
func lineItem(bill model.Bill, order *model.Order) []interface{} {
	if order == nil {
		return []interface{}{"-", nil, nil, money(bill.TotalAmount)}
	}
	return []interface{}{order.FabricType, money(order.QuantityMeters), money(order.RatePerMeter), money(order.TotalAmount)}
}

// SalesWorkbook renders the sales report with its fabric breakdown.
func SalesWorkbook(report model.SalesReport, fromDate, toDate string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", salesSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	period := "All time"
	if fromDate != "" || toDate != "" {
		period = fmt.Sprintf("%s to %s", orDash(fromDate), orDash(toDate))
	}

	rows := [][]interface{}{
		{companyName + " Sales Report"},
		{"Period", period},
		{"Total Orders", report.Summary.TotalOrders},
		{"Total Revenue", money(report.Summary.TotalRevenue)},
		{"Average Order Value", money(report.Summary.AverageOrderValue)},
		{},
		toRow(salesHeaders),
	}
	for _, fb := range report.FabricBreakdown {
		rows = append(rows, []interface{}{fb.FabricType, fb.Orders, money(fb.QuantityMeters), money(fb.Revenue)})
	}
	if err := writeRows(f, salesSheet, rows); err != nil {
		return nil, err
	}

	headerRow := 7
	first, _ := excelize.CoordinatesToCellName(1, headerRow)
	last, _ := excelize.CoordinatesToCellName(len(salesHeaders), headerRow)
	_ = f.SetCellStyle(salesSheet, first, last, header)

	widths := []float64{24, 10, 14, 16}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(salesSheet, col, col, w)
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	return nil
}

// money rounds to paise for display. Stored amounts are never rounded.
func money(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}

func toRow(values []string) []interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
