package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/aseelyusef9/frontInvApp/internal/modules/invoice"
)

const invoicesSheet = "Invoices"

// ExcelWorkbook builds an .xlsx download of the given (already filtered and
// sorted) invoice list. One row per invoice; nothing is persisted.
func ExcelWorkbook(vendorName string, list []invoice.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(invoicesSheet); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{
		"Invoice ID", "Vendor", "Invoice Date", "Due Date", "Status",
		"Currency", "Subtotal", "Tax", "Shipping", "Total", "Line Items",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(invoicesSheet, cell, h)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(invoicesSheet, "A1", last, headerStyle)

	for i, inv := range list {
		row := i + 2
		f.SetCellValue(invoicesSheet, fmt.Sprintf("A%d", row), inv.InvoiceID)
		f.SetCellValue(invoicesSheet, fmt.Sprintf("B%d", row), inv.VendorName)
		f.SetCellValue(invoicesSheet, fmt.Sprintf("C%d", row), inv.InvoiceDate)
		f.SetCellValue(invoicesSheet, fmt.Sprintf("D%d", row), inv.DueDate)
		f.SetCellValue(invoicesSheet, fmt.Sprintf("E%d", row), inv.Status)
		f.SetCellValue(invoicesSheet, fmt.Sprintf("F%d", row), inv.Currency)
		if inv.Subtotal != nil {
			f.SetCellValue(invoicesSheet, fmt.Sprintf("G%d", row), *inv.Subtotal)
		}
		if inv.TaxAmount != nil {
			f.SetCellValue(invoicesSheet, fmt.Sprintf("H%d", row), *inv.TaxAmount)
		}
		if inv.ShippingCost != nil {
			f.SetCellValue(invoicesSheet, fmt.Sprintf("I%d", row), *inv.ShippingCost)
		}
		f.SetCellValue(invoicesSheet, fmt.Sprintf("J%d", row), inv.TotalAmount)
		f.SetCellValue(invoicesSheet, fmt.Sprintf("K%d", row), len(inv.Items))
	}

	// Sheet names cap at 31 chars; the vendor goes into the doc title.
	_ = f.SetDocProps(&excelize.DocProperties{Title: "Invoices - " + vendorName})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
