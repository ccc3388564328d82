package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/aseelyusef9/frontInvApp/internal/modules/invoice"
	"github.com/aseelyusef9/frontInvApp/pkg/view"
)

// InvoicePDF renders one invoice as a printable A4 document.
func InvoicePDF(inv invoice.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Invoice "+inv.InvoiceNumber)
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	field := func(label, value string) {
		if value == "" {
			return
		}
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	field("Vendor", inv.VendorName)
	field("Invoice Date", inv.InvoiceDate)
	field("Due Date", inv.DueDate)
	field("Status", inv.Status)
	field("Billing Recipient", inv.BillingRecipient)
	field("Billing Address", inv.BillingAddress)
	field("Shipping Address", inv.ShippingAddress)
	pdf.Ln(4)

	if len(inv.Items) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(90, 8, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 8, "Qty", "1", 0, "R", true, 0, "")
		pdf.CellFormat(35, 8, "Unit Price", "1", 0, "R", true, 0, "")
		pdf.CellFormat(35, 8, "Amount", "1", 1, "R", true, 0, "")

		pdf.SetFont("Arial", "", 11)
		for _, it := range inv.Items {
			pdf.CellFormat(90, 8, it.Description, "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 8, fmt.Sprintf("%g", it.Quantity), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 8, view.FormatAmount(inv.Currency, it.UnitPrice), "1", 0, "R", false, 0, "")
			pdf.CellFormat(35, 8, view.FormatAmount(inv.Currency, it.Amount), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	totals := func(label string, amount *float64) {
		if amount == nil {
			return
		}
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(150, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, view.FormatAmount(inv.Currency, *amount), "", 1, "R", false, 0, "")
	}
	totals("Subtotal", inv.Subtotal)
	totals("Tax", inv.TaxAmount)
	totals("Shipping", inv.ShippingCost)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(150, 9, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 9, view.FormatAmount(inv.Currency, inv.TotalAmount), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
