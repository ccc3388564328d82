package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aseelyusef9/frontInvApp/internal/http/middleware"
	"github.com/aseelyusef9/frontInvApp/internal/http/render"
	"github.com/aseelyusef9/frontInvApp/internal/modules/invoice"
	"github.com/aseelyusef9/frontInvApp/internal/shared/apperr"
	"github.com/aseelyusef9/frontInvApp/pkg/view"
)

// failPage renders the styled error page and records the error so the
// deferred handler still logs it.
func failPage(c *gin.Context, err error) {
	_ = c.Error(err)
	render.ErrorPage(c, apperr.HTTPStatus(err), apperr.PublicMessage(err), middleware.GetRequestID(c))
	c.Abort()
}

// normalizeReturnTo only accepts local paths; anything else falls back to
// the default destination.
func normalizeReturnTo(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") {
		return ""
	}
	return s
}

func invoiceRow(inv invoice.Invoice) view.InvoiceRow {
	return view.InvoiceRow{
		InvoiceID:   inv.InvoiceID,
		VendorName:  inv.VendorName,
		InvoiceDate: inv.InvoiceDate,
		DueDate:     inv.DueDate,
		Status:      inv.Status,
		Total:       view.FormatAmount(inv.Currency, inv.TotalAmount),
	}
}

func invoiceDetail(inv invoice.Invoice) view.InvoiceDetail {
	vm := view.InvoiceDetail{
		InvoiceID:        inv.InvoiceID,
		InvoiceNumber:    inv.InvoiceNumber,
		VendorName:       inv.VendorName,
		InvoiceDate:      inv.InvoiceDate,
		DueDate:          inv.DueDate,
		Status:           inv.Status,
		Currency:         inv.Currency,
		TotalAmount:      inv.TotalAmount,
		Total:            view.FormatAmount(inv.Currency, inv.TotalAmount),
		Subtotal:         view.FormatOptionalAmount(inv.Currency, inv.Subtotal),
		TaxAmount:        view.FormatOptionalAmount(inv.Currency, inv.TaxAmount),
		ShippingCost:     view.FormatOptionalAmount(inv.Currency, inv.ShippingCost),
		ShippingAddress:  inv.ShippingAddress,
		BillingAddress:   inv.BillingAddress,
		BillingRecipient: inv.BillingRecipient,
	}
	for _, it := range inv.Items {
		vm.Items = append(vm.Items, view.LineItemRow{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   view.FormatAmount(inv.Currency, it.UnitPrice),
			Amount:      view.FormatAmount(inv.Currency, it.Amount),
		})
	}
	return vm
}
