package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aseelyusef9/frontInvApp/internal/http/flash"
	"github.com/aseelyusef9/frontInvApp/internal/http/render"
	"github.com/aseelyusef9/frontInvApp/internal/modules/export"
	"github.com/aseelyusef9/frontInvApp/internal/modules/extraction"
	"github.com/aseelyusef9/frontInvApp/internal/modules/invoice"
	"github.com/aseelyusef9/frontInvApp/pkg/view"
)

// InvoiceHandler serves the detail page. The fetched record is the source
// of truth; the edit form produces a draft that only ever overlays the
// rendered view and is never sent to the backend.
type InvoiceHandler struct {
	Flash     *flash.Codec
	Extractor *extraction.Client
}

func NewInvoiceHandler(f *flash.Codec, e *extraction.Client) *InvoiceHandler {
	return &InvoiceHandler{Flash: f, Extractor: e}
}

func (h *InvoiceHandler) Show(c *gin.Context) {
	id := c.Param("id")

	inv, err := h.Extractor.Invoice(c.Request.Context(), id)
	if err != nil {
		failPage(c, err)
		return
	}

	render.Page(c, http.StatusOK, "invoice.html", gin.H{
		"Title":   "Invoice " + inv.InvoiceNumber,
		"Invoice": invoiceDetail(inv),
		"Edit":    c.Query("edit") == "1",
	})
}

type editInput struct {
	VendorName       string `form:"vendor_name"`
	InvoiceDate      string `form:"invoice_date"`
	DueDate          string `form:"due_date"`
	Status           string `form:"status"`
	TotalAmount      string `form:"total_amount"`
	Subtotal         string `form:"subtotal"`
	TaxAmount        string `form:"tax_amount"`
	ShippingCost     string `form:"shipping_cost"`
	ShippingAddress  string `form:"shipping_address"`
	BillingAddress   string `form:"billing_address"`
	BillingRecipient string `form:"billing_recipient"`
}

// Save re-fetches the source record, overlays the submitted draft and
// renders the result. Nothing is persisted and nothing reaches the
// backend; a page reload shows the original record again.
func (h *InvoiceHandler) Save(c *gin.Context) {
	id := c.Param("id")

	inv, err := h.Extractor.Invoice(c.Request.Context(), id)
	if err != nil {
		failPage(c, err)
		return
	}

	var in editInput
	_ = c.ShouldBind(&in)
	applyDraft(&inv, in)

	render.Page(c, http.StatusOK, "invoice.html", gin.H{
		"Title":   "Invoice " + inv.InvoiceNumber,
		"Invoice": invoiceDetail(inv),
		"Edit":    false,
		"Flash":   &view.Flash{Kind: view.FlashSuccess, Message: "Changes applied to this view. Nothing was saved to the backend."},
	})
}

func (h *InvoiceHandler) Pdf(c *gin.Context) {
	id := c.Param("id")

	inv, err := h.Extractor.Invoice(c.Request.Context(), id)
	if err != nil {
		failPage(c, err)
		return
	}

	doc, err := export.InvoicePDF(inv)
	if err != nil {
		failPage(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="invoice-`+url.PathEscape(inv.InvoiceID)+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func applyDraft(inv *invoice.Invoice, in editInput) {
	setStr := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	setStr(&inv.VendorName, in.VendorName)
	setStr(&inv.InvoiceDate, in.InvoiceDate)
	setStr(&inv.DueDate, in.DueDate)
	setStr(&inv.Status, in.Status)
	setStr(&inv.ShippingAddress, in.ShippingAddress)
	setStr(&inv.BillingAddress, in.BillingAddress)
	setStr(&inv.BillingRecipient, in.BillingRecipient)

	if f, err := strconv.ParseFloat(strings.TrimSpace(in.TotalAmount), 64); err == nil {
		inv.TotalAmount = f
	}
	setOpt := func(dst **float64, v string) {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			*dst = &f
		}
	}
	setOpt(&inv.Subtotal, in.Subtotal)
	setOpt(&inv.TaxAmount, in.TaxAmount)
	setOpt(&inv.ShippingCost, in.ShippingCost)
}
