package handlers

import (
	"fmt"
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
	"github.com/aseelyusef9/frontInvApp/internal/shared/apperr"
	"github.com/aseelyusef9/frontInvApp/pkg/view"
)

var pageSizeOptions = []int{10, 25, 50}

// InvoicesHandler serves the vendor search page: fetch by vendor, then
// shape the in-memory list with the query pipeline on every request.
type InvoicesHandler struct {
	Flash     *flash.Codec
	Extractor *extraction.Client
}

func NewInvoicesHandler(f *flash.Codec, e *extraction.Client) *InvoicesHandler {
	return &InvoicesHandler{Flash: f, Extractor: e}
}

func (h *InvoicesHandler) List(c *gin.Context) {
	// The invoice-ID search is a separate form; the detail page owns that
	// fetch.
	if id := strings.TrimSpace(c.Query("invoice_id")); id != "" {
		c.Redirect(http.StatusFound, "/invoice/"+url.PathEscape(id))
		return
	}

	vendor := strings.TrimSpace(c.Query("vendor"))
	opt := parseListOptions(c)

	data := gin.H{
		"Title":       "Invoices",
		"Vendor":      vendor,
		"Status":      opt.Status,
		"From":        opt.StartDate,
		"To":          opt.EndDate,
		"Size":        opt.PageSize,
		"SizeOptions": pageSizeOptions,
		"Sort":        string(opt.Sort),
		"Dir":         string(opt.Dir),
		"Searched":    vendor != "",
	}

	if vendor == "" {
		render.Page(c, http.StatusOK, "invoices.html", data)
		return
	}

	// Every search is an independent round trip; nothing is cached across
	// requests.
	list, err := h.Extractor.VendorInvoices(c.Request.Context(), vendor)
	if err != nil {
		data["AlertError"] = apperr.PublicMessage(err)
		render.Page(c, apperr.HTTPStatus(err), "invoices.html", data)
		return
	}

	res := invoice.Apply(list, opt)

	rows := make([]view.InvoiceRow, 0, len(res.Invoices))
	for _, inv := range res.Invoices {
		rows = append(rows, invoiceRow(inv))
	}

	data["Rows"] = rows
	data["Total"] = res.Total
	data["Page"] = res.Page
	data["TotalPages"] = res.TotalPages
	data["SortLinks"] = h.sortLinks(vendor, opt)
	data["PageLinks"] = h.pageLinks(vendor, opt, res.TotalPages)
	data["ExportURL"] = "/invoices/export.xlsx?" + listQuery(vendor, opt).Encode()
	render.Page(c, http.StatusOK, "invoices.html", data)
}

// Export downloads the whole filtered+sorted list (not just the visible
// page) as a workbook.
func (h *InvoicesHandler) Export(c *gin.Context) {
	vendor := strings.TrimSpace(c.Query("vendor"))
	if vendor == "" {
		render.RedirectWithFlash(c, h.Flash, "/invoices", view.FlashWarning, "Search for a vendor before exporting.")
		return
	}

	list, err := h.Extractor.VendorInvoices(c.Request.Context(), vendor)
	if err != nil {
		render.RedirectWithFlash(c, h.Flash, "/invoices?vendor="+url.QueryEscape(vendor), view.FlashError, apperr.PublicMessage(err))
		return
	}

	opt := parseListOptions(c)
	opt.Page = 1
	opt.PageSize = len(list) + 1 // single page holding everything
	res := invoice.Apply(list, opt)

	book, err := export.ExcelWorkbook(vendor, res.Invoices)
	if err != nil {
		render.RedirectWithFlash(c, h.Flash, "/invoices?vendor="+url.QueryEscape(vendor), view.FlashError, "The export could not be generated.")
		return
	}

	filename := fmt.Sprintf("invoices-%s.xlsx", strings.ReplaceAll(strings.ToLower(vendor), " ", "-"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}

func parseListOptions(c *gin.Context) invoice.Options {
	opt := invoice.Options{
		Status:    c.DefaultQuery("status", "all"),
		StartDate: strings.TrimSpace(c.Query("from")),
		EndDate:   strings.TrimSpace(c.Query("to")),
		Sort:      invoice.SortField(c.DefaultQuery("sort", string(invoice.SortInvoiceDate))),
		Dir:       invoice.SortDir(c.DefaultQuery("dir", string(invoice.Asc))),
		Page:      1,
		PageSize:  invoice.DefaultPageSize,
	}
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n > 0 {
		opt.Page = n
	}
	if n, err := strconv.Atoi(c.Query("size")); err == nil {
		for _, allowed := range pageSizeOptions {
			if n == allowed {
				opt.PageSize = n
			}
		}
	}
	switch opt.Sort {
	case invoice.SortInvoiceDate, invoice.SortDueDate, invoice.SortTotalAmount, invoice.SortVendorName:
	default:
		opt.Sort = invoice.SortInvoiceDate
	}
	return opt
}

func listQuery(vendor string, opt invoice.Options) url.Values {
	q := url.Values{}
	q.Set("vendor", vendor)
	if opt.Status != "" && !strings.EqualFold(opt.Status, "all") {
		q.Set("status", opt.Status)
	}
	if opt.StartDate != "" {
		q.Set("from", opt.StartDate)
	}
	if opt.EndDate != "" {
		q.Set("to", opt.EndDate)
	}
	q.Set("sort", string(opt.Sort))
	q.Set("dir", string(opt.Dir))
	q.Set("size", strconv.Itoa(opt.PageSize))
	if opt.Page > 1 {
		q.Set("page", strconv.Itoa(opt.Page))
	}
	return q
}

// sortLinks bakes the toggle rule into each header's href. A sort change
// keeps the current page; only filter and page-size changes reset it.
func (h *InvoicesHandler) sortLinks(vendor string, opt invoice.Options) map[string]view.SortLink {
	links := make(map[string]view.SortLink, 4)
	for field, label := range map[invoice.SortField]string{
		invoice.SortInvoiceDate: "Invoice Date",
		invoice.SortDueDate:     "Due Date",
		invoice.SortTotalAmount: "Total",
		invoice.SortVendorName:  "Vendor",
	} {
		next := opt
		next.Sort, next.Dir = invoice.Toggle(opt, field)
		links[string(field)] = view.SortLink{
			Label:  label,
			URL:    "/invoices?" + listQuery(vendor, next).Encode(),
			Active: opt.Sort == field,
			Desc:   opt.Dir == invoice.Desc,
		}
	}
	return links
}

func (h *InvoicesHandler) pageLinks(vendor string, opt invoice.Options, totalPages int) []view.PageLink {
	links := make([]view.PageLink, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		next := opt
		next.Page = i
		links = append(links, view.PageLink{
			Number:  i,
			URL:     "/invoices?" + listQuery(vendor, next).Encode(),
			Current: i == opt.Page,
		})
	}
	return links
}
