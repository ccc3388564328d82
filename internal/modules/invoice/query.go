package invoice

import (
	"sort"
	"strings"
	"time"
)

type SortField string

const (
	SortInvoiceDate SortField = "invoiceDate"
	SortDueDate     SortField = "dueDate"
	SortTotalAmount SortField = "totalAmount"
	SortVendorName  SortField = "vendorName"
)

type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

// Options drive the filter -> sort -> paginate pipeline. Status "" or "all"
// disables the status filter; empty date bounds disable the range filter.
type Options struct {
	Status    string
	StartDate string // inclusive, YYYY-MM-DD
	EndDate   string // inclusive, YYYY-MM-DD
	Sort      SortField
	Dir       SortDir
	Page      int // 1-based
	PageSize  int
}

// Result is one page of the shaped list plus enough to draw a pager.
type Result struct {
	Invoices   []Invoice
	Total      int // after filtering, before paging
	Page       int
	PageSize   int
	TotalPages int
}

const DefaultPageSize = 10

// Apply runs the pipeline in its fixed order: status filter, start bound,
// end bound, sort, page slice. It is a pure function of its inputs and
// never mutates the given list, so it is safe to rerun on every request.
func Apply(list []Invoice, opt Options) Result {
	opt = opt.normalized()

	filtered := make([]Invoice, 0, len(list))
	for _, inv := range list {
		if !matchStatus(inv, opt.Status) {
			continue
		}
		if !withinBounds(inv, opt.StartDate, opt.EndDate) {
			continue
		}
		filtered = append(filtered, inv)
	}

	// Stable: ties keep their incoming order.
	sort.SliceStable(filtered, func(i, j int) bool {
		c := compare(filtered[i], filtered[j], opt.Sort)
		if opt.Dir == Desc {
			return c > 0
		}
		return c < 0
	})

	total := len(filtered)
	start := (opt.Page - 1) * opt.PageSize
	end := start + opt.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	totalPages := total / opt.PageSize
	if total%opt.PageSize != 0 {
		totalPages++
	}

	return Result{
		Invoices:   filtered[start:end],
		Total:      total,
		Page:       opt.Page,
		PageSize:   opt.PageSize,
		TotalPages: totalPages,
	}
}

// Toggle implements the sort-header click rule: clicking the active field
// flips direction, clicking another field switches to it ascending.
func Toggle(current Options, clicked SortField) (SortField, SortDir) {
	if current.Sort == clicked {
		if current.Dir == Desc {
			return clicked, Asc
		}
		return clicked, Desc
	}
	return clicked, Asc
}

func (o Options) normalized() Options {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultPageSize
	}
	if o.Sort == "" {
		o.Sort = SortInvoiceDate
	}
	if o.Dir != Desc {
		o.Dir = Asc
	}
	return o
}

func matchStatus(inv Invoice, status string) bool {
	if status == "" || strings.EqualFold(status, "all") {
		return true
	}
	return strings.EqualFold(inv.Status, status)
}

// withinBounds mirrors the comparison semantics of the original UI: a date
// that fails to parse compares false against any set bound, which excludes
// the invoice rather than passing it through.
func withinBounds(inv Invoice, startDate, endDate string) bool {
	if startDate == "" && endDate == "" {
		return true
	}
	t, ok := parseDate(inv.InvoiceDate)
	if !ok {
		return false
	}
	if startDate != "" {
		s, sok := parseDate(startDate)
		if !sok || t.Before(s) {
			return false
		}
	}
	if endDate != "" {
		e, eok := parseDate(endDate)
		if !eok || t.After(e) {
			return false
		}
	}
	return true
}

// compare returns <0, 0 or >0 for ascending order of the chosen field.
// Unparsable dates compare equal, leaving the stable sort to keep their
// incoming position.
func compare(a, b Invoice, field SortField) int {
	switch field {
	case SortTotalAmount:
		switch {
		case a.TotalAmount < b.TotalAmount:
			return -1
		case a.TotalAmount > b.TotalAmount:
			return 1
		}
		return 0
	case SortVendorName:
		return strings.Compare(strings.ToLower(a.VendorName), strings.ToLower(b.VendorName))
	case SortDueDate:
		return compareDates(a.DueDate, b.DueDate)
	default: // SortInvoiceDate
		return compareDates(a.InvoiceDate, b.InvoiceDate)
	}
}

func compareDates(a, b string) int {
	ta, aok := parseDate(a)
	tb, bok := parseDate(b)
	if !aok || !bok {
		return 0
	}
	switch {
	case ta.Before(tb):
		return -1
	case ta.After(tb):
		return 1
	}
	return 0
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
