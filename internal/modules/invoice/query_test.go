package invoice

import (
	"reflect"
	"testing"
)

func inv(id, vendor, date string, total float64) Invoice {
	return Invoice{
		InvoiceID:   id,
		VendorName:  vendor,
		InvoiceDate: date,
		TotalAmount: total,
		Currency:    "USD",
		Status:      "Pending",
	}
}

func ids(r Result) []string {
	out := make([]string, 0, len(r.Invoices))
	for _, i := range r.Invoices {
		out = append(out, i.InvoiceID)
	}
	return out
}

func TestApplyIsPure(t *testing.T) {
	list := []Invoice{
		inv("B", "Beta", "2024-02-01", 200),
		inv("A", "Alpha", "2024-01-01", 100),
		inv("C", "Gamma", "2024-03-01", 300),
	}
	opt := Options{Sort: SortTotalAmount, Dir: Desc, Page: 1, PageSize: 10}

	first := Apply(list, opt)
	second := Apply(list, opt)
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Fatalf("pipeline is not idempotent: %v vs %v", ids(first), ids(second))
	}
	// The input slice keeps its own order.
	if list[0].InvoiceID != "B" || list[1].InvoiceID != "A" {
		t.Fatalf("input slice was reordered: %v", list)
	}
}

func TestApplySortToggle(t *testing.T) {
	list := []Invoice{
		inv("A", "Acme", "2024-01-01", 100),
		inv("B", "Acme", "2024-01-02", 200),
	}

	asc := Apply(list, Options{Sort: SortTotalAmount, Dir: Asc, Page: 1, PageSize: 10})
	if got := ids(asc); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("ascending = %v, want [A B]", got)
	}

	field, dir := Toggle(Options{Sort: SortTotalAmount, Dir: Asc}, SortTotalAmount)
	if field != SortTotalAmount || dir != Desc {
		t.Fatalf("toggle same field: got %s/%s, want totalAmount/desc", field, dir)
	}
	desc := Apply(list, Options{Sort: field, Dir: dir, Page: 1, PageSize: 10})
	if got := ids(desc); !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Fatalf("descending = %v, want [B A]", got)
	}
}

func TestToggleDifferentFieldResetsToAscending(t *testing.T) {
	field, dir := Toggle(Options{Sort: SortTotalAmount, Dir: Desc}, SortVendorName)
	if field != SortVendorName || dir != Asc {
		t.Fatalf("got %s/%s, want vendorName/asc", field, dir)
	}
}

func TestPaginationBoundary(t *testing.T) {
	list := make([]Invoice, 0, 12)
	for i := 0; i < 12; i++ {
		list = append(list, inv(string(rune('A'+i)), "Acme", "2024-01-01", float64(i)))
	}

	for _, tc := range []struct {
		page, want int
	}{
		{1, 10},
		{2, 2},
		{3, 0}, // beyond the range: empty, not an error
	} {
		r := Apply(list, Options{Page: tc.page, PageSize: 10})
		if len(r.Invoices) != tc.want {
			t.Errorf("page %d: got %d records, want %d", tc.page, len(r.Invoices), tc.want)
		}
		if r.Total != 12 || r.TotalPages != 2 {
			t.Errorf("page %d: total=%d totalPages=%d", tc.page, r.Total, r.TotalPages)
		}
	}
}

func TestDateRangeFilter(t *testing.T) {
	list := []Invoice{inv("A", "Acme", "2024-03-01", 10)}

	in := Apply(list, Options{StartDate: "2024-02-01", EndDate: "2024-04-01", Page: 1, PageSize: 10})
	if len(in.Invoices) != 1 {
		t.Fatalf("invoice should fall inside [2024-02-01, 2024-04-01]")
	}

	out := Apply(list, Options{StartDate: "2024-02-01", EndDate: "2024-02-15", Page: 1, PageSize: 10})
	if len(out.Invoices) != 0 {
		t.Fatalf("invoice should fall outside endDate 2024-02-15")
	}

	// Inclusive bounds on both sides.
	edge := Apply(list, Options{StartDate: "2024-03-01", EndDate: "2024-03-01", Page: 1, PageSize: 10})
	if len(edge.Invoices) != 1 {
		t.Fatalf("bounds are inclusive")
	}
}

func TestUnparsableDateExcludedFromBoundedComparison(t *testing.T) {
	list := []Invoice{
		inv("A", "Acme", "not a date", 10),
		inv("B", "Acme", "2024-03-01", 20),
	}

	bounded := Apply(list, Options{StartDate: "2024-01-01", Page: 1, PageSize: 10})
	if got := ids(bounded); !reflect.DeepEqual(got, []string{"B"}) {
		t.Fatalf("bounded = %v, want [B]", got)
	}

	// Without bounds the bad date passes through untouched.
	open := Apply(list, Options{Page: 1, PageSize: 10})
	if open.Total != 2 {
		t.Fatalf("unbounded total = %d, want 2", open.Total)
	}
}

func TestStatusFilterCaseInsensitive(t *testing.T) {
	paid := inv("A", "Acme", "2024-01-01", 10)
	paid.Status = "Paid"
	list := []Invoice{paid, inv("B", "Acme", "2024-01-02", 20)}

	r := Apply(list, Options{Status: "pending", Page: 1, PageSize: 10})
	if got := ids(r); !reflect.DeepEqual(got, []string{"B"}) {
		t.Fatalf("status filter = %v, want [B]", got)
	}

	all := Apply(list, Options{Status: "All", Page: 1, PageSize: 10})
	if all.Total != 2 {
		t.Fatalf("\"all\" must disable the filter, total = %d", all.Total)
	}
}

func TestVendorNameSortIsCaseInsensitiveAndStable(t *testing.T) {
	a := inv("1", "acme", "2024-01-01", 10)
	b := inv("2", "Acme", "2024-01-02", 20)
	c := inv("3", "Beta", "2024-01-03", 30)

	r := Apply([]Invoice{c, a, b}, Options{Sort: SortVendorName, Page: 1, PageSize: 10})
	// "acme" and "Acme" tie after lowercasing; stable sort keeps a before b.
	if got := ids(r); !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("vendor sort = %v, want [1 2 3]", got)
	}
}

func TestDueDateSortKeepsOrder(t *testing.T) {
	// DueDate is always empty, so the sort is all ties.
	list := []Invoice{
		inv("C", "Acme", "2024-03-01", 30),
		inv("A", "Acme", "2024-01-01", 10),
	}
	r := Apply(list, Options{Sort: SortDueDate, Page: 1, PageSize: 10})
	if got := ids(r); !reflect.DeepEqual(got, []string{"C", "A"}) {
		t.Fatalf("dueDate sort must keep input order, got %v", got)
	}
}
