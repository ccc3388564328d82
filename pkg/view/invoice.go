package view

// InvoiceRow is one line of the invoices table.
type InvoiceRow struct {
	InvoiceID   string
	VendorName  string
	InvoiceDate string
	DueDate     string
	Status      string
	Total       string
}

// LineItemRow is one line of the detail page's itemization table.
type LineItemRow struct {
	Description string
	Quantity    float64
	UnitPrice   string
	Amount      string
}

// InvoiceDetail is everything the detail page shows, read or edit mode.
type InvoiceDetail struct {
	InvoiceID        string
	InvoiceNumber    string
	VendorName       string
	InvoiceDate      string
	DueDate          string
	Status           string
	Currency         string
	TotalAmount      float64
	Total            string
	Subtotal         string
	TaxAmount        string
	ShippingCost     string
	ShippingAddress  string
	BillingAddress   string
	BillingRecipient string
	Items            []LineItemRow
}

// SortLink is a clickable column header: its href already encodes the
// toggle rule for that field.
type SortLink struct {
	Label  string
	URL    string
	Active bool
	Desc   bool
}

// PageLink is one entry of the pager.
type PageLink struct {
	Number  int
	URL     string
	Current bool
}

type LoginForm struct {
	Username string
}
