package invoice

// Invoice is the canonical view model every page consumes, independent of
// which backend endpoint produced it.
type Invoice struct {
	InvoiceID     string
	VendorName    string
	InvoiceNumber string // mirrors InvoiceID; the backend has no separate number
	InvoiceDate   string // backend-supplied, not validated
	DueDate       string // backend never supplies it
	TotalAmount   float64
	Currency      string // backend supplies none; always "USD"
	Status        string // backend supplies none; always "Pending"

	Subtotal     *float64
	TaxAmount    *float64
	ShippingCost *float64

	ShippingAddress  string
	BillingAddress   string
	BillingRecipient string

	Items []LineItem
}

// LineItem is one row of an invoice's itemization.
type LineItem struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

const (
	defaultCurrency = "USD"
	defaultStatus   = "Pending"
)
