package invoice

import (
	"bytes"
	"encoding/json"
	"math"
)

// The backend's three endpoints disagree on envelope structure but share one
// record vocabulary. rawRecord is the union of the field names they use;
// pointer fields distinguish "absent" from a genuine zero.
type rawRecord struct {
	InvoiceID               *string   `json:"InvoiceId"`
	VendorName              string    `json:"VendorName"`
	InvoiceDate             string    `json:"InvoiceDate"`
	ShippingAddress         string    `json:"ShippingAddress"`
	CustomerName            string    `json:"CustomerName"`
	BillingAddress          string    `json:"BillingAddress"`
	BillingAddressRecipient string    `json:"BillingAddressRecipient"`
	SubTotal                *float64  `json:"SubTotal"`
	AmountDue               *float64  `json:"AmountDue"`
	TaxAmount               *float64  `json:"TaxAmount"`
	ShippingCost            *float64  `json:"ShippingCost"`
	InvoiceTotal            *float64  `json:"InvoiceTotal"`
	Items                   []rawItem `json:"Items"`
}

type rawItem struct {
	Description string   `json:"Description"`
	Name        string   `json:"Name"`
	Quantity    *float64 `json:"Quantity"`
	UnitPrice   *float64 `json:"UnitPrice"`
	Amount      *float64 `json:"Amount"`
}

// FromExtraction converts the `data` object of a POST /extract response.
// Items are accepted as-is from the extraction engine: no keep-filter, no
// dedup (only the lookup endpoints need that cleanup).
func FromExtraction(data json.RawMessage) (Invoice, error) {
	var r rawRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return Invoice{}, ErrUndecodableResponse
	}
	return build(r, false)
}

// FromRecord converts a single-invoice record (GET /invoice/{id} shape).
// Fails when the record is absent or has no InvoiceId. Items go through the
// keep-filter and first-occurrence dedup.
func FromRecord(data json.RawMessage) (Invoice, error) {
	var r rawRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return Invoice{}, ErrUndecodableResponse
	}
	return build(r, true)
}

// FromVendorResponse converts whatever GET /invoices/vendor/{name} returned.
// Three shapes are accepted: the {VendorName, TotalInvoices, invoices: [...]}
// envelope, a bare array of records, or a bare single record. Anything else
// is ErrUnexpectedFormat.
func FromVendorResponse(data json.RawMessage) ([]Invoice, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrUnexpectedFormat
	}

	switch trimmed[0] {
	case '[':
		var records []json.RawMessage
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, ErrUndecodableResponse
		}
		return fromRecords(records)

	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &probe); err != nil {
			return nil, ErrUndecodableResponse
		}
		// An object is the envelope when it carries either marker key; a
		// count with no inner list still means "this vendor, zero invoices".
		inner, hasList := probe["invoices"]
		_, hasCount := probe["TotalInvoices"]
		if !hasList && !hasCount {
			inv, err := FromRecord(trimmed)
			if err != nil {
				return nil, err
			}
			return []Invoice{inv}, nil
		}
		if !hasList || isJSONNull(inner) {
			return []Invoice{}, nil
		}
		var records []json.RawMessage
		if err := json.Unmarshal(inner, &records); err != nil {
			return nil, ErrUnexpectedFormat
		}
		return fromRecords(records)

	default:
		// string, number, bool, null: nothing we can read an invoice out of
		return nil, ErrUnexpectedFormat
	}
}

func fromRecords(records []json.RawMessage) ([]Invoice, error) {
	out := make([]Invoice, 0, len(records))
	for _, rec := range records {
		inv, err := FromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, nil
}

// build is the single convergence point for all three producer paths.
// A non-empty InvoiceId is a model invariant, so it is checked here and not
// per path.
func build(r rawRecord, cleanItems bool) (Invoice, error) {
	if r.InvoiceID == nil || *r.InvoiceID == "" {
		return Invoice{}, ErrMissingInvoiceID
	}

	inv := Invoice{
		InvoiceID:       *r.InvoiceID,
		InvoiceNumber:   *r.InvoiceID,
		VendorName:      r.VendorName,
		InvoiceDate:     r.InvoiceDate,
		DueDate:         "",
		Currency:        defaultCurrency,
		Status:          defaultStatus,
		TaxAmount:       r.TaxAmount,
		ShippingCost:    r.ShippingCost,
		ShippingAddress: r.ShippingAddress,
		BillingAddress:  r.BillingAddress,
	}

	if r.InvoiceTotal != nil {
		inv.TotalAmount = *r.InvoiceTotal
	}

	// The lookup endpoints say BillingAddressRecipient, the extraction
	// engine says CustomerName; same canonical field.
	if r.BillingAddressRecipient != "" {
		inv.BillingRecipient = r.BillingAddressRecipient
	} else {
		inv.BillingRecipient = r.CustomerName
	}

	// Likewise SubTotal vs AmountDue.
	switch {
	case r.SubTotal != nil:
		inv.Subtotal = r.SubTotal
	case r.AmountDue != nil:
		inv.Subtotal = r.AmountDue
	}

	if cleanItems {
		inv.Items = cleanLineItems(r.Items)
	} else {
		inv.Items = mapLineItems(r.Items)
	}
	return inv, nil
}

func mapLineItems(items []rawItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, mapLineItem(it))
	}
	return out
}

// cleanLineItems keeps an item only if it has a description (or name) and a
// present, numeric, non-zero amount, then collapses exact duplicates keeping
// the first occurrence in original order.
func cleanLineItems(items []rawItem) []LineItem {
	type key struct {
		desc          string
		qty, unit, am float64
	}
	seen := make(map[key]struct{}, len(items))
	out := make([]LineItem, 0, len(items))

	for _, it := range items {
		if it.Description == "" && it.Name == "" {
			continue
		}
		if it.Amount == nil || math.IsNaN(*it.Amount) || *it.Amount == 0 {
			continue
		}
		li := mapLineItem(it)
		k := key{desc: li.Description, qty: li.Quantity, unit: li.UnitPrice, am: li.Amount}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, li)
	}
	return out
}

func mapLineItem(it rawItem) LineItem {
	desc := it.Description
	if desc == "" {
		desc = it.Name
	}
	return LineItem{
		Description: desc,
		Quantity:    deref(it.Quantity),
		UnitPrice:   deref(it.UnitPrice),
		Amount:      deref(it.Amount),
	}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
