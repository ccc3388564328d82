package invoice

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestFromRecordKeepsIdentifier(t *testing.T) {
	raw := json.RawMessage(`{
		"InvoiceId": "INV-1001",
		"VendorName": "Acme",
		"InvoiceDate": "2024-03-01",
		"SubTotal": 450,
		"ShippingCost": 25,
		"InvoiceTotal": 500,
		"BillingAddressRecipient": "Jane Doe",
		"Items": []
	}`)

	inv, err := FromRecord(raw)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if inv.InvoiceID != "INV-1001" {
		t.Errorf("InvoiceID = %q, want INV-1001", inv.InvoiceID)
	}
	if inv.InvoiceNumber != "INV-1001" {
		t.Errorf("InvoiceNumber should mirror InvoiceID, got %q", inv.InvoiceNumber)
	}
	if inv.Currency != "USD" || inv.Status != "Pending" {
		t.Errorf("defaults wrong: currency=%q status=%q", inv.Currency, inv.Status)
	}
	if inv.DueDate != "" {
		t.Errorf("DueDate must stay empty, got %q", inv.DueDate)
	}
	if inv.Subtotal == nil || *inv.Subtotal != 450 {
		t.Errorf("Subtotal = %v, want 450", inv.Subtotal)
	}
	if inv.BillingRecipient != "Jane Doe" {
		t.Errorf("BillingRecipient = %q", inv.BillingRecipient)
	}
	if inv.TotalAmount != 500 {
		t.Errorf("TotalAmount = %v, want 500", inv.TotalAmount)
	}
}

func TestFromRecordMissingIdentifier(t *testing.T) {
	for name, raw := range map[string]string{
		"absent id": `{"VendorName": "Acme", "InvoiceTotal": 10}`,
		"null id":   `{"InvoiceId": null, "VendorName": "Acme"}`,
		"empty id":  `{"InvoiceId": "", "VendorName": "Acme"}`,
		"null body": `null`,
	} {
		if _, err := FromRecord(json.RawMessage(raw)); !errors.Is(err, ErrMissingInvoiceID) {
			t.Errorf("%s: err = %v, want ErrMissingInvoiceID", name, err)
		}
	}
}

func TestFromRecordItemKeepFilter(t *testing.T) {
	raw := json.RawMessage(`{
		"InvoiceId": "INV-1",
		"Items": [
			{"Description": "Widget", "Quantity": 2, "UnitPrice": 6.25, "Amount": 12.5},
			{"Description": "Widget", "Amount": 0},
			{"Description": "", "Name": "", "Amount": 99},
			{"Name": "Gadget", "Amount": 7},
			{"Description": "No amount"}
		]
	}`)

	inv, err := FromRecord(raw)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if len(inv.Items) != 2 {
		t.Fatalf("kept %d items, want 2: %+v", len(inv.Items), inv.Items)
	}
	if inv.Items[0].Description != "Widget" || inv.Items[0].Amount != 12.5 {
		t.Errorf("first item = %+v", inv.Items[0])
	}
	// Name is the fallback when Description is empty
	if inv.Items[1].Description != "Gadget" || inv.Items[1].Amount != 7 {
		t.Errorf("second item = %+v", inv.Items[1])
	}
	if inv.Items[1].Quantity != 0 || inv.Items[1].UnitPrice != 0 {
		t.Errorf("missing numerics must default to 0: %+v", inv.Items[1])
	}
}

func TestFromRecordDeduplicatesItems(t *testing.T) {
	raw := json.RawMessage(`{
		"InvoiceId": "INV-1",
		"Items": [
			{"Description": "Widget", "Quantity": 1, "UnitPrice": 5, "Amount": 5},
			{"Description": "Widget", "Quantity": 1, "UnitPrice": 5, "Amount": 5},
			{"Description": "Widget", "Quantity": 2, "UnitPrice": 5, "Amount": 10}
		]
	}`)

	inv, err := FromRecord(raw)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if len(inv.Items) != 2 {
		t.Fatalf("kept %d items, want 2 (exact duplicate collapsed)", len(inv.Items))
	}
	if inv.Items[0].Quantity != 1 || inv.Items[1].Quantity != 2 {
		t.Errorf("dedup must keep first occurrence order: %+v", inv.Items)
	}
}

func TestFromExtractionSkipsItemCleanup(t *testing.T) {
	raw := json.RawMessage(`{
		"InvoiceId": "INV-9",
		"VendorName": "Acme",
		"CustomerName": "John Smith",
		"AmountDue": 480,
		"InvoiceTotal": 500,
		"Items": [
			{"Description": "Zero amount", "Amount": 0},
			{"Description": "Dup", "Quantity": 1, "UnitPrice": 2, "Amount": 2},
			{"Description": "Dup", "Quantity": 1, "UnitPrice": 2, "Amount": 2}
		]
	}`)

	inv, err := FromExtraction(raw)
	if err != nil {
		t.Fatalf("FromExtraction: %v", err)
	}
	// The extraction path takes items as-is: no keep-filter, no dedup.
	if len(inv.Items) != 3 {
		t.Fatalf("kept %d items, want all 3", len(inv.Items))
	}
	if inv.BillingRecipient != "John Smith" {
		t.Errorf("CustomerName should map to BillingRecipient, got %q", inv.BillingRecipient)
	}
	if inv.Subtotal == nil || *inv.Subtotal != 480 {
		t.Errorf("AmountDue should map to Subtotal, got %v", inv.Subtotal)
	}
}

func TestFromExtractionStillRequiresIdentifier(t *testing.T) {
	if _, err := FromExtraction(json.RawMessage(`{"VendorName": "Acme"}`)); !errors.Is(err, ErrMissingInvoiceID) {
		t.Fatalf("err = %v, want ErrMissingInvoiceID", err)
	}
}

func TestFromVendorResponseShapes(t *testing.T) {
	record := `{"InvoiceId": "INV-1", "VendorName": "Acme", "InvoiceTotal": 100, "Items": []}`

	tests := []struct {
		name string
		body string
		want int
	}{
		{"envelope", `{"VendorName": "Acme", "TotalInvoices": 2, "invoices": [` + record + `,` + record + `]}`, 2},
		{"envelope empty list", `{"VendorName": "Acme", "TotalInvoices": 0, "invoices": []}`, 0},
		{"envelope null list", `{"VendorName": "Acme", "invoices": null}`, 0},
		{"envelope absent list", `{"VendorName": "Acme", "TotalInvoices": 0}`, 0},
		{"bare array", `[` + record + `]`, 1},
		{"bare object", record, 1},
	}

	for _, tc := range tests {
		got, err := FromVendorResponse(json.RawMessage(tc.body))
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if len(got) != tc.want {
			t.Errorf("%s: got %d invoices, want %d", tc.name, len(got), tc.want)
		}
	}
}

func TestFromVendorResponseRejectsOtherShapes(t *testing.T) {
	for name, body := range map[string]string{
		"string": `"hello"`,
		"number": `42`,
		"bool":   `true`,
		"null":   `null`,
		"empty":  ``,
	} {
		if _, err := FromVendorResponse(json.RawMessage(body)); !errors.Is(err, ErrUnexpectedFormat) {
			t.Errorf("%s: err = %v, want ErrUnexpectedFormat", name, err)
		}
	}
}

func TestFromVendorResponsePropagatesRecordErrors(t *testing.T) {
	body := `[{"VendorName": "no id"}]`
	if _, err := FromVendorResponse(json.RawMessage(body)); !errors.Is(err, ErrMissingInvoiceID) {
		t.Fatalf("err = %v, want ErrMissingInvoiceID", err)
	}
}

func TestNormalizationDoesNotMutateInput(t *testing.T) {
	body := []byte(`{"InvoiceId": "INV-1", "Items": [{"Description": "A", "Amount": 1}]}`)
	orig := string(body)
	if _, err := FromRecord(body); err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if string(body) != orig {
		t.Fatal("input buffer was mutated")
	}
}
