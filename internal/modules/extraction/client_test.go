package extraction

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aseelyusef9/frontInvApp/internal/shared/apperr"
)

func TestVendorInvoicesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/invoices/vendor/Acme%20Corp" && r.URL.EscapedPath() != "/invoices/vendor/Acme%20Corp" {
			t.Errorf("unexpected path %q", r.URL.EscapedPath())
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"VendorName": "Acme Corp", "TotalInvoices": 1, "invoices": [{"InvoiceId": "INV-1", "VendorName": "Acme Corp", "InvoiceTotal": 500}]}`))
	}))
	defer srv.Close()

	list, err := NewClient(srv.URL).VendorInvoices(context.Background(), "Acme Corp")
	if err != nil {
		t.Fatalf("VendorInvoices: %v", err)
	}
	if len(list) != 1 || list[0].InvoiceID != "INV-1" {
		t.Fatalf("list = %+v", list)
	}
}

func TestConnectionFailureMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening any more

	_, err := NewClient(srv.URL).Invoice(context.Background(), "INV-1")
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := apperr.PublicMessage(err); got != "Cannot connect to the backend service." {
		t.Fatalf("public message = %q", got)
	}
}

func TestBackendErrorMessagePassedThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "extraction_failed", "message": "Model could not read the document"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Invoice(context.Background(), "INV-1")
	if got := apperr.PublicMessage(err); got != "Model could not read the document" {
		t.Fatalf("public message = %q", got)
	}
}

func TestBackendErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Invoice(context.Background(), "INV-1")
	if got := apperr.PublicMessage(err); got != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("public message = %q", got)
	}
}

func TestNotFoundMapsToNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "not_found", "message": "Invoice not found"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Invoice(context.Background(), "NOPE")
	if apperr.HTTPStatus(err) != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", apperr.HTTPStatus(err))
	}
	if got := apperr.PublicMessage(err); got != "Invoice not found" {
		t.Fatalf("public message = %q", got)
	}
}

func TestMalformedBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"InvoiceId": truncated`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Invoice(context.Background(), "INV-1")
	if got := apperr.PublicMessage(err); got != "The backend returned invalid data." {
		t.Fatalf("public message = %q", got)
	}
}

func TestStructuralErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"VendorName": "Acme"}`)) // decodable, but no InvoiceId
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Invoice(context.Background(), "INV-1")
	if got := apperr.PublicMessage(err); got != "The backend response is missing an invoice identifier." {
		t.Fatalf("public message = %q", got)
	}
}

func TestExtractSendsMultipartAndNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/extract" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("no multipart file field: %v", err)
		}
		defer file.Close()
		if header.Filename != "invoice.pdf" {
			t.Errorf("filename = %q", header.Filename)
		}
		w.Write([]byte(`{"confidence": 0.93, "data": {"InvoiceId": "INV-1", "VendorName": "Acme", "InvoiceTotal": 500, "Items": []}, "predictionTime": 1.2}`))
	}))
	defer srv.Close()

	res, err := NewClient(srv.URL).Extract(context.Background(), "invoice.pdf", "application/pdf", strings.NewReader("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Invoice.InvoiceID != "INV-1" || res.Invoice.TotalAmount != 500 {
		t.Fatalf("invoice = %+v", res.Invoice)
	}
	if res.Confidence != 0.93 {
		t.Fatalf("confidence = %v", res.Confidence)
	}
}
