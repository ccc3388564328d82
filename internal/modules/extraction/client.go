// Package extraction is the HTTP client for the external extraction
// backend. The backend owns extraction, storage and vendor indexing; this
// client only speaks its three endpoints and funnels every response
// through the invoice normalizer.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/aseelyusef9/frontInvApp/internal/modules/invoice"
	"github.com/aseelyusef9/frontInvApp/internal/shared/apperr"
)

const (
	msgUnreachable = "Cannot connect to the backend service."
	msgInvalidData = "The backend returned invalid data."
	msgMissingID   = "The backend response is missing an invoice identifier."
	msgBadFormat   = "The backend returned an unexpected response format."
)

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given base URL. One overall timeout
// covers each call; there is no retry, failures are terminal per action.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ExtractResult carries the normalized invoice plus the engine's own
// confidence metadata from the /extract envelope.
type ExtractResult struct {
	Invoice        invoice.Invoice
	Confidence     float64
	PredictionTime float64
}

type extractEnvelope struct {
	Confidence     float64         `json:"confidence"`
	Data           json.RawMessage `json:"data"`
	PredictionTime float64         `json:"predictionTime"`
}

// Extract uploads a document as the multipart `file` field of
// POST /extract and normalizes the returned `data` object.
func (c *Client) Extract(ctx context.Context, filename, contentType string, file io.Reader) (ExtractResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		return ExtractResult{}, apperr.Wrap(err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return ExtractResult{}, apperr.Wrap(err)
	}
	if err := mw.Close(); err != nil {
		return ExtractResult{}, apperr.Wrap(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract", &buf)
	if err != nil {
		return ExtractResult{}, apperr.Wrap(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	body, err := c.do(req)
	if err != nil {
		return ExtractResult{}, err
	}

	var env extractEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ExtractResult{}, apperr.UnavailableErr(msgInvalidData, err)
	}
	inv, err := invoice.FromExtraction(env.Data)
	if err != nil {
		return ExtractResult{}, normalizeErr(err)
	}
	return ExtractResult{Invoice: inv, Confidence: env.Confidence, PredictionTime: env.PredictionTime}, nil
}

// Invoice fetches a single invoice by its backend identifier.
func (c *Client) Invoice(ctx context.Context, invoiceID string) (invoice.Invoice, error) {
	body, err := c.get(ctx, "/invoice/"+url.PathEscape(invoiceID))
	if err != nil {
		return invoice.Invoice{}, err
	}
	inv, err := invoice.FromRecord(body)
	if err != nil {
		return invoice.Invoice{}, normalizeErr(err)
	}
	return inv, nil
}

// VendorInvoices fetches all invoices indexed under a vendor name.
// Issuing the same search twice is two independent round trips; nothing is
// cached or deduplicated here.
func (c *Client) VendorInvoices(ctx context.Context, vendorName string) ([]invoice.Invoice, error) {
	body, err := c.get(ctx, "/invoices/vendor/"+url.PathEscape(vendorName))
	if err != nil {
		return nil, err
	}
	list, err := invoice.FromVendorResponse(body)
	if err != nil {
		return nil, normalizeErr(err)
	}
	return list, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	return c.do(req)
}

// do runs the request and applies the shared error taxonomy: connection
// failures surface as "cannot connect", non-2xx statuses surface the
// backend's own {error, message} payload when it decodes, the raw status
// text otherwise.
func (c *Client) do(req *http.Request) ([]byte, error) {
	res, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.UnavailableErr(msgUnreachable, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperr.UnavailableErr(msgUnreachable, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := backendMessage(body, res.StatusCode)
		if res.StatusCode == http.StatusNotFound {
			return nil, apperr.NotFoundErr(msg)
		}
		return nil, apperr.UnavailableErr(msg, fmt.Errorf("backend status %d", res.StatusCode))
	}
	return body, nil
}

func backendMessage(body []byte, status int) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return http.StatusText(status)
}

// normalizeErr maps the normalizer's sentinels onto user-facing messages.
// A JSON-decode failure and a structurally invalid payload are the same
// class of failure as far as the user is concerned.
func normalizeErr(err error) error {
	switch {
	case errors.Is(err, invoice.ErrMissingInvoiceID):
		return apperr.UnavailableErr(msgMissingID, err)
	case errors.Is(err, invoice.ErrUnexpectedFormat):
		return apperr.UnavailableErr(msgBadFormat, err)
	case errors.Is(err, invoice.ErrUndecodableResponse):
		return apperr.UnavailableErr(msgInvalidData, err)
	default:
		return apperr.Wrap(err)
	}
}
