package invoice

import "errors"

var (
	ErrMissingInvoiceID    = errors.New("missing invoice identifier")
	ErrUnexpectedFormat    = errors.New("unexpected response format")
	ErrUndecodableResponse = errors.New("undecodable response body")
)
