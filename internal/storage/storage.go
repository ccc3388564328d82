// Package storage archives the raw documents a user uploads, before they
// are forwarded to the extraction backend. Only the original file is kept;
// extracted invoice data is never persisted anywhere.
package storage

import (
	"context"
	"io"
)

type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

type PutResult struct {
	Key string
	URL string
}

type Archive interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}
