package core

import (
	"context"
	"net/http"
	"net/url"
)

// WebWrapperInterface is the transport seam used by the operations. The real
// implementation is WebWrapper; tests and dry runs substitute a mock.
type WebWrapperInterface interface {
	GetURL(ctx context.Context, path string) (*http.Response, error)
	PostURL(ctx context.Context, path string, data url.Values) (*http.Response, error)
}
