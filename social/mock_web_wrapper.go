package social

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Canned bodies served by the default mock: a minimal logged-in shell and an
// empty successful mutation response.
const (
	mockShellBody    = `<html><body><input type="hidden" name="fb_dtsg" value="mock-token"/><script>requireLazy({"USER_ID":"100000000000001"})</script></body></html>`
	mockMutationBody = `for (;;);{"data":{}}`
)

// MockWebWrapper is a canned transport for tests and dry runs. Function
// fields override individual calls; unset fields serve the canned bodies.
type MockWebWrapper struct {
	GetURLFunc  func(ctx context.Context, path string) (*http.Response, error)
	PostURLFunc func(ctx context.Context, path string, data url.Values) (*http.Response, error)
}

// NewMockWebWrapper creates a MockWebWrapper with the default canned
// responses.
func NewMockWebWrapper() *MockWebWrapper {
	return &MockWebWrapper{}
}

func mockResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: 200,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func (m *MockWebWrapper) GetURL(ctx context.Context, path string) (*http.Response, error) {
	if m.GetURLFunc != nil {
		return m.GetURLFunc(ctx, path)
	}
	return mockResponse(mockShellBody), nil
}

func (m *MockWebWrapper) PostURL(ctx context.Context, path string, data url.Values) (*http.Response, error) {
	if m.PostURLFunc != nil {
		return m.PostURLFunc(ctx, path, data)
	}
	return mockResponse(mockMutationBody), nil
}
