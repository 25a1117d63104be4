package core

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// WebWrapper is an object for sending HTTP requests within one logged-in
// session. The cookie jar is seeded from the configured cookie header and
// updated from Set-Cookie responses for the lifetime of the session.
type WebWrapper struct {
	client   *http.Client
	headers  http.Header
	Endpoint string

	mu           sync.Mutex
	lastResponse *http.Response
}

// NewWebWrapper creates a new WebWrapper for the given endpoint. The cookie
// argument is a raw "k=v; k2=v2" header captured from a browser session.
func NewWebWrapper(endpoint, userAgent, cookie string) (*WebWrapper, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint URL: %w", err)
	}
	jar.SetCookies(base, parseCookieHeader(cookie))

	return &WebWrapper{
		client: &http.Client{
			Jar: jar,
		},
		headers: http.Header{
			"User-Agent":                []string{userAgent},
			"Accept-Language":           []string{"en-US,en;q=0.9"},
			"Upgrade-Insecure-Requests": []string{"1"},
		},
		Endpoint: endpoint,
	}, nil
}

// parseCookieHeader splits a raw Cookie header into individual cookies.
func parseCookieHeader(raw string) []*http.Cookie {
	var cookies []*http.Cookie
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: name, Value: value})
	}
	return cookies
}

// setRefererAndOrigin updates the Referer and Origin headers based on the last response URL.
func (ww *WebWrapper) setRefererAndOrigin(req *http.Request) {
	ww.mu.Lock()
	if ww.lastResponse != nil {
		req.Header.Set("Referer", ww.lastResponse.Request.URL.String())
	}
	ww.mu.Unlock()
	originURL, err := url.Parse(ww.Endpoint)
	if err == nil {
		req.Header.Set("Origin", originURL.Scheme+"://"+originURL.Host)
	}
}

func (ww *WebWrapper) resolve(path string) (string, error) {
	base, err := url.Parse(ww.Endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint URL: %w", err)
	}
	full, err := base.Parse(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse path: %w", err)
	}
	return full.String(), nil
}

// GetURL fetches a URL using a GET request.
func (ww *WebWrapper) GetURL(ctx context.Context, path string) (*http.Response, error) {
	fullURL, err := ww.resolve(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GET request: %w", err)
	}
	req.Header = ww.headers.Clone()
	ww.setRefererAndOrigin(req)

	resp, err := ww.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("GET failed")
		return nil, &TransportError{Op: "GET " + path, Err: err}
	}
	ww.mu.Lock()
	ww.lastResponse = resp
	ww.mu.Unlock()
	log.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("GET")
	return resp, nil
}

// PostURL sends a POST request with form data.
func (ww *WebWrapper) PostURL(ctx context.Context, path string, data url.Values) (*http.Response, error) {
	fullURL, err := ww.resolve(path)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create POST request: %w", err)
	}
	req.Header = ww.headers.Clone()
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	ww.setRefererAndOrigin(req)

	resp, err := ww.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("POST failed")
		return nil, &TransportError{Op: "POST " + path, Err: err}
	}
	ww.mu.Lock()
	ww.lastResponse = resp
	ww.mu.Unlock()
	log.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("POST")
	return resp, nil
}

// ReadBody reads the response body and returns it as a string.
func ReadBody(resp *http.Response) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("response is nil")
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}
