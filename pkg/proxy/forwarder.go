package proxy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Request describes one upstream call to relay. Method defaults to GET.
// Params are appended to the URL as a query string; Headers are merged on top
// of a JSON content type.
type Request struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers"`
	Params  map[string]string `json:"params"`
}

// Forwarder relays requests to external APIs without interpreting the payload.
// It never retries.
type Forwarder struct {
	httpClient *http.Client
}

func NewForwarder() *Forwarder {
	return &Forwarder{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (f *Forwarder) buildURL(rawURL string, params map[string]string) (string, error) {
	if len(params) == 0 {
		return rawURL, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("proxy parse url: %w", err)
	}

	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// ForwardJSON relays the request and returns the upstream status code together
// with its body, which must be JSON. A network error or a non-JSON body is a
// proxy failure.
func (f *Forwarder) ForwardJSON(ctx context.Context, r Request) (int, json.RawMessage, error) {
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	fullURL, err := f.buildURL(r.URL, r.Params)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("proxy build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("proxy request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("proxy read body: %w", err)
	}

	if !json.Valid(body) {
		return 0, nil, fmt.Errorf("proxy non-JSON response from %s (status %d)", r.URL, resp.StatusCode)
	}

	return resp.StatusCode, json.RawMessage(body), nil
}

// Download relays a GET and returns the upstream body untouched.
func (f *Forwarder) Download(ctx context.Context, rawURL string, headers map[string]string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("download build request: %w", err)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("download request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("download read body: %w", err)
	}

	return resp.StatusCode, body, nil
}
