package octoprint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the OctoPrint REST API.
type Client struct {
	baseURL   *url.URL
	apiKey    string
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "gantry/0.1"
	requestTimeout   = 10 * time.Second
	apiKeyHeader     = "X-Api-Key"
	maxErrorBody     = 64 * 1024
)

// New builds a Client for the OctoPrint server at baseURL. The API key
// may be empty for servers that allow anonymous access to the public
// endpoints; every other request will be rejected by the server.
func New(baseURL, apiKey string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	rel := &url.URL{Path: path, RawQuery: query.Encode()}
	return c.do(ctx, http.MethodGet, rel, nil, "", dest)
}

func (c *Client) postJSON(ctx context.Context, path string, body, dest any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	rel := &url.URL{Path: path}
	return c.do(ctx, http.MethodPost, rel, bytes.NewReader(payload), "application/json", dest)
}

func (c *Client) postForm(ctx context.Context, path string, form *form, dest any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return err
	}
	rel := &url.URL{Path: path}
	return c.do(ctx, http.MethodPost, rel, body, contentType, dest)
}

func (c *Client) deletePath(ctx context.Context, path string) error {
	rel := &url.URL{Path: path}
	return c.do(ctx, http.MethodDelete, rel, nil, "", nil)
}

// do issues exactly one request and eagerly decodes the response body
// into dest when one is expected. The API key header is set last and
// unconditionally, through the canonical header casing, so nothing can
// shadow it with a differently-cased key.
func (c *Client) do(ctx context.Context, method string, rel *url.URL, body io.Reader, contentType string, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: method + " " + rel.Path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{StatusCode: resp.StatusCode, Body: data}
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// form collects the parts of a multipart/form-data request body.
type form struct {
	fileField string
	fileName  string
	file      io.Reader
	fields    map[string]string
}

func (f *form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if f.file != nil {
		part, err := w.CreateFormFile(f.fileField, f.fileName)
		if err != nil {
			return nil, "", fmt.Errorf("encode form: %w", err)
		}
		if _, err := io.Copy(part, f.file); err != nil {
			return nil, "", fmt.Errorf("read upload: %w", err)
		}
	}
	for name, value := range f.fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("encode form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("encode form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
