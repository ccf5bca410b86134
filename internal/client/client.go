package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	appconfig "gallery-backend/config"
)

// Client is the resilient request layer every API consumer goes through:
// GET caching with a fixed TTL, linear-backoff retries for transient
// failures, and forced re-authentication on token expiry. Business code
// above it never re-implements retries.
type Client struct {
	baseURL    string
	httpClient *http.Client

	maxRetries int
	baseDelay  time.Duration

	cache  *responseCache
	tokens TokenStore

	// protectedPrefixes decides which endpoints get the bearer header.
	// Capability is inferred from the path, not declared per call.
	protectedPrefixes []string

	// onAuthExpired is the one place this layer reaches outside its own
	// data: the host app hooks its navigation-to-login here.
	onAuthExpired func()

	sleep func(ctx context.Context, d time.Duration) error
}

type Config struct {
	BaseURL string

	MaxRetries     int           // default 3
	RetryBaseDelay time.Duration // default 1s; attempt N waits N × this
	CacheTTL       time.Duration // default 5m

	ProtectedPrefixes []string
	Tokens            TokenStore
	OnAuthExpired     func()
	HTTPClient        *http.Client
}

var defaultProtectedPrefixes = []string{
	"/api/upload",
	"/api/files",
	"/api/newsletter/subscribers",
}

func New(cfg Config) *Client {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.Tokens == nil {
		cfg.Tokens = &MemoryTokenStore{}
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.ProtectedPrefixes == nil {
		cfg.ProtectedPrefixes = defaultProtectedPrefixes
	}

	return &Client{
		baseURL:           strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:        cfg.HTTPClient,
		maxRetries:        cfg.MaxRetries,
		baseDelay:         cfg.RetryBaseDelay,
		cache:             newResponseCache(cfg.CacheTTL),
		tokens:            cfg.Tokens,
		protectedPrefixes: cfg.ProtectedPrefixes,
		onAuthExpired:     cfg.OnAuthExpired,
		sleep:             sleepCtx,
	}
}

// NewFromAppConfig builds a Client from the service-wide configuration,
// so cache TTL and retry knobs come from the same env surface as the server.
func NewFromAppConfig(app *appconfig.Config, baseURL string) *Client {
	return New(Config{
		BaseURL:        baseURL,
		MaxRetries:     app.MaxRetries,
		RetryBaseDelay: app.RetryBaseDelay,
		CacheTTL:       app.CacheTTL,
	})
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Get issues a cached GET. A hit within the TTL returns without touching
// the network or the retry loop.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	url := c.baseURL + path
	if body, ok := c.cache.lookup(http.MethodGet, url); ok {
		return decode(body, out)
	}

	body, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	c.cache.store(http.MethodGet, url, body)
	return decode(body, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	body, err := c.do(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	body, err := c.do(ctx, method, path, payload, "application/json")
	if err != nil {
		return err
	}
	return decode(body, out)
}

// Upload sends a file as multipart/form-data, the one place the JSON
// content type does not apply. Extra form fields ride along.
func (c *Client) Upload(ctx context.Context, path, fieldName, filename, mimeType string, content []byte, fields map[string]string, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldName, filename))
	hdr.Set("Content-Type", mimeType)
	part, err := w.CreatePart(hdr)
	if err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("build multipart: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("build multipart: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, path, buf.Bytes(), w.FormDataContentType())
	if err != nil {
		return err
	}
	return decode(body, out)
}

// do runs the attempt loop. Classification:
//   - 2xx: success, body returned.
//   - 401 + code "token_expired": clear token, fire OnAuthExpired, terminal.
//   - other 4xx: terminal APIError with the server's message.
//   - 5xx or transport error: retry after attempt × baseDelay while budget
//     remains, then ErrMaxRetriesExceeded.
func (c *Client) do(ctx context.Context, method, path string, payload []byte, contentType string) ([]byte, error) {
	url := c.baseURL + path

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
		if err != nil {
			return nil, err
		}
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
		if c.isProtected(path) {
			if token := c.tokens.Token(); token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// Transport failure: same treatment as a 5xx.
			lastErr = err
			if attempt < c.maxRetries {
				if serr := c.sleep(ctx, time.Duration(attempt)*c.baseDelay); serr != nil {
					return nil, serr
				}
				continue
			}
			break
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			if attempt < c.maxRetries {
				if serr := c.sleep(ctx, time.Duration(attempt)*c.baseDelay); serr != nil {
					return nil, serr
				}
				continue
			}
			break
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}

		serverMsg, code := parseErrorBody(body)

		if resp.StatusCode == http.StatusUnauthorized && code == "token_expired" {
			c.tokens.Clear()
			if c.onAuthExpired != nil {
				c.onAuthExpired()
			}
			return nil, ErrAuthExpired
		}

		apiErr := &APIError{Status: resp.StatusCode, Message: serverMsg}
		if !apiErr.Retryable() {
			return nil, apiErr
		}

		lastErr = apiErr
		if attempt < c.maxRetries {
			if serr := c.sleep(ctx, time.Duration(attempt)*c.baseDelay); serr != nil {
				return nil, serr
			}
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrMaxRetriesExceeded, lastErr)
}

func (c *Client) isProtected(path string) bool {
	for _, prefix := range c.protectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func decode(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseErrorBody(body []byte) (msg, code string) {
	var parsed struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return strings.TrimSpace(string(body)), ""
	}
	msg = parsed.Error
	if parsed.Message != "" {
		msg = parsed.Message
	}
	return msg, parsed.Code
}
