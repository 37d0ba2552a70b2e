package detector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/five82/wildwave/internal/audio"
)

// ErrTransferFailure wraps every failure of the upload and response path.
var ErrTransferFailure = errors.New("transfer failed")

// Detector uploads a file and returns ranked species matches.
// *Client implements it; tests substitute fakes.
type Detector interface {
	Detect(ctx context.Context, file audio.SelectedFile) (Result, error)
	Endpoint() string
}

// Ensure Client implements Detector at compile time.
var _ Detector = (*Client)(nil)

// Client talks to the detection HTTP endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	timeout   time.Duration
	maxBody   int64
	logger    *slog.Logger
}

const (
	// DefaultEndpoint is used when no endpoint is configured.
	DefaultEndpoint = "http://localhost:8000/detect-birds/"

	defaultUserAgent = "wildwave/0.1"
	defaultMaxBody   = 4 << 20
	formField        = "file"
)

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithMaxResponseBytes caps how much of a response body is read.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client posting to endpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:  u,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		maxBody:   defaultMaxBody,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the URL uploads are posted to.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// Detect uploads file as the single multipart field "file" and decodes the
// ranked result. Every error wraps ErrTransferFailure.
func (c *Client) Detect(ctx context.Context, file audio.SelectedFile) (Result, error) {
	if c == nil {
		return Result{}, fmt.Errorf("%w: client is nil", ErrTransferFailure)
	}
	if file.IsZero() {
		return Result{}, fmt.Errorf("%w: no file selected", ErrTransferFailure)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	src, err := os.Open(file.Path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: open upload: %w", ErrTransferFailure, err)
	}

	body, contentType := multipartBody(src, file)
	defer func() { _ = body.Close() }()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: create request: %w", ErrTransferFailure, err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	logger := c.logger.With("request_id", requestID, "file", file.Name)
	logger.Debug("upload started", "endpoint", c.endpoint.String(), "bytes", file.Size)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("upload failed", "error", err)
		return Result{}, fmt.Errorf("%w: execute request: %w", ErrTransferFailure, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("upload rejected", "status", resp.StatusCode)
		return Result{}, fmt.Errorf("%w: api %s returned status %d", ErrTransferFailure, c.endpoint.Path, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return Result{}, fmt.Errorf("%w: read response: %w", ErrTransferFailure, err)
	}
	if int64(len(data)) > c.maxBody {
		return Result{}, fmt.Errorf("%w: response exceeds %d bytes", ErrTransferFailure, c.maxBody)
	}

	result, err := decodeResult(data)
	if err != nil {
		logger.Warn("response rejected", "error", err)
		return Result{}, fmt.Errorf("%w: %w", ErrTransferFailure, err)
	}
	logger.Info("upload finished", "status", resp.StatusCode, "birds", len(result.Birds), "elapsed", time.Since(started).Round(time.Millisecond))
	return result, nil
}

// multipartBody streams src as a form-data part so large recordings are not
// buffered in memory. The returned reader owns src.
func multipartBody(src *os.File, file audio.SelectedFile) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		defer func() { _ = src.Close() }()

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, formField, quoteEscaper.Replace(file.Name)))
		mimeType := file.MIMEType
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}
		header.Set("Content-Type", mimeType)

		part, err := writer.CreatePart(header)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	return pr, writer.FormDataContentType()
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
