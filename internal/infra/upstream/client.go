// Package upstream wraps the travel-platform admin REST API behind one
// configured HTTP client: fixed base address, JSON accept header, and a
// bearer token taken from the request context on every call. A 401 from any
// endpoint surfaces as KindUnauthorized so the handler layer can tear the
// session down globally.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"tripdesk/internal/pkg/config"
)

type tokenCtxKey struct{}

// WithToken stores the upstream bearer token for a single request's
// lifetime. The token is re-read from the session cookie on every request,
// never cached by the client itself.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenCtxKey{}, token)
}

func tokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenCtxKey{}).(string)
	return token
}

type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.Timeout},
		logger:  logger,
	}
}

// envelope is the upstream's uniform response wrapper.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := tokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do executes the request and decodes the envelope. The returned total is
// only meaningful for list endpoints that report one.
func (c *Client) do(req *http.Request, out any) (int, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, wrapGatewayErr(c.logger, KindTransport, 0, req.Method+" "+req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, wrapGatewayErr(c.logger, KindTransport, resp.StatusCode, "read response body", err)
	}

	if kind, ok := kindForStatus(resp.StatusCode); ok {
		return 0, wrapGatewayErr(c.logger, kind, resp.StatusCode, req.Method+" "+req.URL.Path, nil)
	}

	if out == nil {
		return 0, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return 0, wrapGatewayErr(c.logger, KindDecode, resp.StatusCode, "decode response envelope", err)
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return 0, wrapGatewayErr(c.logger, KindDecode, resp.StatusCode, "decode response data", err)
		}
	}
	return env.Total, nil
}

func kindForStatus(status int) (GatewayErrorKind, bool) {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized, true
	case status == http.StatusNotFound:
		return KindNotFound, true
	case status >= 400 && status < 500:
		return KindRejected, true
	case status >= 500:
		return KindUpstreamDown, true
	default:
		return "", false
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (int, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return 0, wrapGatewayErr(c.logger, KindTransport, 0, "build request", err)
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return wrapGatewayErr(c.logger, KindTransport, 0, "encode request body", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, nil, bytes.NewReader(encoded), "application/json")
	if err != nil {
		return wrapGatewayErr(c.logger, KindTransport, 0, "build request", err)
	}
	_, err = c.do(req, out)
	return err
}

// postForm sends an indexed-field multipart body, the wire format the
// upstream expects for package creation and translation edits.
func (c *Client) postForm(ctx context.Context, path string, build func(w *multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := build(w); err != nil {
		w.Close()
		return wrapGatewayErr(c.logger, KindTransport, 0, "build multipart body", err)
	}
	if err := w.Close(); err != nil {
		return wrapGatewayErr(c.logger, KindTransport, 0, "finalize multipart body", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType())
	if err != nil {
		return wrapGatewayErr(c.logger, KindTransport, 0, "build request", err)
	}
	_, err = c.do(req, out)
	return err
}

func (c *Client) delete(ctx context.Context, path string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, path, nil, nil, "")
	if err != nil {
		return wrapGatewayErr(c.logger, KindTransport, 0, "build request", err)
	}
	_, err = c.do(req, nil)
	return err
}
