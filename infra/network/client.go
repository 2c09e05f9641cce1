package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"

	"github.com/CrestNiraj12/netfeed/domain"
	"github.com/CrestNiraj12/netfeed/infra/auth"
)

// DefaultUserAgent is sent on every request unless overridden.
var DefaultUserAgent = "netfeed/dev"

// Client is a thin HTTP wrapper for the Network server API.
// It keeps a cookie jar like a browser tab would (session + csrftoken)
// and echoes the CSRF token on mutating requests.
type Client struct {
	base      *url.URL
	baseURL   string
	jar       http.CookieJar
	csrf      auth.CSRFSource
	http      *http.Client
	userAgent string
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithTransport swaps the underlying RoundTripper, keeping the cookie jar.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.Transport = rt
	}
}

// WithCSRF overrides where the CSRF token is read from.
func WithCSRF(src auth.CSRFSource) Option {
	return func(c *Client) {
		c.csrf = src
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	c := &Client{
		base:      u,
		baseURL:   baseURL,
		jar:       jar,
		csrf:      auth.NewJarCSRF(jar, u),
		http:      &http.Client{Jar: jar},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Jar exposes the cookie jar for session persistence.
func (c *Client) Jar() http.CookieJar {
	return c.jar
}

// BaseURL returns the parsed server URL.
func (c *Client) BaseURL() *url.URL {
	return c.base
}

// Get performs a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

// Post performs a POST with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	body, ctype, err := jsonBody(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, ctype, out)
}

// Put performs a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	body, ctype, err := jsonBody(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, ctype, out)
}

// Page fetches an HTML page, e.g. to obtain the csrftoken cookie.
func (c *Client) Page(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodGet, path, nil, "", nil)
}

// PostForm submits an HTML form (login, register). The response body is
// HTML and is discarded.
func (c *Client) PostForm(ctx context.Context, path string, form url.Values) error {
	if token, err := c.csrf.CSRFToken(); err == nil {
		form.Set("csrfmiddlewaretoken", token)
	}
	return c.do(ctx, http.MethodPost, path, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", nil)
}

// HasCookie reports whether the jar holds a non-empty cookie called name.
func (c *Client) HasCookie(name string) bool {
	return c.Cookie(name) != ""
}

// Cookie returns the value of the cookie called name, or "".
func (c *Client) Cookie(name string) string {
	for _, ck := range c.jar.Cookies(c.base) {
		if ck.Name == name {
			return ck.Value
		}
	}
	return ""
}

func jsonBody(in any) (io.Reader, string, error) {
	if in == nil {
		return nil, "", nil
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(in); err != nil {
		return nil, "", fmt.Errorf("encoding request: %w", err)
	}
	return &buf, "application/json", nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", reqID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if method != http.MethodGet && method != http.MethodHead {
		token, err := c.csrf.CSRFToken()
		if err != nil {
			log.WithField("path", path).Debug("no csrf token available")
		} else {
			req.Header.Set("X-CSRFToken", token)
		}
		// Django rejects HTTPS unsafe requests without a same-origin Referer.
		req.Header.Set("Referer", c.baseURL+"/")
	}

	entry := log.WithFields(log.Fields{"method": method, "path": path, "request_id": reqID})
	entry.Debug("request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	entry.WithField("status", resp.StatusCode).Debug("response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(method, path, resp.StatusCode, resp.Header.Get("Content-Type"), data)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing response from %s: %w", path, err)
	}
	return nil
}

// maxErrorRunes caps unstructured error text taken from a response body.
const maxErrorRunes = 512

var errorPagePolicy = bluemonday.StrictPolicy()

func newAPIError(method, path string, status int, contentType string, data []byte) *domain.APIError {
	apiErr := &domain.APIError{Method: method, Path: path, Status: status}
	var body errorResponse
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
		apiErr.Structured = true
		return apiErr
	}
	msg := strings.TrimSpace(string(data))
	if strings.Contains(contentType, "html") || strings.HasPrefix(msg, "<") {
		msg = pageText(msg)
	}
	if r := []rune(msg); len(r) > maxErrorRunes {
		msg = string(r[:maxErrorRunes]) + "..."
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	apiErr.Message = msg
	return apiErr
}

// pageText reduces an HTML error page to its visible text on one line.
func pageText(s string) string {
	s = html.UnescapeString(errorPagePolicy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}
