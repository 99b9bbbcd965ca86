package vkapi

//
// Method dispatch
//

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vkbind/vk/internal/iox"
	"github.com/vkbind/vk/internal/model"
)

const (
	// DefaultBaseURL is the default base URL of the VK API.
	DefaultBaseURL = "https://api.vk.com/method/"

	// DefaultVersion is the default VK API version.
	DefaultVersion = "5.199"

	// DefaultMaxBodySize is the default value for the maximum
	// response body size we are willing to read.
	DefaultMaxBodySize = 1 << 22
)

// HTTPClient is the HTTP client used by [*Client]. The [*http.Client]
// type implements this interface.
type HTTPClient = model.HTTPClient

// Logger is the definition of logger used by this package. It is
// compatible with `log.Log` in `apex/log`.
type Logger = model.DebugLogger

// Observer observes the outcome of each method call.
type Observer interface {
	// OnCall is called once per call after the outcome is known
	// with the method name, the call duration, and the error, if any.
	OnCall(method string, elapsed time.Duration, err error)
}

// Client calls VK API methods. Construct using [NewClient] or make sure
// you initialize all the fields marked as MANDATORY.
//
// A Client does not mutate its fields and is safe for concurrent use.
type Client struct {
	// AccessToken is the OPTIONAL access token. When set, we add it
	// as the access_token parameter unless the caller already did.
	AccessToken string

	// BaseURL is the MANDATORY base URL of the API.
	BaseURL string

	// HTTPClient is the MANDATORY HTTP client to use.
	HTTPClient HTTPClient

	// Language is the OPTIONAL lang parameter to add to every call
	// unless the caller already did.
	Language string

	// Logger is the OPTIONAL logger for debug messages.
	Logger Logger

	// MaxBodySize is the OPTIONAL maximum response body size. If not
	// set, we use the [DefaultMaxBodySize] constant.
	MaxBodySize int64

	// Observer is the OPTIONAL call [Observer].
	Observer Observer

	// UserAgent is the OPTIONAL user agent to use.
	UserAgent string

	// Version is the OPTIONAL v parameter to add to every call
	// unless the caller already did.
	Version string
}

// NewClient creates a new [*Client] using the given access token
// and sensible defaults for all the other fields.
func NewClient(accessToken string) *Client {
	return &Client{
		AccessToken: accessToken,
		BaseURL:     DefaultBaseURL,
		HTTPClient:  http.DefaultClient,
		Language:    "",
		Logger:      model.DiscardLogger,
		MaxBodySize: DefaultMaxBodySize,
		Observer:    nil,
		UserAgent:   model.HTTPHeaderUserAgent,
		Version:     DefaultVersion,
	}
}

// CallMethod calls the given VK method (e.g., "users.get") with the given
// params and returns the raw response payload.
//
// The returned error, if any, is an [Error]: [*OtherError] when we fail
// before sending the request, [*TransportError] when the HTTP exchange
// fails (including ctx expiring), [*DecodeError] when the body is not a
// valid envelope, and [*APIError] when VK reports an error. We never retry.
func (c *Client) CallMethod(ctx context.Context, method string, params *Params) (Value, error) {
	t0 := time.Now()
	value, err := c.callMethod(ctx, method, params)
	if c.Observer != nil {
		c.Observer.OnCall(method, time.Since(t0), err)
	}
	return value, err
}

func (c *Client) callMethod(ctx context.Context, method string, params *Params) (Value, error) {
	if method == "" {
		return nil, NewOtherError("vkapi: empty method name")
	}
	if err := params.Err(); err != nil {
		return nil, NewOtherError("vkapi: %s: %w", method, err)
	}
	request, err := c.newRequest(ctx, method, c.newForm(params))
	if err != nil {
		return nil, NewOtherError("vkapi: %s: %w", method, err)
	}
	data, err := c.do(request)
	if err != nil {
		return nil, NewTransportError(err)
	}
	return ParseEnvelope(data)
}

// newForm returns the form to send, which includes the parameters
// injected by the client. The caller's params are not modified.
func (c *Client) newForm(params *Params) url.Values {
	form := params.Clone()
	maybeSetParam(form, "access_token", c.AccessToken)
	maybeSetParam(form, "v", c.Version)
	maybeSetParam(form, "lang", c.Language)
	return form.Values()
}

func maybeSetParam(form *Params, name, value string) {
	if value != "" && !form.Has(name) {
		form.Set(name, value)
	}
}

// joinURLPath appends method to urlPath.
func joinURLPath(urlPath, method string) string {
	if !strings.HasSuffix(urlPath, "/") {
		urlPath += "/"
	}
	return urlPath + strings.TrimPrefix(method, "/")
}

// newRequest creates the POST request for calling method.
func (c *Client) newRequest(ctx context.Context, method string, form url.Values) (*http.Request, error) {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	URL, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	URL.Path = joinURLPath(URL.Path, method)
	body := form.Encode()
	c.logger().Debugf("vkapi: POST %s", URL.String())
	c.logger().Debugf("vkapi: request body: %d bytes", len(body))
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, URL.String(), strings.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", model.HTTPHeaderContentTypeForm)
	request.Header.Set("Accept", model.HTTPHeaderAccept)
	if c.UserAgent != "" {
		request.Header.Set("User-Agent", c.UserAgent)
	}
	return request, nil
}

// ErrHTTPRequestFailed indicates that the server returned >= 400.
type ErrHTTPRequestFailed struct {
	// StatusCode is the status code that failed.
	StatusCode int
}

// Error implements error.
func (err *ErrHTTPRequestFailed) Error() string {
	return fmt.Sprintf("vkapi: http request failed: %d", err.StatusCode)
}

// do performs the provided request and returns the response body or an error.
func (c *Client) do(request *http.Request) ([]byte, error) {
	response, err := c.httpClient().Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode >= 400 {
		return nil, &ErrHTTPRequestFailed{response.StatusCode}
	}
	maxBodySize := c.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	r := io.LimitReader(response.Body, maxBodySize)
	data, err := iox.ReadAllContext(request.Context(), r)
	if err != nil {
		return nil, err
	}
	c.logger().Debugf("vkapi: response body: %d bytes", len(data))
	return data, nil
}

// CloseIdleConnections closes the idle connections of the HTTP client.
func (c *Client) CloseIdleConnections() {
	c.httpClient().CloseIdleConnections()
}

func (c *Client) httpClient() HTTPClient {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return model.DiscardLogger
}
