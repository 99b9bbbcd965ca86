package netxlite

//
// Dialer and HTTP client construction
//

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/vkbind/vk/internal/model"
)

// dialerSystem is the model.Dialer backed by net.Dialer.
type dialerSystem struct {
	net.Dialer
}

// NewDialer returns a model.Dialer using the standard library dialer.
func NewDialer(timeout time.Duration) model.Dialer {
	return &dialerSystem{net.Dialer{Timeout: timeout, KeepAlive: 30 * time.Second}}
}

// CloseIdleConnections implements model.Dialer.
func (d *dialerSystem) CloseIdleConnections() {
	// nothing to do
}

// NewHTTPClient returns a model.HTTPClient optionally using the given proxy.
//
// A nil proxyURL means using the proxy configured in the environment, if any.
// The http and https schemes select an HTTP proxy while the socks5 scheme
// selects a SOCKS5 proxy. Any other scheme yields ErrProxyUnsupportedScheme.
func NewHTTPClient(proxyURL *url.URL) (*http.Client, error) {
	txp := http.DefaultTransport.(*http.Transport).Clone()
	if proxyURL != nil {
		switch proxyURL.Scheme {
		case "http", "https":
			txp.Proxy = http.ProxyURL(proxyURL)
		case "socks5":
			txp.Proxy = nil
			txp.DialContext = MaybeWrapWithProxyDialer(NewDialer(30*time.Second), proxyURL).DialContext
		default:
			return nil, ErrProxyUnsupportedScheme
		}
	}
	return &http.Client{Transport: txp}, nil
}

// ErrProxyMissingHost indicates that the proxy URL has no host.
var ErrProxyMissingHost = errors.New("proxy: missing host")

// ParseProxyURL parses the given proxy URL, returning nil for the empty string.
func ParseProxyURL(value string) (*url.URL, error) {
	if value == "" {
		return nil, nil
	}
	URL, err := url.Parse(value)
	if err != nil {
		return nil, err
	}
	if URL.Host == "" {
		return nil, ErrProxyMissingHost
	}
	return URL, nil
}
