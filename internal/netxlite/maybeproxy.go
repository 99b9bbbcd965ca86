package netxlite

//
// Optional proxy support
//

import (
	"context"
	"errors"
	"net"
	"net/url"

	"github.com/vkbind/vk/internal/model"
	"golang.org/x/net/proxy"
)

// proxyDialer is a dialer using a SOCKS5 proxy.
type proxyDialer struct {
	Dialer   model.Dialer
	ProxyURL *url.URL
}

// MaybeWrapWithProxyDialer returns the original dialer if the proxyURL is nil
// and otherwise returns a wrapped dialer that implements proxying.
func MaybeWrapWithProxyDialer(dialer model.Dialer, proxyURL *url.URL) model.Dialer {
	if proxyURL == nil {
		return dialer
	}
	return &proxyDialer{
		Dialer:   dialer,
		ProxyURL: proxyURL,
	}
}

var _ model.Dialer = &proxyDialer{}

// CloseIdleConnections implements Dialer.CloseIdleConnections.
func (d *proxyDialer) CloseIdleConnections() {
	d.Dialer.CloseIdleConnections()
}

// ErrProxyUnsupportedScheme indicates we don't support the proxy scheme.
var ErrProxyUnsupportedScheme = errors.New("proxy: unsupported scheme")

// DialContext implements Dialer.DialContext.
func (d *proxyDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	URL := d.ProxyURL
	if URL.Scheme != "socks5" {
		return nil, ErrProxyUnsupportedScheme
	}
	var auth *proxy.Auth
	if URL.User != nil {
		password, _ := URL.User.Password()
		auth = &proxy.Auth{User: URL.User.Username(), Password: password}
	}
	// proxy.SOCKS5 never fails when constructing the dialer
	child, _ := proxy.SOCKS5(network, URL.Host, auth, &proxyDialerWrapper{d.Dialer})
	return child.(proxy.ContextDialer).DialContext(ctx, network, address)
}

// proxyDialerWrapper adapts model.Dialer to proxy.Dialer. The SOCKS5 code
// checks whether the forward dialer implements DialContext and prefers it.
type proxyDialerWrapper struct {
	model.Dialer
}

func (d *proxyDialerWrapper) Dial(network, address string) (net.Conn, error) {
	panic(errors.New("proxyDialerWrapper.Dial should not be called directly"))
}
