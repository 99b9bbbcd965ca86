package testingx

import (
	"net"
	"net/url"
	"sync"

	"github.com/armon/go-socks5"
	"github.com/vkbind/vk/internal/runtimex"
)

// SOCKS5Server is a SOCKS5 proxy listening on the loopback interface.
type SOCKS5Server struct {
	listener net.Listener
	url      *url.URL
	wg       sync.WaitGroup
}

// MustNewSOCKS5Server starts a SOCKS5 proxy requiring the given username
// and password or, when username is empty, no authentication.
func MustNewSOCKS5Server(username, password string) *SOCKS5Server {
	config := &socks5.Config{}
	URL := &url.URL{Scheme: "socks5"}
	if username != "" {
		config.Credentials = socks5.StaticCredentials{username: password}
		URL.User = url.UserPassword(username, password)
	}
	server := runtimex.Try1(socks5.New(config))
	listener := runtimex.Try1(net.Listen("tcp", "127.0.0.1:0"))
	URL.Host = listener.Addr().String()
	srv := &SOCKS5Server{listener: listener, url: URL}
	srv.wg.Add(1)
	go func() {
		defer srv.wg.Done()
		_ = server.Serve(listener) // returns when the listener is closed
	}()
	return srv
}

// URL returns the proxy URL including the credentials, if any.
func (s *SOCKS5Server) URL() *url.URL {
	URL := *s.url
	return &URL
}

// Close stops accepting new connections.
func (s *SOCKS5Server) Close() error {
	err := s.listener.Close()
	s.wg.Wait()
	return err
}
