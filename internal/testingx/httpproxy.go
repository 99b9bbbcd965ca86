package testingx

import (
	"io"
	"net/http"
	"sync"

	"github.com/vkbind/vk/internal/model"
	"github.com/vkbind/vk/internal/runtimex"
)

// httpProxyHandler is an HTTP/HTTPS proxy.
type httpProxyHandler struct {
	// Dialer is the dialer to use.
	Dialer model.Dialer

	// Logger is the logger to use.
	Logger model.Logger
}

// NewHTTPProxyHandler constructs a new HTTP proxy handler that connects
// to the upstream servers using the given dialer. A nil logger discards
// the logs. The proxy handles CONNECT requests and forwards plain HTTP
// requests using any method.
func NewHTTPProxyHandler(logger model.Logger, dialer model.Dialer) http.Handler {
	return &httpProxyHandler{
		Dialer: dialer,
		Logger: model.ValidLoggerOrDefault(logger),
	}
}

// ServeHTTP implements http.Handler.
func (ph *httpProxyHandler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	ph.Logger.Infof("PROXY: %s %s", req.Method, req.URL.String())

	switch req.Method {
	case http.MethodConnect:
		ph.connect(rw, req)

	default:
		ph.forward(rw, req)
	}
}

func (ph *httpProxyHandler) connect(rw http.ResponseWriter, req *http.Request) {
	sconn, err := ph.Dialer.DialContext(req.Context(), "tcp", req.Host)
	if err != nil {
		rw.WriteHeader(http.StatusBadGateway)
		return
	}
	defer sconn.Close()

	hijacker := rw.(http.Hijacker)
	cconn, buffered, err := hijacker.Hijack()
	runtimex.PanicOnError(err, "hijacker.Hijack failed")
	runtimex.Assert(buffered.Reader.Buffered() <= 0, "data before finishing HTTP handshake")
	defer cconn.Close()

	_, _ = cconn.Write([]byte("HTTP/1.1 200 Ok\r\n\r\n"))

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = io.Copy(sconn, cconn)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = io.Copy(cconn, sconn)
	}()

	wg.Wait()
}

func (ph *httpProxyHandler) forward(rw http.ResponseWriter, req *http.Request) {
	// reject requests that already visited the proxy and requests we cannot route
	if req.Host == "" || req.Header.Get("Via") != "" {
		rw.WriteHeader(http.StatusBadRequest)
		return
	}

	// clone the request before modifying it
	req = req.Clone(req.Context())

	// include proxy header to prevent sending requests to ourself
	req.Header.Add("Via", "testingx/0.1.0")

	// fix: "http: Request.RequestURI can't be set in client requests"
	req.RequestURI = ""

	// fix: `http: unsupported protocol scheme ""`
	req.URL.Host = req.Host

	// fix: "http: no Host in request URL"
	req.URL.Scheme = "http"

	ph.Logger.Debugf("PROXY: sending request to %s", req.URL.String())

	txp := &http.Transport{DialContext: ph.Dialer.DialContext}
	defer txp.CloseIdleConnections()

	resp, err := txp.RoundTrip(req)
	if err != nil {
		ph.Logger.Warnf("PROXY: request failed: %s", err.Error())
		rw.WriteHeader(http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, value := range values {
			rw.Header().Add(key, value)
		}
	}
	rw.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(rw, resp.Body)
}
