package testingx

import (
	"net"
	"net/http"

	"github.com/vkbind/vk/internal/runtimex"
)

// HTTPHandlerReset returns a handler that resets the connection
// without sending any response.
func HTTPHandlerReset() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hijacker, ok := w.(http.Hijacker)
		runtimex.Assert(ok, "testingx: the response writer is not an http.Hijacker")
		conn, _, err := hijacker.Hijack()
		runtimex.PanicOnError(err, "testingx: cannot hijack the connection")
		if tc, ok := conn.(*net.TCPConn); ok {
			_ = tc.SetLinger(0) // send RST on close
		}
		conn.Close()
	})
}

// HTTPHandlerEnvelope returns a handler that always writes the given
// JSON body with the given status code.
func HTTPHandlerEnvelope(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}
