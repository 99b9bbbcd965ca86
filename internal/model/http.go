package model

//
// HTTP definitions
//

import (
	"net/http"

	"github.com/vkbind/vk/internal/version"
)

// HTTPClient is the HTTP client used to send VK method calls. The
// [*http.Client] type implements this interface.
type HTTPClient interface {
	// Do sends the request and returns the response.
	Do(req *http.Request) (*http.Response, error)

	// CloseIdleConnections closes idle connections, if any.
	CloseIdleConnections()
}

const (
	// HTTPHeaderAccept is the Accept header we send with method calls.
	HTTPHeaderAccept = "application/json"

	// HTTPHeaderContentTypeForm is the Content-Type of method call bodies.
	HTTPHeaderContentTypeForm = "application/x-www-form-urlencoded"

	// HTTPHeaderUserAgent is the default User-Agent header.
	HTTPHeaderUserAgent = "vkbind/" + version.Version
)
