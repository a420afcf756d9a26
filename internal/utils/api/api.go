package api

import (
	"io"
	"net/http"
	"net/url"
)

// set of supported api header keys
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
)

// set of supported api media types
const (
	MediaTypeJSON = "application/json"
)

// RequestOptions are options to configure an *http.Request
type RequestOptions struct {
	Body        io.Reader
	ContentType string
	Query       map[string]string
	AuthToken   string
}

// IncludeQuery encodes the provided query parameters onto the request url
func IncludeQuery(req *http.Request, query map[string]string) {
	if len(query) == 0 {
		return
	}
	q := url.Values{}
	for key, value := range query {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()
}
