// Package dropsite provides a client for the dropsite admin API
package dropsite

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/dropsite-io/dropsite-cli/internal/utils/api"
)

const (
	createSitePath     = "/createsite"
	sitePathPattern    = "/site/%s"
	uploadPathPattern  = "/upload/%s"
	getFilePathPattern = "/getfile/%d"

	queryPassword = "password"

	paramFile = "file"
)

// Client is a dropsite client
type Client interface {
	CreateSite(name, password string) (AuthResponse, error)
	Site(name, password string) (SiteResponse, error)
	Upload(siteName, authToken, path string) error
	Download(fileID int64, authToken string) ([]byte, error)
}

// NewClient creates a new dropsite client
func NewClient(baseURL string) Client {
	return &client{baseURL}
}

type client struct {
	baseURL string
}

func (c *client) doJSON(method, path string, payload interface{}, options api.RequestOptions) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	options.Body = bytes.NewReader(body)
	options.ContentType = api.MediaTypeJSON

	return c.do(method, path, options)
}

func (c *client) do(method, path string, options api.RequestOptions) (*http.Response, error) {
	req, err := http.NewRequest(method, c.baseURL+path, options.Body)
	if err != nil {
		return nil, err
	}

	api.IncludeQuery(req, options.Query)

	if options.ContentType != "" {
		req.Header.Set(api.HeaderContentType, options.ContentType)
	}

	if options.AuthToken != "" {
		req.Header.Set(api.HeaderAuthorization, options.AuthToken)
	}

	client := &http.Client{}

	res, resErr := client.Do(req)
	if resErr != nil {
		return nil, NetworkError{resErr}
	}
	return res, nil
}
